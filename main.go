package main

import (
	"context"
	"time"

	"personal-trainer-app/config"
	"personal-trainer-app/database"
	adminapi "personal-trainer-app/internal/api/admin"
	applicationsapi "personal-trainer-app/internal/api/applications"
	articlesapi "personal-trainer-app/internal/api/articles"
	"personal-trainer-app/internal/api/billing"
	messagesapi "personal-trainer-app/internal/api/messages"
	"personal-trainer-app/internal/api/users"
	workoutsapi "personal-trainer-app/internal/api/workouts"
	"personal-trainer-app/internal/app/accounts"
	"personal-trainer-app/internal/app/admission"
	"personal-trainer-app/internal/app/articles"
	"personal-trainer-app/internal/app/catalog"
	"personal-trainer-app/internal/app/creditcards"
	routes "personal-trainer-app/internal/app/http"
	"personal-trainer-app/internal/app/http/middleware"
	"personal-trainer-app/internal/app/messaging"
	"personal-trainer-app/internal/app/principal"
	"personal-trainer-app/internal/infra/logging"
	"personal-trainer-app/internal/infra/mailer"
	"personal-trainer-app/internal/infra/postgres"
	"personal-trainer-app/internal/infra/redisqueue"
	"personal-trainer-app/internal/infra/stripe"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	config.LoadEnv()
	log := logging.New(config.APP_ENV, config.LOG_LEVEL)
	if config.APP_ENV == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB(config.DB_URL, log)
	db := postgres.New(database.DB)

	applicationStore := postgres.NewApplications(db)
	actorStore := postgres.NewActors(db)

	var msgOpts []messaging.Option
	msgOpts = append(msgOpts, messaging.WithLogger(log), messaging.WithPriorities(config.MESSAGE_PRIORITIES))
	smtp := mailer.New(mailer.Config{
		Host:     config.SMTP_HOST,
		Port:     config.SMTP_PORT,
		From:     config.SMTP_FROM,
		Password: config.SMTP_PASSWORD,
	})
	if smtp.Enabled() {
		msgOpts = append(msgOpts, messaging.WithMailer(smtp))
	}
	messageService := messaging.NewService(postgres.NewMessages(db), actorStore, applicationStore, applicationStore, msgOpts...)

	cardService := creditcards.NewService(postgres.NewCards(db),
		creditcards.WithStripe(stripe.NewCardLister(config.STRIPE_SECRET_KEY)),
		creditcards.WithLogger(log),
	)

	engineOpts := []admission.Option{admission.WithLogger(log)}
	var retryQueue *redisqueue.Queue
	if config.REDIS_URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		q, err := redisqueue.Open(ctx, config.REDIS_URL, redisqueue.DefaultKey)
		cancel()
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, failed notifications will not be retried")
		} else {
			retryQueue = q
			defer q.Close()
			engineOpts = append(engineOpts, admission.WithRetryQueue(q))
		}
	}
	engine := admission.NewEngine(applicationStore, cardService, messageService, engineOpts...)

	if retryQueue != nil {
		scheduler := cron.New()
		job := messaging.NewRetryJob(retryQueue, engine, messageService, log)
		if _, err := job.Schedule(scheduler, config.NOTIFY_RETRY_SPEC); err != nil {
			log.WithError(err).Fatal("Invalid NOTIFY_RETRY_SPEC")
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	accountService := accounts.NewService(postgres.NewAccounts(db), engine, log)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORS_ORIGIN,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.NewIPRateLimiter(config.RATE_LIMIT_RPS, config.RATE_LIMIT_BURST).Middleware())

	routes.RegisterRoutes(r, routes.Handlers{
		Resolver:     principal.NewResolver(actorStore),
		Applications: applicationsapi.NewHandler(engine),
		Messages:     messagesapi.NewHandler(messageService),
		Admin:        adminapi.NewHandler(messageService),
		CreditCards:  billing.NewHandler(cardService),
		Articles:     articlesapi.NewHandler(articles.NewService(postgres.NewArticles(db), articles.WithLogger(log))),
		Workouts:     workoutsapi.NewHandler(catalog.NewService(postgres.NewCatalog(db))),
		Users:        users.NewHandler(accountService),
	})

	log.WithField("port", config.PORT).Info("Listening")
	if err := r.Run(":" + config.PORT); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
