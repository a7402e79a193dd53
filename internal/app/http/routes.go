package routes

import (
	"net/http"

	adminapi "personal-trainer-app/internal/api/admin"
	applicationsapi "personal-trainer-app/internal/api/applications"
	articlesapi "personal-trainer-app/internal/api/articles"
	"personal-trainer-app/internal/api/billing"
	messagesapi "personal-trainer-app/internal/api/messages"
	"personal-trainer-app/internal/api/users"
	workoutsapi "personal-trainer-app/internal/api/workouts"
	"personal-trainer-app/internal/app/http/middleware"
	"personal-trainer-app/internal/app/principal"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// Handlers is everything RegisterRoutes mounts.
type Handlers struct {
	Resolver     *principal.Resolver
	Applications *applicationsapi.Handler
	Messages     *messagesapi.Handler
	Admin        *adminapi.Handler
	CreditCards  *billing.Handler
	Articles     *articlesapi.Handler
	Workouts     *workoutsapi.Handler
	Users        *users.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	public := r.Group("/")
	public.GET("/working-outs", h.Workouts.List)
	public.GET("/working-outs/:id", h.Workouts.Show)
	public.GET("/trainers/:id/education-records", h.Workouts.Curriculum)
	public.GET("/articles", h.Articles.ListAll)
	public.GET("/articles/:id", h.Articles.Show)
	public.GET("/nutritionists/:id/articles", h.Articles.ListByNutritionist)

	// Authenticated: the token is checked, then the actor row is loaded so
	// banned or removed accounts are turned away.
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.RequireActor(h.Resolver), middleware.SanitizeAndCleanInputMiddleware())
	auth.GET("/me", h.Users.GetCurrentUser)
	auth.DELETE("/me", h.Users.DeleteCurrentUser)
	auth.GET("/messages", h.Messages.Box)
	auth.POST("/messages", h.Messages.Send)

	customer := auth.Group("/customer")
	customer.Use(middleware.RequireRole(actors.RoleCustomer))
	customer.POST("/working-outs/:id/applications", h.Applications.CreateForm)
	customer.POST("/applications", h.Applications.Submit)
	customer.GET("/applications", h.Applications.ListMine)
	customer.GET("/applications/:id", h.Applications.Show)
	customer.GET("/credit-cards", h.CreditCards.ListCreditCards)
	customer.POST("/credit-cards", h.CreditCards.RegisterCreditCard)
	customer.POST("/credit-cards/sync", h.CreditCards.SyncCreditCards)

	trainer := auth.Group("/trainer")
	trainer.Use(middleware.RequireRole(actors.RoleTrainer))
	trainer.GET("/applications", h.Applications.ListForTrainer)
	trainer.GET("/applications/:id", h.Applications.Show)
	trainer.GET("/working-outs/:id/applications", h.Applications.ListForWorkingOut)
	trainer.POST("/applications/:id/accept", h.Applications.Accept)
	trainer.POST("/applications/:id/reject", h.Applications.Reject)

	nutritionist := auth.Group("/nutritionist")
	nutritionist.Use(middleware.RequireRole(actors.RoleNutritionist))
	nutritionist.GET("/articles", h.Articles.ListMine)
	nutritionist.GET("/articles/:id", h.Articles.Show)
	nutritionist.POST("/articles", h.Articles.Create)
	nutritionist.PUT("/articles/:id", h.Articles.Update)
	nutritionist.POST("/articles/:id/publish", h.Articles.Publish)

	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole(actors.RoleAdministrator))
	admin.POST("/messages/broadcast", h.Admin.Broadcast)
	admin.POST("/messages/breach", h.Admin.Breach)
}
