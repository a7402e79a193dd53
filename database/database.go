package database

import (
	"fmt"

	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/applications"
	"personal-trainer-app/internal/domain/articles"
	"personal-trainer-app/internal/domain/billing"
	"personal-trainer-app/internal/domain/education"
	"personal-trainer-app/internal/domain/messages"
	"personal-trainer-app/internal/domain/workouts"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// constraints backs the admission invariants at the storage level.
var constraints = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_applications_working_out_customer
		ON applications (working_out_id, customer_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_applications_accepted_working_out
		ON applications (working_out_id) WHERE status = 'ACCEPTED'`,
	`DO $$ BEGIN
		ALTER TABLE applications ADD CONSTRAINT ck_applications_status
			CHECK (status IN ('PENDING', 'ACCEPTED', 'REJECTED'));
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,
}

func InitDB(dsn string, log logrus.FieldLogger) {
	db, err := Open(dsn)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.WithError(err).Fatal("Migration failed")
	}
	log.Info("Connected and migrated successfully")
}

// Open connects with unique violations translated to gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL not set")
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&actors.Actor{},
		&workouts.WorkingOut{},
		&billing.CreditCard{},
		&applications.Application{},
		&messages.Message{},
		&articles.Article{},
		&education.Record{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}
	return nil
}
