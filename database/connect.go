// file: database/connect.go
package database

import (
	"time"

	"InnoHub/config"
	"InnoHub/logger"
	"InnoHub/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the submission store relies on.
	DB, err = gorm.Open(mysql.Open(config.App.MySQLDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying sql.DB", "error", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// Connections are recycled hourly to stay clear of MySQL wait_timeout.
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Info("Database connection established")
}

func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.ChallengeSubmission{},
		&models.SubmissionAttachment{},
		&models.AuditLog{},
		&models.Notification{},
	)
	if err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database migration completed")
}
