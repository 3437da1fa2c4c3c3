// file: main.go
package main

import (
	"InnoHub/config"
	"InnoHub/controllers"
	"InnoHub/database"
	"InnoHub/logger"
	"InnoHub/routes"
	"InnoHub/services"
)

func main() {
	defer logger.Sync()

	config.Load()
	database.Connect()
	database.InitRedis()
	database.MigrateTables()

	files := services.NewLocalFileStoreFromConfig()
	audit := services.NewDBAuditRecorder(database.DB)

	var mailer services.Mailer
	if m := services.NewSMTPMailerFromConfig(); m != nil {
		mailer = m
	}
	notify := services.NewFeedNotifier(database.DB, mailer)

	store := services.NewGormSubmissionStore(database.DB)
	submissions := services.NewSubmissionService(store, files, audit, notify)

	states := services.NewRedisStateStore(database.RDB)
	browse := services.NewBrowseService(database.DB, database.RDB, states)

	controllers.Init(browse, submissions, files, audit)

	r := routes.SetupRouter()

	logger.Info("Starting server", "addr", config.App.ListenAddr)
	if err := r.Run(config.App.ListenAddr); err != nil {
		logger.Fatal("Failed to run server", "error", err)
	}
}
