package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"communify/internal/config"
	"communify/internal/db"
	"communify/internal/handlers"
	"communify/internal/metrics"
	"communify/internal/store"
)

var logger = logrus.New()

func initLogger() {
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
}

func main() {
	initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	dbc, err := db.Connect(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to the database")
	}
	if cfg.UsePostgres() {
		logger.WithField("host", cfg.DBHost).Info("Connected to PostgreSQL database")
	} else {
		logger.WithField("path", cfg.SQLitePath).Info("Connected to SQLite database")
	}

	if err := db.Migrate(dbc); err != nil {
		logger.WithError(err).Fatal("Failed to prepare the database schema")
	}

	directory := store.NewDirectory(dbc)
	posts := store.NewPosts(dbc, directory)
	comments := store.NewComments(dbc, directory)
	likes := store.NewLikes(dbc)

	m := metrics.InitMetrics(prometheus.DefaultRegisterer)
	api := handlers.NewAPI(directory, posts, comments, likes, m, logger)

	logger.WithField("addr", cfg.Addr()).Info("Server starting")
	logger.Fatal(http.ListenAndServe(cfg.Addr(), handlers.NewRouter(api, logger)))
}
