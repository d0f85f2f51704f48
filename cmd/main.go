package main

import (
	"log"

	"github.com/nsmeele/magistra/internal/bot"
	"github.com/nsmeele/magistra/internal/client"
	"github.com/nsmeele/magistra/internal/config"
	"github.com/nsmeele/magistra/internal/repository"
	"github.com/nsmeele/magistra/internal/service"
	"github.com/nsmeele/magistra/internal/storage/cache"
	"github.com/nsmeele/magistra/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	clients := client.InitClients()
	services := service.InitServices(clients, repos, cfg.Quiz, logger)
	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache, cfg.Quiz.HistoryLimit)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
