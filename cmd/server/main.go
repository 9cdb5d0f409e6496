package main

import (
	"context"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/eventhotel/booking-api/config"
	"github.com/eventhotel/booking-api/internal/app"
	"github.com/eventhotel/booking-api/internal/cache"
	"github.com/eventhotel/booking-api/internal/database"
	"github.com/eventhotel/booking-api/internal/mq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	redisCache, err := cache.NewRedisCache(cfg.CacheURL)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Fatal("failed to reach redis", zap.Error(err))
	}

	var mqConn *amqp.Connection
	if cfg.MQURL != "" {
		mqConn, err = mq.NewMQConn(cfg.MQURL)
		if err != nil {
			logger.Fatal("failed to connect to rabbitmq", zap.Error(err))
		}
	} else {
		logger.Warn("RABBIT_MQ_URL not set, booking events disabled")
	}

	a := app.New(cfg, db, redisCache, mqConn, logger)
	if err := a.Init(); err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}
	defer a.Close()

	r := a.Router()
	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
