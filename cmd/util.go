package cmd

import (
	"foliocast/api"
	"foliocast/internal/currency"
	"foliocast/internal/logger"
	"foliocast/internal/repository"
	"foliocast/internal/service"
	"foliocast/pkg/exchangerate"
	"foliocast/pkg/marketdata"
	"os"

	"github.com/go-redis/redis/v8"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitializeDependencies() (*api.ApiHandler, error) {
	log := logger.New()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	store := repository.NewRedisStore(redisClient)

	marketData := marketdata.NewClient()
	converter := currency.NewConverter(exchangerate.NewClient(), log)

	return &api.ApiHandler{
		PortfolioService: service.NewPortfolioService(store, marketData, converter),
		AccountService:   service.NewAccountService(store, marketData),
	}, nil
}
