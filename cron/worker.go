package cron

import (
	"context"
	"log"
	"time"

	"oxywell/config"
	"oxywell/services/provider"
	"oxywell/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeGeocodeRefresh = "geocode:refresh"

// InitGeocodeWorker runs the async worker in background. The handler
// re-geocodes every stored provider still missing coordinates, using a
// force-fresh geocoder so stale upstream cache entries get replaced.
func InitGeocodeWorker(svc provider.ProviderService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1, // geocode refresh is rate-limited upstream, one at a time
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeGeocodeRefresh, handleGeocodeRefresh(svc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[GeocodeWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[GeocodeWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[GeocodeWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleGeocodeRefresh(svc provider.ProviderService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		logger.Info("Geocode refresh started")

		updated, err := svc.RegeocodeAll(ctx)
		if err != nil {
			logger.Error("Geocode refresh failed", zap.Int("updated", updated), zap.Error(err))
			return err
		}

		logger.Info("Geocode refresh complete", zap.Int("updated", updated))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[GeocodeWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
