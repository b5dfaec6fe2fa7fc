package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is the latest reachability snapshot of the backing services.
// Nil fields mean the dependency is not configured.
type HealthStatus struct {
	Mongo     *bool           `json:"mongo,omitempty"`
	Redis     map[string]bool `json:"redis,omitempty"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// CheckHealth pings every configured dependency once and stores the result.
func CheckHealth(ctx context.Context, redisClients map[string]*redis.Client, mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if len(redisClients) > 0 {
		status.Redis = make(map[string]bool, len(redisClients))
		for name, client := range redisClients {
			status.Redis[name] = client.Ping(ctx).Err() == nil
		}
	}
	if mongoClient != nil {
		ok := mongoClient.Ping(ctx, nil) == nil
		status.Mongo = &ok
	}

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, interval time.Duration, redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			status := CheckHealth(ctx, redisClients, mongoClient)
			if status.Mongo != nil && !*status.Mongo {
				GetLogger().Warn("MongoDB health check failed")
			}
			for name, ok := range status.Redis {
				if !ok {
					GetLogger().Warn("Redis health check failed", zap.String("client", name))
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
