package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// RedisHealth reports each Redis client by its role.
type RedisHealth struct {
	Cache           bool `json:"cache"`
	Auth            bool `json:"auth"`
	BookingSessions bool `json:"bookingSessions"`
}

// HealthStatus is the last observed state of the backing stores.
type HealthStatus struct {
	Mongo     bool        `json:"mongo"`
	Redis     RedisHealth `json:"redis"`
	CheckedAt time.Time   `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the cache, auth and booking-session Redis clients
// and Mongo once a minute and keeps the snapshot in memory for /health.
func StartHealthMonitor(cache, auth, sessions *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		ping := func(c *redis.Client) bool { return c.Ping(ctx).Err() == nil }

		for range ticker.C {
			snapshot := HealthStatus{
				Mongo: mongoClient.Ping(ctx, nil) == nil,
				Redis: RedisHealth{
					Cache:           ping(cache),
					Auth:            ping(auth),
					BookingSessions: ping(sessions),
				},
				CheckedAt: time.Now(),
			}

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
