// Package mock provides test doubles for the integration test suite.
package mock

import (
	"fmt"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisServer *miniredis.Miniredis
	redisClient *redis.Client
)

// NewRedis returns a client connected to the singleton in-process Redis
// server, starting it on first use.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to start miniredis: %v", err))
		}
		redisServer = server
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisClient
}

// ClearRedis removes all keys from the test Redis server.
func ClearRedis() {
	if redisServer != nil {
		redisServer.FlushAll()
	}
}
