package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter caps how often a caller can hit the expensive model-backed
// endpoints.
type RateLimiter struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRateLimiter creates a new RateLimiter instance
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		rdb: GetRedisClient(),
		ctx: GetContext(),
	}
}

// Config defines rate limit rules
type Config struct {
	MaxCompanionMessages int           // per window
	MaxGenerations       int           // per window
	MessageWindow        time.Duration // time window for companion messages
	GenerationWindow     time.Duration // time window for scenario generation
}

// DefaultConfig returns default rate limit configuration
func DefaultConfig() Config {
	return Config{
		MaxCompanionMessages: 20,
		MaxGenerations:       3,
		MessageWindow:        time.Minute,
		GenerationWindow:     10 * time.Minute,
	}
}

// CheckMessageRateLimit checks if the user can send another companion message
func (rl *RateLimiter) CheckMessageRateLimit(userKey string, config Config) (bool, error) {
	return rl.check(fmt.Sprintf("rate:companion:%s", userKey), config.MaxCompanionMessages)
}

// RecordMessage records a companion message for rate limiting
func (rl *RateLimiter) RecordMessage(userKey string, config Config) error {
	return rl.record(fmt.Sprintf("rate:companion:%s", userKey), config.MessageWindow)
}

// CheckGenerationRateLimit checks if the user can request another generated scenario
func (rl *RateLimiter) CheckGenerationRateLimit(userKey string, config Config) (bool, error) {
	return rl.check(fmt.Sprintf("rate:generate:%s", userKey), config.MaxGenerations)
}

// RecordGeneration records a scenario generation for rate limiting
func (rl *RateLimiter) RecordGeneration(userKey string, config Config) error {
	return rl.record(fmt.Sprintf("rate:generate:%s", userKey), config.GenerationWindow)
}

func (rl *RateLimiter) check(key string, max int) (bool, error) {
	if rl == nil || rl.rdb == nil {
		return false, fmt.Errorf("Redis client not available")
	}

	count, err := rl.rdb.Get(rl.ctx, key).Int()
	if err == redis.Nil {
		// First hit in the window, allow it
		return true, nil
	} else if err != nil {
		return false, err
	}

	if count >= max {
		return false, nil
	}

	return true, nil
}

func (rl *RateLimiter) record(key string, window time.Duration) error {
	if rl == nil || rl.rdb == nil {
		return fmt.Errorf("Redis client not available")
	}

	count, err := rl.rdb.Incr(rl.ctx, key).Result()
	if err != nil {
		return err
	}

	// Set expiration if first time
	if count == 1 {
		rl.rdb.Expire(rl.ctx, key, window)
	}

	return nil
}
