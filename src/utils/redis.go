package utils

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"Backend-Career-Advisor/src/models"

	"github.com/redis/go-redis/v9"
)

// PredictionCache remembers class ids per model version and feature vector.
// A nil client turns every call into a miss so the service runs without Redis.
type PredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPredictionCache(client *redis.Client, ttl time.Duration) *PredictionCache {
	return &PredictionCache{client: client, ttl: ttl}
}

func predictionKey(version string, v models.FeatureVector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return fmt.Sprintf("prediction:%s:%s", version, strings.Join(parts, ","))
}

func (p *PredictionCache) Get(ctx context.Context, version string, v models.FeatureVector) (int, bool, error) {
	if p == nil || p.client == nil {
		return 0, false, nil
	}
	val, err := p.client.Get(ctx, predictionKey(version, v)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read cached prediction: %w", err)
	}
	return val, true, nil
}

func (p *PredictionCache) Set(ctx context.Context, version string, v models.FeatureVector, classID int) error {
	if p == nil || p.client == nil {
		return nil
	}
	if err := p.client.Set(ctx, predictionKey(version, v), classID, p.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache prediction: %w", err)
	}
	return nil
}

// TokenBlacklist holds revoked admin tokens until they would have expired.
type TokenBlacklist struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Add revokes token. Without Redis this is a no-op.
func (b *TokenBlacklist) Add(ctx context.Context, token string, expiresIn time.Duration) error {
	if b == nil || b.client == nil || expiresIn <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, "blacklist:"+token, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (b *TokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	if b == nil || b.client == nil {
		return false, nil
	}
	n, err := b.client.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return n > 0, nil
}
