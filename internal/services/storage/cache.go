package storage

import (
	"context"
	"crypto/md5"
	"fmt"

	"github.com/ptanh/image-resizer/internal/models"
	"github.com/redis/go-redis/v9"
)

func (s *StorageService) GetFromCache(ctx context.Context, cacheKey string) ([]byte, error) {
	data, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return data, nil
}

func (s *StorageService) SetCache(ctx context.Context, cacheKey string, data []byte) error {
	return s.redisClient.Set(ctx, cacheKey, data, s.cacheDuration).Err()
}

// GenerateCacheKey derives a key from the uploaded bytes and every
// parameter that affects the output, so two different images sharing a
// filename never serve each other's result. Quality is deliberately
// excluded: it never reaches the encoder, so requests differing only
// in quality produce identical images.
func (s *StorageService) GenerateCacheKey(data []byte, req *models.ResizeRequest) string {
	hash := md5.New()

	hash.Write(data)

	switch req.Mode {
	case models.ModeScale:
		hash.Write([]byte(fmt.Sprintf("scale_%g", req.ScaleFactor)))
	case models.ModeExplicit:
		hash.Write([]byte(fmt.Sprintf("explicit_%d_%d", req.TargetWidth, req.TargetHeight)))
	}

	return fmt.Sprintf("img_cache:%x", hash.Sum(nil))
}

func (s *StorageService) GetCacheStats(ctx context.Context) (map[string]interface{}, error) {
	info, err := s.redisClient.Info(ctx, "memory").Result()
	if err != nil {
		return nil, err
	}

	dbSize, err := s.redisClient.DBSize(ctx).Result()
	if err != nil {
		return nil, err
	}

	stats := map[string]interface{}{
		"db_keys": dbSize,
		"info":    info,
	}

	return stats, nil
}
