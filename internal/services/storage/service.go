package storage

import (
	"time"

	"github.com/ptanh/image-resizer/internal/config"
	"github.com/redis/go-redis/v9"
	storage_go "github.com/supabase-community/storage-go"
)

type StorageService struct {
	sbClient      *storage_go.Client
	redisClient   *redis.Client
	bucket        string
	uploadEnabled bool
	cacheDuration time.Duration
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	var sbClient *storage_go.Client
	if cfg.Supabase.URL != "" {
		sbClient = storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.KEY, nil)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &StorageService{
		sbClient:      sbClient,
		redisClient:   redisClient,
		bucket:        cfg.Supabase.BUCKET,
		uploadEnabled: sbClient != nil && cfg.Supabase.BUCKET != "",
		cacheDuration: cfg.Storage.CacheDuration,
	}, nil
}

// UploadEnabled reports whether a storage backend is configured.
func (s *StorageService) UploadEnabled() bool {
	return s.uploadEnabled
}
