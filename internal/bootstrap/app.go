package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"carpoolhub/internal/cache"
	"carpoolhub/internal/config"
	"carpoolhub/internal/model"
	redisClient "carpoolhub/internal/platform/redis"
	sqliteClient "carpoolhub/internal/platform/sqlite"
)

type App struct {
	Config       *config.Config
	DB           *gorm.DB
	Redis        *redis.Client
	SessionStore sessions.Store

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	db, err := sqliteClient.New(ctx, cfg.SQLite.Path)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	var redisCli *redis.Client
	var store sessions.Store
	if cfg.Session.Store == config.SessionStoreRedis {
		redisCli, err = redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		store = cache.NewRedisStore(redisCli, []byte(cfg.Session.Secret))
	} else {
		store = cookie.NewStore([]byte(cfg.Session.Secret))
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAgeSeconds,
		HttpOnly: true,
	})

	return &App{
		Config:       cfg,
		DB:           db,
		Redis:        redisCli,
		SessionStore: store,
		StartedAt:    time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
