package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/weaselparts/internal/adapter/storage"
	"github.com/rl1809/weaselparts/internal/config"
	"github.com/rl1809/weaselparts/internal/core/service"
	"github.com/rl1809/weaselparts/internal/port"
)

// backend holds the open connections behind an InventoryService.
type backend struct {
	db      *sql.DB
	rdb     *redis.Client
	adapter *storage.SQLAdapter
	cache   port.CacheRepository
}

func openBackend(ctx context.Context, cfg config.Config, logger *zap.Logger) (*backend, error) {
	b := &backend{}

	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := storage.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		b.db, b.adapter = db, storage.NewSQLiteAdapter(db)
		logger.Info("connected to sqlite", zap.String("path", cfg.SQLitePath))
	default:
		db, err := storage.OpenMySQL(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		b.db, b.adapter = db, storage.NewMySQLAdapter(db)
		logger.Info("connected to mysql", zap.String("host", cfg.DBHost), zap.String("database", cfg.DBDatabase))
	}

	if cfg.RedisAddr == "" {
		b.cache = storage.NewMemoryCache()
		logger.Info("using in-process cache")
		return b, nil
	}

	b.rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := b.rdb.Ping(ctx).Err(); err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	b.cache = storage.NewRedisAdapter(b.rdb)
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	return b, nil
}

func (b *backend) service(cfg config.Config, logger *zap.Logger) *service.InventoryService {
	svc := service.NewInventoryService(b.adapter, b.cache, logger)
	svc.SetBarcodePolicy(cfg.Scan.MinIdentifierLen, cfg.Scan.MaxIdentifierLen)
	return svc
}

func (b *backend) Close() {
	if b.rdb != nil {
		b.rdb.Close()
	}
	if b.db != nil {
		b.db.Close()
	}
}
