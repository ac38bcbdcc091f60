package app

import (
	"database/sql"

	"go-leaveai/internal/config"
	"go-leaveai/internal/database"
	"go-leaveai/internal/middleware"
	"go-leaveai/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// infra holds the shared connections of one process.
type infra struct {
	cfg    *config.Config
	gormDB *gorm.DB
	sqlDB  *sql.DB
	redis  *redis.Client
	kafka  *kafkago.Writer
}

func (i *infra) Close() {
	if i.kafka != nil {
		_ = i.kafka.Close()
	}
	if i.redis != nil {
		_ = i.redis.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connectInfra(cfg *config.Config, withRedis, withKafka bool) (*infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.Pool(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	in := &infra{cfg: cfg, gormDB: gormDB, sqlDB: sqlDB}

	if withRedis {
		in.redis, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Database.MaxRetries)
		if err != nil {
			in.Close()
			return nil, err
		}
	}

	if withKafka {
		in.kafka, err = connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
		if err != nil {
			in.Close()
			return nil, err
		}
	}
	return in, nil
}

// BuildApp connects infrastructure, applies migrations and registers every
// route on router. The returned close func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app.api")

	in, err := connectInfra(cfg, true, true)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(in.sqlDB, logger); err != nil {
			in.Close()
			return nil, err
		}
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(20, 40),
	)

	if err := registerModules(router, in); err != nil {
		in.Close()
		return nil, err
	}
	return in.Close, nil
}
