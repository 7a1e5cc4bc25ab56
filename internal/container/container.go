package container

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/config"
	"github.com/oksasatya/go-ddd-blog/internal/application"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/migrations"
	pginfra "github.com/oksasatya/go-ddd-blog/internal/infrastructure/postgres"
	sqliteinfra "github.com/oksasatya/go-ddd-blog/internal/infrastructure/sqlite"
	"github.com/oksasatya/go-ddd-blog/pkg/flash"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

// Container carries the constructed application components.
// It is built once at startup and handed to the router explicitly.
type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Users   *application.UserService
	Posts   *application.PostService
	Flash   flash.Store
	Cookies *helpers.Manager

	closers []func()
}

// Close releases every resource Build acquired, in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Stores bundles the repositories for one storage backend.
type Stores struct {
	Users repository.UserRepository
	Posts repository.PostRepository
}

// Build opens storage for cfg.DBDriver, applies migrations and wires the optional
// redis and RabbitMQ integrations. Call Close when done.
func Build(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger, Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)}

	stores, err := c.openStores(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}

	hasher, err := helpers.NewPasswordHasher(cfg.PasswordHashMethod, cfg.PBKDF2Iterations, cfg.BcryptCost)
	if err != nil {
		c.Close()
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unreachable, flash messages may be lost")
		}
	}

	var events application.EventPublisher
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable, lifecycle events disabled")
		} else {
			c.closers = append(c.closers, pub.Close)
			events = pub
		}
	}

	c.Assemble(stores, hasher, rdb, events)
	return c, nil
}

// Assemble builds services and the flash store from already constructed parts.
func (c *Container) Assemble(stores Stores, hasher *helpers.PasswordHasher, rdb *redis.Client, events application.EventPublisher) {
	c.Users = application.NewUserService(stores.Users, hasher, events, c.Logger)
	c.Posts = application.NewPostService(stores.Posts, events, c.Logger)
	if rdb != nil {
		c.Flash = flash.NewRedisStore(rdb, c.Cookies, c.Logger)
	} else {
		c.Flash = flash.NewCookieStore(c.Cookies)
	}
}

func (c *Container) openStores(ctx context.Context) (Stores, error) {
	cfg := c.Config
	switch cfg.DBDriver {
	case migrations.DialectPostgres:
		if err := migrations.Up(migrations.DialectPostgres, cfg.PostgresDSN(), c.Logger); err != nil {
			return Stores{}, fmt.Errorf("migrate: %w", err)
		}
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return Stores{}, fmt.Errorf("connect postgres: %w", err)
		}
		c.closers = append(c.closers, pool.Close)
		return Stores{Users: pginfra.NewUserRepository(pool), Posts: pginfra.NewPostRepository(pool)}, nil

	case migrations.DialectSQLite, "sqlite3":
		db, err := sqliteinfra.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return Stores{}, fmt.Errorf("open sqlite: %w", err)
		}
		c.closers = append(c.closers, func() { _ = db.Close() })
		if err := migrations.Up(migrations.DialectSQLite, sqliteinfra.DSN(cfg.SQLitePath), c.Logger); err != nil {
			return Stores{}, fmt.Errorf("migrate: %w", err)
		}
		return Stores{Users: sqliteinfra.NewUserRepository(db), Posts: sqliteinfra.NewPostRepository(db)}, nil

	default:
		return Stores{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
