package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"locallibrary/internal/config"
	authorHandler "locallibrary/internal/domains/author/handler"
	authorRepo "locallibrary/internal/domains/author/repository"
	authorService "locallibrary/internal/domains/author/service"
	bookHandler "locallibrary/internal/domains/book/handler"
	bookRepo "locallibrary/internal/domains/book/repository"
	bookService "locallibrary/internal/domains/book/service"
	catalogHandler "locallibrary/internal/domains/catalog/handler"
	genreHandler "locallibrary/internal/domains/genre/handler"
	genreRepo "locallibrary/internal/domains/genre/repository"
	genreService "locallibrary/internal/domains/genre/service"
	infraCache "locallibrary/internal/infrastructure/cache"
	"locallibrary/internal/infrastructure/database"
	"locallibrary/internal/shared/middleware"
	"locallibrary/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Every component is built
// once in NewContainer and shared for the lifetime of the process.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// Repositories
	GenreRepo  genreRepo.RepositoryInterface
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// Services
	GenreService  genreService.ServiceInterface
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// Handlers
	GenreHandler  *genreHandler.GenreHandler
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	IndexHandler  *catalogHandler.IndexHandler

	FormLimiter *middleware.RateLimiter
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Info().Msg("[Container] initializing")

	c := &Container{}

	// ----------------------------------------
	// STEP 1: CONFIG
	// ----------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	// ----------------------------------------
	// STEP 2: DATABASE
	// ----------------------------------------
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := c.DB.HealthCheck(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	if cfg.Catalog.AutoMigrate {
		applied, err := c.DB.Migrate(ctx)
		if err != nil {
			c.DB.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info().Strs("applied", applied).Msg("[Container] migrations up to date")
	}

	// ----------------------------------------
	// STEP 3: CACHE
	// ----------------------------------------
	c.Cache = c.initCache(ctx)

	// ----------------------------------------
	// STEP 4-6: REPOSITORIES, SERVICES, HANDLERS
	// ----------------------------------------
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("[Container] initialized")
	return c, nil
}

// initCache falls back to a no-op cache when Redis is disabled or unreachable;
// the catalog stays correct without it.
func (c *Container) initCache(ctx context.Context) cache.Cache {
	if !c.Config.Redis.Enabled {
		log.Info().Msg("[Container] redis disabled, caching off")
		return cache.NewNoop()
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Str("host", c.Config.Redis.Host).Msg("[Container] redis unavailable, caching off")
		_ = rc.Close()
		return cache.NewNoop()
	}

	log.Info().Str("host", c.Config.Redis.Host).Msg("[Container] redis connected")
	return rc
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	ttl := c.Config.Redis.CacheTTL

	c.GenreRepo = genreRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	// The book repository answers "which books reference X" for the guarded
	// deletes and the detail pages.
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.BookRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)

	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorService, c.GenreService)
}

func (c *Container) initHandlers() {
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.IndexHandler = catalogHandler.NewIndexHandler(c.BookService, c.AuthorService, c.GenreService)

	c.FormLimiter = middleware.NewRateLimiter(c.Config.Catalog.FormRateLimit, c.Config.Catalog.FormRateBurst)
}

// Cleanup releases the database pool and the Redis client.
func (c *Container) Cleanup() {
	log.Info().Msg("[Container] cleaning up")

	if c.DB != nil && c.DB.Pool != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("[Container] failed to close database")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("[Container] failed to close redis")
		}
	}
}
