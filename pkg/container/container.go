package container

import (
	"context"
	"fmt"
	"time"

	"lostfound-backend/internal/config"
	"lostfound-backend/internal/infrastructure/database"
	"lostfound-backend/internal/infrastructure/storage"
	"lostfound-backend/pkg/logger"

	itemHandler "lostfound-backend/internal/domains/item/handler"
	itemRepo "lostfound-backend/internal/domains/item/repository"
	itemService "lostfound-backend/internal/domains/item/service"
	"lostfound-backend/internal/domains/upload"
	userHandler "lostfound-backend/internal/domains/user/handler"
	userRepo "lostfound-backend/internal/domains/user/repository"
	userService "lostfound-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Every field is a
// singleton living for the whole application lifetime.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Blobs  storage.BlobStore

	// Repositories
	ItemRepo  itemRepo.ItemRepository
	UserRepo  userRepo.UserRepository
	UploadLog upload.LogRepository

	// Services
	ItemService   itemService.ServiceInterface
	UserService   userService.ServiceInterface
	UploadService upload.Service

	// Handlers
	ItemHandler   *itemHandler.ItemHandler
	UserHandler   *userHandler.UserHandler
	UploadHandler *upload.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the dependency graph in order: config, then
// infrastructure, then repositories, services and handlers. Any failure
// aborts startup.
func NewContainer() (*Container, error) {
	logger.Info("Initializing container", nil)

	c := &Container{}

	// Step 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	// Step 2: Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	c.DB = db

	// Step 3: Blob store
	blobs, err := newBlobStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}
	c.Blobs = blobs
	logger.Info("Blob store ready", map[string]interface{}{"driver": cfg.Storage.Driver})

	// Step 4: Repositories
	c.ItemRepo = itemRepo.NewPostgresItemRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(db.Pool)
	c.UploadLog = upload.NewPostgresLogRepository(db.Pool)

	// Step 5: Services
	c.ItemService = itemService.NewItemService(
		c.ItemRepo,
		c.Blobs,
		cfg.App.PublicBaseURL,
		cfg.App.OpTimeout,
	)
	c.UserService = userService.NewUserService(c.UserRepo, cfg.App.OpTimeout)
	c.UploadService = upload.NewService(
		c.UserService,
		c.Blobs,
		c.UploadLog,
		cfg.App.OpTimeout,
	)

	// Step 6: Handlers
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.UploadHandler = upload.NewHandler(c.UploadService)

	logger.Info("Container initialized", nil)
	return c, nil
}

// newBlobStore picks the storage driver from config.
func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.Storage.Driver {
	case "minio":
		return storage.NewMinIOStorage(cfg.MinIO, cfg.Storage.URLPrefix)
	default:
		return storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.URLPrefix)
	}
}

// Cleanup releases resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		logger.Info("Database connections closed", nil)
	}
}
