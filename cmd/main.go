package main

import (
	"net/http"

	authapp "github.com/ecomstack/inventory-service/application/auth"
	inventoryapp "github.com/ecomstack/inventory-service/application/inventory"
	movementapp "github.com/ecomstack/inventory-service/application/movement"
	supplierapp "github.com/ecomstack/inventory-service/application/supplier"
	warehouseapp "github.com/ecomstack/inventory-service/application/warehouse"
	"github.com/ecomstack/inventory-service/cmd/config"
	redisclient "github.com/ecomstack/inventory-service/cmd/redis"
	_ "github.com/ecomstack/inventory-service/docs"
	inventoryRepo "github.com/ecomstack/inventory-service/repository/inventory"
	movementRepo "github.com/ecomstack/inventory-service/repository/movement"
	redisRepo "github.com/ecomstack/inventory-service/repository/redis"
	supplierRepo "github.com/ecomstack/inventory-service/repository/supplier"
	txRepo "github.com/ecomstack/inventory-service/repository/tx"
	warehouseRepo "github.com/ecomstack/inventory-service/repository/warehouse"
	"github.com/ecomstack/inventory-service/thirdparty/catalog"
	"github.com/ecomstack/inventory-service/thirdparty/rabbitmq"
	"github.com/ecomstack/inventory-service/transport"
	"github.com/ecomstack/inventory-service/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title INVENTORY SERVICE API
// @version 1.0
// @description Multi-warehouse inventory and stock movement API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(db)
	SupplierRepo := supplierRepo.NewSupplierRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	MovementRepo := movementRepo.NewMovementRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize catalog client with Redis-backed price cache
	CatalogClient := catalog.NewHTTPClient(
		cfg.Catalog.BaseURL,
		cfg.Catalog.APIKey,
		cfg.Catalog.RequestTimeout,
		cfg.Catalog.PriceCacheTTL,
		RedisRepo,
	)

	// Initialize RabbitMQ publisher; the service still works without it,
	// movement completion events are simply not emitted.
	publisher, err := rabbitmq.NewPublisher(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
	)
	if err != nil {
		logger.Error("err connect rabbitmq, events disabled", zap.String("error", err.Error()))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)
	WarehouseApp := warehouseapp.NewWarehouseApp(WarehouseRepo)
	SupplierApp := supplierapp.NewSupplierApp(SupplierRepo)
	InventoryApp := inventoryapp.NewInventoryApp(InventoryRepo, WarehouseRepo, CatalogClient)
	MovementApp := movementapp.NewMovementApp(cfg, TxRepo, MovementRepo, InventoryRepo, WarehouseRepo, SupplierRepo, publisher)

	httpTransport := transport.NewTransport(
		WarehouseApp,
		SupplierApp,
		InventoryApp,
		MovementApp,
		AuthApp,
		cfg.Internal.APIKey,
		db,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
