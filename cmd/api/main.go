package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"furnex/internal/config"
	"furnex/internal/database"
	"furnex/internal/domain"
	"furnex/internal/middleware"
	"furnex/internal/modules/auth"
	"furnex/internal/modules/catalog"
	"furnex/internal/modules/client"
	"furnex/internal/modules/customsize"
	"furnex/internal/modules/furniture"
	jwtsvc "furnex/internal/pkg/jwt"
	"furnex/internal/pkg/upload"
	"furnex/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	uploads := upload.NewSaver(cfg.UploadDir, "/uploads")

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)

	authService := auth.NewService(userRepo, clientRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(
		repository.NewEntityRepository[domain.Color](db),
		repository.NewEntityRepository[domain.Room](db),
		repository.NewEntityRepository[domain.Category](db),
		repository.NewEntityRepository[domain.Material](db),
		repository.NewEntityRepository[domain.Pattern](db),
		repository.NewCatalogPhotoRepository(db),
	)
	catalogHandler := catalog.NewHandler(catalogService, uploads)

	furnitureService := furniture.NewService(db)
	furnitureHandler := furniture.NewHandler(furnitureService, uploads)

	customSizeService := customsize.NewService(db)
	customSizeHandler := customsize.NewHandler(customSizeService)

	clientService := client.NewService(db)
	clientHandler := client.NewHandler(clientService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/uploads", cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		furnitureHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			catalogHandler.RegisterProtectedRoutes(protected)
			furnitureHandler.RegisterProtectedRoutes(protected)
			customSizeHandler.RegisterClientRoutes(protected)
			clientHandler.RegisterRoutes(protected)
		}

		// worker
		worker := v1.Group("/")
		worker.Use(middleware.JWTAuth(j), middleware.WorkerOnly())
		{
			customSizeHandler.RegisterWorkerRoutes(worker)
			furnitureHandler.RegisterWorkerRoutes(worker)
			catalogHandler.RegisterWorkerRoutes(worker)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
