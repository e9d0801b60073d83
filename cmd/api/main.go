package main

import (
	"context"
	"flag"
	"net/http"

	_ "address-datagen/docs"
	"address-datagen/internal/app"
	"address-datagen/internal/config"
	"address-datagen/internal/handler"
	"address-datagen/internal/repository"
	"address-datagen/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	configPath := flag.String("config", "./configs", "config directory or file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := app.SetupLogging(cfg.LogLevel, false); err != nil {
		log.Fatal().Err(err).Msg("cannot set up logging")
	}

	ctx := context.Background()

	// Catalogs come from files or the database
	var store app.CatalogStore
	if cfg.Catalog.Source == config.SourcePostgres {
		conn, err := repository.Connect(ctx, cfg.DBSource, 10)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()
		store = repository.NewRepository(conn)
	}

	cat, err := app.LoadCatalog(ctx, cfg.Catalog, store)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load catalog")
	}

	// Initialize layers
	gen, err := app.NewGenerator(cfg.Generation, cat)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create generator")
	}
	datasetService := service.NewDatasetService(gen, cat)
	sampleHandler := handler.NewSampleHandler(datasetService, cfg.Seed)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/samples", sampleHandler.Samples)
	r.GET("/encode", handler.Encode)
	r.GET("/labels", handler.Labels)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("address", cfg.ServerAddress).Msg("starting server")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
