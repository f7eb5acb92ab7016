package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mserebryaakov/foodcart-service/config"
	"github.com/mserebryaakov/foodcart-service/internal/catalog"
	"github.com/mserebryaakov/foodcart-service/internal/geo"
	"github.com/mserebryaakov/foodcart-service/internal/order"
	"github.com/mserebryaakov/foodcart-service/pkg/httpserver"
	"github.com/mserebryaakov/foodcart-service/pkg/kafka"
	"github.com/mserebryaakov/foodcart-service/pkg/logger"
	"github.com/mserebryaakov/foodcart-service/pkg/postgres"
	"github.com/mserebryaakov/foodcart-service/pkg/redis"
)

func main() {
	log := logger.NewLogger("debug", &logger.MainLogHook{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	env, err := config.GetEnvironment()
	if err != nil {
		log.Fatalf(err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalogLog := logger.NewLogger(env.LogLvl, &catalog.CatalogLogHook{})
	geoLog := logger.NewLogger(env.LogLvl, &geo.GeoLogHook{})
	geocoderLog := logger.NewLogger(env.LogLvl, &geo.GeocoderLogHook{})
	orderLog := logger.NewLogger(env.LogLvl, &order.OrderLogHook{})

	postgresConfig := postgres.Config{
		Host:     env.PgHost,
		Port:     env.PgPort,
		Username: env.PgUser,
		Password: env.PgPassword,
		DBName:   env.PgDbName,
		SSLMode:  env.SSLMode,
		TimeZone: env.TimeZone,
	}

	db, err := postgres.Connect(ctx, postgresConfig, log)
	if err != nil {
		log.Fatalf("failed connection to db: %v", err)
	}

	if err := catalog.RunSchemaMigration(db); err != nil {
		log.Fatalf("failed catalog migration: %v", err)
	}
	if err := order.RunSchemaMigration(db); err != nil {
		log.Fatalf("failed order migration: %v", err)
	}
	if err := geo.RunSchemaMigration(db); err != nil {
		log.Fatalf("failed geo migration: %v", err)
	}

	redisClient, err := redis.NewClient(ctx, env.RedisAddr, env.RedisPassword)
	if err != nil {
		log.Fatalf("failed connection to redis: %v", err)
	}
	if redisClient == nil {
		log.Infof("REDIS_ADDR is empty, places are served from postgres only")
	} else {
		defer redisClient.Close()
	}

	kafkaWriter := kafka.NewWriter(env.KafkaBroker, cfg.Order.EventsTopic)
	if kafkaWriter == nil {
		log.Infof("KAFKA_BROKER is empty, order events are disabled")
	} else {
		defer kafkaWriter.Close()
	}

	if env.YandexAPIKey == "" {
		log.Warnf("YANDEX_API_KEY is empty, geocoding requests will be rejected")
	}

	catalogRepository := catalog.NewStorage(db)
	catalogService := catalog.NewService(catalogRepository, catalogLog)

	placeCache := geo.NewCache(geo.NewStorage(db), redisClient, cfg.Cache.TTL, geoLog)
	geocoder := geo.NewYandexGeocoder(geo.GeocoderConfig{
		APIKey:  env.YandexAPIKey,
		BaseURL: cfg.Geocoder.BaseURL,
		Timeout: cfg.Geocoder.Timeout,
	}, geocoderLog)
	resolver := geo.NewResolver(placeCache, geocoder, geo.ResolverConfig{
		Concurrency: cfg.Geocoder.Concurrency,
	}, geoLog)

	orderRepository := order.NewStorage(db)
	orderService := order.NewService(
		orderRepository,
		catalogService,
		resolver,
		order.NewEventPublisher(kafkaWriter),
		cfg.Order.PhoneRegion,
		orderLog,
	)

	router := gin.New()
	router.Use(gin.Recovery(), httpserver.RequestLogger(log))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().Format(time.RFC3339)})
	})

	catalogHandler := catalog.NewHandler(catalogService, catalogLog)
	catalogHandler.Register(router)

	orderHandler := order.NewHandler(orderService, orderLog)
	orderHandler.Register(router)

	server := new(httpserver.Server)

	go func() {
		if err := server.Run(cfg.Server.Port, router); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed running server %v", err)
		}
	}()

	log.Infof("Server started on port %s", cfg.Server.Port)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	oscall := <-interrupt
	log.Infof("Shutdown server, %s", oscall)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error occured on server shutting down: %v", err)
	}
}
