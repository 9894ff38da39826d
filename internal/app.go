package internal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	logger_adapter "agency-service/internal/adapters/logger"
	postgres_adapter "agency-service/internal/adapters/postgres"
	rabbitmq_adapter "agency-service/internal/adapters/rabbitmq"
	"agency-service/internal/adapters/rest"
	"agency-service/internal/configs"
	"agency-service/internal/constants"
	"agency-service/internal/core/port"
	"agency-service/internal/core/usecase"
	fluentlogger "agency-service/pkg/fluent_logger"
	"agency-service/pkg/postgres"
	"agency-service/pkg/rabbitmq/rabbitmq_common"
	"agency-service/pkg/rabbitmq/rabbitmq_producer"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	dealEvents   port.DealEventsPort
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. ХРАНИЛИЩЕ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL: appConfig.Database.URL,
		MaxConns:    int32(appConfig.Database.MaxConns),
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	realtorRepo, err := postgres_adapter.NewRealtorRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create realtor repository: %w", err)
	}
	clientRepo, err := postgres_adapter.NewClientRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create client repository: %w", err)
	}
	propertyRepo, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	offerRepo, err := postgres_adapter.NewOfferRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create offer repository: %w", err)
	}
	demandRepo, err := postgres_adapter.NewDemandRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create demand repository: %w", err)
	}
	dealRepo, err := postgres_adapter.NewDealRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create deal repository: %w", err)
	}
	appLogger.Info("All persistence adapters initialized.", nil)

	// --- 3. RABBITMQ (опционально) ---
	var dealEvents port.DealEventsPort
	if appConfig.RabbitMQ.Enabled {
		rmqLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

		connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, rmqLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}

		producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.AgencyExchange,
			ExchangeType:             "topic",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rmqLogger,
		}, connManager)
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ publisher", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create rabbitmq publisher: %w", err)
		}

		dealEvents, err = rabbitmq_adapter.NewDealEventsAdapter(producer, constants.RoutingKeyDealCreated)
		if err != nil {
			appLogger.Error("Failed to create deal events adapter", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create deal events adapter: %w", err)
		}
		appLogger.Info("RabbitMQ producer initialized.", port.Fields{"exchange": constants.AgencyExchange})
	}

	// --- 4. USE CASES ---
	computeCommissionsUC := usecase.NewComputeDealCommissionsUseCase(dealRepo, offerRepo, demandRepo, propertyRepo, realtorRepo)

	apiHandlers := rest.Handlers{
		Realtors: rest.NewRealtorHandler(
			usecase.NewCreateRealtorUseCase(realtorRepo),
			usecase.NewUpdateRealtorUseCase(realtorRepo),
			usecase.NewDeleteRealtorUseCase(realtorRepo),
			usecase.NewGetRealtorsUseCase(realtorRepo),
			usecase.NewGetRealtorByIDUseCase(realtorRepo),
		),
		Clients: rest.NewClientHandler(
			usecase.NewCreateClientUseCase(clientRepo),
			usecase.NewUpdateClientUseCase(clientRepo),
			usecase.NewDeleteClientUseCase(clientRepo),
			usecase.NewGetClientsUseCase(clientRepo),
			usecase.NewGetClientByIDUseCase(clientRepo),
		),
		Properties: rest.NewPropertyHandler(
			usecase.NewCreatePropertyUseCase(propertyRepo),
			usecase.NewUpdatePropertyUseCase(propertyRepo),
			usecase.NewDeletePropertyUseCase(propertyRepo),
			usecase.NewGetPropertiesUseCase(propertyRepo),
			usecase.NewGetPropertyByIDUseCase(propertyRepo),
		),
		Offers: rest.NewOfferHandler(
			usecase.NewCreateOfferUseCase(offerRepo, clientRepo, realtorRepo, propertyRepo),
			usecase.NewUpdateOfferUseCase(offerRepo, clientRepo, realtorRepo, propertyRepo),
			usecase.NewDeleteOfferUseCase(offerRepo, dealRepo),
			usecase.NewGetOffersUseCase(offerRepo),
			usecase.NewGetOfferByIDUseCase(offerRepo),
		),
		Demands: rest.NewDemandHandler(
			usecase.NewCreateDemandUseCase(demandRepo, clientRepo, realtorRepo),
			usecase.NewUpdateDemandUseCase(demandRepo, clientRepo, realtorRepo),
			usecase.NewDeleteDemandUseCase(demandRepo, dealRepo),
			usecase.NewGetDemandsUseCase(demandRepo),
			usecase.NewGetDemandByIDUseCase(demandRepo),
			usecase.NewFindMatchingOffersUseCase(demandRepo, offerRepo, propertyRepo, dealRepo),
		),
		Deals: rest.NewDealHandler(
			usecase.NewCreateDealUseCase(dealRepo, demandRepo, offerRepo, computeCommissionsUC, dealEvents),
			usecase.NewUpdateDealUseCase(dealRepo, demandRepo, offerRepo),
			usecase.NewDeleteDealUseCase(dealRepo),
			usecase.NewGetDealsUseCase(dealRepo),
			usecase.NewGetDealByIDUseCase(dealRepo),
			computeCommissionsUC,
		),
	}

	apiServer := rest.NewServer(appConfig.Rest.PORT, apiHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		dealEvents:   dealEvents,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dealEvents != nil {
			if err := a.dealEvents.Close(); err != nil {
				a.logger.Error("Error closing deal events publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
