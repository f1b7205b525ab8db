package main

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/app/delivery/messaging"
	"agenda-sync-service/internal/app/drivers/logger"
	rabbitmq "agenda-sync-service/internal/app/drivers/messaging"
	"agenda-sync-service/internal/app/services/core/sheetsync"
	"agenda-sync-service/internal/app/services/shared/googleauth"
	"agenda-sync-service/internal/app/services/shared/spreadsheet"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	conn := rabbitmq.NewRabbitMQ(driverConfig)
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open rabbitMQ channel: %v", err)
	}

	consumer, err := messaging.NewSheetSyncConsumer(ch, newSheetSyncUsecase(internalConfig, zapLogger), internalConfig, zapLogger)
	if err != nil {
		log.Fatalf("Failed to initialize sheet sync consumer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consumer.Run(ctx); err != nil {
			zapLogger.Error("Sheet sync consumer stopped", zap.Error(err))
		}
	}()

	bootstrap := &config.Bootstrap{
		Logger:         zapLogger,
		RabbitMQ:       conn,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		WorkerStop: func() {
			cancel()
			<-done
		},
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case <-c:
	case <-done:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer shutdownCancel()

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Consumer exiting")
}

func newSheetSyncUsecase(internalConfig *config.InternalConfig, zapLogger *zap.Logger) contracts.SheetSyncUsecase {
	var tokenProvider contracts.TokenProvider
	signer, err := googleauth.NewAssertionSigner(internalConfig)
	if err != nil {
		zapLogger.Warn("Spreadsheet credentials unavailable, messages will be dead-lettered until configured", zap.Error(err))
	} else {
		tokenProvider = googleauth.NewTokenProvider(internalConfig, signer, nil, zapLogger)
	}

	serviceFactory := spreadsheet.NewSpreadsheetServiceFactory(internalConfig, nil, zapLogger)
	return sheetsync.NewSheetSyncUsecase(tokenProvider, serviceFactory, internalConfig, zapLogger)
}
