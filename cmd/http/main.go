package main

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/app/delivery/http/controllers"
	"agenda-sync-service/internal/app/delivery/http/middlewares"
	"agenda-sync-service/internal/app/delivery/http/routers"
	"agenda-sync-service/internal/app/drivers/logger"
	"agenda-sync-service/internal/app/services/core/sheetsync"
	"agenda-sync-service/internal/app/services/shared/googleauth"
	"agenda-sync-service/internal/app/services/shared/spreadsheet"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
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

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Sheet sync
	sheetSyncUsecase := newSheetSyncUsecase(bootstrap.InternalConfig, bootstrap.Logger)
	sheetSyncController := controllers.NewSheetSyncController(bootstrap.Logger, sheetSyncUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, sheetSyncController)
}

func newSheetSyncUsecase(internalConfig *config.InternalConfig, zapLogger *zap.Logger) contracts.SheetSyncUsecase {
	var tokenProvider contracts.TokenProvider
	signer, err := googleauth.NewAssertionSigner(internalConfig)
	if err != nil {
		zapLogger.Warn("Spreadsheet credentials unavailable, sync requests will fail until configured", zap.Error(err))
	} else {
		tokenProvider = googleauth.NewTokenProvider(internalConfig, signer, nil, zapLogger)
	}

	serviceFactory := spreadsheet.NewSpreadsheetServiceFactory(internalConfig, nil, zapLogger)
	return sheetsync.NewSheetSyncUsecase(tokenProvider, serviceFactory, internalConfig, zapLogger)
}
