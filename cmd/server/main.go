package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/config"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/repository/mongodb"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/repository/remote"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/scheduler"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/server/handlers"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/server/router"
	articulossvc "github.com/FranciscoAraya01/sistemaOficina-ft/internal/service/articulos"
	clientessvc "github.com/FranciscoAraya01/sistemaOficina-ft/internal/service/clientes"
	pedidossvc "github.com/FranciscoAraya01/sistemaOficina-ft/internal/service/pedidos"
	reportingsvc "github.com/FranciscoAraya01/sistemaOficina-ft/internal/service/reporting"
	"github.com/FranciscoAraya01/sistemaOficina-ft/pkg/clients/officeapi"
	"github.com/FranciscoAraya01/sistemaOficina-ft/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	apiClient := officeapi.NewClient(cfg.Upstream)

	clienteRepo := remote.NewClienteRepository(apiClient, baseLogger.Named("repo.clientes"))
	articuloRepo := remote.NewArticuloRepository(apiClient, baseLogger.Named("repo.articulos"))
	pedidoRepo := remote.NewPedidoRepository(apiClient, baseLogger.Named("repo.pedidos"))

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	clientesSvc := clientessvc.NewService(clienteRepo, baseLogger.Named("svc.clientes"))
	articulosSvc := articulossvc.NewService(articuloRepo, baseLogger.Named("svc.articulos"))
	pedidosSvc := pedidossvc.NewService(pedidoRepo, clienteRepo, articuloRepo, baseLogger.Named("svc.pedidos"))
	reportingSvc := reportingsvc.NewService(pedidoRepo, mongoRepo, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		Clientes:  handlers.NewClienteHandler(clientesSvc, baseLogger.Named("handlers.clientes")),
		Articulos: handlers.NewArticuloHandler(articulosSvc, baseLogger.Named("handlers.articulos")),
		Pedidos:   handlers.NewPedidoHandler(pedidosSvc, baseLogger.Named("handlers.pedidos")),
		Reportes:  handlers.NewReporteHandler(reportingSvc, baseLogger.Named("handlers.reportes")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
