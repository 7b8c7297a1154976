package initializers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"workplanner/internal/handlers/mdlwr"
	"workplanner/pkg/planentry"
	"workplanner/pkg/team"
	"workplanner/pkg/user"

	"go.uber.org/zap"
)

func RunWorkPlanner() {
	startGetEnv()
	cfg := loadConfig()

	zapLogger := startLogger(cfg)

	defer func(zapLogger *zap.Logger) {
		err := zapLogger.Sync()
		if err != nil {
			log.Println("Error syncing zap logger:", err)
		}
	}(zapLogger)

	logger := zapLogger.Sugar()
	db := startPostgres(cfg)

	migrateSchema(context.Background(), cfg, logger, db)

	repos := Repos{
		Users:       user.NewUsersRepoPg(logger, db),
		Teams:       team.NewTeamsRepoPg(logger, db),
		PlanEntries: planentry.NewPlanEntriesRepoPg(logger, db),
	}

	if err := seedUsersGauge(logger, repos.Users); err != nil {
		logger.Fatalw("error counting users", "err", err)
	}

	if err := ensureAdmin(cfg, logger, repos.Users); err != nil {
		logger.Fatalw("error creating admin account", "err", err)
	}

	keys, err := mdlwr.LoadOrGenerateKeys(cfg.JWTPrivateKeyFile, cfg.JWTPublicKeyFile)
	if err != nil {
		logger.Fatalw("error loading jwt keys", "err", err)
	}

	router, err := NewRouter(cfg, zapLogger, repos, keys)
	if err != nil {
		logger.Fatalw("error building router", "err", err)
	}

	metricsSrv := initMetricsServer(cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting main server on port " + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	go func() {
		logger.Info("Starting metrics server on port " + cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down the server")

	wg := &sync.WaitGroup{}

	for _, s := range []*http.Server{srv, metricsSrv} {
		wg.Add(1)
		go func(s *http.Server) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := s.Shutdown(ctx); err != nil {
				logger.Errorw("the server was forced to shutdown", "addr", s.Addr, "err", err)
			}
		}(s)
	}

	wg.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server exited")
}
