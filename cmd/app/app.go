package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/vietanh2810/cake-api/internal/api"
	"github.com/vietanh2810/cake-api/internal/config"
	"github.com/vietanh2810/cake-api/internal/db"
	"github.com/vietanh2810/cake-api/internal/logger"
	"github.com/vietanh2810/cake-api/internal/repository/dao"
)

const defaultConfigPath = "./cmd/app/config.yml"

func Start() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Log.Level); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer logger.Sync()

	config.Watch(configPath, onConfigChange, func(err error) {
		zap.L().Warn("config reload failed", zap.Error(err))
	})

	store, err := db.Open(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	defer func() {
		if err := db.Close(store); err != nil {
			zap.L().Error("failed to close database", zap.Error(err))
		}
	}()

	if err = dao.InitTables(store); err != nil {
		return fmt.Errorf("failed to initialize tables -> %w", err)
	}

	s, err := api.NewServer(conf, store)
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}

	srv := &http.Server{
		Addr:    ":" + s.Config.API.Port,
		Handler: s.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.API.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown -> %w", err)
	}

	return nil
}

// onConfigChange applies the settings that can change without a restart.
func onConfigChange(conf *config.AppConfig) {
	if conf.Log.Level == logger.Level().String() {
		return
	}

	if err := logger.SetLevel(conf.Log.Level); err != nil {
		zap.L().Warn("invalid log level in config", zap.Error(err))
		return
	}

	zap.L().Info("log level changed", zap.String("level", conf.Log.Level))
}
