package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"healthscan/catalog"
	"healthscan/config"
	"healthscan/controllers"
	"healthscan/logger"
	"healthscan/repository"
	"healthscan/routes"
	"healthscan/services"
	"healthscan/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.Env, cfg.LogFile); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	var (
		healthLogs repository.HealthLogRepository  = repository.NewMemoryHealthLogRepository()
		scanRecs   repository.ScanRecordRepository = repository.NewMemoryScanRecordRepository()
	)
	if cfg.PersistenceEnabled() {
		db, err := config.InitDB(cfg)
		if err != nil {
			return err
		}
		healthLogs = repository.NewGormHealthLogRepository(db)
		scanRecs = repository.NewGormScanRecordRepository(db)
		logger.Info("persistence enabled", zap.String("db_host", cfg.DBHost))
	}

	var sessions services.SessionStore = services.NewMemorySessionStore(cfg.ChatSessionTTL)
	if cfg.RedisAddr != "" {
		rs := services.NewRedisSessionStore(cfg.RedisAddr, cfg.ChatSessionTTL)
		if err := rs.Ping(ctx); err != nil {
			return fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		defer rs.Close()
		sessions = rs
		logger.Info("chat sessions stored in redis", zap.String("addr", cfg.RedisAddr))
	}

	var images services.ImageStore
	if cfg.ArchiveEnabled() {
		store, err := utils.NewS3ImageStore(ctx, cfg.S3Region, cfg.S3Bucket, cfg.CloudFrontURL)
		if err != nil {
			return err
		}
		images = store
		logger.Info("scan images archived to S3", zap.String("bucket", cfg.S3Bucket))
	}

	chat := services.NewChatService(sessions, cat, services.Simulator{Delay: cfg.ChatDelay})
	hub := services.NewChatHub()
	r := routes.SetupRouter(routes.Controllers{
		Health: controllers.NewHealthController(services.NewHealthService(healthLogs)),
		Scan:   controllers.NewScanController(services.NewScanService(cat, images, scanRecs, services.Simulator{Delay: cfg.ScanDelay})),
		Diet:   controllers.NewDietController(services.NewDietService(cat, services.Simulator{Delay: cfg.DietDelay})),
		Chat:   controllers.NewChatController(chat, hub),
		ChatWS: controllers.NewChatWSController(chat, hub, routes.OriginAllowed(cfg.CORSOrigins)),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.WithCORS(r, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
