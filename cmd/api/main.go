package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"folio/api/internal/account"
	"folio/api/internal/app"
	"folio/api/internal/config"
	"folio/api/internal/email"
	"folio/api/internal/logger"
	"folio/api/internal/search"
	"folio/api/internal/session"
	"folio/api/internal/store"
	"folio/api/internal/upload"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Sugar.Fatalf("config load failed: %v", err)
	}

	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Sugar.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := store.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		logger.Sugar.Fatalf("migrations failed: %v", err)
	}

	dataStore := store.NewPostgresStore(db)
	accounts := account.NewService(dataStore)

	pgfts := search.NewPgFTS(db)
	var meiliClient *search.Meili
	if strings.TrimSpace(cfg.MeiliURL) != "" {
		meiliClient = search.NewMeili(cfg.MeiliURL, cfg.MeiliMasterKey)
		defer meiliClient.Close()
	}
	searchService := search.NewService(meiliClient, pgfts)
	searchService.ReindexAllFromPG(ctx)

	var sessions interface {
		SaveRefreshSession(ctx context.Context, tokenHash, ownerID string, expiresAt time.Time) error
		LookupRefreshSession(ctx context.Context, tokenHash string) (string, error)
		RevokeRefreshSession(ctx context.Context, tokenHash string) error
	}
	if strings.TrimSpace(cfg.RedisURL) != "" {
		logger.Sugar.Infof("using Redis for refresh token storage")
		redisStore, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Sugar.Fatalf("redis connection failed: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
	} else {
		logger.Sugar.Infof("using PostgreSQL for refresh token storage")
		sessions = dataStore
	}

	opts := app.Options{
		Store:       dataStore,
		Sessions:    sessions,
		Accounts:    accounts,
		Search:      searchService,
		TokenSecret: cfg.JWTSecret,
		AccessTTL:   cfg.AccessTTL,
		RefreshTTL:  cfg.RefreshTTL,
	}

	mailService := email.NewService(email.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	})
	if mailService.IsConfigured() {
		opts.Email = mailService
	}

	if strings.TrimSpace(cfg.MinioEndpoint) != "" {
		uploads, err := upload.NewService(ctx, upload.Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			PublicURL: cfg.MinioPublicURL,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			logger.Sugar.Fatalf("object storage connection failed: %v", err)
		}
		opts.Uploads = uploads
	}

	service := app.NewService(opts)
	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Sugar.Infof("Folio API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Sugar.Warnf("shutdown error: %v", err)
	}
}
