package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/resumeforge/backend/internal/config"
	"github.com/resumeforge/backend/internal/handler"
	middlewarePkg "github.com/resumeforge/backend/internal/middleware"
	"github.com/resumeforge/backend/internal/model/template"
	"github.com/resumeforge/backend/internal/service/ai"
	chatService "github.com/resumeforge/backend/internal/service/chat"
	exportService "github.com/resumeforge/backend/internal/service/export"
	"github.com/resumeforge/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Select the session store
	var sessionStore store.Store
	if cfg.Database.URL != "" {
		pool, err := store.NewPostgresPool(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer pool.Close()

		ps := store.NewPostgresStore(pool)
		if err := ps.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to ensure database schema: %v", err)
		}
		sessionStore = ps
		log.Println("using postgres session store")
	} else {
		sessionStore = store.NewMemoryStore()
		log.Println("DATABASE_URL not set, sessions are kept in memory")
	}

	// Initialize AI service
	var engine chatService.Engine
	if cfg.AI.Enabled() {
		aiSvc, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality, check the Ark environment variables")
		} else {
			engine = aiSvc
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, skipping AI initialization")
	}

	templates := template.NewMemoryStore(template.Seed())
	chatSvc := chatService.NewService(sessionStore, engine, cfg.Chat)
	exporter := exportService.NewService(templates, exportService.NewChromedpRenderer())

	var identity middlewarePkg.Identity
	if len(cfg.Auth.Tokens) > 0 {
		identity = middlewarePkg.TokenMap(cfg.Auth.Tokens)
	} else {
		identity = middlewarePkg.HeaderIdentity{Header: "X-User-ID"}
		log.Println("AUTH_TOKENS not set, trusting the X-User-ID header (development mode)")
	}

	router := handler.NewRouter(identity, chatSvc, templates, exporter)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("ResumeForge backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
