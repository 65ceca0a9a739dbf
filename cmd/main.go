package main

import (
	"context"
	"errors"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/recruit-dashboard/internal/api"
	"github.com/maxaizer/recruit-dashboard/internal/config"
	"github.com/maxaizer/recruit-dashboard/internal/logger"
	"github.com/maxaizer/recruit-dashboard/internal/metrics"
	"github.com/maxaizer/recruit-dashboard/internal/repositories"
	"github.com/maxaizer/recruit-dashboard/internal/services"
	log "github.com/sirupsen/logrus"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

func runDigest(cfg config.DigestConfig, dashboard *services.DashboardService,
	messages *repositories.Messages) *services.Digest {

	if !cfg.Enabled {
		log.Info("digest disabled")
		return nil
	}

	digest, err := services.NewDigest(dashboard, messages, cfg.Schedule)
	if err != nil {
		log.Fatalf("can't create digest: %v", err)
	}
	digest.Start()
	return digest
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.Register()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	if cfg.DB.Seed {
		if err = dbContext.Seed(time.Now()); err != nil {
			log.Fatalf("can't seed db context: %v", err)
		}
	}

	store := repositories.NewStore(dbContext.DB)
	bus := EventBus.New()

	if _, err = services.NewNotifier(bus, store.Messages); err != nil {
		log.Fatalf("can't create notifier: %v", err)
	}

	dashboard := services.NewDashboardService(store.Candidates, store.JobRoles, store.Presentations, store.Messages)
	presentations := services.NewPresentationService(bus, store.Candidates, store.JobRoles, store.Presentations)

	digest := runDigest(cfg.Digest, dashboard, store.Messages)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           api.NewServer(cfg.Server, store, bus, dashboard, presentations).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown failed: %v", err)
	}
	if digest != nil {
		digest.Stop()
	}
	log.Info("Services stopped.")
}
