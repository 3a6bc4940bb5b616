package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-center-management/internal/config"
	"dental-center-management/internal/logging"
	"dental-center-management/internal/portal"
	"dental-center-management/internal/reports"
	"dental-center-management/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	if cfg.SessionSecret == "" {
		log.Fatal("DENTAL_SESSION_SECRET is required")
	}

	kv, err := storage.Open(cfg.StorageDriver, cfg.SQLitePath)
	if err != nil {
		log.WithError(err).Fatal("open storage")
	}
	log.WithField("driver", cfg.StorageDriver).Info("storage ready")

	p, err := portal.New(portal.Options{
		KV:                 kv,
		SessionSecret:      cfg.SessionSecret,
		Logger:             log,
		LoginThrottle:      cfg.LoginThrottle,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		LoginBurst:         cfg.LoginBurst,
	})
	if err != nil {
		log.WithError(err).Fatal("init portal")
	}
	defer func() {
		if err := p.Close(); err != nil {
			log.WithError(err).Warn("close portal")
		}
	}()

	if u := p.User(); u != nil {
		log.WithField("email", u.Email).WithField("role", u.Role).Info("resumed session")
	} else {
		log.Info("no active session")
	}

	sum := reports.Summarize(p.Patients(), p.Incidents(), time.Now(), 10)
	log.WithFields(map[string]any{
		"patients":  sum.TotalPatients,
		"upcoming":  sum.UpcomingCount,
		"completed": sum.CompletedCount,
		"revenue":   sum.TotalRevenue,
	}).Info("clinic summary")

	// stay up for the embedding UI until interrupted
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")
}
