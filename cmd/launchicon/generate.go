package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mosa3ed/launchicon/internal/config"
	"github.com/mosa3ed/launchicon/internal/eventlog"
	"github.com/mosa3ed/launchicon/internal/icon"
	"github.com/mosa3ed/launchicon/internal/mqtt"
)

// generateLaunchIcon performs the generation described by cfg. Every
// failure is reported through log and swallowed; the caller always
// returns normally. store may be nil.
func generateLaunchIcon(cfg config.Config, log *slog.Logger, store eventlog.Store) {
	rec := eventlog.Record{Source: cfg.Source, Output: cfg.Output, Size: cfg.Size}

	if _, err := os.Stat(cfg.Source); err != nil {
		log.Error("source image not found: "+cfg.Source, "err", err)
		rec.Status = eventlog.StatusMissingSource
		record(log, store, rec)
		return
	}

	log.Info("generating launch icon", "source", cfg.Source, "size", cfg.Size)

	layout, err := icon.Generate(cfg.Source, cfg.Output, cfg.Size)
	if err != nil {
		log.Error("error creating "+cfg.Output, "err", err)
		rec.Status = eventlog.StatusFailed
		rec.Error = err.Error()
		record(log, store, rec)
		return
	}

	log.Info("created "+cfg.Output,
		"dimensions", fmt.Sprintf("%dx%d", layout.Size, layout.Size),
		"content", fmt.Sprintf("%dx%d", layout.Width, layout.Height),
		"offset", fmt.Sprintf("%d,%d", layout.X, layout.Y),
	)

	rec.Status = eventlog.StatusCreated
	rec.Width, rec.Height = layout.Width, layout.Height
	rec.X, rec.Y = layout.X, layout.Y
	record(log, store, rec)

	if cfg.MQTT.Enabled() {
		g := mqtt.Generated{
			Source: cfg.Source,
			Output: cfg.Output,
			Size:   layout.Size,
			Width:  layout.Width,
			Height: layout.Height,
		}
		if err := mqtt.PublishGenerated(cfg.MQTT, g); err != nil {
			log.Warn("build notification failed", "err", err)
		}
	}
}

// record writes rec to store. History is best-effort.
func record(log *slog.Logger, store eventlog.Store, rec eventlog.Record) {
	if store == nil {
		return
	}
	if err := store.Log(rec); err != nil {
		log.Warn("history not recorded", "err", err)
	}
}
