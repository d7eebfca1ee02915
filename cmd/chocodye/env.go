package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chocodye/internal/catalog"
	"github.com/vovakirdan/chocodye/internal/config"
	"github.com/vovakirdan/chocodye/internal/graph"
	"github.com/vovakirdan/chocodye/internal/platform/tui"
	"github.com/vovakirdan/chocodye/internal/search"
)

// appEnv is everything a command needs, built once per invocation.
type appEnv struct {
	settings config.Settings
	logger   *log.Logger
	catalog  *catalog.Catalog
	engine   *search.Engine
	palette  tui.Palette
}

// loadEnv reads settings, loads the catalog and builds the search engine.
func loadEnv() (*appEnv, error) {
	settings, settingsSource, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagLogLevel != "" {
		settings.LogLevel = flagLogLevel
	}
	if flagCatalog != "" {
		settings.Catalog = flagCatalog
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chocodye",
		Level:           settings.Level(),
	})
	logger.Debug("settings loaded", "source", settingsSource)

	cat, catalogSource, err := catalog.Load(settings.Catalog)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded",
		"source", catalogSource,
		"colors", cat.Len(),
		"transforms", len(cat.Transforms()),
		"derived", cat.Derived(),
		"discount", cat.DiscountPercent())

	g, err := graph.Build(cat)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	stats := g.Stats()
	logger.Info("graph built",
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"discount_edges", stats.DiscountEdges,
		"sinks", stats.Sinks)
	if stats.Sinks > 0 {
		logger.Warn("some colors cannot be left", "count", stats.Sinks)
	}

	engine := search.NewEngine(g,
		search.WithLogger(logger),
		search.WithMaxExpansions(settings.MaxExpansions),
		search.WithWorkers(settings.Workers),
	)

	return &appEnv{
		settings: settings,
		logger:   logger,
		catalog:  cat,
		engine:   engine,
		palette:  tui.DetectPalette(settings.Swatches),
	}, nil
}
