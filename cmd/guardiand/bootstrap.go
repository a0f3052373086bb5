package main

import (
	"guardian/internal/analyzer"
	"guardian/internal/anchor"
	"guardian/internal/config"
	"guardian/internal/notifications"
)

func buildPipeline(cfg *config.Config) (analyzer.Analyzer, anchor.Anchor, notifications.Service) {
	var az analyzer.Analyzer
	if cfg.Analyzer.Simulated {
		az = analyzer.Simulated{}
	} else {
		az = analyzer.NewClient(cfg.Analyzer)
	}
	return az, anchor.NewFromConfig(cfg.Anchor), notifications.NewService(cfg)
}
