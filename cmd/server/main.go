// Package main - Entry point for the lpboost quote server
package main

import (
	"flag"
	"fmt"
	"os"

	"lpboost/api"
	"lpboost/core/tier"
	"lpboost/internal/config"
	"lpboost/internal/logging"
	"lpboost/internal/ratecard"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgPath := flag.String("config", "", "Config file path")
	cardPath := flag.String("ratecard", "", "Rate card file (HCL)")
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	rates := resolveRates(cfg, *cardPath)

	server := api.NewServer(version, rates)

	fmt.Printf("lpboost quote server v%s\n", version)
	fmt.Printf("  API: http://localhost%s\n", *addr)

	if err := server.ListenAndServe(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// resolveRates loads tier rates from the rate card when one is given,
// otherwise from config.
func resolveRates(cfg *config.Config, cardPath string) tier.Rates {
	path := cardPath
	if path == "" {
		path = cfg.Pricing.RateCardPath
	}
	if path != "" {
		card, err := ratecard.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading rate card: %v\n", err)
			os.Exit(1)
		}
		return card.Rates
	}

	rates, err := tier.FromMap(cfg.Pricing.Tiers)
	if err != nil || rates.Len() == 0 {
		return tier.Defaults()
	}
	return rates
}
