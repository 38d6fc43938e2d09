package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	web "pdgc/internal/adapters/http"
	"pdgc/internal/config"
	"pdgc/internal/domain/featureflag"
	"pdgc/internal/domain/site"
)

// Version information set at build time via -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pdgc",
		Short: "Peninsula Disc Golf Club donation site",
		Long: `Serves the Peninsula Disc Golf Club donation page, or exports it
as static files for hosting without a server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		exportCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// setup loads configuration, installs the default logger and builds the site.
// Offline commands skip the secrets only the server needs.
func setup(offline bool) (config.Config, *web.Site, error) {
	load := config.Load
	if offline {
		load = config.LoadOffline
	}
	cfg, err := load()
	if err != nil {
		return config.Config{}, nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	profile := site.DefaultProfile()
	if cfg.ProfilePath != "" {
		if profile, err = site.LoadProfile(cfg.ProfilePath); err != nil {
			return cfg, nil, err
		}
	}

	flags, err := featureflag.Defaults().Apply(cfg.Features)
	if err != nil {
		return cfg, nil, fmt.Errorf("PDGC_FEATURES: %w", err)
	}

	s, err := web.NewSite(profile, flags)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, s, nil
}
