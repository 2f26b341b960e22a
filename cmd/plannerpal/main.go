package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plannerpal/plannerpal/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		listenAddr  string
		configPath  string
		corsOrigins string
		maxUpload   int64
		verbose     bool
	)

	flag.StringVar(&listenAddr, "listen", envOr("PLANNERPAL_LISTEN", app.DefaultListenAddr), "HTTP listen address")
	flag.StringVar(&configPath, "config", os.Getenv("PLANNERPAL_CONFIG"), "Path to optional YAML/JSON config file")
	flag.StringVar(&corsOrigins, "cors.origins", os.Getenv("PLANNERPAL_CORS_ORIGINS"), "Comma-separated allowed CORS origins (default: all)")
	flag.Int64Var(&maxUpload, "upload.maxBytes", 0, "Maximum accepted upload size in bytes (0 = default 16 MB)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		ListenAddr:     listenAddr,
		MaxUploadBytes: maxUpload,
		Verbose:        verbose,
	}
	if s := strings.TrimSpace(corsOrigins); s != "" {
		parts := strings.Split(s, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if v := strings.TrimSpace(p); v != "" {
				list = append(list, v)
			}
		}
		cfg.AllowedOrigins = list
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(cfg app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}
