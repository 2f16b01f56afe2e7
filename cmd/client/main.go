package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/internal/app"
	"github.com/MKhiriev/go-whitelist-keeper/internal/client"
	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/tui"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err.Error()))
		return 2
	}

	log := logger.NewClientLogger("wlctl", logPath())

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err.Error()))
		return 2
	}

	wlctl, err := client.NewApp(
		serverAdapter,
		tui.New(os.Stdin, os.Stdout),
		client.NewFileTokenStore(cfg.Adapter.TokenFile),
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		os.Stdin,
		os.Stdout,
		log,
	)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprint(os.Stderr, tui.RenderError(err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = wlctl.Run(ctx, cfg.Args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, tui.ErrUserQuit), errors.Is(err, client.ErrAborted):
		return 130
	case errors.Is(err, client.ErrUsage), errors.Is(err, client.ErrNoCommand), errors.Is(err, client.ErrUnknownCommand):
		fmt.Fprint(os.Stderr, tui.RenderError(err.Error()))
		return 2
	default:
		fmt.Fprint(os.Stderr, tui.RenderError(app.UserMessage(err)))
		return 1
	}
}

func logPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "wlctl", "wlctl.log")
}
