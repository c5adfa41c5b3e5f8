package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/njyeung/tubechat/backend"
	"github.com/njyeung/tubechat/config"
	"github.com/njyeung/tubechat/logging"
	"github.com/njyeung/tubechat/preview"
	"github.com/njyeung/tubechat/tui"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("tubechat", pflag.ExitOnError)
	configDir := flags.String("config-dir", config.DefaultDir(), "directory holding tubechat.yaml")
	flags.String("api", "", "base URL of the question answering service")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("no-preview", false, "do not draw the video thumbnail")
	videoURL := flags.String("url", "", "submit this video and run without the TUI")
	questions := flags.StringArray("ask", nil, "question to ask after --url (repeatable)")
	comments := flags.Bool("comments", false, "print the video's comments after --url")
	flags.Parse(os.Args[1:])

	v := viper.New()
	v.BindPFlag("api.base_url", flags.Lookup("api"))
	v.BindPFlag("log.level", flags.Lookup("log-level"))
	if noPreview, _ := flags.GetBool("no-preview"); noPreview {
		v.Set("preview.enabled", false)
	}

	cfg, err := config.LoadWith(v, *configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Loaded config",
		zap.String("path", cfg.Path()),
		zap.String("api", cfg.API.BaseURL),
	)

	b := backend.NewHTTPBackend(cfg.API.BaseURL, cfg.API.Timeout, logger)

	if *videoURL != "" {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		code := runHeadless(ctx, b, logger, os.Stdout, os.Stderr, *videoURL, *questions, *comments)
		stop()
		logger.Sync()
		os.Exit(code)
	}

	deps := tui.Deps{
		Backend: b,
		Config:  cfg,
		Logger:  logger,
	}
	if cfg.Browser.Enabled {
		deps.Browser = backend.NewBrowser(cfg.Browser.UserDataDir, logger)
	}
	// probe before bubbletea takes over stdin
	if cfg.Preview.Enabled && preview.KittySupported() {
		deps.Fetcher = preview.NewFetcher(cfg.Preview.HeightPx, logger)
		deps.Renderer = preview.NewRenderer(os.Stdout)
	}

	p := tea.NewProgram(tui.NewModel(deps), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
