package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/njyeung/tubechat/logging"
	"github.com/njyeung/tubechat/mockapi"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	addr := pflag.String("addr", ":8000", "listen address")
	level := pflag.String("log-level", "info", "log level")
	pflag.Parse()

	logger, err := logging.NewConsole(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	gin.SetMode(gin.ReleaseMode)

	svc := mockapi.NewService()
	seed(svc)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      mockapi.NewRouter(svc, logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting stub server", zap.String("address", *addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

// seed gives a couple of well known videos something to show
func seed(svc *mockapi.Service) {
	svc.SetComments("dQw4w9WgXcQ", []mockapi.Comment{
		{Author: "musicfan", Text: "Still a classic."},
		{Author: "rickroll_survivor", Text: "I clicked this on purpose and I regret nothing."},
		{Text: "Who is here in 2026?"},
	})
	svc.SetComments("9bZkp7q19f0", []mockapi.Comment{
		{Author: "dance", Text: "The dance still holds up."},
	})
	svc.SetUnavailable("xxxxxxxxxxx", "Transcripts are disabled for this video.")
}
