package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fetidd/gateway/gateway"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := gateway.NewApp(logger, gateway.ConfigFromEnv())
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	app.Shutdown()
}
