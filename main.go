package main

import (
	"log/slog"
	"os"

	"github.com/ellavondegurechaff/rolekeeper/cmd"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/logger"
)

func main() {
	// Replaced once the config names a level and format.
	slog.SetDefault(slog.New(logger.NewHandler(os.Stdout, slog.LevelInfo)))

	cmd.Execute()
}
