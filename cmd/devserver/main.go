package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/ivolkoff/shopsync/internal/config"
	"github.com/ivolkoff/shopsync/internal/devserver"
	"github.com/ivolkoff/shopsync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("shopsync-devserver")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	srv := devserver.NewServer(log)

	log.Info().Str("address", cfg.Address).Msg("dev server listening")
	if err := http.ListenAndServe(cfg.Address, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("dev server stopped")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
