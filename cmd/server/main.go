package main

import (
	"flag"
	"os"

	"github.com/jjc6676/holiday-optimizer/internal/api"
	"github.com/jjc6676/holiday-optimizer/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	if port := os.Getenv("PORT"); port != "" {
		*addr = ":" + port
	}

	log := logging.New(*logLevel)

	server := api.NewServer(log)
	log.Info().Str("addr", *addr).Msg("starting server")
	if err := server.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
