package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/watchtower-bridge/pkg/app/canceler"
	"github.com/chainsafe/watchtower-bridge/pkg/config"
)

var configPath = flag.String("config", "config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	srv := canceler.NewServer(cfg)
	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Canceler exited with error: %v\n", err)
		os.Exit(1)
	}
}
