package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ayn2op/carousel/internal/config"
)

func main() {
	var (
		configPath string
		frontend   string
		logPath    string
	)
	flag.StringVar(&configPath, "config", "carousel.toml", "Path to the TOML config")
	flag.StringVar(&frontend, "frontend", "tview", "Frontend to run: tview or tea")
	flag.StringVar(&logPath, "log", "carousel.log", "Log file")
	flag.Parse()

	// The terminal belongs to the UI.
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	log.Printf("loaded %d items from %s", len(cfg.Items), configPath)

	switch frontend {
	case "tview":
		err = runTview(cfg)
	case "tea":
		err = runTea(cfg)
	default:
		err = fmt.Errorf("unknown frontend %q", frontend)
	}
	if err != nil {
		log.Printf("exiting: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
