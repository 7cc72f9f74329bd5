package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/config"
	"pong/internal/gamemode"
	"pong/internal/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	variant := flag.String("variant", "", fmt.Sprintf("game variant %v", gamemode.Names()))
	frontend := flag.String("frontend", "", "window or terminal")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *variant != "" {
		cfg.Variant = *variant
	}
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	v, err := gamemode.Lookup(cfg.Variant)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("starting %s on %s frontend", v.Name, cfg.Frontend)

	// 2. Run Loop
	if cfg.Frontend == config.FrontendTerminal {
		err = terminal.Run(cfg, v)
	} else {
		err = runWindow(cfg, v)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runWindow(cfg config.Config, v gamemode.Variant) error {
	ebiten.SetWindowSize(int(cfg.Geometry.ScreenWidth), int(cfg.Geometry.ScreenHeight))
	ebiten.SetWindowTitle(v.Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(cfg, v)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
