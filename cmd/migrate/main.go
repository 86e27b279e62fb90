package main

import (
	"flag"
	"fmt"
	"log"

	"study-assistant/internal/config"
	"study-assistant/internal/database"
	"study-assistant/internal/logger"

	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll migrations back instead of applying them")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -down")
	all := flag.Bool("all", false, "with -down, roll back every migration")
	version := flag.Bool("version", false, "print the current schema version and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	m, err := database.NewMigrator(cfg.GetMigrateURL())
	if err != nil {
		l.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	switch {
	case *version:
		v, dirty, err := m.Version()
		if err != nil {
			l.Fatal("Failed to read schema version", zap.Error(err))
		}
		fmt.Printf("version=%d dirty=%t\n", v, dirty)
	case *down:
		n := *steps
		if *all {
			n = 0
		}
		if err := m.Down(n); err != nil {
			l.Fatal("Failed to roll back migrations", zap.Error(err))
		}
	default:
		if err := m.Up(); err != nil {
			l.Fatal("Failed to run migrations", zap.Error(err))
		}
	}
}
