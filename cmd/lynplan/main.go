package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lynplan/lynplan/internal/config"
	"github.com/lynplan/lynplan/internal/course"
	"github.com/lynplan/lynplan/internal/database"
	"github.com/lynplan/lynplan/internal/database/repository"
	"github.com/lynplan/lynplan/internal/llm"
	"github.com/lynplan/lynplan/internal/service"
	"github.com/lynplan/lynplan/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	plans := repository.NewPlanRepo(db)

	resolver := service.NewResolver(course.NewCatalog())

	provider := llm.NewOpenAIProvider(cfg.LLM.ResolveAPIKey(), cfg.LLM.Model)

	planSvc := &service.PlanService{Plans: plans, Resolver: resolver}
	scanSvc := &service.ScanService{Provider: provider, Resolver: resolver}

	p := tea.NewProgram(tui.New(ctx, cfg,
		tui.Services{Plan: planSvc, Scan: scanSvc},
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
