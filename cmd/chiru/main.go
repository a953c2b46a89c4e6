package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiru-app/chiru/internal/ai"
	"github.com/chiru-app/chiru/internal/app"
	"github.com/chiru-app/chiru/internal/credential"
	"github.com/chiru-app/chiru/internal/model"
	"github.com/chiru-app/chiru/internal/store"
)

func main() {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Storage.Path
	if dbPath == "" {
		dbPath = model.DefaultStoragePath()
	}

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	doc := s.LoadOrDefault(context.Background(), store.DefaultSlot)

	apiKey := credential.ResolveGeminiKey(doc.APIKey)
	gateway := ai.New(apiKey, cfg.AI.Model, cfg.AI.MaxTokens)

	p := tea.NewProgram(app.New(doc, s, gateway), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
