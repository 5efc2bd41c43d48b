package main

import (
	"log"
	"os"

	"golang.org/x/term"

	"journal-desk/internal/app"
	"journal-desk/internal/config"
	"journal-desk/internal/console"
	"journal-desk/internal/identity"
	"journal-desk/internal/journal"
	"journal-desk/internal/logger"
	"journal-desk/internal/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.JSONLogs)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	view := console.New(os.Stdin, os.Stdout, interactive, appLogger)
	handlers := app.NewHandlers(view,
		identity.NewResolver(identity.NewFileStore(cfg.UserFile), appLogger),
		journal.NewWriter(cfg.JournalDir,
			journal.WithOverwrite(cfg.Overwrite()),
			journal.WithLogger(appLogger),
		),
		appLogger,
	)

	sm := shutdown.NewManager(appLogger)
	sm.Register(shutdown.Func(func() { os.Exit(130) }))
	sm.Listen()

	appLogger.Debug("Console", "starting", map[string]interface{}{
		"interactive": interactive,
		"journal_dir": cfg.JournalDir,
	})

	handlers.HandleStart()
	view.Run()

	if handlers.Aborted() {
		os.Exit(1)
	}
}
