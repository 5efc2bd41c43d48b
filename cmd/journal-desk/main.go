package main

import (
	"log"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"journal-desk/internal/app"
	"journal-desk/internal/config"
	"journal-desk/internal/gui"
	"journal-desk/internal/identity"
	"journal-desk/internal/journal"
	"journal-desk/internal/logger"
	"journal-desk/internal/shutdown"
)

const (
	AppName    = "Journal"
	AppID      = "com.journaldesk.journal"
	AppVersion = "1.0.0"
)

// Application wires the Fyne front end to the journal handlers.
type Application struct {
	fyneApp  fyne.App
	window   fyne.Window
	logger   logger.Logger
	config   *config.Config
	manager  *gui.Manager
	handlers *app.Handlers
	shutdown *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(cfg)
	application.Run()
}

func NewApplication(cfg *config.Config) *Application {
	appLogger := logger.New(cfg.LogLevel, cfg.JSONLogs)

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := fyneapp.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.SetMaster()
	window.CenterOnScreen()

	manager := gui.NewManager(fyneApp, window, appLogger)

	resolver := identity.NewResolver(identity.NewFileStore(cfg.UserFile), appLogger)
	writer := journal.NewWriter(cfg.JournalDir,
		journal.WithOverwrite(cfg.Overwrite()),
		journal.WithLogger(appLogger),
	)
	handlers := app.NewHandlers(manager, resolver, writer, appLogger)

	appLogger.Info("Application", "starting application", map[string]interface{}{
		"version":      AppVersion,
		"user_file":    cfg.UserFile,
		"journal_dir":  cfg.JournalDir,
		"on_collision": cfg.OnCollision,
		"log_level":    cfg.LogLevel.String(),
	})

	return &Application{
		fyneApp:  fyneApp,
		window:   window,
		logger:   appLogger,
		config:   cfg,
		manager:  manager,
		handlers: handlers,
		shutdown: shutdown.NewManager(appLogger),
	}
}

func (a *Application) Run() {
	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(a.handlers.Shutdown)
	}))
	a.shutdown.Listen()

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "main window closed", nil)
		a.handlers.Shutdown()
	})

	a.window.Show()
	a.handlers.HandleStart()

	a.fyneApp.Run()

	a.logger.Info("Application", "application terminated", map[string]interface{}{
		"aborted": a.handlers.Aborted(),
	})
}
