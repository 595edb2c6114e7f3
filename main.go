package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/book-tracker/internal/config"
	"github.com/ytget/book-tracker/internal/logger"
	"github.com/ytget/book-tracker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "Book Tracker"

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(env.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting",
		zap.String("app", AppName),
		zap.String("version", version),
		zap.String("env", env.Env),
	)

	// Create new Fyne app
	myApp := app.NewWithID(env.AppID)
	ui.ApplyTheme(myApp, config.NewSettings(myApp))

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(env.WindowWidth, env.WindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, log)

	// Show and run
	myWindow.ShowAndRun()
	log.Info("Stopped")
}
