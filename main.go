package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/image-generator/internal/config"
	"github.com/ytget/image-generator/internal/download"
	"github.com/ytget/image-generator/internal/photoapi"
	"github.com/ytget/image-generator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.image-generator"
	AppName = "Image Generator"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Environment and optional .env file; preferences saved in the app take precedence
	env, err := config.LoadEnv()
	if err != nil {
		log.Printf("failed to load environment config: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSandstoneTheme())
	myApp.SetIcon(ui.LoadAppIcon())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)

	// Initialize services
	settings := config.NewSettings(myApp, env)
	client := photoapi.NewClient(settings.ClientConfig())
	downloadSvc := download.NewService(client)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, downloadSvc, settings)

	// Show and run
	myWindow.ShowAndRun()
}
