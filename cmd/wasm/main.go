//go:build js && wasm

package main

import (
	"log"

	"rolfe.dev/internal/app"
	"rolfe.dev/internal/browser"
	"rolfe.dev/internal/content"
	"rolfe.dev/internal/navigation"
	"rolfe.dev/internal/services"
	"rolfe.dev/internal/views"
)

func main() {
	portfolio := content.MustLoad()

	renderer, err := views.New(portfolio, services.NewProjectService(portfolio.Projects))
	if err != nil {
		log.Fatalf("Failed to initialize views: %v", err)
	}

	win := browser.NewWindow()
	nav := navigation.New(win)

	shell := app.NewShell(nav, renderer, win.Mount("app"))
	stop := shell.Start()
	win.OnAction(shell.HandleAction)

	done := make(chan struct{})
	win.OnPageHide(func() {
		stop()
		nav.Close()
		close(done)
	})

	// Callbacks keep running on the page's event loop until the page goes away.
	<-done
	win.Release()
	log.Printf("Portfolio app stopped")
}
