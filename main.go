package main

import (
	"Countdown/alarm"
	"Countdown/config"
	"Countdown/i18n"
	"Countdown/timer"
	"Countdown/ui"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	i18n.Setup(cfg.Language)

	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewCustomTheme(ui.LoadFont(cfg.FontPath)))

	controller := timer.NewController(alarm.NewPlayer(alarm.DefaultPath), timer.Config{
		TickInterval: cfg.TickInterval(),
	})
	a := NewAppManager(controller)
	defer alarm.Shutdown()

	w := ui.CreateMainWindow(a, fyneApp, fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.SetOnClosed(a.Shutdown)

	go a.pumpEvents(w)

	w.ShowAndRun()
}
