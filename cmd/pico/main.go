//go:build tinygo

// Command pico drives a 16x16 serpentine WS2812 matrix from a Raspberry Pi
// Pico, cycling through the demo scenes.
package main

import (
	"context"
	"machine"
	"time"

	"github.com/rook-computer/neomatrix/internal/app"
	"github.com/rook-computer/neomatrix/internal/app/scenes"
	"github.com/rook-computer/neomatrix/internal/render/ws2812"
)

const (
	dataPin     = machine.GP28
	sceneLength = 20 * time.Second
)

func main() {
	cfg := app.DefaultConfig()
	strip := ws2812.New(dataPin, cfg.Width*cfg.Height)

	a := app.New(cfg, strip)
	if err := a.Init(context.Background()); err != nil {
		halt(err)
	}

	tick := time.Second / time.Duration(cfg.FPS)
	switchAt := time.Now().Add(sceneLength)
	for {
		start := time.Now()
		if err := a.Step(); err != nil {
			halt(err)
		}
		if start.After(switchAt) && len(scenes.Names()) > 1 {
			if err := a.NextScene(); err != nil {
				halt(err)
			}
			switchAt = start.Add(sceneLength)
		}
		time.Sleep(tick - time.Since(start))
	}
}

// halt reports err on the serial console and blinks the onboard LED.
func halt(err error) {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		println("neomatrix:", err.Error())
		led.High()
		time.Sleep(200 * time.Millisecond)
		led.Low()
		time.Sleep(800 * time.Millisecond)
	}
}
