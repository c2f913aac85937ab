//go:build darwin

package main

import (
	"log"
	"sync"

	"golang.design/x/hotkey"
)

// quitGuard swallows Cmd+Q while a ring window has focus
type quitGuard struct {
	mu sync.Mutex
	hk *hotkey.Hotkey
}

func (g *quitGuard) register(session string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.hk != nil {
		return
	}

	hk := hotkey.New([]hotkey.Modifier{hotkey.ModCmd}, hotkey.KeyQ)
	if err := hk.Register(); err != nil {
		log.Printf("[ring %s] failed to register Cmd+Q guard: %v", session, err)
		return
	}
	g.hk = hk

	// Consume Cmd+Q so it does not quit the app mid-alarm
	go func() {
		for range hk.Keydown() {
			log.Printf("[ring %s] Cmd+Q blocked - hold Dismiss to stop the alarm", session)
		}
	}()
}

func (g *quitGuard) unregister() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.hk == nil {
		return
	}
	if err := g.hk.Unregister(); err != nil {
		log.Printf("Failed to unregister Cmd+Q guard: %v", err)
	}
	g.hk = nil
}
