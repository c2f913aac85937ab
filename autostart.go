package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

// loginItem describes the running binary as a login item
func loginItem() (*autostart.App, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	if exe, err = filepath.EvalSymlinks(exe); err != nil {
		return nil, fmt.Errorf("failed to resolve executable: %w", err)
	}

	return &autostart.App{
		Name:        "rise-ease",
		DisplayName: "Rise Ease",
		Exec:        []string{exe},
	}, nil
}

// autostartEnabled reports whether a login item is currently installed
func autostartEnabled() bool {
	item, err := loginItem()
	if err != nil {
		return false
	}
	return item.IsEnabled()
}

// setupAutostart installs or removes the login item to match enable
func setupAutostart(enable bool) error {
	item, err := loginItem()
	if err != nil {
		return err
	}

	if item.IsEnabled() == enable {
		return nil
	}

	action, change := "enable", item.Enable
	if !enable {
		action, change = "disable", item.Disable
	}
	if err := change(); err != nil {
		log.Printf("Failed to %s autostart: %v", action, err)
		return err
	}

	log.Printf("Autostart %sd", action)
	return nil
}
