package main

import (
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/borgmon/rise-ease/pkg/store"
	"github.com/spf13/viper"
)

// loadConfig reads the saved settings and lays flag and environment values on top
func loadConfig(cs *store.ConfigStore, v *viper.Viper) *models.Config {
	config := cs.Load()
	applyOverrides(config, v)
	return config
}

// saveConfig persists the settings shown in the settings window
func saveConfig(cs *store.ConfigStore, config *models.Config) {
	config.Normalize()
	cs.Save(config)
}
