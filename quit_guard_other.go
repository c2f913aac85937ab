//go:build !darwin

package main

// quitGuard is a no-op outside macOS
type quitGuard struct{}

func (g *quitGuard) register(string) {}

func (g *quitGuard) unregister() {}
