//go:build !darwin

package platform

// IsFrontmost always reports true; other platforms raise windows through fyne
func IsFrontmost() bool {
	return true
}

// BringToFront is a no-op on non-macOS platforms
func BringToFront() {}
