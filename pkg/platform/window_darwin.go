//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

int isFrontmost() {
    return [NSApp isActive] ? 1 : 0;
}

void bringToFront() {
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// IsFrontmost reports whether the app owns keyboard focus
func IsFrontmost() bool {
	return C.isFrontmost() == 1
}

// BringToFront activates the app above other applications so a ringing alarm is seen
func BringToFront() {
	C.bringToFront()
}
