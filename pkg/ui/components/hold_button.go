package components

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const holdTick = 50 * time.Millisecond

// HoldButton fires OnCompleted only after being pressed for HoldDuration.
// Releasing early resets the progress bar. Works with mouse and touch.
type HoldButton struct {
	widget.BaseWidget
	Text         string
	HoldDuration time.Duration
	OnCompleted  func()

	mu      sync.Mutex
	holding bool
	cancel  chan struct{}

	hovered  bool
	progress float64
}

// NewHoldButton creates a new HoldButton
func NewHoldButton(text string, hold time.Duration, onCompleted func()) *HoldButton {
	b := &HoldButton{
		Text:         text,
		HoldDuration: hold,
		OnCompleted:  onCompleted,
	}
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *HoldButton) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(b.Text, theme.Color(theme.ColorNameForeground))
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	bg.CornerRadius = theme.InputRadiusSize()
	progressBar := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	progressBar.CornerRadius = theme.InputRadiusSize()

	return &holdButtonRenderer{
		button:      b,
		text:        text,
		bg:          bg,
		progressBar: progressBar,
	}
}

// SetProgress updates the progress bar
func (b *HoldButton) SetProgress(progress float64) {
	b.progress = progress
	b.Refresh()
}

// Holding reports whether the button is currently pressed
func (b *HoldButton) Holding() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.holding
}

func (b *HoldButton) startHold() {
	b.mu.Lock()
	if b.holding {
		b.mu.Unlock()
		return
	}
	b.holding = true
	cancel := make(chan struct{})
	b.cancel = cancel
	b.mu.Unlock()

	b.SetProgress(0)
	go b.track(cancel)
}

func (b *HoldButton) endHold() {
	b.mu.Lock()
	if !b.holding {
		b.mu.Unlock()
		return
	}
	b.holding = false
	close(b.cancel)
	b.cancel = nil
	b.mu.Unlock()

	b.SetProgress(0)
}

// track advances the progress bar until the hold completes or is released
func (b *HoldButton) track(cancel chan struct{}) {
	ticker := time.NewTicker(holdTick)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-cancel:
			return
		case now := <-ticker.C:
			progress := 1.0
			if b.HoldDuration > 0 {
				progress = min(float64(now.Sub(start))/float64(b.HoldDuration), 1)
			}
			fyne.Do(func() {
				if b.tracking(cancel) {
					b.SetProgress(progress)
				}
			})
			if progress < 1 {
				continue
			}

			b.mu.Lock()
			completed := b.holding && b.cancel == cancel
			if completed {
				b.holding = false
				b.cancel = nil
			}
			b.mu.Unlock()

			if completed && b.OnCompleted != nil {
				fyne.Do(b.OnCompleted)
			}
			return
		}
	}
}

// tracking reports whether cancel still belongs to the current hold
func (b *HoldButton) tracking(cancel chan struct{}) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancel == cancel
}

// Tapped implements fyne.Tappable
func (b *HoldButton) Tapped(*fyne.PointEvent) {}

// MouseIn implements desktop.Hoverable
func (b *HoldButton) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (b *HoldButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (b *HoldButton) MouseOut() {
	b.hovered = false
	// Leaving the button counts as letting go
	b.endHold()
	b.Refresh()
}

// MouseDown implements desktop.Mouseable
func (b *HoldButton) MouseDown(*desktop.MouseEvent) {
	b.startHold()
}

// MouseUp implements desktop.Mouseable
func (b *HoldButton) MouseUp(*desktop.MouseEvent) {
	b.endHold()
}

// TouchDown implements mobile.Touchable
func (b *HoldButton) TouchDown(*mobile.TouchEvent) {
	b.startHold()
}

// TouchUp implements mobile.Touchable
func (b *HoldButton) TouchUp(*mobile.TouchEvent) {
	b.endHold()
}

// TouchCancel implements mobile.Touchable
func (b *HoldButton) TouchCancel(*mobile.TouchEvent) {
	b.endHold()
}

type holdButtonRenderer struct {
	button      *HoldButton
	text        *canvas.Text
	bg          *canvas.Rectangle
	progressBar *canvas.Rectangle
}

func (r *holdButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.text.Resize(size)

	// Progress bar fills from left to right
	r.progressBar.Resize(fyne.NewSize(size.Width*float32(r.button.progress), size.Height))
	r.progressBar.Move(fyne.NewPos(0, 0))
}

func (r *holdButtonRenderer) MinSize() fyne.Size {
	textSize := r.text.MinSize()
	return fyne.NewSize(
		max(textSize.Width+theme.Padding()*4, 220),
		max(textSize.Height+theme.Padding()*2, 64),
	)
}

func (r *holdButtonRenderer) Refresh() {
	r.text.Text = r.button.Text
	r.text.Color = theme.Color(theme.ColorNameForeground)

	if r.button.hovered {
		r.bg.FillColor = theme.Color(theme.ColorNameHover)
	} else {
		r.bg.FillColor = theme.Color(theme.ColorNameButton)
	}

	r.Layout(r.button.Size())

	r.bg.Refresh()
	r.progressBar.Refresh()
	r.text.Refresh()
}

func (r *holdButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.progressBar, r.text}
}

func (r *holdButtonRenderer) Destroy() {}

func (r *holdButtonRenderer) BackgroundColor() color.Color {
	return theme.Color(theme.ColorNameButton)
}
