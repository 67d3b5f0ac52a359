//go:build !ebiten

package ui

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay(int, int, int) *Overlay { return nil }

// SetBrush is a no-op in the headless build.
func (o *Overlay) SetBrush(int, int, int, bool) {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any) {}
