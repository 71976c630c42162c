package sound

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toggle is an icon button showing whether sound is allowed.
type Toggle struct {
	button     *widget.Button
	allowSound bool
	onToggle   func(bool)
}

// New creates a toggle. onToggle receives the flipped value.
func New(allowSound bool, onToggle func(bool)) *Toggle {
	toggle := &Toggle{
		allowSound: allowSound,
		onToggle:   onToggle,
	}
	toggle.button = widget.NewButtonWithIcon("", iconFor(allowSound), toggle.handleTap)
	toggle.button.Importance = widget.LowImportance
	return toggle
}

// Content returns the button.
func (toggle *Toggle) Content() fyne.CanvasObject {
	return toggle.button
}

// AllowSound reports the displayed state.
func (toggle *Toggle) AllowSound() bool {
	return toggle.allowSound
}

// SetAllowSound updates the displayed state.
func (toggle *Toggle) SetAllowSound(allowSound bool) {
	toggle.allowSound = allowSound
	toggle.button.SetIcon(iconFor(allowSound))
}

func (toggle *Toggle) handleTap() {
	if toggle.onToggle != nil {
		toggle.onToggle(!toggle.allowSound)
	}
}

func iconFor(allowSound bool) fyne.Resource {
	if allowSound {
		return theme.VolumeUpIcon()
	}
	return theme.VolumeMuteIcon()
}
