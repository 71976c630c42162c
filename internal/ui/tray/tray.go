package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggleSound func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host        MenuHost
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	showItem    *fyne.MenuItem
	soundItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
	allowSound  bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(host MenuHost, allowSound bool, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:        host,
		callbacks:   callbacks,
		allowSound:  allowSound,
		statusLabel: "--:--",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show calculator", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.soundItem = fyne.NewMenuItem("", func() {
		if manager.callbacks.OnToggleSound != nil {
			manager.callbacks.OnToggleSound()
		}
	})

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshLabels()
	manager.refreshMenu()
	return manager
}

// SetStatus updates the duration shown in the status line.
func (manager *Manager) SetStatus(duration string) {
	manager.statusLabel = duration
	manager.refreshLabels()
	manager.refreshMenu()
}

// SetAllowSound updates the sound item label.
func (manager *Manager) SetAllowSound(allowSound bool) {
	manager.allowSound = allowSound
	manager.refreshLabels()
	manager.refreshMenu()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("Workout timer", manager.statusItem, manager.showItem, manager.soundItem, manager.quitItem)
}

func (manager *Manager) refreshLabels() {
	manager.statusItem.Label = fmt.Sprintf("Duration: %s", manager.statusLabel)
	if manager.allowSound {
		manager.soundItem.Label = "Sound: on"
	} else {
		manager.soundItem.Label = "Sound: off"
	}
	manager.soundItem.Checked = manager.allowSound
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.Menu())
	}
}
