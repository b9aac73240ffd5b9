package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyEnter
	KeyQuit
	KeyHelp

	KeyNewTab
	KeyCloseTab
	KeyNextTab
	KeyPrevTab
	KeyTogglePrivate
	KeyOpenTray
	KeyAddress // focus the toolbar address field
	KeyCopyURL
	KeyEscape
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"enter":  KeyEnter,
	"q":      KeyQuit,
	"?":      KeyHelp,
	"n":      KeyNewTab,
	"w":      KeyCloseTab,
	"l":      KeyNextTab,
	"right":  KeyNextTab,
	"h":      KeyPrevTab,
	"left":   KeyPrevTab,
	"p":      KeyTogglePrivate,
	"t":      KeyOpenTray,
	"/":      KeyAddress,
	"y":      KeyCopyURL,
	"esc":    KeyEscape,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "open"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyNewTab: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new tab"),
	),
	KeyCloseTab: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "close tab"),
	),
	KeyNextTab: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("→/l", "next tab"),
	),
	KeyPrevTab: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("←/h", "prev tab"),
	),
	KeyTogglePrivate: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "private mode"),
	),
	KeyOpenTray: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tab tray"),
	),
	KeyAddress: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "address bar"),
	),
	KeyCopyURL: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	KeyEscape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}
