package app

import (
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kastheco/swerve/gesture"
	"github.com/kastheco/swerve/keys"
	"github.com/kastheco/swerve/telemetry"
	"github.com/kastheco/swerve/ui"
)

func (s *shell) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s.state {
	case stateAddress:
		return s.handleAddressKey(msg)
	case stateHelp:
		s.state = stateBrowsing
		return s, nil
	case stateTray:
		return s.handleTrayKey(msg)
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return s, nil
	}

	switch name {
	case keys.KeyQuit:
		return s, s.quit()
	case keys.KeyHelp:
		s.state = stateHelp
		return s, nil
	case keys.KeyNewTab:
		s.store.Open(s.cfg.Homepage, "New Tab", s.privateMode)
		s.beginAddressEdit("")
	case keys.KeyCloseTab:
		if tab, ok := s.store.Selected(s.privateMode); ok {
			_ = s.store.Close(tab.ID)
		}
	case keys.KeyNextTab:
		s.cycleTab(1)
	case keys.KeyPrevTab:
		s.cycleTab(-1)
	case keys.KeyTogglePrivate:
		s.privateMode = !s.privateMode
	case keys.KeyOpenTray:
		page := gesture.NormalTabs
		if s.privateMode {
			page = gesture.PrivateTabs
		}
		s.openTray(page)
	case keys.KeyAddress:
		initial := ""
		if tab, ok := s.store.Selected(s.privateMode); ok {
			initial = tab.URL
		}
		s.beginAddressEdit(initial)
	case keys.KeyCopyURL:
		if tab, ok := s.store.Selected(s.privateMode); ok {
			_ = clipboard.WriteAll(tab.URL)
		}
	}
	return s, nil
}

func (s *shell) handleTrayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return s, nil
	}
	switch name {
	case keys.KeyUp:
		s.tray.MoveCursor(-1)
	case keys.KeyDown:
		s.tray.MoveCursor(1)
	case keys.KeyEnter:
		if tab, ok := s.tray.CursorTab(); ok {
			_ = s.store.Select(tab.ID)
			s.privateMode = tab.Private
			s.state = stateBrowsing
		}
	case keys.KeyTogglePrivate:
		page := gesture.NormalTabs
		if s.tray.Page() == gesture.NormalTabs {
			page = gesture.PrivateTabs
		}
		s.openTray(page)
	case keys.KeyEscape:
		s.state = stateBrowsing
	case keys.KeyQuit:
		return s, s.quit()
	}
	return s, nil
}

// beginAddressEdit focuses the address input, seeded with initial. The focus
// cursor-blink command is dropped; the input still renders a static cursor.
func (s *shell) beginAddressEdit(initial string) {
	s.state = stateAddress
	s.addressInput.SetValue(initial)
	s.addressInput.CursorEnd()
	s.addressInput.Focus()
}

func (s *shell) endAddressEdit() {
	s.state = stateBrowsing
	s.addressInput.Blur()
	s.addressInput.SetValue("")
}

// handleAddressKey intercepts escape and enter; everything else (runes,
// cursor movement, backspace, paste) is the text input's business.
func (s *shell) handleAddressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		s.endAddressEdit()
		return s, nil
	case tea.KeyEnter:
		s.commitAddress()
		return s, nil
	}
	var cmd tea.Cmd
	s.addressInput, cmd = s.addressInput.Update(msg)
	return s, cmd
}

func (s *shell) commitAddress() {
	addr := strings.TrimSpace(s.addressInput.Value())
	s.endAddressEdit()
	if addr == "" {
		return
	}
	if !strings.Contains(addr, "://") {
		addr = "https://" + addr
	}
	if tab, ok := s.store.Selected(s.privateMode); ok {
		_ = s.store.Navigate(tab.ID, addr, urlTitle(addr))
	}
}

// urlTitle derives a display title from a URL, falling back to the raw text.
func urlTitle(addr string) string {
	u, err := url.Parse(addr)
	if err != nil || u.Host == "" {
		return addr
	}
	return u.Host
}

func (s *shell) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch s.state {
	case stateTray:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			s.trayClick(msg)
		}
		return s, nil
	case stateHelp:
		return s, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		s.drag = newDragTracker(pointOf(msg), time.Now())
	case msg.Action == tea.MouseActionMotion && s.drag != nil:
		s.dragMotion(msg)
	case msg.Action == tea.MouseActionRelease && s.drag != nil:
		return s, s.dragRelease(msg)
	}
	return s, nil
}

// dragMotion feeds one motion sample to the gesture core. The core is asked
// to arm once the drag clears the slop distance; a decline past that point
// is final for the rest of the press.
func (s *shell) dragMotion(msg tea.MouseMsg) {
	dx, dy := s.drag.update(pointOf(msg), time.Now())
	switch {
	case s.drag.consumed:
		s.handler.OnUpdate(dx, dy)
	case s.drag.rejected:
	default:
		start, cur := s.drag.start(), s.drag.current()
		dist := math.Hypot(cur.X-start.X, cur.Y-start.Y)
		if dist < s.tuning.Slop {
			return
		}
		if s.handler.OnStart(start, cur) {
			s.drag.consumed = true
			if dir, ok := s.handler.Direction(); ok {
				s.rec.Emit(telemetry.NewEvent(telemetry.EventGestureArmed, "toolbar gesture armed",
					telemetry.WithDirection(dir.String()), telemetry.WithPrivate(s.privateMode)))
			}
		} else {
			s.drag.rejected = true
			if s.Environment().ToolbarRect.Contains(start) {
				s.rec.Emit(telemetry.NewEvent(telemetry.EventGestureRejected, "toolbar gesture rejected",
					telemetry.WithPrivate(s.privateMode)))
			}
		}
	}
}

func (s *shell) dragRelease(msg tea.MouseMsg) tea.Cmd {
	drag := s.drag
	s.drag = nil

	if drag.consumed {
		dir, _ := s.handler.Direction()
		vx, vy := drag.velocity(time.Now())
		s.handler.OnEnd(vx, vy)
		if s.handler.State() == gesture.StateCanceling {
			s.rec.Emit(telemetry.NewEvent(telemetry.EventGestureCanceled, "toolbar gesture canceled",
				telemetry.WithDirection(dir.String()), telemetry.WithPrivate(s.privateMode)))
		}
		if s.handler.Animating() {
			return frameTick()
		}
		return nil
	}

	// Short press: treat as a click.
	s.click(msg)
	return nil
}

func (s *shell) click(msg tea.MouseMsg) {
	if zone.Get(ui.ZoneToolbar).InBounds(msg) {
		initial := ""
		if tab, ok := s.store.Selected(s.privateMode); ok {
			initial = tab.URL
		}
		s.beginAddressEdit(initial)
		return
	}
	for i, tab := range s.store.Tabs(s.privateMode) {
		if zone.Get(ui.TabZoneID(i)).InBounds(msg) {
			_ = s.store.Select(tab.ID)
			return
		}
	}
}

func (s *shell) trayClick(msg tea.MouseMsg) {
	rows := s.store.Tabs(s.tray.Page() == gesture.PrivateTabs)
	for i, tab := range rows {
		if zone.Get(ui.TrayRowZoneID(i)).InBounds(msg) {
			_ = s.store.Select(tab.ID)
			s.privateMode = tab.Private
			s.state = stateBrowsing
			return
		}
	}
}

func pointOf(msg tea.MouseMsg) gesture.Point {
	return gesture.Point{X: float64(msg.X), Y: float64(msg.Y)}
}
