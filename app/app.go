package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kastheco/swerve/config"
	"github.com/kastheco/swerve/gesture"
	"github.com/kastheco/swerve/log"
	"github.com/kastheco/swerve/tabs"
	"github.com/kastheco/swerve/telemetry"
	"github.com/kastheco/swerve/ui"
)

// frameInterval is the animation step cadence while a gesture settles.
const frameInterval = time.Second / 60

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, store *tabs.Store, sess *tabs.Session, rec telemetry.Recorder) error {
	// Set the terminal's default background to the theme base color so every
	// ANSI reset and unstyled cell falls back to #232136 instead of black.
	restore := ui.SetTerminalBackground(string(ui.ColorBase))
	defer restore()

	zone.NewGlobal()
	p := tea.NewProgram(
		newShell(ctx, cfg, store, sess, rec),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Full mouse tracking for drag + click
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateBrowsing state = iota
	// stateAddress is the state when the toolbar address field has focus.
	stateAddress
	// stateTray is the state when the full-screen tab tray is shown.
	stateTray
	// stateHelp is the state when the help screen is displayed.
	stateHelp
)

// frameMsg drives the settle/fade animation while a gesture resolves.
type frameMsg time.Time

type shell struct {
	ctx context.Context

	// -- Storage and Configuration --

	cfg     *config.Config
	store   *tabs.Store
	session *tabs.Session
	rec     telemetry.Recorder

	// -- State --

	state       state
	privateMode bool
	// addressInput holds the in-progress address while in stateAddress.
	addressInput textinput.Model

	width  int
	height int

	// drag is the press-to-release pointer capture, nil when no button is down.
	drag *dragTracker

	// -- Gesture --

	handler *gesture.Handler
	tuning  gesture.Tuning

	// -- UI Components --

	toolbar   *ui.Toolbar
	strip     *ui.TabStrip
	content   *ui.ContentPane
	preview   *ui.PreviewPane
	tray      *ui.Tray
	statusBar *ui.StatusBar
	// helpView is the glamour-rendered help screen, built lazily.
	helpView string
}

func newShell(ctx context.Context, cfg *config.Config, store *tabs.Store, sess *tabs.Session, rec telemetry.Recorder) *shell {
	s := &shell{
		ctx:       ctx,
		cfg:       cfg,
		store:     store,
		session:   sess,
		rec:       rec,
		tuning:    shellTuning(cfg.Gesture),
		toolbar:   ui.NewToolbar(),
		strip:     ui.NewTabStrip(),
		content:   ui.NewContentPane(),
		tray:      ui.NewTray(),
		statusBar: ui.NewStatusBar(),
	}
	addressInput := textinput.New()
	addressInput.Prompt = ""
	addressInput.Placeholder = "search or enter address"
	addressInput.Blur()
	s.addressInput = addressInput
	s.preview = ui.NewPreviewPane(store.Get)
	s.handler = gesture.NewHandler(gesture.Config{
		Tabs:      store,
		Content:   s.content,
		Preview:   s.preview,
		Navigator: s,
		Env:       s,
		Telemetry: s,
		Tuning:    s.tuning,
	})
	if store.Count(false) == 0 {
		store.Open(cfg.Homepage, "New Tab", false)
	}
	return s
}

// shellTuning scales the gesture defaults to terminal cells: the stock
// thresholds are sized for touch pixels and would never trigger on a cell
// grid. Explicit config values still win.
func shellTuning(gc config.GestureConfig) gesture.Tuning {
	t := gc.Tuning()
	if gc.Slop == 0 {
		t.Slop = 2
	}
	if gc.MinFlingVelocity == 0 {
		t.MinFlingVelocity = 30
	}
	if gc.PreviewOffset == 0 {
		t.PreviewOffset = 2
	}
	return t
}

func (s *shell) Init() tea.Cmd {
	return nil
}

func (s *shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.setSize(msg.Width, msg.Height)
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tea.MouseMsg:
		return s.handleMouse(msg)
	case frameMsg:
		s.handler.Step(frameInterval)
		if s.handler.Animating() {
			return s, frameTick()
		}
		return s, nil
	}
	return s, nil
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (s *shell) setSize(width, height int) {
	s.width = width
	s.height = height
	s.helpView = "" // re-render help at the new wrap width
	s.toolbar.SetSize(width)
	s.addressInput.Width = s.toolbar.FieldWidth()
	s.strip.SetSize(width)
	s.statusBar.SetSize(width)
	s.content.SetSize(width, s.contentHeight())
	s.preview.SetSize(width+int(s.tuning.PreviewOffset), s.contentHeight())
	s.tray.SetSize(width, height)
}

// contentHeight is the page area: window minus toolbar, tab strip and
// status bar rows.
func (s *shell) contentHeight() int {
	h := s.height - 3
	if h < 0 {
		h = 0
	}
	return h
}

// toolbarRow is the window row the toolbar is composed at.
func (s *shell) toolbarRow() int {
	if s.cfg.ToolbarAtBottom() {
		return s.height - 1
	}
	return 0
}

// Environment implements gesture.EnvironmentSource.
func (s *shell) Environment() gesture.Environment {
	pos := gesture.ToolbarTop
	if s.cfg.ToolbarAtBottom() {
		pos = gesture.ToolbarBottom
	}
	return gesture.Environment{
		WindowWidth:     float64(s.width),
		ToolbarRect:     s.toolbar.HitRect(s.toolbarRow()),
		ToolbarPosition: pos,
		KeyboardVisible: s.state == stateAddress,
		RTL:             s.cfg.IsRTL(),
		PrivateMode:     s.privateMode,
	}
}

// SelectTab implements gesture.Navigator.
func (s *shell) SelectTab(tabID string) {
	if err := s.store.Select(tabID); err != nil {
		return
	}
}

// NavigateToTray implements gesture.Navigator.
func (s *shell) NavigateToTray(page gesture.TrayPage) {
	s.openTray(page)
	s.rec.Emit(telemetry.NewEvent(telemetry.EventTrayOpened, "tray opened by gesture",
		telemetry.WithPrivate(page == gesture.PrivateTabs)))
}

// NavigateToNewTab implements gesture.Navigator.
func (s *shell) NavigateToNewTab(focusAddressBar bool) {
	tab := s.store.Open(s.cfg.Homepage, "New Tab", s.privateMode)
	if focusAddressBar {
		s.beginAddressEdit("")
	}
	s.rec.Emit(telemetry.NewEvent(telemetry.EventNewTabOpened, "new tab opened by gesture",
		telemetry.WithTab(tab.ID), telemetry.WithPrivate(tab.Private)))
}

// ToolbarSwipe implements gesture.Telemetry.
func (s *shell) ToolbarSwipe(dest gesture.Destination) {
	opts := []telemetry.EventOption{telemetry.WithTab(dest.TabID), telemetry.WithPrivate(dest.Private)}
	if dir, ok := s.handler.Direction(); ok {
		opts = append(opts, telemetry.WithDirection(dir.String()))
	}
	s.rec.Emit(telemetry.NewEvent(telemetry.EventToolbarSwipe, "tab switched by toolbar swipe", opts...))
}

// cycleTab moves the selection by delta within the visible partition,
// wrapping at both ends.
func (s *shell) cycleTab(delta int) {
	list := s.store.Tabs(s.privateMode)
	if len(list) == 0 {
		return
	}
	idx := 0
	if sel, ok := s.store.SelectedID(s.privateMode); ok {
		for i, tab := range list {
			if tab.ID == sel {
				idx = i
				break
			}
		}
	}
	idx = (idx + delta + len(list)) % len(list)
	_ = s.store.Select(list[idx].ID)
}

func (s *shell) openTray(page gesture.TrayPage) {
	s.state = stateTray
	private := page == gesture.PrivateTabs
	selected, _ := s.store.SelectedID(private)
	s.tray.SetPage(page, s.store.Tabs(private), selected)
}

func (s *shell) quit() tea.Cmd {
	if s.session != nil {
		if err := s.session.Save(s.store); err != nil {
			log.ErrorLog.Printf("failed to save session: %v", err)
		}
	}
	return tea.Quit
}
