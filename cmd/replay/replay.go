// Package replay runs a scripted gesture through the gesture core without a
// terminal, printing the resolved outcome. Useful for reproducing a swipe
// from a telemetry report or tuning thresholds from the command line.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kastheco/swerve/config"
	"github.com/kastheco/swerve/gesture"
)

// NewCommand returns the replay subcommand.
func NewCommand() *cobra.Command {
	var (
		windowWidth float64
		toolbarPos  string
		rtl         bool
		private     bool
		tabCount    int
		selected    int
	)

	cmd := &cobra.Command{
		Use:   "replay [script-file]",
		Short: "Run a scripted gesture through the swipe core and print the outcome",
		Long: `Feed a gesture script through the swipe recognizer headlessly.

The script is one event per line, read from the file argument or stdin:

  down X Y       press at window coordinates
  move X Y       motion sample
  up VX VY       release with screen-signed velocity

Lines starting with # are comments.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			cfg := config.LoadConfig()
			env := gesture.Environment{
				WindowWidth:     windowWidth,
				ToolbarRect:     gesture.Rect{X: 0, Y: 0, Width: windowWidth, Height: 50},
				ToolbarPosition: gesture.ToolbarTop,
				RTL:             rtl,
				PrivateMode:     private,
			}
			if toolbarPos == "bottom" {
				env.ToolbarPosition = gesture.ToolbarBottom
				env.ToolbarRect.Y = 950
			}

			result, err := run(in, cmd.OutOrStdout(), env, cfg.Gesture.Tuning(), tabCount, selected)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&windowWidth, "width", 1000, "window width the script coordinates assume")
	cmd.Flags().StringVar(&toolbarPos, "toolbar", "top", "toolbar anchor: top or bottom")
	cmd.Flags().BoolVar(&rtl, "rtl", false, "replay under right-to-left layout")
	cmd.Flags().BoolVar(&private, "private", false, "replay in private browsing mode")
	cmd.Flags().IntVar(&tabCount, "tabs", 3, "number of tabs in the replayed partition")
	cmd.Flags().IntVar(&selected, "selected", 1, "index of the selected tab")

	return cmd
}

// run executes the script against a fresh handler and returns the outcome
// line. Split from the cobra plumbing for testing.
func run(in io.Reader, out io.Writer, env gesture.Environment, tuning gesture.Tuning, tabCount, selected int) (string, error) {
	world := newScriptWorld(env, tabCount, selected)
	world.preview.width = env.WindowWidth + tuning.PreviewOffset
	h := gesture.NewHandler(gesture.Config{
		Tabs:      world,
		Content:   &world.content,
		Preview:   &world.preview,
		Navigator: world,
		Env:       world,
		Tuning:    tuning,
	})

	var pressed, armed bool
	var start gesture.Point
	var last gesture.Point

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) != 3 {
			return "", fmt.Errorf("line %d: want `%s X Y`", line, fields[0])
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil {
			return "", fmt.Errorf("line %d: bad coordinates", line)
		}

		switch fields[0] {
		case "down":
			pressed, armed = true, false
			start = gesture.Point{X: x, Y: y}
			last = start
		case "move":
			if !pressed {
				return "", fmt.Errorf("line %d: move before down", line)
			}
			cur := gesture.Point{X: x, Y: y}
			if armed {
				h.OnUpdate(last.X-cur.X, last.Y-cur.Y)
			} else if h.OnStart(start, cur) {
				armed = true
				dir, _ := h.Direction()
				fmt.Fprintf(out, "armed %s\n", dir)
			}
			last = cur
		case "up":
			if !pressed {
				return "", fmt.Errorf("line %d: up before down", line)
			}
			pressed = false
			if !armed {
				return "rejected", nil
			}
			h.OnEnd(x, y)
			for i := 0; h.Animating() && i < 10000; i++ {
				h.Step(16 * time.Millisecond)
			}
			return world.outcome(), nil
		default:
			return "", fmt.Errorf("line %d: unknown event %q", line, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("script ended without an up event")
}

// scriptWorld is the headless collaborator set for a replay: a synthetic tab
// list plus surface and navigator stubs that record what the core did.
type scriptWorld struct {
	env      gesture.Environment
	ids      []string
	selected int

	content scriptSurface
	preview scriptPreview

	selectedTab string
	trayPage    *gesture.TrayPage
	newTab      bool
}

func newScriptWorld(env gesture.Environment, tabCount, selected int) *scriptWorld {
	ids := make([]string, tabCount)
	for i := range ids {
		ids[i] = fmt.Sprintf("tab-%d", i)
	}
	w := &scriptWorld{env: env, ids: ids, selected: selected}
	w.content.width = env.WindowWidth
	w.preview.width = env.WindowWidth
	return w
}

func (w *scriptWorld) Environment() gesture.Environment { return w.env }

func (w *scriptWorld) OrderedIDs(private bool) []string {
	if private != w.env.PrivateMode {
		return nil
	}
	return w.ids
}

func (w *scriptWorld) SelectedID(private bool) (string, bool) {
	if private != w.env.PrivateMode || w.selected < 0 || w.selected >= len(w.ids) {
		return "", false
	}
	return w.ids[w.selected], true
}

func (w *scriptWorld) SelectTab(tabID string) { w.selectedTab = tabID }

func (w *scriptWorld) NavigateToTray(page gesture.TrayPage) { w.trayPage = &page }

func (w *scriptWorld) NavigateToNewTab(bool) { w.newTab = true }

func (w *scriptWorld) outcome() string {
	switch {
	case w.selectedTab != "":
		return "completed: selected " + w.selectedTab
	case w.trayPage != nil && *w.trayPage == gesture.PrivateTabs:
		return "completed: opened private tab tray"
	case w.trayPage != nil:
		return "completed: opened tab tray"
	case w.newTab:
		return "completed: opened new tab"
	default:
		return "canceled"
	}
}

type scriptSurface struct {
	offset float64
	width  float64
}

func (s *scriptSurface) Offset() float64          { return s.offset }
func (s *scriptSurface) SetOffset(offset float64) { s.offset = offset }
func (s *scriptSurface) Width() float64           { return s.width }

type scriptPreview struct {
	offset  float64
	opacity float64
	visible bool
	width   float64
}

func (p *scriptPreview) LoadThumbnail(string, bool) {}
func (p *scriptPreview) Offset() float64            { return p.offset }
func (p *scriptPreview) SetOffset(offset float64)   { p.offset = offset }
func (p *scriptPreview) Opacity() float64           { return p.opacity }
func (p *scriptPreview) SetOpacity(opacity float64) { p.opacity = opacity }
func (p *scriptPreview) SetVisible(visible bool)    { p.visible = visible }

func (p *scriptPreview) VisibleWidth() float64 {
	off := p.offset
	if off < 0 {
		off = -off
	}
	w := p.width - off
	if w < 0 {
		return 0
	}
	return w
}
