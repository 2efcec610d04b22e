// Command splinedit is a TUI editor for piecewise cubic Bezier
// splines. Click empty space to append a knot and drag out its
// tangent, click the curve to insert a knot on it, drag knots and
// handles to reshape, right-click a knot to remove it.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/spline-toolkit/pkg/spline"
	"github.com/ha1tch/spline-toolkit/pkg/splinefile"
)

// Config holds persistent editor settings
type Config struct {
	ExportType string // "svg", "png" or "pdf"
	LastDir    string // last used directory
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	cwd, _ := os.Getwd()
	return Config{
		ExportType: "svg",
		LastDir:    cwd,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".splinedit"
	}
	return filepath.Join(home, ".splinedit")
}

// LoadConfig loads configuration from the settings file
func LoadConfig() Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		return cfg
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.Trim(strings.TrimSpace(parts[1]), "\"")
		switch key {
		case "export_type":
			if val == "svg" || val == "png" || val == "pdf" {
				cfg.ExportType = val
			}
		case "last_dir":
			if val != "" {
				cfg.LastDir = val
			}
		}
	}
	return cfg
}

// SaveConfig saves configuration to the settings file
func SaveConfig(cfg Config) error {
	content := fmt.Sprintf("# splinedit configuration\nexport_type = \"%s\"\nlast_dir = \"%s\"\n",
		cfg.ExportType, cfg.LastDir)
	return os.WriteFile(ConfigPath(), []byte(content), 0644)
}

// minMoveInterval is the minimum spacing between pointer-move events
// forwarded to the engine; the terminal can deliver moves far faster
// than redraws are useful.
const minMoveInterval = 16 * time.Millisecond

// Mode represents editor mode
type Mode int

const (
	ModeCanvas Mode = iota
	ModeHelp
)

// MessageType for status messages
type MessageType int

const (
	MsgInfo MessageType = iota
	MsgError
	MsgSuccess
)

// Editor holds all editor state
type Editor struct {
	screen      tcell.Screen
	engine      *spline.Engine
	splineCfg   splinefile.Config
	filename    string
	modified    bool
	mode        Mode
	message     string
	messageType MessageType
	config      Config

	showCurve bool // toggle curve layer with 'w'

	// Mouse drag tracking
	leftMouseDown bool
	lastMove      time.Time
}

func main() {
	splineCfg := splinefile.DefaultConfig()
	opts := splineCfg.EngineOptions()
	// Terminal cells are much coarser than pixels.
	opts.MaxHitDistance = 3

	ed := &Editor{
		engine:    spline.NewEngine(opts),
		splineCfg: splineCfg,
		config:    LoadConfig(),
		showCurve: true,
	}

	if len(os.Args) > 1 {
		ed.filename = os.Args[1]
		if err := ed.loadFile(ed.filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", ed.filename, err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()
	ed.screen = screen

	defer screen.Fini()

	for {
		ed.draw()
		ed.screen.Show()

		switch ev := ed.screen.PollEvent().(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			if !ed.handleKey(ev) {
				SaveConfig(ed.config)
				return
			}
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		}
	}
}

func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	mod := ev.Modifiers()

	// Accept Ctrl on all platforms and Cmd/Alt variants on macOS
	isCtrlOrCmd := func(key tcell.Key, r rune) bool {
		if ev.Key() == key {
			return true
		}
		if mod&tcell.ModMeta != 0 && ev.Rune() == r {
			return true
		}
		if mod&tcell.ModAlt != 0 && ev.Rune() == r {
			return true
		}
		return false
	}

	if ed.mode == ModeHelp {
		ed.mode = ModeCanvas
		return true
	}

	if isCtrlOrCmd(tcell.KeyCtrlZ, 'z') {
		if ed.engine.Undo() {
			ed.showMessage("Undo", MsgInfo)
		} else {
			ed.showMessage("Nothing to undo", MsgInfo)
		}
		return true
	}
	if isCtrlOrCmd(tcell.KeyCtrlY, 'y') {
		if ed.engine.Redo() {
			ed.showMessage("Redo", MsgInfo)
		} else {
			ed.showMessage("Nothing to redo", MsgInfo)
		}
		return true
	}
	if isCtrlOrCmd(tcell.KeyCtrlS, 's') {
		ed.saveFile()
		return true
	}
	if isCtrlOrCmd(tcell.KeyCtrlC, 'c') {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		if ed.engine.DeleteActive() {
			ed.modified = true
			ed.showMessage("Knot removed", MsgSuccess)
		}
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'w':
			ed.showCurve = !ed.showCurve
			if ed.showCurve {
				ed.showMessage("Curve shown", MsgInfo)
			} else {
				ed.showMessage("Curve hidden", MsgInfo)
			}
		case 'e':
			ed.export()
		case 't':
			ed.cycleExportType()
		case 'r':
			ed.engine.Reset()
			ed.modified = true
			ed.showMessage("Spline cleared", MsgSuccess)
		case 'h', '?':
			ed.mode = ModeHelp
		}
	}
	return true
}

func (ed *Editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	_, h := ed.screen.Size()
	if y >= h-1 {
		// status bar
		return
	}

	cx, cy := float64(x), float64(y)

	if buttons&tcell.Button1 != 0 {
		if !ed.leftMouseDown {
			ed.leftMouseDown = true
			ed.lastMove = time.Now()
			ed.engine.PointerDown(cx, cy)
			ed.modified = true
			return
		}
		// Drag: rate-limit move events before they reach the engine
		if time.Since(ed.lastMove) >= minMoveInterval {
			ed.lastMove = time.Now()
			ed.engine.PointerMove(cx, cy)
		}
		return
	}

	if ed.leftMouseDown {
		ed.leftMouseDown = false
		ed.engine.PointerUp(cx, cy)
		return
	}

	// Right button removes a knot (tcell: Button2 = right/secondary)
	if buttons&tcell.Button2 != 0 {
		if ed.engine.DeleteAt(cx, cy) {
			ed.modified = true
			ed.showMessage("Knot removed", MsgSuccess)
		}
	}
}

func (ed *Editor) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	recs, err := splinefile.ParseJSON(data)
	if err != nil {
		return err
	}
	ed.engine.SetPoints(recs)
	ed.config.LastDir = filepath.Dir(path)
	return nil
}

func (ed *Editor) saveFile() {
	if ed.filename == "" {
		ed.filename = filepath.Join(ed.config.LastDir, "spline.json")
	}
	data, err := splinefile.ToJSON(ed.engine.Points(), true)
	if err != nil {
		ed.showMessage(fmt.Sprintf("Save failed: %v", err), MsgError)
		return
	}
	if err := os.WriteFile(ed.filename, data, 0644); err != nil {
		ed.showMessage(fmt.Sprintf("Save failed: %v", err), MsgError)
		return
	}
	ed.modified = false
	ed.showMessage(fmt.Sprintf("Saved %s", ed.filename), MsgSuccess)
}

func (ed *Editor) exportPath(ext string) string {
	base := "spline"
	if ed.filename != "" {
		base = strings.TrimSuffix(filepath.Base(ed.filename), filepath.Ext(ed.filename))
	}
	return filepath.Join(ed.config.LastDir, base+"."+ext)
}

func (ed *Editor) export() {
	s := ed.engine.Spline()
	var err error
	path := ed.exportPath(ed.config.ExportType)

	switch ed.config.ExportType {
	case "svg":
		svg := splinefile.RenderSVG(s, ed.splineCfg, splinefile.DefaultSVGOptions())
		err = os.WriteFile(path, []byte(svg), 0644)
	case "png":
		var f *os.File
		f, err = os.Create(path)
		if err == nil {
			err = splinefile.RenderPNG(s, f, ed.splineCfg, splinefile.DefaultPNGOptions())
			f.Close()
		}
	case "pdf":
		err = splinefile.ExportPDF(s, path, ed.splineCfg)
	}

	if err != nil {
		ed.showMessage(fmt.Sprintf("Export failed: %v", err), MsgError)
		return
	}
	ed.showMessage(fmt.Sprintf("Exported %s", path), MsgSuccess)
}

func (ed *Editor) cycleExportType() {
	switch ed.config.ExportType {
	case "svg":
		ed.config.ExportType = "png"
	case "png":
		ed.config.ExportType = "pdf"
	default:
		ed.config.ExportType = "svg"
	}
	ed.showMessage(fmt.Sprintf("Export format: %s", ed.config.ExportType), MsgInfo)
}

func (ed *Editor) showMessage(msg string, t MessageType) {
	ed.message = msg
	ed.messageType = t
}
