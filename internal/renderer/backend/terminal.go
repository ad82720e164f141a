package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/goodhex/internal/input/key"
	"github.com/dshills/goodhex/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{
		Rune:  mainc,
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return Event{Type: EventNone}
		}
		if converted, ok := convertEvent(ev); ok {
			return converted
		}
	}
}

func (t *Terminal) PostEvent(event Event) {
	switch event.Type {
	case EventKey:
		k, r := convertToTcellKey(event.Key, event.Rune)
		_ = t.screen.PostEvent(tcell.NewEventKey(k, r, tcell.ModNone)) // best-effort; event queue may be full
	case EventInterrupt:
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(event.Data)) // best-effort; event queue may be full
	}
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	style = style.Foreground(convertColor(s.Foreground))
	style = style.Background(convertColor(s.Background))

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()

	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
		Attributes: core.AttrNone,
	}

	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= core.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= core.AttrDim
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= core.AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= core.AttrReverse
	}
	return s
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}

	// Check if it's a palette color
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}

	// True color
	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts tcell events to our Event type. Events the viewer
// has no use for (mouse, paste, focus) are dropped. Every key is forwarded,
// unlisted ones as KeyUnknown, so they still count as the last key pressed.
func convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, r := convertKey(e)
		return Event{Type: EventKey, Key: k, Rune: r}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}, true

	default:
		return Event{}, false
	}
}

// convertKey converts a tcell key event to our key and rune.
func convertKey(e *tcell.EventKey) (key.Key, rune) {
	switch e.Key() {
	case tcell.KeyRune:
		return key.KeyRune, e.Rune()
	case tcell.KeyEscape:
		return key.KeyEscape, 0
	case tcell.KeyEnter:
		return key.KeyEnter, 0
	case tcell.KeyTab:
		return key.KeyTab, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, 0
	case tcell.KeyDelete:
		return key.KeyDelete, 0
	case tcell.KeyHome:
		return key.KeyHome, 0
	case tcell.KeyEnd:
		return key.KeyEnd, 0
	case tcell.KeyPgUp:
		return key.KeyPageUp, 0
	case tcell.KeyPgDn:
		return key.KeyPageDown, 0
	case tcell.KeyUp:
		return key.KeyUp, 0
	case tcell.KeyDown:
		return key.KeyDown, 0
	case tcell.KeyLeft:
		return key.KeyLeft, 0
	case tcell.KeyRight:
		return key.KeyRight, 0
	case tcell.KeyCtrlG:
		return key.KeyCtrlG, 0
	default:
		return key.KeyUnknown, 0
	}
}

// convertToTcellKey converts our key to a tcell key and rune.
func convertToTcellKey(k key.Key, r rune) (tcell.Key, rune) {
	switch k {
	case key.KeyRune:
		return tcell.KeyRune, r
	case key.KeyEscape:
		return tcell.KeyEscape, 0
	case key.KeyEnter:
		return tcell.KeyEnter, 0
	case key.KeyTab:
		return tcell.KeyTab, 0
	case key.KeyBackspace:
		return tcell.KeyBackspace2, 0
	case key.KeyDelete:
		return tcell.KeyDelete, 0
	case key.KeyHome:
		return tcell.KeyHome, 0
	case key.KeyEnd:
		return tcell.KeyEnd, 0
	case key.KeyPageUp:
		return tcell.KeyPgUp, 0
	case key.KeyPageDown:
		return tcell.KeyPgDn, 0
	case key.KeyUp:
		return tcell.KeyUp, 0
	case key.KeyDown:
		return tcell.KeyDown, 0
	case key.KeyLeft:
		return tcell.KeyLeft, 0
	case key.KeyRight:
		return tcell.KeyRight, 0
	case key.KeyCtrlG:
		return tcell.KeyCtrlG, 0
	default:
		return tcell.KeyRune, r
	}
}
