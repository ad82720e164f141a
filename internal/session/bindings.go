package session

import (
	"errors"

	"github.com/dshills/goodhex/internal/input/key"
	"github.com/dshills/goodhex/internal/input/mode"
	"github.com/dshills/goodhex/internal/view"
)

// action handles one bound key.
type action func(s *Session, ev key.Event) Result

// globalBindings are checked before the current mode's table.
var globalBindings = map[key.Event]action{
	key.NewSpecialEvent(key.KeyUp):     moveRows(-1),
	key.NewSpecialEvent(key.KeyDown):   moveRows(1),
	key.NewSpecialEvent(key.KeyLeft):   move(-1),
	key.NewSpecialEvent(key.KeyRight):  move(1),
	key.NewRuneEvent(' '):              toggleMark,
	key.NewSpecialEvent(key.KeyTab):    cycleSet,
	key.NewRuneEvent('+'):              incWidth,
	key.NewRuneEvent('-'):              decWidth,
	key.NewSpecialEvent(key.KeyEscape): escape,
}

// modeBindings holds the per-mode key tables.
var modeBindings = map[mode.Mode]map[key.Event]action{
	mode.Command: {
		key.NewRuneEvent('q'): quit,
		key.NewRuneEvent('n'): move(view.PageSize),
		key.NewRuneEvent('p'): move(-view.PageSize),
		key.NewRuneEvent('N'): move(view.LargePageSize),
		key.NewRuneEvent('P'): move(-view.LargePageSize),
		key.NewRuneEvent('i'): setMode(mode.Insert),
		key.NewRuneEvent('a'): setMode(mode.Annotate),
		key.NewRuneEvent('A'): setMode(mode.ASCII),
		key.NewRuneEvent('g'): gotoAddress,
	},
	mode.Annotate: annotateBindings(),
	mode.Insert:   {},
}

// modeFallbacks handle keys a mode's table does not name.
var modeFallbacks = map[mode.Mode]action{
	mode.ASCII: writeASCII,
}

func annotateBindings() map[key.Event]action {
	m := map[key.Event]action{
		key.NewRuneEvent('n'): editNote,
	}
	for d := '0'; d <= '9'; d++ {
		m[key.NewRuneEvent(d)] = setColor(int(d - '0'))
	}
	return m
}

func move(delta int64) action {
	return func(s *Session, _ key.Event) Result {
		s.view.Move(delta)
		return OK()
	}
}

func moveRows(n int64) action {
	return func(s *Session, _ key.Event) Result {
		s.view.MoveRows(n)
		return OK()
	}
}

func toggleMark(s *Session, _ key.Event) Result {
	s.view.ToggleMark()
	return OK()
}

func cycleSet(s *Session, _ key.Event) Result {
	s.store.Cycle()
	return Redraw()
}

func incWidth(s *Session, _ key.Event) Result {
	s.view.IncWidth()
	return Redraw()
}

func decWidth(s *Session, _ key.Event) Result {
	if !s.view.DecWidth() {
		return NoOp()
	}
	return Redraw()
}

// escape returns to Command mode on the second consecutive Escape.
func escape(s *Session, ev key.Event) Result {
	if s.view.LastKey() != ev {
		return NoOp()
	}
	s.view.SetMode(mode.Command)
	return OK()
}

func setMode(m mode.Mode) action {
	return func(s *Session, _ key.Event) Result {
		s.view.SetMode(m)
		return OK()
	}
}

func quit(_ *Session, _ key.Event) Result {
	return Result{Status: StatusOK, Quit: true}
}

func gotoAddress(s *Session, _ key.Event) Result {
	text, err := s.prompt(GotoTitle, GotoMessage)
	if err != nil {
		return promptFailed(err)
	}
	addr, err := ParseAddress(text)
	if err != nil {
		res := Error(err)
		res.Redraw = true
		return res
	}
	s.view.SetCursor(addr)
	return Redraw()
}

// writeASCII stores printable ASCII and newline at the cursor. The cursor
// advances even when the source rejects the write.
func writeASCII(s *Session, ev key.Event) Result {
	var b byte
	switch {
	case ev.Key == key.KeyEnter:
		b = '\n'
	case ev.Key == key.KeyRune && ev.Rune >= 0x20 && ev.Rune < 0x7f:
		b = byte(ev.Rune)
	default:
		return NoOp()
	}

	addr := s.view.Cursor()
	err := s.source.SetByteAt(addr, b)
	s.view.Move(1)
	if err != nil {
		return Error(err)
	}
	return OK()
}

// setColor tags the cursor byte, or the marked range while marking.
func setColor(tag int) action {
	return func(s *Session, _ key.Event) Result {
		var err error
		if lo, hi, ok := s.view.MarkedRange(); ok {
			err = s.store.SetColorRange(lo, hi, tag)
		} else {
			err = s.store.SetColor(s.view.Cursor(), tag)
		}
		if err != nil {
			return Error(err)
		}
		return OK()
	}
}

func editNote(s *Session, _ key.Event) Result {
	addr := s.view.Cursor()
	text, err := s.prompt(NoteTitle, noteMessage(addr))
	if err != nil {
		return promptFailed(err)
	}
	s.store.SetNote(addr, text)
	return Redraw()
}

// promptFailed leaves everything unchanged when the prompt was closed
// without a commit.
func promptFailed(err error) Result {
	if errors.Is(err, errPromptClosed) {
		return Result{Status: StatusNoOp, Redraw: true}
	}
	return Error(err)
}
