package session

import (
	"errors"
	"fmt"

	"github.com/dshills/goodhex/internal/annotation"
	"github.com/dshills/goodhex/internal/datasource"
	"github.com/dshills/goodhex/internal/input/key"
	"github.com/dshills/goodhex/internal/view"
)

// Prompt titles and messages.
const (
	NoteTitle   = "Adding Annotation"
	NoteMessage = "Please add a note for 0x%08x"
	GotoTitle   = "Message Box"
	GotoMessage = "Where would you like to go?\n(Hex, please.)"
)

// Prompter asks the user for free text. ok is false when the prompt closed
// without the text being committed.
type Prompter interface {
	Prompt(title, message string) (text string, ok bool)
}

// Logger receives session diagnostics.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Session is one viewing session: navigation state, annotations and data.
// It is not safe for concurrent use.
type Session struct {
	view     *view.State
	store    *annotation.Store
	source   datasource.Source
	prompter Prompter
	logger   Logger

	status string
	quit   bool
}

// Option configures a Session.
type Option func(*Session)

// WithPrompter sets the prompter used for notes and goto.
func WithPrompter(p Prompter) Option {
	return func(s *Session) {
		s.prompter = p
	}
}

// WithLogger sets the session logger.
func WithLogger(l Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// ErrNoPrompter is reported when a prompt is needed but none is configured.
var ErrNoPrompter = errors.New("no prompter configured")

var errPromptClosed = errors.New("prompt closed")

// New creates a session. A nil state starts a fresh view.State.
func New(state *view.State, store *annotation.Store, source datasource.Source, opts ...Option) *Session {
	if state == nil {
		state = view.New()
	}
	s := &Session{
		view:   state,
		store:  store,
		source: source,
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View returns the navigation state.
func (s *Session) View() *view.State {
	return s.view
}

// Store returns the annotation store.
func (s *Session) Store() *annotation.Store {
	return s.store
}

// Source returns the data source.
func (s *Session) Source() datasource.Source {
	return s.source
}

// Status returns the message left by the last key, if any.
func (s *Session) Status() string {
	return s.status
}

// SetStatus replaces the status message.
func (s *Session) SetStatus(msg string) {
	s.status = msg
}

// Done reports whether the session has quit.
func (s *Session) Done() bool {
	return s.quit
}

// Snapshot returns the view state for rendering.
func (s *Session) Snapshot() view.Snapshot {
	return s.view.Snapshot(s.store.Index())
}

// HandleKey interprets one key press. Once the session has quit, further
// keys are ignored.
func (s *Session) HandleKey(ev key.Event) Result {
	if s.quit {
		return Result{Status: StatusNoOp, Quit: true}
	}

	res := s.dispatch(ev)

	s.view.Clamp()
	s.view.RecordKey(ev)

	s.status = res.Message
	if res.Err != nil {
		s.logger.Warn("key %s: %v", ev, res.Err)
	}
	if res.Quit {
		s.quit = true
		s.logger.Debug("quit requested")
	}
	return res
}

func (s *Session) dispatch(ev key.Event) Result {
	if act, ok := globalBindings[ev]; ok {
		return act(s, ev)
	}
	m := s.view.Mode()
	if act, ok := modeBindings[m][ev]; ok {
		return act(s, ev)
	}
	if act, ok := modeFallbacks[m]; ok {
		return act(s, ev)
	}
	return NoOp()
}

func (s *Session) prompt(title, message string) (string, error) {
	if s.prompter == nil {
		return "", ErrNoPrompter
	}
	text, ok := s.prompter.Prompt(title, message)
	if !ok {
		return "", errPromptClosed
	}
	return text, nil
}

func noteMessage(addr int64) string {
	return fmt.Sprintf(NoteMessage, addr)
}
