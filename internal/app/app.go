package app

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/goodhex/internal/annotation"
	"github.com/dshills/goodhex/internal/config"
	"github.com/dshills/goodhex/internal/config/watcher"
	"github.com/dshills/goodhex/internal/datasource"
	"github.com/dshills/goodhex/internal/plugin/lua"
	"github.com/dshills/goodhex/internal/prompt"
	"github.com/dshills/goodhex/internal/renderer"
	"github.com/dshills/goodhex/internal/renderer/backend"
	"github.com/dshills/goodhex/internal/session"
	"github.com/dshills/goodhex/internal/view"
)

// Options configures the application. Zero values leave the loaded
// configuration untouched.
type Options struct {
	// ConfigPath is the configuration file. Empty uses config.DefaultPath.
	ConfigPath string

	// File is the file to view. Empty starts with an empty memory buffer.
	File string

	// Start is the initial cursor address in hex.
	Start string

	Width      int
	Sets       []string
	ReadOnly   bool
	SaveOnQuit bool
	Script     string

	LogFile  string
	LogLevel string

	// LogOutput overrides the log destination.
	LogOutput io.Writer

	// WatchConfig reloads the palette when the config file changes.
	WatchConfig bool

	// IgnoreEnv skips GOODHEX_* environment variables.
	IgnoreEnv bool
}

// interrupt is the payload of backend interrupt events posted to the
// main loop from other goroutines.
type interrupt int

const (
	reloadRequest interrupt = iota + 1
	stopRequest
)

// Application is the running viewer.
type Application struct {
	opts   Options
	config *config.Config
	logger *Logger
	logOut io.Closer

	source   datasource.Source
	script   *lua.ColorScript
	store    *annotation.Store
	session  *session.Session
	renderer *renderer.Renderer

	backend backend.Backend
	watcher *watcher.Watcher

	running      atomic.Bool
	done         chan struct{}
	shutdownOnce sync.Once
	closeOnce    sync.Once
}

// New loads configuration and builds every component except the backend.
func New(opts Options) (*Application, error) {
	a := &Application{
		opts: opts,
		done: make(chan struct{}),
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	a.config = cfg

	if err := a.initLogger(); err != nil {
		return nil, &InitError{Component: "logger", Err: err}
	}

	palette, err := cfg.BuildPalette()
	if err != nil {
		a.Close()
		return nil, &InitError{Component: "palette", Err: err}
	}
	a.renderer = renderer.New(palette)

	if err := a.initSource(); err != nil {
		a.Close()
		return nil, &InitError{Component: "source", Err: err}
	}

	if err := a.initAnnotations(); err != nil {
		a.Close()
		return nil, &InitError{Component: "annotations", Err: err}
	}

	start := cfg.View.Start
	if opts.Start != "" {
		addr, err := session.ParseAddress(opts.Start)
		if err != nil {
			a.Close()
			return nil, &InitError{Component: "view", Err: err}
		}
		start = addr
	}
	state := view.New(view.WithWidth(cfg.View.Width), view.WithCursor(start))

	a.session = session.New(state, a.store, a.source,
		session.WithPrompter(a),
		session.WithLogger(a.logger.WithComponent("session")),
	)

	a.logger.Info("started: file=%q width=%d sets=%v readOnly=%v",
		opts.File, cfg.View.Width, cfg.Annotations.Sets, cfg.Data.ReadOnly)
	return a, nil
}

// loadConfig reads the configuration and layers the command-line options
// over it.
func (a *Application) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		Path:  a.opts.ConfigPath,
		NoEnv: a.opts.IgnoreEnv,
	})
	if err != nil {
		return nil, err
	}
	a.opts.override(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o Options) override(cfg *config.Config) {
	if o.Width > 0 {
		cfg.View.Width = o.Width
	}
	if len(o.Sets) > 0 {
		cfg.Annotations.Sets = o.Sets
	}
	if o.ReadOnly {
		cfg.Data.ReadOnly = true
	}
	if o.SaveOnQuit {
		cfg.Data.SaveOnQuit = true
	}
	if o.Script != "" {
		cfg.Annotations.Script = o.Script
	}
	if o.LogFile != "" {
		cfg.Logging.File = o.LogFile
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
}

func (a *Application) initLogger() error {
	out := a.opts.LogOutput
	if out == nil && a.config.Logging.File != "" {
		f, err := OpenLogFile(a.config.Logging.File)
		if err != nil {
			return err
		}
		a.logOut = f
		out = f
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(a.config.Logging.Level)
	cfg.Output = out
	a.logger = NewSessionLogger(cfg)
	return nil
}

func (a *Application) initSource() error {
	if a.opts.File == "" {
		a.source = datasource.NewMemory(nil, datasource.WithMaxSize(a.config.Data.MaxMemory))
		return nil
	}
	f, err := datasource.Open(a.opts.File, datasource.WithReadOnly(a.config.Data.ReadOnly))
	if err != nil {
		return err
	}
	a.source = f
	return nil
}

func (a *Application) initAnnotations() error {
	policy, err := a.colorPolicy()
	if err != nil {
		return err
	}
	store, err := annotation.NewStore(a.config.Annotations.Sets, annotation.WithColorPolicy(policy))
	if err != nil {
		return err
	}
	a.store = store
	return nil
}

// colorPolicy builds the default-color policy: the Lua script when one is
// configured, the non-printable highlighter otherwise.
func (a *Application) colorPolicy() (annotation.ColorPolicy, error) {
	path := a.config.Annotations.Script
	if path == "" {
		return annotation.NonPrintablePolicy(a.config.Annotations.NonPrintableTag), nil
	}
	script, err := lua.LoadColorScript(path, lua.WithLogger(a.logger.WithComponent("script")))
	if err != nil {
		return nil, err
	}
	a.script = script
	return script, nil
}

// SetBackend sets the terminal backend. It must be called before Run.
func (a *Application) SetBackend(be backend.Backend) error {
	if a.running.Load() {
		return ErrAlreadyRunning
	}
	a.backend = be
	return nil
}

// Run initializes the backend and processes events until the session
// quits. A normal exit returns ErrQuit.
func (a *Application) Run() error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()
	a.backend.HideCursor()

	if a.opts.WatchConfig {
		if err := a.startWatcher(); err != nil {
			a.logger.Warn("config watch disabled: %v", err)
		}
	}
	defer a.stopWatcher()
	defer a.logSummary()

	return a.eventLoop()
}

// logSummary records what the session annotated, and how often the color
// script failed.
func (a *Application) logSummary() {
	for _, set := range a.store.Sets() {
		a.logger.Info("set %q: %d colored, %d notes", set.Name(), set.ColorCount(), set.NoteCount())
	}
	if a.script != nil {
		if n := a.script.Failures(); n > 0 {
			a.logger.Warn("color script failed %d times", n)
		}
	}
}

func (a *Application) eventLoop() error {
	for {
		select {
		case <-a.done:
			return ErrQuit
		default:
		}

		a.render()
		if err := a.handleEvent(a.backend.PollEvent()); err != nil {
			return err
		}
	}
}

func (a *Application) render() {
	a.renderer.Render(a.backend, renderer.Input{
		View:        a.session.Snapshot(),
		Source:      a.source,
		Annotations: a.store,
		Status:      a.session.Status(),
	})
}

func (a *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		res := a.session.HandleKey(ev.KeyEvent())
		if res.Status == session.StatusError {
			a.backend.Beep()
		}
		if res.Redraw {
			a.renderer.Invalidate()
		}
		if res.Quit {
			return a.quit()
		}

	case backend.EventResize:
		a.renderer.Invalidate()

	case backend.EventInterrupt:
		switch ev.Data {
		case reloadRequest:
			a.reload()
		case stopRequest:
			return ErrQuit
		}

	case backend.EventNone:
		// The backend is gone.
		return ErrQuit
	}
	return nil
}

// quit saves pending edits when configured to and ends the loop.
func (a *Application) quit() error {
	if err := a.save(); err != nil {
		a.logger.Error("%v", err)
		return err
	}
	a.logger.Info("quit")
	return ErrQuit
}

func (a *Application) save() error {
	f, ok := a.source.(*datasource.File)
	if !ok || !a.config.Data.SaveOnQuit || f.ReadOnly() || !f.IsDirty() {
		return nil
	}
	if err := f.Save(); err != nil {
		return NewOperationError("save", f.Path(), err)
	}
	a.logger.Info("saved %s", f.Path())
	return nil
}

// reload re-reads the configuration and applies the parts that can change
// while running: palette, log level and the non-printable tag.
func (a *Application) reload() {
	cfg, err := a.loadConfig()
	if err == nil {
		var palette renderer.Palette
		palette, err = cfg.BuildPalette()
		if err == nil {
			a.renderer.SetPalette(palette)
		}
	}
	if err != nil {
		err = NewOperationError("reload", a.configPath(), err)
		a.logger.Warn("%v", err)
		a.session.SetStatus("config reload failed")
		return
	}

	a.config.Palette = cfg.Palette
	a.config.Logging.Level = cfg.Logging.Level
	a.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	if a.script == nil && cfg.Annotations.NonPrintableTag != a.config.Annotations.NonPrintableTag {
		a.config.Annotations.NonPrintableTag = cfg.Annotations.NonPrintableTag
		a.store.SetPolicy(annotation.NonPrintablePolicy(cfg.Annotations.NonPrintableTag))
	}

	a.logger.Info("config reloaded")
	a.session.SetStatus("config reloaded")
}

func (a *Application) configPath() string {
	if a.opts.ConfigPath != "" {
		return a.opts.ConfigPath
	}
	return config.DefaultPath()
}

func (a *Application) startWatcher() error {
	log := a.logger.WithComponent("watcher")
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		log.Warn("%v", err)
	}))
	if err != nil {
		return err
	}

	path := a.configPath()
	if err := w.Watch(path); err != nil {
		w.Stop()
		return fmt.Errorf("watching %s: %w", path, err)
	}
	w.OnChange(func(ev watcher.Event) {
		log.Debug("%s %s", ev.Op, ev.Path)
		a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest})
	})
	w.Start()

	a.watcher = w
	return nil
}

func (a *Application) stopWatcher() {
	if a.watcher != nil {
		a.watcher.Stop()
		a.watcher = nil
	}
}

// Prompt shows the modal text box and returns the committed text. It lets
// the session prompt for notes and addresses through the running backend.
// A stop request closes the box without committing.
func (a *Application) Prompt(title, message string) (string, bool) {
	box := prompt.New(a.backend,
		prompt.WithTitleStyle(a.renderer.Palette().Tags[renderer.TagCount-1]),
		prompt.WithCancel(isStopRequest),
	)
	text, ok := box.Prompt(title, message)
	a.renderer.Invalidate()
	return text, ok
}

func isStopRequest(ev backend.Event) bool {
	return ev.Type == backend.EventInterrupt && ev.Data == stopRequest
}

// Shutdown asks a running event loop to stop. It is safe to call from any
// goroutine and more than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		close(a.done)
		if a.backend != nil && a.running.Load() {
			a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: stopRequest})
		}
	})
}

// Close releases the script state and the log file.
func (a *Application) Close() {
	a.closeOnce.Do(func() {
		if a.script != nil {
			_ = a.script.Close()
		}
		if a.logOut != nil {
			_ = a.logOut.Close()
		}
	})
}

// Config returns the effective configuration.
func (a *Application) Config() *config.Config {
	return a.config
}

// Session returns the viewing session.
func (a *Application) Session() *session.Session {
	return a.session
}

// Source returns the data source.
func (a *Application) Source() datasource.Source {
	return a.source
}

// Logger returns the application logger.
func (a *Application) Logger() *Logger {
	return a.logger
}

// IsRunning reports whether Run is processing events.
func (a *Application) IsRunning() bool {
	return a.running.Load()
}

// OpenLogFile opens path for appending log lines.
func OpenLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", path, err)
	}
	return f, nil
}
