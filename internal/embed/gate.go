package embed

import (
	"log/slog"
	"sync"

	"golang.org/x/net/html"
)

// ReadyState mirrors document.readyState.
type ReadyState string

const (
	ReadyStateLoading     ReadyState = "loading"
	ReadyStateInteractive ReadyState = "interactive"
	ReadyStateComplete    ReadyState = "complete"
)

// State is the position of a Gate.
type State int

const (
	StateWaiting State = iota
	StateInitialized
)

func (s State) String() string {
	if s == StateInitialized {
		return "initialized"
	}
	return "waiting"
}

// Gate defers a single run until the document is ready. It moves from
// waiting to initialized exactly once and never back.
type Gate struct {
	mu    sync.Mutex
	state State
	run   func() error
	err   error
}

// NewGate returns a waiting gate that calls run when opened.
func NewGate(run func() error) *Gate {
	return &Gate{run: run}
}

// Start runs immediately unless rs is loading, in which case the run waits
// for Ready.
func (g *Gate) Start(rs ReadyState) error {
	if rs == ReadyStateLoading {
		return nil
	}
	return g.Ready()
}

// Ready is the document-ready signal. Calls after the first return the
// first run's error without running again.
func (g *Gate) Ready() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateInitialized {
		return g.err
	}
	g.state = StateInitialized
	g.err = g.run()
	return g.err
}

// State reports whether the gate has run.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Widget binds a document and options to a Gate, logging the outcome the
// way the browser script reports to the console.
type Widget struct {
	gate   *Gate
	result *Result
	logger *slog.Logger
}

// NewWidget prepares a widget for doc. A nil logger uses slog.Default.
func NewWidget(doc *html.Node, opts Options, logger *slog.Logger) *Widget {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Widget{logger: logger}
	w.gate = NewGate(func() error {
		res, err := Initialize(doc, opts)
		if err != nil {
			w.logger.Error("ambassador map widget failed", "err", err)
			return err
		}
		w.result = res
		w.logger.Info("XGrid Ambassador Map widget initialized successfully",
			"container", opts.withDefaults().ContainerID,
			"origin", res.Origin,
			"created", res.Created,
		)
		return nil
	})
	return w
}

// Start is Gate.Start for the widget's gate.
func (w *Widget) Start(rs ReadyState) error { return w.gate.Start(rs) }

// Ready is Gate.Ready for the widget's gate.
func (w *Widget) Ready() error { return w.gate.Ready() }

// State reports the gate state.
func (w *Widget) State() State { return w.gate.State() }

// Result is nil until a successful run.
func (w *Widget) Result() *Result {
	w.gate.mu.Lock()
	defer w.gate.mu.Unlock()
	return w.result
}
