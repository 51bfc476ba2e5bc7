// Package reporter defines the collection side of the report pipeline:
// the contract a host analysis engine drives while it runs, and a registry
// that resolves a configured reporter name to an implementation.
package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dkoosis/lintreport/pkg/reportjson"
)

// Event is one diagnostic callback from the host engine. Text arrives raw;
// reporters decide how to encode it.
type Event struct {
	Category  string
	Module    string
	Obj       string
	Line      int
	Column    int
	Path      string
	Symbol    string
	Text      string
	MessageID string
}

// Reporter receives every diagnostic of a run and a completion signal
// carrying the engine's final statistics. The engine drives one sequential
// event stream, so implementations need no locking.
type Reporter interface {
	// HandleMessage records one diagnostic event.
	HandleMessage(e Event)

	// OnClose finishes the run. stats is the engine's final aggregate;
	// previous carries the prior run's aggregate when the engine kept one.
	OnClose(stats reportjson.Stats, previous *reportjson.Stats) error
}

// Factory constructs a reporter writing its output to w.
type Factory func(w io.Writer) Reporter

// Registry maps reporter names to factories. Names resolve once at
// startup; there is no runtime plugin discovery.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a registry holding the built-in reporters.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("json", func(w io.Writer) Reporter { return NewJSON(w) })
	return r
}

// Register adds a factory under name, replacing any previous entry.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// New resolves name and constructs its reporter writing to w.
func (r *Registry) New(name string, w io.Writer) (Reporter, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown reporter %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return f(w), nil
}

// Names lists the registered reporter names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
