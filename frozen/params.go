package frozen

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Params is the process-wide, read-only parameter set built from the first
// data handed to a Registry.
type Params struct {
	data Value
}

// Value returns the wrapped parameter data.
func (p *Params) Value() Value { return p.data }

// Field forwards to the wrapped data's Field.
func (p *Params) Field(name string) (Value, bool) { return p.data.Field(name) }

// Get forwards to the wrapped data's Get.
func (p *Params) Get(path ...string) (Value, error) { return p.data.Get(path...) }

// Lookup forwards to the wrapped data's Lookup, including its delegated
// container operations.
func (p *Params) Lookup(name string) (any, bool) { return p.data.Lookup(name) }

// String formats the wrapped data.
func (p *Params) String() string { return p.data.String() }

// Registry hands out a single *Params.
//
// IMPORTANT: only the FIRST call to Instance initializes the Params. Every
// later call, whatever its argument, returns that same instance and silently
// discards the new data. Callers that need fresh parameters must use a new
// Registry.
//
// The zero Registry is ready to use and safe for concurrent use.
type Registry struct {
	// Logger, when set, records discarded arguments at debug level.
	Logger *slog.Logger

	once   sync.Once
	params atomic.Pointer[Params]
}

// Instance returns the registry's Params, initializing it from data on the
// first call only.
func (r *Registry) Instance(data any) *Params {
	first := false
	r.once.Do(func() {
		r.params.Store(&Params{data: Wrap(data)})
		first = true
	})
	if !first && data != nil && r.Logger != nil {
		r.Logger.Debug("params already initialized; arguments discarded")
	}

	return r.params.Load()
}

// Initialized reports whether Instance has been called.
func (r *Registry) Initialized() bool {
	return r.params.Load() != nil
}

var (
	defaultMu       sync.Mutex
	defaultRegistry = &Registry{}
)

// Instance returns the package-wide Params. Only the first call's data is
// used; see Registry for the discard rule.
func Instance(data any) *Params {
	defaultMu.Lock()
	r := defaultRegistry
	defaultMu.Unlock()

	return r.Instance(data)
}

// ResetForTesting drops the package-wide Params so the next Instance call
// initializes again. Not for production use.
func ResetForTesting() {
	defaultMu.Lock()
	defaultRegistry = &Registry{}
	defaultMu.Unlock()
}
