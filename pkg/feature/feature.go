// Package feature implements named runtime flags for optional FlatFlow
// behaviors. Flags are process-wide: a value set anywhere in the process is
// observed everywhere. Values are read and written with atomic loads and
// stores; beyond that the package makes no synchronization promise, so
// concurrent writers race with last-write-wins semantics and there is no
// ordering between distinct flags.
package feature

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// EnvPrefix is prepended to a flag's upper-cased name to form the
// environment variable consulted by SetFromEnv.
const EnvPrefix = "FLATFLOW_"

// Flag is a single named boolean toggle.
type Flag struct {
	name        string
	description string
	def         bool
	value       atomic.Bool
}

var (
	mu       sync.Mutex
	registry = map[string]*Flag{}
)

// New registers a flag under the given name with a default value. Names are
// lowercase snake_case by convention, e.g. "use_bpipe". Flags are meant to
// be declared in package var blocks, so an empty or already registered name
// is a programmer error and New panics.
func New(name, description string, def bool) *Flag {
	if name == "" {
		panic("feature: flag name must not be empty")
	}
	f := &Flag{name: name, description: description, def: def}
	f.value.Store(def)

	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("feature: flag %q registered twice", name))
	}
	registry[name] = f
	return f
}

// Name returns the flag's registered name.
func (f *Flag) Name() string { return f.name }

// Description returns the one-line description given at registration.
func (f *Flag) Description() string { return f.description }

// Default returns the value the flag holds before any SetEnabled call.
func (f *Flag) Default() bool { return f.def }

// Enabled reports the flag's current value.
func (f *Flag) Enabled() bool { return f.value.Load() }

// SetEnabled stores the given value. The previous value is discarded.
func (f *Flag) SetEnabled(enabled bool) { f.value.Store(enabled) }

// Reset restores the flag to its default value.
func (f *Flag) Reset() { f.value.Store(f.def) }

// EnvVar returns the environment variable consulted by SetFromEnv,
// e.g. FLATFLOW_USE_BPIPE for a flag named use_bpipe.
func (f *Flag) EnvVar() string { return EnvPrefix + strings.ToUpper(f.name) }

// Lookup returns the flag registered under the given name, if any.
func Lookup(name string) (*Flag, bool) {
	mu.Lock()
	defer mu.Unlock()
	f, ok := registry[name]
	return f, ok
}

// All returns every registered flag, sorted by name.
func All() []*Flag {
	mu.Lock()
	defer mu.Unlock()
	flags := make([]*Flag, 0, len(registry))
	for _, f := range registry {
		flags = append(flags, f)
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i].name < flags[j].name })
	return flags
}

// ResetAll restores every registered flag to its default. Test suites use
// this to isolate flag state between cases.
func ResetAll() {
	for _, f := range All() {
		f.Reset()
	}
}

// SetFromEnv applies environment overrides to every registered flag. Unset
// variables and values strconv.ParseBool does not accept leave the flag
// unchanged.
func SetFromEnv() {
	for _, f := range All() {
		raw, ok := os.LookupEnv(f.EnvVar())
		if !ok {
			continue
		}
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			continue
		}
		f.SetEnabled(enabled)
	}
}
