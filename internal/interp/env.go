package interp

// Environment is one frame of name bindings. A frame created for a
// function call links to the function's captured scope; lookups and
// assignments fall through to it when the name is not local.
type Environment struct {
	captured *Environment
	values   map[string]Value
}

// NewEnvironment creates a frame whose misses fall back to captured,
// which may be nil.
func NewEnvironment(captured *Environment) *Environment {
	return &Environment{
		captured: captured,
		values:   make(map[string]Value),
	}
}

// Define binds name in this frame, shadowing any captured binding.
func (e *Environment) Define(name string, v Value) {
	e.values[name] = v
}

// Get returns the live value bound to name. Arrays are not copied.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.captured {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign rebinds name in the nearest frame that holds it. It reports
// false when the name is unbound.
func (e *Environment) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.captured {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return true
		}
	}
	return false
}

// ForEach visits every visible binding, captured frames first, so
// that a later call for the same name is the one that shadows.
func (e *Environment) ForEach(fn func(name string, v Value)) {
	if e == nil {
		return
	}
	e.captured.ForEach(fn)
	for name, v := range e.values {
		fn(name, v)
	}
}

// Snapshot flattens the visible bindings into a new root frame. Arrays
// are deep-copied; function values keep their own captured scopes.
func (e *Environment) Snapshot() *Environment {
	snap := NewEnvironment(nil)
	e.ForEach(func(name string, v Value) {
		snap.Define(name, Copy(v))
	})
	return snap
}

// Len returns the number of bindings local to this frame.
func (e *Environment) Len() int {
	return len(e.values)
}
