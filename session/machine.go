package session

// Machine is a finite state machine whose transitions are requested with
// Set and applied later, at a point the owner chooses, by Apply. Applying a
// transition runs the exit callbacks of the old state and then the enter
// callbacks of the new one, each list in registration order.
type Machine[S comparable] struct {
	state    S
	pending  *S
	started  bool
	onEnter  map[S][]func()
	onExit   map[S][]func()
	onChange []func(from, to S)
}

func NewMachine[S comparable](initial S) *Machine[S] {
	return &Machine[S]{
		state:   initial,
		onEnter: make(map[S][]func()),
		onExit:  make(map[S][]func()),
	}
}

func (m *Machine[S]) State() S {
	return m.state
}

// Is reports whether the current state is s.
func (m *Machine[S]) Is(s S) bool {
	return m.state == s
}

// Set queues a transition to next. A later Set before Apply wins.
func (m *Machine[S]) Set(next S) {
	m.pending = &next
}

// Pending returns the queued state, if any.
func (m *Machine[S]) Pending() (S, bool) {
	if m.pending == nil {
		var zero S
		return zero, false
	}
	return *m.pending, true
}

func (m *Machine[S]) OnEnter(s S, fn func()) {
	if fn != nil {
		m.onEnter[s] = append(m.onEnter[s], fn)
	}
}

func (m *Machine[S]) OnExit(s S, fn func()) {
	if fn != nil {
		m.onExit[s] = append(m.onExit[s], fn)
	}
}

// OnChange registers a callback run after every applied transition.
func (m *Machine[S]) OnChange(fn func(from, to S)) {
	if fn != nil {
		m.onChange = append(m.onChange, fn)
	}
}

// Start runs the enter callbacks of the initial state. It is a no-op after
// the first call.
func (m *Machine[S]) Start() {
	if m.started {
		return
	}
	m.started = true
	for _, fn := range m.onEnter[m.state] {
		fn()
	}
}

// Apply performs the queued transition and reports whether one happened. A
// transition to the current state is dropped.
func (m *Machine[S]) Apply() bool {
	if m.pending == nil {
		return false
	}
	next := *m.pending
	m.pending = nil
	if next == m.state {
		return false
	}
	prev := m.state
	for _, fn := range m.onExit[prev] {
		fn()
	}
	m.state = next
	for _, fn := range m.onEnter[next] {
		fn()
	}
	for _, fn := range m.onChange {
		fn(prev, next)
	}
	return true
}
