package emitter

import "sync"

// Handler receives the payload published with an event.
type Handler func(payload any)

type registration struct {
	handler Handler
	once    bool
}

// Emitter is a synchronous, in-process event bus. Handlers run on the
// goroutine that calls Emit, in registration order. All methods are safe
// for concurrent use.
type Emitter struct {
	mu       sync.Mutex
	handlers map[string][]*registration
	emitted  map[string]int
}

// New creates an empty emitter.
func New() *Emitter {
	return &Emitter{
		handlers: make(map[string][]*registration),
		emitted:  make(map[string]int),
	}
}

// On registers a handler for the event. The returned function removes the
// registration; calling it more than once is a no-op.
func (e *Emitter) On(event string, h Handler) func() {
	return e.register(event, h, false)
}

// Once registers a handler that runs at most one time.
func (e *Emitter) Once(event string, h Handler) func() {
	return e.register(event, h, true)
}

// Emit publishes the payload to every handler registered for the event.
func (e *Emitter) Emit(event string, payload any) {
	e.mu.Lock()
	e.emitted[event]++
	regs := e.handlers[event]

	// Snapshot the handlers and drop one-shot registrations before
	// releasing the lock so a handler can safely re-register.
	toRun := make([]Handler, 0, len(regs))
	remaining := regs[:0]
	for _, r := range regs {
		toRun = append(toRun, r.handler)
		if !r.once {
			remaining = append(remaining, r)
		}
	}
	e.handlers[event] = remaining
	e.mu.Unlock()

	for _, h := range toRun {
		h(payload)
	}
}

// Emitted reports how many times the event has been published.
func (e *Emitter) Emitted(event string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.emitted[event]
}

func (e *Emitter) register(event string, h Handler, once bool) func() {
	if h == nil {
		return func() {}
	}

	reg := &registration{handler: h, once: once}

	e.mu.Lock()
	e.handlers[event] = append(e.handlers[event], reg)
	e.mu.Unlock()

	var unsubOnce sync.Once
	return func() {
		unsubOnce.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			regs := e.handlers[event]
			for i, r := range regs {
				if r == reg {
					e.handlers[event] = append(regs[:i], regs[i+1:]...)
					break
				}
			}
		})
	}
}
