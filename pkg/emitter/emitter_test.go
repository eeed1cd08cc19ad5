package emitter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cloudkit/pkg/emitter"
)

func TestEmitter(t *testing.T) {
	t.Run("delivers payload to all handlers", func(t *testing.T) {
		em := emitter.New()

		var got []any
		em.On("ev", func(p any) { got = append(got, p) })
		em.On("ev", func(p any) { got = append(got, p) })

		em.Emit("ev", "payload")
		assert.Equal(t, []any{"payload", "payload"}, got)
	})

	t.Run("once fires a single time", func(t *testing.T) {
		em := emitter.New()

		calls := 0
		em.Once("ev", func(any) { calls++ })

		em.Emit("ev", nil)
		em.Emit("ev", nil)
		assert.Equal(t, 1, calls)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		em := emitter.New()

		calls := 0
		off := em.On("ev", func(any) { calls++ })

		em.Emit("ev", nil)
		off()
		off() // repeat is a no-op
		em.Emit("ev", nil)
		assert.Equal(t, 1, calls)
	})

	t.Run("emitted counts every publish", func(t *testing.T) {
		em := emitter.New()
		assert.Zero(t, em.Emitted("ev"))

		em.Emit("ev", nil) // no handlers registered still counts
		em.Emit("ev", nil)
		assert.Equal(t, 2, em.Emitted("ev"))
	})

	t.Run("events are isolated", func(t *testing.T) {
		em := emitter.New()

		calls := 0
		em.On("a", func(any) { calls++ })
		em.Emit("b", nil)
		assert.Zero(t, calls)
	})

	t.Run("handler can re-register during emit", func(t *testing.T) {
		em := emitter.New()

		calls := 0
		em.Once("ev", func(any) {
			calls++
			em.Once("ev", func(any) { calls++ })
		})

		em.Emit("ev", nil)
		em.Emit("ev", nil)
		assert.Equal(t, 2, calls)
	})

	t.Run("concurrent emit and subscribe", func(t *testing.T) {
		em := emitter.New()

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				em.On("ev", func(any) {})
			}()
			go func() {
				defer wg.Done()
				em.Emit("ev", nil)
			}()
		}
		wg.Wait()
		assert.Equal(t, 10, em.Emitted("ev"))
	})
}
