// Package listener implements a fan-out ports.TransformListener: a bus that
// notifies every registered listener around each non-cached transformer
// invocation.
package listener

import (
	"sync"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
)

var _ ports.TransformListener = (*Bus)(nil)

// Bus fans out BeforeTransformerInvocation/AfterTransformerInvocation to
// every listener registered with it. Registration is safe to call
// concurrently with delivery.
type Bus struct {
	mu        sync.RWMutex
	listeners []ports.TransformListener
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{}
}

// Register adds a listener to the bus. It returns an unregister function.
func (b *Bus) Register(l ports.TransformListener) (unregister func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, registered := range b.listeners {
			if registered == l {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// BeforeTransformerInvocation implements ports.TransformListener.
func (b *Bus) BeforeTransformerInvocation(transformerName string, subject domain.TransformationSubject) {
	for _, l := range b.snapshot() {
		l.BeforeTransformerInvocation(transformerName, subject)
	}
}

// AfterTransformerInvocation implements ports.TransformListener.
func (b *Bus) AfterTransformerInvocation(transformerName string, subject domain.TransformationSubject) {
	for _, l := range b.snapshot() {
		l.AfterTransformerInvocation(transformerName, subject)
	}
}

func (b *Bus) snapshot() []ports.TransformListener {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]ports.TransformListener, len(b.listeners))
	copy(out, b.listeners)
	return out
}
