package listener_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/xform/internal/adapters/listener"
	"go.trai.ch/xform/internal/core/domain"
)

type recordingListener struct {
	before, after []string
}

func (r *recordingListener) BeforeTransformerInvocation(name string, _ domain.TransformationSubject) {
	r.before = append(r.before, name)
}

func (r *recordingListener) AfterTransformerInvocation(name string, _ domain.TransformationSubject) {
	r.after = append(r.after, name)
}

func TestBusFansOutToAllRegisteredListeners(t *testing.T) {
	bus := listener.New()
	a := &recordingListener{}
	b := &recordingListener{}
	bus.Register(a)
	bus.Register(b)

	subject := domain.TransformationSubject{InitialComponentIdentifier: domain.ExternalIdentifier{Coordinates: "g:a:1"}}
	bus.BeforeTransformerInvocation("Minify", subject)
	bus.AfterTransformerInvocation("Minify", subject)

	require.Equal(t, []string{"Minify"}, a.before)
	require.Equal(t, []string{"Minify"}, b.before)
	require.Equal(t, []string{"Minify"}, a.after)
	require.Equal(t, []string{"Minify"}, b.after)
}

func TestBusUnregisterStopsDelivery(t *testing.T) {
	bus := listener.New()
	a := &recordingListener{}
	unregister := bus.Register(a)
	unregister()

	subject := domain.TransformationSubject{InitialComponentIdentifier: domain.ExternalIdentifier{Coordinates: "g:a:1"}}
	bus.BeforeTransformerInvocation("Minify", subject)

	require.Empty(t, a.before)
}
