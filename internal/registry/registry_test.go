package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndResolve(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("echo", &Factory{Name: "echo", New: func() any { return struct{}{} }})

	factory, err := r.Resolve("echo")
	require.NoError(t, err)
	assert.Equal(t, "echo", factory.Name)
	assert.NotNil(t, factory.New())
}

func TestResolveUnknown(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("echo", &Factory{Name: "echo", New: func() any { return struct{}{} }})

	_, err := r.Resolve("missing")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown service identifier 'missing'")
	assert.ErrorContains(t, err, "echo")
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	r := New()
	factory := &Factory{Name: "echo", New: func() any { return struct{}{} }}
	r.Register("echo", factory)
	assert.Panics(t, func() { r.Register("echo", factory) })
}

func TestRegisterWithoutConstructorPanics(t *testing.T) {
	t.Parallel()

	r := New()
	assert.Panics(t, func() { r.Register("broken", &Factory{Name: "broken"}) })
	assert.Panics(t, func() { r.Register("nil", nil) })
}

func TestIdentifiersSorted(t *testing.T) {
	t.Parallel()

	r := New()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		r.Register(id, &Factory{Name: id, New: func() any { return struct{}{} }})
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Identifiers())
}
