package automaton

import (
	"testing"

	"github.com/aretw0/dpda/pkg/domain"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_PopMismatchIsAssertionFailure(t *testing.T) {
	a, err := New(1, "a")
	require.NoError(t, err)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		a.apply(domain.Transition{Source: 0, Target: 0, Consumed: 'a', Pop: 'Z', Push: "."}, false)
	}()

	require.NotNil(t, recovered)
	perr, ok := recovered.(error)
	require.True(t, ok)
	assert.True(t, errors.HasAssertionFailure(perr))
	assert.False(t, errors.Is(perr, domain.ErrInvalidSymbol))
	assert.Equal(t, "0:$", a.CurrentStatus(), "run state untouched by the fault")
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.Equal(t, "$", s.String())
	assert.Equal(t, domain.BottomMarker, s.Peek())

	s.Replace(false, "AB")
	assert.Equal(t, "AB$", s.String())
	assert.Equal(t, 'A', s.Peek())

	s.Replace(true, ".")
	assert.Equal(t, "B$", s.String())

	s.Replace(true, "")
	s.Replace(true, "")
	assert.Equal(t, "$", s.String(), "bottom marker restored")
	assert.Equal(t, 1, s.Len())

	s.Replace(true, "XY")
	assert.Equal(t, "XY$", s.String(), "bottom marker kept beneath the push")
	s.Replace(true, "")
	s.Replace(true, "")
	s.Replace(true, "Z$")
	assert.Equal(t, "Z$", s.String())
	s.Replace(true, "")
	s.Replace(true, "$Q")
	assert.Equal(t, "$Q$", s.String())
	s.Reset()

	c := s.Clone()
	c.Replace(false, "Q")
	assert.Equal(t, "$", s.String())

	s.Replace(false, "XYZ")
	s.Reset()
	assert.Equal(t, "$", s.String())

	assert.Equal(t, "XY$", stackFromString("XY$").String())
	assert.Equal(t, "$", stackFromString("").String())
}

func TestStateTable_Counters(t *testing.T) {
	table := newStateTable()
	table.insert(domain.Transition{Target: 1, Consumed: 'a', Pop: 'X', Push: "."})
	table.insert(domain.Transition{Target: 1, Consumed: '.', Pop: 'Y', Push: "."})
	table.insert(domain.Transition{Target: 0, Consumed: 'b', Pop: '.', Push: "."})

	assert.Equal(t, 1, table.concreteInputsByPop['X'])
	assert.Equal(t, 0, table.concreteInputsByPop['Y'])
	assert.Equal(t, 1, table.concreteInputsByPop['.'])
	assert.Equal(t, 1, table.concretePopsByInput['a'])
	assert.Equal(t, 1, table.concretePopsByInput['.'])
	assert.Equal(t, 3, table.size())
	assert.Len(t, table.view(0), 2)
}
