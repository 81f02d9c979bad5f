package server

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhscom/calc/internal/calc"
	"github.com/vhscom/calc/internal/session"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore(session.Controller{})

	id, st := s.Create()
	assert.Equal(t, session.State{}, st)
	assert.Equal(t, 1, s.Len())

	st, ok := s.Press(id, "4")
	require.True(t, ok)
	assert.Equal(t, "4", st.Input.Value)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, st, got)

	assert.True(t, s.Delete(id))
	assert.False(t, s.Delete(id))
	_, ok = s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStoreSetEvaluator(t *testing.T) {
	s := NewStore(session.Controller{})
	id, _ := s.Create()

	s.SetEvaluator(calc.Evaluator{StrictParens: true})
	for _, b := range []session.Button{"1", session.ButtonAdd, "2", session.ButtonEquals} {
		s.Press(id, b)
	}
	st, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "3", st.Result)
	assert.True(t, s.ctrl.Evaluator.StrictParens)
}

func TestStorePressUnknown(t *testing.T) {
	s := NewStore(session.Controller{})

	_, ok := s.Press("missing", "1")
	assert.False(t, ok)
}

func TestStoreConcurrentPresses(t *testing.T) {
	s := NewStore(session.Controller{})
	id, _ := s.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Press(id, "1")
		}()
	}
	wg.Wait()

	st, ok := s.Get(id)
	require.True(t, ok)
	assert.Len(t, st.Input.Value, 50)
}
