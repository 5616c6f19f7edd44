package signal

import (
	"testing"

	"github.com/quantbt/enginecore/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	assert.Equal(t, types.None, Combine(types.Long, types.None))
	assert.Equal(t, types.Long, Combine(types.Long, types.Long))
	assert.Equal(t, types.Liquidate, Combine(types.Long, types.Short))
}

func TestPersistence_Identity(t *testing.T) {
	p := NewPersistence(0, false)
	assert.Equal(t, types.Long, p.Update(types.Long))
	assert.Equal(t, types.Short, p.Update(types.Short))
}

// spec.md scenario: Persistence(2,false) on [Long,Long,Long,Short,Short,Short,Short]
// emits [None,None,Long,None,None,Short,Short].
func TestPersistence_DebounceScenario(t *testing.T) {
	p := NewPersistence(2, false)
	in := []types.Advice{types.Long, types.Long, types.Long, types.Short, types.Short, types.Short, types.Short}
	want := []types.Advice{types.None, types.None, types.Long, types.None, types.None, types.Short, types.Short}
	got := make([]types.Advice, len(in))
	for i, v := range in {
		got[i] = p.Update(v)
	}
	assert.Equal(t, want, got)
}

func TestMidTrend_CurrentIsIdentity(t *testing.T) {
	m := NewMidTrend(Current)
	assert.Equal(t, types.Long, m.Update(types.Long))
	assert.Equal(t, types.Short, m.Update(types.Short))
}

func TestMidTrend_IgnoreSuppressesFirst(t *testing.T) {
	m := NewMidTrend(Ignore)
	assert.Equal(t, types.None, m.Update(types.Long))
	assert.Equal(t, types.None, m.Update(types.Long))
	assert.Equal(t, types.Short, m.Update(types.Short))
	assert.Equal(t, types.Long, m.Update(types.Long))
}

func TestChanged(t *testing.T) {
	c := NewChanged(true)
	assert.Equal(t, types.Long, c.Update(types.Long))
	assert.Equal(t, types.None, c.Update(types.Long))
	assert.Equal(t, types.Short, c.Update(types.Short))
}
