package indicators

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMAByTag_RoundTrip(t *testing.T) {
	for _, c := range MAChoices {
		got, ok := MAByTag(c.Tag)
		assert.True(t, ok)
		assert.Equal(t, c.Name, got.Name)
	}
}

func TestMAByTag_Unknown(t *testing.T) {
	_, ok := MAByTag(0xDEADBEEF)
	assert.False(t, ok)
}

func TestGenMA_Deterministic(t *testing.T) {
	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))
	assert.Equal(t, GenMA(rng1).Name, GenMA(rng2).Name)
}
