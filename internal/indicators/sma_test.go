package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA_Maturity(t *testing.T) {
	sma := NewSMA(2)
	assert.Equal(t, 1, sma.Maturity())
}

// Reproduces spec.md's SingleMA SMA(2) scenario: closes [1,2,3,4,3,2].
func TestSMA_Values(t *testing.T) {
	sma := NewSMA(2)
	closes := []float64{1, 2, 3, 4, 3, 2}
	var values []float64
	for i, c := range closes {
		sma.Update(c)
		if Matured(sma, i) {
			values = append(values, sma.Value())
		}
	}
	// tick1: (1+2)/2=1.5, tick2: (2+3)/2=2.5, tick3: (3+4)/2=3.5,
	// tick4: (4+3)/2=3.5, tick5: (3+2)/2=2.5
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 3.5, 2.5}, values)
}

func TestEMA_SeededFromFirstPrice(t *testing.T) {
	ema := NewEMA(3)
	ema.Update(10)
	assert.Equal(t, 10.0, ema.Value())
	ema.Update(20)
	assert.InDelta(t, 15.0, ema.Value(), 1e-9)
}

func TestDEMA_Maturity(t *testing.T) {
	d := NewDEMA(5)
	assert.Equal(t, 8, d.Maturity())
}
