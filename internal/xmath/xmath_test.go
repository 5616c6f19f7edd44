package xmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorMultiple(t *testing.T) {
	assert.Equal(t, 120.0, FloorMultiple(125, 60))
	assert.Equal(t, 0.0, FloorMultiple(59, 60))
}

func TestFloorMultipleInvariant(t *testing.T) {
	for _, tm := range []float64{0, 1, 59, 60, 61, 12345} {
		interval := 60.0
		floor := FloorMultiple(tm, interval)
		assert.LessOrEqual(t, floor, tm)
		assert.Less(t, tm, floor+interval)
	}
}

func TestCeilMultiple(t *testing.T) {
	assert.Equal(t, 180.0, CeilMultiple(125, 60))
	assert.Equal(t, 60.0, CeilMultiple(60, 60))
}

func TestMeanStdDeviationEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(StdDeviation(nil)))
}

func TestStdDeviation(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.0, StdDeviation(xs), 1e-9)
}

func TestRoundDown(t *testing.T) {
	assert.Equal(t, 1.23, RoundDown(1.239, 2))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 1.24, RoundHalfUp(1.235, 2))
	assert.Equal(t, -1.24, RoundHalfUp(-1.235, 2))
}
