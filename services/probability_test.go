package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInversePriceWeights(t *testing.T) {
	weights := InversePriceWeights([]int{100, 200, 400})

	// Cheapest prize gets the largest weight.
	assert.InDelta(t, 0.5714, weights[0], 0.0001)
	assert.InDelta(t, 0.2857, weights[1], 0.0001)
	assert.InDelta(t, 0.1429, weights[2], 0.0001)
	assert.Greater(t, weights[0], weights[1])
	assert.Greater(t, weights[1], weights[2])
}

func TestInversePriceWeightsZeroPriceCountsAsOne(t *testing.T) {
	weights := InversePriceWeights([]int{0, 1})
	assert.InDelta(t, weights[0], weights[1], 1e-9)
}

func TestInversePriceWeightsFloor(t *testing.T) {
	weights := InversePriceWeights([]int{1, 1000000})
	assert.GreaterOrEqual(t, weights[1], MinProbability)
}

func TestRenormalizeWeights(t *testing.T) {
	out := RenormalizeWeights([]float64{0.5, 0.5, 0.5})
	sum := 0.0
	for _, w := range out {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 0.001)
	assert.InDelta(t, 0.3333, out[0], 0.0001)
}

func TestRenormalizeWeightsKeepsExactSum(t *testing.T) {
	in := []float64{0.6, 0.4}
	out := RenormalizeWeights(in)
	assert.Equal(t, in, out)
}

func TestRenormalizeWeightsAcceptsResidualDrift(t *testing.T) {
	// The 0.0001 floor can keep the sum slightly off 1 after rounding.
	// That drift is accepted; the selector divides by the live total.
	out := RenormalizeWeights([]float64{0.9999, 0.0001, 0.0001})
	sum := 0.0
	for _, w := range out {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 0.001)
	for _, w := range out {
		assert.GreaterOrEqual(t, w, MinProbability)
	}
}
