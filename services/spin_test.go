package services

import (
	"math/rand"
	"testing"

	"luckywheel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrizes(probs ...float64) []models.Prize {
	prizes := make([]models.Prize, len(probs))
	for i, p := range probs {
		prizes[i].ID = uint(i + 1)
		prizes[i].Probability = p
		prizes[i].SortOrder = i
	}
	return prizes
}

func TestSelectPrizeIndexDistribution(t *testing.T) {
	svc := NewSpinService(nil, rand.New(rand.NewSource(42)))
	prizes := testPrizes(0.5, 0.3, 0.2)

	const draws = 100000
	counts := make([]int, len(prizes))
	for i := 0; i < draws; i++ {
		counts[svc.selectPrizeIndex(prizes)]++
	}

	assert.InDelta(t, 0.5, float64(counts[0])/draws, 0.01)
	assert.InDelta(t, 0.3, float64(counts[1])/draws, 0.01)
	assert.InDelta(t, 0.2, float64(counts[2])/draws, 0.01)
}

func TestSelectPrizeIndexNeverPicksZeroWeight(t *testing.T) {
	svc := NewSpinService(nil, rand.New(rand.NewSource(7)))
	prizes := testPrizes(0, 0.5, 0.3, 0.2, 0)

	for i := 0; i < 20000; i++ {
		idx := svc.selectPrizeIndex(prizes)
		require.NotEqual(t, 0, idx)
		require.NotEqual(t, 4, idx)
	}
}

func TestSelectPrizeIndexUnnormalizedWeights(t *testing.T) {
	// Weights need not sum to 1; ratios still hold.
	svc := NewSpinService(nil, rand.New(rand.NewSource(99)))
	prizes := testPrizes(5, 3, 2)

	const draws = 100000
	counts := make([]int, len(prizes))
	for i := 0; i < draws; i++ {
		counts[svc.selectPrizeIndex(prizes)]++
	}

	assert.InDelta(t, 0.5, float64(counts[0])/draws, 0.01)
	assert.InDelta(t, 0.3, float64(counts[1])/draws, 0.01)
	assert.InDelta(t, 0.2, float64(counts[2])/draws, 0.01)
}

func TestTotalRotationKnownValues(t *testing.T) {
	// 4 segments, first prize, wheel at rest: pointer target is 315°.
	assert.InDelta(t, 2835, TotalRotation(4, 0, 0, 0), 1e-9)

	// Already sitting on the target: exactly the minimum turns.
	assert.InDelta(t, 2520, TotalRotation(4, 0, 315, 0), 1e-9)

	// One degree short of the target adds one degree of travel.
	assert.InDelta(t, 2521, TotalRotation(4, 0, 314, 0), 1e-9)

	// Just past the target forces a near-full extra revolution.
	assert.InDelta(t, 2520+359, TotalRotation(4, 0, 316, 0), 1e-9)
}

func TestTotalRotationBounds(t *testing.T) {
	for count := 1; count <= 12; count++ {
		for index := 0; index < count; index++ {
			for _, rotation := range []float64{0, 45.5, 180, 359.99, 360, 725, -30} {
				got := TotalRotation(count, index, rotation, 0)
				assert.GreaterOrEqual(t, got, float64(MinRotations)*360)
				assert.Less(t, got, float64(MinRotations+1)*360)
			}
		}
	}
}

func TestTotalRotationNormalizesClientRotation(t *testing.T) {
	// Out-of-range client values are wrapped before the delta is taken.
	assert.InDelta(t,
		TotalRotation(4, 1, 90, 0),
		TotalRotation(4, 1, 90+720, 0), 1e-9)
	assert.InDelta(t,
		TotalRotation(4, 1, 330, 0),
		TotalRotation(4, 1, -30, 0), 1e-9)
}

func TestTargetAngleOffsetStaysInSegment(t *testing.T) {
	svc := NewSpinService(nil, rand.New(rand.NewSource(1)))

	// offset is at most 30% of a segment, so the result can never drift
	// past the neighboring wedge center.
	base := TotalRotation(6, 2, 0, 0)
	segment := 360.0 / 6
	for i := 0; i < 5000; i++ {
		got := svc.targetAngle(6, 2, 0)
		assert.GreaterOrEqual(t, got, float64(MinRotations)*360)
		assert.InDelta(t, base, got, 0.3*segment+1e-9)
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(0), 1e-9)
	assert.InDelta(t, 0, NormalizeAngle(360), 1e-9)
	assert.InDelta(t, 5, NormalizeAngle(725), 1e-9)
	assert.InDelta(t, 330, NormalizeAngle(-30), 1e-9)
	assert.InDelta(t, 359.5, NormalizeAngle(-0.5), 1e-9)
}
