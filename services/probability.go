package services

import (
	"luckywheel/helpers"
	"luckywheel/models"

	"gorm.io/gorm"
)

// MinProbability is the floor applied to every distributed weight, in
// line with the 4-decimal precision of the probability column.
const MinProbability = 0.0001

// InversePriceWeights turns prize prices into normalized selection
// weights: cheap prizes come up often, expensive ones rarely. Prices
// below 1 count as 1.
func InversePriceWeights(prices []int) []float64 {
	inv := make([]float64, len(prices))
	total := 0.0
	for i, p := range prices {
		if p < 1 {
			p = 1
		}
		inv[i] = 1.0 / float64(p)
		total += inv[i]
	}

	weights := make([]float64, len(prices))
	for i := range inv {
		w := helpers.FormatFloat(inv[i]/total, 4)
		if w < MinProbability {
			w = MinProbability
		}
		weights[i] = w
	}
	return weights
}

// RenormalizeWeights rescales weights toward a sum of 1. After the
// MinProbability floor the sum may still drift off 1 slightly; the
// selector divides by the live total, so the drift only rescales and
// never biases a draw.
func RenormalizeWeights(weights []float64) []float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 || total == 1 {
		return weights
	}

	out := make([]float64, len(weights))
	for i, w := range weights {
		n := helpers.FormatFloat(w/total, 4)
		if n < MinProbability {
			n = MinProbability
		}
		out[i] = n
	}
	return out
}

// AutoDistributeProbability rewrites the probability of every eligible
// prize from its price, inverse-weighted and normalized.
func AutoDistributeProbability(db *gorm.DB) error {
	prizes, err := models.AvailablePrizes(db)
	if err != nil {
		return err
	}
	if len(prizes) == 0 {
		return NewInvalid("no eligible prizes")
	}

	prices := make([]int, len(prizes))
	for i := range prizes {
		prices[i] = prizes[i].Price
	}
	weights := RenormalizeWeights(InversePriceWeights(prices))

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range prizes {
			if err := tx.Model(&prizes[i]).
				UpdateColumn("probability", weights[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
