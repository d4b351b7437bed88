package services

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"luckywheel/helpers"
	"luckywheel/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// SessionDays is the fixed session lifetime granted per redemption.
	SessionDays = 7

	// MinRotations is the minimum number of full forward wheel turns per
	// spin, part of the client animation contract.
	MinRotations = 7

	// TokenLength covers both session and spin claim tokens.
	TokenLength = 64

	// HistoryLimit caps the claimed-results page.
	HistoryLimit = 20
)

// SpinService holds the transactional spin state machine. The random
// source is injected so tests can replay draws deterministically.
type SpinService struct {
	db  *gorm.DB
	rng *rand.Rand
}

func NewSpinService(db *gorm.DB, rng *rand.Rand) *SpinService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SpinService{db: db, rng: rng}
}

type RedeemOutcome struct {
	SessionToken string    `json:"session_token"`
	SpinBalance  int       `json:"spin_balance"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RedeemCode converts a valid code into a fresh session. The used_count
// increment and the session insert happen under a FOR UPDATE lock on the
// code row, so a code never grants more sessions than max_uses.
func (s *SpinService) RedeemCode(raw, ipAddress, userAgent string) (*RedeemOutcome, error) {
	normalized := models.NormalizeCode(raw)

	var code models.RedeemCode
	if err := s.db.Where("code = ?", normalized).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("code not found")
		}
		return nil, err
	}
	if !code.IsValid() {
		return nil, NewInvalid(code.InvalidReason())
	}

	var out *RedeemOutcome
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var locked models.RedeemCode
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, code.ID).Error; err != nil {
			return err
		}
		// Re-check under the lock: a concurrent redemption may have
		// consumed the last use since the unlocked read.
		if !locked.IsValid() {
			return NewInvalid(locked.InvalidReason())
		}

		if err := tx.Model(&locked).
			UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
			return err
		}

		codeID := locked.ID
		session := models.Session{
			SessionToken: helpers.GenerateToken(TokenLength),
			CodeID:       &codeID,
			SpinBalance:  locked.SpinsAmount,
			TotalSpins:   0,
			IPAddress:    ipAddress,
			UserAgent:    userAgent,
			ExpiresAt:    time.Now().AddDate(0, 0, SessionDays),
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		out = &RedeemOutcome{
			SessionToken: session.SessionToken,
			SpinBalance:  session.SpinBalance,
			ExpiresAt:    session.ExpiresAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type SpinOutcome struct {
	SpinToken      string  `json:"spin_token"`
	TargetAngle    float64 `json:"target_angle"`
	RemainingSpins int     `json:"remaining_spins"`
}

// StartSpin draws a prize, computes the wheel rotation and persists the
// pending result, all under one transaction with the session row locked.
// The response never carries the prize: the client learns it only at
// claim time, after the animation.
func (s *SpinService) StartSpin(session *models.Session, currentRotation float64) (*SpinOutcome, error) {
	if !session.IsValid() {
		return nil, NewUnauthorized("session expired")
	}
	if !session.HasSpins() {
		return nil, NewInvalid("out of spins")
	}

	prizes, err := models.AvailablePrizes(s.db)
	if err != nil {
		return nil, err
	}
	if len(prizes) == 0 {
		return nil, NewServerError("no prizes configured")
	}

	var out *SpinOutcome
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var locked models.Session
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, session.ID).Error; err != nil {
			return err
		}
		// Concurrent spins on the same session serialize on this lock;
		// the loser sees the decremented balance here.
		if !locked.HasSpins() {
			return NewInvalid("out of spins")
		}

		idx := s.selectPrizeIndex(prizes)
		prize := prizes[idx]

		angle := s.targetAngle(len(prizes), idx, currentRotation)
		spinToken := helpers.GenerateToken(TokenLength)

		now := time.Now()
		if err := tx.Model(&locked).Updates(map[string]any{
			"spin_balance": gorm.Expr("spin_balance - 1"),
			"total_spins":  gorm.Expr("total_spins + 1"),
			"last_spin_at": now,
		}).Error; err != nil {
			return err
		}

		if err := prize.DecrementStock(tx); err != nil {
			return err
		}

		result := models.SpinResult{
			SessionID:   locked.ID,
			PrizeID:     prize.ID,
			SpinToken:   spinToken,
			TargetAngle: decimal.NewFromFloat(angle).Round(2),
			Status:      models.SpinStatusPending,
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		out = &SpinOutcome{
			SpinToken:      spinToken,
			TargetAngle:    angle,
			RemainingSpins: locked.SpinBalance - 1,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrOutOfStock) {
			return nil, NewInvalid("prize just ran out, please spin again")
		}
		return nil, err
	}

	session.SpinBalance = out.RemainingSpins
	return out, nil
}

// ClaimResult reveals the prize for a pending result. Lookup is scoped to
// the caller's session so a foreign token reads as not-found rather than
// leaking cross-session existence.
func (s *SpinService) ClaimResult(spinToken string, session *models.Session) (map[string]any, error) {
	var result models.SpinResult
	err := s.db.Preload("Prize").
		Where("spin_token = ? AND session_id = ?", spinToken, session.ID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFound("result not found")
	}
	if err != nil {
		return nil, err
	}
	if !result.CanClaim() {
		return nil, NewInvalid("result already claimed or expired")
	}

	if err := result.MarkClaimed(s.db); err != nil {
		if errors.Is(err, models.ErrNotClaimable) {
			return nil, NewInvalid("result already claimed or expired")
		}
		return nil, err
	}

	return map[string]any{"prize": result.Prize.PublicView()}, nil
}

type HistoryEntry struct {
	Prize     map[string]any `json:"prize"`
	ClaimedAt time.Time      `json:"claimed_at"`
}

// History lists the session's claimed results, newest first.
func (s *SpinService) History(session *models.Session) ([]HistoryEntry, error) {
	var results []models.SpinResult
	err := s.db.Preload("Prize").
		Where("session_id = ? AND status = ?", session.ID, models.SpinStatusClaimed).
		Order("created_at desc").
		Limit(HistoryLimit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(results))
	for i := range results {
		if results[i].ClaimedAt == nil {
			continue
		}
		entries = append(entries, HistoryEntry{
			Prize:     results[i].Prize.PublicView(),
			ClaimedAt: *results[i].ClaimedAt,
		})
	}
	return entries, nil
}

// selectPrizeIndex performs cumulative-weight roulette selection over the
// ordered prize list. Weights need not sum to 1; the draw is over
// [0, total). If floating-point drift exhausts the walk, the last prize
// wins rather than failing the spin.
func (s *SpinService) selectPrizeIndex(prizes []models.Prize) int {
	total := 0.0
	for i := range prizes {
		total += prizes[i].Probability
	}

	r := s.rng.Float64() * total
	cumulative := 0.0
	for i := range prizes {
		cumulative += prizes[i].Probability
		if r < cumulative {
			return i
		}
	}
	return len(prizes) - 1
}

// targetAngle adds the random intra-segment offset, uniform over
// [-30%, +30%] of a segment in whole-percent steps, then delegates to the
// deterministic rotation formula.
func (s *SpinService) targetAngle(count, index int, currentRotation float64) float64 {
	segment := 360.0 / float64(count)
	offset := float64(s.rng.Intn(61)-30) / 100.0 * segment
	return TotalRotation(count, index, currentRotation, offset)
}

// TotalRotation computes the total forward rotation, in degrees, that
// lands the pointer inside segment `index` of a `count`-segment wheel,
// starting from the client's reported rotation. The result is always at
// least MinRotations full turns.
func TotalRotation(count, index int, currentRotation, offset float64) float64 {
	segment := 360.0 / float64(count)

	absolute := 360.0 - (float64(index)*segment + segment/2 + offset)
	absolute = NormalizeAngle(absolute)

	delta := absolute - NormalizeAngle(currentRotation)
	if delta < 0 {
		delta += 360
	}

	return float64(MinRotations)*360 + delta
}

// NormalizeAngle maps any angle into [0, 360). Client-reported rotations
// go through this before the delta computation, so out-of-range input
// cannot stretch the spin.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
