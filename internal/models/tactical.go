package models

import (
	"errors"
	"fmt"
)

// Configuration errors. Out-of-range or unknown inputs are caller bugs and
// fail fast at the engine boundary; they are never silently clamped.
var (
	ErrInvalidFieldSize     = errors.New("invalid field size")
	ErrInvalidTacticalFocus = errors.New("invalid tactical focus")
	ErrInvalidGameSituation = errors.New("invalid game situation")
	ErrOutOfRange           = errors.New("value out of range")
)

// FieldSize is a team's home field configuration. It may only change during
// the off-season window (day 1 or the final two days of a cycle).
type FieldSize string

const (
	FieldSizeStandard FieldSize = "standard"
	FieldSizeLarge    FieldSize = "large"
	FieldSizeSmall    FieldSize = "small"
)

// Valid reports whether fs is a known field size.
func (fs FieldSize) Valid() bool {
	switch fs {
	case FieldSizeStandard, FieldSizeLarge, FieldSizeSmall:
		return true
	}
	return false
}

// ParseFieldSize converts a raw string into a FieldSize.
func ParseFieldSize(s string) (FieldSize, error) {
	fs := FieldSize(s)
	if !fs.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFieldSize, s)
	}
	return fs, nil
}

// TacticalFocus is a team's strategic stance, set alongside FieldSize and
// subject to the same change window.
type TacticalFocus string

const (
	TacticalFocusBalanced      TacticalFocus = "balanced"
	TacticalFocusAllOutAttack  TacticalFocus = "all_out_attack"
	TacticalFocusDefensiveWall TacticalFocus = "defensive_wall"
)

// Valid reports whether tf is a known tactical focus.
func (tf TacticalFocus) Valid() bool {
	switch tf {
	case TacticalFocusBalanced, TacticalFocusAllOutAttack, TacticalFocusDefensiveWall:
		return true
	}
	return false
}

// ParseTacticalFocus converts a raw string into a TacticalFocus.
func ParseTacticalFocus(s string) (TacticalFocus, error) {
	tf := TacticalFocus(s)
	if !tf.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTacticalFocus, s)
	}
	return tf, nil
}

// GameSituation classifies the live match context. It is derived from score
// and clock every tick and never persisted.
type GameSituation string

const (
	SituationNormal     GameSituation = "normal"
	SituationWinningBig GameSituation = "winning_big"
	SituationLosingBig  GameSituation = "losing_big"
	SituationLateClose  GameSituation = "late_close"
)

// Valid reports whether gs is a known game situation.
func (gs GameSituation) Valid() bool {
	switch gs {
	case SituationNormal, SituationWinningBig, SituationLosingBig, SituationLateClose:
		return true
	}
	return false
}

// TeamTacticalInfo is the per-team configuration the tactical engine
// composes modifiers from. It is owned by the persistence layer and passed
// in by value; the core never mutates it.
type TeamTacticalInfo struct {
	FieldSize        FieldSize     `json:"field_size"`
	TacticalFocus    TacticalFocus `json:"tactical_focus"`
	Camaraderie      int           `json:"camaraderie"`        // 0-100
	HeadCoachTactics int           `json:"head_coach_tactics"` // 0-100
}

// Validate checks enum values and 0-100 ranges. This is the fail-fast
// boundary for configuration errors.
func (t TeamTacticalInfo) Validate() error {
	if !t.FieldSize.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFieldSize, t.FieldSize)
	}
	if !t.TacticalFocus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTacticalFocus, t.TacticalFocus)
	}
	if t.Camaraderie < 0 || t.Camaraderie > 100 {
		return fmt.Errorf("%w: camaraderie %d not in [0,100]", ErrOutOfRange, t.Camaraderie)
	}
	if t.HeadCoachTactics < 0 || t.HeadCoachTactics > 100 {
		return fmt.Errorf("%w: head coach tactics %d not in [0,100]", ErrOutOfRange, t.HeadCoachTactics)
	}
	return nil
}

// GameStateSnapshot is the live match state fed into situation
// classification, from the perspective of one team.
type GameStateSnapshot struct {
	OwnScore       int `json:"own_score"`
	OpponentScore  int `json:"opponent_score"`
	ElapsedSeconds int `json:"elapsed_seconds"`
	MaxSeconds     int `json:"max_seconds"`
	Half           int `json:"half"`
}

// TacticalModifierBundle is the fully composed set of multipliers the match
// engine applies each tick. Every channel is always populated; channels the
// composition does not touch stay at the neutral 1.0.
type TacticalModifierBundle struct {
	PassRangeModifier             float64 `json:"pass_range_modifier"`
	StaminaDepletionModifier      float64 `json:"stamina_depletion_modifier"`
	BlockerRangeModifier          float64 `json:"blocker_range_modifier"`
	PowerBonusModifier            float64 `json:"power_bonus_modifier"`
	LongPassAccuracyModifier      float64 `json:"long_pass_accuracy_modifier"`
	RunnerRouteDepthModifier      float64 `json:"runner_route_depth_modifier"`
	PasserRiskToleranceModifier   float64 `json:"passer_risk_tolerance_modifier"`
	BlockerAggressionModifier     float64 `json:"blocker_aggression_modifier"`
	DefensiveLinePositionModifier float64 `json:"defensive_line_position_modifier"`
	RiskToleranceModifier         float64 `json:"risk_tolerance_modifier"`
	ConservativePlayModifier      float64 `json:"conservative_play_modifier"`
	DesperationModifier           float64 `json:"desperation_modifier"`
	ClutchPerformanceModifier     float64 `json:"clutch_performance_modifier"`
}

// NeutralBundle returns a bundle with every channel at 1.0.
func NeutralBundle() TacticalModifierBundle {
	return TacticalModifierBundle{
		PassRangeModifier:             1.0,
		StaminaDepletionModifier:      1.0,
		BlockerRangeModifier:          1.0,
		PowerBonusModifier:            1.0,
		LongPassAccuracyModifier:      1.0,
		RunnerRouteDepthModifier:      1.0,
		PasserRiskToleranceModifier:   1.0,
		BlockerAggressionModifier:     1.0,
		DefensiveLinePositionModifier: 1.0,
		RiskToleranceModifier:         1.0,
		ConservativePlayModifier:      1.0,
		DesperationModifier:           1.0,
		ClutchPerformanceModifier:     1.0,
	}
}
