package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gridironlabs/simcore/internal/models"
)

// fieldSizeEffect holds the home-field channels a non-standard field moves
// off neutral.
type fieldSizeEffect struct {
	passRange        float64
	staminaDepletion float64
	blockerRange     float64
	powerBonus       float64
	longPassAccuracy float64
}

// Field-size effects apply to the home team only; the away team always
// plays off the standard baseline.
var fieldSizeEffects = map[models.FieldSize]fieldSizeEffect{
	models.FieldSizeStandard: {
		passRange:        1.0,
		staminaDepletion: 1.0,
		blockerRange:     1.0,
		powerBonus:       1.0,
		longPassAccuracy: 1.0,
	},
	models.FieldSizeLarge: {
		passRange:        1.2,
		staminaDepletion: 1.2,
		blockerRange:     0.9,
		powerBonus:       0.95,
		longPassAccuracy: 0.9,
	},
	models.FieldSizeSmall: {
		passRange:        0.85,
		staminaDepletion: 0.9,
		blockerRange:     1.15,
		powerBonus:       1.2,
		longPassAccuracy: 1.1,
	},
}

// tacticalFocusEffect holds the four raw focus channels before coach
// scaling.
type tacticalFocusEffect struct {
	runnerRouteDepth      float64
	passerRiskTolerance   float64
	blockerAggression     float64
	defensiveLinePosition float64
}

var tacticalFocusEffects = map[models.TacticalFocus]tacticalFocusEffect{
	models.TacticalFocusBalanced: {
		runnerRouteDepth:      1.0,
		passerRiskTolerance:   1.0,
		blockerAggression:     1.0,
		defensiveLinePosition: 1.0,
	},
	models.TacticalFocusAllOutAttack: {
		runnerRouteDepth:      1.4,
		passerRiskTolerance:   1.6,
		blockerAggression:     1.3,
		defensiveLinePosition: 1.2,
	},
	models.TacticalFocusDefensiveWall: {
		runnerRouteDepth:      0.7,
		passerRiskTolerance:   0.6,
		blockerAggression:     0.8,
		defensiveLinePosition: 0.7,
	},
}

// Desperation overrides a trailing blowout team's configured focus.
const (
	desperationRouteDepth        = 1.6
	desperationRiskTolerance     = 2.0
	desperationBlockerAggression = 1.4
	desperationModifier          = 1.5

	conservativePlayModifier  = 1.5
	conservativeRiskTolerance = 0.6
)

// TacticalModifierEngine composes field-size, tactical-focus and situational
// effects into one modifier bundle per team per tick.
type TacticalModifierEngine struct {
	logger *logrus.Logger
}

// NewTacticalModifierEngine creates a new engine. The logger may be nil.
func NewTacticalModifierEngine(logger *logrus.Logger) *TacticalModifierEngine {
	return &TacticalModifierEngine{logger: logger}
}

// CoachEffectiveness returns how much of a tactical deviation from neutral a
// coach realizes: 0.5 at 0 rating, 1.5 at 100.
func CoachEffectiveness(headCoachTactics int) float64 {
	return 0.5 + float64(headCoachTactics)/100.0
}

// scaleByCoach attenuates a raw focus multiplier toward or past neutral:
// scaled = 1 + (raw-1)*effectiveness.
func scaleByCoach(raw, effectiveness float64) float64 {
	return 1.0 + (raw-1.0)*effectiveness
}

// Compose builds the full modifier bundle for one team. The team config is
// validated here; this is the boundary where configuration errors fail
// fast, and the composition below assumes valid enums.
func (e *TacticalModifierEngine) Compose(team models.TeamTacticalInfo, game models.GameStateSnapshot, isHomeTeam bool) (models.TacticalModifierBundle, error) {
	if err := team.Validate(); err != nil {
		return models.TacticalModifierBundle{}, fmt.Errorf("invalid team tactical config: %w", err)
	}

	bundle := models.NeutralBundle()

	// Field-size channel: the home team's field shapes play for the home
	// side only; visitors always use the standard baseline.
	fieldSize := models.FieldSizeStandard
	if isHomeTeam {
		fieldSize = team.FieldSize
	}
	field := fieldSizeEffects[fieldSize]
	bundle.PassRangeModifier = field.passRange
	bundle.StaminaDepletionModifier = field.staminaDepletion
	bundle.BlockerRangeModifier = field.blockerRange
	bundle.PowerBonusModifier = field.powerBonus
	bundle.LongPassAccuracyModifier = field.longPassAccuracy

	// Tactical focus, attenuated by coach skill per channel.
	effectiveness := CoachEffectiveness(team.HeadCoachTactics)
	focus := tacticalFocusEffects[team.TacticalFocus]
	bundle.RunnerRouteDepthModifier = scaleByCoach(focus.runnerRouteDepth, effectiveness)
	bundle.PasserRiskToleranceModifier = scaleByCoach(focus.passerRiskTolerance, effectiveness)
	bundle.BlockerAggressionModifier = scaleByCoach(focus.blockerAggression, effectiveness)
	bundle.DefensiveLinePositionModifier = scaleByCoach(focus.defensiveLinePosition, effectiveness)

	situation := ClassifySituation(game.OwnScore, game.OpponentScore, game.ElapsedSeconds, game.MaxSeconds, game.Half)
	switch situation {
	case models.SituationLosingBig:
		// Desperation overrides strategy: fixed values regardless of the
		// configured focus.
		bundle.RunnerRouteDepthModifier = desperationRouteDepth
		bundle.PasserRiskToleranceModifier = desperationRiskTolerance
		bundle.BlockerAggressionModifier = desperationBlockerAggression
		bundle.DesperationModifier = desperationModifier
	case models.SituationWinningBig:
		// Added on top; focus channels are kept.
		bundle.ConservativePlayModifier = conservativePlayModifier
		bundle.RiskToleranceModifier = conservativeRiskTolerance
	case models.SituationLateClose:
		bundle.ClutchPerformanceModifier = 1.0 + (float64(team.Camaraderie)-50.0)/100.0*0.3
	case models.SituationNormal:
		// All situational channels stay neutral.
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"is_home_team":   isHomeTeam,
			"field_size":     fieldSize,
			"tactical_focus": team.TacticalFocus,
			"situation":      situation,
		}).Debug("Composed tactical modifiers")
	}

	return bundle, nil
}
