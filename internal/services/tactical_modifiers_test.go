package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/simcore/internal/models"
)

func normalGameState() models.GameStateSnapshot {
	return models.GameStateSnapshot{
		OwnScore:       1,
		OpponentScore:  1,
		ElapsedSeconds: 600,
		MaxSeconds:     2400,
		Half:           1,
	}
}

func TestCoachEffectiveness(t *testing.T) {
	assert.Equal(t, 0.5, CoachEffectiveness(0))
	assert.Equal(t, 1.0, CoachEffectiveness(50))
	assert.Equal(t, 1.5, CoachEffectiveness(100))
}

// TestComposeEliteCoachScaling pins the documented example: AllOutAttack's
// raw passer risk tolerance of 1.6 composed with a 100-rated coach is 1.9.
func TestComposeEliteCoachScaling(t *testing.T) {
	engine := NewTacticalModifierEngine(nil)
	team := models.TeamTacticalInfo{
		FieldSize:        models.FieldSizeStandard,
		TacticalFocus:    models.TacticalFocusAllOutAttack,
		Camaraderie:      50,
		HeadCoachTactics: 100,
	}

	bundle, err := engine.Compose(team, normalGameState(), true)
	require.NoError(t, err)
	assert.InDelta(t, 1.9, bundle.PasserRiskToleranceModifier, 1e-9)
}

func TestComposeWeakCoachRealizesHalfTheDeviation(t *testing.T) {
	engine := NewTacticalModifierEngine(nil)
	team := models.TeamTacticalInfo{
		FieldSize:        models.FieldSizeStandard,
		TacticalFocus:    models.TacticalFocusAllOutAttack,
		Camaraderie:      50,
		HeadCoachTactics: 0,
	}

	bundle, err := engine.Compose(team, normalGameState(), true)
	require.NoError(t, err)
	// 1 + (1.6-1)*0.5
	assert.InDelta(t, 1.3, bundle.PasserRiskToleranceModifier, 1e-9)
}

func TestComposeFieldSizeOnlyAppliesToHomeTeam(t *testing.T) {
	engine := NewTacticalModifierEngine(nil)
	team := models.TeamTacticalInfo{
		FieldSize:        models.FieldSizeLarge,
		TacticalFocus:    models.TacticalFocusBalanced,
		Camaraderie:      50,
		HeadCoachTactics: 50,
	}

	home, err := engine.Compose(team, normalGameState(), true)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, home.PassRangeModifier, 1e-9)
	assert.InDelta(t, 1.2, home.StaminaDepletionModifier, 1e-9)

	// The home team's field is not a field effect for the visitors: the
	// away side always plays off the standard baseline.
	away, err := engine.Compose(team, normalGameState(), false)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, away.PassRangeModifier, 1e-9)
	assert.InDelta(t, 1.0, away.StaminaDepletionModifier, 1e-9)
	assert.InDelta(t, 1.0, away.BlockerRangeModifier, 1e-9)
	assert.InDelta(t, 1.0, away.PowerBonusModifier, 1e-9)
	assert.InDelta(t, 1.0, away.LongPassAccuracyModifier, 1e-9)
}

// TestComposeDesperationOverridesFocus verifies a defensive team trailing by
// a blowout abandons its configured strategy for the fixed desperation
// multipliers.
func TestComposeDesperationOverridesFocus(t *testing.T) {
	engine := NewTacticalModifierEngine(nil)
	team := models.TeamTacticalInfo{
		FieldSize:        models.FieldSizeStandard,
		TacticalFocus:    models.TacticalFocusDefensiveWall,
		Camaraderie:      50,
		HeadCoachTactics: 80,
	}
	losingBig := models.GameStateSnapshot{
		OwnScore:       1,
		OpponentScore:  6,
		ElapsedSeconds: 1500,
		MaxSeconds:     2400,
		Half:           2,
	}

	bundle, err := engine.Compose(team, losingBig, true)
	require.NoError(t, err)
	assert.InDelta(t, 1.6, bundle.RunnerRouteDepthModifier, 1e-9)
	assert.InDelta(t, 2.0, bundle.PasserRiskToleranceModifier, 1e-9)
	assert.InDelta(t, 1.4, bundle.BlockerAggressionModifier, 1e-9)
	assert.InDelta(t, 1.5, bundle.DesperationModifier, 1e-9)
}

func TestComposeWinningBigAddsConservativeChannels(t *testing.T) {
	engine := NewTacticalModifierEngine(nil)
	team := models.TeamTacticalInfo{
		FieldSize:        models.FieldSizeStandard,
		TacticalFocus:    models.TacticalFocusAllOutAttack,
		Camaraderie:      50,
		HeadCoachTactics: 100,
	}
	winningBig := models.GameStateSnapshot{
		OwnScore:       6,
		OpponentScore:  1,
		ElapsedSeconds: 1500,
		MaxSeconds:     2400,
		Half:           2,
	}

	bundle, err := engine.Compose(team, winningBig, true)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, bundle.ConservativePlayModifier, 1e-9)
	assert.InDelta(t, 0.6, bundle.RiskToleranceModifier, 1e-9)
	// Focus channels are kept, not overridden.
	assert.InDelta(t, 1.9, bundle.PasserRiskToleranceModifier, 1e-9)
}

func TestComposeLateCloseClutchFromCamaraderie(t *testing.T) {
	engine := NewTacticalModifierEngine(nil)
	lateClose := models.GameStateSnapshot{
		OwnScore:       3,
		OpponentScore:  3,
		ElapsedSeconds: 2340,
		MaxSeconds:     2400,
		Half:           2,
	}

	tests := []struct {
		name        string
		camaraderie int
		expected    float64
	}{
		{name: "High camaraderie is a bonus", camaraderie: 80, expected: 1.09},
		{name: "Neutral camaraderie is neutral", camaraderie: 50, expected: 1.0},
		{name: "Low camaraderie is a penalty", camaraderie: 20, expected: 0.91},
		{name: "Floor of the camaraderie range", camaraderie: 0, expected: 0.85},
		{name: "Ceiling of the camaraderie range", camaraderie: 100, expected: 1.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := models.TeamTacticalInfo{
				FieldSize:        models.FieldSizeStandard,
				TacticalFocus:    models.TacticalFocusBalanced,
				Camaraderie:      tt.camaraderie,
				HeadCoachTactics: 50,
			}
			bundle, err := engine.Compose(team, lateClose, true)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, bundle.ClutchPerformanceModifier, 1e-9)
		})
	}
}

func TestComposeBundleAlwaysFullyPopulated(t *testing.T) {
	engine := NewTacticalModifierEngine(nil)
	team := models.TeamTacticalInfo{
		FieldSize:        models.FieldSizeStandard,
		TacticalFocus:    models.TacticalFocusBalanced,
		Camaraderie:      50,
		HeadCoachTactics: 50,
	}

	bundle, err := engine.Compose(team, normalGameState(), false)
	require.NoError(t, err)

	neutral := models.NeutralBundle()
	assert.Equal(t, neutral, bundle, "balanced away team in a normal game should be fully neutral")
}

func TestComposeRejectsInvalidConfig(t *testing.T) {
	engine := NewTacticalModifierEngine(nil)

	tests := []struct {
		name string
		team models.TeamTacticalInfo
	}{
		{
			name: "Unknown field size",
			team: models.TeamTacticalInfo{
				FieldSize:        models.FieldSize("gigantic"),
				TacticalFocus:    models.TacticalFocusBalanced,
				Camaraderie:      50,
				HeadCoachTactics: 50,
			},
		},
		{
			name: "Unknown tactical focus",
			team: models.TeamTacticalInfo{
				FieldSize:        models.FieldSizeStandard,
				TacticalFocus:    models.TacticalFocus("chaos"),
				Camaraderie:      50,
				HeadCoachTactics: 50,
			},
		},
		{
			name: "Camaraderie above range",
			team: models.TeamTacticalInfo{
				FieldSize:        models.FieldSizeStandard,
				TacticalFocus:    models.TacticalFocusBalanced,
				Camaraderie:      150,
				HeadCoachTactics: 50,
			},
		},
		{
			name: "Negative coach rating",
			team: models.TeamTacticalInfo{
				FieldSize:        models.FieldSizeStandard,
				TacticalFocus:    models.TacticalFocusBalanced,
				Camaraderie:      50,
				HeadCoachTactics: -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Compose(tt.team, normalGameState(), true)
			assert.Error(t, err)
		})
	}
}
