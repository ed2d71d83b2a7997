package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldSize(t *testing.T) {
	fs, err := ParseFieldSize("large")
	assert.NoError(t, err)
	assert.Equal(t, FieldSizeLarge, fs)

	_, err = ParseFieldSize("enormous")
	assert.ErrorIs(t, err, ErrInvalidFieldSize)
}

func TestParseTacticalFocus(t *testing.T) {
	tf, err := ParseTacticalFocus("defensive_wall")
	assert.NoError(t, err)
	assert.Equal(t, TacticalFocusDefensiveWall, tf)

	_, err = ParseTacticalFocus("yolo")
	assert.ErrorIs(t, err, ErrInvalidTacticalFocus)
}

func TestTeamTacticalInfoValidate(t *testing.T) {
	valid := TeamTacticalInfo{
		FieldSize:        FieldSizeStandard,
		TacticalFocus:    TacticalFocusBalanced,
		Camaraderie:      50,
		HeadCoachTactics: 50,
	}
	assert.NoError(t, valid.Validate())

	outOfRange := valid
	outOfRange.Camaraderie = 101
	assert.ErrorIs(t, outOfRange.Validate(), ErrOutOfRange)
}

func TestStadiumConfigValidate(t *testing.T) {
	valid := StadiumConfig{
		Capacity:   10000,
		FieldSize:  FieldSizeStandard,
		FanLoyalty: 50,
	}
	assert.NoError(t, valid.Validate())

	noCapacity := valid
	noCapacity.Capacity = 0
	assert.ErrorIs(t, noCapacity.Validate(), ErrOutOfRange)

	badField := valid
	badField.FieldSize = FieldSize("oval")
	assert.ErrorIs(t, badField.Validate(), ErrInvalidFieldSize)

	negativeLevel := valid
	negativeLevel.ParkingLevel = -1
	assert.ErrorIs(t, negativeLevel.Validate(), ErrOutOfRange)
}

func TestFacilityQuality(t *testing.T) {
	s := StadiumConfig{Capacity: 1000, FieldSize: FieldSizeStandard, FanLoyalty: 0}
	assert.Equal(t, 0, s.FacilityQuality())

	s.ConcessionsLevel = 10
	s.ParkingLevel = 10
	s.MerchandisingLevel = 10
	s.VIPSuitesLevel = 10
	s.LightingLevel = 10
	s.ScreensLevel = 10
	s.SecurityLevel = 10
	assert.Equal(t, 100, s.FacilityQuality())
}

func TestTeamFormWinRate(t *testing.T) {
	assert.Equal(t, 0.0, TeamForm{}.WinRate(), "0-0 record must not divide by zero")
	assert.Equal(t, 0.8, TeamForm{Wins: 8, Losses: 2}.WinRate())
}

func TestNeutralBundleFullyPopulated(t *testing.T) {
	b := NeutralBundle()
	for _, v := range []float64{
		b.PassRangeModifier, b.StaminaDepletionModifier, b.BlockerRangeModifier,
		b.PowerBonusModifier, b.LongPassAccuracyModifier, b.RunnerRouteDepthModifier,
		b.PasserRiskToleranceModifier, b.BlockerAggressionModifier,
		b.DefensiveLinePositionModifier, b.RiskToleranceModifier,
		b.ConservativePlayModifier, b.DesperationModifier, b.ClutchPerformanceModifier,
	} {
		assert.Equal(t, 1.0, v)
	}
}
