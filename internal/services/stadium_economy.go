package services

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/gridironlabs/simcore/internal/config"
	"github.com/gridironlabs/simcore/internal/models"
)

// Fan loyalty drift steps.
const (
	loyaltyHotWinRate     = 0.7
	loyaltyGoodWinRate    = 0.5
	loyaltyColdWinRate    = 0.3
	loyaltyHotDelta       = 8
	loyaltyGoodDelta      = 3
	loyaltyColdDelta      = -5
	loyaltyLongStreak     = 5
	loyaltyShortStreak    = 3
	loyaltyLongStreakBon  = 5
	loyaltyShortStreakBon = 2
	loyaltySeasonDelta    = 3
)

// Home advantage composition.
const (
	homeAdvantageBase   = 5
	homeAdvantageMin    = 5
	homeAdvantageMax    = 25
	intimidationDivisor = 5000
	intimidationCap     = 8
	fieldSizeBonusSmall = 3
	fieldSizeBonusLarge = 5
)

// Attendance model.
const (
	attendanceBaseRate       = 0.35
	attendanceLoyaltyWeight  = 0.40
	attendanceOpponentWeight = 0.15
	attendanceImportantBonus = 0.10
	attendanceFairPenalty    = 0.05
	attendancePoorPenalty    = 0.10
	attendanceMinRate        = 0.15
	attendanceMaxRate        = 0.95
)

// StadiumEconomyEngine computes fan loyalty drift, home-field advantage,
// attendance and itemized game revenue. All operations are pure functions
// over explicit inputs; the engine only carries the rate table and a logger.
type StadiumEconomyEngine struct {
	cfg    *config.EconomyConfig
	logger *logrus.Logger
}

// NewStadiumEconomyEngine creates an engine over the given rate table. A nil
// cfg uses the documented defaults; the logger may be nil.
func NewStadiumEconomyEngine(cfg *config.EconomyConfig, logger *logrus.Logger) *StadiumEconomyEngine {
	if cfg == nil {
		cfg = config.DefaultEconomyConfig()
	}
	return &StadiumEconomyEngine{cfg: cfg, logger: logger}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// UpdateFanLoyalty drifts the stadium's fan loyalty by season-to-date form:
// a win-rate step, a streak bonus, a facility-quality bonus and a league
// position delta, with the result clamped to [0,100].
func (e *StadiumEconomyEngine) UpdateFanLoyalty(stadium models.StadiumConfig, form models.TeamForm) (int, error) {
	if err := stadium.Validate(); err != nil {
		return 0, fmt.Errorf("invalid stadium config: %w", err)
	}

	performanceDelta := 0
	winRate := form.WinRate()
	switch {
	case winRate > loyaltyHotWinRate:
		performanceDelta = loyaltyHotDelta
	case winRate > loyaltyGoodWinRate:
		performanceDelta = loyaltyGoodDelta
	case winRate < loyaltyColdWinRate:
		performanceDelta = loyaltyColdDelta
	}

	streakBonus := 0
	switch {
	case form.ConsecutiveWins >= loyaltyLongStreak:
		streakBonus = loyaltyLongStreakBon
	case form.ConsecutiveWins >= loyaltyShortStreak:
		streakBonus = loyaltyShortStreakBon
	}

	facilityBonus := stadium.FacilityQuality() / 20

	seasonDelta := 0
	if form.TeamsInLeague > 0 && form.LeaguePosition > 0 {
		if form.LeaguePosition*4 <= form.TeamsInLeague {
			seasonDelta = loyaltySeasonDelta
		} else if form.LeaguePosition*4 > form.TeamsInLeague*3 {
			seasonDelta = -loyaltySeasonDelta
		}
	}

	newLoyalty := clampInt(stadium.FanLoyalty+performanceDelta+streakBonus+facilityBonus+seasonDelta, 0, 100)

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"previous_loyalty":  stadium.FanLoyalty,
			"performance_delta": performanceDelta,
			"streak_bonus":      streakBonus,
			"facility_bonus":    facilityBonus,
			"season_delta":      seasonDelta,
			"new_loyalty":       newLoyalty,
		}).Debug("Updated fan loyalty")
	}

	return newLoyalty, nil
}

// CalculateHomeAdvantage scores the home crowd and facilities as a scalar
// performance bonus, clamped to [5,25].
func (e *StadiumEconomyEngine) CalculateHomeAdvantage(stadium models.StadiumConfig) (int, error) {
	if err := stadium.Validate(); err != nil {
		return 0, fmt.Errorf("invalid stadium config: %w", err)
	}

	fieldBonus := 0
	switch stadium.FieldSize {
	case models.FieldSizeSmall:
		fieldBonus = fieldSizeBonusSmall
	case models.FieldSizeLarge:
		fieldBonus = fieldSizeBonusLarge
	case models.FieldSizeStandard:
		// No bonus off the baseline field.
	}

	intimidation := stadium.Capacity / intimidationDivisor
	if intimidation > intimidationCap {
		intimidation = intimidationCap
	}

	advantage := homeAdvantageBase +
		stadium.FanLoyalty/10 +
		fieldBonus +
		stadium.LightingLevel +
		stadium.Level/2 +
		intimidation

	return clampInt(advantage, homeAdvantageMin, homeAdvantageMax), nil
}

// CalculateAttendance projects the crowd for one home game. The returned
// attendance never exceeds stadium capacity, even if the computed rate is
// forced to its upper clamp.
func (e *StadiumEconomyEngine) CalculateAttendance(stadium models.StadiumConfig, input models.AttendanceInput) (attendance int, rate float64, err error) {
	if err := stadium.Validate(); err != nil {
		return 0, 0, fmt.Errorf("invalid stadium config: %w", err)
	}
	if err := input.Validate(); err != nil {
		return 0, 0, fmt.Errorf("invalid attendance input: %w", err)
	}

	rate = attendanceBaseRate +
		float64(stadium.FanLoyalty)/100.0*attendanceLoyaltyWeight +
		float64(input.OpponentQuality)/100.0*attendanceOpponentWeight
	if input.ImportantGame {
		rate += attendanceImportantBonus
	}
	switch input.Weather {
	case models.WeatherFair:
		rate -= attendanceFairPenalty
	case models.WeatherPoor:
		rate -= attendancePoorPenalty
	case models.WeatherGood:
		// No penalty.
	}
	rate = clampFloat(rate, attendanceMinRate, attendanceMaxRate)

	attendance = int(rate * float64(stadium.Capacity))
	if attendance > stadium.Capacity {
		attendance = stadium.Capacity
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"capacity":        stadium.Capacity,
			"attendance_rate": rate,
			"attendance":      attendance,
		}).Debug("Calculated attendance")
	}

	return attendance, rate, nil
}

// CalculateGameRevenue itemizes one game's revenue from attendance and the
// stadium's facility levels. Away games earn nothing and still pay
// maintenance, so they short-circuit to a negative net.
func (e *StadiumEconomyEngine) CalculateGameRevenue(stadium models.StadiumConfig, attendance int, isHomeGame bool) (models.RevenueBreakdown, error) {
	if err := stadium.Validate(); err != nil {
		return models.RevenueBreakdown{}, fmt.Errorf("invalid stadium config: %w", err)
	}

	if !isHomeGame {
		return models.RevenueBreakdown{
			MaintenanceCost: stadium.MaintenanceCost,
			NetRevenue:      -stadium.MaintenanceCost,
		}, nil
	}

	if attendance < 0 {
		return models.RevenueBreakdown{}, fmt.Errorf("%w: attendance %d must be non-negative", models.ErrOutOfRange, attendance)
	}
	// Attendance can never exceed capacity, even if an upstream caller
	// passes an inflated figure.
	if attendance > stadium.Capacity {
		attendance = stadium.Capacity
	}

	perThousand := float64(attendance) / 1000.0

	ticket := perThousand * e.cfg.TicketBaseRate * (1.0 + float64(stadium.ScreensLevel)*e.cfg.TicketFacilityBonus)
	concession := perThousand * e.cfg.ConcessionBaseRate * (1.0 + float64(stadium.ConcessionsLevel)*e.cfg.ConcessionFacilityBonus)
	parking := perThousand * e.cfg.ParkingBaseRate * (1.0 + float64(stadium.ParkingLevel)*e.cfg.ParkingFacilityBonus)
	apparel := perThousand * e.cfg.ApparelBaseRate * (1.0 + float64(stadium.MerchandisingLevel)*e.cfg.ApparelFacilityBonus)
	vip := float64(stadium.VIPSuitesLevel) * e.cfg.VIPRevenuePerLevel
	atmosphere := math.Floor(float64(stadium.FanLoyalty) / 100.0 * ticket * e.cfg.AtmosphereBonusFactor)

	total := ticket + concession + parking + apparel + vip + atmosphere

	breakdown := models.RevenueBreakdown{
		TicketRevenue:     ticket,
		ConcessionRevenue: concession,
		ParkingRevenue:    parking,
		ApparelRevenue:    apparel,
		VIPRevenue:        vip,
		AtmosphereBonus:   atmosphere,
		TotalRevenue:      total,
		MaintenanceCost:   stadium.MaintenanceCost,
		NetRevenue:        total - stadium.MaintenanceCost,
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"attendance":    attendance,
			"total_revenue": total,
			"net_revenue":   breakdown.NetRevenue,
		}).Debug("Calculated game revenue")
	}

	return breakdown, nil
}

// CanChangeFieldSize reports whether field size and tactical focus may be
// reconfigured on the given day: day 1, or the final two days of the season
// cycle.
func (e *StadiumEconomyEngine) CanChangeFieldSize(currentDay int) bool {
	if currentDay == 1 {
		return true
	}
	return currentDay >= e.cfg.SeasonCycleLength-1 && currentDay <= e.cfg.SeasonCycleLength
}
