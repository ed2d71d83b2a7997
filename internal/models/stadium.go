package models

import (
	"fmt"
)

// WeatherCondition buckets game-day weather for the attendance model.
type WeatherCondition string

const (
	WeatherGood WeatherCondition = "good"
	WeatherFair WeatherCondition = "fair"
	WeatherPoor WeatherCondition = "poor"
)

// Valid reports whether wc is a known weather condition.
func (wc WeatherCondition) Valid() bool {
	switch wc {
	case WeatherGood, WeatherFair, WeatherPoor:
		return true
	}
	return false
}

// StadiumConfig describes a team's home stadium. Owned by the persistence
// layer; the economy engine reads it and never mutates it.
type StadiumConfig struct {
	Capacity           int       `json:"capacity"`
	Level              int       `json:"level"`
	ConcessionsLevel   int       `json:"concessions_level"`
	ParkingLevel       int       `json:"parking_level"`
	MerchandisingLevel int       `json:"merchandising_level"`
	VIPSuitesLevel     int       `json:"vip_suites_level"`
	LightingLevel      int       `json:"lighting_level"`
	ScreensLevel       int       `json:"screens_level"`
	SecurityLevel      int       `json:"security_level"`
	FieldSize          FieldSize `json:"field_size"`
	MaintenanceCost    float64   `json:"maintenance_cost"`
	FanLoyalty         int       `json:"fan_loyalty"` // 0-100
}

// Validate checks the capacity, enum and range invariants. Facility levels
// are non-negative integers; fan loyalty is the 0-100 invariant from the
// data model.
func (s StadiumConfig) Validate() error {
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: capacity %d must be positive", ErrOutOfRange, s.Capacity)
	}
	if !s.FieldSize.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFieldSize, s.FieldSize)
	}
	if s.FanLoyalty < 0 || s.FanLoyalty > 100 {
		return fmt.Errorf("%w: fan loyalty %d not in [0,100]", ErrOutOfRange, s.FanLoyalty)
	}
	for name, level := range map[string]int{
		"level":         s.Level,
		"concessions":   s.ConcessionsLevel,
		"parking":       s.ParkingLevel,
		"merchandising": s.MerchandisingLevel,
		"vip_suites":    s.VIPSuitesLevel,
		"lighting":      s.LightingLevel,
		"screens":       s.ScreensLevel,
		"security":      s.SecurityLevel,
	} {
		if level < 0 {
			return fmt.Errorf("%w: %s level %d must be non-negative", ErrOutOfRange, name, level)
		}
	}
	if s.MaintenanceCost < 0 {
		return fmt.Errorf("%w: maintenance cost %.2f must be non-negative", ErrOutOfRange, s.MaintenanceCost)
	}
	return nil
}

// FacilityQuality is the average facility level scaled to 0-100, used for
// the loyalty facility bonus.
func (s StadiumConfig) FacilityQuality() int {
	total := s.ConcessionsLevel + s.ParkingLevel + s.MerchandisingLevel +
		s.VIPSuitesLevel + s.LightingLevel + s.ScreensLevel + s.SecurityLevel
	// Levels run 0-10 per facility; 7 facilities maxed = 100 quality.
	quality := total * 100 / 70
	if quality > 100 {
		quality = 100
	}
	return quality
}

// TeamForm carries the season-to-date results the loyalty model drifts on.
type TeamForm struct {
	Wins            int `json:"wins"`
	Losses          int `json:"losses"`
	ConsecutiveWins int `json:"consecutive_wins"`
	LeaguePosition  int `json:"league_position"` // 1-based
	TeamsInLeague   int `json:"teams_in_league"`
}

// WinRate returns wins/(wins+losses), defaulting to 0 for a 0-0 record
// instead of dividing by zero.
func (f TeamForm) WinRate() float64 {
	games := f.Wins + f.Losses
	if games == 0 {
		return 0
	}
	return float64(f.Wins) / float64(games)
}

// AttendanceInput is the per-game context for the attendance model.
type AttendanceInput struct {
	OpponentQuality int              `json:"opponent_quality"` // 0-100
	ImportantGame   bool             `json:"important_game"`
	Weather         WeatherCondition `json:"weather"`
}

// Validate checks the range and enum invariants.
func (a AttendanceInput) Validate() error {
	if a.OpponentQuality < 0 || a.OpponentQuality > 100 {
		return fmt.Errorf("%w: opponent quality %d not in [0,100]", ErrOutOfRange, a.OpponentQuality)
	}
	if !a.Weather.Valid() {
		return fmt.Errorf("%w: weather %q", ErrOutOfRange, a.Weather)
	}
	return nil
}

// RevenueBreakdown itemizes one home game's revenue. Every channel is
// non-negative; net revenue may go negative when maintenance exceeds income.
type RevenueBreakdown struct {
	TicketRevenue     float64 `json:"ticket_revenue"`
	ConcessionRevenue float64 `json:"concession_revenue"`
	ParkingRevenue    float64 `json:"parking_revenue"`
	ApparelRevenue    float64 `json:"apparel_revenue"`
	VIPRevenue        float64 `json:"vip_revenue"`
	AtmosphereBonus   float64 `json:"atmosphere_bonus"`
	TotalRevenue      float64 `json:"total_revenue"`
	MaintenanceCost   float64 `json:"maintenance_cost"`
	NetRevenue        float64 `json:"net_revenue"`
}
