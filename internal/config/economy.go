package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EconomyConfig is the facility-cost and revenue-rate table for the stadium
// economy engine. It is loaded once at process start and treated as
// read-only for the lifetime of the process; callers must not mix values
// computed against two different generations within one match.
type EconomyConfig struct {
	// Revenue base rates, per 1,000 attendees.
	TicketBaseRate     float64 `mapstructure:"ticket_base_rate"`
	ConcessionBaseRate float64 `mapstructure:"concession_base_rate"`
	ParkingBaseRate    float64 `mapstructure:"parking_base_rate"`
	ApparelBaseRate    float64 `mapstructure:"apparel_base_rate"`

	// Flat VIP revenue per suite level.
	VIPRevenuePerLevel float64 `mapstructure:"vip_revenue_per_level"`

	// Per-level facility bonus applied to each channel as 1 + level*bonus.
	TicketFacilityBonus     float64 `mapstructure:"ticket_facility_bonus"`
	ConcessionFacilityBonus float64 `mapstructure:"concession_facility_bonus"`
	ParkingFacilityBonus    float64 `mapstructure:"parking_facility_bonus"`
	ApparelFacilityBonus    float64 `mapstructure:"apparel_facility_bonus"`

	// Fraction of ticket revenue converted into the atmosphere bonus at
	// full fan loyalty.
	AtmosphereBonusFactor float64 `mapstructure:"atmosphere_bonus_factor"`

	// Days per season cycle; field size and tactical focus may only change
	// on day 1 or the final two days of a cycle.
	SeasonCycleLength int `mapstructure:"season_cycle_length"`
}

// DefaultEconomyConfig returns the documented default rate table. These are
// the canonical values; a config file only overrides them.
func DefaultEconomyConfig() *EconomyConfig {
	return &EconomyConfig{
		TicketBaseRate:          25000,
		ConcessionBaseRate:      8000,
		ParkingBaseRate:         5000,
		ApparelBaseRate:         3000,
		VIPRevenuePerLevel:      5000,
		TicketFacilityBonus:     0.05,
		ConcessionFacilityBonus: 0.15,
		ParkingFacilityBonus:    0.10,
		ApparelFacilityBonus:    0.20,
		AtmosphereBonusFactor:   0.10,
		SeasonCycleLength:       17,
	}
}

// LoadEconomyConfig loads simcore.json from the working directory or
// ./config, falling back to DefaultEconomyConfig when no file exists. Any
// other read or parse error is returned; a malformed config is never
// silently replaced with defaults.
func LoadEconomyConfig() (*EconomyConfig, error) {
	v := viper.New()
	v.SetConfigName("simcore")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	defaults := DefaultEconomyConfig()
	v.SetDefault("ticket_base_rate", defaults.TicketBaseRate)
	v.SetDefault("concession_base_rate", defaults.ConcessionBaseRate)
	v.SetDefault("parking_base_rate", defaults.ParkingBaseRate)
	v.SetDefault("apparel_base_rate", defaults.ApparelBaseRate)
	v.SetDefault("vip_revenue_per_level", defaults.VIPRevenuePerLevel)
	v.SetDefault("ticket_facility_bonus", defaults.TicketFacilityBonus)
	v.SetDefault("concession_facility_bonus", defaults.ConcessionFacilityBonus)
	v.SetDefault("parking_facility_bonus", defaults.ParkingFacilityBonus)
	v.SetDefault("apparel_facility_bonus", defaults.ApparelFacilityBonus)
	v.SetDefault("atmosphere_bonus_factor", defaults.AtmosphereBonusFactor)
	v.SetDefault("season_cycle_length", defaults.SeasonCycleLength)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading economy config: %w", err)
		}
	}

	var cfg EconomyConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode economy config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid economy config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects rate tables the revenue model cannot run on.
func (c *EconomyConfig) Validate() error {
	rates := map[string]float64{
		"ticket_base_rate":      c.TicketBaseRate,
		"concession_base_rate":  c.ConcessionBaseRate,
		"parking_base_rate":     c.ParkingBaseRate,
		"apparel_base_rate":     c.ApparelBaseRate,
		"vip_revenue_per_level": c.VIPRevenuePerLevel,
	}
	for name, rate := range rates {
		if rate < 0 {
			return fmt.Errorf("%s must be non-negative, got %.2f", name, rate)
		}
	}
	bonuses := map[string]float64{
		"ticket_facility_bonus":     c.TicketFacilityBonus,
		"concession_facility_bonus": c.ConcessionFacilityBonus,
		"parking_facility_bonus":    c.ParkingFacilityBonus,
		"apparel_facility_bonus":    c.ApparelFacilityBonus,
		"atmosphere_bonus_factor":   c.AtmosphereBonusFactor,
	}
	for name, bonus := range bonuses {
		if bonus < 0 {
			return fmt.Errorf("%s must be non-negative, got %.2f", name, bonus)
		}
	}
	if c.SeasonCycleLength < 3 {
		return fmt.Errorf("season_cycle_length must be at least 3, got %d", c.SeasonCycleLength)
	}
	return nil
}

// LegacyRevenueRates is the rate table from the superseded stadium module.
//
// Deprecated: kept only so migrated save data can be audited against the
// old formulas. The engine computes exclusively with EconomyConfig; note the
// legacy model priced VIP suites multiplicatively rather than flat per level.
var LegacyRevenueRates = map[string]float64{
	"ticket_base_rate":     20000,
	"concession_base_rate": 10000,
	"parking_base_rate":    4000,
	"apparel_base_rate":    2500,
	"vip_multiplier":       1.25,
}
