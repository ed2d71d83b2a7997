package simulator

import (
	"fmt"
	"time"
)

// seedDateLayout is ISO 8601 date-only. Seeds must be byte-identical across
// hosts, so dates are always formatted in UTC with this fixed layout.
const seedDateLayout = "2006-01-02"

// MatchSeed returns the canonical seed for a scheduled match. The same team
// pair on the same date in the same season always yields the same seed.
func MatchSeed(homeTeamID, awayTeamID int, date time.Time, season int) string {
	return fmt.Sprintf("match_%d_%d_%s_%d", homeTeamID, awayTeamID, date.UTC().Format(seedDateLayout), season)
}

// TournamentSeed returns the canonical seed for a tournament fixture,
// identified by tournament, round and fixture index within the round.
func TournamentSeed(tournamentID, round, index int) string {
	return fmt.Sprintf("tournament_%d_%d_%d", tournamentID, round, index)
}

// ProgressionSeed returns the canonical seed for a player progression event.
// Purpose distinguishes multiple progression checks for one player on one
// day (e.g. "training", "aging").
func ProgressionSeed(playerID int, date time.Time, purpose string) string {
	return fmt.Sprintf("progression_%d_%s_%s", playerID, date.UTC().Format(seedDateLayout), purpose)
}
