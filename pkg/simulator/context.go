package simulator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SimulationEvent is one recorded RNG draw. Events are append-only and never
// mutated after creation; the log is the audit trail used to verify that a
// replayed simulation matches the original.
type SimulationEvent struct {
	EventName    string    `json:"event_name"`
	SeedSnapshot uint32    `json:"seed_snapshot"`
	Result       any       `json:"result"`
	Timestamp    time.Time `json:"timestamp"`
}

// StateSnapshot is an exported copy of a context's seed and event log.
type StateSnapshot struct {
	Seed   string            `json:"seed"`
	Events []SimulationEvent `json:"events"`
}

// SimulationContext wraps one SeededRandom with an append-only event log.
// Every roll records the generator state before the draw and the result, so
// replaying the same seed through the same call sequence reproduces an
// identical log.
//
// A SimulationContext is not safe for concurrent use; each concurrent match
// builds its own from its own derived seed.
type SimulationContext struct {
	seed   string
	runID  uuid.UUID
	rng    *SeededRandom
	events []SimulationEvent
	logger *logrus.Entry
}

// NewSimulationContext creates a context from a canonical seed string
// (normally produced by MatchSeed/TournamentSeed/ProgressionSeed). The
// logger may be nil. The run ID only correlates log lines; it is excluded
// from the reproducibility snapshot.
func NewSimulationContext(seed string, logger *logrus.Logger) *SimulationContext {
	ctx := &SimulationContext{
		seed:  seed,
		runID: uuid.New(),
		rng:   NewSeededRandomFromString(seed),
	}
	if logger != nil {
		ctx.logger = logger.WithFields(logrus.Fields{
			"simulation_id": ctx.runID.String(),
			"seed":          seed,
		})
	}
	return ctx
}

// Seed returns the canonical seed string this context was built from.
func (c *SimulationContext) Seed() string {
	return c.seed
}

// RunID returns the audit correlation ID for this run.
func (c *SimulationContext) RunID() uuid.UUID {
	return c.runID
}

func (c *SimulationContext) record(event string, snapshot uint32, result any) {
	c.events = append(c.events, SimulationEvent{
		EventName:    event,
		SeedSnapshot: snapshot,
		Result:       result,
		Timestamp:    time.Now().UTC(),
	})
	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"event":  event,
			"result": result,
		}).Debug("Recorded simulation event")
	}
}

// RollFloat draws a float in [0,1) and records it under event.
func (c *SimulationContext) RollFloat(event string) float64 {
	snapshot := c.rng.State()
	result := c.rng.Next()
	c.record(event, snapshot, result)
	return result
}

// RollRange draws a float in [min,max) and records it under event.
func (c *SimulationContext) RollRange(event string, min, max float64) float64 {
	snapshot := c.rng.State()
	result := c.rng.NextFloat(min, max)
	c.record(event, snapshot, result)
	return result
}

// RollInt draws an integer in [min,max] and records it under event.
func (c *SimulationContext) RollInt(event string, min, max int) int {
	snapshot := c.rng.State()
	result := c.rng.NextInt(min, max)
	c.record(event, snapshot, result)
	return result
}

// RollBool draws a fair boolean and records it under event.
func (c *SimulationContext) RollBool(event string) bool {
	snapshot := c.rng.State()
	result := c.rng.NextBool()
	c.record(event, snapshot, result)
	return result
}

// RollChoiceIndex draws a uniform index in [0,n) and records it under event.
// n must be positive.
func (c *SimulationContext) RollChoiceIndex(event string, n int) int {
	if n <= 0 {
		panic("simulator: RollChoiceIndex called with non-positive n")
	}
	snapshot := c.rng.State()
	result := c.rng.NextInt(0, n-1)
	c.record(event, snapshot, result)
	return result
}

// EventCount returns the number of recorded events.
func (c *SimulationContext) EventCount() int {
	return len(c.events)
}

// ExportState returns a snapshot of the seed and event log. The returned
// slice is a copy; mutating it does not affect the context.
func (c *SimulationContext) ExportState() StateSnapshot {
	events := make([]SimulationEvent, len(c.events))
	copy(events, c.events)
	return StateSnapshot{Seed: c.seed, Events: events}
}

// Reset rewinds the generator to the original seed and clears the event log.
func (c *SimulationContext) Reset() {
	c.rng.Reset()
	c.events = nil
}

// Fingerprint returns a hex digest of the event log covering event names,
// seed snapshots and results. Timestamps are excluded: wall-clock time
// legitimately differs between replays of the same seed.
func (c *SimulationContext) Fingerprint() string {
	h := sha256.New()
	for _, ev := range c.events {
		fmt.Fprintf(h, "%s|%d|%v\n", ev.EventName, ev.SeedSnapshot, ev.Result)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ValidateReproducibility runs fn against iterations fresh contexts built
// from the same seed and verifies that every run produces an identical
// serialized result and an identical event-log fingerprint. A divergence is
// a correctness defect in the simulation engine itself and is returned as an
// error (and logged at error level), never swallowed.
func ValidateReproducibility(seed string, fn func(*SimulationContext) (any, error), iterations int, logger *logrus.Logger) error {
	if iterations < 2 {
		return fmt.Errorf("reproducibility check needs at least 2 iterations, got %d", iterations)
	}

	var refResult string
	var refFingerprint string

	for i := 0; i < iterations; i++ {
		ctx := NewSimulationContext(seed, logger)
		out, err := fn(ctx)
		if err != nil {
			return fmt.Errorf("reproducibility run %d failed: %w", i, err)
		}
		serialized, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to serialize run %d output: %w", i, err)
		}
		fingerprint := ctx.Fingerprint()

		if i == 0 {
			refResult = string(serialized)
			refFingerprint = fingerprint
			continue
		}
		if string(serialized) != refResult || fingerprint != refFingerprint {
			if logger != nil {
				logger.WithFields(logrus.Fields{
					"seed":      seed,
					"iteration": i,
				}).Error("Reproducibility violation: identical seeds produced divergent output")
			}
			return fmt.Errorf("reproducibility violation for seed %q at iteration %d", seed, i)
		}
	}

	return nil
}
