package dice

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/wargame-api/internal/errors"
)

// SeededRollerConfig configures a SeededRoller
type SeededRollerConfig struct {
	// Optional seed; zero seeds from the current time
	Seed int64
}

// SeededRoller is a Roller backed by math/rand. The same seed replays the
// same results, which keeps tests and recorded games reproducible.
type SeededRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

var _ Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a new seeded roller
func NewSeededRoller(cfg *SeededRollerConfig) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &SeededRoller{
		random: rand.New(rand.NewSource(seed)), // #nosec G404 // game dice, not secrets
	}
}

// Roll returns a single result in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.OutOfRangef("die size must be positive, got %d", size).WithReason(ReasonInvalidRange)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(size) + 1, nil
}

// RollN returns count results in [1, size]
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if size < 1 {
		return nil, errors.OutOfRangef("die size must be positive, got %d", size).WithReason(ReasonInvalidRange)
	}
	if count < 0 {
		return nil, errors.OutOfRangef("dice count must not be negative, got %d", count).WithReason(ReasonInvalidRange)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]int, count)
	for i := range results {
		results[i] = r.random.Intn(size) + 1
	}
	return results, nil
}
