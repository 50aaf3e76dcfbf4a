// Package dice parses and rolls "NdM" dice notation
package dice

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/wargame-api/internal/errors"
)

// Roller is the source of die results. Implementations used from several
// goroutines must be safe for concurrent use.
type Roller = toolkitdice.Roller

// Reasons tagged on dice errors; see IsInvalidNotation and IsInvalidRange
const (
	ReasonInvalidNotation = "invalid_notation"
	ReasonInvalidRange    = "invalid_range"
)

var (
	// Whole-string match for notation like "1d6", "20d20", "0d6"
	notationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)
)

// Dice is a parsed dice notation. The zero value is not valid; use Parse.
// Dice values are immutable and compare structurally with ==.
type Dice struct {
	notation string
	count    uint16
	sides    uint16
}

// Parse validates notation against the NdM grammar and splits it into a count
// and a number of sides. Text that does not match returns a nil Dice and an
// InvalidArgument error. A count or side value above 65535 returns an
// OutOfRange error.
func Parse(notation string) (*Dice, error) {
	matches := notationRegex.FindStringSubmatch(notation)
	if len(matches) != 3 {
		return nil, errors.InvalidArgumentf("invalid dice notation: %q (expected format: NdM)", notation).
			WithReason(ReasonInvalidNotation).
			WithMeta("notation", notation)
	}

	count, err := strconv.ParseUint(matches[1], 10, 16)
	if err != nil {
		return nil, errors.OutOfRangef("dice count in %q must be at most %d", notation, math.MaxUint16).
			WithReason(ReasonInvalidRange).
			WithMeta("notation", notation)
	}

	sides, err := strconv.ParseUint(matches[2], 10, 16)
	if err != nil {
		return nil, errors.OutOfRangef("dice sides in %q must be at most %d", notation, math.MaxUint16).
			WithReason(ReasonInvalidRange).
			WithMeta("notation", notation)
	}

	return &Dice{
		notation: notation,
		count:    uint16(count),
		sides:    uint16(sides),
	}, nil
}

// MustParse is Parse for package level weapon profiles. It panics on error.
func MustParse(notation string) *Dice {
	d, err := Parse(notation)
	if err != nil {
		panic(fmt.Sprintf("dice: MustParse(%q): %v", notation, err))
	}
	return d
}

// Notation returns the text the dice were parsed from
func (d *Dice) Notation() string {
	return d.notation
}

// Count returns the number of dice rolled
func (d *Dice) Count() uint16 {
	return d.count
}

// Sides returns the number of faces on each die
func (d *Dice) Sides() uint16 {
	return d.sides
}

// String implements fmt.Stringer
func (d *Dice) String() string {
	return d.notation
}

// Roll rolls every die once and returns the results in roll order. A nil
// roller uses the toolkit default roller.
//
// The result always holds exactly Count() values in [1, Sides()]. Zero dice
// give an empty slice; zero sides is an OutOfRange error.
func (d *Dice) Roll(roller Roller) ([]uint16, error) {
	if d.sides == 0 {
		return nil, errors.OutOfRangef("cannot roll %s: dice must have at least one side", d.notation).
			WithReason(ReasonInvalidRange).
			WithMeta("notation", d.notation)
	}
	if d.count == 0 {
		return []uint16{}, nil
	}
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}

	raw, err := roller.RollN(int(d.count), int(d.sides))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", d.notation)
	}
	if len(raw) != int(d.count) {
		return nil, errors.Internalf("roller returned %d results for %s", len(raw), d.notation)
	}

	results := make([]uint16, len(raw))
	for i, v := range raw {
		if v < 1 || v > int(d.sides) {
			return nil, errors.Internalf("roller returned %d for a d%d", v, d.sides)
		}
		results[i] = uint16(v)
	}

	return results, nil
}

// Sum rolls the dice and returns the total
func (d *Dice) Sum(roller Roller) (uint32, error) {
	results, err := d.Roll(roller)
	if err != nil {
		return 0, err
	}
	return Total(results), nil
}

// Min returns the lowest possible total
func (d *Dice) Min() uint32 {
	if d.sides == 0 {
		return 0
	}
	return uint32(d.count)
}

// Max returns the highest possible total
func (d *Dice) Max() uint32 {
	return uint32(d.count) * uint32(d.sides)
}

// Average returns the expected total
func (d *Dice) Average() float64 {
	if d.sides == 0 {
		return 0
	}
	return float64(d.count) * (float64(d.sides) + 1) / 2
}

// Total adds up individual die results
func Total(results []uint16) uint32 {
	var total uint32
	for _, r := range results {
		total += uint32(r)
	}
	return total
}

// IsInvalidNotation reports whether err came from text that is not dice
// notation. Other InvalidArgument errors do not match.
func IsInvalidNotation(err error) bool {
	return errors.HasReason(err, errors.CodeInvalidArgument, ReasonInvalidNotation)
}

// IsInvalidRange reports whether err came from a count or side value that
// cannot be rolled. Other OutOfRange errors do not match.
func IsInvalidRange(err error) bool {
	return errors.HasReason(err, errors.CodeOutOfRange, ReasonInvalidRange)
}
