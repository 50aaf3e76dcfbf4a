package dice_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/wargame-api/internal/dice"
	"github.com/KirkDiggler/wargame-api/internal/errors"
)

// stubRoller returns canned results to satisfy dice.Roller
type stubRoller struct {
	results []int
	err     error
	calls   int
}

func (s *stubRoller) Roll(_ int) (int, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.results[0], nil
}

func (s *stubRoller) RollN(_, _ int) ([]int, error) {
	s.calls++
	return s.results, s.err
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		notation string
		count    uint16
		sides    uint16
	}{
		{name: "single d6", notation: "1d6", count: 1, sides: 6},
		{name: "twenty d20", notation: "20d20", count: 20, sides: 20},
		{name: "zero dice", notation: "0d6", count: 0, sides: 6},
		{name: "zero sides", notation: "3d0", count: 3, sides: 0},
		{name: "leading zeros", notation: "02d06", count: 2, sides: 6},
		{name: "largest values", notation: "65535d65535", count: math.MaxUint16, sides: math.MaxUint16},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := dice.Parse(tc.notation)
			require.NoError(t, err)
			require.NotNil(t, d)

			assert.Equal(t, tc.notation, d.Notation())
			assert.Equal(t, tc.notation, d.String())
			assert.Equal(t, tc.count, d.Count())
			assert.Equal(t, tc.sides, d.Sides())
		})
	}
}

func TestParse_InvalidNotation(t *testing.T) {
	for _, notation := range []string{
		"20abcd5",
		"",
		"d6",
		"3d",
		"1D6",
		"1d6+1",
		"x1d6",
		" 1d6",
		"-1d6",
		"1.5d6",
	} {
		t.Run(fmt.Sprintf("%q", notation), func(t *testing.T) {
			d, err := dice.Parse(notation)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, dice.IsInvalidNotation(err))
			assert.False(t, dice.IsInvalidRange(err))
			assert.Equal(t, notation, errors.GetMeta(err)["notation"])
		})
	}
}

func TestParse_Overflow(t *testing.T) {
	for _, notation := range []string{"65536d6", "1d65536", "99999999999999999999d6"} {
		t.Run(notation, func(t *testing.T) {
			d, err := dice.Parse(notation)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, dice.IsInvalidRange(err))
			assert.False(t, dice.IsInvalidNotation(err))
		})
	}
}

func TestDiceErrors_OnlyMatchDiceFailures(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "nil", err: nil},
		{name: "unrelated invalid argument", err: errors.InvalidArgument("entity ID is required")},
		{name: "unrelated out of range", err: errors.OutOfRangef("weapon fires %d shots, at most %d can be resolved", 2000, 1000)},
		{name: "wrapped unrelated error", err: errors.Wrap(errors.InvalidArgument("config cannot be nil"), "invalid config")},
		{name: "plain error", err: fmt.Errorf("invalid dice notation")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, dice.IsInvalidNotation(tc.err))
			assert.False(t, dice.IsInvalidRange(tc.err))
		})
	}

	_, err := dice.Parse("1d")
	assert.True(t, dice.IsInvalidNotation(errors.Wrap(err, "failed to parse damage")))
}

func TestParse_RoundTrip(t *testing.T) {
	values := []uint16{0, 1, 2, 3, 6, 10, 20, 100, 1000, 65534, 65535}
	for _, c := range values {
		for _, s := range values {
			notation := fmt.Sprintf("%dd%d", c, s)

			d, err := dice.Parse(notation)
			require.NoError(t, err, notation)
			assert.Equal(t, c, d.Count(), notation)
			assert.Equal(t, s, d.Sides(), notation)

			again, err := dice.Parse(d.Notation())
			require.NoError(t, err, notation)
			assert.Equal(t, *d, *again, notation)
		}
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, uint16(2), dice.MustParse("2d6").Count())
	assert.Panics(t, func() { dice.MustParse("20abcd5") })
}

func TestRoll(t *testing.T) {
	roller := dice.NewSeededRoller(&dice.SeededRollerConfig{Seed: 40000})

	testCases := []struct {
		notation string
		count    int
		sides    uint16
	}{
		{notation: "1d6", count: 1, sides: 6},
		{notation: "5d20", count: 5, sides: 20},
		{notation: "2000d20", count: 2000, sides: 20},
		{notation: "10d1", count: 10, sides: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.notation, func(t *testing.T) {
			d := dice.MustParse(tc.notation)

			results, err := d.Roll(roller)
			require.NoError(t, err)
			require.Len(t, results, tc.count)
			for _, r := range results {
				assert.GreaterOrEqual(t, r, uint16(1))
				assert.LessOrEqual(t, r, tc.sides)
			}
		})
	}
}

func TestRoll_CoversEveryFace(t *testing.T) {
	roller := dice.NewSeededRoller(&dice.SeededRollerConfig{Seed: 7})

	results, err := dice.MustParse("2000d20").Roll(roller)
	require.NoError(t, err)

	seen := make(map[uint16]int)
	for _, r := range results {
		seen[r]++
	}
	assert.Len(t, seen, 20, "every face of a d20 should appear in 2000 rolls")
	assert.Contains(t, seen, uint16(1))
	assert.Contains(t, seen, uint16(20))
}

func TestRoll_DefaultRoller(t *testing.T) {
	results, err := dice.MustParse("3d6").Roll(nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.GreaterOrEqual(t, r, uint16(1))
		assert.LessOrEqual(t, r, uint16(6))
	}
}

func TestRoll_ZeroCount(t *testing.T) {
	roller := &stubRoller{}

	results, err := dice.MustParse("0d6").Roll(roller)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.Zero(t, roller.calls)
}

func TestRoll_ZeroSides(t *testing.T) {
	for _, notation := range []string{"1d0", "0d0"} {
		t.Run(notation, func(t *testing.T) {
			roller := &stubRoller{}

			results, err := dice.MustParse(notation).Roll(roller)
			require.Error(t, err)
			assert.Nil(t, results)
			assert.True(t, dice.IsInvalidRange(err))
			assert.Zero(t, roller.calls)
		})
	}
}

func TestRoll_RollerFailures(t *testing.T) {
	testCases := []struct {
		name   string
		roller *stubRoller
		code   errors.Code
	}{
		{
			name:   "roller error is wrapped",
			roller: &stubRoller{err: errors.Unavailable("entropy exhausted")},
			code:   errors.CodeUnavailable,
		},
		{
			name:   "short result",
			roller: &stubRoller{results: []int{3}},
			code:   errors.CodeInternal,
		},
		{
			name:   "result above sides",
			roller: &stubRoller{results: []int{3, 7}},
			code:   errors.CodeInternal,
		},
		{
			name:   "result below one",
			roller: &stubRoller{results: []int{0, 2}},
			code:   errors.CodeInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := dice.MustParse("2d6").Roll(tc.roller)
			require.Error(t, err)
			assert.Nil(t, results)
			assert.Equal(t, tc.code, errors.GetCode(err))
		})
	}
}

func TestSum(t *testing.T) {
	total, err := dice.MustParse("3d6").Sum(&stubRoller{results: []int{1, 4, 6}})
	require.NoError(t, err)
	assert.Equal(t, uint32(11), total)

	_, err = dice.MustParse("3d0").Sum(nil)
	assert.True(t, dice.IsInvalidRange(err))
}

func TestBounds(t *testing.T) {
	testCases := []struct {
		notation string
		min      uint32
		max      uint32
		average  float64
	}{
		{notation: "1d6", min: 1, max: 6, average: 3.5},
		{notation: "2d6", min: 2, max: 12, average: 7},
		{notation: "0d6", min: 0, max: 0, average: 0},
		{notation: "4d0", min: 0, max: 0, average: 0},
		{notation: "65535d65535", min: 65535, max: 4294836225, average: 65535 * 32768},
	}

	for _, tc := range testCases {
		t.Run(tc.notation, func(t *testing.T) {
			d := dice.MustParse(tc.notation)
			assert.Equal(t, tc.min, d.Min())
			assert.Equal(t, tc.max, d.Max())
			assert.InDelta(t, tc.average, d.Average(), 0.0001)
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, uint32(0), dice.Total(nil))
	assert.Equal(t, uint32(131070), dice.Total([]uint16{65535, 65535}))
}
