package wargame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/wargame-api/internal/dice"
	"github.com/KirkDiggler/wargame-api/internal/entities/wargame"
	"github.com/KirkDiggler/wargame-api/internal/errors"
)

// fixedRoller returns the same face for every die
type fixedRoller struct {
	face int
}

func (f *fixedRoller) Roll(_ int) (int, error) { return f.face, nil }
func (f *fixedRoller) RollN(count, _ int) ([]int, error) {
	results := make([]int, count)
	for i := range results {
		results[i] = f.face
	}
	return results, nil
}

func TestAbsolute_Resolve(t *testing.T) {
	damage := wargame.Absolute{Value: 1}

	for i := 0; i < 10; i++ {
		v, err := damage.Resolve(nil)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), v)
	}
	assert.Equal(t, "1", damage.String())
}

func TestDieDamage_Resolve(t *testing.T) {
	roller := dice.NewSeededRoller(&dice.SeededRollerConfig{Seed: 11})

	d6, err := wargame.NewDieDamage("1d6")
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v, err := d6.Resolve(roller)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, uint32(1))
		assert.LessOrEqual(t, v, uint32(6))
	}

	twoD6 := wargame.MustDieDamage("2d6")
	v, err := twoD6.Resolve(&fixedRoller{face: 5})
	require.NoError(t, err)
	assert.Equal(t, uint32(10), v, "multi-dice damage is the sum of every die")
}

func TestDieDamage_ZeroSides(t *testing.T) {
	d, err := wargame.NewDieDamage("1d0")
	require.NoError(t, err)

	_, err = d.Resolve(nil)
	assert.True(t, dice.IsInvalidRange(err))
}

func TestNewDieDamage_InvalidNotation(t *testing.T) {
	d, err := wargame.NewDieDamage("20abcd5")
	require.Error(t, err)
	assert.True(t, dice.IsInvalidNotation(err))
	assert.Equal(t, wargame.DieDamage{}, d)

	assert.Panics(t, func() { wargame.MustDieDamage("d6") })
}

func TestDamageKind_Equality(t *testing.T) {
	var a, b wargame.DamageKind

	a, b = wargame.Absolute{Value: 1}, wargame.Absolute{Value: 1}
	assert.True(t, a == b)

	a, b = wargame.Absolute{Value: 1}, wargame.Absolute{Value: 2}
	assert.False(t, a == b)

	a, b = wargame.MustDieDamage("1d6"), wargame.MustDieDamage("1d6")
	assert.True(t, a == b)

	a, b = wargame.MustDieDamage("1d6"), wargame.MustDieDamage("2d6")
	assert.False(t, a == b)

	a, b = wargame.MustDieDamage("1d1"), wargame.Absolute{Value: 1}
	assert.False(t, a == b)
}

func TestDieDamage_Dice(t *testing.T) {
	d := wargame.MustDieDamage("3d6").Dice()
	assert.Equal(t, uint16(3), d.Count())
	assert.Equal(t, uint16(6), d.Sides())
}

func TestParseDamageKind(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected wargame.DamageKind
		code     errors.Code
	}{
		{name: "fixed", text: "2", expected: wargame.Absolute{Value: 2}},
		{name: "fixed with spaces", text: " 3 ", expected: wargame.Absolute{Value: 3}},
		{name: "zero", text: "0", expected: wargame.Absolute{Value: 0}},
		{name: "dice", text: "1d6", expected: wargame.MustDieDamage("1d6")},
		{name: "fixed overflow", text: "70000", code: errors.CodeOutOfRange},
		{name: "dice overflow", text: "70000d6", code: errors.CodeOutOfRange},
		{name: "garbage", text: "D6+1", code: errors.CodeInvalidArgument},
		{name: "empty", text: "", code: errors.CodeInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dk, err := wargame.ParseDamageKind(tc.text)
			if tc.code != "" {
				require.Error(t, err)
				assert.Nil(t, dk)
				assert.Equal(t, tc.code, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dk)
		})
	}
}

func TestDamageKind_Bounds(t *testing.T) {
	fixed := wargame.Absolute{Value: 2}
	assert.Equal(t, uint32(2), fixed.Min())
	assert.Equal(t, uint32(2), fixed.Max())
	assert.Equal(t, 2.0, fixed.Average())

	rolled := wargame.MustDieDamage("2d6")
	assert.Equal(t, uint32(2), rolled.Min())
	assert.Equal(t, uint32(12), rolled.Max())
	assert.Equal(t, 7.0, rolled.Average())
	assert.Equal(t, "2d6", rolled.String())
}
