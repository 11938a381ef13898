package somok

import (
	"errors"
	"strconv"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEither_LeftRoundTrip(t *testing.T) {
	x := randomdata.Number(-1000, 1000)
	e := Left[string](x)

	assert.True(t, e.IsLeft())
	assert.False(t, e.IsRight())
	assert.Equal(t, SideLeft, e.Side())
	assert.Equal(t, x, e.MustLeft())

	l, ok := e.GetLeft()
	assert.True(t, ok)
	assert.Equal(t, x, l)

	r, ok := e.GetRight()
	assert.False(t, ok)
	assert.Empty(t, r)
}

func TestEither_RightRoundTrip(t *testing.T) {
	y := randomdata.SillyName()
	e := Right[int](y)

	assert.True(t, e.IsRight())
	assert.False(t, e.IsLeft())
	assert.Equal(t, SideRight, e.Side())
	assert.Equal(t, y, e.MustRight())

	r, ok := e.GetRight()
	assert.True(t, ok)
	assert.Equal(t, y, r)

	_, ok = e.GetLeft()
	assert.False(t, ok)
}

func TestEither_InactivePayloadPanics(t *testing.T) {
	t.Parallel()

	err := panicErr(t, func() { Left[string](1).MustRight() })
	assert.True(t, errors.Is(err, ErrWrongVariant), "got %v", err)

	err = panicErr(t, func() { Right[int]("x").MustLeft() })
	assert.True(t, errors.Is(err, ErrWrongVariant), "got %v", err)
}

func TestEither_ZeroValueIsLeft(t *testing.T) {
	t.Parallel()
	var e Either[int, string]

	assert.True(t, e.IsLeft())
	assert.Equal(t, Left[string](0), e)
}

func TestEither_Equality(t *testing.T) {
	t.Parallel()
	assert.True(t, Left[string](1) == Left[string](1))
	assert.False(t, Left[int](1) == Right[int](1))
	assert.False(t, Right[int]("a") == Right[int]("b"))
}

func TestEither_Swap(t *testing.T) {
	t.Parallel()
	swapped := Left[string](7).Swap()

	require.True(t, swapped.IsRight())
	assert.Equal(t, 7, swapped.MustRight())
	assert.Equal(t, Left[string](7), swapped.Swap())
}

func TestMatch(t *testing.T) {
	t.Parallel()
	render := func(e Either[int, string]) string {
		return Match(e,
			func(l int) string { return "L" + strconv.Itoa(l) },
			func(r string) string { return "R" + r })
	}

	assert.Equal(t, "L3", render(Left[string](3)))
	assert.Equal(t, "Rx", render(Right[int]("x")))
}

func TestEither_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Left(1)", Left[string](1).String())
	assert.Equal(t, "Right(a)", Right[int]("a").String())
	assert.Equal(t, "Right", SideRight.String())
}
