package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-intopt/intopt/vector"
)

func TestZeroAndUnit(t *testing.T) {
	z := vector.Zero(3)
	require.Equal(t, 3, z.Len())
	for i := 0; i < 3; i++ {
		require.Equal(t, vector.IntData(0), z.At(i))
	}

	u := vector.Unit(4, 2)
	require.Equal(t, vector.IntData(1), u.At(2))
	require.Equal(t, vector.IntData(0), u.At(0))
}

func TestUnitOutOfRangePanics(t *testing.T) {
	require.Panics(t, func() { vector.Unit(3, 3) })
	require.Panics(t, func() { vector.Unit(3, -1) })
}

func TestFromSliceCopies(t *testing.T) {
	data := []vector.IntData{1, 2, 3}
	v := vector.FromSlice(data)
	data[0] = 99
	require.Equal(t, vector.IntData(1), v.At(0), "FromSlice must copy, not alias")
}

func TestAddCommutative(t *testing.T) {
	u := vector.FromSlice([]vector.IntData{1, -2, 3})
	v := vector.FromSlice([]vector.IntData{4, 5, -6})
	require.True(t, u.Add(v).Equal(v.Add(u)))
}

func TestAddDimensionMismatchPanics(t *testing.T) {
	u := vector.Zero(2)
	v := vector.Zero(3)
	require.Panics(t, func() { u.Add(v) })
}

func TestDotCommutative(t *testing.T) {
	u := vector.FromSlice([]vector.IntData{1, 2, 3})
	v := vector.FromSlice([]vector.IntData{4, -5, 6})
	require.Equal(t, u.Dot(v), v.Dot(u))
}

func TestInfNormTriangleInequality(t *testing.T) {
	u := vector.FromSlice([]vector.IntData{3, -7, 2})
	v := vector.FromSlice([]vector.IntData{-1, 4, -9})
	require.LessOrEqual(t, u.Add(v).InfNorm(), u.InfNorm()+v.InfNorm())
}

func TestInfNormIsTrueAbsMax(t *testing.T) {
	// Open-question decision: InfNorm is the true |.|_inf, not the
	// reference implementation's signed-max quirk.
	v := vector.FromSlice([]vector.IntData{-5, -1, -9})
	require.Equal(t, vector.IntData(9), v.InfNorm())
}

func TestOneNorm(t *testing.T) {
	v := vector.FromSlice([]vector.IntData{-3, 4, -5})
	require.Equal(t, vector.IntData(12), v.OneNorm())
}

func TestNorm(t *testing.T) {
	v := vector.FromSlice([]vector.IntData{3, 4})
	require.InDelta(t, 5.0, v.Norm(), 1e-9)
	require.True(t, math.Abs(v.Norm()-5.0) < 1e-9)
}

func TestMaxDistance(t *testing.T) {
	u := vector.FromSlice([]vector.IntData{0, 0})
	v := vector.FromSlice([]vector.IntData{2, -2})
	require.True(t, u.MaxDistance(v, 2))
	require.False(t, u.MaxDistance(v, 1))
}

func TestKeyByteExact(t *testing.T) {
	u := vector.FromSlice([]vector.IntData{1, 2, 3})
	v := vector.FromSlice([]vector.IntData{1, 2, 3})
	w := vector.FromSlice([]vector.IntData{1, 2, 4})
	require.Equal(t, u.Key(), v.Key())
	require.NotEqual(t, u.Key(), w.Key())
}

func TestAppendGrowsVector(t *testing.T) {
	v := vector.New(2)
	require.Equal(t, 0, v.Len())
	v.Append(7)
	v.Append(8)
	require.Equal(t, 2, v.Len())
	require.Equal(t, vector.IntData(7), v.At(0))
}
