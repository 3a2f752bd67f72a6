package core

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEllipse(t *testing.T) {
	e := Ellipse{RX: 4, RY: 2}
	require.NoError(t, e.Validate())
	assert.InDelta(t, 8*math.Pi, e.Area(), 1e-12)
	assert.Equal(t, 1.0, e.Level(4, 0))
	assert.Equal(t, 1.0, e.Level(0, -2))
	assert.True(t, e.Contains(3.9, 0))
	assert.False(t, e.Contains(4, 0), "the contour is not inside")

	for _, bad := range []Ellipse{{RX: 0, RY: 1}, {RX: 1, RY: -1}, {RX: math.NaN(), RY: 1}, {RX: math.Inf(1), RY: 100}, {RX: 400, RY: math.Inf(1)}} {
		err := bad.Validate()
		assert.ErrorIs(t, err, ErrInvalid, "%+v", bad)
	}
}

func TestVec3(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 2}
	assert.Equal(t, 3.0, a.Norm())
	assert.Equal(t, Vec3{}, a.Sub(a))
	assert.Equal(t, 5.0, Vec3{X: 3}.Dist(Vec3{Y: 4}))
}

func TestConfigError(t *testing.T) {
	err := error(&ConfigError{Op: "density", Key: "oxygen", Err: ErrNotFound})
	assert.Equal(t, `configuration: density "oxygen": not found`, err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "oxygen", ce.Key)

	assert.Equal(t, "configuration: density: invalid value", (&ConfigError{Op: "density", Err: ErrInvalid}).Error())
}

func TestNonNegative(t *testing.T) {
	assert.NoError(t, NonNegative("parameter", "rate", 0))
	assert.NoError(t, NonNegative("parameter", "rate", 2.5))
	assert.ErrorIs(t, NonNegative("parameter", "rate", -0.1), ErrInvalid)
	assert.ErrorIs(t, NonNegative("parameter", "rate", math.NaN()), ErrInvalid)
	assert.ErrorIs(t, NonNegative("parameter", "rate", math.Inf(1)), ErrInvalid)
	assert.True(t, Finite(1e300))
	assert.False(t, Finite(math.Inf(-1)))
}

func TestRNGIsDeterministic(t *testing.T) {
	a, b, c := NewRNG(7), NewRNG(7), NewRNG(8)
	same, differs := true, false
	for range 32 {
		x, y, z := a.Float64(), b.Float64(), c.Float64()
		same = same && x == y
		differs = differs || x != z
	}
	assert.True(t, same)
	assert.True(t, differs)

	for range 100 {
		theta := a.Angle()
		assert.GreaterOrEqual(t, theta, 0.0)
		assert.Less(t, theta, 2*math.Pi)
	}
}

func TestSnapshotWriteTo(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:    "motile cell",
		Summary: "type 1",
		Params: []Parameter{
			FloatParam("speed", "Migration speed", 0.25),
			IntParam("type", "Type", 1),
			BoolParam("motile", "Motile", true),
			StringParam("cycle", "Cycle model", "live"),
		},
	}}}
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	assert.Contains(t, out, "motile cell (type 1):\n")
	assert.Contains(t, out, "Migration speed:")
	assert.Contains(t, out, "0.25\n")
	assert.Contains(t, out, "true\n")
	assert.Contains(t, out, "live\n")
	assert.Equal(t, "float", string(ParamTypeFloat))
}
