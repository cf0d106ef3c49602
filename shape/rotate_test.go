package shape_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipeworks-go/infiniloop/shape"
)

func TestRotate_QuarterTurns(t *testing.T) {
	cases := []struct {
		name  string
		code  shape.Code
		steps int
		want  shape.Code
	}{
		{"DeadEnd_0", shape.DeadEnd, 0, 0x1},
		{"DeadEnd_1", shape.DeadEnd, 1, 0x2},
		{"DeadEnd_2", shape.DeadEnd, 2, 0x4},
		{"DeadEnd_3", shape.DeadEnd, 3, 0x8},
		{"DeadEnd_4_wraps", shape.DeadEnd, 4, 0x1},
		{"Corner_1", shape.Corner, 1, 0x6},
		{"Straight_1", shape.Straight, 1, 0xa},
		{"Straight_2_isSelf", shape.Straight, 2, 0x5},
		{"TJunction_1", shape.TJunction, 1, 0xe},
		{"Cross_any", shape.Cross, 3, 0xf},
		{"Empty_any", shape.Empty, 2, 0x0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, shape.Rotate(tc.code, tc.steps))
		})
	}
}

func TestRotateHalf_IsTwoQuarterTurns(t *testing.T) {
	for c := shape.Code(0); c <= 0xf; c++ {
		require.Equal(t, shape.Rotate(c, 2), shape.RotateHalf(c), "code %#x", c)
	}
}

func TestRotateHalf_Involution(t *testing.T) {
	for c := shape.Code(0); c <= 0xf; c++ {
		require.Equal(t, c, shape.RotateHalf(shape.RotateHalf(c)), "code %#x", c)
	}
}

func TestFanout_SingleBitMatchesRotate(t *testing.T) {
	for c := shape.Code(0); c <= 0xf; c++ {
		for i := 0; i < 4; i++ {
			require.Equal(t, shape.Rotate(c, i), shape.Fanout(c, shape.Bit(i)))
		}
	}
}

func TestFanout_UnionOfAllowedRotations(t *testing.T) {
	// Corner under both of its two 0/2 rotations: {0x3, 0xc}.
	got := shape.Fanout(shape.Corner, shape.Bit(0)|shape.Bit(2))
	require.Equal(t, shape.Corner|shape.Rotate(shape.Corner, 2), got)
}

func TestFanout_FullOptionsCoversAllRotations(t *testing.T) {
	// A dead-end's stub can point any of the four ways once all
	// rotations remain possible.
	require.Equal(t, shape.Cross, shape.Fanout(shape.DeadEnd, shape.FullOptions))
}

func TestFanout_EmptyOptionsIsEmpty(t *testing.T) {
	require.Equal(t, shape.Empty, shape.Fanout(shape.Cross, 0))
}
