package shape_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipeworks-go/infiniloop/shape"
)

func TestInitialOptions(t *testing.T) {
	cases := []struct {
		name string
		code shape.Code
		want shape.Options
	}{
		{"Empty", shape.Empty, 0x1},
		{"Cross", shape.Cross, 0x1},
		{"Straight", shape.Straight, 0x3},
		{"Corner", shape.Corner, 0xf},
		{"TJunction", shape.TJunction, 0xf},
		{"DeadEnd", shape.DeadEnd, 0xf}, // wasteful-but-correct per spec note
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, shape.InitialOptions(tc.code))
		})
	}
}

func TestInitialOptions_NeverZero(t *testing.T) {
	for _, c := range []shape.Code{shape.Empty, shape.DeadEnd, shape.Corner, shape.Straight, shape.TJunction, shape.Cross} {
		require.NotZero(t, shape.InitialOptions(c))
	}
}
