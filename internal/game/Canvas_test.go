package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanvas_SetAndBlank(t *testing.T) {
	c := NewCanvas(8, 4)
	c.Set(3, 2, "X")
	require.Equal(t, "X", c.At(3, 2))

	c.Blank(3, 2)
	require.Equal(t, blankCell, c.At(3, 2))
}

func TestCanvas_OutOfBoundsWritesDropped(t *testing.T) {
	c := NewCanvas(8, 4)
	c.Set(-1, 0, "X")
	c.Set(8, 0, "X")
	c.Set(0, -1, "X")
	c.Set(0, 4, "X")

	require.Equal(t, blankCell, c.At(-1, 0))
	require.Equal(t, strings.Repeat(blankCell, 8*4), strings.ReplaceAll(c.Render(), "\n", ""))
}

func TestCanvas_RenderShape(t *testing.T) {
	c := NewCanvas(4, 3)
	rows := strings.Split(c.Render(), "\n")
	require.Len(t, rows, 3)
	for _, row := range rows {
		require.Equal(t, strings.Repeat(blankCell, 4), row)
	}
}
