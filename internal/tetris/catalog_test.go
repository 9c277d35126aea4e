package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShapes(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 7)

	names := make(map[string]bool)
	for _, s := range catalog {
		t.Run(s.Name, func(t *testing.T) {
			assert.Equal(t, Point{}, s.Offsets[0], "anchor must be the first offset")

			seen := make(map[Point]bool)
			for _, o := range s.Offsets {
				assert.False(t, seen[o], "duplicate offset %v", o)
				seen[o] = true
			}
		})
		names[s.Name] = true
	}
	assert.Len(t, names, 7)
}

func TestCatalogLookup(t *testing.T) {
	catalog := DefaultCatalog()

	s, ok := catalog.Lookup("t")
	require.True(t, ok)
	assert.Equal(t, ShapeT, s)

	_, ok = catalog.Lookup("X")
	assert.False(t, ok)
}

func TestCatalogNextIsSeeded(t *testing.T) {
	catalog := DefaultCatalog()
	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))

	for range 50 {
		assert.Equal(t, catalog.Next(r1).Name, catalog.Next(r2).Name)
	}
}

func TestSpawnOrigin(t *testing.T) {
	assert.Equal(t, Point{X: 5, Y: 17}, SpawnOrigin())
}

func TestShapeLines(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []string
	}{
		{ShapeT, []string{" #", "###"}},
		{ShapeO, []string{"##", "##"}},
		{ShapeI, []string{"#", "#", "#", "#"}},
		{ShapeS, []string{" #", "##", "#"}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.Name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.Lines("#"))
		})
	}
}
