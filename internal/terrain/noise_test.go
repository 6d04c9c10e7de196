package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashNoiseRangeAndDeterminism(t *testing.T) {
	a := NewNoiseSource(42)
	b := NewNoiseSource(42)

	for x := -24; x <= 24; x += 3 {
		for y := -24; y <= 24; y += 4 {
			for z := -12; z <= 12; z += 5 {
				v := a.HashNoise(x, y, z, 1)
				require.GreaterOrEqual(t, v, 0.0, "cell (%d,%d,%d)", x, y, z)
				require.Less(t, v, 1.0, "cell (%d,%d,%d)", x, y, z)
				require.Equal(t, v, b.HashNoise(x, y, z, 1), "cell (%d,%d,%d)", x, y, z)
			}
		}
	}
}

func TestHashNoiseScaleGroupsCells(t *testing.T) {
	s := NewNoiseSource(7)

	v := s.HashNoise(0, 0, 0, 4)
	assert.Equal(t, v, s.HashNoise(3, 3, 3, 4), "cells inside one block must share a value")

	differs := false
	for i := 1; i <= 6; i++ {
		if s.HashNoise(4*i, 0, 0, 4) != v {
			differs = true
			break
		}
	}
	assert.True(t, differs, "neighbouring blocks should not all collide")
}

func TestSampleStaysNormalized(t *testing.T) {
	s := NewNoiseSource(99)

	for i := 0; i < 400; i++ {
		x := float64(i) * 0.173
		y := float64(i) * 0.091
		v := s.Sample(x, y, 3.0)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestDeriveIsStablePerLabel(t *testing.T) {
	root := NewNoiseSource(1234)

	a := root.Derive(labelHeight)
	b := root.Derive(labelMoisture)
	require.NotEqual(t, a.Seed(), b.Seed())

	c := root.Derive(labelHeight)
	assert.Equal(t, a.Seed(), c.Seed())
	assert.Equal(t, a.HashNoise(5, 6, 7, 1), c.HashNoise(5, 6, 7, 1))
	assert.Equal(t, a.Sample(0.3, 0.7, 6.0), c.Sample(0.3, 0.7, 6.0))
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewNoiseSource(1)
	b := NewNoiseSource(2)

	differs := false
	for i := 0; i < 32 && !differs; i++ {
		if a.Cell(i, i*3, i*7) != b.Cell(i, i*3, i*7) {
			differs = true
		}
	}
	assert.True(t, differs)
}
