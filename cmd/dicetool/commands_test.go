package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/dicer/pkg/dice"
	"github.com/Faultbox/dicer/pkg/dice/shape"
	"github.com/Faultbox/dicer/pkg/math"
)

func TestChiSquared(t *testing.T) {
	assert.Equal(t, 0.0, chiSquared([]int{25, 25, 25, 25}, 100))
	assert.InDelta(t, 2.0, chiSquared([]int{30, 20, 25, 25}, 100), 1e-9)
	assert.Equal(t, 0.0, chiSquared(nil, 0))
}

func TestRollHistogram(t *testing.T) {
	d, err := dice.Generate(context.Background(), shape.Bipyramid, 8, 1, dice.Options{})
	require.NoError(t, err)

	const rolls = 20000
	histogram := rollHistogram(d, rolls, 7, math.Up)
	require.Len(t, histogram, 9)
	assert.Zero(t, histogram[0])

	total := 0
	for _, c := range histogram[1:] {
		total += c
	}
	assert.Equal(t, rolls, total)

	// A fair die stays well below the 0.1% critical value for 7 degrees of freedom.
	assert.Less(t, chiSquared(histogram[1:], rolls), 24.32)

	again := rollHistogram(d, rolls, 7, math.Up)
	assert.Equal(t, histogram, again)
}

func TestRunStatsRecordRolls(t *testing.T) {
	st := newStats(true)
	d, err := dice.Generate(context.Background(), shape.Tetrahedron, 4, 1, dice.Options{Metrics: st.metrics})
	require.NoError(t, err)

	rollHistogram(d, 100, 3, math.Up)

	families, err := st.registry.Gather()
	require.NoError(t, err)

	var rolls float64
	for _, mf := range families {
		if mf.GetName() != "dicer_dice_rolls_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			rolls += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 100.0, rolls)

	inactive := newStats(false)
	assert.Nil(t, inactive.metrics)
	inactive.print()
}
