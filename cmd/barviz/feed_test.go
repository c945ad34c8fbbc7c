package main

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineFeed(t *testing.T) {
	f := newLineFeed(strings.NewReader("# header\n1 2 3\n\n4,5;6\t7\n"))

	values, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, values)

	values, err = f.Next()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 7}, values)

	_, err = f.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineFeedBadNumber(t *testing.T) {
	f := newLineFeed(strings.NewReader("1 2\n3 x\n"))

	_, err := f.Next()
	require.NoError(t, err)

	_, err = f.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecayFeed(t *testing.T) {
	f := newDecayFeed(8, 100, rand.New(rand.NewSource(1)))

	first, err := f.Next()
	require.NoError(t, err)
	require.Len(t, first, 8)

	second, err := f.Next()
	require.NoError(t, err)
	for i := range first {
		assert.GreaterOrEqual(t, second[i], 0.0)
		assert.Less(t, second[i], 100.0)
		if first[i] > 1 {
			assert.InDelta(t, first[i]-1, second[i], 1e-9, "series %d decays by one percent of scale", i)
		}
	}
}
