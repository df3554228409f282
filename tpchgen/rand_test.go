package tpchgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvanceSeedMatchesStepping(t *testing.T) {
	stepped := newRandStream(933588178, 1)
	jumped := newRandStream(933588178, 1)

	for _, n := range []int64{1, 2, 7, 100, 12345} {
		for i := int64(0); i < n; i++ {
			stepped.next()
		}
		stepped.usage = 0
		jumped.advanceSeed(n)
		require.Equal(t, stepped.seed, jumped.seed, "after %d steps", n)
	}
}

func TestAdvanceRowsMatchesRowFinished(t *testing.T) {
	const perRow = 7

	stepped := newRandStream(209208115, perRow)
	for i := 0; i < 1000; i++ {
		stepped.boundedInt(1, 50)
		stepped.boundedInt(1, 50)
		stepped.rowFinished()
	}

	jumped := newRandStream(209208115, perRow)
	jumped.advanceRows(1000)

	require.Equal(t, stepped.seed, jumped.seed)
}

func TestAdvanceSeed64MatchesStepping(t *testing.T) {
	stepped := newRandStream64(851767375, 1)
	jumped := newRandStream64(851767375, 1)

	for _, n := range []int64{1, 3, 64, 9999} {
		for i := int64(0); i < n; i++ {
			stepped.next()
		}
		stepped.usage = 0
		jumped.advanceSeed(uint64(n))
		require.Equal(t, stepped.seed, jumped.seed, "after %d steps", n)
	}
}

func TestBoundedIntStaysInRange(t *testing.T) {
	s := newRandStream(1331, 0)
	for i := 0; i < 10000; i++ {
		v := s.boundedInt(10, 20)
		require.GreaterOrEqual(t, v, int64(10))
		require.LessOrEqual(t, v, int64(20))
	}

	s64 := newRandStream64(1331, 0)
	for i := 0; i < 10000; i++ {
		v := s64.boundedInt(1, 7)
		require.GreaterOrEqual(t, v, int64(1))
		require.LessOrEqual(t, v, int64(7))
	}
}
