package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(soldiers []*Soldier) []string {
	out := make([]string, 0, len(soldiers))
	for _, s := range soldiers {
		out = append(out, s.Name)
	}
	return out
}

func TestNormalizeDropsEmptySlotsAndSortsStably(t *testing.T) {
	slots := []*Soldier{
		nil,
		soldier(RankCorporal, "a"),
		soldier(RankSergeant, "b"),
		nil,
		soldier(RankCorporal, "c"),
		soldier(RankPrivateRecruit, "d"),
		soldier(RankPrivateFirst, "e"),
	}

	roster := Normalize(slots)

	assert.Equal(t, 5, roster.Len())
	assert.Equal(t, []string{"b", "a", "c", "e", "d"}, names(roster.Soldiers()))

	s, ok := roster.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, RankCorporal, s.Rank)

	_, ok = roster.Lookup("zzz")
	assert.False(t, ok)
}

func TestNormalizeKeepsUnknownRanksLast(t *testing.T) {
	roster := Normalize([]*Soldier{
		soldier("하사", "x"),
		soldier(RankPrivateRecruit, "y"),
	})
	assert.Equal(t, []string{"y", "x"}, names(roster.Soldiers()))
}

func TestNormalizeIndexKeepsFirstDuplicate(t *testing.T) {
	first := soldier(RankCorporal, "dup")
	second := soldier(RankSergeant, "dup")
	roster := Normalize([]*Soldier{first, second})

	assert.Equal(t, 2, roster.Len())
	got, ok := roster.Lookup("dup")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestResolveDropsUnknownNamesAndSortsByRank(t *testing.T) {
	roster := Normalize([]*Soldier{
		soldier(RankPrivateFirst, "kim"),
		soldier(RankSergeant, "lee"),
		soldier(RankCorporal, "park"),
	})

	got := roster.Resolve([]string{"kim", "ghost", "lee", "Park"})
	assert.Equal(t, []string{"lee", "kim"}, names(got))

	assert.Empty(t, roster.Resolve(nil))
}

func TestResolveKeepsMemberOrderWithinRank(t *testing.T) {
	roster := Normalize([]*Soldier{
		soldier(RankCorporal, "a"),
		soldier(RankSergeant, "b"),
		soldier(RankSergeant, "c"),
	})

	got := roster.Resolve([]string{"c", "b", "a"})
	assert.Equal(t, []string{"c", "b", "a"}, names(got))
	assert.Equal(t, "병장 c, b, 상병 a", FormatMembers(got))

	got = roster.Resolve([]string{"a", "b", "c"})
	assert.Equal(t, []string{"b", "c", "a"}, names(got))
}

func TestNormalizeKeepsSlotOrderView(t *testing.T) {
	roster := Normalize([]*Soldier{
		soldier(RankPrivateRecruit, "x"),
		nil,
		soldier(RankSergeant, "y"),
	})

	assert.Equal(t, []string{"y", "x"}, names(roster.Soldiers()))
	assert.Equal(t, []string{"x", "y"}, names(roster.InSlotOrder()))
}
