package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearchService(t *testing.T) *Service {
	t.Helper()
	s := NewService(NewMemoryRepository())
	ctx := context.Background()

	seeds := []CreateInput{
		{Title: "Moskvich 412", Description: "compact sedan", Tags: []string{"classic", "sedan"}},
		{Title: "Niva 4x4", Description: "off-road workhorse", Tags: []string{"offroad"}},
		{Title: "Volga GAZ-24", Description: "the executive SEDAN", Tags: []string{"classic"}},
	}
	for _, in := range seeds {
		_, err := s.Create(ctx, "u1", in)
		require.NoError(t, err)
	}

	// another tenant's record must never surface
	_, err := s.Create(ctx, "u2", CreateInput{Title: "Moskvich 412", Description: "x", Tags: []string{"classic"}})
	require.NoError(t, err)

	return s
}

func titles(list []*Record) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.Title)
	}
	return out
}

func TestSearch_EmptyFiltersReturnEverything(t *testing.T) {
	s := seedSearchService(t)

	all, err := s.List(context.Background(), "u1")
	require.NoError(t, err)

	found, err := s.Search(context.Background(), "u1", "", nil)
	require.NoError(t, err)
	assert.Equal(t, titles(all), titles(found))
}

func TestSearch_TextIsCaseInsensitiveSubstring(t *testing.T) {
	s := seedSearchService(t)
	ctx := context.Background()

	found, err := s.Search(ctx, "u1", "moskvich", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Moskvich 412"}, titles(found))

	// matches inside the description regardless of case
	found, err = s.Search(ctx, "u1", "sedan", nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Moskvich 412", "Volga GAZ-24"}, titles(found))

	// matches inside a tag
	found, err = s.Search(ctx, "u1", "OFFROAD", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Niva 4x4"}, titles(found))

	found, err = s.Search(ctx, "u1", "no such thing", nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSearch_TagFilterIsExactAndConjunctive(t *testing.T) {
	s := seedSearchService(t)
	ctx := context.Background()

	found, err := s.Search(ctx, "u1", "", []string{"classic"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Moskvich 412", "Volga GAZ-24"}, titles(found))

	// every requested tag must be present
	found, err = s.Search(ctx, "u1", "", []string{"classic", "sedan"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Moskvich 412"}, titles(found))

	// tag matching is case-sensitive, unlike the text predicate
	found, err = s.Search(ctx, "u1", "", []string{"Classic"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSearch_CombinedFiltersPreserveListOrder(t *testing.T) {
	s := seedSearchService(t)
	ctx := context.Background()

	all, err := s.List(ctx, "u1")
	require.NoError(t, err)

	found, err := s.Search(ctx, "u1", "sedan", []string{"classic"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Moskvich 412", "Volga GAZ-24"}, titles(found))

	// the survivors appear in the same relative order as the full list
	idx := map[string]int{}
	for i, r := range all {
		idx[r.ID] = i
	}
	for i := 1; i < len(found); i++ {
		assert.Less(t, idx[found[i-1].ID], idx[found[i].ID])
	}
}

func TestSearch_ScopedToOwner(t *testing.T) {
	s := seedSearchService(t)

	found, err := s.Search(context.Background(), "u2", "moskvich", nil)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "u2", found[0].OwnerID)
}
