package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

func outputIDs(out ViewOutput) []string {
	ids := make([]string, len(out.Items))
	for i, item := range out.Items {
		ids[i] = item.ObjectID
	}
	return ids
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the fetched list", func(t *testing.T) {
		server, err := newTestServer(&mockItemSource{items: testItems()}, nil)
		require.NoError(t, err)

		_, out, err := server.handleSearch(ctx, nil, SearchInput{Term: "react"})

		require.NoError(t, err)
		assert.Equal(t, "react", out.Term)
		assert.Equal(t, "resolved", out.Status)
		assert.Equal(t, "NONE", out.Sort)
		assert.Equal(t, 3, out.Count)
		assert.Equal(t, []string{"0", "1", "2"}, outputIDs(out))
		assert.Equal(t, "https://react.dev", out.Items[0].URL)
	})

	t.Run("returns error on fetch failure", func(t *testing.T) {
		server, err := newTestServer(&mockItemSource{err: domain.ErrTransport}, nil)
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Term: "react"})

		assert.ErrorIs(t, err, domain.ErrTransport)
	})

	t.Run("empty term is rejected", func(t *testing.T) {
		server, err := newTestServer(&mockItemSource{}, nil)
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Term: " "})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleSort(t *testing.T) {
	ctx := context.Background()
	server, err := newTestServer(&mockItemSource{items: testItems()}, nil)
	require.NoError(t, err)
	_, _, err = server.handleSearch(ctx, nil, SearchInput{Term: "react"})
	require.NoError(t, err)

	_, out, err := server.handleSort(ctx, nil, SortInput{Key: "point"})
	require.NoError(t, err)
	assert.Equal(t, "POINT", out.Sort)
	assert.False(t, out.Ascending)
	assert.Equal(t, []string{"1", "0", "2"}, outputIDs(out))

	_, out, err = server.handleSort(ctx, nil, SortInput{Key: "POINT"})
	require.NoError(t, err)
	assert.True(t, out.Ascending)
	assert.Equal(t, []string{"2", "0", "1"}, outputIDs(out))

	_, _, err = server.handleSort(ctx, nil, SortInput{Key: "POINTS"})
	assert.ErrorIs(t, err, domain.ErrUnknownSortKey)
}

func TestServer_handleSortNoneResetsOrder(t *testing.T) {
	ctx := context.Background()
	server, err := newTestServer(&mockItemSource{items: testItems()}, nil)
	require.NoError(t, err)
	_, _, err = server.handleSearch(ctx, nil, SearchInput{Term: "react"})
	require.NoError(t, err)

	_, _, err = server.handleSort(ctx, nil, SortInput{Key: "point"})
	require.NoError(t, err)

	for range 2 {
		_, out, err := server.handleSort(ctx, nil, SortInput{Key: "none"})
		require.NoError(t, err)
		assert.Equal(t, "NONE", out.Sort)
		assert.Equal(t, []string{"0", "1", "2"}, outputIDs(out))
	}
}

func TestServer_handleRemove(t *testing.T) {
	ctx := context.Background()
	server, err := newTestServer(&mockItemSource{items: testItems()}, nil)
	require.NoError(t, err)
	_, _, err = server.handleSearch(ctx, nil, SearchInput{Term: "react"})
	require.NoError(t, err)

	_, out, err := server.handleRemove(ctx, nil, RemoveInput{ObjectID: "0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, outputIDs(out))

	_, out, err = server.handleRemove(ctx, nil, RemoveInput{ObjectID: "0"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
}

func TestToViewOutput_Error(t *testing.T) {
	out := toViewOutput(domain.ViewState{
		Fetch: domain.FetchState{Status: domain.FetchRejected, Term: "x", Err: domain.ErrMalformedResponse},
	})

	assert.Equal(t, "rejected", out.Status)
	assert.Equal(t, domain.ErrMalformedResponse.Error(), out.Error)
	assert.NotNil(t, out.Items)
}
