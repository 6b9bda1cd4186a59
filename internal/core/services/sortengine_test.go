package services

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// randomItems builds n items with small value ranges so ties are common.
func randomItems(r *rand.Rand, n int) []domain.Item {
	titles := []string{"", "Go", "React", "Redux", "rust", "Zig"}
	authors := []string{"", "alice", "Bob", "carol"}
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{
			Title:       titles[r.Intn(len(titles))],
			Author:      authors[r.Intn(len(authors))],
			NumComments: r.Intn(4),
			Points:      r.Intn(7) - 3,
			ObjectID:    fmt.Sprintf("%d", i),
		}
	}
	return items
}

// insertionSort is an independent stable ascending sort used as an oracle.
func insertionSort(items []domain.Item, less func(a, b domain.Item) bool) []domain.Item {
	out := domain.CloneItems(items)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func reversed(items []domain.Item) []domain.Item {
	out := domain.CloneItems(items)
	reverseItems(out)
	return out
}

var lessByKey = map[domain.SortKey]func(a, b domain.Item) bool{
	domain.SortTitle:   func(a, b domain.Item) bool { return a.Title < b.Title },
	domain.SortAuthor:  func(a, b domain.Item) bool { return a.Author < b.Author },
	domain.SortComment: func(a, b domain.Item) bool { return a.NumComments < b.NumComments },
	domain.SortPoint:   func(a, b domain.Item) bool { return a.Points < b.Points },
}

func TestSortItems_NoneIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 20; n++ {
		items := randomItems(r, n)
		assert.Equal(t, items, SortItems(items, domain.SortNone))
	}
}

func TestSortItems_AscendingKeysAreStable(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, key := range []domain.SortKey{domain.SortTitle, domain.SortAuthor} {
		for n := 0; n < 30; n++ {
			items := randomItems(r, n)

			got := SortItems(items, key)

			assert.Equal(t, insertionSort(items, lessByKey[key]), got, "%s n=%d", key, n)
		}
	}
}

func TestSortItems_DescendingKeysReverseStableAscending(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, key := range []domain.SortKey{domain.SortComment, domain.SortPoint} {
		for n := 0; n < 30; n++ {
			items := randomItems(r, n)

			got := SortItems(items, key)

			assert.Equal(t, reversed(insertionSort(items, lessByKey[key])), got, "%s n=%d", key, n)
		}
	}
}

func TestSortItems_DescendingTiesComeOutReversed(t *testing.T) {
	items := []domain.Item{
		{ObjectID: "a", NumComments: 1},
		{ObjectID: "b", NumComments: 1},
		{ObjectID: "c", NumComments: 2},
	}

	got := SortItems(items, domain.SortComment)

	assert.Equal(t, []string{"c", "b", "a"}, objectIDs(got))
}

func TestSortItems_IdempotentOnKeyOrder(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	project := map[domain.SortKey]func(domain.Item) string{
		domain.SortNone:    func(i domain.Item) string { return i.ObjectID },
		domain.SortTitle:   func(i domain.Item) string { return i.Title },
		domain.SortAuthor:  func(i domain.Item) string { return i.Author },
		domain.SortComment: func(i domain.Item) string { return fmt.Sprint(i.NumComments) },
		domain.SortPoint:   func(i domain.Item) string { return fmt.Sprint(i.Points) },
	}

	for _, key := range domain.SortKeys() {
		for n := 0; n < 20; n++ {
			items := randomItems(r, n)

			once := SortItems(items, key)
			twice := SortItems(once, key)

			keysOf := func(list []domain.Item) []string {
				out := make([]string, len(list))
				for i := range list {
					out[i] = project[key](list[i])
				}
				return out
			}
			assert.Equal(t, keysOf(once), keysOf(twice), "%s n=%d", key, n)
		}
	}
}

func TestSortItems_FullyIdempotentForAscendingKeys(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, key := range []domain.SortKey{domain.SortNone, domain.SortTitle, domain.SortAuthor} {
		items := randomItems(r, 25)
		once := SortItems(items, key)
		assert.Equal(t, once, SortItems(once, key), key.String())
	}
}

func TestSortItems_DoesNotMutateInput(t *testing.T) {
	items := reactItems()
	reverseInput := []domain.Item{items[1], items[0]}
	snapshot := domain.CloneItems(reverseInput)

	for _, key := range domain.SortKeys() {
		out := SortItems(reverseInput, key)
		require.Len(t, out, 2)
		out[0].Title = "mutated"
		assert.Equal(t, snapshot, reverseInput, key.String())
	}
}

func TestSortItems_ReturnsNewSliceForEmptyInput(t *testing.T) {
	out := SortItems(nil, domain.SortTitle)

	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSortItems_EmptyTextSortsFirst(t *testing.T) {
	items := []domain.Item{
		{ObjectID: "1", Title: "beta"},
		{ObjectID: "2", Title: ""},
		{ObjectID: "3", Title: "Alpha"},
	}

	got := SortItems(items, domain.SortTitle)

	// Byte-wise: "" < "Alpha" < "beta".
	assert.Equal(t, []string{"2", "3", "1"}, objectIDs(got))
}

func TestSortItems_UnknownKeyIsPassThrough(t *testing.T) {
	items := reactItems()

	assert.Equal(t, items, SortItems(items, domain.SortKey(42)))
}

func TestSortItems_CommentAndPointScenario(t *testing.T) {
	items := reactItems()

	byComment := SortItems(items, domain.SortComment)
	assert.Equal(t, 3, byComment[0].NumComments)
	assert.Equal(t, 2, byComment[1].NumComments)

	byPoint := SortItems(items, domain.SortPoint)
	assert.Equal(t, 5, byPoint[0].Points)
	assert.Equal(t, 4, byPoint[1].Points)
}

func TestSortItems_NegativePoints(t *testing.T) {
	items := []domain.Item{
		{ObjectID: "a", Points: -2},
		{ObjectID: "b", Points: 10},
		{ObjectID: "c", Points: 0},
	}

	got := SortItems(items, domain.SortPoint)

	assert.Equal(t, []string{"b", "c", "a"}, objectIDs(got))
}

func TestSortItemsByState(t *testing.T) {
	items := reactItems()

	tests := []struct {
		name     string
		state    domain.SortState
		expected []string
	}{
		{"none", domain.SortState{}, []string{"0", "1"}},
		{"none ignores reversed", domain.SortState{Reversed: true}, []string{"0", "1"}},
		{"title", domain.SortState{Key: domain.SortTitle}, []string{"0", "1"}},
		{"title reversed", domain.SortState{Key: domain.SortTitle, Reversed: true}, []string{"1", "0"}},
		{"point", domain.SortState{Key: domain.SortPoint}, []string{"1", "0"}},
		{"point reversed", domain.SortState{Key: domain.SortPoint, Reversed: true}, []string{"0", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, objectIDs(SortItemsByState(items, tt.state)))
		})
	}
}
