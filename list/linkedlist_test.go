package list_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specterops/collections/collection"
	"github.com/specterops/collections/list"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLinkedList_EmptyAccess(t *testing.T) {
	values := list.NewLinkedList[int]()

	_, err := values.GetFirst()
	require.ErrorIs(t, err, collection.ErrNoSuchElement)

	_, err = values.GetLast()
	require.ErrorIs(t, err, collection.ErrNoSuchElement)

	_, err = values.RemoveFirst()
	require.ErrorIs(t, err, collection.ErrNoSuchElement)

	_, err = values.RemoveLast()
	require.ErrorIs(t, err, collection.ErrNoSuchElement)

	_, err = values.RemoveHead()
	require.ErrorIs(t, err, collection.ErrNoSuchElement)

	_, err = values.Element()
	require.ErrorIs(t, err, collection.ErrNoSuchElement)

	_, err = values.Pop()
	require.ErrorIs(t, err, collection.ErrNoSuchElement)

	_, found := values.Poll()
	require.False(t, found)

	_, found = values.Peek()
	require.False(t, found)

	_, err = values.Get(0)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)
}

func TestLinkedList_QueueAndDeque(t *testing.T) {
	values := list.NewLinkedList[string]()

	require.NoError(t, values.Offer("b"))
	values.OfferFirst("a")
	values.OfferLast("c")
	values.Push("z")

	require.Equal(t, []string{"z", "a", "b", "c"}, values.ToSlice())

	head, found := values.Peek()
	require.True(t, found)
	require.Equal(t, "z", head)

	last, found := values.PeekLast()
	require.True(t, found)
	require.Equal(t, "c", last)

	popped, err := values.Pop()
	require.NoError(t, err)
	require.Equal(t, "z", popped)

	polled, found := values.PollLast()
	require.True(t, found)
	require.Equal(t, "c", polled)

	element, err := values.Element()
	require.NoError(t, err)
	require.Equal(t, "a", element)

	require.Equal(t, "[a, b]", values.String())
}

func TestLinkedList_Occurrences(t *testing.T) {
	values, err := list.NewLinkedListFrom[int](collection.Of(1, 2, 3, 2, 1))
	require.NoError(t, err)

	require.Equal(t, 1, values.IndexOf(2))
	require.Equal(t, 3, values.LastIndexOf(2))
	require.Equal(t, -1, values.IndexOf(7))

	require.True(t, values.RemoveLastOccurrence(1))
	require.Equal(t, []int{1, 2, 3, 2}, values.ToSlice())

	require.True(t, values.RemoveFirstOccurrence(2))
	require.Equal(t, []int{1, 3, 2}, values.ToSlice())

	require.False(t, values.Remove(9))
}

func TestLinkedList_AddAllSelf(t *testing.T) {
	values, err := list.NewLinkedListFrom[int](collection.Of(1, 2, 3))
	require.NoError(t, err)

	added, err := values.AddAll(values)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, []int{1, 2, 3, 1, 2, 3}, values.ToSlice())

	added, err = values.AddAllAt(1, values)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 12, values.Len())
	require.Equal(t, []int{1, 1, 2, 3, 1, 2, 3, 2, 3, 1, 2, 3}, values.ToSlice())
}

func TestLinkedList_Cursor(t *testing.T) {
	values, err := list.NewLinkedListFrom[int](collection.Of(1, 2, 4))
	require.NoError(t, err)

	cursor, err := values.ListCursor(2)
	require.NoError(t, err)
	require.Equal(t, 2, cursor.NextIndex())

	require.NoError(t, cursor.Add(3))
	require.Equal(t, 3, cursor.NextIndex())
	require.Equal(t, []int{1, 2, 3, 4}, values.ToSlice())

	require.True(t, cursor.Next())
	require.Equal(t, 4, cursor.Value())
	require.False(t, cursor.HasNext())

	require.NoError(t, cursor.Remove())
	require.ErrorIs(t, cursor.Remove(), collection.ErrInvalidIteratorState)

	require.True(t, cursor.Previous())
	require.Equal(t, 3, cursor.Value())
	require.NoError(t, cursor.Set(30))

	require.True(t, cursor.Previous())
	require.NoError(t, cursor.Remove())

	require.Equal(t, []int{1, 30}, values.ToSlice())
	require.Equal(t, 1, cursor.NextIndex())
}

func TestLinkedList_DescendingCursor(t *testing.T) {
	values, err := list.NewLinkedListFrom[int](collection.Of(1, 2, 3, 4))
	require.NoError(t, err)

	var (
		cursor  = values.DescendingCursor()
		visited []int
	)

	for cursor.Next() {
		visited = append(visited, cursor.Value())

		if cursor.Value() == 3 {
			require.NoError(t, cursor.Remove())
		}
	}

	require.NoError(t, cursor.Err())
	require.Equal(t, []int{4, 3, 2, 1}, visited)
	require.Equal(t, []int{1, 2, 4}, values.ToSlice())

	cursor = values.DescendingCursor()
	require.True(t, cursor.Next())

	values.AddFirst(0)

	require.False(t, cursor.Next())
	require.ErrorIs(t, cursor.Err(), collection.ErrStructuralConflict)
}

func TestLinkedList_FailFast(t *testing.T) {
	values, err := list.NewLinkedListFrom[int](collection.Of(1, 2, 3))
	require.NoError(t, err)

	cursor := values.Cursor()
	require.True(t, cursor.Next())

	_, err = values.RemoveAt(2)
	require.NoError(t, err)

	require.False(t, cursor.Next())
	require.ErrorIs(t, cursor.Err(), collection.ErrStructuralConflict)
}

func TestLinkedList_Clone(t *testing.T) {
	values, err := list.NewLinkedListFrom[int](collection.Of(1, 2, 3))
	require.NoError(t, err)

	clone := values.Clone()
	require.True(t, values.Equal(clone))

	clone.Clear()
	require.True(t, clone.IsEmpty())
	require.Equal(t, 3, values.Len())
	require.Equal(t, []int{3, 2, 1}, collection.Reversed[int](values))
}

func TestLinkedList_Model(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			values = list.NewLinkedList[int]()
			model  []int
		)

		t.Repeat(map[string]func(*rapid.T){
			"": func(t *rapid.T) {
				if diff := cmp.Diff(model, values.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("list diverged from model (-want +got):\n%s", diff)
				}

				if reversed := collection.Reversed[int](values); len(reversed) != values.Len() {
					t.Fatalf("size %d does not match traversal length %d", values.Len(), len(reversed))
				}
			},
			"AddFirst": func(t *rapid.T) {
				value := rapid.Int().Draw(t, "value")

				values.AddFirst(value)
				model = append([]int{value}, model...)
			},
			"Insert": func(t *rapid.T) {
				var (
					index = rapid.IntRange(0, len(model)).Draw(t, "index")
					value = rapid.Int().Draw(t, "value")
				)

				if err := values.Insert(index, value); err != nil {
					t.Fatal(err)
				}

				model = append(model[:index], append([]int{value}, model[index:]...)...)
			},
			"AddAllAt": func(t *rapid.T) {
				var (
					index    = rapid.IntRange(0, len(model)).Draw(t, "index")
					inserted = rapid.SliceOfN(rapid.Int(), 0, 10).Draw(t, "inserted")
				)

				if _, err := values.AddAllAt(index, collection.Of(inserted...)); err != nil {
					t.Fatal(err)
				}

				model = append(model[:index], append(append([]int{}, inserted...), model[index:]...)...)
			},
			"RemoveAt": func(t *rapid.T) {
				if len(model) == 0 {
					t.Skip("empty")
				}

				index := rapid.IntRange(0, len(model)-1).Draw(t, "index")

				removed, err := values.RemoveAt(index)
				if err != nil {
					t.Fatal(err)
				}

				if removed != model[index] {
					t.Fatalf("removed %d but expected %d", removed, model[index])
				}

				model = append(model[:index], model[index+1:]...)
			},
			"PollLast": func(t *rapid.T) {
				value, found := values.PollLast()

				if found != (len(model) > 0) {
					t.Fatalf("unexpected poll result %t", found)
				}

				if found {
					if value != model[len(model)-1] {
						t.Fatalf("polled %d but expected %d", value, model[len(model)-1])
					}

					model = model[:len(model)-1]
				}
			},
		})
	})
}
