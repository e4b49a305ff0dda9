package list_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specterops/collections/collection"
	"github.com/specterops/collections/list"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestArrayList_InsertAtFront(t *testing.T) {
	values := list.NewArrayList[int]()

	require.NoError(t, values.Insert(0, 5))
	require.NoError(t, values.Insert(0, 7))
	require.NoError(t, values.Insert(0, 9))
	require.Equal(t, []int{9, 7, 5}, values.ToSlice())

	removed, err := values.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, 7, removed)
	require.Equal(t, 2, values.Len())
	require.Equal(t, []int{9, 5}, values.ToSlice())
}

func TestArrayList_IndexErrors(t *testing.T) {
	values, err := list.NewArrayListFrom[int](collection.Of(1, 2, 3))
	require.NoError(t, err)

	_, err = values.Get(3)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)

	_, err = values.Get(-1)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)

	_, err = values.Set(5, 1)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)

	require.ErrorIs(t, values.Insert(4, 1), collection.ErrIndexOutOfRange)
	require.NoError(t, values.Insert(3, 4))

	_, err = values.RemoveAt(4)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)

	require.ErrorIs(t, values.RemoveRange(2, 1), collection.ErrIndexOutOfRange)

	_, err = values.AddAll(nil)
	require.ErrorIs(t, err, collection.ErrNullArgument)

	_, err = list.NewArrayListFrom[int](nil)
	require.ErrorIs(t, err, collection.ErrNullArgument)
}

func TestArrayList_SetIsNotStructural(t *testing.T) {
	values, err := list.NewArrayListFrom[string](collection.Of("a", "b", "c"))
	require.NoError(t, err)

	cursor := values.Cursor()
	require.True(t, cursor.Next())

	previous, err := values.Set(1, "x")
	require.NoError(t, err)
	require.Equal(t, "b", previous)

	require.True(t, cursor.Next())
	require.Equal(t, "x", cursor.Value())
	require.NoError(t, cursor.Err())
}

func TestArrayList_FailFast(t *testing.T) {
	values, err := list.NewArrayListFrom[int](collection.Of(1, 2, 3))
	require.NoError(t, err)

	cursor := values.Cursor()
	require.True(t, cursor.Next())

	_, err = values.Add(4)
	require.NoError(t, err)

	require.False(t, cursor.Next())
	require.ErrorIs(t, cursor.Err(), collection.ErrStructuralConflict)
	require.ErrorIs(t, cursor.Remove(), collection.ErrStructuralConflict)
}

func TestArrayList_EmptyBulkInsertDoesNotBumpStamp(t *testing.T) {
	values, err := list.NewArrayListFrom[int](collection.Of(1, 2, 3))
	require.NoError(t, err)

	cursor := values.Cursor()

	added, err := values.AddAll(collection.Of[int]())
	require.NoError(t, err)
	require.False(t, added)

	added, err = values.AddAllAt(1, collection.Of[int]())
	require.NoError(t, err)
	require.False(t, added)

	require.True(t, cursor.Next())
	require.NoError(t, cursor.Err())
}

func TestArrayList_CursorRemoval(t *testing.T) {
	values, err := list.NewArrayListFrom[int](collection.Of(1, 2, 3, 4, 5, 6))
	require.NoError(t, err)

	cursor := values.Cursor()
	require.ErrorIs(t, cursor.Remove(), collection.ErrInvalidIteratorState)

	for cursor.Next() {
		if cursor.Value()%2 == 0 {
			require.NoError(t, cursor.Remove())
			require.ErrorIs(t, cursor.Remove(), collection.ErrInvalidIteratorState)
		}
	}

	require.NoError(t, cursor.Err())
	require.Equal(t, []int{1, 3, 5}, values.ToSlice())
}

func TestArrayList_ListCursor(t *testing.T) {
	values, err := list.NewArrayListFrom[string](collection.Of("a", "c"))
	require.NoError(t, err)

	cursor, err := values.ListCursor(1)
	require.NoError(t, err)
	require.Equal(t, 1, cursor.NextIndex())
	require.Equal(t, 0, cursor.PreviousIndex())

	require.NoError(t, cursor.Add("b"))
	require.ErrorIs(t, cursor.Remove(), collection.ErrInvalidIteratorState)
	require.Equal(t, []string{"a", "b", "c"}, values.ToSlice())

	require.True(t, cursor.Previous())
	require.Equal(t, "b", cursor.Value())
	require.NoError(t, cursor.Set("B"))

	require.True(t, cursor.Previous())
	require.Equal(t, "a", cursor.Value())
	require.False(t, cursor.HasPrevious())
	require.NoError(t, cursor.Remove())

	require.Equal(t, []string{"B", "c"}, values.ToSlice())

	_, err = values.ListCursor(3)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)
}

func TestArrayList_AddAllAtSelf(t *testing.T) {
	values, err := list.NewArrayListFrom[int](collection.Of(1, 2, 3))
	require.NoError(t, err)

	added, err := values.AddAllAt(1, values)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, []int{1, 1, 2, 3, 2, 3}, values.ToSlice())
}

func TestArrayList_RemoveAllRetainAll(t *testing.T) {
	values, err := list.NewArrayListFrom[int](collection.Of(1, 2, 3, 4, 2, 5))
	require.NoError(t, err)

	other, err := list.NewArrayListFrom[int](collection.Of(2, 5))
	require.NoError(t, err)

	removed, err := values.RemoveAll(other)
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, []int{1, 3, 4}, values.ToSlice())

	retained, err := values.RetainAll(other)
	require.NoError(t, err)
	require.True(t, retained)
	require.True(t, values.IsEmpty())
}

func TestArrayList_ClearResetsWindow(t *testing.T) {
	values := list.NewArrayListWithCapacity[int](4)

	for idx := 0; idx < 20; idx++ {
		require.NoError(t, values.Insert(0, idx))
	}

	values.Clear()
	require.Equal(t, 0, values.Len())
	require.Equal(t, "[]", values.String())

	_, err := values.Add(1)
	require.NoError(t, err)
	require.Equal(t, "[1]", values.String())
}

func TestArrayList_CapacityManagement(t *testing.T) {
	values := list.NewArrayListWithCapacity[int](-1)
	require.Equal(t, 0, values.Cap())

	values.EnsureCapacity(40)
	require.GreaterOrEqual(t, values.Cap(), 40)

	for idx := 0; idx < 5; idx++ {
		values.Add(idx)
	}

	values.TrimToSize()
	require.Equal(t, 5, values.Cap())
	require.Equal(t, []int{0, 1, 2, 3, 4}, values.ToSlice())
}

func TestArrayList_EnsureCapacityWithFreeSlots(t *testing.T) {
	values := list.NewArrayListWithCapacity[int](10)
	values.Add(1)
	values.Add(2)

	values.EnsureCapacity(15)
	require.Equal(t, 15, values.Cap())
	require.Equal(t, []int{1, 2}, values.ToSlice())

	values.EnsureCapacity(4)
	require.Equal(t, 15, values.Cap())

	// An occupied window that does not start at the front of the slice
	_, err := values.RemoveAt(0)
	require.NoError(t, err)

	values.EnsureCapacity(20)
	require.Equal(t, 20, values.Cap())
	require.Equal(t, []int{2}, values.ToSlice())

	require.NoError(t, values.Insert(0, 0))
	values.Add(3)
	require.Equal(t, []int{0, 2, 3}, values.ToSlice())
	require.Equal(t, 20, values.Cap())
}

func TestArrayList_EqualityAndFormat(t *testing.T) {
	arrayList, err := list.NewArrayListFrom[int](collection.Of(1, 2, 3))
	require.NoError(t, err)

	linkedList, err := list.NewLinkedListFrom[int](collection.Of(1, 2, 3))
	require.NoError(t, err)

	require.True(t, arrayList.Equal(linkedList))
	require.Equal(t, arrayList.Hash(), linkedList.Hash())
	require.Equal(t, "[1, 2, 3]", arrayList.String())

	clone := arrayList.Clone()
	clone.Add(4)
	require.False(t, arrayList.Equal(clone))
	require.Equal(t, 3, arrayList.Len())
}

func TestArrayList_SelfReferenceFormat(t *testing.T) {
	values := list.NewArrayList[any]()
	values.Add(1)
	values.Add(values)

	require.Equal(t, "[1, (this Collection)]", values.String())
}

func TestArrayList_Model(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			values = list.NewArrayListWithCapacity[int](rapid.IntRange(0, 4).Draw(t, "capacity"))
			model  []int
		)

		t.Repeat(map[string]func(*rapid.T){
			"": func(t *rapid.T) {
				if diff := cmp.Diff(model, values.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("list diverged from model (-want +got):\n%s", diff)
				}

				if values.Len() != len(collection.ToSlice[int](values)) {
					t.Fatalf("size %d does not match traversal", values.Len())
				}
			},
			"Add": func(t *rapid.T) {
				value := rapid.Int().Draw(t, "value")

				values.Add(value)
				model = append(model, value)
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
					inserted = rapid.SliceOfN(rapid.Int(), 0, 30).Draw(t, "inserted")
				)

				added, err := values.AddAllAt(index, collection.Of(inserted...))
				if err != nil {
					t.Fatal(err)
				}

				if added != (len(inserted) > 0) {
					t.Fatalf("unexpected add result %t for %d values", added, len(inserted))
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
			"RemoveRange": func(t *rapid.T) {
				var (
					start = rapid.IntRange(0, len(model)).Draw(t, "start")
					end   = rapid.IntRange(start, len(model)).Draw(t, "end")
				)

				if err := values.RemoveRange(start, end); err != nil {
					t.Fatal(err)
				}

				model = append(model[:start], model[end:]...)
			},
			"Clear": func(t *rapid.T) {
				values.Clear()
				model = nil
			},
		})
	})
}

func TestArrayList_ErrorsAreSentinels(t *testing.T) {
	values := list.NewArrayList[int]()

	_, err := values.Get(0)
	require.True(t, errors.Is(err, collection.ErrIndexOutOfRange))
}
