package hashmap_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/specterops/collections/collection"
	"github.com/specterops/collections/hashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func keysOf[K comparable, V any](m collection.Map[K, V]) []K {
	return collection.ToSlice[K](m.Keys())
}

func TestHashMap_PutGetDelete(t *testing.T) {
	m := hashmap.New[string, int]()

	_, replaced, err := m.Put("a", 1)
	require.NoError(t, err)
	require.False(t, replaced)

	previous, replaced, err := m.Put("a", 2)
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, 1, previous)

	value, found := m.Get("a")
	require.True(t, found)
	require.Equal(t, 2, value)

	_, found = m.Get("b")
	require.False(t, found)

	require.True(t, m.ContainsKey("a"))
	require.True(t, m.ContainsValue(2))
	require.False(t, m.ContainsValue(1))

	removed, found := m.Delete("a")
	require.True(t, found)
	require.Equal(t, 2, removed)
	require.True(t, m.IsEmpty())

	_, found = m.Delete("a")
	require.False(t, found)
}

func TestHashMap_Resize(t *testing.T) {
	m := hashmap.New[int, string](hashmap.WithCapacity(2), hashmap.WithLoadFactor(-1))

	for idx := 0; idx < 1000; idx++ {
		m.Put(idx, fmt.Sprint(idx))
	}

	require.Equal(t, 1000, m.Len())
	require.Equal(t, 1000, len(keysOf[int, string](m)))

	for idx := 0; idx < 1000; idx++ {
		value, found := m.Get(idx)
		require.True(t, found)
		require.Equal(t, fmt.Sprint(idx), value)
	}
}

func TestHashMap_ZeroValueKey(t *testing.T) {
	m := hashmap.New[*int, string]()

	m.Put(nil, "nil")
	value, found := m.Get(nil)

	require.True(t, found)
	require.Equal(t, "nil", value)
	require.True(t, m.Keys().Contains(nil))
}

func TestHashMap_KeyView(t *testing.T) {
	m := hashmap.New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	keys := m.Keys()
	require.Same(t, keys, m.Keys())
	require.Equal(t, 3, keys.Len())

	_, err := keys.Add("d")
	require.ErrorIs(t, err, collection.ErrUnsupportedOperation)

	require.True(t, keys.Remove("b"))
	require.False(t, m.ContainsKey("b"))

	cursor := keys.Cursor()
	for cursor.Next() {
		if cursor.Value() == "a" {
			require.NoError(t, cursor.Remove())
		}
	}

	require.NoError(t, cursor.Err())
	require.Equal(t, []string{"c"}, keysOf[string, int](m))

	m.Put("x", 4)
	require.Equal(t, 2, keys.Len())
}

func TestHashMap_ValueView(t *testing.T) {
	m := hashmap.NewLinked[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 1)

	values := m.Values()
	require.True(t, values.Contains(2))
	require.True(t, values.Remove(1))
	require.Equal(t, []string{"b", "c"}, keysOf[string, int](m))

	values.Clear()
	require.True(t, m.IsEmpty())
}

func TestHashMap_EntrySetValue(t *testing.T) {
	m := hashmap.NewLinked[string, int]()
	m.Put("a", 1)

	cursor := m.Entries().Cursor()
	require.True(t, cursor.Next())

	previous := cursor.Value().SetValue(10)
	require.Equal(t, 1, previous)

	value, _ := m.Get("a")
	require.Equal(t, 10, value)

	require.False(t, cursor.Next())
	require.NoError(t, cursor.Err())
}

func TestHashMap_FailFast(t *testing.T) {
	m := hashmap.New[int, int]()
	m.Put(1, 1)
	m.Put(2, 2)

	cursor := m.Entries().Cursor()
	require.True(t, cursor.Next())

	m.Put(3, 3)

	require.False(t, cursor.Next())
	require.ErrorIs(t, cursor.Err(), collection.ErrStructuralConflict)
	require.ErrorIs(t, cursor.Remove(), collection.ErrStructuralConflict)
}

func TestHashMap_CursorRemoval(t *testing.T) {
	m := hashmap.New[int, int](hashmap.WithCapacity(4))

	for idx := 0; idx < 50; idx++ {
		m.Put(idx, idx)
	}

	cursor := m.Entries().Cursor()
	require.ErrorIs(t, cursor.Remove(), collection.ErrInvalidIteratorState)

	visited := 0
	for cursor.Next() {
		visited++

		if cursor.Value().Key()%2 == 0 {
			require.NoError(t, cursor.Remove())
			require.ErrorIs(t, cursor.Remove(), collection.ErrInvalidIteratorState)
		}
	}

	require.NoError(t, cursor.Err())
	require.Equal(t, 50, visited)
	require.Equal(t, 25, m.Len())

	for _, key := range keysOf[int, int](m) {
		require.Equal(t, 1, key%2)
	}
}

func TestHashMap_EqualityAndFormat(t *testing.T) {
	var (
		plain  = hashmap.New[string, []int]()
		linked = hashmap.NewLinked[string, []int]()
	)

	plain.Put("a", []int{1})
	linked.Put("a", []int{1})

	require.True(t, plain.Equal(linked))
	require.True(t, collection.MapEquals[string, []int](linked, plain))
	require.Equal(t, plain.Hash(), linked.Hash())
	require.Equal(t, "{a=[1]}", linked.String())

	linked.Put("b", nil)
	require.False(t, plain.Equal(linked))

	plain.Put("c", nil)
	require.False(t, plain.Equal(linked))
}

func TestHashMap_SelfReferenceFormat(t *testing.T) {
	m := hashmap.NewLinked[string, any]()
	m.Put("self", m)

	require.Equal(t, "{self=(this Map)}", m.String())
}

func TestHashMap_Clone(t *testing.T) {
	m := hashmap.New[int, int]()
	m.Put(1, 1)
	m.Put(2, 2)

	clone := m.Clone()
	require.True(t, m.Equal(clone))

	clone.Delete(1)
	require.Equal(t, 2, m.Len())
	require.Equal(t, 1, clone.Len())
}

func TestHashMap_NewFrom(t *testing.T) {
	source := hashmap.NewLinked[string, int]()
	source.Put("x", 1)
	source.Put("y", 2)

	copied, err := hashmap.NewFrom[string, int](source)
	require.NoError(t, err)
	require.True(t, copied.Equal(source))

	_, err = hashmap.NewFrom[string, int](nil)
	require.ErrorIs(t, err, collection.ErrNullArgument)
}

func TestHashMap_Model(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			m     = hashmap.New[int, int](hashmap.WithCapacity(rapid.IntRange(0, 64).Draw(t, "capacity")))
			model = map[int]int{}
			keys  = rapid.IntRange(-50, 50)
		)

		t.Repeat(map[string]func(*rapid.T){
			"": func(t *rapid.T) {
				if m.Len() != len(model) {
					t.Fatalf("size %d does not match model size %d", m.Len(), len(model))
				}

				actual := keysOf[int, int](m)
				sort.Ints(actual)

				if len(actual) != len(model) {
					t.Fatalf("traversal yielded %d keys but model has %d", len(actual), len(model))
				}

				for _, key := range actual {
					if value, found := m.Get(key); !found || value != model[key] {
						t.Fatalf("key %d maps to %d, expected %d", key, value, model[key])
					}
				}
			},
			"Put": func(t *rapid.T) {
				var (
					key   = keys.Draw(t, "key")
					value = rapid.Int().Draw(t, "value")
				)

				previous, replaced, _ := m.Put(key, value)
				expected, existed := model[key]

				if replaced != existed || (existed && previous != expected) {
					t.Fatalf("put returned (%d, %t) but model held (%d, %t)", previous, replaced, expected, existed)
				}

				model[key] = value
			},
			"Delete": func(t *rapid.T) {
				key := keys.Draw(t, "key")

				_, deleted := m.Delete(key)
				if _, existed := model[key]; existed != deleted {
					t.Fatalf("delete of %d returned %t", key, deleted)
				}

				delete(model, key)
			},
			"Clear": func(t *rapid.T) {
				m.Clear()
				clear(model)
			},
		})
	})
}

func TestHashMap_InvalidOptions(t *testing.T) {
	m := hashmap.New[int, int](hashmap.WithCapacity(-10), hashmap.WithLoadFactor(0))
	m.Put(1, 1)

	assert.Equal(t, 1, m.Len())
}
