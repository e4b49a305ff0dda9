package pqueue_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specterops/collections/collection"
	"github.com/specterops/collections/list"
	"github.com/specterops/collections/pqueue"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPriorityQueue_NaturalOrder(t *testing.T) {
	queue := pqueue.New[int]()

	for _, value := range []int{5, 1, 4, 2, 3} {
		require.NoError(t, queue.Offer(value))
	}

	head, found := queue.Peek()
	require.True(t, found)
	require.Equal(t, 1, head)
	require.Equal(t, 5, queue.Len())

	require.Equal(t, []int{1, 2, 3, 4, 5}, queue.Drain())
	require.True(t, queue.IsEmpty())

	_, found = queue.Poll()
	require.False(t, found)

	_, err := queue.RemoveHead()
	require.ErrorIs(t, err, collection.ErrNoSuchElement)

	_, err = queue.Element()
	require.ErrorIs(t, err, collection.ErrNoSuchElement)
}

func TestPriorityQueue_Comparator(t *testing.T) {
	_, err := pqueue.NewFunc[string](nil)
	require.ErrorIs(t, err, collection.ErrNullArgument)

	queue, err := pqueue.NewFunc(func(a, b string) int {
		return len(b) - len(a)
	})
	require.NoError(t, err)

	for _, value := range []string{"a", "abc", "ab", "abcd"} {
		added, err := queue.Add(value)
		require.NoError(t, err)
		require.True(t, added)
	}

	head, err := queue.Element()
	require.NoError(t, err)
	require.Equal(t, "abcd", head)
	require.NotNil(t, queue.Comparator())

	copied, err := pqueue.NewFrom[string](queue)
	require.NoError(t, err)
	require.Equal(t, []string{"abcd", "abc", "ab", "a"}, copied.Drain())
	require.Equal(t, 4, queue.Len())
}

type version struct {
	major, minor int
}

func (s version) CompareTo(other version) int {
	if s.major != other.major {
		return s.major - other.major
	}

	return s.minor - other.minor
}

func TestPriorityQueue_NaturalOrderingAtRuntime(t *testing.T) {
	versions := pqueue.NewNatural[version]()
	require.Nil(t, versions.Comparator())

	require.NoError(t, versions.Offer(version{2, 1}))
	require.NoError(t, versions.Offer(version{1, 9}))
	require.NoError(t, versions.Offer(version{2, 0}))

	require.Equal(t, []version{{1, 9}, {2, 0}, {2, 1}}, versions.Drain())

	values := pqueue.NewNatural[any]()
	require.NoError(t, values.Offer(10))
	require.NoError(t, values.Offer(3))

	// Mismatched dynamic types fail on the first comparison and leave the queue untouched
	require.ErrorIs(t, values.Offer(1.5), collection.ErrIncompatibleType)
	require.ErrorIs(t, values.Offer(struct{}{}), collection.ErrIncompatibleType)
	require.Equal(t, 2, values.Len())

	require.ErrorIs(t, values.Offer(nil), collection.ErrNullArgument)

	empty := pqueue.NewNatural[any]()
	require.ErrorIs(t, empty.Offer(struct{}{}), collection.ErrIncompatibleType)
	require.True(t, empty.IsEmpty())

	head, found := values.Poll()
	require.True(t, found)
	require.Equal(t, 3, head)
}

type priority int

// weight orders itself against plain ints too, which ints can not reciprocate.
type weight struct {
	value int
}

func (s weight) CompareTo(other any) int {
	switch typed := other.(type) {
	case weight:
		return s.value - typed.value
	case int:
		return s.value - typed
	default:
		return 0
	}
}

func TestPriorityQueue_NamedOrderedType(t *testing.T) {
	queue := pqueue.NewNatural[priority]()

	for _, value := range []priority{3, 1, 2} {
		require.NoError(t, queue.Offer(value))
	}

	require.Equal(t, []priority{1, 2, 3}, queue.Drain())

	values := pqueue.NewNatural[any]()
	require.NoError(t, values.Offer(priority(2)))
	require.ErrorIs(t, values.Offer(2), collection.ErrIncompatibleType)
}

func TestPriorityQueue_NaturalOrderingAdmitsOneDynamicType(t *testing.T) {
	values := pqueue.NewNatural[any]()

	for _, value := range []int{10, 4, 7} {
		require.NoError(t, values.Offer(value))
	}

	require.ErrorIs(t, values.Offer(weight{1}), collection.ErrIncompatibleType)
	require.Equal(t, 3, values.Len())

	weights := pqueue.NewNatural[any]()
	for _, value := range []int{5, 2, 9, 1} {
		require.NoError(t, weights.Offer(weight{value}))
	}

	require.ErrorIs(t, weights.Offer(3), collection.ErrIncompatibleType)
	require.Equal(t, []any{weight{1}, weight{2}, weight{5}, weight{9}}, weights.Drain())

	mixed, err := list.NewArrayListFrom[any](collection.Of[any](weight{1}, 2))
	require.NoError(t, err)

	_, err = pqueue.NewFrom[any](mixed)
	require.ErrorIs(t, err, collection.ErrIncompatibleType)

	require.Equal(t, []any{4, 7, 10}, values.Drain())
}

func TestPriorityQueue_NewFrom(t *testing.T) {
	seed, err := list.NewArrayListFrom[int](collection.Of(9, 4, 7, 1, 8, 2))
	require.NoError(t, err)

	queue, err := pqueue.NewFrom[int](seed)
	require.NoError(t, err)
	require.Equal(t, 6, queue.Len())
	require.Equal(t, []int{1, 2, 4, 7, 8, 9}, queue.Drain())

	mixed, err := list.NewArrayListFrom[any](collection.Of[any](1, "one", 2))
	require.NoError(t, err)

	_, err = pqueue.NewFrom[any](mixed)
	require.ErrorIs(t, err, collection.ErrIncompatibleType)

	_, err = pqueue.NewFrom[int](nil)
	require.ErrorIs(t, err, collection.ErrNullArgument)
}

func TestPriorityQueue_RemoveAndContains(t *testing.T) {
	queue := pqueue.New[int]()

	for value := range 20 {
		queue.Offer(value * 3 % 20)
	}

	require.True(t, queue.Contains(7))
	require.True(t, queue.Remove(7))
	require.False(t, queue.Contains(7))
	require.False(t, queue.Remove(7))

	require.True(t, queue.Remove(0))
	require.True(t, queue.Remove(19))

	drained := queue.Drain()
	require.Len(t, drained, 17)
	require.True(t, slices.IsSorted(drained))
}

func TestPriorityQueue_AddAllSelf(t *testing.T) {
	queue := pqueue.New[int]()
	queue.Offer(2)
	queue.Offer(1)

	modified, err := queue.AddAll(queue)
	require.NoError(t, err)
	require.True(t, modified)
	require.Equal(t, []int{1, 1, 2, 2}, queue.Drain())
}

func TestPriorityQueue_CursorRemoval(t *testing.T) {
	queue := pqueue.New[int]()

	for value := range 64 {
		queue.Offer((value * 37) % 64)
	}

	var (
		visited = map[int]int{}
		cursor  = queue.Cursor()
	)

	require.ErrorIs(t, cursor.Remove(), collection.ErrInvalidIteratorState)

	for cursor.Next() {
		visited[cursor.Value()]++

		if cursor.Value()%2 == 1 {
			require.NoError(t, cursor.Remove())
			require.ErrorIs(t, cursor.Remove(), collection.ErrInvalidIteratorState)
		}
	}

	require.NoError(t, cursor.Err())
	require.Len(t, visited, 64)

	for value, count := range visited {
		require.Equal(t, 1, count, "value %d", value)
	}

	remaining := queue.Drain()
	require.Len(t, remaining, 32)

	for idx, value := range remaining {
		require.Equal(t, idx*2, value)
	}
}

func TestPriorityQueue_FailFast(t *testing.T) {
	queue := pqueue.New[string]()
	queue.Offer("b")
	queue.Offer("a")

	cursor := queue.Cursor()
	require.True(t, cursor.Next())

	queue.Offer("c")

	require.False(t, cursor.Next())
	require.ErrorIs(t, cursor.Err(), collection.ErrStructuralConflict)
	require.ErrorIs(t, cursor.Remove(), collection.ErrStructuralConflict)
}

func TestPriorityQueue_Format(t *testing.T) {
	queue := pqueue.New[int]()
	require.Equal(t, "[]", queue.String())

	queue.Offer(3)
	queue.Offer(1)
	queue.Offer(2)

	require.Equal(t, "[1, 3, 2]", queue.String())
	require.Equal(t, []int{1, 3, 2}, queue.ToSlice())

	queue.Clear()
	require.True(t, queue.IsEmpty())
	require.Equal(t, "[]", queue.String())
}

func TestPriorityQueue_HeapSort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			values = rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(t, "values")
			queue  = pqueue.New[int]()
		)

		for _, value := range values {
			if err := queue.Offer(value); err != nil {
				t.Fatal(err)
			}
		}

		expected := slices.Clone(values)
		slices.Sort(expected)

		if diff := cmp.Diff(expected, queue.Drain(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("unexpected poll order (-want +got):\n%s", diff)
		}
	})
}

func TestPriorityQueue_MatchesBinaryHeap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			queue  = pqueue.New[int]()
			oracle = binaryheap.NewWithIntComparator()
			values = rapid.IntRange(-50, 50)
		)

		t.Repeat(map[string]func(*rapid.T){
			"": func(t *rapid.T) {
				if queue.Len() != oracle.Size() {
					t.Fatalf("queue holds %d values, oracle holds %d", queue.Len(), oracle.Size())
				}

				head, found := queue.Peek()
				expected, expectedFound := oracle.Peek()

				if found != expectedFound || (found && head != expected.(int)) {
					t.Fatalf("queue head %d (%t), oracle head %v (%t)", head, found, expected, expectedFound)
				}
			},
			"Offer": func(t *rapid.T) {
				value := values.Draw(t, "value")

				if err := queue.Offer(value); err != nil {
					t.Fatal(err)
				}

				oracle.Push(value)
			},
			"Poll": func(t *rapid.T) {
				value, found := queue.Poll()
				expected, expectedFound := oracle.Pop()

				if found != expectedFound || (found && value != expected.(int)) {
					t.Fatalf("polled %d (%t), oracle popped %v (%t)", value, found, expected, expectedFound)
				}
			},
		})
	})
}

func TestPriorityQueue_Strings(t *testing.T) {
	queue, err := pqueue.NewFunc(strings.Compare)
	require.NoError(t, err)

	for _, value := range strings.Fields("the quick brown fox jumps over the lazy dog") {
		queue.Offer(value)
	}

	require.Equal(t, []string{"brown", "dog", "fox", "jumps", "lazy", "over", "quick", "the", "the"}, queue.Drain())
}
