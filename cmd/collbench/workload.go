package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/cache"
	"github.com/specterops/collections/cardinality"
	"github.com/specterops/collections/collection"
	"github.com/specterops/collections/enumset"
	"github.com/specterops/collections/hashmap"
	"github.com/specterops/collections/list"
	"github.com/specterops/collections/pqueue"
	"github.com/specterops/collections/set"
	"github.com/specterops/collections/treemap"
	"github.com/specterops/collections/util"
	"github.com/specterops/collections/util/atomics"
)

// recorder tracks every value any workload inserted, as an estimate and as an exact bitmap.
type recorder struct {
	distinct cardinality.Simplex[uint64]
	exact    cardinality.Duplex[uint64]
}

func (s recorder) observe(value int) {
	s.distinct.Add(uint64(value))
	s.exact.Add(uint64(value))
}

// workload exercises one container and returns the number of operations it performed.
type workload struct {
	name string
	run  func(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error)
}

var workloads = []workload{
	{name: "arraylist", run: runArrayList},
	{name: "linkedlist", run: runLinkedList},
	{name: "hashset", run: runHashSet(set.New[int])},
	{name: "linkedhashset", run: runHashSet(set.NewLinked[int])},
	{name: "hashmap", run: runHashMap},
	{name: "treemap", run: runTreeMap},
	{name: "sortedset", run: runSortedSet},
	{name: "enumset", run: runEnumSet},
	{name: "pqueue", run: runPriorityQueue},
	{name: "lru", run: runLRU},
}

func workloadNames() []string {
	names := make([]string, len(workloads))

	for idx, next := range workloads {
		names[idx] = next.name
	}

	return names
}

func newRandom(seed uint64, stream int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(stream)))
}

func runArrayList(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
	var (
		values     = list.NewArrayList[int]()
		operations = 0
	)

	for idx := 0; idx < cfg.size; idx++ {
		value := random.IntN(cfg.size)

		if err := values.Insert(random.IntN(values.Len()+1), value); err != nil {
			return operations, err
		}

		observed.observe(value)
		operations++
	}

	if err := ctx.Err(); err != nil {
		return operations, err
	}

	removed, err := values.RemoveAll(evenValues{})
	if err != nil {
		return operations, err
	}

	operations++

	for cursor := values.Cursor(); cursor.Next(); {
		if cursor.Value()%2 == 0 {
			return operations, errors.Newf("even value %d survived removal", cursor.Value())
		}
	}

	slog.Debug("array list settled", slog.Int("len", values.Len()), slog.Int("cap", values.Cap()), slog.Bool("removed", removed))
	return operations, nil
}

type evenValues struct{}

func (evenValues) Contains(value int) bool {
	return value%2 == 0
}

func runLinkedList(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
	var (
		deque      = list.NewLinkedList[int]()
		operations = 0
	)

	for idx := 0; idx < cfg.size; idx++ {
		value := random.IntN(cfg.size)

		if random.IntN(2) == 0 {
			deque.AddFirst(value)
		} else {
			deque.AddLast(value)
		}

		observed.observe(value)
		operations++
	}

	if err := ctx.Err(); err != nil {
		return operations, err
	}

	for polled := 0; ; polled++ {
		var found bool

		if polled%2 == 0 {
			_, found = deque.PollFirst()
		} else {
			_, found = deque.PollLast()
		}

		if !found {
			if polled != cfg.size {
				return operations, errors.Newf("polled %d values from a deque holding %d", polled, cfg.size)
			}

			break
		}

		operations++
	}

	return operations, nil
}

func runHashSet(create func() *set.HashSet[int]) func(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
	return func(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
		var (
			values     = create()
			expected   = cardinality.NewBitmap64()
			operations = 0
		)

		for idx := 0; idx < cfg.size; idx++ {
			value := random.IntN(cfg.size)

			added, err := values.Add(value)
			if err != nil {
				return operations, err
			}

			if added != expected.CheckedAdd(uint64(value)) {
				return operations, errors.Newf("set and bitmap disagree on the novelty of %d", value)
			}

			observed.observe(value)
			operations++
		}

		if err := ctx.Err(); err != nil {
			return operations, err
		}

		if uint64(values.Len()) != expected.Cardinality() {
			return operations, errors.Newf("set holds %d values, expected %d", values.Len(), expected.Cardinality())
		}

		retained, err := values.RetainAll(evenValues{})
		if err != nil {
			return operations, err
		}

		slog.Debug("hash set settled", slog.Int("len", values.Len()), slog.Bool("retained", retained))
		return operations + 1, nil
	}
}

func runHashMap(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
	var (
		counts     = hashmap.New[int, int](hashmap.WithLoadFactor(0.5))
		expected   = cardinality.NewBitmap64()
		operations = 0
	)

	for idx := 0; idx < cfg.size; idx++ {
		value := random.IntN(cfg.size)
		count, _ := counts.Get(value)

		if _, _, err := counts.Put(value, count+1); err != nil {
			return operations, err
		}

		if random.IntN(8) == 0 {
			counts.Delete(value)
			expected.Remove(uint64(value))
		} else {
			expected.Add(uint64(value))
		}

		observed.observe(value)
		operations++
	}

	if err := ctx.Err(); err != nil {
		return operations, err
	}

	if uint64(counts.Len()) != expected.Cardinality() {
		return operations, errors.Newf("map holds %d keys, expected %d", counts.Len(), expected.Cardinality())
	}

	return operations, nil
}

func runTreeMap(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
	var (
		ordered    = treemap.New[int, string]()
		expected   = cardinality.NewBitmap64()
		operations = 0
	)

	for idx := 0; idx < cfg.size; idx++ {
		value := random.IntN(cfg.size)

		if _, _, err := ordered.Put(value, ""); err != nil {
			return operations, err
		}

		expected.Add(uint64(value))
		observed.observe(value)
		operations++
	}

	if err := ctx.Err(); err != nil {
		return operations, err
	}

	var (
		from = random.IntN(cfg.size)
		to   = from + random.IntN(cfg.size-from+1)
	)

	window, err := ordered.SubMap(from, to)
	if err != nil {
		return operations, err
	}

	inWindow := 0
	expected.Each(func(value uint64) bool {
		if value >= uint64(to) {
			return false
		}

		if value >= uint64(from) {
			inWindow++
		}

		return true
	})

	if window.Len() != inWindow {
		return operations, errors.Newf("window [%d, %d) holds %d keys, expected %d", from, to, window.Len(), inWindow)
	}

	keys := collection.ToSlice[int](ordered.Keys())
	if !slices.IsSorted(keys) {
		return operations, errors.New("tree map keys are not in ascending order")
	}

	return operations + 1, nil
}

func runSortedSet(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
	var (
		values     = set.NewSorted[int]()
		minimum    = cfg.size
		maximum    = -1
		operations = 0
	)

	for idx := 0; idx < cfg.size; idx++ {
		value := random.IntN(cfg.size)

		if _, err := values.Add(value); err != nil {
			return operations, err
		}

		minimum = min(minimum, value)
		maximum = max(maximum, value)

		observed.observe(value)
		operations++
	}

	if err := ctx.Err(); err != nil {
		return operations, err
	}

	first, err := values.First()
	if err != nil {
		return operations, err
	}

	last, err := values.Last()
	if err != nil {
		return operations, err
	}

	if first != minimum || last != maximum {
		return operations, errors.Newf("sorted set spans [%d, %d], expected [%d, %d]", first, last, minimum, maximum)
	}

	return operations, nil
}

// flag is a closed enumeration large enough to need more than one word of bits.
type flag int

const numFlags = 100

func (s flag) Ordinal() int {
	return int(s)
}

var flagUniverse = func() *enumset.Universe[flag] {
	values := make([]flag, numFlags)

	for idx := range values {
		values[idx] = flag(idx)
	}

	universe, err := enumset.NewUniverse("flag", values...)
	if err != nil {
		panic(err)
	}

	return universe
}()

func runEnumSet(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
	var (
		enabled    = enumset.NoneOf(flagUniverse)
		operations = 0
	)

	for idx := 0; idx < cfg.size; idx++ {
		value := flag(random.IntN(numFlags))

		switch random.IntN(4) {
		case 0:
			enabled.Remove(value)

		case 1:
			if idx%64 == 0 {
				enabled.Complement()
			} else if err := enabled.AddRange(value, flag(min(numFlags-1, int(value)+3))); err != nil {
				return operations, err
			}

		default:
			if _, err := enabled.Add(value); err != nil {
				return operations, err
			}
		}

		observed.observe(int(value))
		operations++
	}

	if err := ctx.Err(); err != nil {
		return operations, err
	}

	if exported := enabled.Duplex(); exported.Cardinality() != uint64(enabled.Len()) {
		return operations, errors.Newf("enum set holds %d values but exports %d", enabled.Len(), exported.Cardinality())
	}

	return operations, nil
}

func runPriorityQueue(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
	var (
		queue      = pqueue.New[int]()
		operations = 0
		sample     = util.SLogSampleRepeated("pqueue poll", slog.Int("size", cfg.size))
		interval   = max(1, cfg.size/4)
	)

	for idx := 0; idx < cfg.size; idx++ {
		value := random.IntN(cfg.size)

		if err := queue.Offer(value); err != nil {
			return operations, err
		}

		observed.observe(value)
		operations++
	}

	if err := ctx.Err(); err != nil {
		return operations, err
	}

	previous := -1

	for value, found := queue.Poll(); found; value, found = queue.Poll() {
		if value < previous {
			return operations, errors.Newf("polled %d after %d", value, previous)
		}

		previous = value
		operations++

		if operations%interval == 0 && slog.Default().Enabled(ctx, slog.LevelDebug) {
			sample(slog.Int("remaining", queue.Len()))
		}
	}

	return operations, nil
}

func runLRU(ctx context.Context, cfg config, random *rand.Rand, observed recorder) (int, error) {
	var (
		capacity  = max(1, cfg.size/10)
		lru       = cache.NewLRU[int, int](capacity)
		budget    = atomics.NewCounter(uint64(cfg.size))
		workers   = max(1, cfg.parallel)
		seeds     = make([]uint64, workers)
		waitGroup sync.WaitGroup
	)

	for idx := range seeds {
		seeds[idx] = random.Uint64()
	}

	for worker := 0; worker < workers; worker++ {
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			local := newRandom(seeds[worker], worker)

			for !budget() && ctx.Err() == nil {
				key := local.IntN(capacity * 2)

				if _, found := lru.Get(key); !found {
					lru.Put(key, key)
					observed.observe(key)
				}
			}
		}()
	}

	waitGroup.Wait()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	stats := lru.Stats()

	if lookups := stats.Hits() + stats.Misses(); lookups != int64(cfg.size) {
		return int(lookups), errors.Newf("lru counted %d lookups, expected %d", lookups, cfg.size)
	}

	if stats.Size() > int64(capacity) {
		return cfg.size, errors.Newf("lru holds %d entries over a capacity of %d", stats.Size(), capacity)
	}

	slog.Debug("lru settled", slog.Float64("hit_ratio", stats.HitRatio()), slog.Int64("evictions", stats.Evictions()))
	return cfg.size, nil
}
