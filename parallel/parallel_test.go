package parallel

import (
	"runtime"
	"sort"
	"sync"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type span struct{ Start, End int }

func collectSpans(n, nbTasks int) []span {
	var mu sync.Mutex
	var spans []span
	Execute(n, func(start, end int) {
		mu.Lock()
		spans = append(spans, span{start, end})
		mu.Unlock()
	}, nbTasks)
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

func expectedSpans(n, nbTasks int) []span {
	if n == 0 {
		return nil
	}
	if nbTasks > n {
		nbTasks = n
	}
	q, r := n/nbTasks, n%nbTasks
	spans := make([]span, 0, nbTasks)
	start := 0
	for i := 0; i < nbTasks; i++ {
		size := q
		if i < r {
			size++
		}
		spans = append(spans, span{start, start + size})
		start += size
	}
	return spans
}

func TestExecuteCoverage(t *testing.T) {
	for _, nbTasks := range []int{1, 2, 3, 4, 7, 8, runtime.NumCPU()} {
		for n := 0; n <= 4*nbTasks; n++ {
			spans := collectSpans(n, nbTasks)

			covered := bitset.New(uint(n))
			for _, s := range spans {
				require.Less(t, s.Start, s.End, "empty range handed to work (n=%d tasks=%d)", n, nbTasks)
				for i := s.Start; i < s.End; i++ {
					require.False(t, covered.Test(uint(i)), "index %d covered twice (n=%d tasks=%d)", i, n, nbTasks)
					covered.Set(uint(i))
				}
			}
			require.EqualValues(t, n, covered.Count(), "missing indices (n=%d tasks=%d)", n, nbTasks)

			if n == 0 {
				require.Empty(t, spans)
			} else {
				require.Len(t, spans, min(nbTasks, n))
			}
		}
	}
}

func TestExecuteBalance(t *testing.T) {
	for _, nbTasks := range []int{1, 2, 3, 5, 8, 16} {
		for n := 0; n <= 4*nbTasks; n++ {
			got := collectSpans(n, nbTasks)
			want := expectedSpans(n, nbTasks)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("partition layout mismatch (n=%d tasks=%d) (-want +got):\n%s", n, nbTasks, diff)
			}
		}
	}
}

func TestExecuteDefaultTasks(t *testing.T) {
	n := 4*runtime.NumCPU() + 3
	marks := make([]int, n)
	Execute(n, func(start, end int) {
		for i := start; i < end; i++ {
			marks[i]++
		}
	})
	for i, m := range marks {
		require.Equal(t, 1, m, "index %d", i)
	}
}

func TestExecuteClampsTaskCount(t *testing.T) {
	spans := collectSpans(10, -3)
	require.Equal(t, []span{{0, 10}}, spans)

	spans = collectSpans(4, MaxTasks+100)
	require.Len(t, spans, 4)
}

func TestJoin(t *testing.T) {
	var a, b int
	Join(
		func() { a = 1 },
		func() { b = 2 },
	)
	require.Equal(t, 1, a)
	require.Equal(t, 2, b)
}

func TestJoinValues(t *testing.T) {
	x, y := JoinValues(
		func() int { return 42 },
		func() string { return "done" },
	)
	require.Equal(t, 42, x)
	require.Equal(t, "done", y)
}

func TestJoinValuesNested(t *testing.T) {
	// binary recursion over [0, 1<<depth) summing leaf indices
	var sum func(start, depth int) int
	sum = func(start, depth int) int {
		if depth == 0 {
			return start
		}
		half := 1 << (depth - 1)
		l, r := JoinValues(
			func() int { return sum(start, depth-1) },
			func() int { return sum(start+half, depth-1) },
		)
		return l + r
	}
	n := 1 << 6
	require.Equal(t, n*(n-1)/2, sum(0, 6))
}
