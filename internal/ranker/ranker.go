// Package ranker orders indexed words by occurrence count, most frequent
// first, breaking ties by ascending word.
package ranker

import (
	"container/heap"
	"sort"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/index"
)

// TopK selects with a bounded heap when k is at most n/heapThreshold and
// sorts every entry otherwise.
const heapThreshold = 4

// Less reports whether a ranks before b.
func Less(a, b index.Entry) bool {
	if a.Count() != b.Count() {
		return a.Count() > b.Count()
	}
	return a.Word < b.Word
}

// All returns every entry of v in rank order.
func All(v index.View) []index.Entry {
	entries := v.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return Less(entries[i], entries[j])
	})
	return entries
}

// TopK returns the k highest-ranked entries of v. k <= 0 yields an empty
// slice; k at or above the number of words yields the full ranking.
func TopK(v index.View, k int) []index.Entry {
	if k <= 0 {
		return []index.Entry{}
	}
	n := v.Len()
	if k >= n {
		return All(v)
	}
	if k > n/heapThreshold {
		return All(v)[:k]
	}
	return selectTop(v.Entries(), k)
}

// selectTop keeps the k best entries in a min-heap whose root is the
// weakest survivor, then drains it back into rank order.
func selectTop(entries []index.Entry, k int) []index.Entry {
	h := &entryHeap{}
	heap.Init(h)
	for _, e := range entries {
		if h.Len() < k {
			heap.Push(h, e)
			continue
		}
		if Less(e, (*h)[0]) {
			(*h)[0] = e
			heap.Fix(h, 0)
		}
	}
	result := make([]index.Entry, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(h).(index.Entry)
	}
	return result
}

type entryHeap []index.Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool { return Less(h[j], h[i]) }

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(index.Entry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
