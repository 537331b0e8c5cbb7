package lookup

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// tokenStats accumulates per-token adapt statistics.
type tokenStats struct {
	count    int64 // total occurrences across all samples
	docCount int64 // number of samples containing the token (tf-idf only)
}

// freqTable is the streaming accumulator behind Adapt. It survives across
// repeated Adapt calls and is consumed exactly once by FinalizeState.
//
// Insertion order is preserved so that snapshots of partially adapted state
// are deterministic regardless of how samples were batched.
type freqTable struct {
	stats   *orderedmap.OrderedMap[string, *tokenStats]
	numDocs int64 // total samples seen
}

func newFreqTable() *freqTable {
	return &freqTable{
		stats: orderedmap.New[string, *tokenStats](),
	}
}

// update folds one sample into the table. Each sample counts as one document;
// docCount is incremented at most once per sample no matter how often the
// token repeats within it. Tokens for which skip returns true are ignored.
func (f *freqTable) update(sample []string, trackDocs bool, skip func(string) bool) {
	f.numDocs++

	var seen map[string]struct{}
	if trackDocs {
		seen = make(map[string]struct{}, len(sample))
	}

	for _, tok := range sample {
		if skip != nil && skip(tok) {
			continue
		}
		st, ok := f.stats.Get(tok)
		if !ok {
			st = &tokenStats{}
			f.stats.Set(tok, st)
		}
		st.count++

		if trackDocs {
			if _, dup := seen[tok]; !dup {
				seen[tok] = struct{}{}
				st.docCount++
			}
		}
	}
}

// empty reports whether no statistics have been accumulated.
func (f *freqTable) empty() bool {
	return f.stats.Len() == 0 && f.numDocs == 0
}

// reset clears all accumulated statistics, ready for a fresh adapt cycle.
func (f *freqTable) reset() {
	f.stats = orderedmap.New[string, *tokenStats]()
	f.numDocs = 0
}

// sortedEntry is one finalized (token, stats) pair in vocabulary order.
type sortedEntry struct {
	token    string
	count    int64
	docCount int64
}

// sorted returns all entries ordered by count descending, ties broken by
// token descending (sort order high to low).
func (f *freqTable) sorted() []sortedEntry {
	entries := make([]sortedEntry, 0, f.stats.Len())
	for pair := f.stats.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, sortedEntry{
			token:    pair.Key,
			count:    pair.Value.count,
			docCount: pair.Value.docCount,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].token > entries[j].token
	})
	return entries
}
