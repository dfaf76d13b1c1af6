package model

// Entry is a single key and its occurrence count.
type Entry[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// FrequencyTable counts occurrences of keys while remembering the order in
// which each distinct key was first seen. Iteration through Keys or Entries
// always follows that first-seen order.
//
// The zero value is not usable; create tables with NewFrequencyTable.
type FrequencyTable[K comparable] struct {
	index   map[K]int
	entries []Entry[K]
}

// NewFrequencyTable creates an empty FrequencyTable.
func NewFrequencyTable[K comparable]() *FrequencyTable[K] {
	return &FrequencyTable[K]{
		index:   make(map[K]int),
		entries: make([]Entry[K], 0),
	}
}

// Add increments the count for key, appending it if it was not seen before.
func (f *FrequencyTable[K]) Add(key K) {
	if i, ok := f.index[key]; ok {
		f.entries[i].Count++
		return
	}
	f.index[key] = len(f.entries)
	f.entries = append(f.entries, Entry[K]{Key: key, Count: 1})
}

// Count returns the occurrences recorded for key, or 0 if it was never added.
func (f *FrequencyTable[K]) Count(key K) int {
	i, ok := f.index[key]
	if !ok {
		return 0
	}
	return f.entries[i].Count
}

// Len returns the number of distinct keys.
func (f *FrequencyTable[K]) Len() int {
	return len(f.entries)
}

// Keys returns the distinct keys in first-seen order.
func (f *FrequencyTable[K]) Keys() []K {
	keys := make([]K, len(f.entries))
	for i, e := range f.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of all entries in first-seen order.
func (f *FrequencyTable[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(f.entries))
	copy(out, f.entries)
	return out
}

// MaxCount returns the highest count in the table, or 0 when it is empty.
func (f *FrequencyTable[K]) MaxCount() int {
	maxCount := 0
	for _, e := range f.entries {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	return maxCount
}
