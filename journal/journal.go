// Package journal holds the saved trading days and mirrors them to a
// key-value backend.
package journal

import (
	"sort"

	"github.com/rustyeddy/tradecal/datekey"
)

// Record is one day's trading outcome.
type Record struct {
	PnL  float64 `json:"pnl"`
	Note string  `json:"note"`
}

// RecordMap is every saved day, keyed by calendar date. It is persisted as
// a whole, never per entry.
type RecordMap map[datekey.Key]Record

// Entry pairs a Record with its day.
type Entry struct {
	Key datekey.Key
	Record
}

// With returns a copy of m in which key maps to rec. m is not modified.
func (m RecordMap) With(key datekey.Key, rec Record) RecordMap {
	out := make(RecordMap, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = rec
	return out
}

// Keys returns the saved days in calendar order.
func (m RecordMap) Keys() []datekey.Key {
	keys := make([]datekey.Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Between returns the entries with from <= key <= to, in calendar order.
func (m RecordMap) Between(from, to datekey.Key) []Entry {
	var out []Entry
	for _, k := range m.Keys() {
		if k < from || k > to {
			continue
		}
		out = append(out, Entry{Key: k, Record: m[k]})
	}
	return out
}
