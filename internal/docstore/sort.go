package docstore

import (
	"encoding/json"
	"sort"
	"time"
)

// SortSnapshots orders snapshots by a top level field. Timestamps are
// compared as times, numbers as numbers, anything else as strings.
// Documents missing the field go last. Ties keep their input order.
func SortSnapshots(snapshots []Snapshot, orderBy OrderBy) {
	if orderBy.Field == "" {
		return
	}

	keys := make([]sortKey, len(snapshots))
	for i := range snapshots {
		keys[i] = extractSortKey(snapshots[i].Data, orderBy.Field)
	}

	idx := make([]int, len(snapshots))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if !ka.present || !kb.present {
			return ka.present && !kb.present
		}
		c := ka.compare(kb)
		if orderBy.Desc {
			return c > 0
		}
		return c < 0
	})

	sorted := make([]Snapshot, len(snapshots))
	for i, j := range idx {
		sorted[i] = snapshots[j]
	}
	copy(snapshots, sorted)
}

type sortKey struct {
	present bool
	isTime  bool
	isNum   bool
	t       time.Time
	num     float64
	str     string
}

func extractSortKey(data []byte, field string) sortKey {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return sortKey{}
	}
	raw, ok := fields[field]
	if !ok || string(raw) == "null" {
		return sortKey{}
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return sortKey{present: true, isNum: true, num: num}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return sortKey{present: true, str: string(raw)}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return sortKey{present: true, isTime: true, t: t, str: s}
	}
	return sortKey{present: true, str: s}
}

func (k sortKey) compare(o sortKey) int {
	switch {
	case k.isTime && o.isTime:
		return k.t.Compare(o.t)
	case k.isNum && o.isNum:
		switch {
		case k.num < o.num:
			return -1
		case k.num > o.num:
			return 1
		}
		return 0
	}
	switch {
	case k.str < o.str:
		return -1
	case k.str > o.str:
		return 1
	}
	return 0
}
