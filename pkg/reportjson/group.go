package reportjson

import "sort"

// ModuleGroup collects the messages belonging to one module.
type ModuleGroup struct {
	Module   string
	Messages []Message
}

// GroupByModule buckets messages by module name, preserving the order in
// which modules first appear in the input. Renderers rely on this order
// for their per-module detail sections.
func GroupByModule(msgs []Message) []ModuleGroup {
	index := make(map[string]int)
	var groups []ModuleGroup
	for _, m := range msgs {
		i, ok := index[m.Module]
		if !ok {
			i = len(groups)
			index[m.Module] = i
			groups = append(groups, ModuleGroup{Module: m.Module})
		}
		groups[i].Messages = append(groups[i].Messages, m)
	}
	return groups
}

// SortByPosition orders messages by line, then column. The sort is stable,
// so messages sharing a position keep their input order.
func SortByPosition(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].Line != msgs[j].Line {
			return msgs[i].Line < msgs[j].Line
		}
		return msgs[i].Column < msgs[j].Column
	})
}

// CountRow pairs a grouping key with the number of messages it covers.
type CountRow struct {
	Key   string
	Count int
}

// CountBy tallies messages under the key function and returns one row per
// distinct key, sorted by key.
func CountBy(msgs []Message, key func(Message) string) []CountRow {
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[key(m)]++
	}
	rows := make([]CountRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, CountRow{Key: k, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}
