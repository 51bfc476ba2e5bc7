package reportjson

// Builder accumulates diagnostic messages and assembles them into a
// Document with computed statistics.
type Builder struct {
	msgs []Message
}

// Add appends a message to the builder.
func (b *Builder) Add(m Message) {
	b.msgs = append(b.msgs, m)
}

// Len reports how many messages have been added so far.
func (b *Builder) Len() int {
	return len(b.msgs)
}

// Build assembles the accumulated messages into a document. Statement
// counts cannot be derived from messages, so the caller supplies them.
// previous carries the prior run's statistics when available.
func (b *Builder) Build(statements int, previous *Stats) *Document {
	stats := ComputeStats(b.msgs)
	stats.Statement = statements
	return &Document{
		Messages:      b.msgs,
		Stats:         stats,
		PreviousStats: previous,
	}
}

// ComputeStats tallies messages into aggregate statistics: global counts
// per category plus a per-module breakdown in first-encounter order.
// Messages with unrecognized categories still register their module but
// increment no counter. Statement counts stay zero; only the producing
// engine knows them.
func ComputeStats(msgs []Message) Stats {
	var s Stats
	for _, m := range msgs {
		c, _ := s.ByModule.Get(m.Module)
		switch m.Category {
		case CategoryError:
			s.Error++
			c.Error++
		case CategoryWarning:
			s.Warning++
			c.Warning++
		case CategoryRefactor:
			s.Refactor++
			c.Refactor++
		case CategoryConvention:
			s.Convention++
			c.Convention++
		case CategoryFatal:
			s.Fatal++
			c.Fatal++
		case CategoryInfo:
			s.Info++
			c.Info++
		}
		s.ByModule.Set(m.Module, c)
	}
	return s
}
