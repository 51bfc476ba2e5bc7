// Package score computes the aggregate quality score for a lint run.
package score

import "github.com/dkoosis/lintreport/pkg/reportjson"

// Compute derives the quality score from run statistics:
//
//	10 - 10 * (5*errors + warnings + refactors + conventions) / statements
//
// Errors weigh five times as much as the other categories. Fatal and
// info counts do not participate. The score is not clamped: heavily
// penalized runs go negative, and a clean run on any number of
// statements scores exactly 10.
//
// The boolean is false when no statements were counted; a score is
// undefined for an empty run.
func Compute(s reportjson.Stats) (float64, bool) {
	if s.Statement <= 0 {
		return 0, false
	}
	penalty := float64(5*s.Error+s.Warning+s.Refactor+s.Convention) / float64(s.Statement)
	return 10 - 10*penalty, true
}

// Delta reports how the score moved between two runs. It is defined only
// when both runs have a score.
func Delta(current, previous reportjson.Stats) (float64, bool) {
	cur, ok := Compute(current)
	if !ok {
		return 0, false
	}
	prev, ok := Compute(previous)
	if !ok {
		return 0, false
	}
	return cur - prev, true
}
