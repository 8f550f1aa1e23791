// Package dialogue answers conversational questions from a static table of
// trigger phrases and canned replies. It never touches the data store.
package dialogue

import (
	"strings"

	"github.com/aferrando/golbot/internal/domain/text"
)

// Rule pairs trigger substrings with a fixed response. A rule fires when
// any phrase in Any appears in the normalized question, or, for rules using
// All, when every phrase in All appears. Triggers are stored pre-normalized.
type Rule struct {
	Any      []string
	All      []string
	Response string
}

func (r Rule) matches(q string) bool {
	for _, t := range r.Any {
		if strings.Contains(q, t) {
			return true
		}
	}
	if len(r.All) == 0 {
		return false
	}
	for _, t := range r.All {
		if !strings.Contains(q, t) {
			return false
		}
	}
	return true
}

// Match returns the response of the first rule triggered by question, or
// the empty string when none fires. Rule order is the declared order of the
// table; overlapping triggers resolve to the earliest rule.
func Match(question string) string {
	q := text.Normalize(question)
	for _, r := range rules {
		if r.matches(q) {
			return r.Response
		}
	}
	return ""
}

// Size reports how many rules the table holds.
func Size() int {
	return len(rules)
}
