// Package highlight tokenizes log lines into styled spans marking the
// escalation keyword and privileged usernames.
package highlight

import "strings"

// Keyword is the escalation keyword highlighted inline. Matching is exact and
// case-sensitive with no word-boundary checks, so "sudoers" also triggers a
// keyword span on its "sudo" prefix.
const Keyword = "sudo"

// Role is the semantic role of a span.
type Role uint8

const (
	RolePlain Role = iota
	RoleKeyword
	RoleUsername
)

// Span is a contiguous run of characters tagged with a role. The spans of one
// line are ordered left to right and concatenate to exactly the original line.
type Span struct {
	Text string
	Role Role
}

// Tokenize scans line left to right and returns its spans. usernames is the
// privileged-username set in any stable order.
//
// The scan keeps an accumulating candidate substring: a candidate closes as a
// keyword span on exact keyword equality, keeps growing while it is still a
// proper prefix of the keyword or of some username, closes as a username span
// on exact username equality, and otherwise restarts at the current character.
// Failed candidates are flushed into the surrounding plain spans.
func Tokenize(line string, usernames []string) []Span {
	// Fast path: lines that never mention the keyword render as-is.
	if !strings.Contains(line, Keyword) {
		return []Span{{Text: line, Role: RolePlain}}
	}

	var spans []Span
	plainStart := 0 // start of text not yet emitted
	candStart := 0  // start of the accumulating candidate

	for i := 0; i < len(line); i++ {
		for {
			cand := line[candStart : i+1]
			if cand == Keyword {
				spans = closeMatch(spans, line[plainStart:candStart], cand, RoleKeyword)
				plainStart, candStart = i+1, i+1
				break
			}
			if couldExtend(cand, usernames) {
				break
			}
			if isUsername(cand, usernames) {
				spans = closeMatch(spans, line[plainStart:candStart], cand, RoleUsername)
				plainStart, candStart = i+1, i+1
				break
			}
			// Candidate can no longer complete a match. Retry from the
			// current character once, then give up on it.
			if candStart < i {
				candStart = i
				continue
			}
			candStart = i + 1
			break
		}
	}

	if plainStart < len(line) || len(spans) == 0 {
		spans = append(spans, Span{Text: line[plainStart:], Role: RolePlain})
	}
	return spans
}

// closeMatch appends the pending plain text (when non-empty) followed by the
// matched span.
func closeMatch(spans []Span, plain, match string, role Role) []Span {
	if plain != "" {
		spans = append(spans, Span{Text: plain, Role: RolePlain})
	}
	return append(spans, Span{Text: match, Role: role})
}

// couldExtend reports whether cand is a proper prefix of the keyword or of
// any username, i.e. a longer match is still possible.
func couldExtend(cand string, usernames []string) bool {
	if len(cand) < len(Keyword) && strings.HasPrefix(Keyword, cand) {
		return true
	}
	for _, name := range usernames {
		if len(cand) < len(name) && strings.HasPrefix(name, cand) {
			return true
		}
	}
	return false
}

func isUsername(cand string, usernames []string) bool {
	for _, name := range usernames {
		if cand == name {
			return true
		}
	}
	return false
}

// Join concatenates span texts. Tokenize guarantees Join(Tokenize(line, u))
// equals line.
func Join(spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}
