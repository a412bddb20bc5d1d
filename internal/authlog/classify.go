// Package authlog classifies auth-log lines into sudo privilege-escalation
// events and aggregates invoked-command frequencies.
package authlog

import (
	"sort"
	"strings"

	"github.com/tinytelemetry/sumi/internal/model"
)

// Markers identifying the parts of a privilege-escalation line.
const (
	// EscalationMarker is present on every sudo invocation line.
	EscalationMarker = "sudo:"

	// NoiseMarker is present on PAM session bookkeeping lines that mention
	// sudo but carry no invoked command.
	NoiseMarker = "pam_unix"

	// CommandMarker introduces the invoked command text.
	CommandMarker = "COMMAND="
)

// Report holds the classification result for one ingestion pass.
// It is immutable after Classify returns.
type Report struct {
	Events []model.SudoEvent

	counts    map[string]int
	firstSeen map[string]int
}

// Classify scans lines in order and returns the privilege-escalation events
// plus the command frequency table.
//
// A line qualifies iff it contains the escalation marker and not the noise
// marker. Qualifying lines without a command marker are malformed and skipped
// silently; ingestion never aborts on a single line.
func Classify(lines []model.LogLine) *Report {
	r := &Report{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}

	for _, line := range lines {
		event, ok := classifyLine(line)
		if !ok {
			continue
		}
		r.Events = append(r.Events, event)
		if _, seen := r.counts[event.Command]; !seen {
			r.firstSeen[event.Command] = len(r.firstSeen)
		}
		r.counts[event.Command]++
	}

	return r
}

func classifyLine(line model.LogLine) (model.SudoEvent, bool) {
	markerIdx := strings.Index(line.Text, EscalationMarker)
	if markerIdx < 0 || strings.Contains(line.Text, NoiseMarker) {
		return model.SudoEvent{}, false
	}

	cmdIdx := strings.Index(line.Text, CommandMarker)
	if cmdIdx < 0 {
		// Malformed: mentions sudo but carries no command.
		return model.SudoEvent{}, false
	}

	return model.SudoEvent{
		Line:    line,
		User:    invokingUser(line.Text[markerIdx+len(EscalationMarker):]),
		Command: line.Text[cmdIdx+len(CommandMarker):],
	}, true
}

// invokingUser extracts the username between the escalation marker and the
// next field delimiter. When no delimiter follows, the whole remaining
// segment is taken rather than failing the line.
func invokingUser(rest string) string {
	if end := strings.Index(rest, ":"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// Count returns how often command was invoked.
func (r *Report) Count(command string) int {
	return r.counts[command]
}

// UniqueCommands returns the number of distinct commands seen.
func (r *Report) UniqueCommands() int {
	return len(r.counts)
}

// TopCommands returns all commands sorted by count descending. Ties keep
// first-seen order so the result is deterministic for equal counts.
func (r *Report) TopCommands() []model.CommandCount {
	out := make([]model.CommandCount, 0, len(r.counts))
	for command, count := range r.counts {
		out = append(out, model.CommandCount{Command: command, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return r.firstSeen[out[i].Command] < r.firstSeen[out[j].Command]
	})
	return out
}

// Recent returns the newest n events, oldest first. It returns all events
// when fewer than n exist.
func (r *Report) Recent(n int) []model.SudoEvent {
	if n <= 0 || len(r.Events) == 0 {
		return nil
	}
	if n > len(r.Events) {
		n = len(r.Events)
	}
	return r.Events[len(r.Events)-n:]
}
