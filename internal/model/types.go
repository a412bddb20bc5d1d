package model

// LogLine is a single raw line from the auth log.
// Index is the line's position in the original file; lines are never reordered.
type LogLine struct {
	Index int
	Text  string
}

// SudoEvent is a log line classified as a privilege-escalation event.
// The original line is retained verbatim for display; User and Command are
// substrings derived from it.
type SudoEvent struct {
	Line    LogLine
	User    string
	Command string
}

// CommandCount represents an invoked command and how often it appeared.
type CommandCount struct {
	Command string
	Count   int
}

// Tab identifies one of the fixed viewer tabs.
type Tab int

const (
	TabAll Tab = iota // every log line
	TabSudo           // privilege-escalation events only
	TabCommands       // command summary (recent + frequency)

	tabCount
)

// Tabs returns the ordered list of all tabs.
func Tabs() []Tab {
	return []Tab{TabAll, TabSudo, TabCommands}
}

// TabCount returns the number of tabs.
func TabCount() int { return int(tabCount) }

// Title returns the tab's display title.
func (t Tab) Title() string {
	switch t {
	case TabAll:
		return "ALL"
	case TabSudo:
		return "SUDO"
	case TabCommands:
		return "COMMANDS"
	}
	return ""
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return (t + tabCount - 1) % tabCount
}
