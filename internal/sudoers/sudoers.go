// Package sudoers extracts privileged usernames from the system group file.
package sudoers

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// groupFieldCount is the minimum number of colon-delimited fields a group
// record needs before it can carry members (name:password:gid:members).
const groupFieldCount = 4

// Set is the set of usernames belonging to the privileged group.
// It is immutable after Load.
type Set struct {
	members map[string]struct{}
	names   []string
}

// Load reads a colon-delimited group file and collects the members of every
// group whose name contains "sudo". Records with fewer than four fields have
// no member list and are skipped. Members of multiple matching groups are
// unioned.
func Load(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open group file: %w", err)
	}
	defer file.Close()

	set := &Set{members: make(map[string]struct{})}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		set.addRecord(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read group file: %w", err)
	}

	set.names = make([]string, 0, len(set.members))
	for name := range set.members {
		set.names = append(set.names, name)
	}
	sort.Strings(set.names)

	return set, nil
}

// Parse builds a Set from in-memory group records. Used by Load and tests.
func Parse(records []string) *Set {
	set := &Set{members: make(map[string]struct{})}
	for _, record := range records {
		set.addRecord(record)
	}
	set.names = make([]string, 0, len(set.members))
	for name := range set.members {
		set.names = append(set.names, name)
	}
	sort.Strings(set.names)
	return set
}

func (s *Set) addRecord(record string) {
	fields := strings.Split(record, ":")
	if len(fields) < groupFieldCount {
		return
	}
	if !strings.Contains(fields[0], "sudo") {
		return
	}
	for _, member := range strings.Split(fields[groupFieldCount-1], ",") {
		member = strings.TrimSpace(member)
		if member == "" {
			continue
		}
		s.members[member] = struct{}{}
	}
}

// Contains reports whether name is a privileged username.
func (s *Set) Contains(name string) bool {
	_, ok := s.members[name]
	return ok
}

// Names returns the usernames in a stable sorted order.
func (s *Set) Names() []string {
	return s.names
}

// Len returns the number of privileged usernames.
func (s *Set) Len() int {
	return len(s.members)
}
