package models

import (
	"bufio"
	"strings"
)

// BranchList is the ordered, fixed-length set of candidates for one session.
type BranchList struct {
	branches []*Branch
	filter   string
}

// BuildBranchList parses ls-remote style output, keeping lines that contain
// filter literally. Blank lines are skipped.
func BuildBranchList(raw, filter, keepSuffix string) *BranchList {
	list := &BranchList{filter: filter}
	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.Contains(line, filter) {
			continue
		}
		list.branches = append(list.branches, NewBranch(line, keepSuffix))
	}

	return list
}

// Filter returns the substring the list was built with.
func (l *BranchList) Filter() string { return l.filter }

func (l *BranchList) Len() int { return len(l.branches) }

func (l *BranchList) Empty() bool { return len(l.branches) == 0 }

// At returns the branch at i, or nil when i is out of range.
func (l *BranchList) At(i int) *Branch {
	if i < 0 || i >= len(l.branches) {
		return nil
	}
	return l.branches[i]
}

// Toggle flips the selection of the branch at i. Out of range indexes are
// ignored.
func (l *BranchList) Toggle(i int) bool {
	b := l.At(i)
	if b == nil {
		return false
	}
	return b.Toggle()
}

func (l *BranchList) SelectedCount() int {
	n := 0
	for _, b := range l.branches {
		if b.Selected() {
			n++
		}
	}
	return n
}

// SelectedNames returns the names of selected branches in list order.
func (l *BranchList) SelectedNames() []string {
	var names []string
	for _, b := range l.branches {
		if b.Selected() {
			names = append(names, b.Name())
		}
	}
	return names
}
