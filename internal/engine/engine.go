// Package engine turns the full in-memory task collection plus the
// user-selected criteria into the displayed ordering. It never mutates
// its inputs and cannot fail on well-formed ones: unknown priorities or
// sort keys degrade to a defined fallback instead of erroring.
package engine

import (
	"sort"
	"strings"

	"taskdeck/internal/model"
)

type Completion int

const (
	All Completion = iota
	Active
	Completed
)

type SortKey int

const (
	ByDueDate SortKey = iota
	ByPriority
	ByCategory
	BySubCategory
)

type Order int

const (
	Ascending Order = iota
	Descending
)

// Criteria configures one engine invocation. Empty Category/SubCategory
// means "all"; empty Search disables the search filter.
type Criteria struct {
	Completion  Completion
	Category    string
	SubCategory string
	Search      string
	Sort        SortKey
	Order       Order
	GroupBy     bool
}

// Group is a labeled, ordered slice of the display output.
type Group struct {
	Label string
	Tasks []model.Task
}

const (
	labelActive    = "Active"
	labelCompleted = "Completed"
	labelNoDueDate = "No Due Date"
	labelNone      = "None"
	labelOther     = "Other"
)

// Sorts after every ISO date and every lowercased label.
const lastKey = "\uffff"

// Apply runs the fixed pipeline: completion filter, category filters,
// title search, sort (descending is a full reverse of the ascending
// order), then grouping. Without grouping the result is a single
// unlabeled group. A non-empty search always partitions the result into
// Active and Completed instead of the sort-key grouping; empty groups
// are omitted.
func Apply(tasks []model.Task, c Criteria) []Group {
	kept := filter(tasks, c)
	sortTasks(kept, c.Sort, c.Order)

	if c.Search != "" {
		return splitByCompletion(kept)
	}
	if c.GroupBy {
		return group(kept, c.Sort)
	}
	if len(kept) == 0 {
		return nil
	}
	return []Group{{Tasks: kept}}
}

func filter(tasks []model.Task, c Criteria) []model.Task {
	needle := strings.ToLower(c.Search)
	kept := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.Completion == Active && t.Completed {
			continue
		}
		if c.Completion == Completed && !t.Completed {
			continue
		}
		if c.Category != "" && t.Category != c.Category {
			continue
		}
		if c.SubCategory != "" && t.SubCategory != c.SubCategory {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

func sortTasks(tasks []model.Task, key SortKey, order Order) {
	less := lessFunc(key)
	if less != nil {
		sort.SliceStable(tasks, func(i, j int) bool {
			return less(tasks[i], tasks[j])
		})
	}
	if order == Descending {
		for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
			tasks[i], tasks[j] = tasks[j], tasks[i]
		}
	}
}

// lessFunc returns the ascending comparator for the key, or nil for an
// unrecognized key (the input order is kept).
func lessFunc(key SortKey) func(a, b model.Task) bool {
	switch key {
	case ByDueDate:
		return func(a, b model.Task) bool {
			return dueKey(a) < dueKey(b)
		}
	case ByPriority:
		return func(a, b model.Task) bool {
			return priorityRank(a.Priority) < priorityRank(b.Priority)
		}
	case ByCategory:
		return func(a, b model.Task) bool {
			ka, kb := labelKey(a.Category), labelKey(b.Category)
			if ka != kb {
				return ka < kb
			}
			return labelKey(a.SubCategory) < labelKey(b.SubCategory)
		}
	case BySubCategory:
		return func(a, b model.Task) bool {
			ka, kb := labelKey(a.SubCategory), labelKey(b.SubCategory)
			if ka != kb {
				return ka < kb
			}
			return labelKey(a.Category) < labelKey(b.Category)
		}
	default:
		return nil
	}
}

// dueKey sorts missing due dates after every real date.
func dueKey(t model.Task) string {
	if t.DueDate == "" {
		return "9999-99-99"
	}
	return t.DueDate
}

// priorityRank recognizes exactly the known labels; anything else lands
// in the lowest-precedence bucket.
func priorityRank(p string) int {
	switch p {
	case "High":
		return 0
	case "Medium", "Med":
		return 1
	case "Low":
		return 2
	default:
		return 3
	}
}

// labelKey sorts empty labels after every non-empty one.
func labelKey(s string) string {
	if s == "" {
		return lastKey
	}
	return strings.ToLower(s)
}

func splitByCompletion(tasks []model.Task) []Group {
	var active, completed []model.Task
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}
	var groups []Group
	if len(active) > 0 {
		groups = append(groups, Group{Label: labelActive, Tasks: active})
	}
	if len(completed) > 0 {
		groups = append(groups, Group{Label: labelCompleted, Tasks: completed})
	}
	return groups
}

func group(tasks []model.Task, key SortKey) []Group {
	switch key {
	case ByDueDate:
		return groupConsecutive(tasks, func(t model.Task) string {
			if t.DueDate == "" {
				return labelNoDueDate
			}
			return t.DueDate
		})
	case ByPriority:
		return groupConsecutive(tasks, func(t model.Task) string {
			switch priorityRank(t.Priority) {
			case 0:
				return "High"
			case 1:
				return "Medium"
			case 2:
				return "Low"
			default:
				return labelOther
			}
		})
	case ByCategory:
		return groupByLabel(tasks, func(t model.Task) string { return t.Category })
	case BySubCategory:
		return groupByLabel(tasks, func(t model.Task) string { return t.SubCategory })
	default:
		if len(tasks) == 0 {
			return nil
		}
		return []Group{{Tasks: tasks}}
	}
}

// groupConsecutive buckets runs of equal keys in the already-sorted
// list, so group order follows the current sort order, including the
// placement of the no-due-date bucket at the matching extreme.
func groupConsecutive(tasks []model.Task, keyOf func(model.Task) string) []Group {
	var groups []Group
	for _, t := range tasks {
		label := keyOf(t)
		if n := len(groups); n > 0 && groups[n-1].Label == label {
			groups[n-1].Tasks = append(groups[n-1].Tasks, t)
			continue
		}
		groups = append(groups, Group{Label: label, Tasks: []model.Task{t}})
	}
	return groups
}

// groupByLabel partitions on the exact label value but keeps the label
// order the sort produced, so labels differing only in case form
// distinct groups without reordering. Empty labels display as None.
func groupByLabel(tasks []model.Task, labelOf func(model.Task) string) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, t := range tasks {
		label := labelOf(t)
		if i, ok := index[label]; ok {
			groups[i].Tasks = append(groups[i].Tasks, t)
			continue
		}
		display := label
		if display == "" {
			display = labelNone
		}
		index[label] = len(groups)
		groups = append(groups, Group{Label: display, Tasks: []model.Task{t}})
	}
	return groups
}
