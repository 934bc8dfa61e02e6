package engine

import (
	"reflect"
	"testing"

	"taskdeck/internal/model"
)

func specTasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "A", DueDate: "2024-01-05", Priority: "High", Category: "Work"},
		{ID: 2, Title: "B", DueDate: "2024-01-01", Priority: "Low", Category: "Home"},
		{ID: 3, Title: "C", DueDate: "", Priority: "Medium", Category: "Work"},
	}
}

func flatten(groups []Group) []model.Task {
	var out []model.Task
	for _, g := range groups {
		out = append(out, g.Tasks...)
	}
	return out
}

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func labels(groups []Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Label)
	}
	return out
}

func TestDueDateAscendingNoDateLast(t *testing.T) {
	groups := Apply(specTasks(), Criteria{Sort: ByDueDate})
	got := titles(flatten(groups))
	want := []string{"B", "A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPriorityAscending(t *testing.T) {
	groups := Apply(specTasks(), Criteria{Sort: ByPriority})
	got := titles(flatten(groups))
	want := []string{"A", "C", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDescendingIsExactReverse(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "a", DueDate: "2024-02-01", Priority: "Low", Category: "Work", SubCategory: "x"},
		{ID: 2, Title: "b", DueDate: "2024-01-01", Priority: "High", Category: "home", SubCategory: "y"},
		{ID: 3, Title: "c", DueDate: "", Priority: "Med", Category: "Work", SubCategory: ""},
		{ID: 4, Title: "d", DueDate: "2024-02-01", Priority: "nonsense", Category: "Play", SubCategory: "x"},
	}
	for _, key := range []SortKey{ByDueDate, ByPriority, ByCategory, BySubCategory} {
		asc := titles(flatten(Apply(tasks, Criteria{Sort: key, Order: Ascending})))
		desc := titles(flatten(Apply(tasks, Criteria{Sort: key, Order: Descending})))
		if len(asc) != len(desc) {
			t.Fatalf("sort key %d: length mismatch", key)
		}
		for i := range asc {
			if asc[i] != desc[len(desc)-1-i] {
				t.Fatalf("sort key %d: descending is not the reverse of ascending:\nasc  %v\ndesc %v", key, asc, desc)
			}
		}
	}
}

func TestCompletionFiltersPartitionAll(t *testing.T) {
	tasks := specTasks()
	tasks[1].Completed = true

	all := flatten(Apply(tasks, Criteria{Completion: All, Sort: ByDueDate}))
	active := flatten(Apply(tasks, Criteria{Completion: Active, Sort: ByDueDate}))
	completed := flatten(Apply(tasks, Criteria{Completion: Completed, Sort: ByDueDate}))

	seen := map[int]int{}
	for _, task := range active {
		if task.Completed {
			t.Fatalf("active filter kept a completed task: %+v", task)
		}
		seen[task.ID]++
	}
	for _, task := range completed {
		if !task.Completed {
			t.Fatalf("completed filter kept an active task: %+v", task)
		}
		seen[task.ID]++
	}
	if len(active)+len(completed) != len(all) {
		t.Fatalf("partition size mismatch: %d + %d != %d", len(active), len(completed), len(all))
	}
	for _, task := range all {
		if seen[task.ID] != 1 {
			t.Fatalf("task %d appears %d times across the partition", task.ID, seen[task.ID])
		}
	}
}

func TestEmptySearchMatchesNoFilter(t *testing.T) {
	with := flatten(Apply(specTasks(), Criteria{Sort: ByDueDate, Search: ""}))
	without := flatten(Apply(specTasks(), Criteria{Sort: ByDueDate}))
	if !reflect.DeepEqual(titles(with), titles(without)) {
		t.Fatalf("empty search changed the result: %v vs %v", titles(with), titles(without))
	}
}

func TestSearchIsCaseInsensitiveSubstringOnTitle(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "Buy groceries"},
		{ID: 2, Title: "GROCERY run"},
		{ID: 3, Title: "Laundry", Description: "grocer"},
	}
	got := titles(flatten(Apply(tasks, Criteria{Search: "grocer"})))
	want := []string{"Buy groceries", "GROCERY run"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSearchGroupsByCompletion(t *testing.T) {
	groups := Apply(specTasks(), Criteria{Completion: All, Sort: ByDueDate, Search: "B"})
	if !reflect.DeepEqual(labels(groups), []string{"Active"}) {
		t.Fatalf("expected only an Active group, got %v", labels(groups))
	}
	if got := titles(groups[0].Tasks); !reflect.DeepEqual(got, []string{"B"}) {
		t.Fatalf("expected [B], got %v", got)
	}
}

func TestSearchSplitsActiveThenCompleted(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "pay rent", DueDate: "2024-03-02"},
		{ID: 2, Title: "pay taxes", DueDate: "2024-03-01", Completed: true},
		{ID: 3, Title: "pay insurance", DueDate: "2024-01-01"},
	}
	groups := Apply(tasks, Criteria{Sort: ByDueDate, Search: "pay", GroupBy: true})
	if !reflect.DeepEqual(labels(groups), []string{"Active", "Completed"}) {
		t.Fatalf("expected Active then Completed, got %v", labels(groups))
	}
	if got := titles(groups[0].Tasks); !reflect.DeepEqual(got, []string{"pay insurance", "pay rent"}) {
		t.Fatalf("active group out of order: %v", got)
	}
	if got := titles(groups[1].Tasks); !reflect.DeepEqual(got, []string{"pay taxes"}) {
		t.Fatalf("completed group wrong: %v", got)
	}
}

func TestGroupByDueDatePlacesNoDateAtExtreme(t *testing.T) {
	tasks := specTasks()
	asc := Apply(tasks, Criteria{Sort: ByDueDate, GroupBy: true})
	if !reflect.DeepEqual(labels(asc), []string{"2024-01-01", "2024-01-05", "No Due Date"}) {
		t.Fatalf("ascending labels wrong: %v", labels(asc))
	}
	desc := Apply(tasks, Criteria{Sort: ByDueDate, Order: Descending, GroupBy: true})
	if !reflect.DeepEqual(labels(desc), []string{"No Due Date", "2024-01-05", "2024-01-01"}) {
		t.Fatalf("descending labels wrong: %v", labels(desc))
	}
}

func TestGroupByPriorityUsesCanonicalLabels(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "a", Priority: "Low"},
		{ID: 2, Title: "b", Priority: "High"},
		{ID: 3, Title: "c", Priority: "Med"},
		{ID: 4, Title: "d", Priority: "Medium"},
		{ID: 5, Title: "e", Priority: "???"},
	}
	groups := Apply(tasks, Criteria{Sort: ByPriority, GroupBy: true})
	if !reflect.DeepEqual(labels(groups), []string{"High", "Medium", "Low", "Other"}) {
		t.Fatalf("labels wrong: %v", labels(groups))
	}
	if got := titles(groups[1].Tasks); !reflect.DeepEqual(got, []string{"c", "d"}) {
		t.Fatalf("Med and Medium should share a group: %v", got)
	}
}

func TestGroupByCategoryAlphabetical(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "a", Category: "Work"},
		{ID: 2, Title: "b", Category: "home"},
		{ID: 3, Title: "c", Category: "Work"},
		{ID: 4, Title: "d", Category: "Errands"},
	}
	asc := Apply(tasks, Criteria{Sort: ByCategory, GroupBy: true})
	if !reflect.DeepEqual(labels(asc), []string{"Errands", "home", "Work"}) {
		t.Fatalf("ascending labels wrong: %v", labels(asc))
	}
	if got := titles(asc[2].Tasks); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("within-group order lost: %v", got)
	}
	desc := Apply(tasks, Criteria{Sort: ByCategory, Order: Descending, GroupBy: true})
	if !reflect.DeepEqual(labels(desc), []string{"Work", "home", "Errands"}) {
		t.Fatalf("descending labels wrong: %v", labels(desc))
	}
}

func TestGroupBySubCategoryEmptyLast(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "a", Category: "Work", SubCategory: "Office"},
		{ID: 2, Title: "b", Category: "Work", SubCategory: ""},
		{ID: 3, Title: "c", Category: "Home", SubCategory: "Garden"},
	}
	groups := Apply(tasks, Criteria{Sort: BySubCategory, GroupBy: true})
	if !reflect.DeepEqual(labels(groups), []string{"Garden", "Office", "None"}) {
		t.Fatalf("labels wrong: %v", labels(groups))
	}
}

func TestCategoryAndSubCategoryFilters(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "a", Category: "Work", SubCategory: "Office"},
		{ID: 2, Title: "b", Category: "Work", SubCategory: "Remote"},
		{ID: 3, Title: "c", Category: "Home", SubCategory: "Office"},
	}
	got := titles(flatten(Apply(tasks, Criteria{Category: "Work", SubCategory: "Office"})))
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("filters must AND: %v", got)
	}
}

func TestCategorySortTieBreaksOnSubCategory(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "a", Category: "Work", SubCategory: "zeta"},
		{ID: 2, Title: "b", Category: "Work", SubCategory: "alpha"},
	}
	got := titles(flatten(Apply(tasks, Criteria{Sort: ByCategory})))
	if !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("tie-break wrong: %v", got)
	}
}

func TestUnrecognizedPrioritySortsLast(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "weird", Priority: "Urgent"},
		{ID: 2, Title: "low", Priority: "Low"},
	}
	got := titles(flatten(Apply(tasks, Criteria{Sort: ByPriority})))
	if !reflect.DeepEqual(got, []string{"low", "weird"}) {
		t.Fatalf("unknown priority should sort last: %v", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	tasks := specTasks()
	before := make([]model.Task, len(tasks))
	copy(before, tasks)

	Apply(tasks, Criteria{Sort: ByDueDate, Order: Descending, GroupBy: true})

	if !reflect.DeepEqual(tasks, before) {
		t.Fatalf("input mutated:\nbefore %v\nafter  %v", before, tasks)
	}
}

func TestNoGroupingYieldsSingleUnlabeledGroup(t *testing.T) {
	groups := Apply(specTasks(), Criteria{Sort: ByDueDate})
	if len(groups) != 1 || groups[0].Label != "" {
		t.Fatalf("expected one unlabeled group, got %v", labels(groups))
	}
}

func TestEmptyInput(t *testing.T) {
	if groups := Apply(nil, Criteria{Sort: ByDueDate, GroupBy: true}); len(groups) != 0 {
		t.Fatalf("expected no groups for no tasks, got %v", labels(groups))
	}
}
