package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	strftime "github.com/ncruces/go-strftime"

	"taskdeck/internal/config"
	"taskdeck/internal/engine"
	"taskdeck/internal/model"
	"taskdeck/internal/storage"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeSearch
	modeCategories
)

const (
	dateFormatKey     = "date_format"
	defaultDateFormat = "%Y-%m-%d"
	isoLayout         = "2006-01-02"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type editState struct {
	taskID      int
	title       string
	description string
	due         string
	priority    string
	category    string
	subCategory string
	notes       string
	index       int
}

type catState struct {
	index  int
	adding bool
}

type Model struct {
	store         *storage.Store
	cfg           config.Config
	tasks         []model.Task
	categories    []string
	subCategories []string
	view          []engine.Group
	flat          []model.Task
	criteria      engine.Criteria
	cursor        int
	mode          mode
	input         textinput.Model
	status        string
	datePattern   string
	confirmDel    bool
	pendingDel    *model.Task
	edit          *editState
	cat           *catState
}

func Run(store *storage.Store, cfg config.Config) error {
	tasks, err := store.ListTasks()
	if err != nil {
		return err
	}
	categories, err := store.ListCategories()
	if err != nil {
		return err
	}
	subCategories, err := store.ListSubCategories()
	if err != nil {
		return err
	}

	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:         store,
		cfg:           cfg,
		tasks:         tasks,
		categories:    categories,
		subCategories: subCategories,
		criteria:      startCriteria(cfg),
		input:         ti,
		mode:          modeList,
		status:        "Press 'a' to add, space to toggle, '/' to search.",
		datePattern:   resolveDatePattern(store),
	}
	m.refresh()

	program := tea.NewProgram(m)
	_, err = program.Run()
	return err
}

func startCriteria(cfg config.Config) engine.Criteria {
	c := engine.Criteria{GroupBy: cfg.GroupByStart}
	switch strings.ToLower(cfg.DefaultFilter) {
	case "active":
		c.Completion = engine.Active
	case "completed":
		c.Completion = engine.Completed
	}
	switch strings.ToLower(cfg.DefaultSort) {
	case "priority":
		c.Sort = engine.ByPriority
	case "category":
		c.Sort = engine.ByCategory
	case "subcategory":
		c.Sort = engine.BySubCategory
	}
	if strings.ToLower(cfg.DefaultOrder) == "desc" {
		c.Order = engine.Descending
	}
	return c
}

// resolveDatePattern reads the user's date_format setting and validates
// it, falling back to the ISO pattern when it does not translate to a
// time layout.
func resolveDatePattern(store *storage.Store) string {
	pattern := store.GetSetting(dateFormatKey, defaultDateFormat)
	if _, err := strftime.Layout(pattern); err != nil {
		return defaultDateFormat
	}
	return pattern
}

// refresh recomputes the displayed ordering from the in-memory
// collection; it runs after every mutation or criteria change.
func (m *Model) refresh() {
	m.view = engine.Apply(m.tasks, m.criteria)
	m.flat = m.flat[:0]
	for _, g := range m.view {
		m.flat = append(m.flat, g.Tasks...)
	}
	m.cursor = clampCursor(m.cursor, len(m.flat))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg.String(), msg)
		case modeEdit:
			return m.updateEditMode(msg.String(), msg)
		case modeSearch:
			return m.updateSearchMode(msg.String(), msg)
		case modeCategories:
			return m.updateCategoriesMode(msg.String(), msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(m.flat) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(m.flat))
		}
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.flat))
		}
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.Placeholder = "Task title"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Add mode: type a title and press Enter"
	case m.cfg.Keys.Toggle:
		return m.toggleSelected()
	case m.cfg.Keys.Delete:
		if len(m.flat) == 0 {
			return m, nil
		}
		t := m.flat[m.cursor]
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	case m.cfg.Keys.Edit:
		if len(m.flat) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startEdit(m.flat[m.cursor])
	case m.cfg.Keys.Search:
		m.mode = modeSearch
		m.input.Placeholder = "Search titles"
		m.input.SetValue(m.criteria.Search)
		m.input.Focus()
		m.status = "Search: type to filter, enter to keep, esc to clear"
	case m.cfg.Keys.Filter:
		m.criteria.Completion = nextCompletion(m.criteria.Completion)
		m.status = "Filter: " + completionName(m.criteria.Completion)
		m.refresh()
	case m.cfg.Keys.Sort:
		m.criteria.Sort = nextSortKey(m.criteria.Sort)
		m.status = "Sort by " + sortKeyName(m.criteria.Sort)
		m.refresh()
	case m.cfg.Keys.Order:
		if m.criteria.Order == engine.Ascending {
			m.criteria.Order = engine.Descending
			m.status = "Order: descending"
		} else {
			m.criteria.Order = engine.Ascending
			m.status = "Order: ascending"
		}
		m.refresh()
	case m.cfg.Keys.Group:
		m.criteria.GroupBy = !m.criteria.GroupBy
		if m.criteria.GroupBy {
			m.status = "Grouping on"
		} else {
			m.status = "Grouping off"
		}
		m.refresh()
	case m.cfg.Keys.Categories:
		m.mode = modeCategories
		m.cat = &catState{}
		m.status = "Categories: a add, d delete, enter filter, esc back"
	}
	return m, nil
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	if len(m.flat) == 0 {
		return m, nil
	}
	t := m.flat[m.cursor]
	t.Completed = !t.Completed
	if err := m.store.UpdateTask(t); err != nil {
		m.status = fmt.Sprintf("toggle failed: %v", err)
		return m, nil
	}
	m.applyTask(t)
	m.status = "Toggled task"
	m.refresh()
	return m, nil
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		t := model.Task{
			Title:    title,
			Priority: model.DefaultPriority,
			Category: model.DefaultCategory,
		}
		id, err := m.store.CreateTask(t)
		if err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		t.ID = id
		m.tasks = append(m.tasks, t)
		m.status = "Added task"
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.refresh()
		m.moveCursorTo(id)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateSearchMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.criteria.Search = ""
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Search cleared"
		m.refresh()
		return m, nil
	case m.cfg.Keys.Confirm:
		m.mode = modeList
		m.input.Blur()
		if m.criteria.Search == "" {
			m.status = "Search cleared"
		} else {
			m.status = fmt.Sprintf("Searching %q", m.criteria.Search)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.criteria.Search = m.input.Value()
		m.refresh()
		return m, cmd
	}
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		if err := m.store.DeleteTask(m.pendingDel.ID); err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
			m.confirmDel = false
			m.pendingDel = nil
			return m, nil
		}
		m.removeTask(m.pendingDel.ID)
		m.status = "Deleted task"
		m.confirmDel = false
		m.pendingDel = nil
		m.refresh()
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) startEdit(t model.Task) (tea.Model, tea.Cmd) {
	m.edit = &editState{
		taskID:      t.ID,
		title:       t.Title,
		description: t.Description,
		due:         t.DueDate,
		priority:    t.Priority,
		category:    t.Category,
		subCategory: t.SubCategory,
		notes:       t.Notes,
	}
	m.input.SetValue(m.edit.currentValue())
	m.input.Placeholder = m.edit.currentLabel()
	m.input.Focus()
	m.mode = modeEdit
	m.status = "Edit: tab to move, enter to save/next, esc to cancel"
	return m, nil
}

func (m Model) updateEditMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.edit == nil {
		m.mode = modeList
		return m, nil
	}
	switch key {
	case m.cfg.Keys.Cancel:
		m.edit = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case m.cfg.Keys.NextField, "down":
		m.edit.setCurrentValue(m.input.Value())
		m.edit.index = wrapIndex(m.edit.index+1, len(editFields()))
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		return m, nil
	case m.cfg.Keys.PrevField, "up":
		m.edit.setCurrentValue(m.input.Value())
		m.edit.index = wrapIndex(m.edit.index-1, len(editFields()))
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		return m, nil
	case m.cfg.Keys.Confirm:
		m.edit.setCurrentValue(m.input.Value())
		if m.edit.index >= len(editFields())-1 {
			return m.saveEdit()
		}
		m.edit.index++
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	if m.edit == nil {
		return m, nil
	}
	title := strings.TrimSpace(m.edit.title)
	if title == "" {
		m.status = "Title cannot be empty"
		return m, nil
	}
	due := strings.TrimSpace(m.edit.due)
	if due != "" {
		if _, err := time.Parse(isoLayout, due); err != nil {
			m.status = "due date invalid: use YYYY-MM-DD"
			return m, nil
		}
	}

	cur, ok := m.taskByID(m.edit.taskID)
	if !ok {
		m.edit = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Task no longer exists"
		return m, nil
	}
	updated := cur
	updated.Title = title
	updated.Description = m.edit.description
	updated.DueDate = due
	updated.Priority = strings.TrimSpace(m.edit.priority)
	updated.Category = strings.TrimSpace(m.edit.category)
	updated.SubCategory = strings.TrimSpace(m.edit.subCategory)
	updated.Notes = m.edit.notes
	if updated.Priority == "" {
		updated.Priority = model.DefaultPriority
	}
	if updated.Category == "" {
		updated.Category = model.DefaultCategory
	}

	if err := m.store.UpdateTask(updated); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	m.applyTask(updated)
	m.rememberLabels(updated)

	taskID := m.edit.taskID
	m.edit = nil
	m.mode = modeList
	m.input.Blur()
	m.status = "Saved task"
	m.refresh()
	m.moveCursorTo(taskID)
	return m, nil
}

// rememberLabels grows the advisory label vocabulary when an edit
// introduces a category or sub-category the pickers have not seen.
func (m *Model) rememberLabels(t model.Task) {
	if !containsString(m.categories, t.Category) {
		if err := m.store.CreateCategory(t.Category); err == nil {
			m.categories = append(m.categories, t.Category)
		}
	}
	if t.SubCategory != "" && !containsString(m.subCategories, t.SubCategory) {
		if err := m.store.CreateSubCategory(t.SubCategory); err == nil {
			m.subCategories = append(m.subCategories, t.SubCategory)
		}
	}
}

func (m Model) updateCategoriesMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.cat == nil {
		m.mode = modeList
		return m, nil
	}
	if m.cat.adding {
		switch key {
		case m.cfg.Keys.Cancel:
			m.cat.adding = false
			m.input.SetValue("")
			m.input.Blur()
			return m, nil
		case m.cfg.Keys.Confirm:
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				m.status = "Category name cannot be empty"
				return m, nil
			}
			if err := m.store.CreateCategory(name); err != nil {
				m.status = fmt.Sprintf("add category failed: %v", err)
				return m, nil
			}
			if !containsString(m.categories, name) {
				m.categories = append(m.categories, name)
			}
			m.cat.adding = false
			m.input.SetValue("")
			m.input.Blur()
			m.status = "Added category " + name
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	switch key {
	case m.cfg.Keys.Cancel, m.cfg.Keys.Quit:
		m.cat = nil
		m.mode = modeList
		m.status = "Back to tasks"
		return m, nil
	case m.cfg.Keys.Down, "down":
		if len(m.categories) > 0 {
			m.cat.index = clampCursor(m.cat.index+1, len(m.categories))
		}
	case m.cfg.Keys.Up, "up":
		if m.cat.index > 0 {
			m.cat.index = clampCursor(m.cat.index-1, len(m.categories))
		}
	case m.cfg.Keys.Add:
		m.cat.adding = true
		m.input.Placeholder = "Category name"
		m.input.SetValue("")
		m.input.Focus()
	case m.cfg.Keys.Delete:
		if len(m.categories) == 0 {
			return m, nil
		}
		name := m.categories[m.cat.index]
		if err := m.store.DeleteCategory(name); err != nil {
			m.status = fmt.Sprintf("delete category failed: %v", err)
			return m, nil
		}
		m.categories = removeString(m.categories, name)
		m.cat.index = clampCursor(m.cat.index, len(m.categories))
		// Mirror the store's reassignment in memory.
		for i := range m.tasks {
			if m.tasks[i].Category == name {
				m.tasks[i].Category = model.DefaultCategory
			}
		}
		if m.criteria.Category == name {
			m.criteria.Category = ""
		}
		m.status = fmt.Sprintf("Deleted category %s; tasks moved to %s", name, model.DefaultCategory)
		m.refresh()
	case m.cfg.Keys.Confirm:
		if len(m.categories) == 0 {
			return m, nil
		}
		name := m.categories[m.cat.index]
		if m.criteria.Category == name {
			m.criteria.Category = ""
			m.status = "Category filter cleared"
		} else {
			m.criteria.Category = name
			m.status = "Filtering category " + name
		}
		m.refresh()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("taskdeck"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(m.criteriaLine()))
	b.WriteString("\n\n")

	if m.mode == modeCategories {
		b.WriteString(m.renderCategories())
	} else if len(m.flat) == 0 {
		b.WriteString("No tasks to show. Press 'a' to add one.")
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderGroups())
	}

	if m.mode == modeAdd || m.mode == modeSearch || m.mode == modeEdit || (m.cat != nil && m.cat.adding) {
		b.WriteString("\n")
		if m.mode == modeEdit && m.edit != nil {
			b.WriteString(m.renderEditBox())
			b.WriteString("\n")
		}
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) criteriaLine() string {
	parts := []string{
		completionName(m.criteria.Completion),
		"sort:" + sortKeyName(m.criteria.Sort) + orderSuffix(m.criteria.Order),
	}
	if m.criteria.Category != "" {
		parts = append(parts, "category:"+m.criteria.Category)
	}
	if m.criteria.SubCategory != "" {
		parts = append(parts, "sub:"+m.criteria.SubCategory)
	}
	if m.criteria.Search != "" {
		parts = append(parts, fmt.Sprintf("search:%q", m.criteria.Search))
	}
	if m.criteria.GroupBy {
		parts = append(parts, "grouped")
	}
	return strings.Join(parts, " • ")
}

func (m Model) renderGroups() string {
	var b strings.Builder
	idx := 0
	for _, g := range m.view {
		if g.Label != "" {
			b.WriteString(headerStyle.Render(g.Label))
			b.WriteString("\n")
		}
		for _, t := range g.Tasks {
			b.WriteString(m.renderTaskLine(t, idx == m.cursor))
			b.WriteString("\n")
			idx++
		}
	}
	return b.String()
}

func (m Model) renderTaskLine(t model.Task, selected bool) string {
	cursor := " "
	if selected && m.mode == modeList {
		cursor = ">"
	}

	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	line := fmt.Sprintf("%s %s [%s] %s", cursor, checkbox, t.Priority, t.Title)
	if t.DueDate != "" {
		line += " • due " + m.formatDueDate(t.DueDate)
	}
	if t.Category != "" {
		line += " • " + t.Category
		if t.SubCategory != "" {
			line += "/" + t.SubCategory
		}
	}
	if t.Notes != "" {
		line += " ✎"
	}

	if t.Completed {
		return doneStyle.Render(line)
	}
	if selected && m.mode == modeList {
		return selectedStyle.Render(line)
	}
	return line
}

// formatDueDate renders the stored ISO date with the user's configured
// strftime pattern; unparseable values are shown as stored.
func (m Model) formatDueDate(due string) string {
	t, err := time.Parse(isoLayout, due)
	if err != nil {
		return due
	}
	return strftime.Format(m.datePattern, t)
}

func (m Model) renderCategories() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Categories"))
	b.WriteString("\n")
	if len(m.categories) == 0 {
		b.WriteString("No categories yet. Press 'a' to add one.\n")
		return b.String()
	}
	for i, name := range m.categories {
		cursor := " "
		if i == m.cat.index {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s", cursor, name)
		if m.criteria.Category == name {
			line += " (filtering)"
		}
		if i == m.cat.index {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEditBox() string {
	fields := editFields()
	values := []string{
		m.edit.title,
		m.edit.description,
		m.edit.due,
		m.edit.priority,
		m.edit.category,
		m.edit.subCategory,
		m.edit.notes,
	}
	var b strings.Builder
	for i, name := range fields {
		prefix := " "
		if i == m.edit.index {
			prefix = ">"
		}
		val := values[i]
		if strings.TrimSpace(val) == "" {
			val = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%s %-24s : %s\n", prefix, name, val))
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s delete • %s edit • %s search • %s filter • %s sort • %s order • %s group • %s categories • %s quit",
		k.Up, k.Down, k.Add, k.Toggle, k.Delete, k.Edit, k.Search, k.Filter, k.Sort, k.Order, k.Group, k.Categories, k.Quit)
}

func editFields() []string {
	return []string{
		"title",
		"description",
		"due date (YYYY-MM-DD)",
		"priority (High/Med/Low)",
		"category",
		"sub-category",
		"notes",
	}
}

func (es editState) currentLabel() string {
	return editFields()[es.index]
}

func (es editState) currentValue() string {
	switch es.index {
	case 0:
		return es.title
	case 1:
		return es.description
	case 2:
		return es.due
	case 3:
		return es.priority
	case 4:
		return es.category
	case 5:
		return es.subCategory
	case 6:
		return es.notes
	default:
		return ""
	}
}

func (es *editState) setCurrentValue(v string) {
	switch es.index {
	case 0:
		es.title = v
	case 1:
		es.description = v
	case 2:
		es.due = v
	case 3:
		es.priority = v
	case 4:
		es.category = v
	case 5:
		es.subCategory = v
	case 6:
		es.notes = v
	}
}

// applyTask replaces the in-memory copy of a task after a successful
// store write.
func (m *Model) applyTask(t model.Task) {
	for i := range m.tasks {
		if m.tasks[i].ID == t.ID {
			m.tasks[i] = t
			return
		}
	}
}

func (m *Model) removeTask(id int) {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

func (m Model) taskByID(id int) (model.Task, bool) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (m *Model) moveCursorTo(id int) {
	for i, t := range m.flat {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func nextCompletion(c engine.Completion) engine.Completion {
	switch c {
	case engine.All:
		return engine.Active
	case engine.Active:
		return engine.Completed
	default:
		return engine.All
	}
}

func completionName(c engine.Completion) string {
	switch c {
	case engine.Active:
		return "Active"
	case engine.Completed:
		return "Completed"
	default:
		return "All"
	}
}

func nextSortKey(k engine.SortKey) engine.SortKey {
	switch k {
	case engine.ByDueDate:
		return engine.ByPriority
	case engine.ByPriority:
		return engine.ByCategory
	case engine.ByCategory:
		return engine.BySubCategory
	default:
		return engine.ByDueDate
	}
}

func sortKeyName(k engine.SortKey) string {
	switch k {
	case engine.ByPriority:
		return "priority"
	case engine.ByCategory:
		return "category"
	case engine.BySubCategory:
		return "sub-category"
	default:
		return "due date"
	}
}

func orderSuffix(o engine.Order) string {
	if o == engine.Descending {
		return "↓"
	}
	return "↑"
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func removeString(list []string, v string) []string {
	for i, s := range list {
		if s == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
