package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"taskdeck/internal/model"
)

const schemaVersionKey = "schema_version"

// Store owns the durable task, label, and settings state. Single writer:
// the connection pool is capped at one connection and callers are
// expected to invoke operations from one goroutine.
type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// migrations are additive and ordered; each entry upgrades the schema by
// one version. Entries must never be reordered or edited once shipped.
var migrations = []func(*sql.Tx) error{
	migrateV1,
	migrateV2,
}

func (s *Store) migrate() error {
	// The settings table hosts the schema version, so it exists outside
	// the versioned sequence.
	const ddl = `
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("create settings table: %w", err)
	}

	version, err := s.schemaVersion()
	if err != nil {
		return err
	}
	for v := version; v < len(migrations); v++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if err := migrations[v](tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migrate to schema v%d: %w", v+1, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value;`,
			schemaVersionKey, strconv.Itoa(v+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("record schema v%d: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit schema v%d: %w", v+1, err)
		}
	}
	return nil
}

func (s *Store) schemaVersion() (int, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?;`, schemaVersionKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse schema version %q: %w", raw, err)
	}
	return version, nil
}

func migrateV1(tx *sql.Tx) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT DEFAULT '',
	due_date TEXT DEFAULT '',
	priority TEXT DEFAULT 'Med',
	completed INTEGER NOT NULL DEFAULT 0,
	category TEXT DEFAULT 'Other'
);
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE
);
CREATE TABLE IF NOT EXISTS tags (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE
);
CREATE TABLE IF NOT EXISTS task_tags (
	task_id INTEGER,
	tag_id INTEGER,
	PRIMARY KEY (task_id, tag_id),
	FOREIGN KEY (task_id) REFERENCES tasks (id),
	FOREIGN KEY (tag_id) REFERENCES tags (id)
);`
	_, err := tx.Exec(ddl)
	return err
}

func migrateV2(tx *sql.Tx) error {
	const ddl = `
ALTER TABLE tasks ADD COLUMN sub_category TEXT DEFAULT '';
ALTER TABLE tasks ADD COLUMN notes TEXT DEFAULT '';
CREATE TABLE IF NOT EXISTS sub_categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE
);`
	_, err := tx.Exec(ddl)
	return err
}

// CreateTask inserts a new row and returns the assigned id. Empty
// priority and category fall back to the model defaults; every other
// field is stored as given. On failure the returned id is 0.
func (s *Store) CreateTask(t model.Task) (int, error) {
	if strings.TrimSpace(t.Priority) == "" {
		t.Priority = model.DefaultPriority
	}
	if strings.TrimSpace(t.Category) == "" {
		t.Category = model.DefaultCategory
	}
	res, err := s.db.Exec(
		`INSERT INTO tasks (title, description, due_date, priority, completed, category, sub_category, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		t.Title, t.Description, t.DueDate, t.Priority, boolToInt(t.Completed), t.Category, t.SubCategory, t.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert task id: %w", err)
	}
	return int(id), nil
}

// GetTask returns the task and true, or ok=false when the id is unknown.
// The error is reserved for storage failures.
func (s *Store) GetTask(id int) (model.Task, bool, error) {
	var t model.Task
	var completed int
	err := s.db.QueryRow(
		`SELECT id, title, description, due_date, priority, completed, category, sub_category, notes
		 FROM tasks WHERE id = ?;`, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority, &completed, &t.Category, &t.SubCategory, &t.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, false, nil
	}
	if err != nil {
		return model.Task{}, false, fmt.Errorf("get task %d: %w", id, err)
	}
	t.Completed = completed == 1
	tags, err := s.TagsForTask(t.ID)
	if err != nil {
		return model.Task{}, false, err
	}
	t.Tags = tags
	return t, true, nil
}

// UpdateTask overwrites every mutable field of the row keyed by t.ID.
// Updating an unknown id affects no rows and is not an error.
func (s *Store) UpdateTask(t model.Task) error {
	_, err := s.db.Exec(
		`UPDATE tasks
		 SET title = ?, description = ?, due_date = ?, priority = ?, completed = ?, category = ?, sub_category = ?, notes = ?
		 WHERE id = ?;`,
		t.Title, t.Description, t.DueDate, t.Priority, boolToInt(t.Completed), t.Category, t.SubCategory, t.Notes, t.ID)
	if err != nil {
		return fmt.Errorf("update task %d: %w", t.ID, err)
	}
	return nil
}

// DeleteTask removes the row and its tag links. Deleting an unknown id
// is a no-op.
func (s *Store) DeleteTask(id int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM task_tags WHERE task_id = ?;`, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete task %d tags: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM tasks WHERE id = ?;`, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return tx.Commit()
}

// ListTasks returns every task in id order. Tag lists are not loaded
// here; use GetTask or TagsForTask when tags matter.
func (s *Store) ListTasks() ([]model.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, due_date, priority, completed, category, sub_category, notes
		 FROM tasks ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var completed int
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority, &completed, &t.Category, &t.SubCategory, &t.Notes); err != nil {
			return nil, err
		}
		t.Completed = completed == 1
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateCategory is idempotent: inserting an existing name is a no-op.
func (s *Store) CreateCategory(name string) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO categories (name) VALUES (?);`, name)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (s *Store) ListCategories() ([]string, error) {
	return s.listNames("categories")
}

// DeleteCategory removes the label and reassigns every task carrying it
// to the default category, as one unit: if the reassignment fails the
// deletion is rolled back.
func (s *Store) DeleteCategory(name string) error {
	return s.deleteLabel("categories", "category", name, model.DefaultCategory)
}

func (s *Store) CreateSubCategory(name string) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO sub_categories (name) VALUES (?);`, name)
	if err != nil {
		return fmt.Errorf("insert sub-category: %w", err)
	}
	return nil
}

func (s *Store) ListSubCategories() ([]string, error) {
	return s.listNames("sub_categories")
}

// DeleteSubCategory reassigns matching tasks to the empty sub-category.
func (s *Store) DeleteSubCategory(name string) error {
	return s.deleteLabel("sub_categories", "sub_category", name, "")
}

func (s *Store) listNames(table string) ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM ` + table + ` ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) deleteLabel(table, taskColumn, name, fallback string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM `+table+` WHERE name = ?;`, name); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if _, err := tx.Exec(`UPDATE tasks SET `+taskColumn+` = ? WHERE `+taskColumn+` = ?;`, fallback, name); err != nil {
		tx.Rollback()
		return fmt.Errorf("reassign %s: %w", taskColumn, err)
	}
	return tx.Commit()
}

// GetSetting never fails: any miss or storage error yields the default.
func (s *Store) GetSetting(key, fallback string) string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		return fallback
	}
	return value
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// CreateTag is idempotent, like CreateCategory.
func (s *Store) CreateTag(name string) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO tags (name) VALUES (?);`, name)
	if err != nil {
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

func (s *Store) ListTags() ([]string, error) {
	return s.listNames("tags")
}

// AddTagToTask creates the tag if needed and links it to the task.
func (s *Store) AddTagToTask(taskID int, name string) error {
	if err := s.CreateTag(name); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO task_tags (task_id, tag_id)
		 SELECT ?, id FROM tags WHERE name = ?;`, taskID, name)
	if err != nil {
		return fmt.Errorf("tag task %d: %w", taskID, err)
	}
	return nil
}

func (s *Store) RemoveTagFromTask(taskID int, name string) error {
	_, err := s.db.Exec(
		`DELETE FROM task_tags
		 WHERE task_id = ? AND tag_id = (SELECT id FROM tags WHERE name = ?);`, taskID, name)
	if err != nil {
		return fmt.Errorf("untag task %d: %w", taskID, err)
	}
	return nil
}

func (s *Store) TagsForTask(taskID int) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT tags.name FROM tags
		 JOIN task_tags ON tags.id = task_tags.tag_id
		 WHERE task_tags.task_id = ?
		 ORDER BY tags.name;`, taskID)
	if err != nil {
		return nil, fmt.Errorf("tags for task %d: %w", taskID, err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
