// Package sqlite provides the durable thought store backed by SQLite.
//
// The store is a single-namespace key-value table holding the
// serialized thought list as one JSON document, mirroring the
// load-once / save-whole access pattern of the core.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Fletch-Industries/immutify/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Fletch-Industries/immutify/internal/core/domain"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driven"
)

// namespace keys the thought list within the store. Fixed for the
// application; kept as a column so the table shape matches the
// external key-value collaborator it stands in for.
const namespace = "immutify.thoughts"

// Ensure Store implements the interface.
var _ driven.ThoughtStore = (*Store)(nil)

// Store is a SQLite-backed implementation of driven.ThoughtStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.immutify/data/thoughts.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".immutify", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "thoughts.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// storedMedia is the serialized attachment shape. Data is base64 in
// the JSON document via encoding/json's []byte handling.
type storedMedia struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Data []byte `json:"data"`
}

// storedThought is the serialized record shape. CreatedAt is an
// ISO-8601 string so the document stays readable and portable.
type storedThought struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content,omitempty"`
	Media      *storedMedia `json:"media,omitempty"`
	Private    bool         `json:"isPrivate"`
	Commitment string       `json:"commitment,omitempty"`
	CreatedAt  string       `json:"createdAt"`
	OnLedger   bool         `json:"onLedger"`
	TxID       string       `json:"txid,omitempty"`
}

// Load reads the complete thought list. A store that has never been
// written returns an empty list.
func (s *Store) Load(ctx context.Context) ([]domain.Thought, error) {
	var payload string
	row := s.db.QueryRowContext(ctx,
		"SELECT payload FROM thought_lists WHERE namespace = ?", namespace)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading thought list: %w", err)
	}

	var stored []storedThought
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, fmt.Errorf("decoding thought list: %w", err)
	}

	thoughts := make([]domain.Thought, len(stored))
	for i, st := range stored {
		createdAt, err := time.Parse(time.RFC3339Nano, st.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("decoding createdAt for thought %s: %w", st.ID, err)
		}
		thoughts[i] = domain.Thought{
			ID:         st.ID,
			Title:      st.Title,
			Content:    st.Content,
			Private:    st.Private,
			Commitment: st.Commitment,
			CreatedAt:  createdAt,
			OnLedger:   st.OnLedger,
			TxID:       st.TxID,
		}
		if st.Media != nil {
			thoughts[i].Media = &domain.MediaAttachment{
				Name: st.Media.Name,
				Size: st.Media.Size,
				Data: st.Media.Data,
			}
		}
	}
	return thoughts, nil
}

// Save replaces the stored list with the given one, preserving order.
func (s *Store) Save(ctx context.Context, thoughts []domain.Thought) error {
	stored := make([]storedThought, len(thoughts))
	for i, t := range thoughts {
		stored[i] = storedThought{
			ID:         t.ID,
			Title:      t.Title,
			Content:    t.Content,
			Private:    t.Private,
			Commitment: t.Commitment,
			CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339Nano),
			OnLedger:   t.OnLedger,
			TxID:       t.TxID,
		}
		if t.Media != nil {
			stored[i].Media = &storedMedia{
				Name: t.Media.Name,
				Size: t.Media.Size,
				Data: t.Media.Data,
			}
		}
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding thought list: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO thought_lists (namespace, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, namespace, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing thought list: %w", err)
	}
	return nil
}
