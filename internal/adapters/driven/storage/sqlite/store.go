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

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/timexy/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
)

// Store is a SQLite-based document store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.timexy/data/documents.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".timexy", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "documents.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
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
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %s: %w", name, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// tokenRecord is the JSON form of a token in the documents.tokens column.
type tokenRecord struct {
	Text    string `json:"text"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	IsDigit bool   `json:"is_digit,omitempty"`
}

// SaveDocument stores or updates a document and replaces its annotations.
func (s *documentStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}

	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}
	tokensJSON, err := json.Marshal(toRecords(doc.Tokens))
	if err != nil {
		return fmt.Errorf("marshalling tokens: %w", err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, uri, language, text, tokens, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			uri = excluded.uri,
			language = excluded.language,
			text = excluded.text,
			tokens = excluded.tokens,
			metadata = excluded.metadata,
			updated_at = excluded.updated_at
	`, doc.ID, doc.URI, doc.Language, doc.Text, string(tokensJSON),
		string(metadataJSON), doc.CreatedAt.UTC(), doc.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM annotations WHERE document_id = ?", doc.ID); err != nil {
		return fmt.Errorf("clearing annotations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO annotations (document_id, token_start, token_end, start_char, end_char,
			label, kb_id, value_kind, value_date, quantity, unit, text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, span := range doc.Entities() {
		var valueDate sql.NullTime
		if span.Value.Kind == domain.ValueDate {
			valueDate = sql.NullTime{Time: span.Value.Date.UTC(), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, doc.ID, span.TokenStart, span.TokenEnd, span.Start, span.End,
			span.Label, span.KBID, span.Value.Kind.String(), valueDate,
			span.Value.Quantity, string(span.Value.Unit), span.Text); err != nil {
			return fmt.Errorf("saving annotation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetDocument retrieves a document and its annotations by ID.
func (s *documentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, uri, language, text, tokens, metadata, created_at, updated_at
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadAnnotations(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocumentByURI retrieves the newest document stored for uri.
func (s *documentStore) FindDocumentByURI(ctx context.Context, uri string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, uri, language, text, tokens, metadata, created_at, updated_at
		FROM documents WHERE uri = ?
		ORDER BY created_at DESC, id
		LIMIT 1
	`, uri)

	doc, err := scanDocument(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadAnnotations(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns all documents, newest first.
func (s *documentStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, uri, language, text, tokens, metadata, created_at, updated_at
		FROM documents ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	rows.Close()

	for i := range docs {
		if err := s.loadAnnotations(ctx, &docs[i]); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// DeleteDocument removes a document; its annotations cascade.
func (s *documentStore) DeleteDocument(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *documentStore) loadAnnotations(ctx context.Context, doc *domain.Document) error {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT token_start, token_end, start_char, end_char, label, kb_id,
			value_kind, value_date, quantity, unit, text
		FROM annotations WHERE document_id = ?
		ORDER BY token_start
	`, doc.ID)
	if err != nil {
		return fmt.Errorf("querying annotations: %w", err)
	}
	defer rows.Close()

	doc.Annotations = domain.NewAnnotationSet(len(doc.Tokens))
	for rows.Next() {
		span, err := scanSpan(rows)
		if err != nil {
			return err
		}
		if err := doc.Annotations.Insert(span); err != nil {
			return fmt.Errorf("restoring annotation for %s: %w", doc.ID, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating annotations: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDocument scans a document row without its annotations.
func scanDocument(row scanner) (*domain.Document, error) {
	var doc domain.Document
	var tokensJSON, metadataJSON string

	if err := row.Scan(&doc.ID, &doc.URI, &doc.Language, &doc.Text, &tokensJSON,
		&metadataJSON, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	var records []tokenRecord
	if err := json.Unmarshal([]byte(tokensJSON), &records); err != nil {
		return nil, fmt.Errorf("unmarshaling tokens: %w", err)
	}
	doc.Tokens = fromRecords(records)

	if metadataJSON != "" && metadataJSON != "null" {
		if err := json.Unmarshal([]byte(metadataJSON), &doc.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshaling metadata: %w", err)
		}
	}

	return &doc, nil
}

func scanSpan(row scanner) (domain.Span, error) {
	var span domain.Span
	var kind, unit string
	var valueDate sql.NullTime

	if err := row.Scan(&span.TokenStart, &span.TokenEnd, &span.Start, &span.End,
		&span.Label, &span.KBID, &kind, &valueDate, &span.Value.Quantity, &unit, &span.Text); err != nil {
		return domain.Span{}, fmt.Errorf("scanning annotation: %w", err)
	}

	k, ok := domain.ParseValueKind(kind)
	if !ok {
		return domain.Span{}, fmt.Errorf("scanning annotation: unknown value kind %q", kind)
	}
	span.Value.Kind = k
	span.Value.Unit = domain.Unit(unit)
	if valueDate.Valid {
		span.Value.Date = valueDate.Time.UTC()
	}
	return span, nil
}

func toRecords(tokens []domain.Token) []tokenRecord {
	records := make([]tokenRecord, len(tokens))
	for i, t := range tokens {
		records[i] = tokenRecord{Text: t.Text, Start: t.Start, End: t.End, IsDigit: t.IsDigit}
	}
	return records
}

func fromRecords(records []tokenRecord) []domain.Token {
	tokens := make([]domain.Token, len(records))
	for i, r := range records {
		tokens[i] = domain.Token{Text: r.Text, Start: r.Start, End: r.End, IsDigit: r.IsDigit}
	}
	return tokens
}
