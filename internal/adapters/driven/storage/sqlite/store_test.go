package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/timexy/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

// createTestDocument builds "Today is 03.10.1999, six years later." with a
// date and a duration annotated.
func createTestDocument(t *testing.T, id string, created time.Time) *domain.Document {
	t.Helper()
	doc := domain.NewDocument("Today is 03.10.1999, six years later.", []domain.Token{
		{Text: "Today", Start: 0, End: 5},
		{Text: "is", Start: 6, End: 8},
		{Text: "03", Start: 9, End: 11, IsDigit: true},
		{Text: ".", Start: 11, End: 12},
		{Text: "10", Start: 12, End: 14, IsDigit: true},
		{Text: ".", Start: 14, End: 15},
		{Text: "1999", Start: 15, End: 19, IsDigit: true},
		{Text: ",", Start: 19, End: 20},
		{Text: "six", Start: 21, End: 24},
		{Text: "years", Start: 25, End: 30},
		{Text: "later", Start: 31, End: 36},
		{Text: ".", Start: 36, End: 37},
	})
	doc.ID = id
	doc.URI = "/notes/" + id + ".txt"
	doc.Language = "en"
	doc.Metadata = map[string]any{"mime_type": "text/plain"}
	doc.CreatedAt = created
	doc.UpdatedAt = created

	date, err := doc.NewSpan(2, 7, "timexy", domain.DateValue(time.Date(1999, 10, 3, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	date.KBID = `TIMEX3 type="DATE" value="1999-10-03T00:00:00"`
	require.NoError(t, doc.Annotations.Insert(date))

	dur, err := doc.NewSpan(8, 10, "timexy", domain.DurationValue("6", domain.UnitYear))
	require.NoError(t, err)
	dur.KBID = `TIMEX3 type="DURATION" value="P6Y"`
	require.NoError(t, doc.Annotations.Insert(dur))

	return doc
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "documents.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_MigrationsRecorded(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not re-run the initial migration.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	docStore := store.DocumentStore()
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, docStore.SaveDocument(ctx, createTestDocument(t, "doc-1", created)))

	got, err := docStore.GetDocument(ctx, "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "/notes/doc-1.txt", got.URI)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "Today is 03.10.1999, six years later.", got.Text)
	assert.Len(t, got.Tokens, 12)
	assert.True(t, got.Tokens[2].IsDigit)
	assert.Equal(t, "text/plain", got.Metadata["mime_type"])
	assert.True(t, created.Equal(got.CreatedAt))

	ents := got.Entities()
	require.Len(t, ents, 2)
	assert.Equal(t, "03.10.1999", ents[0].Text)
	assert.Equal(t, domain.ValueDate, ents[0].Value.Kind)
	assert.True(t, time.Date(1999, 10, 3, 0, 0, 0, 0, time.UTC).Equal(ents[0].Value.Date))
	assert.Equal(t, "six years", ents[1].Text)
	assert.Equal(t, "P6Y", ents[1].Value.Period())
	assert.Equal(t, `TIMEX3 type="DURATION" value="P6Y"`, ents[1].KBID)
}

func TestDocumentStore_SaveDocument_ReplacesAnnotations(t *testing.T) {
	store := setupTestStore(t)
	docStore := store.DocumentStore()
	ctx := context.Background()

	doc := createTestDocument(t, "doc-1", time.Now())
	require.NoError(t, docStore.SaveDocument(ctx, doc))

	doc.Annotations.Remove(doc.Entities()[0])
	require.NoError(t, docStore.SaveDocument(ctx, doc))

	got, err := docStore.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, got.Entities(), 1)
	assert.Equal(t, "six years", got.Entities()[0].Text)
}

func TestDocumentStore_SaveDocument_Invalid(t *testing.T) {
	docStore := setupTestStore(t).DocumentStore()

	assert.ErrorIs(t, docStore.SaveDocument(context.Background(), &domain.Document{}), domain.ErrInvalidInput)
}

func TestDocumentStore_GetDocument_NotFound(t *testing.T) {
	docStore := setupTestStore(t).DocumentStore()

	_, err := docStore.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ListDocuments_NewestFirst(t *testing.T) {
	docStore := setupTestStore(t).DocumentStore()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, docStore.SaveDocument(ctx, createTestDocument(t, "old", base)))
	require.NoError(t, docStore.SaveDocument(ctx, createTestDocument(t, "new", base.Add(48*time.Hour))))
	require.NoError(t, docStore.SaveDocument(ctx, createTestDocument(t, "mid", base.Add(24*time.Hour))))

	docs, err := docStore.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{docs[0].ID, docs[1].ID, docs[2].ID})
	assert.Len(t, docs[0].Entities(), 2)
}

func TestDocumentStore_ListDocuments_Empty(t *testing.T) {
	docs, err := setupTestStore(t).DocumentStore().ListDocuments(context.Background())

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentStore_FindDocumentByURI(t *testing.T) {
	docStore := setupTestStore(t).DocumentStore()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	older := createTestDocument(t, "older", now.Add(-time.Hour))
	older.URI = "/notes/a.txt"
	newest := createTestDocument(t, "newest", now)
	newest.URI = "/notes/a.txt"
	other := createTestDocument(t, "other", now.Add(time.Hour))
	for _, doc := range []*domain.Document{older, newest, other} {
		require.NoError(t, docStore.SaveDocument(ctx, doc))
	}

	found, err := docStore.FindDocumentByURI(ctx, "/notes/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "newest", found.ID)
	assert.Len(t, found.Entities(), 2)

	_, err = docStore.FindDocumentByURI(ctx, "/notes/missing.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_GetDocument_UnknownValueKind(t *testing.T) {
	store := setupTestStore(t)
	docStore := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docStore.SaveDocument(ctx, createTestDocument(t, "doc-1", time.Now())))
	_, err := store.db.Exec("UPDATE annotations SET value_kind = 'bogus' WHERE document_id = ?", "doc-1")
	require.NoError(t, err)

	_, err = docStore.GetDocument(ctx, "doc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown value kind "bogus"`)
}

func TestDocumentStore_DeleteDocument(t *testing.T) {
	store := setupTestStore(t)
	docStore := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docStore.SaveDocument(ctx, createTestDocument(t, "doc-1", time.Now())))
	require.NoError(t, docStore.DeleteDocument(ctx, "doc-1"))

	_, err := docStore.GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM annotations").Scan(&count))
	assert.Zero(t, count, "annotations should cascade")

	assert.ErrorIs(t, docStore.DeleteDocument(ctx, "doc-1"), domain.ErrNotFound)
}
