package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_WriteReadRoundTrip(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	doc := NewDocument()
	doc.Tables["users"] = map[string]string{
		"username": "VARCHAR",
		"age":      "INT",
		"salary":   "FLOAT",
	}
	doc.Rows["users"] = []map[string]any{
		{"username": "hamza", "age": int64(24), "salary": 100.0},
		{"username": "alice", "age": nil, "salary": nil},
	}

	require.NoError(t, store.Write("testdb", doc))
	require.True(t, store.Exists("testdb"))

	got, err := store.Read("testdb")
	require.NoError(t, err)

	assert.Equal(t, doc.Tables, got.Tables)
	require.Len(t, got.Rows["users"], 2)

	// JSON decodes numbers as float64 and null as nil.
	first := got.Rows["users"][0]
	assert.Equal(t, "hamza", first["username"])
	assert.Equal(t, float64(24), first["age"])
	assert.Equal(t, 100.0, first["salary"])

	second := got.Rows["users"][1]
	assert.Nil(t, second["age"])
	assert.Nil(t, second["salary"])
}

func TestDiskStore_ExistsFalseBeforeWrite(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	assert.False(t, store.Exists("nope"))
}

func TestDiskStore_ReadMissing(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	_, err := store.Read("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStore_ReadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	_, err := store.Read("bad")
	require.Error(t, err)
	var corrupt *CorruptDocumentError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, "bad", corrupt.Name)
}

func TestDiskStore_WriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewDiskStore(dir)

	require.NoError(t, store.Write("db", NewDocument()))

	assert.FileExists(t, filepath.Join(dir, "db.json"))
}

func TestDiskStore_WriteOverwritesWholeDocument(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	doc := NewDocument()
	doc.Tables["a"] = map[string]string{"x": "INT"}
	require.NoError(t, store.Write("db", doc))

	// Second write replaces the document entirely; table "a" must be gone.
	doc2 := NewDocument()
	doc2.Tables["b"] = map[string]string{"y": "FLOAT"}
	require.NoError(t, store.Write("db", doc2))

	got, err := store.Read("db")
	require.NoError(t, err)
	assert.NotContains(t, got.Tables, "a")
	assert.Contains(t, got.Tables, "b")
}

func TestDiskStore_EmptyDocumentShape(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	require.NoError(t, store.Write("empty", NewDocument()))

	data, err := os.ReadFile(store.Path("empty"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Tables":{},"Rows":{}}`, string(data))
}
