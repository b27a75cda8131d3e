package audit

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Go's reference timestamp with a different value in each position.
func fixedClock() time.Time {
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

func newTestRecorder() (*XMLRecorder, afero.Fs) {
	fs := afero.NewMemMapFs()
	rec := NewXMLRecorder(fs, "/events.xml")
	rec.Now = fixedClock
	return rec, fs
}

func readLog(t *testing.T, fs afero.Fs, path string) eventLog {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var doc eventLog
	require.NoError(t, xml.Unmarshal(data, &doc))
	return doc
}

func TestEnsureCreatesEmptyLog(t *testing.T) {
	rec, fs := newTestRecorder()

	require.NoError(t, rec.Ensure())

	doc := readLog(t, fs, "/events.xml")
	assert.Empty(t, doc.Events)

	// Ensure is a no-op on an existing file.
	require.NoError(t, rec.Record("alice", "ls", nil))
	require.NoError(t, rec.Ensure())
	assert.Len(t, readLog(t, fs, "/events.xml").Events, 1)
}

func TestRecordAppendsEvents(t *testing.T) {
	rec, fs := newTestRecorder()

	require.NoError(t, rec.Record("alice", "ls", []string{"/home", "-x"}))
	require.NoError(t, rec.Record("alice", "exit", nil))

	doc := readLog(t, fs, "/events.xml")
	require.Len(t, doc.Events, 2)

	first := doc.Events[0]
	assert.Equal(t, "2006-01-02T03:04:05.000000Z", first.Time)
	assert.Equal(t, "alice", first.User)
	assert.Equal(t, "ls", first.Command)
	assert.Equal(t, "/home -x", first.Args)

	second := doc.Events[1]
	assert.Equal(t, "exit", second.Command)
	assert.Equal(t, "", second.Args)
}

func TestRecordCreatesMissingFile(t *testing.T) {
	rec, fs := newTestRecorder()

	// No Ensure call first.
	require.NoError(t, rec.Record("bob", "whoami", nil))
	assert.Len(t, readLog(t, fs, "/events.xml").Events, 1)
}

func TestRecordXMLHeader(t *testing.T) {
	rec, fs := newTestRecorder()
	require.NoError(t, rec.Record("bob", "ls", nil))

	data, err := afero.ReadFile(fs, "/events.xml")
	require.NoError(t, err)
	assert.Contains(t, string(data), `<?xml`)
	assert.Contains(t, string(data), `<log>`)
}

func TestNopRecorder(t *testing.T) {
	assert.NoError(t, NopRecorder{}.Record("u", "c", []string{"a"}))
}
