package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaults(t *testing.T) {
	tree, err := Build(&Document{
		Root: &NodeSpec{
			Type: "dir",
			Children: map[string]*NodeSpec{
				"f": {Type: "file"},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "VFS", tree.Label)
	assert.Equal(t, Separator, tree.Root.Name)
	assert.Equal(t, "root", tree.Root.Owner)
	assert.Equal(t, "rw", tree.Root.Mode)

	f := tree.Root.Children["f"]
	require.NotNil(t, f)
	assert.Equal(t, "root", f.Owner)
	assert.Equal(t, "rw", f.Mode)
	assert.Empty(t, f.Content)
}

func TestBuildCarriesMetadata(t *testing.T) {
	tree, err := Build(&Document{
		Name: "myvfs",
		Root: &NodeSpec{
			Type: "dir",
			Children: map[string]*NodeSpec{
				"f.txt": {Type: "file", Owner: "alice", Mode: "r", Content: b64("Hello")},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "myvfs", tree.Label)

	f := tree.Root.Children["f.txt"]
	require.NotNil(t, f)
	assert.Equal(t, "f.txt", f.Name)
	assert.Equal(t, "alice", f.Owner)
	assert.Equal(t, "r", f.Mode)
	assert.Equal(t, []byte("Hello"), f.Content)
}

func TestBuildMissingRoot(t *testing.T) {
	_, err := Build(&Document{Name: "x"})
	var invalid *InvalidDocumentError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "missing 'root'")
}

func TestBuildBadType(t *testing.T) {
	_, err := Build(&Document{
		Root: &NodeSpec{Type: "symlink"},
	})
	var invalid *InvalidDocumentError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "symlink")
}

func TestBuildBadBase64(t *testing.T) {
	_, err := Build(&Document{
		Root: &NodeSpec{
			Type: "dir",
			Children: map[string]*NodeSpec{
				"f": {Type: "file", Content: "!!! not base64 !!!"},
			},
		},
	})
	var invalid *InvalidDocumentError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "base64")
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"name": "demo",
		"root": {
			"type": "dir",
			"children": {
				"hello.txt": {"type": "file", "content": "SGVsbG8=", "owner": "alice"}
			}
		}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "demo", doc.Name)
	require.NotNil(t, doc.Root)
	assert.Equal(t, "alice", doc.Root.Children["hello.txt"].Owner)
}

func TestParseDocumentRejectsUnknownFields(t *testing.T) {
	_, err := ParseDocument([]byte(`{"root": {"type": "dir"}, "bogus": 1}`))
	assert.Error(t, err)
}

func TestParseDocumentRejectsBadKind(t *testing.T) {
	_, err := ParseDocument([]byte(`{"root": {"type": "socket"}}`))
	assert.Error(t, err)
}

func TestParseDocumentRejectsMissingRoot(t *testing.T) {
	_, err := ParseDocument([]byte(`{"name": "demo"}`))
	assert.Error(t, err)
}

func TestParseDocumentRejectsBadNestedKind(t *testing.T) {
	_, err := ParseDocument([]byte(`{
		"root": {
			"type": "dir",
			"children": {"x": {"type": "link"}}
		}
	}`))
	assert.Error(t, err)
}

func TestEmptyTree(t *testing.T) {
	tree := EmptyTree()

	assert.Equal(t, "VFS", tree.Label)
	assert.Equal(t, Separator, tree.Root.Name)
	assert.Equal(t, Dir, tree.Root.Kind)
	assert.Empty(t, tree.Root.Children)
}

func TestCollect(t *testing.T) {
	tree := newTestTree(t)

	stats := Collect(tree.Root)
	assert.Equal(t, 4, stats.Dirs) // root, a, b, c
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, int64(len("hello\n")+len("abc")), stats.Bytes)
}
