package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivolkov/filecab/internal/common"
)

func TestParseParent_Root(t *testing.T) {
	for _, s := range []string{"", "0"} {
		p, err := ParseParent(s)
		require.NoError(t, err)
		assert.True(t, p.IsRoot())
		assert.Equal(t, "0", p.String())
	}
}

func TestParseParent_Reference(t *testing.T) {
	const id = "b4b1f6da-3f2c-4f4a-9f2d-0f1c8c1a2b3c"
	p, err := ParseParent(id)
	require.NoError(t, err)
	assert.False(t, p.IsRoot())
	assert.Equal(t, id, p.ID())
	assert.Equal(t, id, p.String())
}

func TestParseParent_Malformed(t *testing.T) {
	_, err := ParseParent("not-an-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrParentNotFound))
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType(TypeFolder))
	assert.True(t, ValidType(TypeFile))
	assert.True(t, ValidType(TypeImage))
	assert.False(t, ValidType(""))
	assert.False(t, ValidType("directory"))
}

func TestFileDoc_OmitsStorageKey(t *testing.T) {
	f := &File{
		ID:         "f1",
		UserID:     "u1",
		Name:       "a.txt",
		Type:       TypeFile,
		Parent:     ParentOf("f0"),
		StorageKey: "users/2026/8/30/secret",
	}

	b, err := json.Marshal(f.Doc())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.Contains(t, string(b), `"parentId":"f0"`)
}

func TestFileDoc_RootParentSerializesAsSentinel(t *testing.T) {
	f := &File{ID: "f1", UserID: "u1", Name: "docs", Type: TypeFolder}
	doc := f.Doc()
	assert.Equal(t, "0", doc.ParentID)
	assert.False(t, doc.IsPublic)
}
