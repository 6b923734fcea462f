// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ivolkov/filecab/internal/common"
)

// File document types. Folders are a variant of the same entity,
// discriminated by Type.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// RootSentinel is the wire representation of "no parent folder".
const RootSentinel = "0"

// ValidType reports whether t is one of the accepted document types.
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// ParentRef distinguishes the root of a user's tree from a reference to a
// folder document. The zero value is root. Keeping this a dedicated type
// instead of an overloaded string removes the "looks like an id but isn't"
// class of bugs around the "0" sentinel.
type ParentRef struct {
	id string
}

// RootParent returns the reference for top-level documents.
func RootParent() ParentRef { return ParentRef{} }

// ParentOf returns a reference to the folder document with the given id.
func ParentOf(id string) ParentRef { return ParentRef{id: id} }

func (p ParentRef) IsRoot() bool { return p.id == "" }

// ID returns the referenced document id. Only meaningful when !IsRoot().
func (p ParentRef) ID() string { return p.id }

// String returns the wire form: "0" for root, the document id otherwise.
func (p ParentRef) String() string {
	if p.IsRoot() {
		return RootSentinel
	}
	return p.id
}

// ParseParent converts the wire form ("", "0", or a document id) into a
// ParentRef. A value that cannot be a document id resolves to nothing, which
// is reported the same way as a missing parent.
func ParseParent(s string) (ParentRef, error) {
	if s == "" || s == RootSentinel {
		return RootParent(), nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return ParentRef{}, common.ErrParentNotFound
	}
	return ParentOf(s), nil
}

// File describes a folder, file, or image owned by a user. StorageKey is the
// opaque blob-store handle; it is empty for folders and never leaves the
// server.
type File struct {
	ID         string
	UserID     string
	Name       string
	Type       string
	IsPublic   bool
	Parent     ParentRef
	StorageKey string
	CreatedAt  time.Time
}

// FileDoc is the formatted document returned to API clients. The internal
// storage key is deliberately absent.
type FileDoc struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

// Doc formats the file for API responses.
func (f *File) Doc() FileDoc {
	return FileDoc{
		ID:       f.ID,
		UserID:   f.UserID,
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: f.Parent.String(),
	}
}
