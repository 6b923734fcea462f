package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ivolkov/filecab/internal/common"
	"github.com/ivolkov/filecab/internal/server/models"
	"github.com/ivolkov/filecab/internal/server/repositories/repomanager"
	"github.com/ivolkov/filecab/internal/server/storage"
)

// PageSize is the fixed page size for paginated listings.
const PageSize = 20

// NoPagination is the page sentinel that disables pagination entirely.
const NoPagination = -1

// FileService owns the file/folder document model: parent validation,
// persistence, listing, visibility, and content reads.
type FileService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	blobs storage.BlobStore
}

// NewFileService constructs a FileService over the given repositories and
// blob store.
func NewFileService(db *sql.DB, m repomanager.RepositoryManager, blobs storage.BlobStore) *FileService {
	return &FileService{db: db, repos: m, blobs: blobs}
}

// CreateRequest carries the attributes of a new folder, file, or image.
// Data is the base64 payload; it stays empty for folders.
type CreateRequest struct {
	Name     string
	Type     string
	Parent   models.ParentRef
	IsPublic bool
	Data     string
}

// Create validates the request and persists a new document owned by owner.
// Folders persist immediately; files and images first have their decoded
// payload written to the blob store, and the document is only persisted once
// the blob write succeeded. A failed blob write aborts the whole create.
func (s *FileService) Create(ctx context.Context, owner *models.User, req CreateRequest) (*models.File, error) {
	if req.Name == "" {
		return nil, common.ErrMissingName
	}
	if !models.ValidType(req.Type) {
		return nil, common.ErrMissingType
	}
	if err := s.checkParent(ctx, req.Parent); err != nil {
		return nil, err
	}

	doc := &models.File{
		UserID:   owner.ID,
		Name:     req.Name,
		Type:     req.Type,
		IsPublic: req.IsPublic,
		Parent:   req.Parent,
	}

	if req.Type != models.TypeFolder {
		if req.Data == "" {
			return nil, common.ErrMissingData
		}
		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, common.ErrMissingData
		}

		key := storage.NewStorageKey()
		if err := s.blobs.Write(ctx, key, data); err != nil {
			return nil, fmt.Errorf("%w: blob write failed", common.ErrorInternal)
		}
		doc.StorageKey = key
	}

	created, err := s.repos.Files(s.db).Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error creating file: %w", err)
	}
	return created, nil
}

// checkParent enforces the parent invariant: the reference must resolve to
// an existing document of type folder. Root always passes.
func (s *FileService) checkParent(ctx context.Context, parent models.ParentRef) error {
	if parent.IsRoot() {
		return nil
	}
	doc, err := s.repos.Files(s.db).GetByID(ctx, parent.ID())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrParentNotFound
		}
		return common.ErrorInternal
	}
	if doc.Type != models.TypeFolder {
		return common.ErrParentNotFolder
	}
	return nil
}

// GetByID returns the owner's document with the given id.
func (s *FileService) GetByID(ctx context.Context, owner *models.User, fileID string) (*models.File, error) {
	if fileID == "" {
		return nil, common.ErrorUnauthorized
	}
	if _, err := uuid.Parse(fileID); err != nil {
		return nil, common.ErrorUnauthorized
	}
	doc, err := s.repos.Files(s.db).GetOwned(ctx, fileID, owner.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return doc, nil
}

// List returns the owner's documents under parent. page == NoPagination
// returns every match; otherwise the result is the page-th window of
// PageSize documents sorted by id ascending. Each call re-runs the query;
// no cursor state survives between calls.
func (s *FileService) List(ctx context.Context, owner *models.User, parent models.ParentRef, page int) ([]*models.File, error) {
	if page < 0 {
		page = NoPagination
	}
	docs, err := s.repos.Files(s.db).SelectPage(ctx, owner.ID, parent, page, PageSize)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return docs, nil
}

// SetPublic flips the visibility flag on the owner's document and persists
// the full replacement. Concurrent toggles race at last-write-wins.
func (s *FileService) SetPublic(ctx context.Context, owner *models.User, fileID string, isPublic bool) (*models.File, error) {
	if fileID == "" {
		return nil, common.ErrorNotFound
	}
	if _, err := uuid.Parse(fileID); err != nil {
		return nil, common.ErrorNotFound
	}

	repo := s.repos.Files(s.db)
	doc, err := repo.GetOwned(ctx, fileID, owner.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	doc.IsPublic = isPublic
	if err := repo.Replace(ctx, doc); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return doc, nil
}

// ReadContent returns the raw bytes and MIME type of a file. caller may be
// nil (anonymous). A private file is only readable by its owner; a missing
// file and a file the caller may not see are reported identically so the
// endpoint does not leak existence.
func (s *FileService) ReadContent(ctx context.Context, caller *models.User, fileID string) ([]byte, string, error) {
	if fileID == "" {
		return nil, "", common.ErrorNotFound
	}
	if _, err := uuid.Parse(fileID); err != nil {
		return nil, "", common.ErrorNotFound
	}

	doc, err := s.repos.Files(s.db).GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorNotFound
		}
		return nil, "", common.ErrorInternal
	}

	if !doc.IsPublic && (caller == nil || caller.ID != doc.UserID) {
		return nil, "", common.ErrorNotFound
	}
	if doc.Type == models.TypeFolder {
		return nil, "", common.ErrFolderHasNoData
	}

	data, err := s.blobs.Read(ctx, doc.StorageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorNotFound
		}
		return nil, "", common.ErrorInternal
	}

	return data, mimeTypeFor(doc.Name), nil
}

// Count returns the number of file documents.
func (s *FileService) Count(ctx context.Context) (int64, error) {
	return s.repos.Files(s.db).Count(ctx)
}

// mimeTypeFor derives the content type from the file-name extension.
func mimeTypeFor(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
