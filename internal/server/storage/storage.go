// Package storage provides byte-blob stores keyed by generated opaque paths,
// with local-disk and S3-compatible backends.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BlobStore is write-once byte storage. Read returns common.ErrorNotFound
// when no blob exists under the key.
type BlobStore interface {
	Write(ctx context.Context, key string, data []byte) error
	Read(ctx context.Context, key string) ([]byte, error)
}

// NewStorageKey generates a fresh opaque blob key, bucketed by date so large
// deployments do not pile every object into one prefix.
func NewStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}
