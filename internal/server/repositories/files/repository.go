package files

import (
	"context"

	"github.com/ivolkov/filecab/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, file *models.File) (*models.File, error)
	GetByID(ctx context.Context, id string) (*models.File, error)
	GetOwned(ctx context.Context, id, userID string) (*models.File, error)
	Replace(ctx context.Context, file *models.File) error
	SelectPage(ctx context.Context, userID string, parent models.ParentRef, page, pageSize int) ([]*models.File, error)
	Count(ctx context.Context) (int64, error)
}
