package repository

import (
	"context"

	"transportreports/models"
)

type LoadingMemoRepository interface {
	// GetLoadingMemo returns nil, nil when no memo has that number.
	GetLoadingMemo(ctx context.Context, ldmNo string) (*models.LoadingMemo, error)
}
