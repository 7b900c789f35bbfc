package analytics

import (
	"context"

	"task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Report(ctx context.Context, sc model.Scope) (Report, error)
}
