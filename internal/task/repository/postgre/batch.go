package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-management/internal/model"
	repo "task-management/internal/task/repository"
)

// BatchTasks applies one action to the caller's ids inside a transaction.
// Ids owned by someone else are skipped, not reported as failures.
func (r *implRepository) BatchTasks(ctx context.Context, opt repo.BatchTasksOptions) (repo.BatchTasksResult, error) {
	var owned []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&taskRow{}).
			Where("user_id = ? AND id IN ?", opt.UserID, opt.IDs).
			Pluck("id", &owned).Error; err != nil {
			return err
		}
		if len(owned) == 0 {
			return nil
		}

		scoped := tx.Where("user_id = ? AND id IN ?", opt.UserID, owned)
		if opt.Action == "delete" {
			return scoped.Delete(&taskRow{}).Error
		}

		updates, ok := batchUpdates(opt)
		if !ok {
			return repo.ErrUnknownAction
		}
		return scoped.Model(&taskRow{}).Updates(updates).Error
	})
	if errors.Is(err, repo.ErrUnknownAction) {
		return repo.BatchTasksResult{}, err
	}
	if err != nil {
		r.l.Errorf(ctx, "%s %s: %v", r.dsn("BatchTasks"), opt.Action, err)
		return repo.BatchTasksResult{}, repo.ErrFailedToBatch
	}

	return repo.BatchTasksResult{AffectedIDs: owned}, nil
}

// MigrateLegacyPriorities rewrites priorities stored on the old 1..4 scale.
// Returns the number of rows whose value changed.
func (r *implRepository) MigrateLegacyPriorities(ctx context.Context, opt repo.MigrateLegacyOptions) (int64, error) {
	var rows []taskRow
	if err := r.db.WithContext(ctx).
		Select("id", "priority").
		Where("created_at < ?", opt.CreatedBefore).
		Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s find: %v", r.dsn("MigrateLegacyPriorities"), err)
		return 0, repo.ErrFailedToMigrate
	}

	var changed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			next := int(model.LegacyPriority(row.Priority))
			if next == row.Priority {
				continue
			}
			changed++
			if opt.DryRun {
				continue
			}
			// UpdateColumn keeps updated_at, which analytics reads as the completion date.
			if err := tx.Model(&taskRow{}).Where("id = ?", row.ID).
				UpdateColumn("priority", next).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s update: %v", r.dsn("MigrateLegacyPriorities"), err)
		return 0, repo.ErrFailedToMigrate
	}
	return changed, nil
}
