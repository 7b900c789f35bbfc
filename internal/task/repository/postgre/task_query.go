package postgre

import (
	"strings"
	"time"

	"gorm.io/gorm"

	repo "task-management/internal/task/repository"
)

func (r *implRepository) buildGetOneQuery(db *gorm.DB, opt repo.GetOneTaskOptions) *gorm.DB {
	q := db.Model(&taskRow{})
	if opt.ID != "" {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.UserID != "" {
		q = q.Where("user_id = ?", opt.UserID)
	}
	return q
}

func (r *implRepository) buildListQuery(db *gorm.DB, opt repo.ListTasksOptions) *gorm.DB {
	q := db.Model(&taskRow{}).Where("user_id = ?", opt.UserID)

	if opt.DeadlineFrom != nil || opt.DeadlineTo != nil {
		var conds []string
		var args []interface{}
		if opt.DeadlineFrom != nil {
			conds = append(conds, "deadline >= ?")
			args = append(args, dateOnly(opt.DeadlineFrom))
		}
		if opt.DeadlineTo != nil {
			conds = append(conds, "deadline < ?")
			args = append(args, dateOnly(opt.DeadlineTo))
		}
		cond := "(" + strings.Join(conds, " AND ") + ")"
		if opt.IncludeNoDeadline {
			cond = "(" + cond + " OR deadline IS NULL)"
		}
		q = q.Where(cond, args...)
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = repo.OrderCreatedDesc
	}
	return q.Order(orderBy)
}

func (r *implRepository) buildUpdates(opt repo.UpdateTaskOptions) map[string]interface{} {
	updates := make(map[string]interface{})
	if opt.Content != nil {
		updates["content"] = *opt.Content
	}
	if opt.Category != nil {
		updates["category"] = *opt.Category
	}
	if opt.Priority != nil {
		updates["priority"] = int(*opt.Priority)
	}
	if opt.Status != nil {
		updates["status"] = string(*opt.Status)
	}
	switch {
	case opt.ClearDeadline:
		updates["deadline"] = nil
	case opt.Deadline != nil:
		updates["deadline"] = dateOnly(opt.Deadline)
	}
	return updates
}

func batchUpdates(opt repo.BatchTasksOptions) (map[string]interface{}, bool) {
	now := time.Now()
	switch opt.Action {
	case "complete":
		return map[string]interface{}{"status": "completed", "updated_at": now}, true
	case "setPriority":
		return map[string]interface{}{"priority": int(opt.Priority), "updated_at": now}, true
	case "setStatus":
		return map[string]interface{}{"status": string(opt.Status), "updated_at": now}, true
	}
	return nil, false
}
