package usecase

import (
	"strings"

	"task-management/internal/model"
	"task-management/internal/task"
)

// cleanContent trims content and rejects a blank value.
func cleanContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", task.ErrInvalidContent
	}
	return content, nil
}

// checkPriority accepts only the canonical levels.
func checkPriority(p model.Priority) error {
	if !p.IsCanonical() {
		return task.ErrInvalidPriority
	}
	return nil
}

// dedupe keeps the first occurrence of every non-blank id.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// without drops every id listed in skip, keeping order.
func without(ids, skip []string) []string {
	if len(skip) == 0 {
		return ids
	}
	drop := make(map[string]struct{}, len(skip))
	for _, id := range skip {
		drop[strings.TrimSpace(id)] = struct{}{}
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := drop[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
