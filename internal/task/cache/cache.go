package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-management/internal/model"
)

// View names a cached slice of one user's task collection.
type View string

const (
	ViewAll                 View = "all"
	ViewToday               View = "today"
	ViewTodayWithNoDeadline View = "today?includeNoDeadline=1"
)

// Views lists every view that shares the same backing collection.
var Views = []View{ViewAll, ViewToday, ViewTodayWithNoDeadline}

const (
	DefaultSize = 1000
	DefaultTTL  = 5 * time.Minute
)

// ViewCache caches per-user task views. All views of a user are dropped
// together after any mutation so no reader sees a stale slice.
type ViewCache struct {
	lru *expirable.LRU[string, []model.Task]
}

// New creates a ViewCache. Non-positive size or ttl fall back to defaults.
func New(size int, ttl time.Duration) *ViewCache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ViewCache{
		lru: expirable.NewLRU[string, []model.Task](size, nil, ttl),
	}
}

// Get returns a copy of the cached view.
func (c *ViewCache) Get(userID string, view View) ([]model.Task, bool) {
	tasks, ok := c.lru.Get(key(userID, view))
	if !ok {
		return nil, false
	}
	return clone(tasks), true
}

// Set stores a copy of tasks under (userID, view).
func (c *ViewCache) Set(userID string, view View, tasks []model.Task) {
	c.lru.Add(key(userID, view), clone(tasks))
}

// Invalidate drops every view of userID.
func (c *ViewCache) Invalidate(userID string) {
	for _, v := range Views {
		c.lru.Remove(key(userID, v))
	}
}

// Len reports the number of cached views.
func (c *ViewCache) Len() int {
	return c.lru.Len()
}

func key(userID string, view View) string {
	return userID + "|" + string(view)
}

func clone(tasks []model.Task) []model.Task {
	if tasks == nil {
		return nil
	}
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}
