package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-management/internal/model"
	"task-management/internal/task"
	"task-management/internal/task/cache"
	"task-management/internal/task/query"
	repo "task-management/internal/task/repository"
	"task-management/pkg/gcalendar"
	"task-management/pkg/log"
)

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	tasks   map[string]model.Task
	nextID  int
	listErr error
	listN   int
	lastOpt repo.ListTasksOptions
	batches []repo.BatchTasksOptions
}

func newMockRepo(tasks ...model.Task) *mockRepo {
	m := &mockRepo{tasks: map[string]model.Task{}}
	for _, t := range tasks {
		m.tasks[t.ID] = t
	}
	return m
}

func (m *mockRepo) CreateTask(_ context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	m.nextID++
	t := model.Task{
		ID:       "new-" + string(rune('0'+m.nextID)),
		UserID:   opt.UserID,
		Content:  opt.Content,
		Category: opt.Category,
		Priority: opt.Priority,
		Status:   opt.Status,
		Deadline: opt.Deadline,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(_ context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockRepo) ListTasks(_ context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	m.listN++
	m.lastOpt = opt
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == opt.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateTask(_ context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	if opt.Content != nil {
		t.Content = *opt.Content
	}
	if opt.Category != nil {
		t.Category = *opt.Category
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Status != nil {
		t.Status = *opt.Status
	}
	if opt.Deadline != nil {
		t.Deadline = opt.Deadline
	}
	if opt.ClearDeadline {
		t.Deadline = nil
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(_ context.Context, opt repo.DeleteTaskOptions) (int64, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return 0, nil
	}
	delete(m.tasks, opt.ID)
	return 1, nil
}

func (m *mockRepo) BatchTasks(_ context.Context, opt repo.BatchTasksOptions) (repo.BatchTasksResult, error) {
	m.batches = append(m.batches, opt)
	var owned []string
	for _, id := range opt.IDs {
		t, ok := m.tasks[id]
		if !ok || t.UserID != opt.UserID {
			continue
		}
		owned = append(owned, id)
		switch opt.Action {
		case "delete":
			delete(m.tasks, id)
		case "setPriority":
			t.Priority = opt.Priority
			m.tasks[id] = t
		default:
			t.Status = opt.Status
			m.tasks[id] = t
		}
	}
	return repo.BatchTasksResult{AffectedIDs: owned}, nil
}

func (m *mockRepo) SetCalendarEventID(_ context.Context, id, eventID string) error {
	t := m.tasks[id]
	t.CalendarEventID = eventID
	m.tasks[id] = t
	return nil
}

func (m *mockRepo) MigrateLegacyPriorities(context.Context, repo.MigrateLegacyOptions) (int64, error) {
	return 0, nil
}

type mockCalendar struct {
	upserts []gcalendar.DeadlineEvent
	deleted []string
	err     error
}

func (c *mockCalendar) UpsertDeadline(_ context.Context, ev gcalendar.DeadlineEvent) (string, error) {
	c.upserts = append(c.upserts, ev)
	if c.err != nil {
		return "", c.err
	}
	if ev.EventID != "" {
		return ev.EventID, nil
	}
	return "event-1", nil
}

func (c *mockCalendar) DeleteEvent(_ context.Context, _, eventID string) error {
	c.deleted = append(c.deleted, eventID)
	return c.err
}

var shanghai = time.FixedZone("CST", 8*3600)

func fixedNow() time.Time {
	return time.Date(2024, 5, 10, 9, 30, 0, 0, shanghai)
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, shanghai)
	return &t
}

func newTestUseCase(r *mockRepo, cal task.CalendarSyncer) *implUseCase {
	cfg := Config{Location: shanghai}
	if cal != nil {
		cfg.Calendar = cal
		cfg.CalendarID = "primary"
	}
	uc := New(log.NewNop(), r, cache.New(10, time.Minute), cfg)
	uc.now = fixedNow
	return uc
}

var alice = model.Scope{UserID: "alice"}

func TestCreate(t *testing.T) {
	high := model.PriorityHigh
	bad := model.Priority(2)

	tcs := map[string]struct {
		input   task.CreateInput
		wantErr error
		check   func(t *testing.T, got model.Task)
	}{
		"defaults": {
			input: task.CreateInput{Content: "  写周报  "},
			check: func(t *testing.T, got model.Task) {
				if got.Content != "写周报" || got.Category != "other" ||
					got.Priority != model.PriorityMedium || got.Status != model.StatusPending {
					t.Errorf("unexpected defaults: %+v", got)
				}
			},
		},
		"explicit values": {
			input: task.CreateInput{Content: "跑步", Category: "health", Priority: &high, Status: "done"},
			check: func(t *testing.T, got model.Task) {
				if got.Category != "health" || got.Priority != model.PriorityHigh || got.Status != model.StatusCompleted {
					t.Errorf("unexpected task: %+v", got)
				}
			},
		},
		"blank content":       {input: task.CreateInput{Content: "   "}, wantErr: task.ErrInvalidContent},
		"non canonical level": {input: task.CreateInput{Content: "x", Priority: &bad}, wantErr: task.ErrInvalidPriority},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := newMockRepo()
			uc := newTestUseCase(r, nil)

			out, err := uc.Create(context.Background(), alice, tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				if len(r.tasks) != 0 {
					t.Errorf("expected no write, got %d tasks", len(r.tasks))
				}
				return
			}
			if out.Task.UserID != "alice" {
				t.Errorf("expected owner alice, got %q", out.Task.UserID)
			}
			tc.check(t, out.Task)
		})
	}
}

func TestMutationsInvalidateEveryView(t *testing.T) {
	r := newMockRepo(model.Task{ID: "t1", UserID: "alice", Content: "a", Priority: model.PriorityLow})
	uc := newTestUseCase(r, nil)
	ctx := context.Background()

	warm := func() {
		if _, err := uc.List(ctx, alice, task.ListInput{}); err != nil {
			t.Fatal(err)
		}
		if _, err := uc.Today(ctx, alice, task.TodayInput{}); err != nil {
			t.Fatal(err)
		}
		if _, err := uc.Today(ctx, alice, task.TodayInput{IncludeNoDeadline: true}); err != nil {
			t.Fatal(err)
		}
	}

	warm()
	if uc.cache.Len() != 3 {
		t.Fatalf("expected 3 cached views, got %d", uc.cache.Len())
	}

	high := model.PriorityHigh
	if _, err := uc.Patch(ctx, alice, task.PatchInput{ID: "t1", Priority: &high}); err != nil {
		t.Fatal(err)
	}
	if uc.cache.Len() != 0 {
		t.Fatalf("expected every view dropped after patch, got %d", uc.cache.Len())
	}

	out, err := uc.List(ctx, alice, task.ListInput{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Tasks[0].Priority != model.PriorityHigh {
		t.Errorf("expected fresh read after patch, got priority %d", out.Tasks[0].Priority)
	}

	warm()
	if _, err := uc.Create(ctx, alice, task.CreateInput{Content: "b"}); err != nil {
		t.Fatal(err)
	}
	if uc.cache.Len() != 0 {
		t.Errorf("expected every view dropped after create, got %d", uc.cache.Len())
	}

	warm()
	if err := uc.Delete(ctx, alice, "t1"); err != nil {
		t.Fatal(err)
	}
	if uc.cache.Len() != 0 {
		t.Errorf("expected every view dropped after delete, got %d", uc.cache.Len())
	}
}

func TestListServesCachedView(t *testing.T) {
	r := newMockRepo(model.Task{ID: "t1", UserID: "alice", Content: "a"})
	uc := newTestUseCase(r, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := uc.List(ctx, alice, task.ListInput{}); err != nil {
			t.Fatal(err)
		}
	}
	if r.listN != 1 {
		t.Errorf("expected one repository read, got %d", r.listN)
	}
	if r.lastOpt.OrderBy != repo.OrderCreatedDesc {
		t.Errorf("expected created-desc ordering, got %q", r.lastOpt.OrderBy)
	}
}

func TestListAppliesSpec(t *testing.T) {
	r := newMockRepo(
		model.Task{ID: "t1", UserID: "alice", Content: "写周报", Status: model.StatusPending, Priority: model.PriorityHigh},
		model.Task{ID: "t2", UserID: "alice", Content: "跑步", Status: model.StatusCompleted, Priority: model.PriorityLow},
		model.Task{ID: "t3", UserID: "bob", Content: "写代码", Status: model.StatusPending},
	)
	uc := newTestUseCase(r, nil)

	spec := query.DefaultSpec()
	spec.StatusTab = query.StatusPending
	out, err := uc.List(context.Background(), alice, task.ListInput{Spec: &spec})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].ID != "t1" {
		t.Errorf("expected only t1, got %+v", out.Tasks)
	}
}

func TestListError(t *testing.T) {
	r := newMockRepo()
	r.listErr = repo.ErrFailedToList
	uc := newTestUseCase(r, nil)

	_, err := uc.List(context.Background(), alice, task.ListInput{})
	if !errors.Is(err, repo.ErrFailedToList) {
		t.Errorf("expected ErrFailedToList, got %v", err)
	}
	if uc.cache.Len() != 0 {
		t.Errorf("failed reads must not be cached")
	}
}

func TestTodayWindow(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(r, nil)

	if _, err := uc.Today(context.Background(), alice, task.TodayInput{IncludeNoDeadline: true}); err != nil {
		t.Fatal(err)
	}

	opt := r.lastOpt
	wantFrom := time.Date(2024, 5, 10, 0, 0, 0, 0, shanghai)
	if opt.DeadlineFrom == nil || !opt.DeadlineFrom.Equal(wantFrom) {
		t.Errorf("expected window start %v, got %v", wantFrom, opt.DeadlineFrom)
	}
	if opt.DeadlineTo == nil || !opt.DeadlineTo.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Errorf("expected window end next midnight, got %v", opt.DeadlineTo)
	}
	if !opt.IncludeNoDeadline || opt.OrderBy != repo.OrderToday {
		t.Errorf("unexpected options %+v", opt)
	}
}

func TestPatch(t *testing.T) {
	seed := func() *mockRepo {
		return newMockRepo(
			model.Task{ID: "t1", UserID: "alice", Content: "a", Category: "work", Deadline: date(2024, 5, 10)},
			model.Task{ID: "t2", UserID: "bob", Content: "b"},
		)
	}
	blank := " "
	empty := ""
	done := "done"
	bad := model.Priority(4)

	t.Run("foreign id is not found", func(t *testing.T) {
		uc := newTestUseCase(seed(), nil)
		_, err := uc.Patch(context.Background(), alice, task.PatchInput{ID: "t2", Status: &done})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		uc := newTestUseCase(seed(), nil)
		_, err := uc.Patch(context.Background(), alice, task.PatchInput{ID: "t1"})
		if !errors.Is(err, task.ErrEmptyPatch) {
			t.Errorf("expected ErrEmptyPatch, got %v", err)
		}
	})

	t.Run("blank content", func(t *testing.T) {
		uc := newTestUseCase(seed(), nil)
		_, err := uc.Patch(context.Background(), alice, task.PatchInput{ID: "t1", Content: &blank})
		if !errors.Is(err, task.ErrInvalidContent) {
			t.Errorf("expected ErrInvalidContent, got %v", err)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := newTestUseCase(seed(), nil)
		_, err := uc.Patch(context.Background(), alice, task.PatchInput{ID: "t1", Priority: &bad})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("untouched fields survive", func(t *testing.T) {
		uc := newTestUseCase(seed(), nil)
		out, err := uc.Patch(context.Background(), alice, task.PatchInput{ID: "t1", Status: &done, Category: &empty})
		if err != nil {
			t.Fatal(err)
		}
		got := out.Task
		if got.Status != model.StatusCompleted || got.Content != "a" || got.Category != "other" || !got.HasDeadline() {
			t.Errorf("unexpected task %+v", got)
		}
	})

	t.Run("clear deadline", func(t *testing.T) {
		uc := newTestUseCase(seed(), nil)
		out, err := uc.Patch(context.Background(), alice, task.PatchInput{ID: "t1", ClearDeadline: true})
		if err != nil {
			t.Fatal(err)
		}
		if out.Task.HasDeadline() {
			t.Errorf("expected deadline cleared")
		}
	})
}

func TestDelete(t *testing.T) {
	r := newMockRepo(
		model.Task{ID: "t1", UserID: "alice"},
		model.Task{ID: "t2", UserID: "bob"},
	)
	uc := newTestUseCase(r, nil)

	if err := uc.Delete(context.Background(), alice, "t2"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for foreign id, got %v", err)
	}
	if _, ok := r.tasks["t2"]; !ok {
		t.Errorf("foreign task must survive")
	}
	if err := uc.Delete(context.Background(), alice, "t1"); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := uc.Delete(context.Background(), alice, "t1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for missing id, got %v", err)
	}
}

func TestBatch(t *testing.T) {
	seed := func() *mockRepo {
		return newMockRepo(
			model.Task{ID: "t1", UserID: "alice", Priority: model.PriorityLow},
			model.Task{ID: "t2", UserID: "alice", Priority: model.PriorityLow},
			model.Task{ID: "t3", UserID: "bob", Priority: model.PriorityLow},
		)
	}

	t.Run("complete skips foreign ids", func(t *testing.T) {
		r := seed()
		uc := newTestUseCase(r, nil)
		out, err := uc.Batch(context.Background(), alice, task.BatchInput{
			IDs: []string{"t1", "t3", "t1", "missing"}, Action: task.ActionComplete,
		})
		if err != nil {
			t.Fatal(err)
		}
		if out.Affected != 1 {
			t.Errorf("expected 1 affected, got %d", out.Affected)
		}
		want := []task.BatchResult{
			{ID: "t1", Outcome: task.OutcomeOK},
			{ID: "t3", Outcome: task.OutcomeNotFound},
			{ID: "missing", Outcome: task.OutcomeNotFound},
		}
		if len(out.Results) != len(want) {
			t.Fatalf("expected %d results, got %+v", len(want), out.Results)
		}
		for i := range want {
			if out.Results[i] != want[i] {
				t.Errorf("result %d: expected %+v, got %+v", i, want[i], out.Results[i])
			}
		}
		if r.tasks["t1"].Status != model.StatusCompleted || r.tasks["t3"].Status == model.StatusCompleted {
			t.Errorf("unexpected statuses %+v", r.tasks)
		}
	})

	t.Run("setPriority rejects non canonical levels before writing", func(t *testing.T) {
		for _, level := range []int{0, 2, 4, 6} {
			r := seed()
			uc := newTestUseCase(r, nil)
			_, err := uc.Batch(context.Background(), alice, task.BatchInput{
				IDs: []string{"t1"}, Action: task.ActionSetPriority, Priority: level,
			})
			if !errors.Is(err, task.ErrInvalidPriority) {
				t.Errorf("level %d: expected ErrInvalidPriority, got %v", level, err)
			}
			if len(r.batches) != 0 {
				t.Errorf("level %d: expected no write", level)
			}
		}
	})

	t.Run("setPriority", func(t *testing.T) {
		r := seed()
		uc := newTestUseCase(r, nil)
		if _, err := uc.Batch(context.Background(), alice, task.BatchInput{
			IDs: []string{"t1", "t2"}, Action: task.ActionSetPriority, Priority: 5,
		}); err != nil {
			t.Fatal(err)
		}
		if r.tasks["t1"].Priority != model.PriorityHigh || r.tasks["t2"].Priority != model.PriorityHigh {
			t.Errorf("expected both raised to high")
		}
	})

	t.Run("setStatus maps unknown values to pending", func(t *testing.T) {
		r := seed()
		uc := newTestUseCase(r, nil)
		if _, err := uc.Batch(context.Background(), alice, task.BatchInput{
			IDs: []string{"t1"}, Action: task.ActionSetStatus, Status: "in-progress",
		}); err != nil {
			t.Fatal(err)
		}
		if r.batches[0].Status != model.StatusPending {
			t.Errorf("expected pending, got %q", r.batches[0].Status)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r := seed()
		uc := newTestUseCase(r, nil)
		out, err := uc.Batch(context.Background(), alice, task.BatchInput{
			IDs: []string{"t1", "t2", "t3"}, Action: task.ActionDelete,
		})
		if err != nil {
			t.Fatal(err)
		}
		if out.Affected != 2 || len(r.tasks) != 1 {
			t.Errorf("expected two deletions, got affected=%d remaining=%d", out.Affected, len(r.tasks))
		}
	})

	t.Run("malformed ids are not found and never reach storage", func(t *testing.T) {
		r := seed()
		uc := newTestUseCase(r, nil)
		out, err := uc.Batch(context.Background(), alice, task.BatchInput{
			IDs:       []string{"bad-id", "t1"},
			Malformed: []string{"bad-id"},
			Action:    task.ActionComplete,
		})
		if err != nil {
			t.Fatal(err)
		}
		if out.Affected != 1 {
			t.Errorf("expected 1 affected, got %d", out.Affected)
		}
		want := []task.BatchResult{
			{ID: "bad-id", Outcome: task.OutcomeNotFound},
			{ID: "t1", Outcome: task.OutcomeOK},
		}
		for i := range want {
			if i >= len(out.Results) || out.Results[i] != want[i] {
				t.Fatalf("expected %+v, got %+v", want, out.Results)
			}
		}
		if len(r.batches) != 1 || len(r.batches[0].IDs) != 1 || r.batches[0].IDs[0] != "t1" {
			t.Errorf("expected only t1 sent to storage, got %+v", r.batches)
		}
	})

	t.Run("only malformed ids skips storage", func(t *testing.T) {
		r := seed()
		uc := newTestUseCase(r, nil)
		out, err := uc.Batch(context.Background(), alice, task.BatchInput{
			IDs:       []string{"bad-id"},
			Malformed: []string{"bad-id"},
			Action:    task.ActionDelete,
		})
		if err != nil {
			t.Fatal(err)
		}
		if out.Affected != 0 || len(out.Results) != 1 || out.Results[0].Outcome != task.OutcomeNotFound {
			t.Errorf("unexpected output %+v", out)
		}
		if len(r.batches) != 0 {
			t.Errorf("expected no write, got %+v", r.batches)
		}
	})

	t.Run("unsupported action", func(t *testing.T) {
		uc := newTestUseCase(seed(), nil)
		_, err := uc.Batch(context.Background(), alice, task.BatchInput{IDs: []string{"t1"}, Action: "archive"})
		if !errors.Is(err, task.ErrUnsupportedAction) {
			t.Errorf("expected ErrUnsupportedAction, got %v", err)
		}
	})

	t.Run("no ids", func(t *testing.T) {
		uc := newTestUseCase(seed(), nil)
		_, err := uc.Batch(context.Background(), alice, task.BatchInput{IDs: []string{" "}, Action: task.ActionDelete})
		if !errors.Is(err, task.ErrEmptyIDs) {
			t.Errorf("expected ErrEmptyIDs, got %v", err)
		}
	})
}

func TestCalendarSync(t *testing.T) {
	t.Run("create with deadline stores the event id", func(t *testing.T) {
		r := newMockRepo()
		cal := &mockCalendar{}
		uc := newTestUseCase(r, cal)

		out, err := uc.Create(context.Background(), alice, task.CreateInput{
			Content: "提交周报\n记得附上数据", Deadline: date(2024, 5, 11),
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(cal.upserts) != 1 {
			t.Fatalf("expected one upsert, got %d", len(cal.upserts))
		}
		ev := cal.upserts[0]
		if ev.Summary != "提交周报" || ev.Description != "记得附上数据" || ev.CalendarID != "primary" {
			t.Errorf("unexpected event %+v", ev)
		}
		if out.Task.CalendarEventID != "event-1" || r.tasks[out.Task.ID].CalendarEventID != "event-1" {
			t.Errorf("expected stored event id, got %+v", out.Task)
		}
	})

	t.Run("undated create is not synced", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(newMockRepo(), cal)
		if _, err := uc.Create(context.Background(), alice, task.CreateInput{Content: "x"}); err != nil {
			t.Fatal(err)
		}
		if len(cal.upserts) != 0 {
			t.Errorf("expected no upsert")
		}
	})

	t.Run("calendar failure does not fail the mutation", func(t *testing.T) {
		cal := &mockCalendar{err: errors.New("calendar down")}
		uc := newTestUseCase(newMockRepo(), cal)
		out, err := uc.Create(context.Background(), alice, task.CreateInput{Content: "x", Deadline: date(2024, 5, 11)})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if out.Task.CalendarEventID != "" {
			t.Errorf("expected no event id")
		}
	})

	t.Run("clearing the deadline removes the event", func(t *testing.T) {
		r := newMockRepo(model.Task{ID: "t1", UserID: "alice", Content: "x", Deadline: date(2024, 5, 11), CalendarEventID: "ev-7"})
		cal := &mockCalendar{}
		uc := newTestUseCase(r, cal)

		if _, err := uc.Patch(context.Background(), alice, task.PatchInput{ID: "t1", ClearDeadline: true}); err != nil {
			t.Fatal(err)
		}
		if len(cal.deleted) != 1 || cal.deleted[0] != "ev-7" {
			t.Errorf("expected ev-7 deleted, got %v", cal.deleted)
		}
		if r.tasks["t1"].CalendarEventID != "" {
			t.Errorf("expected event id cleared")
		}
	})

	t.Run("delete removes the event", func(t *testing.T) {
		r := newMockRepo(model.Task{ID: "t1", UserID: "alice", CalendarEventID: "ev-1"})
		cal := &mockCalendar{}
		uc := newTestUseCase(r, cal)

		if err := uc.Delete(context.Background(), alice, "t1"); err != nil {
			t.Fatal(err)
		}
		if len(cal.deleted) != 1 || cal.deleted[0] != "ev-1" {
			t.Errorf("expected ev-1 deleted, got %v", cal.deleted)
		}
	})

	t.Run("batch delete removes events of owned tasks", func(t *testing.T) {
		r := newMockRepo(
			model.Task{ID: "t1", UserID: "alice", CalendarEventID: "ev-1"},
			model.Task{ID: "t2", UserID: "bob", CalendarEventID: "ev-2"},
		)
		cal := &mockCalendar{}
		uc := newTestUseCase(r, cal)

		if _, err := uc.Batch(context.Background(), alice, task.BatchInput{IDs: []string{"t1", "t2"}, Action: task.ActionDelete}); err != nil {
			t.Fatal(err)
		}
		if len(cal.deleted) != 1 || cal.deleted[0] != "ev-1" {
			t.Errorf("expected only ev-1 deleted, got %v", cal.deleted)
		}
	})
}
