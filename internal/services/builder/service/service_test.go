package service

import (
	"context"
	"testing"
	"time"

	"segmenter/internal/modkit/repokit"
	"segmenter/internal/platform/clock"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/logger"
	"segmenter/internal/platform/store"
	"segmenter/internal/services/builder/domain"
)

var testNow = time.Date(2024, 6, 30, 15, 0, 0, 0, time.UTC)

// fakeTx satisfies the TxRunner seam without a database
type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (f fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(f)
}

// fakeRepo is an in-memory domain.Repo
type fakeRepo struct {
	filters map[string]domain.SavedFilter
}

func newFakeRepo() *fakeRepo { return &fakeRepo{filters: map[string]domain.SavedFilter{}} }

func (f *fakeRepo) Upsert(_ context.Context, name string, spec domain.FilterSpec) error {
	f.filters[name] = domain.SavedFilter{Name: name, Spec: spec, UpdatedAt: testNow}
	return nil
}

func (f *fakeRepo) Get(_ context.Context, name string) (domain.SavedFilter, error) {
	saved, ok := f.filters[name]
	if !ok {
		return domain.SavedFilter{}, perr.NotFoundf("saved filter %q not found", name)
	}
	return saved, nil
}

func (f *fakeRepo) List(_ context.Context) ([]domain.SavedFilter, error) {
	out := make([]domain.SavedFilter, 0, len(f.filters))
	for _, saved := range f.filters {
		out = append(out, saved)
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, name string) error {
	if _, ok := f.filters[name]; !ok {
		return perr.NotFoundf("saved filter %q not found", name)
	}
	delete(f.filters, name)
	return nil
}

// fakeQuery records submitted specs and signals delivery
type fakeQuery struct {
	got chan domain.FilterSpec
}

func (f *fakeQuery) Submit(_ context.Context, spec domain.FilterSpec) error {
	f.got <- spec
	return nil
}

func newSvc(t *testing.T) (*Svc, *fakeRepo, *fakeQuery) {
	t.Helper()
	repo := newFakeRepo()
	query := &fakeQuery{got: make(chan domain.FilterSpec, 1)}
	svc := New(Config{
		Log:    *logger.Named("test"),
		Clock:  clock.Fixed{T: testNow},
		DB:     fakeTx{},
		Binder: repokit.BindFunc[domain.Repo](func(repokit.Queryer) domain.Repo { return repo }),
		Query:  query,
	})
	return svc, repo, query
}

func TestOpen_EmptySession(t *testing.T) {
	svc, _, _ := newSvc(t)
	sess, err := svc.Open(context.Background(), "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if sess.ID == "" {
		t.Fatalf("session id missing")
	}
	if len(sess.Tags) != 0 {
		t.Fatalf("fresh session has chips: %v", sess.Tags)
	}
}

func TestMutations_FlowThroughSession(t *testing.T) {
	svc, _, _ := newSvc(t)
	ctx := context.Background()
	sess, err := svc.Open(ctx, "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := svc.AddRegion(ctx, sess.ID, "Texas"); err != nil {
		t.Fatalf("add region: %v", err)
	}
	got, err := svc.ToggleCustomerStatus(ctx, sess.ID, domain.StatusNew)
	if err != nil {
		t.Fatalf("toggle status: %v", err)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("tags = %v, want region and status chips", got.Tags)
	}
}

func TestSetDateRange_RejectionKeepsSessionState(t *testing.T) {
	svc, _, _ := newSvc(t)
	ctx := context.Background()
	sess, _ := svc.Open(ctx, "")

	jan5 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if _, err := svc.SetDateRange(ctx, sess.ID, &jan5, &jan10); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}

	got, err := svc.SetDateRange(ctx, sess.ID, &jan10, &jan5)
	if err == nil {
		t.Fatalf("reversed range accepted")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("error code = %v, want validation", perr.CodeOf(err))
	}
	if len(got.Tags) != 1 {
		t.Fatalf("prior chip must survive rejection: %v", got.Tags)
	}
}

func TestApply_CompilesSubmitsAndClosesSession(t *testing.T) {
	svc, _, query := newSvc(t)
	ctx := context.Background()
	sess, _ := svc.Open(ctx, "")
	_, _ = svc.ToggleCustomerStatus(ctx, sess.ID, domain.StatusAll)

	spec, err := svc.Apply(ctx, sess.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(spec.CustomerStatuses) != 1 || spec.CustomerStatuses[0] != "all_customers" {
		t.Fatalf("spec = %+v", spec)
	}

	select {
	case submitted := <-query.got:
		if len(submitted.CustomerStatuses) != 1 {
			t.Fatalf("submitted spec = %+v", submitted)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("spec never reached the query port")
	}

	if _, err := svc.Get(ctx, sess.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("applied session must be closed, got %v", err)
	}
}

func TestApply_UnknownSession(t *testing.T) {
	svc, _, _ := newSvc(t)
	if _, err := svc.Apply(context.Background(), "nope"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestDiscard_DropsUncommittedEdits(t *testing.T) {
	svc, _, query := newSvc(t)
	ctx := context.Background()
	sess, _ := svc.Open(ctx, "")
	_, _ = svc.AddRegion(ctx, sess.ID, "Texas")

	if err := svc.Discard(ctx, sess.ID); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if _, err := svc.Get(ctx, sess.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("discarded session still reachable: %v", err)
	}
	select {
	case spec := <-query.got:
		t.Fatalf("discard must not publish a spec: %+v", spec)
	default:
	}
}

func TestSaveFilter_AndReopenFromIt(t *testing.T) {
	svc, repo, _ := newSvc(t)
	ctx := context.Background()
	sess, _ := svc.Open(ctx, "")
	_, _ = svc.AddRegion(ctx, sess.ID, "Texas")
	_, _ = svc.ToggleDwellTime(ctx, sess.ID, domain.DwellOver60)

	saved, err := svc.SaveFilter(ctx, "  texas  power  users ", sess.ID)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Name != "texas power users" {
		t.Fatalf("name not normalized: %q", saved.Name)
	}
	if _, ok := repo.filters["texas power users"]; !ok {
		t.Fatalf("filter not persisted: %v", repo.filters)
	}

	reopened, err := svc.Open(ctx, "texas power users")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if len(reopened.Tags) != 2 {
		t.Fatalf("hydrated chips = %v", reopened.Tags)
	}
}

func TestSaveFilter_EmptyNameRejected(t *testing.T) {
	svc, _, _ := newSvc(t)
	ctx := context.Background()
	sess, _ := svc.Open(ctx, "")
	if _, err := svc.SaveFilter(ctx, "   ", sess.ID); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestOpen_FromMissingFilter(t *testing.T) {
	svc, _, _ := newSvc(t)
	if _, err := svc.Open(context.Background(), "ghost"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestDeleteFilter(t *testing.T) {
	svc, repo, _ := newSvc(t)
	ctx := context.Background()
	sess, _ := svc.Open(ctx, "")
	if _, err := svc.SaveFilter(ctx, "keep", sess.ID); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.DeleteFilter(ctx, "keep"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.filters) != 0 {
		t.Fatalf("filter survived delete: %v", repo.filters)
	}
	if err := svc.DeleteFilter(ctx, "keep"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("second delete = %v, want not found", err)
	}
}
