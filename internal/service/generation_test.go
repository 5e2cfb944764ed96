package service

import (
	"context"
	"errors"
	"testing"

	entgen "github.com/avelar/pixelmint/internal/ent/generation"
	entledger "github.com/avelar/pixelmint/internal/ent/userledger"
	"github.com/avelar/pixelmint/internal/worker"

	_ "github.com/mattn/go-sqlite3"
)

func newTestGenerationService(t *testing.T, name string) (*GenerationService, *worker.MockDispatcher) {
	t.Helper()
	client := newTestClient(t, name)
	mock := worker.NewMock()
	points := NewPointsService(client, testLogger())
	return NewGenerationService(client, points, mock, testLogger()), mock
}

func TestSubmit_FullFlow(t *testing.T) {
	svc, mock := newTestGenerationService(t, "ent_gen_submit")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 3)

	result, err := svc.Submit(ctx, User("user_1"), "a red fox in the snow", worker.ModelSettings{Model: "sdxl"}, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.JobID == "" {
		t.Error("no job id")
	}
	if result.PointsRemaining != 3-GenerationCost {
		t.Errorf("remaining = %d, want %d", result.PointsRemaining, 3-GenerationCost)
	}

	gen := svc.db.Generation.GetX(ctx, result.GenerationID)
	if gen.Status != "pending" {
		t.Errorf("status = %q, want pending", gen.Status)
	}
	if gen.JobID != result.JobID {
		t.Errorf("job id = %q, want %q", gen.JobID, result.JobID)
	}
	if gen.UserID == nil || *gen.UserID != "user_1" {
		t.Errorf("user id = %v, want user_1", gen.UserID)
	}

	if jobs := mock.Submitted(); len(jobs) != 1 || jobs[0].Prompt != "a red fox in the snow" {
		t.Errorf("dispatched jobs = %+v", jobs)
	}
}

func TestSubmit_InsufficientPoints(t *testing.T) {
	svc, mock := newTestGenerationService(t, "ent_gen_insufficient")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 0)

	_, err := svc.Submit(ctx, User("user_1"), "prompt", worker.ModelSettings{}, "")
	var insufficient *InsufficientPointsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientPointsError", err)
	}

	// Denied before any dispatch or persistence.
	if len(mock.Submitted()) != 0 {
		t.Error("job dispatched despite denial")
	}
	if n := svc.db.Generation.Query().CountX(ctx); n != 0 {
		t.Errorf("generation rows = %d, want 0", n)
	}
}

func TestSubmit_ConvertedSession(t *testing.T) {
	svc, mock := newTestGenerationService(t, "ent_gen_converted")
	ctx := context.Background()

	sess := seedSession(t, svc.db, "10.0.0.1", 5)
	svc.db.AnonymousSession.UpdateOne(sess).SetStatus("converted").SetPointsRemaining(0).ExecX(ctx)

	_, err := svc.Submit(ctx, Anonymous(sess.ID, sess.Token), "prompt", worker.ModelSettings{}, "")
	if !errors.Is(err, ErrMustReauthenticate) {
		t.Fatalf("err = %v, want ErrMustReauthenticate", err)
	}
	if len(mock.Submitted()) != 0 {
		t.Error("job dispatched for converted session")
	}
}

func TestSubmit_DispatchFailureDoesNotCharge(t *testing.T) {
	svc, mock := newTestGenerationService(t, "ent_gen_dispatchfail")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 3)
	mock.Fail = true

	_, err := svc.Submit(ctx, User("user_1"), "prompt", worker.ModelSettings{}, "")
	if !errors.Is(err, worker.ErrDispatchFailed) {
		t.Fatalf("err = %v, want ErrDispatchFailed", err)
	}

	l := svc.db.UserLedger.Query().Where(entledger.UserIDEQ("user_1")).OnlyX(ctx)
	if l.PointsRemaining != 3 {
		t.Errorf("balance = %d, want 3 (no charge on dispatch failure)", l.PointsRemaining)
	}
	if n := svc.db.Generation.Query().CountX(ctx); n != 0 {
		t.Errorf("generation rows = %d, want 0", n)
	}
}

func TestSubmit_AnonymousSession(t *testing.T) {
	svc, _ := newTestGenerationService(t, "ent_gen_anon")
	ctx := context.Background()

	sess := seedSession(t, svc.db, "10.0.0.1", 2)

	result, err := svc.Submit(ctx, Anonymous(sess.ID, sess.Token), "prompt", worker.ModelSettings{}, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.PointsRemaining != 2-GenerationCost {
		t.Errorf("remaining = %d", result.PointsRemaining)
	}

	gen := svc.db.Generation.GetX(ctx, result.GenerationID)
	if gen.SessionID == nil || *gen.SessionID != sess.ID {
		t.Errorf("session id = %v, want %d", gen.SessionID, sess.ID)
	}
}

func TestHandleWorkerCallback(t *testing.T) {
	svc, _ := newTestGenerationService(t, "ent_gen_callback")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 3)
	result, err := svc.Submit(ctx, User("user_1"), "prompt", worker.ModelSettings{}, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	payload := worker.CallbackPayload{ID: result.JobID, Status: worker.StatusCompleted}
	payload.Output.Message = "https://cdn.example.com/img.png"
	if err := svc.HandleWorkerCallback(ctx, payload); err != nil {
		t.Fatalf("callback: %v", err)
	}

	gen := svc.db.Generation.GetX(ctx, result.GenerationID)
	if gen.Status != "completed" {
		t.Errorf("status = %q, want completed", gen.Status)
	}
	if gen.ImageURL == nil || *gen.ImageURL != "https://cdn.example.com/img.png" {
		t.Errorf("image url = %v", gen.ImageURL)
	}

	// Redelivery of the same terminal payload is a no-op.
	if err := svc.HandleWorkerCallback(ctx, payload); err != nil {
		t.Fatalf("redelivered callback: %v", err)
	}
	gen = svc.db.Generation.GetX(ctx, result.GenerationID)
	if gen.Status != "completed" {
		t.Errorf("status after redelivery = %q", gen.Status)
	}
}

func TestHandleWorkerCallback_Failed(t *testing.T) {
	svc, _ := newTestGenerationService(t, "ent_gen_callback_failed")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 3)
	result, err := svc.Submit(ctx, User("user_1"), "prompt", worker.ModelSettings{}, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	payload := worker.CallbackPayload{ID: result.JobID, Status: worker.StatusFailed}
	payload.Output.Message = "NSFW content rejected"
	if err := svc.HandleWorkerCallback(ctx, payload); err != nil {
		t.Fatalf("callback: %v", err)
	}

	gen := svc.db.Generation.GetX(ctx, result.GenerationID)
	if gen.Status != "failed" {
		t.Errorf("status = %q, want failed", gen.Status)
	}
	if gen.ErrorMessage == nil || *gen.ErrorMessage != "NSFW content rejected" {
		t.Errorf("error message = %v", gen.ErrorMessage)
	}
}

func TestHandleWorkerCallback_UnknownJob(t *testing.T) {
	svc, _ := newTestGenerationService(t, "ent_gen_callback_unknown")

	// Unknown job ids are logged, not errors; the worker would retry forever.
	payload := worker.CallbackPayload{ID: "no-such-job", Status: worker.StatusCompleted}
	if err := svc.HandleWorkerCallback(context.Background(), payload); err != nil {
		t.Fatalf("callback: %v", err)
	}
}

func TestListAndGet_OwnerScoped(t *testing.T) {
	svc, _ := newTestGenerationService(t, "ent_gen_scope")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 5)
	seedLedger(t, svc.db, "user_2", 5)

	r1, err := svc.Submit(ctx, User("user_1"), "mine", worker.ModelSettings{}, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Submit(ctx, User("user_2"), "theirs", worker.ModelSettings{}, ""); err != nil {
		t.Fatalf("submit: %v", err)
	}

	gens, err := svc.List(ctx, User("user_1"), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(gens) != 1 || gens[0].Prompt != "mine" {
		t.Errorf("list = %+v, want only own generations", gens)
	}

	if _, err := svc.Get(ctx, User("user_2"), r1.GenerationID); !errors.Is(err, ErrForbidden) {
		t.Errorf("cross-owner get err = %v, want ErrForbidden", err)
	}
}

func TestUpdateMeta(t *testing.T) {
	svc, _ := newTestGenerationService(t, "ent_gen_meta")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 5)
	r, err := svc.Submit(ctx, User("user_1"), "prompt", worker.ModelSettings{}, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	name := "sunset study"
	fav := true
	gen, err := svc.UpdateMeta(ctx, User("user_1"), r.GenerationID, MetaUpdate{
		Name:     &name,
		Favorite: &fav,
		Tags:     []string{"landscape", "warm"},
	})
	if err != nil {
		t.Fatalf("update meta: %v", err)
	}
	if gen.Name != "sunset study" || !gen.Favorite {
		t.Errorf("meta = %+v", gen)
	}
	if len(gen.Tags) != 2 {
		t.Errorf("tags = %v", gen.Tags)
	}

	have := svc.db.Generation.Query().Where(entgen.IDEQ(r.GenerationID)).OnlyX(ctx)
	if !have.Favorite {
		t.Error("favorite not persisted")
	}
}
