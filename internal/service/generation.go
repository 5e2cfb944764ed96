package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/avelar/pixelmint/internal/ent"
	entgen "github.com/avelar/pixelmint/internal/ent/generation"
	"github.com/avelar/pixelmint/internal/worker"
)

var genTracer = otel.Tracer("pixelmint/service/generation")
var genMeter = otel.Meter("pixelmint/service/generation")

// GenerationService owns the submission flow and the terminal-state updates
// driven by the worker callback.
type GenerationService struct {
	db         *ent.Client
	points     *PointsService
	dispatcher worker.Dispatcher
	logger     *slog.Logger
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(db *ent.Client, points *PointsService, dispatcher worker.Dispatcher, logger *slog.Logger) *GenerationService {
	return &GenerationService{db: db, points: points, dispatcher: dispatcher, logger: logger}
}

// SubmitResult is returned on a successful job submission.
type SubmitResult struct {
	GenerationID    int    `json:"generationId"`
	JobID           string `json:"jobId"`
	PointsRemaining int    `json:"pointsRemaining"`
}

// Submit runs the full job flow: authorize, dispatch to the worker, create the
// pending row, then deduct. Ordering matters: the row must exist durably
// before the deduction so a crash never charges for a job with no record.
// The inverse gap (dispatch succeeded, insert failed) is accepted and logged
// loudly for manual reconciliation; retrying the dispatch would double-bill
// the worker.
func (s *GenerationService) Submit(ctx context.Context, id Identity, prompt string, settings worker.ModelSettings, batchID string) (*SubmitResult, error) {
	ctx, span := genTracer.Start(ctx, "generation.submit")
	defer span.End()

	decision, err := s.points.Authorize(ctx, id, GenerationCost)
	if err != nil {
		return nil, err
	}
	if decision.MustReauthenticate {
		return nil, ErrMustReauthenticate
	}
	if !decision.Allowed {
		return nil, &InsufficientPointsError{Balance: decision.Balance, Required: decision.Required}
	}

	jobID, err := s.dispatcher.Submit(ctx, worker.Job{Prompt: prompt, Settings: settings})
	if err != nil {
		return nil, fmt.Errorf("dispatch job: %w", err)
	}

	create := s.db.Generation.Create().
		SetJobID(jobID).
		SetPrompt(prompt).
		SetModelSettings(settingsMap(settings)).
		SetBatchID(batchID)
	if id.IsUser() {
		create = create.SetUserID(id.UserID)
	} else {
		create = create.SetSessionID(id.SessionID)
	}

	gen, err := create.Save(ctx)
	if err != nil {
		// External compute is already paid for with no record and no
		// deduction. Logged for manual reconciliation, never retried.
		s.logger.Error("generation row insert failed after dispatch; job is orphaned",
			"job_id", jobID, "user_id", id.UserID, "session_id", id.SessionID, "error", err)
		return nil, fmt.Errorf("create generation: %w", err)
	}

	remaining, err := s.points.Deduct(ctx, id, GenerationCost)
	if err != nil {
		// Race between Authorize and Deduct: another request spent the last
		// point first. The job row stays pending for audit; the caller lost
		// the race and is told so.
		return nil, err
	}

	if counter, merr := genMeter.Int64Counter("pixelmint.generations.submitted"); merr == nil {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.Bool("authenticated", id.IsUser()),
		))
	}

	return &SubmitResult{GenerationID: gen.ID, JobID: jobID, PointsRemaining: remaining}, nil
}

// Get returns a generation if the identity owns it.
func (s *GenerationService) Get(ctx context.Context, id Identity, generationID int) (*ent.Generation, error) {
	gen, err := s.db.Generation.Get(ctx, generationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get generation: %w", err)
	}
	if !owns(id, gen) {
		return nil, ErrForbidden
	}
	return gen, nil
}

// List returns the identity's generations, newest first.
func (s *GenerationService) List(ctx context.Context, id Identity, limit int) ([]*ent.Generation, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := s.db.Generation.Query()
	switch {
	case id.IsUser():
		q = q.Where(entgen.UserIDEQ(id.UserID))
	case id.SessionID != 0:
		q = q.Where(entgen.SessionIDEQ(id.SessionID))
	default:
		return nil, ErrInvalidIdentity
	}

	gens, err := q.Order(ent.Desc(entgen.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	return gens, nil
}

// MetaUpdate carries the owner-editable fields. Nil means "leave unchanged".
type MetaUpdate struct {
	Name     *string  `json:"name"`
	Favorite *bool    `json:"favorite"`
	Tags     []string `json:"tags"`
}

// UpdateMeta applies soft edits (rename, favorite, tags) to an owned
// generation. Terminal status and image_url never change here.
func (s *GenerationService) UpdateMeta(ctx context.Context, id Identity, generationID int, update MetaUpdate) (*ent.Generation, error) {
	gen, err := s.Get(ctx, id, generationID)
	if err != nil {
		return nil, err
	}

	upd := gen.Update()
	if update.Name != nil {
		upd = upd.SetName(*update.Name)
	}
	if update.Favorite != nil {
		upd = upd.SetFavorite(*update.Favorite)
	}
	if update.Tags != nil {
		upd = upd.SetTags(update.Tags)
	}

	gen, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update generation: %w", err)
	}
	return gen, nil
}

// HandleWorkerCallback applies a worker status report to the matching job row.
// Idempotent: re-applying the same terminal payload leaves the row unchanged.
// An unknown job id is logged and swallowed; the worker cannot usefully retry
// a mismatch.
func (s *GenerationService) HandleWorkerCallback(ctx context.Context, payload worker.CallbackPayload) error {
	ctx, span := genTracer.Start(ctx, "generation.worker_callback")
	defer span.End()

	var status string
	var imageURL string
	switch payload.Status {
	case worker.StatusCompleted:
		status = "completed"
		imageURL = payload.Output.Message
	case worker.StatusFailed:
		status = "failed"
	default:
		// In-flight statuses map back to pending, which is already the
		// initial state. Safe to re-apply.
		status = "pending"
	}

	upd := s.db.Generation.Update().
		Where(entgen.JobIDEQ(payload.ID)).
		SetStatus(status)
	if imageURL != "" {
		upd = upd.SetImageURL(imageURL)
	}
	if status == "failed" {
		msg := payload.Output.Message
		if msg == "" {
			msg = "worker reported failure"
		}
		upd = upd.SetErrorMessage(msg)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("update generation status: %w", err)
	}
	if n == 0 {
		s.logger.Warn("worker callback for unknown job", "job_id", payload.ID, "status", payload.Status)
		return nil
	}

	if counter, merr := genMeter.Int64Counter("pixelmint.generations.settled"); merr == nil {
		counter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	}

	s.logger.Info("generation updated from worker callback",
		"job_id", payload.ID, "status", status)
	return nil
}

func owns(id Identity, gen *ent.Generation) bool {
	if id.IsUser() {
		return gen.UserID != nil && *gen.UserID == id.UserID
	}
	return gen.SessionID != nil && *gen.SessionID == id.SessionID
}

func settingsMap(s worker.ModelSettings) map[string]any {
	m := map[string]any{
		"model":  s.Model,
		"width":  s.Width,
		"height": s.Height,
	}
	if s.Seed != 0 {
		m["seed"] = s.Seed
	}
	if s.BatchSize != 0 {
		m["batch_size"] = s.BatchSize
	}
	return m
}
