// Package matching implements the placement matching and ranking engine: the
// deterministic compatibility scorers, the optional semantic augmentation,
// score aggregation, reason generation and the ranking pipeline.
package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/placemate/placemate/internal/filtering"
	"github.com/placemate/placemate/internal/notify"
	"github.com/placemate/placemate/internal/placement"
	"github.com/placemate/placemate/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLimit       = 10
	defaultConcurrency = 4

	// statsSampleSize is how many matches feed the dashboard buckets.
	statsSampleSize = 50
)

// ErrAlreadyApplied is returned when a student applies twice to the same
// placement. The dedup check runs before any application is created.
var ErrAlreadyApplied = errors.New("already applied to this placement")

// Store is the persistence collaborator the engine reads from and writes to.
type Store interface {
	Student(ctx context.Context, id uuid.UUID) (*placement.Student, error)
	ActivePlacements(ctx context.Context) (*placement.Placements, error)
	PlacementWithCompany(ctx context.Context, id uuid.UUID) (*placement.Placement, error)
	ApplicationsByStudent(ctx context.Context, studentID uuid.UUID) (*placement.Applications, error)
	ApplicationFor(ctx context.Context, studentID, placementID uuid.UUID) (*placement.Application, error)
	InsertApplication(ctx context.Context, app *placement.Application) error
}

// CoverLetterGenerator produces the letter captured with an application.
type CoverLetterGenerator interface {
	Generate(ctx context.Context, student *placement.Student, p *placement.Placement, company *placement.Company) string
}

// Config tunes the engine.
type Config struct {
	// Limit is the default ranking size when the caller passes none.
	Limit int
	// Concurrency bounds the parallel semantic calls during ranking.
	Concurrency int
}

// Deps aggregates the engine's collaborators. Semantic may be nil, which
// keeps the engine on the traditional weight profile.
type Deps struct {
	Store        Store
	Semantic     *SemanticScorer
	CoverLetters CoverLetterGenerator
	Notifier     notify.Notifier
	Logger       *zap.Logger
}

// Engine matches students against open placements and ranks them by
// estimated fit.
type Engine struct {
	store        Store
	semantic     *SemanticScorer
	coverLetters CoverLetterGenerator
	notifier     notify.Notifier
	logger       *zap.Logger

	limit       int
	concurrency int
}

func NewEngine(cfg *Config, deps *Deps) *Engine {
	limit, concurrency := defaultLimit, defaultConcurrency
	if cfg != nil && cfg.Limit > 0 {
		limit = cfg.Limit
	}
	if cfg != nil && cfg.Concurrency > 0 {
		concurrency = cfg.Concurrency
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		store:        deps.Store,
		semantic:     deps.Semantic,
		coverLetters: deps.CoverLetters,
		notifier:     deps.Notifier,
		logger:       logger,
		limit:        limit,
		concurrency:  concurrency,
	}
}

// SemanticEnabled reports whether the semantic scorer is engaged.
func (e *Engine) SemanticEnabled() bool {
	return e.semantic != nil
}

// Rank scores every open placement the student has not applied to and
// returns the top matches sorted by overall score descending. Ties keep the
// placement recency order. A limit of zero or less uses the configured
// default. An empty result is valid.
func (e *Engine) Rank(ctx context.Context, studentID uuid.UUID, limit int) (Results, error) {
	student, err := e.store.Student(ctx, studentID)
	if err != nil {
		return nil, err
	}

	placements, err := e.store.ActivePlacements(ctx)
	if err != nil {
		return nil, fmt.Errorf("load placements: %w", err)
	}

	applications, err := e.store.ApplicationsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load applications: %w", err)
	}

	steps := []filtering.Filter{
		filtering.NewAppliedHistory(applications),
		filtering.NewPastDeadline(time.Now()),
	}

	placements, err = filtering.Run(ctx, steps, placements, e.logger)
	if err != nil {
		return nil, err
	}

	results, err := e.scoreAll(ctx, student, placements)
	if err != nil {
		return nil, err
	}

	// Completion order of the semantic calls must not leak into the
	// ranking: collect everything, then sort.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.Overall > results[j].Score.Overall
	})

	if limit <= 0 {
		limit = e.limit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	e.logger.Info("ranking complete",
		zap.String("student_id", studentID.String()),
		zap.Int("matches", len(results)),
		zap.Bool("semantic", e.SemanticEnabled()),
	)

	return results, nil
}

// scoreAll fans out over the placements with bounded concurrency. Each pair
// is independent; only the semantic scorer leaves the process.
func (e *Engine) scoreAll(ctx context.Context, student *placement.Student, placements *placement.Placements) (Results, error) {
	results := make(Results, placements.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, p := range placements.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.match(gctx, student, p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (e *Engine) match(ctx context.Context, student *placement.Student, p *placement.Placement) *MatchResult {
	score := e.Score(ctx, student, p, e.SemanticEnabled())
	return &MatchResult{
		Placement: p,
		Score:     score,
		Reasons:   Reasons(student, p, score),
	}
}

// Score computes the match score for a single pair. With useSemantic the
// semantic scorer is consulted when available; its failures degrade to the
// neutral score inside the scorer and never surface here.
func (e *Engine) Score(ctx context.Context, student *placement.Student, p *placement.Placement, useSemantic bool) MatchScore {
	components := scoreComponents(student, p)

	if useSemantic && e.semantic != nil {
		semantic := e.semantic.Score(ctx, student, p)
		components.Semantic = &semantic
	}

	return components.Compose()
}

// Analysis is the detailed single-pair view, including the student's
// application state for the placement.
type Analysis struct {
	MatchResult
	HasApplied        bool   `json:"has_applied"`
	ApplicationStatus string `json:"application_status,omitempty"`
}

// Analyze computes the detailed match between one student and one placement.
func (e *Engine) Analyze(ctx context.Context, studentID, placementID uuid.UUID) (*Analysis, error) {
	student, err := e.store.Student(ctx, studentID)
	if err != nil {
		return nil, err
	}

	p, err := e.store.PlacementWithCompany(ctx, placementID)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{MatchResult: *e.match(ctx, student, p)}

	app, err := e.store.ApplicationFor(ctx, studentID, placementID)
	switch {
	case err == nil:
		analysis.HasApplied = true
		analysis.ApplicationStatus = app.Status
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, fmt.Errorf("check application: %w", err)
	}

	return analysis, nil
}

// GenerateCoverLetter produces a cover letter for the pair without applying.
func (e *Engine) GenerateCoverLetter(ctx context.Context, studentID, placementID uuid.UUID) (string, error) {
	student, err := e.store.Student(ctx, studentID)
	if err != nil {
		return "", err
	}

	p, err := e.store.PlacementWithCompany(ctx, placementID)
	if err != nil {
		return "", err
	}

	return e.coverLetters.Generate(ctx, student, p, p.Company), nil
}

// Apply submits an application: dedup check first, then cover letter, score
// capture, insert and a single company notification. A duplicate is rejected
// before anything is created.
func (e *Engine) Apply(ctx context.Context, studentID, placementID uuid.UUID) (*placement.Application, error) {
	student, err := e.store.Student(ctx, studentID)
	if err != nil {
		return nil, err
	}

	p, err := e.store.PlacementWithCompany(ctx, placementID)
	if err != nil {
		return nil, err
	}

	_, err = e.store.ApplicationFor(ctx, studentID, placementID)
	switch {
	case err == nil:
		return nil, ErrAlreadyApplied
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, fmt.Errorf("check application: %w", err)
	}

	score := e.Score(ctx, student, p, e.SemanticEnabled())
	letter := e.coverLetters.Generate(ctx, student, p, p.Company)

	app := &placement.Application{
		ID:             uuid.New(),
		StudentID:      studentID,
		PlacementID:    placementID,
		Status:         placement.StatusPending,
		CoverLetter:    letter,
		MatchOverall:   score.Overall,
		MatchBreakdown: score.Breakdown,
		SubmittedAt:    time.Now().UTC(),
	}

	if err := e.store.InsertApplication(ctx, app); err != nil {
		return nil, err
	}

	if err := e.notifier.ApplicationSubmitted(ctx, app, p); err != nil {
		// The application is already persisted; a lost notification is
		// not worth failing the apply over.
		e.logger.Warn("company notification failed",
			zap.String("application_id", app.ID.String()),
			zap.Error(err),
		)
	}

	return app, nil
}

// Stats summarizes match quality for the student dashboard.
type Stats struct {
	Matches   int `json:"matches"`
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
}

// Stats ranks a larger sample and buckets the scores.
func (e *Engine) Stats(ctx context.Context, studentID uuid.UUID) (*Stats, error) {
	results, err := e.Rank(ctx, studentID, statsSampleSize)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Matches: len(results)}
	for _, result := range results {
		switch overall := result.Score.Overall; {
		case overall >= 0.8:
			stats.Excellent++
		case overall >= 0.6:
			stats.Good++
		case overall >= 0.4:
			stats.Fair++
		}
	}

	return stats, nil
}
