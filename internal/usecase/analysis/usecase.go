package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/avkozlov/analyzer-backend/internal/entity"
	"github.com/avkozlov/analyzer-backend/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Usecase implements the sequential two-stage pipeline: solution generation
// followed by criteria extraction. Both stages go through the same model
// connector; the second stage always consumes the first stage's output.
type Usecase struct {
	model  ModelConnector
	logger *zap.Logger
}

func NewUsecase(model ModelConnector, logger *zap.Logger) *Usecase {
	return &Usecase{
		model:  model,
		logger: logger,
	}
}

// AnalyzeProblem runs the plain pipeline: generate a basic solution, then
// extract evaluation criteria from it. The criteria stage is never attempted
// when the solution stage fails. Nothing is cached across requests.
func (uc *Usecase) AnalyzeProblem(ctx context.Context, req *entity.AnalyzeRequest) (*entity.AnalysisResult, error) {
	problem := strings.TrimSpace(req.Problem)
	if problem == "" {
		return nil, fmt.Errorf("%w: problem", entity.ErrEmptyProblem)
	}

	ctx = logger.AddFields(ctx, zap.String("analysis_id", uuid.New().String()))

	ctxzap.Info(ctx, "generating solution",
		zap.Int("problem_length", len(problem)),
		zap.String("technology", req.Technology),
	)

	solution, err := uc.model.Complete(ctx, SolutionPrompt(problem, req.Technology))
	if err != nil {
		return nil, fmt.Errorf("generate solution: %w", err)
	}

	ctxzap.Info(ctx, "extracting criteria", zap.Int("solution_length", len(solution)))

	rawCriteria, err := uc.model.Complete(ctx, CriteriaPrompt(solution))
	if err != nil {
		return nil, fmt.Errorf("extract criteria: %w", err)
	}

	criteria := parseCriteria(rawCriteria)

	ctxzap.Info(ctx, "analysis completed", zap.Int("criteria_count", len(criteria)))

	return &entity.AnalysisResult{
		Solution: solution,
		Criteria: criteria,
	}, nil
}

// SolveProblem runs the structured pipeline: generate ranked solution
// approaches as JSON, then extract structured criteria from the rank-1
// approach. Parsing of either stage degrades to a single fallback item
// carrying the raw text; it never fails the request.
func (uc *Usecase) SolveProblem(ctx context.Context, req *entity.SolutionRequest) (*entity.SolutionResult, error) {
	problem := strings.TrimSpace(req.ProblemText())
	if problem == "" {
		return nil, fmt.Errorf("%w: content", entity.ErrEmptyProblem)
	}

	language := req.ResolveLanguage()

	ctx = logger.AddFields(ctx,
		zap.String("analysis_id", uuid.New().String()),
		zap.String("language", language),
	)

	ctxzap.Info(ctx, "generating solution approaches", zap.Int("problem_length", len(problem)))

	rawApproaches, err := uc.model.Complete(ctx, ApproachesPrompt(problem, language))
	if err != nil {
		return nil, fmt.Errorf("generate approaches: %w", err)
	}

	approaches := parseApproaches(rawApproaches)

	ctxzap.Info(ctx, "extracting solution criteria", zap.Int("approach_count", len(approaches)))

	// Criteria are derived from the best (rank 1) approach only.
	rawCriteria, err := uc.model.Complete(ctx, ApproachCriteriaPrompt(renderApproach(approaches[0])))
	if err != nil {
		return nil, fmt.Errorf("extract criteria: %w", err)
	}

	criteria := parseCriterionList(rawCriteria)

	ctxzap.Info(ctx, "solution generation completed",
		zap.Int("approach_count", len(approaches)),
		zap.Int("criteria_count", len(criteria)),
	)

	return &entity.SolutionResult{
		Language:   language,
		Approaches: approaches,
		Criteria:   criteria,
	}, nil
}
