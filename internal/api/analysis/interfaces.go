package analysis

import (
	"context"

	"github.com/avkozlov/analyzer-backend/internal/entity"
)

// AnalysisUsecase is the pipeline surface the HTTP handlers depend on.
type AnalysisUsecase interface {
	AnalyzeProblem(ctx context.Context, req *entity.AnalyzeRequest) (*entity.AnalysisResult, error)
	SolveProblem(ctx context.Context, req *entity.SolutionRequest) (*entity.SolutionResult, error)
}
