package validator

import (
	"fmt"
	"strings"

	"github.com/avkozlov/analyzer-backend/internal/entity"
)

// Structured solution requests shorter than this are rejected as too short
// to describe a real problem.
const minSolutionProblemLength = 10

// ValidateAnalyze validates the plain analysis request.
func (v *Validator) ValidateAnalyze(req *entity.AnalyzeRequest) error {
	problem := strings.TrimSpace(req.Problem)
	if problem == "" {
		return fmt.Errorf("%w: problem", entity.ErrMissingField)
	}

	if len(problem) > v.cfg.MaxProblemLength {
		return fmt.Errorf("%w: %d bytes (max %d)", entity.ErrProblemTooLong, len(problem), v.cfg.MaxProblemLength)
	}

	return nil
}

// ValidateSolution validates the structured solution request.
func (v *Validator) ValidateSolution(req *entity.SolutionRequest) error {
	problem := strings.TrimSpace(req.ProblemText())
	if problem == "" {
		return fmt.Errorf("%w: content", entity.ErrMissingField)
	}

	if len(problem) < minSolutionProblemLength {
		return fmt.Errorf("%w: %d bytes (min %d)", entity.ErrProblemTooShort, len(problem), minSolutionProblemLength)
	}

	if len(problem) > v.cfg.MaxProblemLength {
		return fmt.Errorf("%w: %d bytes (max %d)", entity.ErrProblemTooLong, len(problem), v.cfg.MaxProblemLength)
	}

	return nil
}
