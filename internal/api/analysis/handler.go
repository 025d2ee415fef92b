package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avkozlov/analyzer-backend/internal/entity"
	"github.com/avkozlov/analyzer-backend/internal/pkg/logger"
	"github.com/avkozlov/analyzer-backend/internal/pkg/response"
	"github.com/avkozlov/analyzer-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   AnalysisUsecase
	validator *validator.Validator
}

func NewHandler(usecase AnalysisUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// AnalyzeProblem handles POST /analyze - run the two-stage pipeline and
// return the solution together with the extracted criteria.
func (h *Handler) AnalyzeProblem(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AnalyzeProblem")

	var req entity.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateAnalyze(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.usecase.AnalyzeProblem(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toAnalyzeResponse(result))
}

// GenerateSolutions handles POST /api/leetcode-solutions - run the
// structured pipeline and return ranked approaches with solution criteria.
func (h *Handler) GenerateSolutions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateSolutions")

	var req entity.SolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateSolution(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.usecase.SolveProblem(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSolutionResponse(result))
}

// handleUsecaseError maps domain errors to HTTP statuses: invalid input to
// 400, unreachable provider to 503, provider errors to 502.
func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrEmptyProblem),
		errors.Is(err, entity.ErrProblemTooShort),
		errors.Is(err, entity.ErrProblemTooLong),
		errors.Is(err, entity.ErrMissingField):
		ctxzap.Warn(ctx, "invalid analysis request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, entity.ErrUpstreamUnavailable):
		ctxzap.Error(ctx, "model provider unreachable", zap.Error(err))
		response.Error(w, http.StatusServiceUnavailable, err.Error())

	case errors.Is(err, entity.ErrUpstream):
		ctxzap.Error(ctx, "model provider error", zap.Error(err))
		response.Error(w, http.StatusBadGateway, err.Error())

	default:
		ctxzap.Error(ctx, "analysis failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
