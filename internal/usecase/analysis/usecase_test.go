package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/avkozlov/analyzer-backend/internal/entity"
	"go.uber.org/zap"
)

// fakeConnector records prompts and replays scripted responses.
type fakeConnector struct {
	responses []string
	errs      []error
	prompts   []string
}

func (f *fakeConnector) Complete(ctx context.Context, prompt string) (string, error) {
	call := len(f.prompts)
	f.prompts = append(f.prompts, prompt)

	if call < len(f.errs) && f.errs[call] != nil {
		return "", f.errs[call]
	}
	if call < len(f.responses) {
		return f.responses[call], nil
	}
	return "", errors.New("unexpected model call")
}

func TestAnalyzeProblemRunsTwoSequentialStages(t *testing.T) {
	model := &fakeConnector{
		responses: []string{
			"def two_sum(nums, target): ...",
			`["Uses a hash map for lookups.", "Handles an empty input."]`,
		},
	}
	uc := NewUsecase(model, zap.NewNop())

	result, err := uc.AnalyzeProblem(context.Background(), &entity.AnalyzeRequest{
		Problem:    "Two Sum",
		Technology: "python",
	})
	if err != nil {
		t.Fatalf("AnalyzeProblem failed: %v", err)
	}

	if len(model.prompts) != 2 {
		t.Fatalf("Expected exactly 2 model calls, got %d", len(model.prompts))
	}

	if !strings.Contains(model.prompts[0], "Two Sum") {
		t.Error("Solution prompt does not contain the problem text")
	}
	if !strings.Contains(model.prompts[0], "You must use python") {
		t.Error("Solution prompt does not contain the technology instruction")
	}

	// The criteria prompt must embed the first stage's output verbatim.
	if !strings.Contains(model.prompts[1], model.responses[0]) {
		t.Error("Criteria prompt does not contain the solution verbatim")
	}

	if result.Solution != model.responses[0] {
		t.Errorf("Expected solution %q, got %q", model.responses[0], result.Solution)
	}
	if len(result.Criteria) != 2 {
		t.Fatalf("Expected 2 criteria, got %d", len(result.Criteria))
	}
	if result.Criteria[0] != "Uses a hash map for lookups." {
		t.Errorf("Unexpected first criterion: %q", result.Criteria[0])
	}
}

func TestAnalyzeProblemWithoutTechnology(t *testing.T) {
	model := &fakeConnector{
		responses: []string{"solution", `["a"]`},
	}
	uc := NewUsecase(model, zap.NewNop())

	if _, err := uc.AnalyzeProblem(context.Background(), &entity.AnalyzeRequest{Problem: "Reverse a list"}); err != nil {
		t.Fatalf("AnalyzeProblem failed: %v", err)
	}

	if strings.Contains(model.prompts[0], "You must use") {
		t.Error("Solution prompt contains a technology instruction for an empty hint")
	}
}

func TestAnalyzeProblemFirstStageFailureSkipsSecondStage(t *testing.T) {
	upstreamErr := fmt.Errorf("%w: connection refused", entity.ErrUpstreamUnavailable)
	model := &fakeConnector{
		errs: []error{upstreamErr},
	}
	uc := NewUsecase(model, zap.NewNop())

	result, err := uc.AnalyzeProblem(context.Background(), &entity.AnalyzeRequest{Problem: "Two Sum"})
	if err == nil {
		t.Fatal("Expected an error when the solution stage fails")
	}
	if !errors.Is(err, entity.ErrUpstreamUnavailable) {
		t.Errorf("Expected ErrUpstreamUnavailable, got %v", err)
	}
	if result != nil {
		t.Error("Expected no result on stage failure")
	}
	if len(model.prompts) != 1 {
		t.Errorf("Expected the criteria stage to never run, got %d calls", len(model.prompts))
	}
}

func TestAnalyzeProblemEmptyProblemFailsBeforeAnyCall(t *testing.T) {
	model := &fakeConnector{}
	uc := NewUsecase(model, zap.NewNop())

	for _, problem := range []string{"", "   ", "\n\t"} {
		_, err := uc.AnalyzeProblem(context.Background(), &entity.AnalyzeRequest{Problem: problem})
		if !errors.Is(err, entity.ErrEmptyProblem) {
			t.Errorf("Problem %q: expected ErrEmptyProblem, got %v", problem, err)
		}
	}

	if len(model.prompts) != 0 {
		t.Errorf("Expected no model calls for empty input, got %d", len(model.prompts))
	}
}

func TestAnalyzeProblemUnparseableCriteriaDegradesToRawText(t *testing.T) {
	raw := "The solution must iterate once and use constant extra memory."
	model := &fakeConnector{
		responses: []string{"solution", raw},
	}
	uc := NewUsecase(model, zap.NewNop())

	result, err := uc.AnalyzeProblem(context.Background(), &entity.AnalyzeRequest{Problem: "Two Sum"})
	if err != nil {
		t.Fatalf("AnalyzeProblem failed: %v", err)
	}

	if len(result.Criteria) != 1 {
		t.Fatalf("Expected a one-element criteria list, got %d", len(result.Criteria))
	}
	if result.Criteria[0] != raw {
		t.Errorf("Expected raw text to be preserved, got %q", result.Criteria[0])
	}
}

func TestSolveProblemSortsApproachesAndDerivesCriteriaFromBest(t *testing.T) {
	approachesJSON := `{
		"approaches": [
			{"title": "Brute Force", "content": "Nested loops.", "rank": 2, "code": "for i: for j: ..."},
			{"title": "Hash Map Single Pass", "content": "One pass with a map.", "rank": 1, "code": "seen = {}"}
		]
	}`
	criteriaJSON := `{
		"criteria": [
			{"id": "usesHashMapLookup", "description": "Uses a hash map for O(1) lookups.", "pattern": "map access in loop"}
		]
	}`
	model := &fakeConnector{responses: []string{approachesJSON, criteriaJSON}}
	uc := NewUsecase(model, zap.NewNop())

	result, err := uc.SolveProblem(context.Background(), &entity.SolutionRequest{
		Content: "Given an array of integers, return indices of the two numbers that add up to a target.",
	})
	if err != nil {
		t.Fatalf("SolveProblem failed: %v", err)
	}

	if len(model.prompts) != 2 {
		t.Fatalf("Expected exactly 2 model calls, got %d", len(model.prompts))
	}

	if result.Language != "python" {
		t.Errorf("Expected default language python, got %q", result.Language)
	}

	if len(result.Approaches) != 2 || result.Approaches[0].Rank != 1 {
		t.Fatalf("Expected approaches sorted best-first, got %+v", result.Approaches)
	}

	// The criteria prompt is built from the rank-1 approach only.
	if !strings.Contains(model.prompts[1], "Hash Map Single Pass") {
		t.Error("Criteria prompt does not contain the rank-1 approach")
	}
	if strings.Contains(model.prompts[1], "Brute Force") {
		t.Error("Criteria prompt unexpectedly contains the rank-2 approach")
	}

	if len(result.Criteria) != 1 || result.Criteria[0].ID != "usesHashMapLookup" {
		t.Errorf("Unexpected criteria: %+v", result.Criteria)
	}
}

func TestSolveProblemFallsBackOnUnstructuredOutput(t *testing.T) {
	model := &fakeConnector{
		responses: []string{
			"Here is a solution in plain prose.",
			"These criteria could not be structured either.",
		},
	}
	uc := NewUsecase(model, zap.NewNop())

	result, err := uc.SolveProblem(context.Background(), &entity.SolutionRequest{
		Problem: "Reverse a singly linked list in place.",
	})
	if err != nil {
		t.Fatalf("SolveProblem failed: %v", err)
	}

	if len(result.Approaches) != 1 {
		t.Fatalf("Expected a single fallback approach, got %d", len(result.Approaches))
	}
	if result.Approaches[0].Content != model.responses[0] {
		t.Error("Fallback approach does not carry the raw stage output")
	}

	if len(result.Criteria) != 1 {
		t.Fatalf("Expected a single fallback criterion, got %d", len(result.Criteria))
	}
	if result.Criteria[0].ID != "fallbackCriterion" {
		t.Errorf("Expected fallbackCriterion id, got %q", result.Criteria[0].ID)
	}
	if result.Criteria[0].Description != model.responses[1] {
		t.Error("Fallback criterion does not carry the raw stage output")
	}
}

func TestSolveProblemEmptyContentFailsBeforeAnyCall(t *testing.T) {
	model := &fakeConnector{}
	uc := NewUsecase(model, zap.NewNop())

	_, err := uc.SolveProblem(context.Background(), &entity.SolutionRequest{})
	if !errors.Is(err, entity.ErrEmptyProblem) {
		t.Errorf("Expected ErrEmptyProblem, got %v", err)
	}
	if len(model.prompts) != 0 {
		t.Errorf("Expected no model calls, got %d", len(model.prompts))
	}
}
