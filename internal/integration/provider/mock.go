package provider

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is a mock model invoker for local runs without an API key.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

const mockSolution = `# Walk the list once, remembering seen values in a set.
def solve(items):
    seen = set()
    result = []
    for item in items:
        # Skip values we have already emitted
        if item in seen:
            continue
        seen.add(item)
        result.append(item)
    return result
`

const mockCriteria = `[
  "Iterates over the input exactly once.",
  "Uses a set to detect previously seen values in O(1).",
  "Preserves the original order of first occurrences.",
  "Handles an empty input without errors."
]`

const mockApproaches = `{
  "approaches": [
    {
      "title": "Single Pass With Set",
      "content": "Walk the input once and keep a set of seen values, appending unseen ones to the result.",
      "rank": 1,
      "time_complexity": "O(n)",
      "space_complexity": "O(n)",
      "code": "def solve(items):\n    seen = set()\n    return [x for x in items if not (x in seen or seen.add(x))]",
      "edge_cases": "Empty input returns an empty list; duplicates are dropped after the first occurrence.",
      "test_examples": "[1, 2, 1] -> [1, 2]"
    }
  ]
}`

const mockStructuredCriteria = `{
  "criteria": [
    {
      "id": "singlePassIteration",
      "description": "Iterates over the input collection exactly once.",
      "pattern": "single for loop over the input"
    },
    {
      "id": "usesSetLookup",
      "description": "Uses a set (or equivalent hash structure) for O(1) membership checks.",
      "pattern": "set membership test inside the loop"
    }
  ]
}`

// Complete returns canned text shaped after the stage the prompt belongs to.
func (m *MockConnector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] completing prompt", zap.Int("prompt_length", len(prompt)))

	switch {
	case strings.Contains(prompt, `"approaches"`):
		return mockApproaches, nil
	case strings.Contains(prompt, `"criteria"`):
		return mockStructuredCriteria, nil
	case strings.Contains(prompt, "criteria"):
		return mockCriteria, nil
	default:
		return mockSolution, nil
	}
}
