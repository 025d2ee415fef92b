package entity

import "testing"

func TestSolutionRequestProblemText(t *testing.T) {
	tests := []struct {
		name     string
		req      SolutionRequest
		expected string
	}{
		{
			name:     "content preferred over legacy field",
			req:      SolutionRequest{Content: "from content", Problem: "from problem"},
			expected: "from content",
		},
		{
			name:     "legacy field used when content is blank",
			req:      SolutionRequest{Content: "  ", Problem: "from problem"},
			expected: "from problem",
		},
		{
			name:     "empty request",
			req:      SolutionRequest{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.ProblemText(); got != tt.expected {
				t.Errorf("ProblemText() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSolutionRequestResolveLanguage(t *testing.T) {
	tests := []struct {
		name     string
		req      SolutionRequest
		expected string
	}{
		{
			name:     "programmingLanguage wins",
			req:      SolutionRequest{ProgrammingLanguage: "go", ProgramLanguage: "java", Language: "rust"},
			expected: "go",
		},
		{
			name:     "programLanguage as second alias",
			req:      SolutionRequest{ProgramLanguage: "java", Language: "rust"},
			expected: "java",
		},
		{
			name:     "language as last alias",
			req:      SolutionRequest{Language: "rust"},
			expected: "rust",
		},
		{
			name:     "defaults to python",
			req:      SolutionRequest{},
			expected: "python",
		},
		{
			name:     "blank aliases are skipped",
			req:      SolutionRequest{ProgrammingLanguage: "  ", Language: "go"},
			expected: "go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.ResolveLanguage(); got != tt.expected {
				t.Errorf("ResolveLanguage() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
