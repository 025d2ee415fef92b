package entity

import "strings"

// AnalyzeRequest is the input for the plain two-stage analysis flow.
type AnalyzeRequest struct {
	Problem    string `json:"problem"`
	Technology string `json:"technology,omitempty"`
}

// AnalysisResult holds the outputs of both pipeline stages. It lives only
// for the duration of a single request and is never persisted.
type AnalysisResult struct {
	Solution string
	Criteria []string
}

// SolutionRequest is the input for the structured solution flow. The three
// language fields are aliases accepted for compatibility with different
// clients; the first non-empty one wins.
type SolutionRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	// Problem is the legacy field name for the problem description.
	Problem string `json:"problem,omitempty"`

	ProgrammingLanguage string `json:"programmingLanguage,omitempty"`
	ProgramLanguage     string `json:"programLanguage,omitempty"`
	Language            string `json:"language,omitempty"`

	Difficulty       string `json:"difficulty,omitempty"`
	URL              string `json:"url,omitempty"`
	ExampleTestcases string `json:"exampleTestcases,omitempty"`
}

// ProblemText returns the problem description, preferring the primary
// content field over the legacy one.
func (r *SolutionRequest) ProblemText() string {
	if strings.TrimSpace(r.Content) != "" {
		return r.Content
	}
	return r.Problem
}

// ResolveLanguage returns the requested programming language, defaulting
// to python when none of the alias fields is set.
func (r *SolutionRequest) ResolveLanguage() string {
	for _, lang := range []string{r.ProgrammingLanguage, r.ProgramLanguage, r.Language} {
		if strings.TrimSpace(lang) != "" {
			return lang
		}
	}
	return "python"
}

// SolutionApproach is a single ranked solution approach produced by the
// solution stage of the structured flow.
type SolutionApproach struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	Rank            int    `json:"rank"`
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
	Code            string `json:"code"`
	EdgeCases       string `json:"edge_cases"`
	TestExamples    string `json:"test_examples"`
}

// Criterion is a single structured requirement extracted from the best
// solution approach.
type Criterion struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Pattern     string `json:"pattern"`
}

// SolutionResult holds the outputs of the structured two-stage flow.
type SolutionResult struct {
	Language   string
	Approaches []SolutionApproach
	Criteria   []Criterion
}
