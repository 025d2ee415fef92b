package analysis

import (
	"fmt"
	"strings"

	"github.com/avkozlov/analyzer-backend/internal/entity"
)

// AnalyzeResponse is the wire shape of POST /analyze.
type AnalyzeResponse struct {
	Criteria []string `json:"criteria"`
	Solution string   `json:"solution"`
}

func toAnalyzeResponse(result *entity.AnalysisResult) AnalyzeResponse {
	return AnalyzeResponse{
		Criteria: result.Criteria,
		Solution: result.Solution,
	}
}

// SolutionResponse is the wire shape of POST /api/leetcode-solutions.
type SolutionResponse struct {
	Status           string                    `json:"status"`
	Introduction     string                    `json:"introduction,omitempty"`
	FullText         string                    `json:"full_text,omitempty"`
	ApproachCount    int                       `json:"approach_count"`
	Approaches       []entity.SolutionApproach `json:"approaches"`
	Language         string                    `json:"language"`
	SolutionCriteria SolutionCriteria          `json:"solution_criteria"`
}

type SolutionCriteria struct {
	Criteria []entity.Criterion `json:"criteria"`
}

const introductionPreviewLength = 200

func toSolutionResponse(result *entity.SolutionResult) SolutionResponse {
	return SolutionResponse{
		Status:        "success",
		Introduction:  buildIntroduction(result.Approaches),
		FullText:      renderFullText(result.Approaches, result.Language),
		ApproachCount: len(result.Approaches),
		Approaches:    result.Approaches,
		Language:      result.Language,
		SolutionCriteria: SolutionCriteria{
			Criteria: result.Criteria,
		},
	}
}

// buildIntroduction previews the best approach. Approaches arrive sorted
// best-first from the pipeline.
func buildIntroduction(approaches []entity.SolutionApproach) string {
	if len(approaches) == 0 {
		return ""
	}

	best := approaches[0]
	content := best.Content
	if len(content) > introductionPreviewLength {
		content = content[:introductionPreviewLength] + "..."
	}

	return fmt.Sprintf("%s - %s", best.Title, content)
}

// renderFullText builds a markdown rendering of all approaches.
func renderFullText(approaches []entity.SolutionApproach, language string) string {
	var sb strings.Builder

	for i, approach := range approaches {
		title := approach.Title
		if title == "" {
			title = "Solution"
		}
		fmt.Fprintf(&sb, "## Approach %d: %s\n\n", i+1, title)
		fmt.Fprintf(&sb, "%s\n\n", approach.Content)

		fmt.Fprintf(&sb, "**Time Complexity**: %s\n", orNotSpecified(approach.TimeComplexity))
		fmt.Fprintf(&sb, "**Space Complexity**: %s\n\n", orNotSpecified(approach.SpaceComplexity))

		if approach.Code != "" {
			fmt.Fprintf(&sb, "```%s\n%s\n```\n\n", language, approach.Code)
		}
		if approach.EdgeCases != "" {
			fmt.Fprintf(&sb, "**Edge Cases**: %s\n\n", approach.EdgeCases)
		}
		if approach.TestExamples != "" {
			fmt.Fprintf(&sb, "**Test Examples**:\n%s\n\n", approach.TestExamples)
		}
	}

	return sb.String()
}

func orNotSpecified(value string) string {
	if value == "" {
		return "Not specified"
	}
	return value
}
