package analysis

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/avkozlov/analyzer-backend/internal/entity"
)

const unrankedApproach = 999

type approachesEnvelope struct {
	Approaches []entity.SolutionApproach `json:"approaches"`
}

// parseApproaches decodes the solution stage output of the structured flow.
// On parse failure the raw text becomes a single rank-1 approach.
func parseApproaches(raw string) []entity.SolutionApproach {
	text := stripCodeFence(raw)

	var env approachesEnvelope
	if err := json.Unmarshal([]byte(extractJSONObject(text)), &env); err == nil && len(env.Approaches) > 0 {
		sortApproaches(env.Approaches)
		return env.Approaches
	}

	var list []entity.SolutionApproach
	if err := json.Unmarshal([]byte(text), &list); err == nil && len(list) > 0 {
		sortApproaches(list)
		return list
	}

	return []entity.SolutionApproach{{
		Title:   "Solution",
		Content: strings.TrimSpace(raw),
		Rank:    1,
	}}
}

// sortApproaches orders approaches best-first. A missing rank sorts last.
func sortApproaches(approaches []entity.SolutionApproach) {
	sort.SliceStable(approaches, func(i, j int) bool {
		return normalizedRank(approaches[i].Rank) < normalizedRank(approaches[j].Rank)
	})
}

func normalizedRank(rank int) int {
	if rank <= 0 {
		return unrankedApproach
	}
	return rank
}

// renderApproach produces the textual form of an approach that gets embedded
// into the criteria stage prompt.
func renderApproach(a entity.SolutionApproach) string {
	var sb strings.Builder

	if a.Title != "" {
		fmt.Fprintf(&sb, "%s\n\n", a.Title)
	}
	if a.Content != "" {
		fmt.Fprintf(&sb, "%s\n\n", a.Content)
	}
	if a.Code != "" {
		fmt.Fprintf(&sb, "```\n%s\n```\n\n", a.Code)
	}
	if a.TimeComplexity != "" {
		fmt.Fprintf(&sb, "Time complexity: %s\n", a.TimeComplexity)
	}
	if a.SpaceComplexity != "" {
		fmt.Fprintf(&sb, "Space complexity: %s\n", a.SpaceComplexity)
	}
	if a.EdgeCases != "" {
		fmt.Fprintf(&sb, "Edge cases: %s\n", a.EdgeCases)
	}

	return strings.TrimSpace(sb.String())
}

// rawCriterion tolerates non-string pattern values some models emit.
type rawCriterion struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Pattern     any    `json:"pattern"`
}

type criteriaEnvelope struct {
	Criteria []rawCriterion `json:"criteria"`
}

// parseCriterionList decodes the criteria stage output of the structured
// flow. On parse failure the raw text becomes a single fallback criterion.
func parseCriterionList(raw string) []entity.Criterion {
	text := stripCodeFence(raw)

	var env criteriaEnvelope
	if err := json.Unmarshal([]byte(extractJSONObject(text)), &env); err == nil && len(env.Criteria) > 0 {
		return coerceCriteria(env.Criteria)
	}

	var list []rawCriterion
	if err := json.Unmarshal([]byte(text), &list); err == nil && len(list) > 0 {
		return coerceCriteria(list)
	}

	return []entity.Criterion{{
		ID:          "fallbackCriterion",
		Description: strings.TrimSpace(raw),
	}}
}

func coerceCriteria(raw []rawCriterion) []entity.Criterion {
	out := make([]entity.Criterion, 0, len(raw))
	for i, rc := range raw {
		c := entity.Criterion{
			ID:          strings.TrimSpace(rc.ID),
			Description: strings.TrimSpace(rc.Description),
			Pattern:     coerceString(rc.Pattern),
		}
		if c.ID == "" {
			c.ID = fmt.Sprintf("criterion%d", i+1)
		}
		out = append(out, c)
	}
	return out
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}
