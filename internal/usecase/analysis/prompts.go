package analysis

import "fmt"

// SolutionPrompt builds the stage-one prompt asking for a basic solution.
// The technology hint, when present, is embedded as a hard requirement.
func SolutionPrompt(problem, technology string) string {
	techInstruction := ""
	if technology != "" {
		techInstruction = fmt.Sprintf("You must use %s to solve this problem.\n\n", technology)
	}

	return fmt.Sprintf(`Your task is to analyze the following coding problem and generate a clear, basic solution.

PROBLEM:
%s

%sYou should:
1. Understand the problem requirements
2. Create a working solution using the specified programming language
3. Explain your approach in comments
4. Focus on correctness and readability, not optimization

Your solution should be well-structured with appropriate variable names
and comments explaining your logic.`, problem, techInstruction)
}

// CriteriaPrompt builds the stage-two prompt. The stage-one output is
// embedded verbatim so the second call has full context.
func CriteriaPrompt(solution string) string {
	return fmt.Sprintf(`Based on the coding solution below, extract and list the specific
criteria that are necessary to satisfy this solution.

SOLUTION:
%s

Your task is to:
1. Analyze the solution carefully
2. Identify the key requirements the solution fulfills
3. Extract the criteria that would be needed to consider a solution correct
4. Present these criteria as a clear, organized array of items

Be specific about what makes the solution valid, including any edge cases
that are handled, algorithmic approaches used, and correctness conditions.
Each criterion should be concise but complete. Format your answer as a
JSON array of strings and output nothing else.`, solution)
}

// ApproachesPrompt builds the stage-one prompt of the structured flow,
// asking for one or two ranked solution approaches as JSON.
func ApproachesPrompt(problem, language string) string {
	return fmt.Sprintf(`Generate 1-2 high-quality solution approaches for the following interview problem.

PROBLEM:
%s

GUIDELINES:
1. Read the problem carefully and solve exactly what is asked.
2. Rank 1 must be the approach the majority of candidates (and the official
   editorial) typically use. Rank 2 is optional and should only be included
   when it offers a genuine improvement in asymptotics or noteworthy insight.
3. Do not exceed 2 approaches.
4. Output valid JSON conforming exactly to this schema and nothing else:
{
  "approaches": [
    {
      "title": "Approach name",
      "content": "Detailed explanation",
      "rank": 1,
      "time_complexity": "O(...)",
      "space_complexity": "O(...)",
      "code": "implementation in %s",
      "edge_cases": "Edge case handling",
      "test_examples": "Example test cases"
    }
  ]
}`, problem, language)
}

// ApproachCriteriaPrompt builds the stage-two prompt of the structured flow.
// The rank-1 solution is embedded verbatim.
func ApproachCriteriaPrompt(solution string) string {
	return fmt.Sprintf(`You are given a reference solution for a coding problem.

SOLUTION:
%s

Extract a checklist of concrete, observable criteria the candidate's solution
must satisfy. Every criterion must correspond to something a reviewer can
match directly in the candidate's code (function shape, library usage, loop
structure, explicit branch). Do not invent abstract "should be efficient"
statements without a code-level cue, and do not combine multiple ideas in one
criterion. If the reference solution shows an edge-case check, complexity
guarantee, or specific library usage, create a separate criterion for it.
Keep at most 5 criteria, preferring the most specific, singular, and
measurable ones. Avoid exact identifier names since candidates name things
differently.

Output valid JSON conforming exactly to this schema and nothing else:
{
  "criteria": [
    {
      "id": "camelCaseKey",
      "description": "Detailed sentence telling a reviewer what to check.",
      "pattern": "Code pattern or hint to recognize this criterion."
    }
  ]
}`, solution)
}
