package service

import (
	"fmt"

	"github.com/pathfinderai/pathfinder/internal/career/domain"
)

// recommendationPrompt builds the career-counselor instruction. The output
// contract is strict: the model must answer with a bare JSON array of three
// career paths, each with title, description and skills_to_learn. Models
// still like to wrap the array in markdown fences, which the caller strips
// before parsing.
func recommendationPrompt(details domain.AcademicDetails, skills, interests, personality string) string {
	return fmt.Sprintf(`You are an expert career counselor AI named PathFinder.
A user has provided their profile. Your task is to act as a helpful guide and suggest 3 distinct and well-suited career paths.

User Profile:
- Skills: %q
- Interests: %q
- Personality Traits: %q
- Academic Background:
  - 10th Grade Score: %s
  - 12th Grade Stream/Score: %s
  - Graduation Degree/Score: %s

For each of the 3 recommendations, you must provide:
1. title: The job title.
2. description: A detailed, 2-3 sentence paragraph explaining why this career is a great fit for the user's profile, directly mentioning their skills, interests, and academic background.
3. skills_to_learn: A list of 3-4 specific, crucial skills the user should focus on learning to enter this field.

Please provide the output ONLY in a valid JSON array format, like this:
[
  {
    "title": "...",
    "description": "...",
    "skills_to_learn": ["Skill A", "Skill B", "Skill C"]
  }
]`,
		skills,
		interests,
		personality,
		orPlaceholder(details.Grade10),
		orPlaceholder(details.Grade12),
		orPlaceholder(details.Graduation),
	)
}

// liveAnswerPrompt builds the single-question instruction. The reply is
// treated as prose, so no output-format contract beyond "one paragraph".
func liveAnswerPrompt(query string) string {
	return fmt.Sprintf(`You are a helpful and concise career encyclopedia AI.
A user has a specific question about a career or skill.
Provide a direct, helpful, and single-paragraph answer to the user's query.

User Query: %q

Your Answer:`, query)
}

// orPlaceholder substitutes the marker used for profile fields the user
// never filled in.
func orPlaceholder(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
