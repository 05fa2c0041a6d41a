package brief

import (
	"encoding/json"
	"fmt"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
)

// SystemPrompt instructs the model how to review a project brief
const SystemPrompt = `You are a senior delivery manager reviewing software project briefs.
Compare the brief you are given against the reference template section by section.
For every template section decide whether the brief covers it fully, partially or not at all,
and list concrete follow-up questions for anything missing or ambiguous.
Respond with a single JSON object and nothing else, using exactly these keys:
{
  "completeness_score": <integer 0-10>,
  "sections": [{"name": "<template section>", "status": "complete|partial|missing", "notes": "<short explanation>"}],
  "missing_information": ["<item>"],
  "follow_up_questions": ["<question>"],
  "summary": "<two or three sentences>"
}`

// ReferenceTemplate is the outline every project brief is checked against
const ReferenceTemplate = `1. Business goals: the problem being solved and how success is measured.
2. Users and stakeholders: who uses the product and who signs off.
3. Scope: features in scope, explicitly out of scope, and priorities.
4. Functional requirements: user flows, integrations, data to be stored.
5. Non-functional requirements: performance, security, compliance, accessibility.
6. Technical constraints: existing systems, hosting, preferred technologies.
7. Timeline and milestones: deadlines, phases, external dependencies.
8. Budget: range, billing model, approval process.
9. Open questions: anything the client has not decided yet.`

// briefPayload is the project data serialized into the user message
type briefPayload struct {
	ProjectID    string  `json:"project_id"`
	Requirements *string `json:"requirements"`
	Questions    *string `json:"questions"`
}

// BuildUserMessage renders the project brief and reference template for the completion call
func BuildUserMessage(project *entities.Project) (string, error) {
	data, err := json.MarshalIndent(briefPayload{
		ProjectID:    project.ProjectID,
		Requirements: project.Requirements,
		Questions:    project.Questions,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Here is the project brief to validate:\n\n%s\n\nHere is the reference template:\n\n%s", data, ReferenceTemplate), nil
}
