package openai

import "fmt"

const phraseResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "skill_phrase": {
      "type": "string"
    }
  },
  "required": ["skill_phrase"],
  "additionalProperties": false
}`

const phraseSystemPrompt = `You extract the skill being asked about from questions about employees.

Rules:
- Reply with a single JSON object matching this schema:
%s
- "skill_phrase" is the skill or skills named in the question, lower-case, without the question words.
- Keep "and" / "or" between multiple skills exactly as the user wrote them.
- Do not expand abbreviations or correct spelling.
- If the question names no skill, reply {"skill_phrase": ""}.

Examples:
Q: who knows Big Data and NLP?
A: {"skill_phrase": "big data and nlp"}
Q: Anyone with kubernetes experience
A: {"skill_phrase": "kubernetes"}
Q: Is there someone who can do Java or Scala?
A: {"skill_phrase": "java or scala"}
Q: hello
A: {"skill_phrase": ""}`

// buildSystemPrompt renders the system prompt with the response schema inlined.
func buildSystemPrompt() string {
	return fmt.Sprintf(phraseSystemPrompt, phraseResponseSchema)
}
