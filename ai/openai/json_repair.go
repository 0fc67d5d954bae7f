package openai

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	// {skill_phrase": or {skill_phrase: with the opening quote dropped.
	unquotedKey   = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)"?\s*:`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// decodeReply unmarshals a chat model reply into v. Code fences are removed
// first; the reply is only repaired when it does not parse as is.
func decodeReply(content string, v any) error {
	text := stripCodeFences(content)
	err := json.Unmarshal([]byte(text), v)
	if err == nil {
		return nil
	}
	if repaired := repairJSON(text); repaired != text {
		if json.Unmarshal([]byte(repaired), v) == nil {
			return nil
		}
	}
	return err
}

// repairJSON fixes the key quoting and trailing comma mistakes small models
// make in JSON mode.
func repairJSON(s string) string {
	s = unquotedKey.ReplaceAllString(s, `$1"$2":`)
	return trailingComma.ReplaceAllString(s, "$1")
}

// stripCodeFences removes a surrounding markdown code fence from a model reply.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
