// Package placeholder extracts bracketed substitution tokens from
// template bodies. Both the live-editing aids and the batch merge
// engine depend on it, so extraction must be deterministic: token
// identity is the literal interior text, case-sensitive, with no
// whitespace normalisation.
package placeholder

import "regexp"

// tokenPattern matches one bracketed token with a non-empty interior.
// Empty brackets are not valid tokens. The interior runs to the first
// closing bracket, so a literal "[" inside a token is kept verbatim.
var tokenPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// Extract returns the distinct tokens in template, deduplicated
// preserving first-seen order. The surrounding brackets are stripped.
func Extract(template string) []string {
	matches := tokenPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		token := m[1]
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

// Contains returns true if template still carries any bracketed token.
func Contains(template string) bool {
	return tokenPattern.MatchString(template)
}
