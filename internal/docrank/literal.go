// File path: internal/docrank/literal.go
package docrank

import (
	"regexp"
	"strings"
)

// literalPattern pulls quoted phrases and filename-shaped tokens (a run of
// non-space characters containing a dot) out of free text.
var literalPattern = regexp.MustCompile(`["']([^"']+)["']|(\S+\.\w+)`)

// ExtractLiterals returns the lowercased filename candidates in the query:
// quoted phrases with the quotes stripped, and dotted tokens as-is. Order
// follows appearance in the query.
func ExtractLiterals(query string) []string {
	raw := literalPattern.FindAllString(strings.ToLower(query), -1)
	if len(raw) == 0 {
		return nil
	}
	literals := make([]string, 0, len(raw))
	for _, token := range raw {
		cleaned := strings.Trim(token, `"'`)
		if cleaned == "" {
			continue
		}
		literals = append(literals, cleaned)
	}
	return literals
}

var extensionPattern = regexp.MustCompile(`\.\w+$`)

// stripExtension removes a trailing ".ext" suffix from a filename.
func stripExtension(name string) string {
	return extensionPattern.ReplaceAllString(name, "")
}
