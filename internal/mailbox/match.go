package mailbox

import (
	"strings"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// MatchesGuest reports whether a message plausibly concerns the named
// guest: any significant name token appearing in the message text counts.
// Short tokens like initials and particles are skipped; when the name has
// none, the first name alone is tried. Extraction and reconciliation weed
// out false candidates afterwards.
func MatchesGuest(msg model.Message, firstName, fullName string) bool {
	text := strings.ToLower(msg.Sender + "\n" + msg.Text())

	tokens := nameTokens(firstName + " " + fullName)
	if len(tokens) == 0 {
		first := strings.ToLower(strings.TrimSpace(firstName))
		return first != "" && strings.Contains(text, first)
	}

	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

func nameTokens(name string) []string {
	var tokens []string
	seen := make(map[string]bool)
	for _, f := range strings.Fields(strings.ToLower(name)) {
		f = strings.Trim(f, ".,")
		if len(f) <= 2 || seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}
