package extract

import "strings"

// roomRule maps descriptive keywords to a room code. Rules are evaluated in
// order; every keyword in a rule must appear in the description.
type roomRule struct {
	code     string
	keywords []string
}

// roomRules is the property's room vocabulary, ordered so that bed-type
// pairs win over the broader category words they contain.
var roomRules = []roomRule{
	{"SK", []string{"superior", "king"}},
	{"ST", []string{"superior", "twin"}},
	{"DK", []string{"deluxe", "king"}},
	{"DT", []string{"deluxe", "twin"}},
	{"CK", []string{"club", "king"}},
	{"CT", []string{"club", "twin"}},
	{"SA", []string{"studio"}},
	{"1BA", []string{"one bedroom"}},
	{"1BA", []string{"1 bedroom"}},
	{"BS", []string{"business suite"}},
	{"ES", []string{"executive suite"}},
	{"FS", []string{"family suite"}},
	{"2BA", []string{"two bedroom"}},
	{"2BA", []string{"two-bedroom"}},
	{"2BA", []string{"2 bedroom"}},
	{"PRES", []string{"presidential suite"}},
	{"RS", []string{"royal suite"}},
}

// ClassifyRoom maps a free-text room description to the fixed room-code
// vocabulary. When no rule matches, the raw text is uppercased, stripped of
// spaces and truncated, so a room code is never left unknown when any room
// text was found. Empty input returns empty.
func ClassifyRoom(description string) string {
	text := strings.TrimSpace(description)
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	for _, rule := range roomRules {
		matched := true
		for _, kw := range rule.keywords {
			if !strings.Contains(lower, kw) {
				matched = false
				break
			}
		}
		if matched {
			return rule.code
		}
	}

	fallback := strings.ReplaceAll(strings.ToUpper(text), " ", "")
	if len(fallback) > 4 {
		fallback = fallback[:4]
	}
	return fallback
}

// HighTDFRoom reports whether a room code denotes a multi-bedroom apartment
// or family/two-bedroom category, which carries the higher per-night tax
// rate. Resolved against the room-category table: plain suites do not
// qualify.
func HighTDFRoom(room string) bool {
	switch strings.ToUpper(strings.TrimSpace(room)) {
	case "2BA", "FS":
		return true
	}
	lower := strings.ToLower(room)
	return strings.Contains(lower, "two bedroom") ||
		strings.Contains(lower, "two-bedroom") ||
		strings.Contains(lower, "family suite")
}
