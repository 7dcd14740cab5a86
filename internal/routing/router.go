// Package routing selects which provider profile governs a confirmation
// message, given the declared company label, the sender address, and the
// message text. Predicates run in a fixed priority order; first match wins.
package routing

import (
	"strings"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// Decision is the outcome of routing one message. Attribution carries the
// bookkeeping label: the profile's own label for shared-mailbox and fallback
// providers, the verbatim company label for direct-tier agencies.
type Decision struct {
	Profile     *model.ProviderProfile
	Attribution string
}

// Router holds the immutable provider table. Build it once at startup; it is
// safe for concurrent use.
type Router struct {
	shared        []*model.ProviderProfile
	sharedDefault *model.ProviderProfile
	direct        []*model.ProviderProfile
	directDefault *model.ProviderProfile
	fallback      []*model.ProviderProfile
	manual        *model.ProviderProfile
}

// NewRouter builds a router over the default provider table.
func NewRouter() *Router {
	return &Router{
		shared:        sharedProfiles(),
		sharedDefault: sharedDefaultProfile(),
		direct:        directProfiles(),
		directDefault: directDefaultProfile(),
		fallback:      fallbackProfiles(),
		manual:        manualProfile(),
	}
}

// Profiles returns the full provider table in precedence order.
func (r *Router) Profiles() []*model.ProviderProfile {
	var all []*model.ProviderProfile
	all = append(all, r.shared...)
	all = append(all, r.sharedDefault)
	all = append(all, r.direct...)
	all = append(all, r.directDefault)
	all = append(all, r.fallback...)
	all = append(all, r.manual)
	return all
}

// Route identifies the provider for a message. It is pure and total: it
// always returns a decision, falling back to the manual-entry profile when
// nothing matches, and never fails.
func (r *Router) Route(companyLabel, senderAddress, messageText string) Decision {
	label := strings.TrimSpace(companyLabel)
	labelLower := strings.ToLower(label)
	sender := strings.ToLower(senderAddress)
	text := strings.ToLower(messageText)

	// 1. Shared-mailbox tier: the label marker or the integration address
	// itself. Disambiguate by content, default to the mailbox profile.
	if strings.HasPrefix(label, sharedLabelPrefix) || strings.Contains(sender, SharedMailboxAddress) {
		for _, p := range r.shared {
			if matchesAny(labelLower, p.LabelKeywords) || matchesAny(text, p.TextKeywords) {
				return Decision{Profile: p, Attribution: p.Attribution}
			}
		}
		return Decision{Profile: r.sharedDefault, Attribution: r.sharedDefault.Attribution}
	}

	// 2. Direct tier: a declared company label attributes the booking to
	// that agency verbatim, even when no specific profile matches.
	if label != "" {
		for _, p := range r.direct {
			if matchesAny(labelLower, p.LabelKeywords) ||
				matchesAny(sender, p.SenderKeywords) ||
				matchesAny(text, p.TextKeywords) {
				return Decision{Profile: p, Attribution: label}
			}
		}
		return Decision{Profile: r.directDefault, Attribution: label}
	}

	// 3. Fallback categories: airline crew and corporate/group bookings.
	for _, p := range r.fallback {
		if matchesAny(labelLower, p.LabelKeywords) || matchesAny(text, p.TextKeywords) {
			return Decision{Profile: p, Attribution: p.Attribution}
		}
	}

	// 4. Nothing matched: manual entry, no extractor bound.
	return Decision{Profile: r.manual, Attribution: r.manual.Attribution}
}

func matchesAny(haystack string, keywords []string) bool {
	if haystack == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
