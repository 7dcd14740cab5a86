// Package extract turns raw confirmation-message text into canonical
// reservation fields. Every extractor is a total function: a pattern it
// cannot find leaves the attribute unknown, and no input makes it fail.
package extract

import "github.com/georgeokwiri254/Entered-On-Audit/internal/model"

// Extractor is the contract every source extractor satisfies.
type Extractor interface {
	// Extract pulls canonical fields out of message text. It never fails;
	// attributes it cannot find stay unknown.
	Extract(text, sender string) model.CanonicalFields
}

// Registry maps provider extractor keys to extractor constructors. It is
// built once at startup and read-only afterward.
type Registry struct {
	factories map[string]func(*model.ProviderProfile) Extractor
}

// NewRegistry builds the default registry covering every provider profile.
func NewRegistry() *Registry {
	static := func(e Extractor) func(*model.ProviderProfile) Extractor {
		return func(*model.ProviderProfile) Extractor { return e }
	}

	// The shared-mailbox layout is one contract; the profile decides how
	// its ambiguous dates are read and whether its figure is gross or net.
	channel := func(p *model.ProviderProfile) Extractor {
		order := DayFirst
		if p.MonthFirstDates {
			order = MonthFirst
		}
		return &InnlinkExtractor{
			ReportsGrossTotal: p.Mode == model.ModeTotalInclusive,
			Dates:             order,
		}
	}

	return &Registry{
		factories: map[string]func(*model.ProviderProfile) Extractor{
			// Shared-mailbox tier.
			"innlink": channel,
			"agoda":   channel,
			"expedia": channel,

			// Direct-tier agencies.
			"travco":      static(&TravcoExtractor{}),
			"dubailink":   static(&DubaiLinkExtractor{}),
			"nirvana":     static(&NirvanaExtractor{}),
			"dakkak":      static(&DakkakExtractor{}),
			"duri":        static(&DuriExtractor{}),
			"alkhalidiah": static(&AlKhalidiahExtractor{}),
			"easemytrip":  static(&EaseMyTripExtractor{}),

			// Fallback categories.
			"chinasouthern": static(&ChinaSouthernExtractor{}),
			"generic":       static(&GenericExtractor{}),
		},
	}
}

// Lookup returns the extractor configured for a profile, or nil when the
// profile binds no extractor (manual entry) or the key is unregistered.
func (r *Registry) Lookup(p *model.ProviderProfile) Extractor {
	if p == nil || p.ExtractorKey == "" {
		return nil
	}
	factory := r.factories[p.ExtractorKey]
	if factory == nil {
		return nil
	}
	return factory(p)
}

// Keys returns all registered extractor keys.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	return keys
}
