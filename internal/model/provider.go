package model

// FinancialMode describes whether a source's reported figure already
// includes the TDF tax component.
type FinancialMode string

// Financial mode constants.
const (
	// ModeNetExclusive: the extracted amount is the net total; the gross
	// total is derived by adding TDF.
	ModeNetExclusive FinancialMode = "net_exclusive"
	// ModeTotalInclusive: the extracted amount is the gross total; the net
	// total is derived by subtracting TDF.
	ModeTotalInclusive FinancialMode = "total_inclusive"
)

// ProviderTier groups providers by how their messages arrive.
type ProviderTier string

// Provider tier constants.
const (
	// TierSharedMailbox covers OTAs funneled through the single channel
	// integration address, disambiguated by message content.
	TierSharedMailbox ProviderTier = "shared_mailbox"
	// TierDirect covers travel agencies with their own sender addresses.
	TierDirect ProviderTier = "direct"
	// TierFallback covers airline crew and corporate/group categories.
	TierFallback ProviderTier = "fallback"
	// TierManual is the default profile when nothing matches.
	TierManual ProviderTier = "manual"
)

// ProviderProfile statically describes one booking source: its match
// predicates, extraction contract, and financial mode. Profiles are built
// once at process start and never mutated.
type ProviderProfile struct {
	Name string
	Tier ProviderTier
	Mode FinancialMode

	// ExtractorKey selects the source extractor from the registry.
	// Empty means no extractor is bound (manual entry).
	ExtractorKey string

	// Attribution is the bookkeeping label recorded for this source. For
	// direct-tier providers the routing decision carries the company label
	// verbatim instead.
	Attribution string

	// Match predicates, evaluated in routing precedence order.
	LabelKeywords  []string
	SenderKeywords []string
	TextKeywords   []string

	// MonthFirstDates marks sources whose dates arrive mm/dd/yyyy.
	MonthFirstDates bool
}

// HasExtractor reports whether a source extractor is bound to the profile.
func (p *ProviderProfile) HasExtractor() bool {
	return p.ExtractorKey != ""
}
