package routing

import "github.com/georgeokwiri254/Entered-On-Audit/internal/model"

// SharedMailboxAddress is the single channel-manager integration address that
// several OTAs funnel through. Messages from it are disambiguated by content.
const SharedMailboxAddress = "noreply-reservations@millenniumhotels.com"

// SharedMailboxAttribution is the bookkeeping label recorded for every
// shared-mailbox booking regardless of which OTA it resolves to.
const SharedMailboxAttribution = "*INNLINK2WAY*"

// sharedLabelPrefix marks company labels that belong to the shared-mailbox
// tier (e.g. "T- Agoda", "T- Booking.com").
const sharedLabelPrefix = "T-"

// ManualAttribution is recorded when no provider matches at all.
const ManualAttribution = "MANUAL_ENTRY"

// sharedProfiles are the OTAs behind the shared mailbox, in disambiguation
// priority order. Their dates arrive month-first.
func sharedProfiles() []*model.ProviderProfile {
	return []*model.ProviderProfile{
		{
			Name:            "Agoda",
			Tier:            model.TierSharedMailbox,
			Mode:            model.ModeNetExclusive,
			ExtractorKey:    "agoda",
			Attribution:     SharedMailboxAttribution,
			LabelKeywords:   []string{"agoda"},
			TextKeywords:    []string{"agoda", "t- agoda"},
			MonthFirstDates: true,
		},
		{
			Name:            "Booking.com",
			Tier:            model.TierSharedMailbox,
			Mode:            model.ModeTotalInclusive,
			ExtractorKey:    "innlink",
			Attribution:     SharedMailboxAttribution,
			LabelKeywords:   []string{"booking.com"},
			TextKeywords:    []string{"booking.com", "t- booking.com"},
			MonthFirstDates: true,
		},
		{
			Name:            "Brand.com",
			Tier:            model.TierSharedMailbox,
			Mode:            model.ModeTotalInclusive,
			ExtractorKey:    "innlink",
			Attribution:     SharedMailboxAttribution,
			LabelKeywords:   []string{"brand.com"},
			TextKeywords:    []string{"brand.com", "t- brand.com"},
			MonthFirstDates: true,
		},
		{
			Name:            "Expedia",
			Tier:            model.TierSharedMailbox,
			Mode:            model.ModeNetExclusive,
			ExtractorKey:    "expedia",
			Attribution:     SharedMailboxAttribution,
			LabelKeywords:   []string{"expedia"},
			TextKeywords:    []string{"expedia", "t- expedia"},
			MonthFirstDates: true,
		},
	}
}

// sharedDefaultProfile handles shared-mailbox messages that name no OTA.
// They follow the Brand.com contract.
func sharedDefaultProfile() *model.ProviderProfile {
	return &model.ProviderProfile{
		Name:            "INNLINK Default",
		Tier:            model.TierSharedMailbox,
		Mode:            model.ModeTotalInclusive,
		ExtractorKey:    "innlink",
		Attribution:     SharedMailboxAttribution,
		MonthFirstDates: true,
	}
}

// directProfiles are the travel agencies with their own mailboxes, in scan
// order. Their attribution label is the company label verbatim, so the
// Attribution field stays empty here. All direct agencies report net amounts.
func directProfiles() []*model.ProviderProfile {
	return []*model.ProviderProfile{
		{
			Name:           "Travco",
			Tier:           model.TierDirect,
			Mode:           model.ModeNetExclusive,
			ExtractorKey:   "travco",
			LabelKeywords:  []string{"travco"},
			SenderKeywords: []string{"travco.co.uk"},
			TextKeywords:   []string{"hotel booking confirmation"},
		},
		{
			Name:           "Dubai Link",
			Tier:           model.TierDirect,
			Mode:           model.ModeNetExclusive,
			ExtractorKey:   "dubailink",
			LabelKeywords:  []string{"dubai link"},
			SenderKeywords: []string{"gte.travel"},
			TextKeywords:   []string{"dubai link"},
		},
		{
			Name:           "Nirvana",
			Tier:           model.TierDirect,
			Mode:           model.ModeNetExclusive,
			ExtractorKey:   "nirvana",
			LabelKeywords:  []string{"nirvana"},
			SenderKeywords: []string{"nirvana"},
			TextKeywords:   []string{"booking confirmed"},
		},
		{
			Name:           "Dakkak",
			Tier:           model.TierDirect,
			Mode:           model.ModeNetExclusive,
			ExtractorKey:   "dakkak",
			LabelKeywords:  []string{"dakkak"},
			SenderKeywords: []string{"dakkak"},
			TextKeywords:   []string{"dakkak dmc"},
		},
		{
			Name:           "Duri",
			Tier:           model.TierDirect,
			Mode:           model.ModeNetExclusive,
			ExtractorKey:   "duri",
			LabelKeywords:  []string{"duri"},
			SenderKeywords: []string{"hanmail.net"},
			TextKeywords:   []string{"duri travel"},
		},
		{
			Name:           "AlKhalidiah",
			Tier:           model.TierDirect,
			Mode:           model.ModeNetExclusive,
			ExtractorKey:   "alkhalidiah",
			LabelKeywords:  []string{"alkhalidiah"},
			SenderKeywords: []string{"alkhalidiah.com"},
			TextKeywords:   []string{"al khalidiah"},
		},
		{
			Name:          "Desert Adventures",
			Tier:          model.TierDirect,
			Mode:          model.ModeNetExclusive,
			ExtractorKey:  "generic",
			LabelKeywords: []string{"desert adventures"},
			TextKeywords:  []string{"allocation notification"},
		},
		{
			Name:           "Desert Gate",
			Tier:           model.TierDirect,
			Mode:           model.ModeNetExclusive,
			ExtractorKey:   "generic",
			LabelKeywords:  []string{"desert gate"},
			SenderKeywords: []string{"dgt"},
			TextKeywords:   []string{"booking notification"},
		},
		{
			Name:          "Darina",
			Tier:          model.TierDirect,
			Mode:          model.ModeNetExclusive,
			ExtractorKey:  "generic",
			LabelKeywords: []string{"darina"},
			TextKeywords:  []string{"booking form"},
		},
		{
			Name:          "Ease My Trip",
			Tier:          model.TierDirect,
			Mode:          model.ModeNetExclusive,
			ExtractorKey:  "easemytrip",
			LabelKeywords: []string{"ease my trip"},
			TextKeywords:  []string{"paid booking"},
		},
		{
			Name:          "Almosafer",
			Tier:          model.TierDirect,
			Mode:          model.ModeNetExclusive,
			ExtractorKey:  "generic",
			LabelKeywords: []string{"almosafer"},
			TextKeywords:  []string{"confirmed booking"},
		},
	}
}

// directDefaultProfile handles a non-empty company label that matched no
// known agency. The generic extractor still applies.
func directDefaultProfile() *model.ProviderProfile {
	return &model.ProviderProfile{
		Name:         "Travel Agency",
		Tier:         model.TierDirect,
		Mode:         model.ModeNetExclusive,
		ExtractorKey: "generic",
	}
}

// fallbackProfiles cover airline crew bookings and corporate/group codes,
// checked only when no company label was declared.
func fallbackProfiles() []*model.ProviderProfile {
	return []*model.ProviderProfile{
		{
			Name:          "China Southern Air",
			Tier:          model.TierFallback,
			Mode:          model.ModeNetExclusive,
			ExtractorKey:  "chinasouthern",
			Attribution:   "China Southern Air",
			LabelKeywords: []string{"china southern"},
			TextKeywords:  []string{"china southern", "c- china southern"},
		},
		{
			Name:          "UPS Airlines",
			Tier:          model.TierFallback,
			Mode:          model.ModeNetExclusive,
			ExtractorKey:  "generic",
			Attribution:   "UPS Airlines",
			LabelKeywords: []string{"ups"},
			TextKeywords:  []string{"ups"},
		},
		{
			Name:          "ASL Airlines",
			Tier:          model.TierFallback,
			Mode:          model.ModeNetExclusive,
			ExtractorKey:  "generic",
			Attribution:   "ASL Airlines",
			LabelKeywords: []string{"asl"},
			TextKeywords:  []string{"asl"},
		},
		{
			Name:          "Corporate Rate",
			Tier:          model.TierFallback,
			Mode:          model.ModeNetExclusive,
			ExtractorKey:  "generic",
			Attribution:   "Corporate Rate",
			LabelKeywords: []string{"corporate", "grp"},
			TextKeywords:  []string{"corporate rate", "group rate"},
		},
	}
}

// manualProfile is the total-function guarantee: routing always returns a
// profile, and this one binds no extractor.
func manualProfile() *model.ProviderProfile {
	return &model.ProviderProfile{
		Name:        "Manual Entry",
		Tier:        model.TierManual,
		Attribution: ManualAttribution,
	}
}
