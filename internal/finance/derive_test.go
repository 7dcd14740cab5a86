package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

func TestTDF(t *testing.T) {
	tests := []struct {
		name   string
		nights int
		room   string
		want   int64
	}{
		{"standard room", 3, "SK", 60},
		{"family suite doubles the rate", 3, "FS", 120},
		{"two bedroom doubles the rate", 5, "2BA", 200},
		{"descriptive two bedroom text", 2, "Two Bedroom Apartment", 160},
		{"plain suite stays standard", 4, "ES", 80},
		{"capped at thirty nights", 45, "SK", 600},
		{"zero nights", 0, "SK", 0},
		{"negative nights clamped", -2, "SK", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, TDF(tt.nights, tt.room).Equal(decimal.NewFromInt(tt.want)))
		})
	}
}

func TestDerive_NetExclusive(t *testing.T) {
	cf := model.CanonicalFields{
		Nights:   model.Known(3),
		RoomCode: model.Known("SK"),
		NetTotal: model.Known(decimal.NewFromInt(900)),
	}

	got := Derive(cf, model.ModeNetExclusive)

	require.True(t, got.TaxTDF.Known)
	assert.Equal(t, "60", got.TaxTDF.Value.String())

	require.True(t, got.Total.Known)
	assert.Equal(t, "960", got.Total.Value.String())

	require.True(t, got.AmountExclTax.Known)
	assert.Equal(t, "734.69", got.AmountExclTax.Value.String())

	require.True(t, got.ADR.Known)
	assert.Equal(t, "244.9", got.ADR.Value.String())
}

func TestDerive_TotalInclusive(t *testing.T) {
	cf := model.CanonicalFields{
		Nights:   model.Known(3),
		RoomCode: model.Known("SK"),
		Total:    model.Known(decimal.NewFromInt(960)),
	}

	got := Derive(cf, model.ModeTotalInclusive)

	require.True(t, got.NetTotal.Known)
	assert.Equal(t, "900", got.NetTotal.Value.String())
	assert.Equal(t, "734.69", got.AmountExclTax.Value.String())
}

func TestDerive_NetExclusiveFourNights(t *testing.T) {
	cf := model.CanonicalFields{
		Nights:   model.Known(4),
		RoomCode: model.Known("SK"),
		NetTotal: model.Known(decimal.NewFromInt(2400)),
	}

	got := Derive(cf, model.ModeNetExclusive)

	assert.Equal(t, "80", got.TaxTDF.Value.String())
	assert.Equal(t, "2480", got.Total.Value.String())
	assert.Equal(t, "1959.18", got.AmountExclTax.Value.String())
	assert.Equal(t, "489.8", got.ADR.Value.String())
}

func TestDerive_TotalInclusiveFourNights(t *testing.T) {
	cf := model.CanonicalFields{
		Nights:   model.Known(4),
		RoomCode: model.Known("SK"),
		Total:    model.Known(decimal.NewFromInt(1800)),
	}

	got := Derive(cf, model.ModeTotalInclusive)

	assert.Equal(t, "80", got.TaxTDF.Value.String())
	assert.Equal(t, "1720", got.NetTotal.Value.String())
	assert.Equal(t, "1404.08", got.AmountExclTax.Value.String())
	assert.Equal(t, "351.02", got.ADR.Value.String())
}

func TestDerive_RoundTrip(t *testing.T) {
	// The same booking reported net-exclusive and total-inclusive must land
	// on identical figures.
	net := Derive(model.CanonicalFields{
		Nights:   model.Known(3),
		RoomCode: model.Known("SK"),
		NetTotal: model.Known(decimal.NewFromInt(900)),
	}, model.ModeNetExclusive)

	gross := Derive(model.CanonicalFields{
		Nights:   model.Known(3),
		RoomCode: model.Known("SK"),
		Total:    model.Known(decimal.NewFromInt(960)),
	}, model.ModeTotalInclusive)

	assert.True(t, net.NetTotal.Value.Equal(gross.NetTotal.Value))
	assert.True(t, net.Total.Value.Equal(gross.Total.Value))
	assert.True(t, net.TaxTDF.Value.Equal(gross.TaxTDF.Value))
}

func TestDerive_UnknownPropagation(t *testing.T) {
	// No nights means nothing can be derived.
	got := Derive(model.CanonicalFields{
		NetTotal: model.Known(decimal.NewFromInt(500)),
	}, model.ModeNetExclusive)
	assert.False(t, got.TaxTDF.Known)
	assert.False(t, got.Total.Known)
	assert.False(t, got.ADR.Known)

	// Nights without an amount derives the fee but no totals.
	got = Derive(model.CanonicalFields{
		Nights:   model.Known(2),
		RoomCode: model.Known("DK"),
	}, model.ModeNetExclusive)
	require.True(t, got.TaxTDF.Known)
	assert.Equal(t, "40", got.TaxTDF.Value.String())
	assert.False(t, got.NetTotal.Known)
	assert.False(t, got.AmountExclTax.Known)
}

func TestDerive_ZeroNightsNoADR(t *testing.T) {
	got := Derive(model.CanonicalFields{
		Nights:   model.Known(0),
		NetTotal: model.Known(decimal.NewFromInt(100)),
	}, model.ModeNetExclusive)

	require.True(t, got.AmountExclTax.Known)
	assert.False(t, got.ADR.Known)
}
