package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// Reservation returns a typical export row. Override fields in the test as
// needed.
func Reservation() model.ReservationRecord {
	return model.ReservationRecord{
		FirstName:    "Ahmed",
		FullName:     "Hassan",
		Arrival:      "15/03/2026",
		Departure:    "18/03/2026",
		Nights:       model.Known(3),
		Persons:      model.Known(2),
		RoomCode:     "SK",
		RateCode:     "BAR",
		CompanyLabel: "T- Booking.com",
		NetTotal:     model.Known(decimal.NewFromInt(900)),
		TaxTDF:       model.Known(decimal.NewFromInt(60)),
		Total:        model.Known(decimal.NewFromInt(960)),
	}
}

// ConfirmationMessage returns a channel-manager confirmation that agrees
// with the Reservation fixture.
func ConfirmationMessage() model.Message {
	return model.Message{
		Sender:   "noreply-reservations@millenniumhotels.com",
		Subject:  "Reservation Confirmation - Ahmed Hassan",
		Received: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		Folder:   "Inbox",
		Body: "Guest Name: Ahmed Hassan\n" +
			"Address: 12 Marina Walk\n" +
			"Arrive: 03/15/2026\n" +
			"Depart: 03/18/2026\n" +
			"Total Nights 3 nights\n" +
			"Adult/Children: 2/0\n" +
			"Room Type: Superior King Room\n" +
			"Rate Code: BARBB\n" +
			"Travel Agent\nName: Booking.com\n" +
			"Total charges: AED 960.00\n",
	}
}
