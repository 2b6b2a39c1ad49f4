package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingStatus(t *testing.T) {
	status := NewBookingStatus()

	assert.Equal(t, PNRFailed, status.PNRStatus)
	assert.Equal(t, PaymentUnpaid, status.PaymentStatus)
}

func TestBookingStatus_Transitions(t *testing.T) {
	status := NewBookingStatus()

	status.Confirm()
	assert.Equal(t, PNRConfirmed, status.PNRStatus)
	assert.Equal(t, PaymentUnpaid, status.PaymentStatus, "confirming does not pay")

	status.MarkPaid()
	assert.Equal(t, PNRConfirmed, status.PNRStatus)
	assert.Equal(t, PaymentPaid, status.PaymentStatus)
}

func TestBookingJourney_FirstPNR(t *testing.T) {
	tests := []struct {
		name    string
		recLocs []RecordLocator
		want    string
	}{
		{
			name: "no record locators",
			want: "",
		},
		{
			name:    "single locator",
			recLocs: []RecordLocator{{Type: "GDS", PNR: "ABC123"}},
			want:    "ABC123",
		},
		{
			name: "skips empty locators",
			recLocs: []RecordLocator{
				{Type: "GDS", PNR: ""},
				{Type: "GDS", PNR: "XYZ789"},
			},
			want: "XYZ789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journey := BookingJourney{RecLocInfo: tt.recLocs}
			assert.Equal(t, tt.want, journey.FirstPNR())
		})
	}
}
