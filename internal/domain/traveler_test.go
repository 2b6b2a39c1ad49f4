package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraveler_FullName(t *testing.T) {
	trv := Traveler{FirstName: "John", LastName: "de Silva"}
	assert.Equal(t, "JOHN DE SILVA", trv.FullName())
}

func TestContactDetails_PhoneOrMobile(t *testing.T) {
	tests := []struct {
		name    string
		contact *ContactDetails
		want    string
	}{
		{"nil contact", nil, ""},
		{"phone preferred", &ContactDetails{Phone: "011123", Mobile: "9810001000"}, "011123"},
		{"mobile fallback", &ContactDetails{Mobile: "9810001000"}, "9810001000"},
		{"both empty", &ContactDetails{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contact.PhoneOrMobile())
		})
	}
}

func TestCommonRequest_UserID(t *testing.T) {
	req := CommonRequest{}
	assert.Empty(t, req.UserID())

	req.VendorList = []Vendor{{Credential: Credential{UserID: "agent01"}}}
	assert.Equal(t, "agent01", req.UserID())
}
