package domain

import "strings"

// PaxType is a canonical passenger type code.
type PaxType string

// Canonical passenger types. The type determines the positional field prefix
// used when encoding booking requests (a_, c_, i_).
const (
	PaxAdult  PaxType = "ADT"
	PaxChild  PaxType = "CHD"
	PaxInfant PaxType = "INF"
)

// Traveler is one passenger on a booking or imported PNR.
//
// When decoded from a PNR import, ContactDetails.Phone and
// PassportDetails.Number may hold the same wire value: the supplier reuses one
// positional field for both and provides no discriminator. Both
// interpretations are exposed; callers decide which to trust.
type Traveler struct {
	TravellerID string  `json:"travellerId"`
	Type        PaxType `json:"type"`
	Title       string  `json:"title"`
	FirstName   string  `json:"firstName"`
	MiddleName  string  `json:"middleName,omitempty"`
	LastName    string  `json:"lastName"`

	// DOB is in YYYY-MM-DD on inbound requests and DD/MM/YYYY when decoded
	// from the supplier's legacy date representation.
	DOB    string `json:"dob"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`

	Nationality string `json:"nationality,omitempty"`

	PassportDetails *PassportDetails `json:"passportDetails"`
	ContactDetails  *ContactDetails  `json:"contactDetails"`

	ETicket []ETicket `json:"eTicket"`
}

// FullName returns the normalized "FIRST LAST" form used to match fare rows
// and ticket units to travelers.
func (t *Traveler) FullName() string {
	return strings.ToUpper(t.FirstName + " " + t.LastName)
}

// PassportDetails identifies a travel document.
type PassportDetails struct {
	Number         string `json:"number"`
	IssuingCountry string `json:"issuingCountry"`
	ExpiryDate     string `json:"expiryDate"`
}

// ContactDetails carries traveler contact information.
type ContactDetails struct {
	Address1   string `json:"address1,omitempty"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Mobile     string `json:"mobile,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	ISDCode    string `json:"isdCode,omitempty"`
}

// PhoneOrMobile returns the preferred contact number: phone, falling back to
// mobile.
func (c *ContactDetails) PhoneOrMobile() string {
	if c == nil {
		return ""
	}
	if c.Phone != "" {
		return c.Phone
	}
	return c.Mobile
}

// ETicket is one issued electronic ticket number.
type ETicket struct {
	ETicketNumber string `json:"eTicketNumber"`
}
