package alliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

func testFareRow() *FareRow {
	return &FareRow{
		FareBasis: "SAVER",
		Adult: FareColumns{
			TotalFare: 1000, BasicFare: 800,
			Insurance: 10, AirportTax: 50, Surcharge: 100,
			TerminalFee: 20, BookingFee: 15, VAT: 5,
		},
		Child: FareColumns{
			TotalFare: 900, BasicFare: 700,
			Insurance: 10, AirportTax: 50, Surcharge: 100,
			TerminalFee: 20, BookingFee: 15, VAT: 5,
		},
		Currency: "INR",
	}
}

func TestPriceBreakup(t *testing.T) {
	counts := []PaxCount{
		{Type: domain.PaxAdult, Count: 2},
		{Type: domain.PaxChild, Count: 1},
		{Type: domain.PaxInfant, Count: 0},
	}

	summary, err := PriceBreakup(testFareRow(), counts)
	require.NoError(t, err)

	require.Len(t, summary.PriceBreakup, 2)

	adult := summary.PriceBreakup[0]
	assert.Equal(t, "ADT", adult.PassengerType)
	assert.Equal(t, 2, adult.NoOfPassenger)
	assert.Equal(t, 800.0, adult.BaseFare)
	assert.Equal(t, 200.0, adult.Tax)
	assert.Len(t, adult.TaxBreakup, 6)
	assert.Equal(t, "SAVER", adult.Key)

	child := summary.PriceBreakup[1]
	assert.Equal(t, "CHD", child.PassengerType)
	assert.Equal(t, 1, child.NoOfPassenger)

	assert.Equal(t, 2300.0, summary.BaseFare)
	assert.Equal(t, 600.0, summary.Taxes)
	assert.Equal(t, 2900.0, summary.TotalPrice)
	assert.Equal(t, summary.BaseFare+summary.Taxes, summary.TotalPrice)
}

func TestPriceBreakup_TaxIsTotalMinusBase(t *testing.T) {
	// The itemized tax columns do not cover the whole spread here; the tax
	// is still the difference between total and basic fare.
	fare := &FareRow{
		FareBasis: "Y1",
		Adult: FareColumns{
			TotalFare: 1000, BasicFare: 600,
			AirportTax: 100, Surcharge: 50,
		},
	}

	summary, err := PriceBreakup(fare, []PaxCount{{Type: domain.PaxAdult, Count: 1}})
	require.NoError(t, err)

	adult := summary.PriceBreakup[0]
	assert.Equal(t, 600.0, adult.BaseFare)
	assert.Equal(t, 400.0, adult.Tax)

	assert.Equal(t, 600.0, summary.BaseFare)
	assert.Equal(t, 400.0, summary.Taxes)
	assert.Equal(t, 1000.0, summary.TotalPrice)
	assert.Equal(t, summary.BaseFare+summary.Taxes, summary.TotalPrice)
}

func TestPriceBreakup_MissingTypePriceIsFatal(t *testing.T) {
	fare := testFareRow()
	counts := []PaxCount{
		{Type: domain.PaxAdult, Count: 1},
		{Type: domain.PaxInfant, Count: 1},
	}

	_, err := PriceBreakup(fare, counts)
	require.Error(t, err)
	assert.True(t, domain.IsAggregationError(err))
}

func TestPaxCountsFromDetail(t *testing.T) {
	counts := PaxCountsFromDetail(domain.PaxDetail{Adults: 2, Children: 1})

	require.Len(t, counts, 3)
	assert.Equal(t, PaxCount{Type: domain.PaxAdult, Count: 2}, counts[0])
	assert.Equal(t, PaxCount{Type: domain.PaxChild, Count: 1}, counts[1])
	assert.Equal(t, PaxCount{Type: domain.PaxInfant, Count: 0}, counts[2])
}

func TestPaxCountsFromBreakup(t *testing.T) {
	rows := []domain.PriceBreakupRow{
		{PassengerType: "ADT", NoOfPassenger: 2},
		{PassengerType: "INF", NoOfPassenger: 1},
	}

	counts := PaxCountsFromBreakup(rows)

	assert.Equal(t, PaxCount{Type: domain.PaxAdult, Count: 2}, counts[0])
	assert.Equal(t, PaxCount{Type: domain.PaxChild, Count: 0}, counts[1])
	assert.Equal(t, PaxCount{Type: domain.PaxInfant, Count: 1}, counts[2])
}

func adultTraveler(first, last string) domain.Traveler {
	return domain.Traveler{Type: domain.PaxAdult, FirstName: first, LastName: last}
}

func TestAggregateDetailPrice(t *testing.T) {
	travelers := []domain.Traveler{adultTraveler("John", "Doe")}
	lines := []PNRFareLine{
		{PassengerName: "JOHN DOE", FareType: "Basic Fare", Amount: 500},
		{PassengerName: "JOHN DOE", FareType: "VAT", Amount: 50},
	}

	summary, err := AggregateDetailPrice(lines, travelers)
	require.NoError(t, err)

	assert.Equal(t, 500.0, summary.BaseFare)
	assert.Equal(t, 50.0, summary.Taxes)
	assert.Equal(t, 550.0, summary.TotalPrice)

	// All three passenger-type rows are always present.
	require.Len(t, summary.PriceBreakup, 3)
	adult := summary.PriceBreakup[0]
	assert.Equal(t, "ADT", adult.PassengerType)
	assert.Equal(t, 1, adult.NoOfPassenger)
	assert.Equal(t, 500.0, adult.BaseFare)
	assert.Equal(t, 50.0, adult.Tax)

	assert.Equal(t, "CHD", summary.PriceBreakup[1].PassengerType)
	assert.Equal(t, 0, summary.PriceBreakup[1].NoOfPassenger)
	assert.Equal(t, "INF", summary.PriceBreakup[2].PassengerType)
}

func TestAggregateDetailPrice_DuplicateTaxDroppedNotSummed(t *testing.T) {
	travelers := []domain.Traveler{adultTraveler("John", "Doe")}
	lines := []PNRFareLine{
		{PassengerName: "JOHN DOE", FareType: "Basic Fare", Amount: 500},
		{PassengerName: "JOHN DOE", FareType: "VAT", Amount: 50},
		{PassengerName: "JOHN DOE", FareType: "VAT", Amount: 50},
	}

	summary, err := AggregateDetailPrice(lines, travelers)
	require.NoError(t, err)

	adult := summary.PriceBreakup[0]
	assert.Equal(t, 50.0, adult.Tax)
	require.Len(t, adult.TaxBreakup, 1)
	assert.Equal(t, "VAT", adult.TaxBreakup[0].TaxType)
	assert.Equal(t, 50.0, adult.TaxBreakup[0].Amount)
}

func TestAggregateDetailPrice_PassengerCountedOncePerDistinctName(t *testing.T) {
	travelers := []domain.Traveler{
		adultTraveler("John", "Doe"),
		adultTraveler("Jane", "Doe"),
	}
	lines := []PNRFareLine{
		{PassengerName: "JOHN DOE", FareType: "Basic Fare", Amount: 500},
		{PassengerName: "JOHN DOE", FareType: "VAT", Amount: 50},
		{PassengerName: "JANE DOE", FareType: "Basic Fare", Amount: 500},
	}

	summary, err := AggregateDetailPrice(lines, travelers)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.PriceBreakup[0].NoOfPassenger)
}

func TestAggregateDetailPrice_UnknownPassengerIsFatal(t *testing.T) {
	travelers := []domain.Traveler{adultTraveler("John", "Doe")}
	lines := []PNRFareLine{
		{PassengerName: "GHOST RIDER", FareType: "Basic Fare", Amount: 500},
	}

	_, err := AggregateDetailPrice(lines, travelers)
	require.Error(t, err)
	assert.True(t, domain.IsAggregationError(err))
	assert.Contains(t, err.Error(), "GHOST RIDER")
}

func TestReconcileTickets(t *testing.T) {
	travelers := []domain.Traveler{
		adultTraveler("John", "Doe"),
		adultTraveler("Jane", "Doe"),
	}
	units := []TicketUnit{
		{PassengerName: "JOHN DOE", TicketNumber: "8847741234567"},
		{PassengerName: "UNKNOWN PAX", TicketNumber: "8847741234568"},
		{PassengerName: "JANE DOE", TicketNumber: ""},
	}

	ReconcileTickets(units, travelers)

	require.Len(t, travelers[0].ETicket, 1)
	assert.Equal(t, "8847741234567", travelers[0].ETicket[0].ETicketNumber)
	assert.Empty(t, travelers[1].ETicket)
}
