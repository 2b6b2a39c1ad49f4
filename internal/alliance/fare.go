package alliance

import (
	"strings"

	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

// basicFareLabel is the detail-price component label that feeds the base
// fare; every other label is a tax component.
const basicFareLabel = "Basic Fare"

// PaxCount couples a passenger type with a requested count.
type PaxCount struct {
	Type  domain.PaxType
	Count int
}

// PaxCountsFromDetail converts search passenger counts.
func PaxCountsFromDetail(p domain.PaxDetail) []PaxCount {
	return []PaxCount{
		{Type: domain.PaxAdult, Count: p.Adults},
		{Type: domain.PaxChild, Count: p.Children},
		{Type: domain.PaxInfant, Count: p.Infants},
	}
}

// PaxCountsFromBreakup recovers passenger counts from an itinerary's earlier
// price breakup.
func PaxCountsFromBreakup(rows []domain.PriceBreakupRow) []PaxCount {
	counts := map[domain.PaxType]int{}
	for _, row := range rows {
		counts[domain.PaxType(row.PassengerType)] += row.NoOfPassenger
	}
	return []PaxCount{
		{Type: domain.PaxAdult, Count: counts[domain.PaxAdult]},
		{Type: domain.PaxChild, Count: counts[domain.PaxChild]},
		{Type: domain.PaxInfant, Count: counts[domain.PaxInfant]},
	}
}

// PriceBreakup computes the per-passenger-type price decomposition for one
// fare row. A requested type whose fare columns carry no price means the row
// cannot serve this passenger mix.
func PriceBreakup(fare *FareRow, counts []PaxCount) (*domain.FareSummary, error) {
	summary := &domain.FareSummary{}

	for _, pc := range counts {
		if pc.Count <= 0 {
			continue
		}
		cols := fare.Columns(pc.Type)
		if cols.TotalFare == 0 || cols.BasicFare == 0 {
			return nil, domain.NewAggregationError(string(pc.Type),
				"fare "+fare.FareBasis+" has no price for this passenger type")
		}

		// Tax is the spread between total and basic fare. The itemized tax
		// columns feed the breakup list but do not always account for the
		// whole spread.
		tax := cols.TotalFare - cols.BasicFare
		summary.PriceBreakup = append(summary.PriceBreakup, domain.PriceBreakupRow{
			PassengerType: string(pc.Type),
			NoOfPassenger: pc.Count,
			BaseFare:      cols.BasicFare,
			Tax:           tax,
			TaxBreakup:    cols.TaxLines(),
			AirPenalty:    []domain.AirPenalty{},
			Key:           fare.FareBasis,
		})

		n := float64(pc.Count)
		summary.BaseFare += cols.BasicFare * n
		summary.Taxes += tax * n
		summary.TotalPrice += cols.TotalFare * n
	}

	return summary, nil
}

// AggregateDetailPrice folds a PNR's per-passenger detail-price lines into a
// fare summary.
//
// Passenger counting is by distinct normalized name, so a passenger with
// several fare lines counts once. A tax type repeated for the same passenger
// type is dropped, first occurrence wins; the supplier emits duplicate tax
// lines for multi-sector bookings and they must not be double-counted. A
// fare line naming a passenger absent from the traveler list is fatal.
func AggregateDetailPrice(lines []PNRFareLine, travelers []domain.Traveler) (*domain.FareSummary, error) {
	typeByName := make(map[string]domain.PaxType, len(travelers))
	for i := range travelers {
		typeByName[travelers[i].FullName()] = travelers[i].Type
	}

	order := []domain.PaxType{domain.PaxAdult, domain.PaxChild, domain.PaxInfant}
	rows := map[domain.PaxType]*domain.PriceBreakupRow{}
	for _, t := range order {
		rows[t] = &domain.PriceBreakupRow{
			PassengerType: string(t),
			TaxBreakup:    []domain.TaxBreakup{},
			AirPenalty:    []domain.AirPenalty{},
		}
	}

	summary := &domain.FareSummary{}
	counted := map[string]bool{}
	seenTax := map[domain.PaxType]map[string]bool{}

	for _, line := range lines {
		name := strings.ToUpper(strings.TrimSpace(line.PassengerName))
		typ, ok := typeByName[name]
		if !ok {
			return nil, domain.NewAggregationError(name, "no matching traveler on the booking")
		}
		row := rows[typ]

		if !counted[name] {
			counted[name] = true
			row.NoOfPassenger++
		}

		summary.TotalPrice += line.Amount

		if line.FareType == basicFareLabel {
			summary.BaseFare += line.Amount
			row.BaseFare = line.Amount
			continue
		}

		summary.Taxes += line.Amount
		if seenTax[typ] == nil {
			seenTax[typ] = map[string]bool{}
		}
		if seenTax[typ][line.FareType] {
			continue
		}
		seenTax[typ][line.FareType] = true
		row.Tax += line.Amount
		row.TaxBreakup = append(row.TaxBreakup, domain.TaxBreakup{
			TaxType: line.FareType,
			Amount:  line.Amount,
		})
	}

	for _, t := range order {
		summary.PriceBreakup = append(summary.PriceBreakup, *rows[t])
	}
	return summary, nil
}

// ReconcileTickets attaches issued ticket numbers to travelers by normalized
// full name. Units naming no known traveler are ignored.
func ReconcileTickets(units []TicketUnit, travelers []domain.Traveler) {
	byName := make(map[string]*domain.Traveler, len(travelers))
	for i := range travelers {
		byName[travelers[i].FullName()] = &travelers[i]
	}
	for _, u := range units {
		name := strings.ToUpper(strings.TrimSpace(u.PassengerName))
		trv, ok := byName[name]
		if !ok || u.TicketNumber == "" {
			continue
		}
		trv.ETicket = append(trv.ETicket, domain.ETicket{ETicketNumber: u.TicketNumber})
	}
}
