package alliance

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthCodes maps the supplier's fixed 3-letter month abbreviations.
var monthCodes = map[string]string{
	"JAN": "01",
	"FEB": "02",
	"MAR": "03",
	"APR": "04",
	"MAY": "05",
	"JUN": "06",
	"JUL": "07",
	"AUG": "08",
	"SEP": "09",
	"OCT": "10",
	"NOV": "11",
	"DEC": "12",
}

// DecodeLegacyDate converts the supplier's DD-MON-YY form to DD/MM/YYYY.
//
// Century inference: a 2-digit year above 50 gets the 19 prefix, except in
// segment context where the year is always 20xx. Segment dates are schedule
// dates and can never be in the past century; birth dates can.
func DecodeLegacyDate(s string, segmentContext bool) (string, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("legacy date %q: want DD-MON-YY", s)
	}

	month, ok := monthCodes[strings.ToUpper(parts[1])]
	if !ok {
		return "", fmt.Errorf("legacy date %q: unknown month %q", s, parts[1])
	}

	yy, err := strconv.Atoi(parts[2])
	if err != nil || len(parts[2]) != 2 {
		return "", fmt.Errorf("legacy date %q: bad 2-digit year %q", s, parts[2])
	}

	century := "20"
	if yy > 50 && !segmentContext {
		century = "19"
	}

	return parts[0] + "/" + month + "/" + century + parts[2], nil
}

// DecodeLegacyTime converts the supplier's 4-digit HHmm form to HH:MM.
// No timezone handling: supplier times are local to the airport.
func DecodeLegacyTime(hhmm string) (string, error) {
	if len(hhmm) < 4 {
		return "", fmt.Errorf("legacy time %q: want HHmm", hhmm)
	}
	return hhmm[0:2] + ":" + hhmm[2:4], nil
}

var (
	durationDays    = regexp.MustCompile(`(\d+)d`)
	durationHours   = regexp.MustCompile(`(\d+)h`)
	durationMinutes = regexp.MustCompile(`(\d+)m`)
)

// DecodeDuration converts the supplier's "NdNhNm" duration form (any subset
// of tokens) into "<totalHours>:<MM>" with days folded into hours. An input
// with no recognizable token yields "": callers treat the empty string as
// unknown duration, not as an error.
func DecodeDuration(s string) string {
	days := durationDays.FindStringSubmatch(s)
	hours := durationHours.FindStringSubmatch(s)
	minutes := durationMinutes.FindStringSubmatch(s)

	if days == nil && hours == nil && minutes == nil {
		return ""
	}

	var d, h, m int
	if days != nil {
		d, _ = strconv.Atoi(days[1])
	}
	if hours != nil {
		h, _ = strconv.Atoi(hours[1])
	}
	if minutes != nil {
		m, _ = strconv.Atoi(minutes[1])
	}

	return fmt.Sprintf("%d:%02d", d*24+h, m)
}

// Canonical and supplier date layouts.
const (
	layoutSearchDate   = "02-01-2006" // inbound sector departureDate
	layoutCanonical    = "02/01/2006" // canonical segment date
	layoutISO          = "2006-01-02" // inbound DOB / passport expiry
	layoutSupplierDate = "20060102"   // supplier flight_date / dep_date
)

// EncodeSearchDate converts an inbound DD-MM-YYYY date to the supplier's
// YYYYMMDD form.
func EncodeSearchDate(d string) (string, error) {
	return reformatDate(d, layoutSearchDate)
}

// EncodeSegmentDate converts a canonical DD/MM/YYYY date to YYYYMMDD.
func EncodeSegmentDate(d string) (string, error) {
	return reformatDate(d, layoutCanonical)
}

// EncodeISODate converts an inbound YYYY-MM-DD date to YYYYMMDD.
func EncodeISODate(d string) (string, error) {
	return reformatDate(d, layoutISO)
}

// DecodeSupplierDate converts the supplier's YYYYMMDD form to canonical
// DD/MM/YYYY.
func DecodeSupplierDate(d string) (string, error) {
	t, err := time.Parse(layoutSupplierDate, d)
	if err != nil {
		return "", fmt.Errorf("supplier date %q: %w", d, err)
	}
	return t.Format(layoutCanonical), nil
}

func reformatDate(d, layout string) (string, error) {
	t, err := time.Parse(layout, d)
	if err != nil {
		return "", fmt.Errorf("date %q: %w", d, err)
	}
	return t.Format(layoutSupplierDate), nil
}
