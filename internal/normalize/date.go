package normalize

import (
	"strings"
	"time"
)

const (
	dateMarker = "Date of Publication: "
	dateLayout = "2 January 2006"
)

// PublicationDate strips the marker prefix and parses the remainder as a
// day-month-year date. Unparseable or empty input yields nil rather than an
// error; the publication is stored without a date.
func PublicationDate(raw string) *time.Time {
	s := strings.TrimSpace(strings.TrimPrefix(raw, dateMarker))
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
