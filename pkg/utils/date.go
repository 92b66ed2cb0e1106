package utils

import (
	"fmt"
	"time"
)

const providerDateLayout = "2006-01-02 15:04"

// providerDateLayouts are the formats the shipping provider has been seen
// to return, most specific first.
var providerDateLayouts = []string{
	"2006-01-02 15:04:05",
	providerDateLayout,
	"02 Jan 2006, 03:04 PM",
}

// ProviderLocation is the zone the shipping provider reads and writes
// timestamps in.
func ProviderLocation() *time.Location {
	location, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}

	return location
}

func FormatProviderDate(t time.Time) string {
	return t.In(ProviderLocation()).Format(providerDateLayout)
}

func ParseProviderDate(value string) (time.Time, error) {
	location := ProviderLocation()
	for _, layout := range providerDateLayouts {
		if t, err := time.ParseInLocation(layout, value, location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("error parsing provider date %q", value)
}
