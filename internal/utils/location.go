package utils

import "strings"

// Headquarters strings come from scrapers and providers in "City",
// "City, Region" or "City, State, Country" shapes. ParseLocation splits them
// into city / state-region / country so the dashboard can filter by geography.

var usStates = stringSet(
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
	"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
	"Wisconsin", "Wyoming", "District of Columbia",
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL", "IN",
	"IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV",
	"NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN",
	"TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY", "DC",
)

var canadianProvinces = stringSet(
	"Alberta", "British Columbia", "Manitoba", "New Brunswick", "Newfoundland and Labrador",
	"Northwest Territories", "Nova Scotia", "Nunavut", "Ontario", "Prince Edward Island",
	"Quebec", "Saskatchewan", "Yukon",
	"AB", "BC", "MB", "NB", "NL", "NT", "NS", "NU", "ON", "PE", "QC", "SK", "YT",
)

var ukNames = stringSet("England", "Scotland", "Wales", "Northern Ireland", "United Kingdom", "UK")

func ParseLocation(headquarters string) (city, stateRegion, country string) {
	if strings.TrimSpace(headquarters) == "" {
		return "", "", ""
	}

	parts := strings.Split(headquarters, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch {
	case len(parts) == 1:
		// Just a city (or a bare country, indistinguishable at this point)
		return parts[0], "", ""

	case len(parts) == 2:
		city, region := parts[0], parts[1]
		switch {
		case usStates[region]:
			return city, region, "United States"
		case canadianProvinces[region]:
			return city, region, "Canada"
		case ukNames[region]:
			return city, region, "United Kingdom"
		default:
			return city, "", region
		}

	default:
		city, region, last := parts[0], parts[1], parts[len(parts)-1]
		switch {
		case usStates[region]:
			return city, region, "United States"
		case canadianProvinces[region]:
			return city, region, "Canada"
		case ukNames[last]:
			return city, region, "United Kingdom"
		default:
			return city, region, last
		}
	}
}

func stringSet(values ...string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
