package crunchbase

// CompanyDetails is the enrichment payload extracted from an organization
// entity. Zero values mean the provider had nothing for that field.
type CompanyDetails struct {
	Headquarters  string
	FoundedYear   string
	Description   string
	RevenueRange  string
	EmployeeCount string
}

type autocompleteResponse struct {
	Entities []struct {
		Identifier struct {
			Permalink string `json:"permalink"`
		} `json:"identifier"`
	} `json:"entities"`
}

type entityResponse struct {
	Properties struct {
		LocationIdentifiers []struct {
			Value        string `json:"value"`
			LocationType string `json:"location_type"`
		} `json:"location_identifiers"`
		FoundedOn struct {
			Value string `json:"value"`
		} `json:"founded_on"`
		ShortDescription string `json:"short_description"`
		RevenueRange     string `json:"revenue_range"`
		NumEmployeesEnum string `json:"num_employees_enum"`
	} `json:"properties"`
}

func (e *entityResponse) toDetails() *CompanyDetails {
	props := e.Properties

	var city, region string
	for _, loc := range props.LocationIdentifiers {
		switch loc.LocationType {
		case "city":
			if city == "" {
				city = loc.Value
			}
		case "region":
			if region == "" {
				region = loc.Value
			}
		}
	}

	hq := city
	if city != "" && region != "" {
		hq = city + ", " + region
	} else if region != "" {
		hq = region
	}

	foundedYear := ""
	if len(props.FoundedOn.Value) >= 4 {
		foundedYear = props.FoundedOn.Value[:4]
	}

	return &CompanyDetails{
		Headquarters:  hq,
		FoundedYear:   foundedYear,
		Description:   props.ShortDescription,
		RevenueRange:  props.RevenueRange,
		EmployeeCount: props.NumEmployeesEnum,
	}
}
