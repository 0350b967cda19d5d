package model

// Entities holds everything the entity extractor found, one list per kind
type Entities struct {
	Parties       []Party      `json:"parties"`
	Dates         []DateEntity `json:"dates"`
	Amounts       []Amount     `json:"amounts"`
	Durations     []Duration   `json:"durations"`
	Percentages   []Percentage `json:"percentages"`
	Jurisdictions []string     `json:"jurisdictions"`

	// Populated only when an external recognizer is available
	Organizations []string `json:"organizations,omitempty"`
	Persons       []string `json:"persons,omitempty"`
	Locations     []string `json:"locations,omitempty"`
}

// PartyType is the coarse classification of a contracting party
type PartyType string

const (
	PartyCompany    PartyType = "company"
	PartyIndividual PartyType = "individual_or_unknown"
)

// Party is a named contracting party
type Party struct {
	Name string    `json:"name"`
	Type PartyType `json:"type"`
}

// DateEntity is a date literal; Parsed is nil when no known format matched
type DateEntity struct {
	Raw    string  `json:"raw"`
	Parsed *string `json:"parsed"` // ISO 8601 (YYYY-MM-DD)
}

// Amount is a monetary literal
type Amount struct {
	Raw      string  `json:"raw"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"` // INR, USD, EUR, GBP
}

// DurationUnit is the canonical unit of a duration literal
type DurationUnit string

const (
	UnitDays   DurationUnit = "days"
	UnitWeeks  DurationUnit = "weeks"
	UnitMonths DurationUnit = "months"
	UnitYears  DurationUnit = "years"
)

// Duration is a time-span literal such as "24 months"
type Duration struct {
	Raw   string       `json:"raw"`
	Value int          `json:"value"`
	Unit  DurationUnit `json:"unit"`
}

// Percentage is a percent literal with surrounding text
type Percentage struct {
	Raw     string  `json:"raw"`
	Value   float64 `json:"value"`
	Context string  `json:"context"`
}

// NamedEntities is what an external recognizer contributes
type NamedEntities struct {
	Organizations []string `json:"organizations"`
	Persons       []string `json:"persons"`
	Locations     []string `json:"locations"`
}
