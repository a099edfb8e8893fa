package models

// Severity is the four-level alert severity scale.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityExtreme  Severity = "extreme"
)

// Severities lists all valid severity levels.
var Severities = []Severity{SeverityMinor, SeverityModerate, SeveritySevere, SeverityExtreme}

// Valid reports whether s is one of the enumerated severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeveritySevere, SeverityExtreme:
		return true
	}
	return false
}

// Alert is a weather warning attached to a snapshot. At most one alert is
// generated per snapshot. StartsAt and EndsAt are RFC3339 timestamps.
type Alert struct {
	ID          string   `json:"id" example:"1"`
	LocationID  string   `json:"locationId"`
	Type        string   `json:"type" example:"Thunderstorm"`
	Severity    Severity `json:"severity" example:"moderate"`
	Title       string   `json:"title" example:"Severe Weather Warning"`
	Description string   `json:"description"`
	StartsAt    string   `json:"startsAt"`
	EndsAt      string   `json:"endsAt"`
}
