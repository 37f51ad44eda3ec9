package types

import "time"

// ViolationStatus is the review state of a flagged application.
// Transitions are driven by user actions only; any status may follow any other.
type ViolationStatus string

const (
	StatusFlagged  ViolationStatus = "Marcada"
	StatusInReview ViolationStatus = "En Revisión"
	StatusResolved ViolationStatus = "Resuelta"
	StatusBanned   ViolationStatus = "Prohibida"
	StatusAppeal   ViolationStatus = "Apelación"
)

// Risk is the severity assigned to a violation.
type Risk string

const (
	RiskCritical Risk = "Crítico"
	RiskHigh     Risk = "Alto"
	RiskMedium   Risk = "Medio"
	RiskLow      Risk = "Bajo"
)

// RiskRank returns a numeric rank for sorting (lower = more severe).
func RiskRank(r Risk) int {
	switch r {
	case RiskCritical:
		return 0
	case RiskHigh:
		return 1
	case RiskMedium:
		return 2
	case RiskLow:
		return 3
	default:
		return 4
	}
}

// ViolationDetails carries the evidence attached to a violation.
type ViolationDetails struct {
	Location    string `json:"location"`
	Snippet     string `json:"snippet"`
	Explanation string `json:"explanation"`
}

// Violation is a recorded policy infraction attributed to an application.
// Year and Month are denormalized from Date for filtering and must stay
// consistent with it.
type Violation struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Policy  string           `json:"policy"`
	Status  ViolationStatus  `json:"status"`
	Risk    Risk             `json:"risk"`
	Date    string           `json:"date"`
	Year    int              `json:"year"`
	Month   string           `json:"month"`
	Area    string           `json:"area"`
	Details ViolationDetails `json:"details"`
}

// Policy is a named rule in the compliance catalog. Immutable reference data.
type Policy struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// monthNames are the Spanish month names used for the denormalized Month field.
var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the capitalized Spanish name for the given month.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}
