package types

// FindingStatus is the severity label the auditor assigns to a single finding.
type FindingStatus string

const (
	FindingCritical FindingStatus = "Crítico"
	FindingHigh     FindingStatus = "Alto"
	FindingMedium   FindingStatus = "Medio"
	FindingInfo     FindingStatus = "Informativo"
)

// FindingRank returns a numeric rank for sorting (lower = more severe).
func FindingRank(s FindingStatus) int {
	switch s {
	case FindingCritical:
		return 0
	case FindingHigh:
		return 1
	case FindingMedium:
		return 2
	case FindingInfo:
		return 3
	default:
		return 4
	}
}

// ScanFinding is one issue reported by an audit pass, scoped to a file.
// Line 0 means the location is unknown. After sanitization Snippet and
// Analysis are never empty.
type ScanFinding struct {
	File     string        `json:"file"`
	Policy   string        `json:"policy"`
	Status   FindingStatus `json:"status"`
	Line     int           `json:"line"`
	Language string        `json:"language"`
	Snippet  string        `json:"snippet"`
	Analysis string        `json:"analysis"`
}

// ScanResult is the full audit response for one scan invocation.
// ArchitectureDetails and DataSecurityDetails are free-form records straight
// from the model; only Findings is held to a strict shape. Never mutated
// after creation.
type ScanResult struct {
	Classification      string           `json:"classification"`
	ArchitectureScore   int              `json:"architectureScore"`
	DataSecurityScore   int              `json:"dataSecurityScore"`
	Description         string           `json:"description"`
	ArchitectureDetails []map[string]any `json:"architectureDetails"`
	DataSecurityDetails []map[string]any `json:"dataSecurityDetails"`
	Findings            []ScanFinding    `json:"findings"`
	AppName             string           `json:"appName,omitempty"`
}

// HighestFinding returns the most severe finding status present, or
// FindingInfo when there are no findings.
func (r *ScanResult) HighestFinding() FindingStatus {
	best := FindingInfo
	for _, f := range r.Findings {
		if FindingRank(f.Status) < FindingRank(best) {
			best = f.Status
		}
	}
	return best
}
