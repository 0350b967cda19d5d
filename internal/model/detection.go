package model

// DetectorName identifies one of the fixed clause detectors
type DetectorName string

const (
	DetectorPenalty         DetectorName = "penalty_clauses"
	DetectorIndemnity       DetectorName = "indemnity_clauses"
	DetectorTermination     DetectorName = "termination_clauses"
	DetectorArbitration     DetectorName = "arbitration_clauses"
	DetectorAutoRenewal     DetectorName = "auto_renewal_clauses"
	DetectorNonCompete      DetectorName = "non_compete_clauses"
	DetectorIPTransfer      DetectorName = "ip_transfer_clauses"
	DetectorConfidentiality DetectorName = "confidentiality_clauses"
	DetectorLiabilityCaps   DetectorName = "liability_caps"
)

// DetectorOrder is the fixed order detectors run and report in
var DetectorOrder = []DetectorName{
	DetectorPenalty,
	DetectorIndemnity,
	DetectorTermination,
	DetectorArbitration,
	DetectorAutoRenewal,
	DetectorNonCompete,
	DetectorIPTransfer,
	DetectorConfidentiality,
	DetectorLiabilityCaps,
}

// DetectionResult is the output of a single clause detector
type DetectionResult struct {
	Detector       DetectorName `json:"detector"`
	Found          bool         `json:"found"`
	Count          int          `json:"count"`
	Findings       []Finding    `json:"findings"`
	Recommendation string       `json:"recommendation,omitempty"` // Empty when nothing was found (liability caps excepted)

	HasBroadIndemnity bool                  `json:"has_broad_indemnity,omitempty"`
	HasFullTransfer   bool                  `json:"has_full_transfer,omitempty"`
	HasCap            bool                  `json:"has_cap,omitempty"`
	Termination       *TerminationBreakdown `json:"termination,omitempty"`
}

// HasHighRisk reports whether any finding carries high severity
func (d DetectionResult) HasHighRisk() bool {
	for _, f := range d.Findings {
		if f.Severity == SeverityHigh {
			return true
		}
	}
	return false
}

// TerminationBreakdown splits termination findings by kind
type TerminationBreakdown struct {
	Unilateral    []Finding `json:"unilateral"`
	Mutual        []Finding `json:"mutual"`
	ForCause      []Finding `json:"for_cause"`
	HasUnilateral bool      `json:"has_unilateral"`
	IsBalanced    bool      `json:"is_balanced"`
}

// Detections is the full set of detector outputs in DetectorOrder
type Detections []DetectionResult

// Get returns the result for a detector, or a zero result when absent
func (d Detections) Get(name DetectorName) DetectionResult {
	for _, r := range d {
		if r.Detector == name {
			return r
		}
	}
	return DetectionResult{Detector: name}
}

// FoundCount returns how many detectors found at least one instance
func (d Detections) FoundCount() int {
	n := 0
	for _, r := range d {
		if r.Found {
			n++
		}
	}
	return n
}

// HighRiskCount returns how many detectors carry at least one high-severity finding
func (d Detections) HighRiskCount() int {
	n := 0
	for _, r := range d {
		if r.HasHighRisk() {
			n++
		}
	}
	return n
}
