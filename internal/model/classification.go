package model

import (
	"fmt"
	"strings"
)

// ContractType is a predefined contract category
type ContractType string

const (
	ContractEmployment  ContractType = "employment_agreement"
	ContractVendor      ContractType = "vendor_contract"
	ContractLease       ContractType = "lease_agreement"
	ContractPartnership ContractType = "partnership_deed"
	ContractService     ContractType = "service_contract"
	ContractNDA         ContractType = "nda"
	ContractUnknown     ContractType = "unknown"
)

// ContractTypes lists the known categories in classifier order
var ContractTypes = []ContractType{
	ContractEmployment,
	ContractVendor,
	ContractLease,
	ContractPartnership,
	ContractService,
	ContractNDA,
}

// ParseContractType accepts a full type name or its leading word
// ("employment", "lease"). Empty input yields an empty hint.
func ParseContractType(s string) (ContractType, error) {
	s = strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	if s == "" {
		return "", nil
	}
	if s == string(ContractUnknown) {
		return ContractUnknown, nil
	}
	for _, t := range ContractTypes {
		if s == string(t) || strings.HasPrefix(string(t), s+"_") {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown contract type: %q", s)
}

// Classification is the contract classifier output
type Classification struct {
	PrimaryType ContractType               `json:"primary_type"`
	Confidence  float64                    `json:"confidence"`            // winning score / sum of scores, 2 decimals
	AllScores   map[ContractType]TypeScore `json:"all_scores"`
	TitleMatch  ContractType               `json:"title_match,omitempty"` // First type whose title regex matched
	TopKeywords []string                   `json:"top_keywords"`          // Up to 10 matched keywords of the winner
}

// TypeScore is the weighted keyword score for one contract type
type TypeScore struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	KeywordCount    int      `json:"keyword_count"`
}
