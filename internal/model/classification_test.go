package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContractType(t *testing.T) {
	tests := map[string]ContractType{
		"":                     "",
		"employment":           ContractEmployment,
		"Employment Agreement": ContractEmployment,
		"lease-agreement":      ContractLease,
		"nda":                  ContractNDA,
		"partnership":          ContractPartnership,
		"unknown":              ContractUnknown,
	}
	for in, want := range tests {
		got, err := ParseContractType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseContractType("franchise")
	assert.ErrorContains(t, err, "unknown contract type")
}
