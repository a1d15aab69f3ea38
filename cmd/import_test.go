package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRosterFlags(t *testing.T) {
	tests := []struct {
		name    string
		divName string
		ref     string
		wantErr bool
	}{
		{"NameGiven", "Tuesday 8-Ball", "", false},
		{"RefWithoutName", "", "div_tuesday", false},
		{"NeitherGiven", "", "", true},
		{"BlankName", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRosterFlags(tt.divName, tt.ref)
			if tt.wantErr {
				assert.ErrorContains(t, err, "--division-name is required")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestImportRosterCmd_RejectsMissingDivisionName(t *testing.T) {
	divisionName, divisionRef = "", ""
	t.Cleanup(func() { divisionName, divisionRef = "", "" })

	err := importRosterCmd.PreRunE(importRosterCmd, nil)
	assert.ErrorContains(t, err, "--division-name is required unless --division-ref is set")

	divisionRef = "div_tuesday"
	assert.NoError(t, importRosterCmd.PreRunE(importRosterCmd, nil))
}
