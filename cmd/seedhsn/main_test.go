package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmadist/internal/domain"
)

func hsnRow(code4, desc4, code6, desc6, code8, desc8, rate string) []string {
	row := make([]string, 14)
	row[5], row[7] = code4, desc4
	row[8], row[9] = code6, desc6
	row[10], row[12] = code8, desc8
	row[13] = rate
	return row
}

func TestParseHSNRows(t *testing.T) {
	rows := make([][]string, firstDataRow)
	rows = append(rows,
		hsnRow("3004", "Medicaments", "300490", "Other", "30049099", "Other medicaments", "12%"),
		hsnRow("3004", "Medicaments (dup)", "", "", "30041010", "Penicillins", "12%"),
		hsnRow("9021", "Orthopaedic appliances", "", "", "90211000", "Orthopaedic", "5%"),
		hsnRow("0401", "Milk", "", "", "04011000", "Milk fat", "0%"),
		hsnRow("3006", "Pharmaceutical goods", "", "", "30066000", "Contraceptives", "n/a"),
		[]string{"short", "row"},
	)

	entries := parseHSNRows(rows, []string{"30", " 90 "})
	require.Len(t, entries, 6)

	codes := make(map[string]domain.HSNMaster, len(entries))
	for _, e := range entries {
		codes[e.HSNCode] = e
	}
	assert.Contains(t, codes, "30049099")
	assert.Contains(t, codes, "300490")
	assert.Equal(t, "Medicaments", codes["3004"].Description)
	assert.Equal(t, "12", codes["30041010"].GSTRate.String())
	assert.Equal(t, domain.HSNCategoryMedicalDevice, codes["90211000"].Category)
	assert.Equal(t, domain.HSNCategoryPharma, codes["30049099"].Category)
	assert.NotContains(t, codes, "04011000")
	assert.NotContains(t, codes, "30066000")
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12%", "12", true},
		{" 5 % ", "5", true},
		{"0.18", "18", true},
		{"Exempt", "0", true},
		{"12%-18%", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseRate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}
