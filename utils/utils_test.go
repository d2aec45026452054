package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "employeename", NormalizeHeader("Employee_Name"))
	assert.Equal(t, "employeename", NormalizeHeader("  Employee Name "))
	assert.Equal(t, "dateofhire", NormalizeHeader("DateofHire"))
	assert.Equal(t, "", NormalizeHeader("   "))
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"62506", 62506, true},
		{"$62,506.00", 62506, true},
		{" 4.6 ", 4.6, true},
		{"", 0, false},
		{"n/a", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseFloat(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseInt(t *testing.T) {
	v, ok := ParseInt("41")
	assert.True(t, ok)
	assert.Equal(t, 41, v)

	_, ok = ParseInt("forty")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("7/10/1983")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1983, 7, 10, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2011-07-05")
	require.NoError(t, err)
	assert.Equal(t, 2011, d.Year())

	_, err = ParseDate("not a date")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 40, AgeAt(time.Date(1984, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 39, AgeAt(time.Date(1984, 6, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, AgeAt(now.AddDate(1, 0, 0), now))
}

func TestIsDatasetFile(t *testing.T) {
	assert.True(t, IsDatasetFile("HRDataset_v14.csv"))
	assert.True(t, IsDatasetFile("data.XLSX"))
	assert.True(t, IsDatasetFile("old.xls"))
	assert.False(t, IsDatasetFile("notes.txt"))
	assert.False(t, IsDatasetFile("employees"))
}
