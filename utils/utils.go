package utils

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// NormalizeHeader collapses a spreadsheet header for lookup:
// lowercased, trimmed, inner whitespace and underscores removed.
func NormalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, "_", "")
	return h
}

// ParseFloat parses a numeric cell, tolerating currency formatting
// like "$62,506.00".
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ParseInt(s string) (int, bool) {
	v, ok := ParseFloat(s)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// ParseDate tries the date formats the HR exports use.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	formats := []string{"1/2/2006", "01/02/2006", "1/2/06", "2006-01-02", "02.01.2006"}
	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, dateStr)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// AgeAt computes whole years between birth and now.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsExcelFile(filename string) bool {
	ext := GetFileExtension(filename)
	return ext == ".xlsx" || ext == ".xls"
}

func IsCSVFile(filename string) bool {
	return GetFileExtension(filename) == ".csv"
}

// IsDatasetFile accepts the upload formats the dashboard can ingest.
func IsDatasetFile(filename string) bool {
	return IsCSVFile(filename) || IsExcelFile(filename)
}
