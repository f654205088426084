package utils

import (
	"strings"
	"time"
)

// Indonesian day names, Monday first.
var DayOrder = []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}

var dayLabels = map[string]string{
	"monday":    "Senin",
	"tuesday":   "Selasa",
	"wednesday": "Rabu",
	"thursday":  "Kamis",
	"friday":    "Jumat",
	"saturday":  "Sabtu",
	"sunday":    "Minggu",
}

// DayLabel returns the Indonesian day name for an English or Indonesian
// day. Unknown names are returned unchanged.
func DayLabel(day string) string {
	if label, ok := dayLabels[strings.ToLower(strings.TrimSpace(day))]; ok {
		return label
	}
	return day
}

// DayOfRecord names the day of a daily record, reading the date when the
// day field is empty.
func DayOfRecord(hari, tanggal string) string {
	if hari != "" {
		return DayLabel(hari)
	}
	t, err := time.Parse("2006-01-02", tanggal)
	if err != nil {
		return ""
	}
	return DayLabel(t.Weekday().String())
}

// ExportDateStamp formats t as YYYY-MM-DD.
func ExportDateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}
