package database

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const smallDataset = `{
	"Lokasi Strategis GPS": [
		{"Nama_Lokasi": "Lippo Mall Puri", "Kategori": "Mall Area", "Latitude": -6.1886, "Longitude": 106.7338, "Traffic_Level": "Very High", "Target_Priority": 1, "Estimasi_Footfall_per_Hari": 25000},
		{"Nama_Lokasi": "", "Kategori": "Mall Area", "Latitude": -6.1, "Longitude": 106.7},
		{"Nama_Lokasi": "Kutub", "Kategori": "Office Complex", "Latitude": 120, "Longitude": 106.7},
		{"Nama_Lokasi": "Gudang", "Kategori": "Warehouse", "Latitude": -6.2, "Longitude": 106.7, "Estimasi_Footfall_per_Hari": 100}
	],
	"Heatmap Demand 24 Jam": [
		{"Zona": "Zona A - Puri Indah CBD", "Jam": 8, "Demand_Index": 90},
		{"Zona": "Zona A - Puri Indah CBD", "Jam": 25, "Demand_Index": 10}
	]
}`

func TestDecodeDropsInvalidRecords(t *testing.T) {
	ds, report, err := Decode([]byte(smallDataset), "test.json")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(ds.Locations) != 2 {
		t.Errorf("locations = %d, want 2", len(ds.Locations))
	}
	if report.Dropped["Lokasi Strategis GPS"] != 2 {
		t.Errorf("dropped locations = %d, want 2", report.Dropped["Lokasi Strategis GPS"])
	}
	if len(ds.Heatmap) != 1 || report.Dropped["Heatmap Demand 24 Jam"] != 1 {
		t.Errorf("heatmap kept %d, dropped %d", len(ds.Heatmap), report.Dropped["Heatmap Demand 24 Jam"])
	}
	if ds.Products == nil || ds.RiskDetails == nil {
		t.Error("missing collections should decode as empty, not nil")
	}
	if report.Source != "test.json" || report.Version == "" {
		t.Errorf("report = %+v", report)
	}

	var unknownCategory, shortSeries bool
	for _, w := range report.Warnings {
		if strings.Contains(w, `"Warehouse"`) {
			unknownCategory = true
		}
		if strings.Contains(w, "Proyeksi 30 Hari has 0 records") {
			shortSeries = true
		}
	}
	if !unknownCategory || !shortSeries {
		t.Errorf("warnings = %v", report.Warnings)
	}
}

func TestDecodeRejectsBadJSON(t *testing.T) {
	if _, _, err := Decode([]byte(`{"Lokasi Strategis GPS": [`), "bad.json"); err == nil {
		t.Error("expected a parse error")
	}
}

func TestReadSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "makkanya_data.json")
	if err := os.WriteFile(path, []byte(smallDataset), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, _, err := LoadDataset(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(ds.Locations) != 2 {
		t.Errorf("locations = %d, want 2", len(ds.Locations))
	}

	if _, err := ReadSource(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := ReadSource(context.Background(), ""); err == nil {
		t.Error("expected an error for an empty source")
	}
}

func TestReadSourceHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/makkanya_data.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(smallDataset))
	}))
	defer srv.Close()

	raw, err := ReadSource(context.Background(), srv.URL+"/makkanya_data.json")
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}
	if !json.Valid(raw) {
		t.Error("fetched body is not the document")
	}
	if _, err := ReadSource(context.Background(), srv.URL+"/other.json"); err == nil {
		t.Error("expected an error for a 404")
	}
}

func TestLoadSampleIsClean(t *testing.T) {
	ds, report := LoadSample()
	if len(report.Dropped) != 0 {
		t.Errorf("sample dropped records: %v", report.Dropped)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("sample warnings: %v", report.Warnings)
	}
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"locations", len(ds.Locations), 10},
		{"daily", len(ds.DailyProjection), 30},
		{"monthly", len(ds.MonthlyKPI), 12},
		{"shifts", len(ds.ShiftOperations), 21},
		{"heatmap", len(ds.Heatmap), 75},
		{"risks", len(ds.RiskDetails), 6},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if report.Counts["Lokasi Strategis GPS"] != 10 {
		t.Errorf("location count = %d, want 10", report.Counts["Lokasi Strategis GPS"])
	}
}
