package utils

import (
	"makkanya_dashboard/constants"
	"makkanya_dashboard/database"
	"makkanya_dashboard/model"
	"testing"
)

func TestZonePerformanceAll(t *testing.T) {
	ds := database.SampleDataset()
	got := ZonePerformanceReport(ds.DriverZones, constants.ZONE_ALL)
	if len(got.Zones) != 4 {
		t.Fatalf("zones = %d, want 4", len(got.Zones))
	}
	a := got.Zones[0]
	if a.Name != "Zona A - Puri Indah CBD" || a.Drivers != 14 || a.Locations != 2 {
		t.Errorf("Zona A = %+v, want 14 drivers over 2 locations", a)
	}
	if a.TargetPerDriver != 45 {
		t.Errorf("Zona A target = %v, want first record's 45", a.TargetPerDriver)
	}
	want := []int{20, 14, 16}
	for i, s := range got.Shift {
		if s.Value != want[i] {
			t.Errorf("shift %s = %d, want %d", s.Name, s.Value, want[i])
		}
	}
}

func TestZonePerformanceCBD(t *testing.T) {
	ds := database.SampleDataset()
	got := ZonePerformanceReport(ds.DriverZones, constants.ZONE_CBD)
	if len(got.Zones) != 1 || got.Zones[0].Drivers != 14 {
		t.Errorf("CBD zones = %+v", got.Zones)
	}
	if got.Shift[0].Value != 20 {
		t.Errorf("shift distribution should cover every zone, got %d", got.Shift[0].Value)
	}
}

func TestHeatmapByZone(t *testing.T) {
	ds := database.SampleDataset()
	got := HeatmapByZone(ds.Heatmap)
	if len(got) != 5 {
		t.Fatalf("zones = %d, want 5", len(got))
	}
	a := got[0]
	if len(a.Cells) != 15 {
		t.Errorf("Zona A cells = %d, want 15", len(a.Cells))
	}
	if a.PeakLabel != "08:00" || a.PeakIndex != 90 {
		t.Errorf("Zona A peak = %s/%v, want 08:00/90", a.PeakLabel, a.PeakIndex)
	}
	for i := 1; i < len(a.Cells); i++ {
		if a.Cells[i].Hour < a.Cells[i-1].Hour {
			t.Fatal("cells are not sorted by hour")
		}
	}
}

func TestHeatmapByZoneSortsHours(t *testing.T) {
	cells := []model.HeatmapCell{
		{Zone: "Z", Hour: 10, HourLabel: "10:00", DemandIndex: 20},
		{Zone: "Z", Hour: 8, HourLabel: "08:00", DemandIndex: 20},
	}
	got := HeatmapByZone(cells)
	if got[0].PeakLabel != "08:00" {
		t.Errorf("tie should go to the earliest hour, got %s", got[0].PeakLabel)
	}
	if got[0].TotalDemand != 40 {
		t.Errorf("total demand = %v, want 40", got[0].TotalDemand)
	}
}

func TestMonthlyReport(t *testing.T) {
	ds := database.SampleDataset()
	got := MonthlyReport(ds.MonthlyKPI)
	if got.FinalAccumulated != ds.MonthlyKPI[11].AccumulatedProfit {
		t.Errorf("final accumulated = %v, want December's %v", got.FinalAccumulated, ds.MonthlyKPI[11].AccumulatedProfit)
	}
	if got.TotalRevenue <= 0 || got.TotalCups <= 0 {
		t.Errorf("totals = %+v", got)
	}
	if empty := MonthlyReport(nil); empty.FinalAccumulated != 0 {
		t.Errorf("empty final = %v, want 0", empty.FinalAccumulated)
	}
}

func TestZoneOverview(t *testing.T) {
	ds := database.SampleDataset()
	got := ZoneOverview(ds.ZoneRadius)
	if got.TotalFootfall != 107000 {
		t.Errorf("footfall = %v, want 107000", got.TotalFootfall)
	}
	if got.AvgRadius != 1.8 {
		t.Errorf("avg radius = %v, want 1.8", got.AvgRadius)
	}
}

func TestShiftDayProfiles(t *testing.T) {
	ds := database.SampleDataset()
	got := ShiftDayProfiles(ds.ShiftOperations)
	if len(got) != 7 {
		t.Fatalf("days = %d, want 7", len(got))
	}
	if got[0].Day != "Senin" || got[0].Pagi != 450 || got[0].Siang != 210 || got[0].Sore != 240 || got[0].Total != 900 {
		t.Errorf("Senin = %+v", got[0])
	}
	if got[6].Day != "Minggu" || got[6].Total != 720 {
		t.Errorf("Minggu = %+v", got[6])
	}
}

func TestDayLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Monday", "Senin"},
		{"sunday", "Minggu"},
		{" Friday ", "Jumat"},
		{"Kamis", "Kamis"},
		{"Someday", "Someday"},
	}
	for _, tt := range tests {
		if got := DayLabel(tt.in); got != tt.want {
			t.Errorf("DayLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDayOfRecord(t *testing.T) {
	if got := DayOfRecord("", "2025-01-06"); got != "Senin" {
		t.Errorf("DayOfRecord from date = %q, want Senin", got)
	}
	if got := DayOfRecord("Saturday", "2025-01-06"); got != "Sabtu" {
		t.Errorf("day field should win, got %q", got)
	}
	if got := DayOfRecord("", "not-a-date"); got != "" {
		t.Errorf("bad date = %q, want empty", got)
	}
}
