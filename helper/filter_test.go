package helper

import (
	"makkanya_dashboard/constants"
	"makkanya_dashboard/database"
	"makkanya_dashboard/model"
	"reflect"
	"testing"
)

var allZones = []string{
	constants.ZONE_ALL,
	constants.ZONE_CBD,
	constants.ZONE_TRANSPORT,
	constants.ZONE_HEALTHCARE,
	constants.ZONE_MARKET,
	constants.ZONE_RESIDENTIAL,
	"Bogor",
}

func TestFilterLocationsSubset(t *testing.T) {
	ds := database.SampleDataset()
	for _, zone := range allZones {
		view := Filter(ds, model.Selection{Zone: zone, Period: "30days", Shift: "all"})
		set := ZoneCategories(zone)
		for _, loc := range view.Locations {
			if !set.Contains(loc.Category) {
				t.Errorf("zone %q kept %q with category %q", zone, loc.Name, loc.Category)
			}
		}
		if !set.All && len(set.Values) == 0 && len(view.Locations) != 0 {
			t.Errorf("zone %q has no categories but kept %d locations", zone, len(view.Locations))
		}
		if view.Locations == nil || view.Heatmap == nil {
			t.Errorf("zone %q produced a nil slice", zone)
		}
	}
}

func TestFilterAllIsIdentity(t *testing.T) {
	ds := database.SampleDataset()
	view := Filter(ds, model.DefaultSelection())
	if !reflect.DeepEqual(view.Locations, ds.Locations) {
		t.Error("locations differ for zone all")
	}
	if !reflect.DeepEqual(view.Heatmap, ds.Heatmap) {
		t.Error("heatmap differs for zone all")
	}
	if !reflect.DeepEqual(view.DailyProjection, ds.DailyProjection) {
		t.Error("daily projection differs for 30days")
	}
	if !reflect.DeepEqual(view.ShiftOperations, ds.ShiftOperations) {
		t.Error("shift operations differ for shift all")
	}
}

func TestFilterSevenDays(t *testing.T) {
	ds := database.SampleDataset()
	view := Filter(ds, model.Selection{Zone: "all", Period: "7days", Shift: "all"})
	if len(view.DailyProjection) != 7 {
		t.Fatalf("got %d days, want 7", len(view.DailyProjection))
	}
	want := ds.DailyProjection[len(ds.DailyProjection)-7:]
	if !reflect.DeepEqual(view.DailyProjection, want) {
		t.Error("7days should be the last seven records in order")
	}
}

func TestFilterDailyShortSeries(t *testing.T) {
	days := []model.DailyProjection{{Date: "2025-01-01"}, {Date: "2025-01-02"}}
	if got := FilterDaily(days, "7days"); len(got) != 2 {
		t.Errorf("short series kept %d records, want 2", len(got))
	}
	if got := FilterDaily(days, "90days"); len(got) != 2 {
		t.Errorf("unknown period kept %d records, want 2", len(got))
	}
	if got := FilterDaily(nil, "7days"); got == nil || len(got) != 0 {
		t.Errorf("nil series = %v, want empty slice", got)
	}
}

func TestFilterShifts(t *testing.T) {
	ops := []model.ShiftOperation{
		{Shift: "Pagi (07-12)"}, {Shift: "Siang (12-17)"}, {Shift: "Sore (17-21)"}, {Shift: "pagi tambahan"},
	}
	tests := []struct {
		shift string
		want  int
	}{
		{"all", 4},
		{"ALL", 4},
		{"", 4},
		{"Pagi", 2},
		{"siang", 1},
		{"Malam", 0},
	}
	for _, tt := range tests {
		if got := FilterShifts(ops, tt.shift); len(got) != tt.want {
			t.Errorf("FilterShifts(%q) = %d rows, want %d", tt.shift, len(got), tt.want)
		}
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	ds := database.SampleDataset()
	before := database.SampleDataset()
	for _, zone := range allZones {
		Filter(ds, model.Selection{Zone: zone, Period: "7days", Shift: "Pagi"})
	}
	if !reflect.DeepEqual(ds, before) {
		t.Error("Filter modified its input")
	}
}

func TestFilterIdempotent(t *testing.T) {
	ds := database.SampleDataset()
	sel := model.Selection{Zone: constants.ZONE_CBD, Period: "7days", Shift: "Sore"}
	once := Filter(ds, sel)
	twice := Filter(once, sel)
	if !reflect.DeepEqual(once, twice) {
		t.Error("filtering twice should equal filtering once")
	}
}

func TestFilterHeatmapCBD(t *testing.T) {
	ds := database.SampleDataset()
	cells := FilterHeatmap(ds.Heatmap, constants.ZONE_CBD)
	for _, c := range cells {
		if c.Zone != "Zona A - Puri Indah CBD" && c.Zone != "Zona C - Mall & Retail" {
			t.Errorf("unexpected heatmap zone %q", c.Zone)
		}
	}
	if len(cells) != 30 {
		t.Errorf("got %d cells, want 30", len(cells))
	}
}

func TestFilterRisks(t *testing.T) {
	ds := database.SampleDataset()
	risks := FilterRisks(ds.RiskDetails, constants.ZONE_RESIDENTIAL)
	if len(risks) != 2 {
		t.Fatalf("got %d risks, want 2", len(risks))
	}
	for _, r := range risks {
		if r.Category != "Operasional" && r.Category != "Permintaan" {
			t.Errorf("unexpected category %q", r.Category)
		}
	}
	if got := FilterRisks(ds.RiskDetails, "all"); len(got) != len(ds.RiskDetails) {
		t.Errorf("zone all kept %d risks, want %d", len(got), len(ds.RiskDetails))
	}
}

func TestFilterNil(t *testing.T) {
	if Filter(nil, model.DefaultSelection()) != nil {
		t.Error("Filter(nil) should be nil")
	}
}
