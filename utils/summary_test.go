package utils

import (
	"errors"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/database"
	"makkanya_dashboard/model"
	"testing"
)

func TestRisksAll(t *testing.T) {
	ds := database.SampleDataset()
	got := Risks(ds, model.DefaultSelection())
	if got.Total != 6 || got.Critical != 1 || got.High != 2 || got.Medium != 2 {
		t.Errorf("risk counts = %d/%d/%d/%d, want 6/1/2/2", got.Total, got.Critical, got.High, got.Medium)
	}
	if got.TopRisk == nil || got.TopRisk.ID != "RD-01" {
		t.Errorf("top risk = %v, want RD-01", got.TopRisk)
	}
	if got.TopCategory == nil || got.TopCategory.Name != "Kompetisi" {
		t.Errorf("top category = %v, want Kompetisi", got.TopCategory)
	}
}

func TestRisksResidential(t *testing.T) {
	ds := database.SampleDataset()
	sel := model.DefaultSelection()
	sel.Zone = constants.ZONE_RESIDENTIAL
	got := Risks(ds, sel)
	if got.Total != 2 {
		t.Fatalf("residential risks = %d, want 2", got.Total)
	}
	if got.TopRisk.ID != "RD-02" {
		t.Errorf("top risk = %s, want RD-02", got.TopRisk.ID)
	}
}

func TestProducts(t *testing.T) {
	got := Products(database.SampleDataset())
	if got.TopMargin == nil || got.TopMargin.Name != "Americano" {
		t.Errorf("top margin = %v, want Americano", got.TopMargin)
	}
	if got.BestSeller == nil || got.BestSeller.Name != "Kopi Susu Gula Aren" {
		t.Errorf("best seller = %v, want Kopi Susu Gula Aren", got.BestSeller)
	}
	if got.CoffeeCount != 4 || got.NonCoffeeCount != 2 {
		t.Errorf("coffee/non-coffee = %d/%d, want 4/2", got.CoffeeCount, got.NonCoffeeCount)
	}
	if got.CheapestCompetitor.Brand != "Kopi Keliling Lokal" {
		t.Errorf("cheapest = %s", got.CheapestCompetitor.Brand)
	}
	if got.MostExpensiveCompetitor.Brand != "Starbucks" {
		t.Errorf("most expensive = %s", got.MostExpensiveCompetitor.Brand)
	}
}

func TestProductsEmpty(t *testing.T) {
	got := Products(&model.Dataset{})
	if got.TopMargin != nil || got.BestSeller != nil || got.CheapestCompetitor != nil {
		t.Errorf("empty dataset should leave pointers nil, got %+v", got)
	}
	if got.AvgMargin != 0 || got.AvgPrice != 0 {
		t.Errorf("empty averages = %v/%v, want 0", got.AvgMargin, got.AvgPrice)
	}
}

func TestCustomers(t *testing.T) {
	ds := database.SampleDataset()
	got := Customers(ds, model.DefaultSelection())
	if got.PeakHour == nil || got.PeakHour.Name != "07:00-09:00" || got.PeakHour.Value != 2 {
		t.Errorf("peak hour = %v, want 07:00-09:00 x2", got.PeakHour)
	}
	if got.TargetPopulation.Value != 115000 || got.TargetPopulation.Estimated {
		t.Errorf("target population = %+v, want measured 115000", got.TargetPopulation)
	}
	if got.DailyDemand.Value != 8500 {
		t.Errorf("daily demand = %v, want 8500", got.DailyDemand.Value)
	}
	if got.LargestSegment.Name != "Karyawan Kantor" || got.HighestLTV.Name != "Karyawan Kantor" {
		t.Errorf("segments = %s/%s", got.LargestSegment.Name, got.HighestLTV.Name)
	}

	sel := model.DefaultSelection()
	sel.Zone = constants.ZONE_CBD
	cbd := Customers(ds, sel)
	if !cbd.DailyDemand.Estimated || cbd.DailyDemand.Value >= got.DailyDemand.Value {
		t.Errorf("CBD demand = %+v, want a scaled estimate", cbd.DailyDemand)
	}
}

func TestPerformance(t *testing.T) {
	ds := database.SampleDataset()
	got := Performance(ds, model.DefaultSelection())
	if got.BestShift == nil || got.BestShift.Name != "Pagi (07-12)" || got.BestShift.Value != 3000 {
		t.Errorf("best shift = %v, want Pagi (07-12) 3000", got.BestShift)
	}
	if len(got.ShiftTotals) != 3 {
		t.Fatalf("shift totals = %v", got.ShiftTotals)
	}
	if got.ShiftTotals[1].Value != 1380 || got.ShiftTotals[2].Value != 1560 {
		t.Errorf("siang/sore = %v/%v, want 1380/1560", got.ShiftTotals[1].Value, got.ShiftTotals[2].Value)
	}
	if got.Investment != 565000000 {
		t.Errorf("investment = %v, want 565000000", got.Investment)
	}

	wantCounts := map[string]int{"Senin": 5, "Selasa": 5, "Rabu": 4, "Kamis": 4, "Jumat": 4, "Sabtu": 4, "Minggu": 4}
	if len(got.Weekdays) != 7 {
		t.Fatalf("weekdays = %d, want 7", len(got.Weekdays))
	}
	for i, w := range got.Weekdays {
		if w.Day != DayOrder[i] {
			t.Errorf("weekday %d = %s, want %s", i, w.Day, DayOrder[i])
		}
		if w.Count != wantCounts[w.Day] {
			t.Errorf("%s count = %d, want %d", w.Day, w.Count, wantCounts[w.Day])
		}
	}
}

func TestPerformanceShiftFilter(t *testing.T) {
	ds := database.SampleDataset()
	sel := model.DefaultSelection()
	sel.Shift = constants.SHIFT_SORE
	got := Performance(ds, sel)
	if len(got.ShiftTotals) != 1 || got.ShiftTotals[0].Name != "Sore (17-21)" {
		t.Errorf("shift totals = %v, want only Sore", got.ShiftTotals)
	}
}

func TestHeatmapSummary(t *testing.T) {
	ds := database.SampleDataset()
	got := Heatmap(ds, model.DefaultSelection())

	wantHubs := []string{"Puri Indah Financial Tower", "Lippo Mall Puri", "Puri Indah Mall", "Stasiun Kembangan"}
	if len(got.HubCandidates) != len(wantHubs) {
		t.Fatalf("hub candidates = %v", got.HubCandidates)
	}
	for i, name := range wantHubs {
		if got.HubCandidates[i] != name {
			t.Errorf("hub %d = %s, want %s", i, got.HubCandidates[i], name)
		}
	}
	if len(got.TopLocations) != 3 || got.TopLocations[0].Name != "Lippo Mall Puri" {
		t.Errorf("top locations = %v", got.TopLocations)
	}
	if got.PeakHour == nil || *got.PeakHour != 8 || got.PeakDemand != 230 {
		t.Errorf("peak = %v/%v, want 8/230", got.PeakHour, got.PeakDemand)
	}
	if got.TotalFootfall != 104000 || got.VeryHighTraffic != 2 || got.HighTraffic != 3 {
		t.Errorf("traffic = %+v", got)
	}
	if got.TotalDriverNeeded != 258 {
		t.Errorf("drivers needed = %v, want 258", got.TotalDriverNeeded)
	}
}

func TestHeatmapSummaryCBDNotRescaled(t *testing.T) {
	ds := database.SampleDataset()
	sel := model.DefaultSelection()
	sel.Zone = constants.ZONE_CBD
	got := Heatmap(ds, sel)
	if got.TotalDriverNeeded != 147 {
		t.Errorf("CBD drivers needed = %v, want 147", got.TotalDriverNeeded)
	}
	if got.TotalFootfall != 58000 {
		t.Errorf("CBD footfall = %v, want 58000", got.TotalFootfall)
	}
	if !got.CustomerDemand.Estimated {
		t.Error("CBD customer demand should be an estimate")
	}
}

func TestHeatmapSummaryEmpty(t *testing.T) {
	got := Heatmap(&model.Dataset{}, model.DefaultSelection())
	if got.PeakHour != nil {
		t.Errorf("empty heatmap peak = %v, want nil", *got.PeakHour)
	}
	if got.HubCandidates == nil || got.TopLocations == nil {
		t.Error("empty lists should be non-nil")
	}
}

func TestSummaryTabs(t *testing.T) {
	ds := database.SampleDataset()
	for _, tab := range SummaryTabs {
		if _, err := Summary(ds, model.DefaultSelection(), tab); err != nil {
			t.Errorf("Summary(%s) error: %v", tab, err)
		}
	}
	if _, err := Summary(ds, model.DefaultSelection(), "drivers"); !errors.Is(err, ErrUnknownTab) {
		t.Errorf("unknown tab error = %v, want ErrUnknownTab", err)
	}
}
