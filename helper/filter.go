package helper

import (
	"makkanya_dashboard/constants"
	"makkanya_dashboard/model"
	"strings"
)

// Filter returns the dataset view for sel. Only locations, heatmap, daily
// projection and shift operations are subset; every other collection is
// shared with ds. ds itself is never modified.
func Filter(ds *model.Dataset, sel model.Selection) *model.Dataset {
	if ds == nil {
		return nil
	}
	out := *ds
	out.Locations = FilterLocations(ds.Locations, sel.Zone)
	out.Heatmap = FilterHeatmap(ds.Heatmap, sel.Zone)
	out.DailyProjection = FilterDaily(ds.DailyProjection, sel.Period)
	out.ShiftOperations = FilterShifts(ds.ShiftOperations, sel.Shift)
	return &out
}

func FilterLocations(locations []model.Location, zone string) []model.Location {
	set := ZoneCategories(zone)
	out := make([]model.Location, 0, len(locations))
	for _, loc := range locations {
		if set.Contains(loc.Category) {
			out = append(out, loc)
		}
	}
	return out
}

func FilterHeatmap(cells []model.HeatmapCell, zone string) []model.HeatmapCell {
	set := ZoneHeatmapNames(zone)
	out := make([]model.HeatmapCell, 0, len(cells))
	for _, cell := range cells {
		if set.ContainsSubstring(cell.Zone) {
			out = append(out, cell)
		}
	}
	return out
}

// FilterDaily keeps the last seven records for the 7days period. Any other
// period keeps the whole series.
func FilterDaily(days []model.DailyProjection, period string) []model.DailyProjection {
	start := 0
	if period == constants.PERIOD_7_DAYS && len(days) > constants.WEEK_DAYS_RECENT {
		start = len(days) - constants.WEEK_DAYS_RECENT
	}
	out := make([]model.DailyProjection, len(days)-start)
	copy(out, days[start:])
	return out
}

func FilterShifts(ops []model.ShiftOperation, shift string) []model.ShiftOperation {
	out := make([]model.ShiftOperation, 0, len(ops))
	if shift == "" || strings.EqualFold(shift, constants.SHIFT_ALL) {
		return append(out, ops...)
	}
	needle := strings.ToLower(shift)
	for _, op := range ops {
		if strings.Contains(strings.ToLower(op.Shift), needle) {
			out = append(out, op)
		}
	}
	return out
}

// FilterRisks keeps the detailed risks whose category belongs to zone.
func FilterRisks(risks []model.RiskDetail, zone string) []model.RiskDetail {
	set := ZoneRiskCategories(zone)
	out := make([]model.RiskDetail, 0, len(risks))
	for _, r := range risks {
		if set.Contains(r.Category) {
			out = append(out, r)
		}
	}
	return out
}

// FilterZoneStats keeps the driver zones whose name contains the zone label.
func FilterZoneStats(stats []model.ZoneStat, zone string) []model.ZoneStat {
	out := make([]model.ZoneStat, 0, len(stats))
	for _, s := range stats {
		if isAllZone(zone) || strings.Contains(s.Name, zone) {
			out = append(out, s)
		}
	}
	return out
}
