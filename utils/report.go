package utils

import (
	"makkanya_dashboard/helper"
	"makkanya_dashboard/model"
	"sort"
	"strings"
)

// WeekdayProfiles groups the daily series by day name, Monday first. Days
// without records are reported with zero values.
func WeekdayProfiles(days []model.DailyProjection) []model.WeekdayProfile {
	grouped := make(map[string]*model.WeekdayProfile)
	achievement := make(map[string]float64)
	for _, d := range days {
		name := DayOfRecord(d.Day, d.Date)
		p, ok := grouped[name]
		if !ok {
			p = &model.WeekdayProfile{Day: name}
			grouped[name] = p
		}
		p.Count++
		p.TotalCups += d.ActualCups
		achievement[name] += d.AchievementRatePct
	}

	out := make([]model.WeekdayProfile, 0, len(DayOrder))
	for _, day := range DayOrder {
		p, ok := grouped[day]
		if !ok {
			out = append(out, model.WeekdayProfile{Day: day})
			continue
		}
		p.AvgCups = roundFloat(SafeDiv(p.TotalCups, float64(p.Count), 0), 2)
		p.AvgAchievement = roundFloat(SafeDiv(achievement[day], float64(p.Count), 0), 2)
		out = append(out, *p)
	}
	return out
}

// ShiftDayProfiles splits shift cups per weekday into the three shifts.
func ShiftDayProfiles(ops []model.ShiftOperation) []model.ShiftDayProfile {
	grouped := make(map[string]*model.ShiftDayProfile)
	for _, op := range ops {
		day := DayLabel(op.Day)
		p, ok := grouped[day]
		if !ok {
			p = &model.ShiftDayProfile{Day: day}
			grouped[day] = p
		}
		switch {
		case strings.Contains(op.Shift, "Pagi"):
			p.Pagi += op.TotalCups
		case strings.Contains(op.Shift, "Siang"):
			p.Siang += op.TotalCups
		case strings.Contains(op.Shift, "Sore"):
			p.Sore += op.TotalCups
		}
		p.Total += op.TotalCups
		p.Revenue += op.RevenueRp
	}

	out := make([]model.ShiftDayProfile, 0, len(DayOrder))
	for _, day := range DayOrder {
		if p, ok := grouped[day]; ok {
			out = append(out, *p)
			continue
		}
		out = append(out, model.ShiftDayProfile{Day: day})
	}
	return out
}

// ZonePerformanceReport groups the driver allocation by operational zone.
// Target, price and radius come from the first record of each zone.
func ZonePerformanceReport(zones []model.DriverZone, zone string) model.ZonePerformance {
	index := make(map[string]int)
	stats := []model.ZoneStat{}
	pagi, siang, sore := 0, 0, 0
	for _, z := range zones {
		i, ok := index[z.OperationalZone]
		if !ok {
			i = len(stats)
			index[z.OperationalZone] = i
			stats = append(stats, model.ZoneStat{
				Name:            z.OperationalZone,
				TargetPerDriver: z.TargetCupsPerDriver,
				Price:           z.AvgPricePerCup,
				Radius:          z.RadiusKm,
			})
		}
		stats[i].Drivers += z.DriverCount
		stats[i].Locations++
		pagi += z.ShiftMorning
		siang += z.ShiftAfternoon
		sore += z.ShiftEvening
	}
	return model.ZonePerformance{
		Zones: helper.FilterZoneStats(stats, zone),
		Shift: []model.ShiftShare{
			{Name: "Pagi", Label: "07-12", Value: pagi},
			{Name: "Siang", Label: "12-17", Value: siang},
			{Name: "Sore", Label: "17-21", Value: sore},
		},
	}
}

// HeatmapByZone groups heatmap cells per zone name, each zone sorted by hour.
func HeatmapByZone(cells []model.HeatmapCell) []model.HeatmapZone {
	index := make(map[string]int)
	out := []model.HeatmapZone{}
	for _, c := range cells {
		i, ok := index[c.Zone]
		if !ok {
			i = len(out)
			index[c.Zone] = i
			out = append(out, model.HeatmapZone{Zone: c.Zone, Cells: []model.HeatmapCell{}})
		}
		out[i].Cells = append(out[i].Cells, c)
	}
	for i := range out {
		z := &out[i]
		sort.SliceStable(z.Cells, func(a, b int) bool { return z.Cells[a].Hour < z.Cells[b].Hour })
		for j, c := range z.Cells {
			if j == 0 || c.DemandIndex > z.PeakIndex {
				z.PeakIndex = c.DemandIndex
				z.PeakLabel = c.HourLabel
			}
			z.TotalDemand += c.DemandIndex
		}
	}
	return out
}

func MonthlyReport(months []model.MonthlyKPI) model.MonthlyTotals {
	out := model.MonthlyTotals{
		TotalRevenue: Sum(months, func(m model.MonthlyKPI) float64 { return m.RevenueRp }),
		TotalProfit:  Sum(months, func(m model.MonthlyKPI) float64 { return m.NetProfitRp }),
		TotalCups:    Sum(months, func(m model.MonthlyKPI) float64 { return m.TotalCups }),
		AvgMargin:    roundFloat(Average(months, func(m model.MonthlyKPI) float64 { return m.ProfitMarginPct }), 2),
	}
	if n := len(months); n > 0 {
		out.FinalAccumulated = months[n-1].AccumulatedProfit
	}
	return out
}

func ZoneOverview(zones []model.ZoneRadius) model.ZoneOverviewTotals {
	return model.ZoneOverviewTotals{
		TotalPopulation: Sum(zones, func(z model.ZoneRadius) float64 { return z.TotalPopulation }),
		TotalFootfall:   Sum(zones, func(z model.ZoneRadius) float64 { return z.DailyFootfall }),
		TotalDemand:     Sum(zones, func(z model.ZoneRadius) float64 { return z.DemandPower }),
		AvgRadius:       roundFloat(Average(zones, func(z model.ZoneRadius) float64 { return z.RadiusKm }), 2),
	}
}
