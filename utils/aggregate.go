package utils

import (
	"makkanya_dashboard/constants"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/model"
	"math"
)

func Sum[T any](rows []T, field func(T) float64) float64 {
	total := 0.0
	for _, r := range rows {
		total += field(r)
	}
	return total
}

// Average of an empty slice is 0.
func Average[T any](rows []T, field func(T) float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	return Sum(rows, field) / float64(len(rows))
}

func CountBy[T any](rows []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, r := range rows {
		out[key(r)]++
	}
	return out
}

// MaxBy returns the first row holding the largest value.
func MaxBy[T any](rows []T, value func(T) float64) (T, bool) {
	var best T
	if len(rows) == 0 {
		return best, false
	}
	best = rows[0]
	bestValue := value(best)
	for _, r := range rows[1:] {
		if v := value(r); v > bestValue {
			best, bestValue = r, v
		}
	}
	return best, true
}

// MinBy returns the first row holding the smallest value.
func MinBy[T any](rows []T, value func(T) float64) (T, bool) {
	return MaxBy(rows, func(r T) float64 { return -value(r) })
}

// GroupSum sums value per key, keeping keys in first-seen order.
func GroupSum[T any](rows []T, key func(T) string, value func(T) float64) []model.NamedValue {
	index := make(map[string]int)
	out := []model.NamedValue{}
	for _, r := range rows {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, model.NamedValue{Name: k})
		}
		out[i].Value += value(r)
	}
	return out
}

// ZoneMultiplier is the zone's share of total location footfall, computed
// over the unfiltered location list. It is 1 for all and when there is no
// footfall at all.
func ZoneMultiplier(locations []model.Location, zone string) float64 {
	if zone == "" || zone == constants.ZONE_ALL {
		return 1
	}
	footfall := func(l model.Location) float64 { return l.FootfallPerDay }
	total := Sum(locations, footfall)
	zoneTotal := Sum(helper.FilterLocations(locations, zone), footfall)
	return SafeDiv(zoneTotal, total, 1)
}

// Scale applies the multiplier. Values are flagged as estimates for any
// zone other than all.
func Scale(value, multiplier float64, zone string) model.Estimate {
	all := zone == "" || zone == constants.ZONE_ALL
	return model.Estimate{
		Value:      value * multiplier,
		Estimated:  !all,
		Multiplier: multiplier,
	}
}

func measured(value float64) model.Estimate {
	return model.Estimate{Value: value, Multiplier: 1}
}

// HalfTrend compares the mean of the second half of a series with the mean
// of the first half, in percent. It is 0 when the first mean is 0.
func HalfTrend(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	mid := len(series) / 2
	ident := func(v float64) float64 { return v }
	first := Average(series[:mid], ident)
	second := Average(series[mid:], ident)
	return SafeDiv(second-first, first, 0) * 100
}

func DriverEstimate(zone string, multiplier float64) model.Estimate {
	if zone == "" || zone == constants.ZONE_ALL {
		return measured(constants.TOTAL_DRIVER_TARGET)
	}
	drivers := math.Max(constants.MIN_ZONE_DRIVERS, math.Round(constants.TOTAL_DRIVER_TARGET*multiplier))
	return model.Estimate{Value: drivers, Estimated: true, Multiplier: multiplier}
}

// Population reads the Kembangan population from the master summary.
func Population(metrics []model.SummaryMetric) float64 {
	for _, m := range metrics {
		if m.Metric != constants.POPULATION_METRIC {
			continue
		}
		if v, ok := m.Value.Float(); ok && v != 0 && !math.IsNaN(v) {
			return v
		}
		break
	}
	return constants.POPULATION_FALLBACK
}

func PopulationEstimate(metrics []model.SummaryMetric, zone string, multiplier float64) model.Estimate {
	pop := Population(metrics)
	if zone == "" || zone == constants.ZONE_ALL {
		return measured(pop)
	}
	return model.Estimate{Value: math.Round(pop * multiplier), Estimated: true, Multiplier: multiplier}
}

func dailyRevenue(d model.DailyProjection) float64     { return d.RevenueRp }
func dailyProfit(d model.DailyProjection) float64      { return d.NetProfitRp }
func dailyCups(d model.DailyProjection) float64        { return d.ActualCups }
func dailyAchievement(d model.DailyProjection) float64 { return d.AchievementRatePct }

// ComputeKPIs builds the headline cards for sel. full must be the unfiltered
// dataset: the multiplier is a share of all locations.
func ComputeKPIs(full *model.Dataset, sel model.Selection) model.KPISet {
	view := helper.Filter(full, sel)
	m := ZoneMultiplier(full.Locations, sel.Zone)
	daily := view.DailyProjection

	totalCups := Scale(Sum(daily, dailyCups), m, sel.Zone)
	cupsPerDay := totalCups
	cupsPerDay.Value = SafeDiv(totalCups.Value, float64(len(daily)), 0)

	kpi := model.KPISet{
		Selection:        sel,
		ZoneMultiplier:   m,
		TotalRevenue:     Scale(Sum(daily, dailyRevenue), m, sel.Zone),
		TotalProfit:      Scale(Sum(daily, dailyProfit), m, sel.Zone),
		TotalCups:        totalCups,
		CupsPerDay:       cupsPerDay,
		AvgAchievement:   Average(daily, dailyAchievement),
		Drivers:          DriverEstimate(sel.Zone, m),
		TargetPopulation: PopulationEstimate(full.MasterSummary, sel.Zone, m),
		MonthlyRevenue:   Scale(0, m, sel.Zone),
		MonthlyProfit:    Scale(0, m, sel.Zone),
		Days:             len(daily),
	}
	kpi.OnTarget = kpi.AvgAchievement >= 100

	if n := len(full.MonthlyKPI); n > 0 {
		latest := full.MonthlyKPI[n-1]
		kpi.MonthlyRevenue = Scale(latest.RevenueRp, m, sel.Zone)
		kpi.MonthlyProfit = Scale(latest.NetProfitRp, m, sel.Zone)
		kpi.ProfitMargin = latest.ProfitMarginPct
	}

	revenues := make([]float64, len(daily))
	for i, d := range daily {
		revenues[i] = d.RevenueRp
	}
	kpi.RevenueTrend = roundFloat(HalfTrend(revenues), 2)
	kpi.TrendUp = kpi.RevenueTrend >= 0
	return kpi
}
