package utils

import (
	"errors"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/model"
	"math"
	"sort"
	"strings"
)

var ErrUnknownTab = errors.New("unknown summary tab")

var SummaryTabs = []string{
	constants.SUMMARY_OVERVIEW,
	constants.SUMMARY_PERFORMANCE,
	constants.SUMMARY_HEATMAP,
	constants.SUMMARY_PRODUCTS,
	constants.SUMMARY_CUSTOMERS,
	constants.SUMMARY_RISKS,
}

// Summary builds the side panel of one dashboard tab.
func Summary(full *model.Dataset, sel model.Selection, tab string) (any, error) {
	switch tab {
	case constants.SUMMARY_OVERVIEW:
		return Overview(full, sel), nil
	case constants.SUMMARY_PERFORMANCE:
		return Performance(full, sel), nil
	case constants.SUMMARY_HEATMAP:
		return Heatmap(full, sel), nil
	case constants.SUMMARY_PRODUCTS:
		return Products(full), nil
	case constants.SUMMARY_CUSTOMERS:
		return Customers(full, sel), nil
	case constants.SUMMARY_RISKS:
		return Risks(full, sel), nil
	}
	return nil, ErrUnknownTab
}

func Overview(full *model.Dataset, sel model.Selection) model.OverviewSummary {
	kpi := ComputeKPIs(full, sel)
	return model.OverviewSummary{
		TotalRevenue:   kpi.TotalRevenue,
		TotalProfit:    kpi.TotalProfit,
		TotalCups:      kpi.TotalCups,
		AvgAchievement: kpi.AvgAchievement,
		ProfitMargin:   kpi.ProfitMargin,
		RevenueTrend:   kpi.RevenueTrend,
		TrendUp:        kpi.TrendUp,
	}
}

func Performance(full *model.Dataset, sel model.Selection) model.PerformanceSummary {
	view := helper.Filter(full, sel)
	m := ZoneMultiplier(full.Locations, sel.Zone)

	shiftTotals := GroupSum(view.ShiftOperations,
		func(s model.ShiftOperation) string { return s.Shift },
		func(s model.ShiftOperation) float64 { return s.TotalCups })

	avgRevenue := Average(full.MonthlyKPI, func(k model.MonthlyKPI) float64 { return k.RevenueRp })
	avgProfit := Average(full.MonthlyKPI, func(k model.MonthlyKPI) float64 { return k.NetProfitRp })
	investment := Sum(full.Investments, func(i model.Investment) float64 { return i.TotalCostRp })

	out := model.PerformanceSummary{
		ShiftTotals:       shiftTotals,
		AvgMonthlyRevenue: Scale(avgRevenue, m, sel.Zone),
		AvgMonthlyProfit:  Scale(avgProfit, m, sel.Zone),
		Investment:        investment,
		AnnualProfit:      Scale(avgProfit*12, m, sel.Zone),
		Weekdays:          WeekdayProfiles(view.DailyProjection),
		ShiftByDay:        ShiftDayProfiles(view.ShiftOperations),
	}
	if best, ok := MaxBy(shiftTotals, func(v model.NamedValue) float64 { return v.Value }); ok {
		out.BestShift = &best
	}
	out.ROI = roundFloat(SafeDiv(out.AnnualProfit.Value, investment, 0)*100, 2)
	return out
}

func Heatmap(full *model.Dataset, sel model.Selection) model.HeatmapSummary {
	view := helper.Filter(full, sel)
	m := ZoneMultiplier(full.Locations, sel.Zone)
	locations := view.Locations

	out := model.HeatmapSummary{
		HubCandidates: []string{},
		TopLocations:  []model.NamedValue{},
	}

	hourly := make(map[int]float64)
	hours := []int{}
	for _, cell := range view.Heatmap {
		if _, ok := hourly[cell.Hour]; !ok {
			hours = append(hours, cell.Hour)
		}
		hourly[cell.Hour] += cell.DemandIndex
	}
	sort.Ints(hours)
	for i, h := range hours {
		if i == 0 || hourly[h] > out.PeakDemand {
			hour := h
			out.PeakHour = &hour
			out.PeakDemand = hourly[h]
		}
	}

	for _, loc := range locations {
		out.TotalFootfall += loc.FootfallPerDay
		switch loc.TrafficLevel {
		case "Very High":
			out.VeryHighTraffic++
		case "High":
			out.HighTraffic++
		}
		if score, _ := LocationPotential(loc); IsHubCandidate(score, loc.Category) {
			out.HubCandidates = append(out.HubCandidates, loc.Name)
		}
	}

	sorted := make([]model.Location, len(locations))
	copy(sorted, locations)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FootfallPerDay > sorted[j].FootfallPerDay })
	for i := 0; i < len(sorted) && i < 3; i++ {
		out.TopLocations = append(out.TopLocations, model.NamedValue{Name: sorted[i].Name, Value: sorted[i].FootfallPerDay})
	}

	demand := Sum(full.CustomerDetails, func(c model.CustomerDetail) float64 { return c.DailyCoffeeDemandCups })
	out.CustomerDemand = Scale(demand, m, sel.Zone)
	// heatmap rows are already zone filtered, no further scaling
	out.TotalDriverNeeded = math.Round(Sum(view.Heatmap, func(h model.HeatmapCell) float64 { return h.RecommendedDriver }))
	return out
}

func Products(full *model.Dataset) model.ProductSummary {
	products := full.Products
	out := model.ProductSummary{
		AvgMargin: Average(products, func(p model.Product) float64 { return p.MarginPct }),
		AvgPrice:  Average(products, func(p model.Product) float64 { return p.PriceRp }),
	}
	if p, ok := MaxBy(products, func(p model.Product) float64 { return p.MarginPct }); ok {
		out.TopMargin = &p
	}
	if p, ok := MaxBy(products, func(p model.Product) float64 { return p.DailySalesPct }); ok {
		out.BestSeller = &p
	}
	for _, p := range products {
		switch p.Category {
		case "Coffee":
			out.CoffeeCount++
		case "Non-Coffee":
			out.NonCoffeeCount++
		}
	}
	price := func(c model.Competitor) float64 { return c.MilkCoffeePrice }
	if c, ok := MinBy(full.Competitors, price); ok {
		out.CheapestCompetitor = &c
	}
	if c, ok := MaxBy(full.Competitors, price); ok {
		out.MostExpensiveCompetitor = &c
	}
	return out
}

func Customers(full *model.Dataset, sel model.Selection) model.CustomerSummary {
	m := ZoneMultiplier(full.Locations, sel.Zone)
	details := full.CustomerDetails

	out := model.CustomerSummary{
		TargetPopulation: Scale(Sum(details, func(c model.CustomerDetail) float64 { return c.TargetCoffeeDrinkers }), m, sel.Zone),
		DailyDemand:      Scale(Sum(details, func(c model.CustomerDetail) float64 { return c.DailyCoffeeDemandCups }), m, sel.Zone),
		AvgIncome:        Average(details, func(c model.CustomerDetail) float64 { return c.AvgIncomeRp }),
	}
	if s, ok := MaxBy(full.Segments, func(s model.Segment) float64 { return s.EstimatedPop }); ok {
		out.LargestSegment = &s
	}
	if s, ok := MaxBy(full.Segments, func(s model.Segment) float64 { return s.LifetimeValue3M }); ok {
		out.HighestLTV = &s
	}

	hours := []string{}
	for _, d := range details {
		for _, h := range strings.Split(d.PeakHours, ", ") {
			if h != "" {
				hours = append(hours, h)
			}
		}
	}
	counts := GroupSum(hours, func(h string) string { return h }, func(string) float64 { return 1 })
	if top, ok := MaxBy(counts, func(v model.NamedValue) float64 { return v.Value }); ok {
		out.PeakHour = &top
	}
	return out
}

func Risks(full *model.Dataset, sel model.Selection) model.RiskSummary {
	risks := helper.FilterRisks(full.RiskDetails, sel.Zone)
	out := model.RiskSummary{Total: len(risks), Risks: risks}
	for _, r := range risks {
		switch {
		case r.Score >= 9:
			out.Critical++
		case r.Score >= 7:
			out.High++
		case r.Score >= 5:
			out.Medium++
		}
	}
	if top, ok := MaxBy(risks, func(r model.RiskDetail) float64 { return r.Score }); ok {
		out.TopRisk = &top
	}
	categories := GroupSum(risks, func(r model.RiskDetail) string { return r.Category }, func(model.RiskDetail) float64 { return 1 })
	if top, ok := MaxBy(categories, func(v model.NamedValue) float64 { return v.Value }); ok {
		out.TopCategory = &top
	}
	return out
}
