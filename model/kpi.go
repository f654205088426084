package model

import "time"

// Estimate marks a value that was scaled by the zone multiplier instead of
// measured for the zone directly.
type Estimate struct {
	Value      float64 `json:"value"`
	Estimated  bool    `json:"estimated"`
	Multiplier float64 `json:"multiplier"`
}

type KPISet struct {
	Selection        Selection `json:"selection"`
	ZoneMultiplier   float64   `json:"zoneMultiplier"`
	TotalRevenue     Estimate  `json:"totalRevenue"`
	TotalProfit      Estimate  `json:"totalProfit"`
	TotalCups        Estimate  `json:"totalCups"`
	CupsPerDay       Estimate  `json:"cupsPerDay"`
	AvgAchievement   float64   `json:"avgAchievement"`
	OnTarget         bool      `json:"onTarget"`
	Drivers          Estimate  `json:"drivers"`
	TargetPopulation Estimate  `json:"targetPopulation"`
	MonthlyRevenue   Estimate  `json:"monthlyRevenue"`
	MonthlyProfit    Estimate  `json:"monthlyProfit"`
	ProfitMargin     float64   `json:"profitMargin"`
	RevenueTrend     float64   `json:"revenueTrend"`
	TrendUp          bool      `json:"trendUp"`
	Days             int       `json:"days"`
}

type ScoreBreakdown struct {
	Footfall float64 `json:"footfall"`
	Traffic  float64 `json:"traffic"`
	Category float64 `json:"category"`
	Priority float64 `json:"priority"`
}

type LocationScore struct {
	Index          int            `json:"index"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Category       string         `json:"category"`
	Kelurahan      string         `json:"kelurahan"`
	Area           string         `json:"area"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	TrafficLevel   string         `json:"trafficLevel"`
	Priority       int            `json:"priority"`
	Footfall       float64        `json:"footfall"`
	Demand         float64        `json:"demand"`
	Score          int            `json:"score"`
	Label          string         `json:"label"`
	IsHubCandidate bool           `json:"isHubCandidate"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Reasons        []string       `json:"reasons"`
}

type LocationStats struct {
	Count              int     `json:"count"`
	TotalFootfall      float64 `json:"totalFootfall"`
	TotalDemand        float64 `json:"totalDemand"`
	AvgScore           int     `json:"avgScore"`
	OfficeLocations    int     `json:"officeLocations"`
	MallLocations      int     `json:"mallLocations"`
	TransportLocations int     `json:"transportLocations"`
}

type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type OverviewSummary struct {
	TotalRevenue   Estimate `json:"totalRevenue"`
	TotalProfit    Estimate `json:"totalProfit"`
	TotalCups      Estimate `json:"totalCups"`
	AvgAchievement float64  `json:"avgAchievement"`
	ProfitMargin   float64  `json:"profitMargin"`
	RevenueTrend   float64  `json:"revenueTrend"`
	TrendUp        bool     `json:"trendUp"`
}

type PerformanceSummary struct {
	ShiftTotals       []NamedValue      `json:"shiftTotals"`
	BestShift         *NamedValue       `json:"bestShift,omitempty"`
	AvgMonthlyRevenue Estimate          `json:"avgMonthlyRevenue"`
	AvgMonthlyProfit  Estimate          `json:"avgMonthlyProfit"`
	Investment        float64           `json:"investment"`
	AnnualProfit      Estimate          `json:"annualProfit"`
	ROI               float64           `json:"roi"`
	Weekdays          []WeekdayProfile  `json:"weekdays"`
	ShiftByDay        []ShiftDayProfile `json:"shiftByDay"`
}

type HeatmapSummary struct {
	PeakHour          *int         `json:"peakHour,omitempty"`
	PeakDemand        float64      `json:"peakDemand"`
	TotalFootfall     float64      `json:"totalFootfall"`
	VeryHighTraffic   int          `json:"veryHighTraffic"`
	HighTraffic       int          `json:"highTraffic"`
	HubCandidates     []string     `json:"hubCandidates"`
	TopLocations      []NamedValue `json:"topLocations"`
	CustomerDemand    Estimate     `json:"customerDemand"`
	TotalDriverNeeded float64      `json:"totalDriverNeeded"`
}

type ProductSummary struct {
	TopMargin               *Product    `json:"topMargin,omitempty"`
	BestSeller              *Product    `json:"bestSeller,omitempty"`
	AvgMargin               float64     `json:"avgMargin"`
	AvgPrice                float64     `json:"avgPrice"`
	CoffeeCount             int         `json:"coffeeCount"`
	NonCoffeeCount          int         `json:"nonCoffeeCount"`
	CheapestCompetitor      *Competitor `json:"cheapestCompetitor,omitempty"`
	MostExpensiveCompetitor *Competitor `json:"mostExpensiveCompetitor,omitempty"`
}

type CustomerSummary struct {
	LargestSegment   *Segment    `json:"largestSegment,omitempty"`
	HighestLTV       *Segment    `json:"highestLtv,omitempty"`
	TargetPopulation Estimate    `json:"targetPopulation"`
	DailyDemand      Estimate    `json:"dailyDemand"`
	AvgIncome        float64     `json:"avgIncome"`
	PeakHour         *NamedValue `json:"peakHour,omitempty"`
}

type RiskSummary struct {
	Total       int          `json:"total"`
	Critical    int          `json:"critical"`
	High        int          `json:"high"`
	Medium      int          `json:"medium"`
	TopRisk     *RiskDetail  `json:"topRisk,omitempty"`
	TopCategory *NamedValue  `json:"topCategory,omitempty"`
	Risks       []RiskDetail `json:"risks"`
}

type ZoneStat struct {
	Name            string  `json:"name"`
	Drivers         int     `json:"drivers"`
	Locations       int     `json:"locations"`
	TargetPerDriver float64 `json:"targetPerDriver"`
	Price           float64 `json:"price"`
	Radius          float64 `json:"radius"`
}

type ShiftShare struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type ZonePerformance struct {
	Zones []ZoneStat   `json:"zones"`
	Shift []ShiftShare `json:"shiftDistribution"`
}

type HeatmapZone struct {
	Zone        string        `json:"zone"`
	Cells       []HeatmapCell `json:"cells"`
	PeakLabel   string        `json:"peakLabel"`
	PeakIndex   float64       `json:"peakIndex"`
	TotalDemand float64       `json:"totalDemand"`
}

type MonthlyTotals struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalProfit      float64 `json:"totalProfit"`
	TotalCups        float64 `json:"totalCups"`
	FinalAccumulated float64 `json:"finalAccumulated"`
	AvgMargin        float64 `json:"avgMargin"`
}

type ZoneOverviewTotals struct {
	TotalPopulation float64 `json:"totalPopulation"`
	TotalFootfall   float64 `json:"totalFootfall"`
	TotalDemand     float64 `json:"totalDemand"`
	AvgRadius       float64 `json:"avgRadius"`
}

type WeekdayProfile struct {
	Day            string  `json:"day"`
	Count          int     `json:"count"`
	TotalCups      float64 `json:"totalCups"`
	AvgCups        float64 `json:"avgCups"`
	AvgAchievement float64 `json:"avgAchievement"`
}

type ShiftDayProfile struct {
	Day     string  `json:"day"`
	Pagi    float64 `json:"pagi"`
	Siang   float64 `json:"siang"`
	Sore    float64 `json:"sore"`
	Total   float64 `json:"total"`
	Revenue float64 `json:"revenue"`
}

type ZoneOption struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
	Short string `json:"short"`
}

// LoadReport describes one dataset load.
type LoadReport struct {
	Version  string         `json:"version"`
	Source   string         `json:"source"`
	LoadedAt time.Time      `json:"loadedAt"`
	Counts   map[string]int `json:"counts"`
	Dropped  map[string]int `json:"dropped"`
	Warnings []string       `json:"warnings"`
}

type DatasetStatus struct {
	Loaded bool        `json:"loaded"`
	Event  string      `json:"event"`
	Report *LoadReport `json:"report,omitempty"`
	Error  string      `json:"error,omitempty"`
	At     time.Time   `json:"at"`
}
