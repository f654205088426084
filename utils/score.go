package utils

import (
	"fmt"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/model"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

var trafficScores = map[string]float64{
	"Very High":   25,
	"High":        20,
	"Medium-High": 15,
	"Medium":      10,
}

var categoryWeights = map[string]float64{
	constants.CATEGORY_OFFICE:      25,
	constants.CATEGORY_MALL:        22,
	constants.CATEGORY_UNIVERSITY:  20,
	constants.CATEGORY_TRANSPORT:   18,
	constants.CATEGORY_HEALTHCARE:  15,
	constants.CATEGORY_MARKET:      14,
	constants.CATEGORY_RECREATION:  12,
	constants.CATEGORY_RESIDENTIAL: 10,
	constants.CATEGORY_GOVERNMENT:  8,
}

var demandMultipliers = map[string]float64{
	constants.CATEGORY_OFFICE:      0.18,
	constants.CATEGORY_UNIVERSITY:  0.16,
	constants.CATEGORY_MALL:        0.12,
	constants.CATEGORY_TRANSPORT:   0.14,
	constants.CATEGORY_HEALTHCARE:  0.10,
	constants.CATEGORY_MARKET:      0.08,
	constants.CATEGORY_RECREATION:  0.06,
	constants.CATEGORY_RESIDENTIAL: 0.05,
}

var hubCategories = map[string]bool{
	constants.CATEGORY_OFFICE:     true,
	constants.CATEGORY_MALL:       true,
	constants.CATEGORY_UNIVERSITY: true,
	constants.CATEGORY_TRANSPORT:  true,
}

var categoryReasons = map[string]string{
	constants.CATEGORY_OFFICE:     "Area perkantoran - target karyawan",
	constants.CATEGORY_MALL:       "Area mall - footfall konsisten",
	constants.CATEGORY_UNIVERSITY: "Area kampus - target mahasiswa",
	constants.CATEGORY_TRANSPORT:  "Transportasi publik - captive market",
	constants.CATEGORY_HEALTHCARE: "Fasilitas kesehatan - visitor tinggi",
	constants.CATEGORY_MARKET:     "Area pasar - traffic lokal",
}

func FootfallScore(footfall float64) float64 {
	score := math.Min(footfall/constants.FOOTFALL_SCORE_CAP*40, 40)
	return math.Max(score, 0)
}

func TrafficScore(level string) float64 {
	if s, ok := trafficScores[level]; ok {
		return s
	}
	return 5
}

func CategoryWeight(category string) float64 {
	if w, ok := categoryWeights[category]; ok {
		return w
	}
	return 5
}

// PriorityBonus gives 10 points to priority 1 down to 2 points for 5 and
// above. Priorities below 1 count as 1, so a missing priority of 0 scores
// 10 instead of the 12 that (6 - min(p,5)) * 2 would give.
func PriorityBonus(priority int) float64 {
	p := priority
	if p < 1 {
		p = 1
	}
	if p > 5 {
		p = 5
	}
	return float64((6 - p) * 2)
}

func DemandMultiplier(category string) float64 {
	if m, ok := demandMultipliers[category]; ok {
		return m
	}
	return 0.04
}

func IsHubCandidate(score int, category string) bool {
	return score >= constants.HUB_MIN_SCORE && hubCategories[category]
}

func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Sangat Potensial"
	case score >= 65:
		return "Potensial"
	case score >= 50:
		return "Cukup"
	case score >= 35:
		return "Rendah"
	default:
		return "Sangat Rendah"
	}
}

// LocationPotential scores one location on a 0 to 100 scale.
func LocationPotential(loc model.Location) (int, model.ScoreBreakdown) {
	b := model.ScoreBreakdown{
		Footfall: FootfallScore(loc.FootfallPerDay),
		Traffic:  TrafficScore(loc.TrafficLevel),
		Category: CategoryWeight(loc.Category),
		Priority: PriorityBonus(loc.TargetPriority),
	}
	total := math.Round(b.Footfall + b.Traffic + b.Category + b.Priority)
	total = math.Max(0, math.Min(total, 100))
	return int(total), b
}

func locationReasons(loc model.Location) []string {
	reasons := []string{}
	footfall := loc.FootfallPerDay
	switch {
	case footfall >= 15000:
		reasons = append(reasons, fmt.Sprintf("Footfall sangat tinggi (%s/hari)", FormatThousands(footfall)))
	case footfall >= 10000:
		reasons = append(reasons, fmt.Sprintf("Footfall tinggi (%s/hari)", FormatThousands(footfall)))
	case footfall >= 5000:
		reasons = append(reasons, fmt.Sprintf("Footfall moderat (%s/hari)", FormatThousands(footfall)))
	}
	switch loc.TrafficLevel {
	case "Very High":
		reasons = append(reasons, "Traffic sangat padat - visibility tinggi")
	case "High":
		reasons = append(reasons, "Traffic padat - akses mudah")
	case "Medium-High":
		reasons = append(reasons, "Traffic cukup padat")
	}
	if r, ok := categoryReasons[loc.Category]; ok {
		reasons = append(reasons, r)
	}
	return reasons
}

// ScoreLocation builds the full score card for the location at index.
func ScoreLocation(index int, loc model.Location) model.LocationScore {
	score, breakdown := LocationPotential(loc)
	return model.LocationScore{
		Index:          index,
		Name:           loc.Name,
		Slug:           slug.Make(loc.Name),
		Category:       loc.Category,
		Kelurahan:      loc.Kelurahan,
		Area:           helper.LocationArea(loc),
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		TrafficLevel:   loc.TrafficLevel,
		Priority:       loc.TargetPriority,
		Footfall:       loc.FootfallPerDay,
		Demand:         math.Round(loc.FootfallPerDay * DemandMultiplier(loc.Category)),
		Score:          score,
		Label:          ScoreLabel(score),
		IsHubCandidate: IsHubCandidate(score, loc.Category),
		Breakdown:      breakdown,
		Reasons:        locationReasons(loc),
	}
}

// ScoreLocations scores every location and orders them by score, highest
// first. Index refers to the position in the given slice.
func ScoreLocations(locations []model.Location) []model.LocationScore {
	out := make([]model.LocationScore, 0, len(locations))
	for i, loc := range locations {
		out = append(out, ScoreLocation(i, loc))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// FilterScores applies one of the location list filters. Unknown or empty
// filters return every score.
func FilterScores(scores []model.LocationScore, filter string) []model.LocationScore {
	keep := func(model.LocationScore) bool { return true }
	switch filter {
	case "hub":
		keep = func(s model.LocationScore) bool { return s.IsHubCandidate }
	case "high-traffic":
		keep = func(s model.LocationScore) bool { return s.Score >= constants.HIGH_TRAFFIC_SCORE }
	case "office":
		keep = func(s model.LocationScore) bool { return s.Category == constants.CATEGORY_OFFICE }
	case "mall":
		keep = func(s model.LocationScore) bool { return s.Category == constants.CATEGORY_MALL }
	case "transport":
		keep = func(s model.LocationScore) bool { return s.Category == constants.CATEGORY_TRANSPORT }
	}
	out := make([]model.LocationScore, 0, len(scores))
	for _, s := range scores {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func LocationStatistics(scores []model.LocationScore) model.LocationStats {
	stats := model.LocationStats{Count: len(scores)}
	for _, s := range scores {
		stats.TotalFootfall += s.Footfall
		stats.TotalDemand += s.Demand
		switch s.Category {
		case constants.CATEGORY_OFFICE:
			stats.OfficeLocations++
		case constants.CATEGORY_MALL:
			stats.MallLocations++
		case constants.CATEGORY_TRANSPORT:
			stats.TransportLocations++
		}
	}
	avg := Average(scores, func(s model.LocationScore) float64 { return float64(s.Score) })
	stats.AvgScore = int(math.Round(avg))
	return stats
}

// FormatThousands writes n with dot thousand separators, as in 15.000.
func FormatThousands(n float64) string {
	neg := n < 0
	digits := strconv.FormatInt(int64(math.Round(math.Abs(n))), 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
