package helper

import (
	"makkanya_dashboard/constants"
	"makkanya_dashboard/model"
	"strings"

	"github.com/gosimple/slug"
)

// Location categories per zone.
var zoneCategoryTable = map[string][]string{
	constants.ZONE_CBD:         {constants.CATEGORY_OFFICE, constants.CATEGORY_MALL},
	constants.ZONE_TRANSPORT:   {constants.CATEGORY_TRANSPORT},
	constants.ZONE_HEALTHCARE:  {constants.CATEGORY_HEALTHCARE},
	constants.ZONE_MARKET:      {constants.CATEGORY_MARKET},
	constants.ZONE_RESIDENTIAL: {constants.CATEGORY_RESIDENTIAL},
}

// Heatmap zone-name substrings per zone. Kept apart from zoneCategoryTable:
// Healthcare and Market point at Zona A here even though their locations
// are not CBD categories.
var zoneHeatmapTable = map[string][]string{
	constants.ZONE_CBD:         {"Zona A - Puri Indah CBD", "Zona C - Mall & Retail"},
	constants.ZONE_TRANSPORT:   {"Zona E - Transport"},
	constants.ZONE_HEALTHCARE:  {"Zona A - Puri Indah CBD"},
	constants.ZONE_MARKET:      {"Zona A - Puri Indah CBD"},
	constants.ZONE_RESIDENTIAL: {"Zona D - Residential"},
}

// Risk register categories per zone.
var zoneRiskTable = map[string][]string{
	constants.ZONE_CBD:         {"Kompetisi", "Operasional", "SDM"},
	constants.ZONE_TRANSPORT:   {"Operasional", "Regulasi", "Cuaca"},
	constants.ZONE_HEALTHCARE:  {"Operasional", "SDM"},
	constants.ZONE_MARKET:      {"Kompetisi", "Operasional"},
	constants.ZONE_RESIDENTIAL: {"Operasional", "Permintaan"},
}

var zoneOrder = []string{
	constants.ZONE_ALL,
	constants.ZONE_CBD,
	constants.ZONE_TRANSPORT,
	constants.ZONE_HEALTHCARE,
	constants.ZONE_MARKET,
	constants.ZONE_RESIDENTIAL,
}

// ZoneSet is the result of a zone lookup. All means no filtering; otherwise
// Values holds the accepted keys and may be empty for an unknown zone.
type ZoneSet struct {
	All    bool
	Values []string
}

func (z ZoneSet) Contains(v string) bool {
	if z.All {
		return true
	}
	for _, item := range z.Values {
		if item == v {
			return true
		}
	}
	return false
}

// ContainsSubstring reports whether v contains any of the set's values.
func (z ZoneSet) ContainsSubstring(v string) bool {
	if z.All {
		return true
	}
	for _, item := range z.Values {
		if strings.Contains(v, item) {
			return true
		}
	}
	return false
}

func lookupZone(table map[string][]string, zone string) ZoneSet {
	if isAllZone(zone) {
		return ZoneSet{All: true}
	}
	values, ok := table[zone]
	if !ok {
		return ZoneSet{Values: []string{}}
	}
	out := make([]string, len(values))
	copy(out, values)
	return ZoneSet{Values: out}
}

func ZoneCategories(zone string) ZoneSet {
	return lookupZone(zoneCategoryTable, zone)
}

func ZoneHeatmapNames(zone string) ZoneSet {
	return lookupZone(zoneHeatmapTable, zone)
}

func ZoneRiskCategories(zone string) ZoneSet {
	return lookupZone(zoneRiskTable, zone)
}

func isAllZone(zone string) bool {
	return zone == "" || zone == constants.ZONE_ALL
}

// IsKnownZone reports whether zone is one of the selectable labels.
func IsKnownZone(zone string) bool {
	for _, z := range zoneOrder {
		if z == zone {
			return true
		}
	}
	return false
}

func ZoneSlug(zone string) string {
	return slug.Make(zone)
}

// ZoneFromSlug resolves a label or its slug to the canonical label. Unknown
// input is returned unchanged so it keeps matching nothing downstream.
func ZoneFromSlug(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return constants.ZONE_ALL
	}
	for _, z := range zoneOrder {
		if z == trimmed || slug.Make(z) == slug.Make(trimmed) {
			return z
		}
	}
	return trimmed
}

// Zones lists the zone selector options in display order.
func Zones() []model.ZoneOption {
	out := make([]model.ZoneOption, 0, len(zoneOrder))
	for _, z := range zoneOrder {
		out = append(out, model.ZoneOption{
			Label: z,
			Slug:  slug.Make(z),
			Short: ZoneShortLabel(z),
		})
	}
	return out
}

// ZoneShortLabel is the first word of the zone label, empty for all.
func ZoneShortLabel(zone string) string {
	if isAllZone(zone) {
		return ""
	}
	return strings.Split(zone, " ")[0]
}

// LocationArea names the area a location belongs to, using its kelurahan
// first and its category second.
func LocationArea(loc model.Location) string {
	kelurahan := loc.Kelurahan
	switch {
	case strings.Contains(kelurahan, "Kembangan Selatan"), strings.Contains(kelurahan, "Kembangan Utara"):
		switch loc.Category {
		case constants.CATEGORY_OFFICE, constants.CATEGORY_MALL:
			return "Puri Indah CBD"
		case constants.CATEGORY_TRANSPORT:
			return "Transport Hub"
		case constants.CATEGORY_HEALTHCARE:
			return "Healthcare"
		case constants.CATEGORY_MARKET:
			return "Market Area"
		case constants.CATEGORY_RESIDENTIAL:
			return "Residential"
		}
	case strings.Contains(kelurahan, "Kembangan Baru"):
		return "Residential"
	}
	return "Area Kembangan Lainnya"
}
