package helper

import (
	"makkanya_dashboard/constants"
	"makkanya_dashboard/model"
	"reflect"
	"testing"
)

func TestZoneCategories(t *testing.T) {
	tests := []struct {
		zone string
		all  bool
		want []string
	}{
		{"all", true, nil},
		{"", true, nil},
		{constants.ZONE_CBD, false, []string{constants.CATEGORY_OFFICE, constants.CATEGORY_MALL}},
		{constants.ZONE_TRANSPORT, false, []string{constants.CATEGORY_TRANSPORT}},
		{constants.ZONE_HEALTHCARE, false, []string{constants.CATEGORY_HEALTHCARE}},
		{constants.ZONE_MARKET, false, []string{constants.CATEGORY_MARKET}},
		{constants.ZONE_RESIDENTIAL, false, []string{constants.CATEGORY_RESIDENTIAL}},
		{"Bogor", false, []string{}},
	}
	for _, tt := range tests {
		got := ZoneCategories(tt.zone)
		if got.All != tt.all {
			t.Errorf("ZoneCategories(%q).All = %v, want %v", tt.zone, got.All, tt.all)
		}
		if !tt.all && !reflect.DeepEqual(got.Values, tt.want) {
			t.Errorf("ZoneCategories(%q) = %v, want %v", tt.zone, got.Values, tt.want)
		}
	}
}

func TestUnknownZoneMatchesNothing(t *testing.T) {
	set := ZoneCategories("Bogor")
	if set.Contains(constants.CATEGORY_OFFICE) {
		t.Error("unknown zone should not contain any category")
	}
	if ZoneHeatmapNames("Bogor").ContainsSubstring("Zona A - Puri Indah CBD") {
		t.Error("unknown zone should not match any heatmap row")
	}
}

func TestHeatmapTableKeptApart(t *testing.T) {
	// Healthcare locations are not CBD categories, yet the heatmap rows of
	// Zona A are used for it.
	if ZoneCategories(constants.ZONE_HEALTHCARE).Contains(constants.CATEGORY_OFFICE) {
		t.Error("healthcare categories should not include offices")
	}
	if !ZoneHeatmapNames(constants.ZONE_HEALTHCARE).ContainsSubstring("Zona A - Puri Indah CBD") {
		t.Error("healthcare heatmap should use Zona A")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	set := ZoneCategories(constants.ZONE_CBD)
	set.Values[0] = "changed"
	if ZoneCategories(constants.ZONE_CBD).Values[0] != constants.CATEGORY_OFFICE {
		t.Error("zone table was modified through a lookup result")
	}
}

func TestZoneSlugRoundTrip(t *testing.T) {
	for _, z := range Zones() {
		if got := ZoneFromSlug(z.Slug); got != z.Label {
			t.Errorf("ZoneFromSlug(%q) = %q, want %q", z.Slug, got, z.Label)
		}
		if got := ZoneFromSlug(z.Label); got != z.Label {
			t.Errorf("ZoneFromSlug(%q) = %q, want label unchanged", z.Label, got)
		}
	}
	if got := ZoneFromSlug("puri-indah-cbd"); got != constants.ZONE_CBD {
		t.Errorf("ZoneFromSlug(puri-indah-cbd) = %q", got)
	}
	if got := ZoneFromSlug(""); got != constants.ZONE_ALL {
		t.Errorf("empty zone = %q, want all", got)
	}
	if got := ZoneFromSlug("  Bogor "); got != "Bogor" {
		t.Errorf("unknown zone = %q, want Bogor", got)
	}
}

func TestZonesOrder(t *testing.T) {
	zones := Zones()
	if len(zones) != 6 {
		t.Fatalf("got %d zones, want 6", len(zones))
	}
	if zones[0].Label != constants.ZONE_ALL || zones[0].Short != "" {
		t.Errorf("first zone = %+v, want all with empty short label", zones[0])
	}
	if zones[1].Short != "Puri" {
		t.Errorf("CBD short label = %q, want Puri", zones[1].Short)
	}
}

func TestIsKnownZone(t *testing.T) {
	if !IsKnownZone(constants.ZONE_MARKET) {
		t.Error("Market should be known")
	}
	if IsKnownZone("market") {
		t.Error("zone labels are case sensitive")
	}
}

func TestLocationArea(t *testing.T) {
	tests := []struct {
		kelurahan string
		category  string
		want      string
	}{
		{"Kembangan Selatan", constants.CATEGORY_OFFICE, "Puri Indah CBD"},
		{"Kembangan Utara", constants.CATEGORY_MALL, "Puri Indah CBD"},
		{"Kembangan Utara", constants.CATEGORY_TRANSPORT, "Transport Hub"},
		{"Kembangan Selatan", constants.CATEGORY_HEALTHCARE, "Healthcare"},
		{"Kembangan Utara", constants.CATEGORY_MARKET, "Market Area"},
		{"Kembangan Selatan", constants.CATEGORY_RESIDENTIAL, "Residential"},
		{"Kembangan Baru", constants.CATEGORY_OFFICE, "Residential"},
		{"Kembangan Selatan", constants.CATEGORY_GOVERNMENT, "Area Kembangan Lainnya"},
		{"Meruya Selatan", constants.CATEGORY_UNIVERSITY, "Area Kembangan Lainnya"},
	}
	for _, tt := range tests {
		loc := model.Location{Kelurahan: tt.kelurahan, Category: tt.category}
		if got := LocationArea(loc); got != tt.want {
			t.Errorf("LocationArea(%s, %s) = %q, want %q", tt.kelurahan, tt.category, got, tt.want)
		}
	}
}
