package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/model"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrNoDataset = errors.New("dataset is not loaded")

const (
	maxDatasetBytes = 64 << 20
	SampleSource    = "sample"
)

var (
	validate   = validator.New()
	httpClient = &http.Client{Timeout: 30 * time.Second}
)

var knownCategories = map[string]bool{
	constants.CATEGORY_OFFICE:      true,
	constants.CATEGORY_MALL:        true,
	constants.CATEGORY_UNIVERSITY:  true,
	constants.CATEGORY_TRANSPORT:   true,
	constants.CATEGORY_HEALTHCARE:  true,
	constants.CATEGORY_MARKET:      true,
	constants.CATEGORY_RECREATION:  true,
	constants.CATEGORY_RESIDENTIAL: true,
	constants.CATEGORY_GOVERNMENT:  true,
}

// ReadSource fetches the raw document from an http(s) URL or a file path.
func ReadSource(ctx context.Context, source string) ([]byte, error) {
	if source == "" {
		return nil, errors.New("empty data source")
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
		}
		return io.ReadAll(io.LimitReader(resp.Body, maxDatasetBytes))
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxDatasetBytes))
}

// Decode parses a document and validates it record by record.
func Decode(raw []byte, source string) (*model.Dataset, *model.LoadReport, error) {
	var ds model.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, nil, fmt.Errorf("parse dataset: %w", err)
	}
	report := Sanitize(&ds, source)
	return &ds, report, nil
}

// LoadDataset reads and decodes the document behind source. The source
// "sample" loads the built-in dataset.
func LoadDataset(ctx context.Context, source string) (*model.Dataset, *model.LoadReport, error) {
	if source == SampleSource {
		ds, report := LoadSample()
		return ds, report, nil
	}
	raw, err := ReadSource(ctx, source)
	if err != nil {
		return nil, nil, err
	}
	return Decode(raw, source)
}

func filterValid[T any](name string, rows []T, report *model.LoadReport) []T {
	out := make([]T, 0, len(rows))
	for i, r := range rows {
		if err := validate.Struct(r); err != nil {
			report.Dropped[name]++
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s[%d] dropped: %v", name, i, err))
			continue
		}
		out = append(out, r)
	}
	report.Counts[name] = len(out)
	return out
}

// Sanitize drops records that fail their struct tags and reports what it
// kept. Every collection is left non-nil.
func Sanitize(ds *model.Dataset, source string) *model.LoadReport {
	report := &model.LoadReport{
		Version:  uuid.NewString(),
		Source:   source,
		LoadedAt: time.Now(),
		Counts:   map[string]int{},
		Dropped:  map[string]int{},
		Warnings: []string{},
	}

	ds.Demographics = filterValid("Demografi Kembangan", ds.Demographics, report)
	ds.Locations = filterValid("Lokasi Strategis GPS", ds.Locations, report)
	ds.DriverZones = filterValid("Alokasi Driver Zoning", ds.DriverZones, report)
	ds.DailyProjection = filterValid("Proyeksi 30 Hari", ds.DailyProjection, report)
	ds.Products = filterValid("Portfolio Produk", ds.Products, report)
	ds.Competitors = filterValid("Analisis Kompetitor", ds.Competitors, report)
	ds.Segments = filterValid("Customer Segmentation", ds.Segments, report)
	ds.Investments = filterValid("Investment Breakdown", ds.Investments, report)
	ds.ShiftOperations = filterValid("Operasional per Shift", ds.ShiftOperations, report)
	ds.Heatmap = filterValid("Heatmap Demand 24 Jam", ds.Heatmap, report)
	ds.MonthlyKPI = filterValid("KPI Bulanan 12 Bulan", ds.MonthlyKPI, report)
	ds.Risks = filterValid("Risk Register", ds.Risks, report)
	ds.BreakEven = filterValid("Break Even Analysis", ds.BreakEven, report)
	ds.Sensitivity = filterValid("Sensitivity Analysis", ds.Sensitivity, report)
	ds.Staffing = filterValid("Staffing dan Gaji", ds.Staffing, report)
	ds.MasterSummary = filterValid("Master Summary", ds.MasterSummary, report)
	ds.CustomerDetails = filterValid("Customer Detailed Real", ds.CustomerDetails, report)
	ds.RiskDetails = filterValid("Risk Register Detailed", ds.RiskDetails, report)
	ds.Climate = filterValid("Climate Data BMKG", ds.Climate, report)
	ds.TrafficPatterns = filterValid("Traffic Pattern Real", ds.TrafficPatterns, report)
	ds.Regulations = filterValid("Regulatory Compliance", ds.Regulations, report)
	ds.ZoneRadius = filterValid("Zona Radius Data", ds.ZoneRadius, report)
	ds.ZoneDistances = filterValid("Zona Distance Matrix", ds.ZoneDistances, report)

	if n := len(ds.DailyProjection); n != constants.EXPECTED_DAILY_RECORD {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("Proyeksi 30 Hari has %d records, expected %d", n, constants.EXPECTED_DAILY_RECORD))
	}
	if n := len(ds.MonthlyKPI); n != constants.EXPECTED_MONTH_RECORD {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("KPI Bulanan 12 Bulan has %d records, expected %d", n, constants.EXPECTED_MONTH_RECORD))
	}
	for i := 1; i < len(ds.DailyProjection); i++ {
		if ds.DailyProjection[i].Date < ds.DailyProjection[i-1].Date {
			report.Warnings = append(report.Warnings, "Proyeksi 30 Hari is not in date order")
			break
		}
	}
	for _, loc := range ds.Locations {
		if !knownCategories[loc.Category] {
			report.Warnings = append(report.Warnings, fmt.Sprintf("location %q has unknown category %q", loc.Name, loc.Category))
		}
	}

	for _, w := range report.Warnings {
		log.Printf("[DATASET] %s", w)
	}
	return report
}
