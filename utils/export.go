package utils

import (
	"fmt"
	"io"
	"makkanya_dashboard/constants"
	"makkanya_dashboard/model"
	"time"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Ringkasan"

// ExportSheet describes one data sheet: its header row and how each record
// of the backing collection becomes a row.
type ExportSheet struct {
	Name    string
	Headers []string
	Rows    func(ds *model.Dataset) [][]any
	Count   func(ds *model.Dataset) int
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Ya"
	}
	return "Tidak"
}

// ExportSheets lists the data sheets in workbook order, after the summary.
var ExportSheets = []ExportSheet{
	{
		Name: "Data Lokasi",
		Headers: []string{"Nama Lokasi", "Kategori", "Kelurahan", "Latitude", "Longitude",
			"Traffic Level", "Target Priority", "Footfall per Hari", "Sumber Data"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.Locations))
			for _, l := range ds.Locations {
				rows = append(rows, []any{l.Name, l.Category, l.Kelurahan, l.Latitude, l.Longitude,
					l.TrafficLevel, l.TargetPriority, l.FootfallPerDay, l.CoordinateSource})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.Locations) },
	},
	{
		Name: "Data Zona & Radius",
		Headers: []string{"Zona ID", "Nama Zona", "Lokasi HUB", "Radius (KM)", "Waktu Motor (Menit)",
			"Waktu Mobil (Menit)", "Populasi", "Footfall Harian", "Demand Power"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.ZoneRadius))
			for _, z := range ds.ZoneRadius {
				rows = append(rows, []any{z.ID, z.Name, z.HubLocation, z.RadiusKm, z.RadiusMinutesBike,
					z.RadiusMinutesCar, z.TotalPopulation, z.DailyFootfall, z.DemandPower})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.ZoneRadius) },
	},
	{
		Name:    "Jarak Antar Zona",
		Headers: []string{"Dari Zona", "Ke Zona", "Jarak (KM)", "Waktu Motor (Menit)", "Waktu Mobil (Menit)", "Kondisi Jalan"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.ZoneDistances))
			for _, d := range ds.ZoneDistances {
				rows = append(rows, []any{d.From, d.To, d.DistanceKm, d.MinutesBike, d.MinutesCar, d.RoadCondition})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.ZoneDistances) },
	},
	{
		Name: "Customer Segment",
		Headers: []string{"Segment ID", "Nama Segment", "Sub Area", "Populasi Total", "Target Coffee Drinkers",
			"Usia Rata-rata", "Income per Bulan", "Peak Hours", "Traffic Level",
			"Footfall Harian", "Demand Harian", "Spending Habit", "Loyalty Potential"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.CustomerDetails))
			for _, c := range ds.CustomerDetails {
				rows = append(rows, []any{c.SegmentID, c.MainSegment, c.SubArea, c.TotalPopulation, c.TargetCoffeeDrinkers,
					c.AvgAge, c.AvgIncomeRp, c.PeakHours, c.TrafficLevel,
					c.AvgDailyFootfall, c.DailyCoffeeDemandCups, orDash(c.SpendingHabit), orDash(c.LoyaltyPotential)})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.CustomerDetails) },
	},
	{
		Name: "Data Produk",
		Headers: []string{"SKU Code", "Nama Produk", "Deskripsi", "Kategori", "Sub Kategori",
			"Harga Jual (Rp)", "HPP per Cup (Rp)", "Margin (%)", "Estimasi Daily Sales (%)",
			"Keuntungan per Cup (Rp)", "Waktu Preparasi (Menit)", "USP"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.Products))
			for _, p := range ds.Products {
				rows = append(rows, []any{p.SKU, p.Name, p.Description, p.Category, p.SubCategory,
					p.PriceRp, p.COGSPerCupRp, p.MarginPct, p.DailySalesPct,
					p.ProfitPerCup, p.PrepMinutes, p.UniqueSellingPro})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.Products) },
	},
	{
		Name: "Analisis Kompetitor",
		Headers: []string{"Brand", "Model Bisnis", "Harga Kopi Susu (Rp)", "Jumlah Outlet Kembangan",
			"Lokasi Presence", "Target Segment", "Strength", "Weakness", "Threat Level"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.Competitors))
			for _, k := range ds.Competitors {
				rows = append(rows, []any{k.Brand, k.BusinessModel, k.MilkCoffeePrice, k.OutletsKembangan,
					k.Presence, k.TargetSegment, k.Strength, k.Weakness, k.ThreatLevel})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.Competitors) },
	},
	{
		Name: "Proyeksi 30 Hari",
		Headers: []string{"Tanggal", "Hari", "Is Weekend", "Target Cup Total", "Actual Cup Total", "Achievement Rate (%)",
			"Active Driver", "Cup per Driver Avg", "Revenue (Rp)", "COGS (Rp)", "Operational Cost (Rp)",
			"Fixed Cost (Rp)", "Net Profit (Rp)", "Accumulated Profit (Rp)"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.DailyProjection))
			for _, p := range ds.DailyProjection {
				rows = append(rows, []any{p.Date, p.Day, yesNo(p.IsWeekend), p.TargetCups, p.ActualCups, p.AchievementRatePct,
					p.ActiveDrivers, p.CupsPerDriverAvg, p.RevenueRp, p.COGSRp, p.OperationalCostRp,
					p.FixedCostRp, p.NetProfitRp, p.AccumulatedProfit})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.DailyProjection) },
	},
	{
		Name: "KPI Bulanan 12 Bulan",
		Headers: []string{"Bulan", "Bulan Ke", "Hari Dalam Bulan", "Avg Cup per Hari", "Total Cup Bulan",
			"Avg Harga per Cup", "Revenue (Rp)", "COGS (Rp)", "Operational Cost (Rp)",
			"Marketing Cost (Rp)", "Fixed Cost (Rp)", "Net Profit (Rp)", "Profit Margin (%)",
			"Accumulated Profit (Rp)", "Driver Count"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.MonthlyKPI))
			for _, k := range ds.MonthlyKPI {
				rows = append(rows, []any{k.Month, k.MonthIndex, k.DaysInMonth, k.AvgCupsPerDay, k.TotalCups,
					k.AvgPricePerCup, k.RevenueRp, k.COGSRp, k.OperationalCostRp,
					k.MarketingCostRp, k.FixedCostRp, k.NetProfitRp, k.ProfitMarginPct,
					k.AccumulatedProfit, k.DriverCount})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.MonthlyKPI) },
	},
	{
		Name:    "Heatmap Demand 24 Jam",
		Headers: []string{"Jam", "Zona", "Demand Index", "Recommended Driver"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.Heatmap))
			for _, h := range ds.Heatmap {
				rows = append(rows, []any{h.Hour, h.Zone, h.DemandIndex, h.RecommendedDriver})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.Heatmap) },
	},
	{
		Name: "Data Risiko",
		Headers: []string{"ID Risiko", "Kategori Risiko", "Deskripsi Risiko", "Probability", "Impact",
			"Risk Score", "Mitigation Strategy", "Contingency Plan", "Early Warning Indicators",
			"Owner", "Status", "Sumber Link"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.RiskDetails))
			for _, r := range ds.RiskDetails {
				rows = append(rows, []any{r.ID, r.Category, r.Description, r.Probability, r.Impact,
					r.Score, r.Mitigation, r.Contingency, r.EarlyWarnings,
					r.Owner, r.Status, r.SourceLink})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.RiskDetails) },
	},
	{
		Name:    "Investment Breakdown",
		Headers: []string{"Kategori", "Item", "Jumlah Unit", "Harga per Unit (Rp)", "Total Biaya (Rp)"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.Investments))
			for _, i := range ds.Investments {
				rows = append(rows, []any{i.Category, i.Item, i.Units, i.UnitPriceRp, i.TotalCostRp})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.Investments) },
	},
	{
		Name:    "Break Even Analysis",
		Headers: []string{"Metrik", "Nilai", "Satuan"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.BreakEven))
			for _, b := range ds.BreakEven {
				rows = append(rows, []any{b.Metric, b.Value, b.Unit})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.BreakEven) },
	},
	{
		Name: "Demografi Kembangan",
		Headers: []string{"Wilayah", "Populasi 2024", "Kepadatan (jiwa/km2)", "Luas (km2)",
			"Usia Produktif 15-59 (%)", "Kelas Ekonomi", "Sumber Data", "Sumber Link"},
		Rows: func(ds *model.Dataset) [][]any {
			rows := make([][]any, 0, len(ds.Demographics))
			for _, d := range ds.Demographics {
				rows = append(rows, []any{d.Region, d.Population2024, d.DensityPerKm2, d.AreaKm2,
					d.ProductiveAgePct, d.EconomicClass, d.Source, d.SourceLink})
			}
			return rows
		},
		Count: func(ds *model.Dataset) int { return len(ds.Demographics) },
	},
}

// SheetNames returns every sheet of the workbook in order.
func SheetNames() []string {
	names := []string{summarySheet}
	for _, s := range ExportSheets {
		names = append(names, s.Name)
	}
	return names
}

func ExportFileName(now time.Time) string {
	return constants.EXPORT_FILE_PREFIX + ExportDateStamp(now) + ".xlsx"
}

// summaryRows is the Ringkasan sheet: totals over the unfiltered dataset
// followed by record counts.
func summaryRows(ds *model.Dataset, now time.Time) [][]any {
	population := Sum(ds.CustomerDetails, func(c model.CustomerDetail) float64 { return c.TargetCoffeeDrinkers })
	footfall := Sum(ds.Locations, func(l model.Location) float64 { return l.FootfallPerDay })
	demand := Sum(ds.CustomerDetails, func(c model.CustomerDetail) float64 { return c.DailyCoffeeDemandCups })
	revenue := Sum(ds.DailyProjection, dailyRevenue)
	profit := Sum(ds.DailyProjection, dailyProfit)
	cups := Sum(ds.DailyProjection, dailyCups)
	achievement := Average(ds.DailyProjection, dailyAchievement)

	return [][]any{
		{"RINGKASAN DASHBOARD MAKKANYA EXPRESS"},
		{""},
		{"Tanggal Export", now.Format("2/1/2006")},
		{"Waktu Export", now.Format("15.04.05")},
		{""},
		{"METRIK UTAMA"},
		{"Total Populasi Target", FormatThousands(population)},
		{"Total Footfall Harian", FormatThousands(footfall)},
		{"Total Demand Harian", FormatThousands(demand)},
		{"Total Revenue (30 Hari)", "Rp " + FormatThousands(revenue)},
		{"Total Net Profit (30 Hari)", "Rp " + FormatThousands(profit)},
		{"Total Cup Terjual (30 Hari)", FormatThousands(cups)},
		{"Avg Achievement Rate", fmt.Sprintf("%.1f%%", achievement)},
		{""},
		{"JUMLAH DATA"},
		{"Jumlah Lokasi", len(ds.Locations)},
		{"Jumlah Produk", len(ds.Products)},
		{"Jumlah Segment Customer", len(ds.Segments)},
		{"Jumlah Zona", len(ds.ZoneRadius)},
		{"Jumlah Risiko", len(ds.RiskDetails)},
		{"Jumlah Data Proyeksi", len(ds.DailyProjection)},
		{"Jumlah Data KPI Bulanan", len(ds.MonthlyKPI)},
	}
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// BuildWorkbook writes the whole dataset, ignoring any selection, into a new
// workbook. The caller owns the returned file and must close it.
func BuildWorkbook(ds *model.Dataset, now time.Time) (*excelize.File, error) {
	return buildWorkbook(ds, now, ExportSheets)
}

func buildWorkbook(ds *model.Dataset, now time.Time, sheets []ExportSheet) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Makkanya Express - Data Export",
		Subject: "Dashboard Data Export",
		Creator: "Makkanya Express Analytics",
		Created: now.Format(time.RFC3339),
	}); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRows(f, summarySheet, summaryRows(ds, now)); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 30); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 24); err != nil {
		f.Close()
		return nil, err
	}

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", sheet.Name, err)
		}
		header := make([]any, len(sheet.Headers))
		for i, h := range sheet.Headers {
			header[i] = h
		}
		rows := append([][]any{header}, sheet.Rows(ds)...)
		if err := writeRows(f, sheet.Name, rows); err != nil {
			f.Close()
			return nil, err
		}
		last, err := excelize.ColumnNumberToName(len(sheet.Headers))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s columns: %w", sheet.Name, err)
		}
		if err := f.SetColWidth(sheet.Name, "A", last, 18); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteWorkbook streams the export workbook to w.
func WriteWorkbook(ds *model.Dataset, w io.Writer, now time.Time) error {
	f, err := BuildWorkbook(ds, now)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Workbook is a workbook read back as plain text rows.
type Workbook struct {
	Sheets []string
	Rows   map[string][][]string
}

func ReadWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{Sheets: f.GetSheetList(), Rows: make(map[string][][]string)}
	for _, name := range wb.Sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", name, err)
		}
		wb.Rows[name] = rows
	}
	return wb, nil
}
