package database

import (
	"fmt"
	"makkanya_dashboard/model"
	"math"
	"time"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func ptr(s string) *string { return &s }

// LoadSample validates the built-in dataset the way a file would be.
func LoadSample() (*model.Dataset, *model.LoadReport) {
	ds := SampleDataset()
	return ds, Sanitize(ds, SampleSource)
}

// SampleDataset is a small but complete Kembangan dataset used by --sample
// and by tests. It passes validation with 30 daily and 12 monthly records.
func SampleDataset() *model.Dataset {
	ds := &model.Dataset{
		Demographics: []model.Demographic{
			{Region: "Kembangan Selatan", Population2024: 48210, DensityPerKm2: 13390, AreaKm2: 3.6, ProductiveAgePct: 71.2, EconomicClass: "Menengah Atas", Source: "BPS Jakarta Barat"},
			{Region: "Kembangan Utara", Population2024: 61450, DensityPerKm2: 15020, AreaKm2: 4.09, ProductiveAgePct: 69.8, EconomicClass: "Menengah", Source: "BPS Jakarta Barat"},
			{Region: "Kembangan Baru", Population2024: 39870, DensityPerKm2: 14240, AreaKm2: 2.8, ProductiveAgePct: 68.1, EconomicClass: "Menengah", Source: "BPS Jakarta Barat"},
		},
		Locations: []model.Location{
			{Name: "Puri Indah Financial Tower", Category: "Office Complex", Kelurahan: "Kembangan Selatan", Latitude: -6.1879, Longitude: 106.7346, TrafficLevel: "Very High", TargetPriority: 1, FootfallPerDay: 18000, CoordinateSource: "Google Maps"},
			{Name: "Lippo Mall Puri", Category: "Mall Area", Kelurahan: "Kembangan Selatan", Latitude: -6.1886, Longitude: 106.7338, TrafficLevel: "Very High", TargetPriority: 1, FootfallPerDay: 25000, CoordinateSource: "Google Maps"},
			{Name: "Puri Indah Mall", Category: "Mall Area", Kelurahan: "Kembangan Selatan", Latitude: -6.1869, Longitude: 106.7351, TrafficLevel: "High", TargetPriority: 2, FootfallPerDay: 15000, CoordinateSource: "Google Maps"},
			{Name: "Stasiun Kembangan", Category: "Transport Hub", Kelurahan: "Kembangan Utara", Latitude: -6.1870, Longitude: 106.7560, TrafficLevel: "High", TargetPriority: 2, FootfallPerDay: 12000, CoordinateSource: "Google Maps"},
			{Name: "Halte Transjakarta Puri Kembangan", Category: "Transport Hub", Kelurahan: "Kembangan Utara", Latitude: -6.1902, Longitude: 106.7421, TrafficLevel: "Medium-High", TargetPriority: 3, FootfallPerDay: 6000, CoordinateSource: "Google Maps"},
			{Name: "RS Pondok Indah Puri Indah", Category: "Healthcare Facility", Kelurahan: "Kembangan Selatan", Latitude: -6.1901, Longitude: 106.7330, TrafficLevel: "Medium-High", TargetPriority: 2, FootfallPerDay: 5000, CoordinateSource: "Google Maps"},
			{Name: "Pasar Kembangan", Category: "Market Area", Kelurahan: "Kembangan Utara", Latitude: -6.1790, Longitude: 106.7480, TrafficLevel: "Medium", TargetPriority: 3, FootfallPerDay: 7000, CoordinateSource: "Google Maps"},
			{Name: "Perumahan Taman Kebon Jeruk", Category: "Residential Complex", Kelurahan: "Kembangan Baru", Latitude: -6.1950, Longitude: 106.7600, TrafficLevel: "Medium", TargetPriority: 4, FootfallPerDay: 4000, CoordinateSource: "Google Maps"},
			{Name: "Kampus Mercu Buana Meruya", Category: "University Area", Kelurahan: "Meruya Selatan", Latitude: -6.2095, Longitude: 106.7390, TrafficLevel: "High", TargetPriority: 2, FootfallPerDay: 9000, CoordinateSource: "Google Maps"},
			{Name: "Kantor Walikota Jakarta Barat", Category: "Government Office", Kelurahan: "Kembangan Selatan", Latitude: -6.1880, Longitude: 106.7370, TrafficLevel: "Medium", TargetPriority: 4, FootfallPerDay: 3000, CoordinateSource: "Google Maps"},
		},
		DriverZones: []model.DriverZone{
			{OperationalZone: "Zona A - Puri Indah CBD", SpecificLocation: "Puri Indah Financial Tower", DriverCount: 8, ShiftMorning: 4, ShiftAfternoon: 2, ShiftEvening: 2, TargetCupsPerDriver: 45, AvgPricePerCup: 18000, RadiusKm: 1.5, TrafficProfile: "Padat jam kantor", ZoneDriverTotal: 14},
			{OperationalZone: "Zona A - Puri Indah CBD", SpecificLocation: "RS Pondok Indah Puri Indah", DriverCount: 6, ShiftMorning: 3, ShiftAfternoon: 2, ShiftEvening: 1, TargetCupsPerDriver: 40, AvgPricePerCup: 18000, RadiusKm: 1.5, TrafficProfile: "Visitor stabil", ZoneDriverTotal: 14},
			{OperationalZone: "Zona C - Mall & Retail", SpecificLocation: "Lippo Mall Puri", DriverCount: 12, ShiftMorning: 3, ShiftAfternoon: 5, ShiftEvening: 4, TargetCupsPerDriver: 42, AvgPricePerCup: 19000, RadiusKm: 2, TrafficProfile: "Ramai sore dan akhir pekan", ZoneDriverTotal: 12},
			{OperationalZone: "Zona D - Residential", SpecificLocation: "Perumahan Taman Kebon Jeruk", DriverCount: 10, ShiftMorning: 4, ShiftAfternoon: 2, ShiftEvening: 4, TargetCupsPerDriver: 35, AvgPricePerCup: 17000, RadiusKm: 2.5, TrafficProfile: "Pagi dan malam", ZoneDriverTotal: 10},
			{OperationalZone: "Zona E - Transport", SpecificLocation: "Stasiun Kembangan", DriverCount: 14, ShiftMorning: 6, ShiftAfternoon: 3, ShiftEvening: 5, TargetCupsPerDriver: 50, AvgPricePerCup: 17500, RadiusKm: 1, TrafficProfile: "Commuter", ZoneDriverTotal: 14},
		},
		Products: []model.Product{
			{SKU: "MKX-001", Name: "Kopi Susu Gula Aren", Description: "Espresso, susu segar, gula aren", Category: "Coffee", SubCategory: "Milk Based", PriceRp: 18000, COGSPerCupRp: 7000, MarginPct: 61.1, DailySalesPct: 35, TargetPriority: 1, PrepMinutes: 2, Availability: "Harian", ProfitPerCup: 11000, MainIngredients: "Espresso, susu, gula aren", UniqueSellingPro: "Best seller"},
			{SKU: "MKX-002", Name: "Americano", Description: "Espresso dan air", Category: "Coffee", SubCategory: "Black", PriceRp: 15000, COGSPerCupRp: 4500, MarginPct: 70, DailySalesPct: 15, TargetPriority: 2, PrepMinutes: 1.5, Availability: "Harian", ProfitPerCup: 10500, MainIngredients: "Espresso", UniqueSellingPro: "Margin tertinggi"},
			{SKU: "MKX-003", Name: "Caramel Latte", Description: "Latte dengan sirup karamel", Category: "Coffee", SubCategory: "Milk Based", PriceRp: 22000, COGSPerCupRp: 9000, MarginPct: 59.1, DailySalesPct: 18, TargetPriority: 2, PrepMinutes: 2.5, Availability: "Harian", ProfitPerCup: 13000, MainIngredients: "Espresso, susu, karamel", UniqueSellingPro: "Premium"},
			{SKU: "MKX-004", Name: "Matcha Latte", Description: "Matcha dan susu", Category: "Non-Coffee", SubCategory: "Tea", PriceRp: 20000, COGSPerCupRp: 8500, MarginPct: 57.5, DailySalesPct: 12, TargetPriority: 3, PrepMinutes: 2, Availability: "Harian", ProfitPerCup: 11500, MainIngredients: "Matcha, susu", UniqueSellingPro: "Non-coffee favorit"},
			{SKU: "MKX-005", Name: "Chocolate Ice", Description: "Cokelat dingin", Category: "Non-Coffee", SubCategory: "Chocolate", PriceRp: 17000, COGSPerCupRp: 7500, MarginPct: 55.9, DailySalesPct: 10, TargetPriority: 3, PrepMinutes: 1.5, Availability: "Harian", ProfitPerCup: 9500, MainIngredients: "Cokelat, susu", UniqueSellingPro: "Ramah anak"},
			{SKU: "MKX-006", Name: "Es Kopi Hitam", Description: "Kopi tubruk dingin", Category: "Coffee", SubCategory: "Black", PriceRp: 12000, COGSPerCupRp: 4000, MarginPct: 66.7, DailySalesPct: 10, TargetPriority: 3, PrepMinutes: 1, Availability: "Harian", ProfitPerCup: 8000, MainIngredients: "Kopi robusta", UniqueSellingPro: "Termurah"},
		},
		Competitors: []model.Competitor{
			{Brand: "Kopi Kenangan", BusinessModel: "Outlet + Delivery", MilkCoffeePrice: 22000, OutletsKembangan: 6, Presence: "Mall, Perkantoran", TargetSegment: "Karyawan", Strength: "Brand kuat", Weakness: "Antrian panjang", ThreatLevel: "High"},
			{Brand: "Janji Jiwa", BusinessModel: "Outlet", MilkCoffeePrice: 18000, OutletsKembangan: 8, Presence: "Ruko", TargetSegment: "Mahasiswa", Strength: "Harga terjangkau", Weakness: "Kualitas bervariasi", ThreatLevel: "Medium"},
			{Brand: "Starbucks", BusinessModel: "Outlet premium", MilkCoffeePrice: 52000, OutletsKembangan: 3, Presence: "Mall", TargetSegment: "Menengah atas", Strength: "Pengalaman premium", Weakness: "Mahal", ThreatLevel: "Low"},
			{Brand: "Kopi Keliling Lokal", BusinessModel: "Sepeda keliling", MilkCoffeePrice: 10000, OutletsKembangan: 20, Presence: "Jalan utama", TargetSegment: "Pekerja lapangan", Strength: "Murah", Weakness: "Higienitas", ThreatLevel: "Medium"},
		},
		Segments: []model.Segment{
			{Name: "Karyawan Kantor", EstimatedPop: 42000, LifetimeValue3M: 1350000, AvgTransactionRp: 19000, PurchasesPerWeek: 4, Characteristics: "Butuh kopi cepat pagi hari", PainPoints: "Antrian", PreferredChannel: "Driver keliling", PeakDays: "Senin-Jumat"},
			{Name: "Mahasiswa", EstimatedPop: 18000, LifetimeValue3M: 620000, AvgTransactionRp: 15000, PurchasesPerWeek: 3, Characteristics: "Sensitif harga", PainPoints: "Harga", PreferredChannel: "Aplikasi", PeakDays: "Senin-Kamis"},
			{Name: "Pengunjung Mall", EstimatedPop: 30000, LifetimeValue3M: 540000, AvgTransactionRp: 21000, PurchasesPerWeek: 1.5, Characteristics: "Impulsif", PainPoints: "Lokasi", PreferredChannel: "Walk-in", PeakDays: "Sabtu-Minggu"},
			{Name: "Commuter", EstimatedPop: 25000, LifetimeValue3M: 900000, AvgTransactionRp: 16000, PurchasesPerWeek: 5, Characteristics: "Rutin", PainPoints: "Waktu", PreferredChannel: "Driver keliling", PeakDays: "Senin-Jumat"},
		},
		Investments: []model.Investment{
			{Category: "Peralatan", Item: "Sepeda listrik + box kopi", Units: 50, UnitPriceRp: 8500000, TotalCostRp: 425000000, CostType: "CAPEX", MainCategory: "Armada"},
			{Category: "Peralatan", Item: "Mesin espresso hub", Units: 2, UnitPriceRp: 35000000, TotalCostRp: 70000000, CostType: "CAPEX", MainCategory: "Produksi"},
			{Category: "Perizinan", Item: "NIB dan PIRT", Units: 1, UnitPriceRp: 5000000, TotalCostRp: 5000000, CostType: "CAPEX", MainCategory: "Legal"},
			{Category: "Marketing", Item: "Launching campaign", Units: 1, UnitPriceRp: 25000000, TotalCostRp: 25000000, CostType: "OPEX", MainCategory: "Marketing"},
			{Category: "Modal Kerja", Item: "Bahan baku awal", Units: 1, UnitPriceRp: 40000000, TotalCostRp: 40000000, CostType: "OPEX", MainCategory: "Operasional"},
		},
		Risks: []model.Risk{
			{ID: "R-01", Category: "Operasional", Description: "Driver tidak hadir", Probability: "Medium", Impact: "High", Score: 6, Mitigation: "Driver cadangan", Contingency: "Realokasi zona", Owner: "Ops Manager"},
			{ID: "R-02", Category: "Cuaca", Description: "Hujan deras", Probability: "High", Impact: "Medium", Score: 6, Mitigation: "Jas hujan dan cover box", Contingency: "Fokus indoor", Owner: "Ops Manager"},
		},
		BreakEven: []model.BreakEven{
			{Metric: "BEP Cup per Hari", Value: 1150, Unit: "cup"},
			{Metric: "BEP Bulan", Value: 7, Unit: "bulan"},
			{Metric: "Investasi Awal", Value: 565000000, Unit: "Rp"},
		},
		Sensitivity: []model.Sensitivity{
			{Scenario: "Pesimis", CupsPerDriverPerDay: 30, AvgPricePerCup: 17000, TotalCupsPerDay: 1500, TotalCupsPerMonth: 45000, RevenuePerMonthRp: 765000000, COGSRp: 315000000, OperationalCostRp: 280000000, FixedCostRp: 60000000, NetProfitRp: 110000000, ProfitMarginPct: 14.4, ROIMonthPct: 19.5},
			{Scenario: "Moderat", CupsPerDriverPerDay: 40, AvgPricePerCup: 18000, TotalCupsPerDay: 2000, TotalCupsPerMonth: 60000, RevenuePerMonthRp: 1080000000, COGSRp: 420000000, OperationalCostRp: 300000000, FixedCostRp: 60000000, NetProfitRp: 300000000, ProfitMarginPct: 27.8, ROIMonthPct: 53.1},
			{Scenario: "Optimis", CupsPerDriverPerDay: 50, AvgPricePerCup: 19000, TotalCupsPerDay: 2500, TotalCupsPerMonth: 75000, RevenuePerMonthRp: 1425000000, COGSRp: 525000000, OperationalCostRp: 320000000, FixedCostRp: 60000000, NetProfitRp: 520000000, ProfitMarginPct: 36.5, ROIMonthPct: 92},
		},
		Staffing: []model.Staff{
			{Position: "Driver Barista", Headcount: 50, BaseSalary: 4900000, PerformanceBonus: 500000, Benefits: 300000, CostPerStaff: 5700000, CostPerPosition: 285000000, Shift: "Pagi/Siang/Sore"},
			{Position: "Supervisor Zona", Headcount: 5, BaseSalary: 7000000, PerformanceBonus: 1000000, Benefits: 500000, CostPerStaff: 8500000, CostPerPosition: 42500000, Shift: "Non-shift"},
		},
		MasterSummary: []model.SummaryMetric{
			{Category: "Pasar", Metric: "Populasi Kembangan", Value: model.FlexValue{Number: 334361, IsNumber: true}, Unit: "jiwa", Source: "BPS 2024"},
			{Category: "Operasional", Metric: "Jumlah Driver", Value: model.FlexValue{Number: 50, IsNumber: true}, Unit: "orang", Source: "Rencana"},
			{Category: "Operasional", Metric: "Jam Operasional", Value: model.FlexValue{Text: "07:00 - 21:00"}, Unit: "", Source: "Rencana"},
		},
		CustomerDetails: []model.CustomerDetail{
			{SegmentID: "CS-01", MainSegment: "Karyawan Kantor", SubArea: "Puri Indah CBD", TotalPopulation: 60000, TargetCoffeeDrinkers: 42000, AvgAge: 31, AvgIncomeRp: 9500000, PeakHours: "07:00-09:00, 13:00-15:00", TrafficLevel: "Very High", AvgDailyFootfall: 18000, DailyCoffeeDemandCups: 3200, Source: "Survey", Latitude: -6.1879, Longitude: 106.7346,
				GenderDistribution: map[string]float64{"Pria": 52, "Wanita": 48}, SpendingHabit: ptr("Rutin harian"), LoyaltyPotential: ptr("Tinggi")},
			{SegmentID: "CS-02", MainSegment: "Mahasiswa", SubArea: "Meruya", TotalPopulation: 25000, TargetCoffeeDrinkers: 18000, AvgAge: 21, AvgIncomeRp: 2500000, PeakHours: "10:00-12:00, 15:00-17:00", TrafficLevel: "High", AvgDailyFootfall: 9000, DailyCoffeeDemandCups: 1400, Source: "Survey", Latitude: -6.2095, Longitude: 106.7390},
			{SegmentID: "CS-03", MainSegment: "Pengunjung Mall", SubArea: "Puri Indah", TotalPopulation: 40000, TargetCoffeeDrinkers: 30000, AvgAge: 28, AvgIncomeRp: 8000000, PeakHours: "15:00-17:00, 19:00-21:00", TrafficLevel: "Very High", AvgDailyFootfall: 25000, DailyCoffeeDemandCups: 2100, Source: "Survey", Latitude: -6.1886, Longitude: 106.7338, SpendingHabit: ptr("Impulsif")},
			{SegmentID: "CS-04", MainSegment: "Commuter", SubArea: "Stasiun Kembangan", TotalPopulation: 30000, TargetCoffeeDrinkers: 25000, AvgAge: 29, AvgIncomeRp: 6000000, PeakHours: "07:00-09:00, 17:00-19:00", TrafficLevel: "High", AvgDailyFootfall: 12000, DailyCoffeeDemandCups: 1800, Source: "Survey", Latitude: -6.1870, Longitude: 106.7560},
		},
		RiskDetails: []model.RiskDetail{
			{ID: "RD-01", Category: "Kompetisi", Description: "Kompetitor membuka outlet baru di CBD", Probability: "High", Impact: "High", Score: 9, Mitigation: "Program loyalitas", Contingency: "Promo harga", EarlyWarnings: "Penurunan order CBD", Owner: "Marketing", Status: "Monitoring"},
			{ID: "RD-02", Category: "Operasional", Description: "Keterlambatan bahan baku", Probability: "Medium", Impact: "High", Score: 7, Mitigation: "Dua supplier", Contingency: "Stok buffer 3 hari", EarlyWarnings: "Supplier telat", Owner: "Ops Manager", Status: "Aktif"},
			{ID: "RD-03", Category: "SDM", Description: "Turnover driver tinggi", Probability: "Medium", Impact: "Medium", Score: 5, Mitigation: "Bonus performa", Contingency: "Rekrutmen cepat", EarlyWarnings: "Absensi naik", Owner: "HR", Status: "Aktif"},
			{ID: "RD-04", Category: "Regulasi", Description: "Penertiban pedagang di area stasiun", Probability: "Medium", Impact: "High", Score: 7, Mitigation: "Izin lengkap", Contingency: "Pindah titik", EarlyWarnings: "Razia Satpol PP", Owner: "Legal", Status: "Monitoring"},
			{ID: "RD-05", Category: "Cuaca", Description: "Musim hujan menurunkan order", Probability: "High", Impact: "Medium", Score: 6, Mitigation: "Menu hangat", Contingency: "Fokus indoor", EarlyWarnings: "Prakiraan BMKG", Owner: "Ops Manager", Status: "Aktif"},
			{ID: "RD-06", Category: "Permintaan", Description: "Permintaan perumahan lebih rendah", Probability: "Low", Impact: "Medium", Score: 3, Mitigation: "Pre-order grup", Contingency: "Kurangi driver", EarlyWarnings: "Order < 20 cup", Owner: "Ops Manager", Status: "Monitoring"},
		},
		Climate: []model.Climate{
			{Month: "Januari", RainfallMm: 350, RainyDays: 20, AvgTempC: 27, MinTempC: 24, MaxTempC: 31, HumidityPct: 85, WindSpeedMs: 3, Season: "Hujan", OperationImpact: "Order turun saat hujan", Source: "BMKG"},
			{Month: "Agustus", RainfallMm: 50, RainyDays: 4, AvgTempC: 29, MinTempC: 25, MaxTempC: 34, HumidityPct: 70, WindSpeedMs: 4, Season: "Kemarau", OperationImpact: "Es kopi naik", Source: "BMKG"},
		},
		TrafficPatterns: []model.TrafficPattern{
			{Zone: "Puri Indah CBD", Time: "07:00-09:00", TrafficLevel: "Very High", CongestionIndex: 8.5, AvgSpeedKmh: 12, DelayMinutes: 15, BestTime: "06:30", Note: "Jam masuk kantor"},
			{Zone: "Stasiun Kembangan", Time: "17:00-19:00", TrafficLevel: "High", CongestionIndex: 7.2, AvgSpeedKmh: 15, DelayMinutes: 10, BestTime: "16:30", Note: "Jam pulang"},
		},
		Regulations: []model.Regulation{
			{PermitType: "NIB", KBLICode: "56303", Issuer: "OSS", Mandatory: "Wajib", EstimatedCostRp: 0, EstimatedDays: 1, Requirements: "KTP, NPWP", RiskIfMissing: "Tidak bisa beroperasi legal", ProcessingStatus: "Selesai"},
			{PermitType: "PIRT", KBLICode: "10792", Issuer: "Dinas Kesehatan", Mandatory: "Wajib", EstimatedCostRp: 500000, EstimatedDays: 14, Requirements: "Sertifikat penyuluhan", RiskIfMissing: "Penarikan produk", ProcessingStatus: "Proses"},
		},
		ZoneRadius: []model.ZoneRadius{
			{ID: "A", Name: "Zona A - Puri Indah CBD", HubLocation: "Puri Indah Financial Tower", Latitude: -6.1879, Longitude: 106.7346, RadiusKm: 1.5, RadiusMinutesBike: 8, RadiusMinutesCar: 12, DistanceToBKm: 2.1, DistanceToCKm: 0.5, DistanceToDKm: 3, DistanceToEKm: 2.4, TotalPopulation: 60000, DailyFootfall: 38000, DemandPower: 95,
				TrafficRisks: []model.TrafficRisk{{Risk: "Macet jam kantor", Level: "High", Description: "Jl. Puri Indah Raya"}}},
			{ID: "B", Name: "Zona B - Kembangan Utara", HubLocation: "Pasar Kembangan", Latitude: -6.1790, Longitude: 106.7480, RadiusKm: 2, RadiusMinutesBike: 10, RadiusMinutesCar: 15, DistanceToBKm: 0, DistanceToCKm: 2.3, DistanceToDKm: 2.6, DistanceToEKm: 1.2, TotalPopulation: 61450, DailyFootfall: 7000, DemandPower: 55},
			{ID: "C", Name: "Zona C - Mall & Retail", HubLocation: "Lippo Mall Puri", Latitude: -6.1886, Longitude: 106.7338, RadiusKm: 2, RadiusMinutesBike: 9, RadiusMinutesCar: 14, DistanceToBKm: 2.3, DistanceToCKm: 0, DistanceToDKm: 3.2, DistanceToEKm: 2.6, TotalPopulation: 40000, DailyFootfall: 40000, DemandPower: 90},
			{ID: "D", Name: "Zona D - Residential", HubLocation: "Perumahan Taman Kebon Jeruk", Latitude: -6.1950, Longitude: 106.7600, RadiusKm: 2.5, RadiusMinutesBike: 12, RadiusMinutesCar: 18, DistanceToBKm: 2.6, DistanceToCKm: 3.2, DistanceToDKm: 0, DistanceToEKm: 1.5, TotalPopulation: 39870, DailyFootfall: 4000, DemandPower: 40},
			{ID: "E", Name: "Zona E - Transport", HubLocation: "Stasiun Kembangan", Latitude: -6.1870, Longitude: 106.7560, RadiusKm: 1, RadiusMinutesBike: 6, RadiusMinutesCar: 10, DistanceToBKm: 1.2, DistanceToCKm: 2.6, DistanceToDKm: 1.5, DistanceToEKm: 0, TotalPopulation: 30000, DailyFootfall: 18000, DemandPower: 80},
		},
		ZoneDistances: []model.ZoneDistance{
			{From: "Zona A", To: "Zona C", DistanceKm: 0.5, MinutesBike: 3, MinutesCar: 5, RoadCondition: "Padat"},
			{From: "Zona A", To: "Zona E", DistanceKm: 2.4, MinutesBike: 10, MinutesCar: 15, RoadCondition: "Sedang"},
			{From: "Zona B", To: "Zona E", DistanceKm: 1.2, MinutesBike: 6, MinutesCar: 9, RoadCondition: "Lancar"},
			{From: "Zona D", To: "Zona E", DistanceKm: 1.5, MinutesBike: 7, MinutesCar: 11, RoadCondition: "Sedang"},
		},
	}

	ds.DailyProjection = sampleDaily()
	ds.MonthlyKPI = sampleMonthly()
	ds.ShiftOperations = sampleShifts()
	ds.Heatmap = sampleHeatmap()
	return ds
}

func sampleDaily() []model.DailyProjection {
	start := parseDate("2025-01-06")
	accumulated := -565000000.0
	days := make([]model.DailyProjection, 0, 30)
	for i := 0; i < 30; i++ {
		date := start.AddDate(0, 0, i)
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
		target := 1800.0
		actual := 1500.0 + float64(i)*20
		if weekend {
			target = 1400
			actual -= 250
		}
		drivers := 50
		revenue := actual * 18000
		cogs := actual * 7000
		op := 9500000.0
		fixed := 2000000.0
		profit := revenue - cogs - op - fixed
		accumulated += profit
		days = append(days, model.DailyProjection{
			Date:               date.Format("2006-01-02"),
			Day:                date.Weekday().String(),
			IsWeekend:          weekend,
			TargetCups:         target,
			ActualCups:         actual,
			AchievementRatePct: math.Round(actual/target*1000) / 10,
			ActiveDrivers:      drivers,
			CupsPerDriverAvg:   actual / float64(drivers),
			RevenueRp:          revenue,
			COGSRp:             cogs,
			OperationalCostRp:  op,
			FixedCostRp:        fixed,
			NetProfitRp:        profit,
			AccumulatedProfit:  accumulated,
		})
	}
	return days
}

var sampleMonths = []string{"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

func sampleMonthly() []model.MonthlyKPI {
	accumulated := -565000000.0
	months := make([]model.MonthlyKPI, 0, len(sampleMonths))
	for i, name := range sampleMonths {
		daysIn := time.Date(2025, time.Month(i+2), 0, 0, 0, 0, 0, time.UTC).Day()
		avgCups := 1500.0 + float64(i)*60
		total := avgCups * float64(daysIn)
		revenue := total * 18000
		cogs := total * 7000
		op := 285000000.0
		marketing := 15000000.0
		fixed := 60000000.0
		profit := revenue - cogs - op - marketing - fixed
		accumulated += profit
		months = append(months, model.MonthlyKPI{
			Month:             name,
			MonthIndex:        i + 1,
			DaysInMonth:       daysIn,
			AvgCupsPerDay:     avgCups,
			TotalCups:         total,
			AvgPricePerCup:    18000,
			RevenueRp:         revenue,
			COGSRp:            cogs,
			OperationalCostRp: op,
			MarketingCostRp:   marketing,
			FixedCostRp:       fixed,
			NetProfitRp:       profit,
			ProfitMarginPct:   math.Round(profit/revenue*1000) / 10,
			AccumulatedProfit: accumulated,
			DriverCount:       50,
		})
	}
	return months
}

func sampleShifts() []model.ShiftOperation {
	days := []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}
	shifts := []struct {
		name    string
		drivers int
		cups    float64
	}{
		{"Pagi (07-12)", 25, 18},
		{"Siang (12-17)", 15, 14},
		{"Sore (17-21)", 20, 12},
	}
	ops := make([]model.ShiftOperation, 0, len(days)*len(shifts))
	for d, day := range days {
		for _, s := range shifts {
			perDriver := s.cups
			if d >= 5 {
				perDriver -= 3
			}
			total := perDriver * float64(s.drivers)
			ops = append(ops, model.ShiftOperation{
				Day:               day,
				Shift:             s.name,
				ActiveDrivers:     s.drivers,
				CupsPerDriverAvg:  perDriver,
				TotalCups:         total,
				AvgPricePerCup:    18000,
				RevenueRp:         total * 18000,
				OperationalCostRp: float64(s.drivers) * 60000,
				COGSRp:            total * 7000,
			})
		}
	}
	return ops
}

func sampleHeatmap() []model.HeatmapCell {
	zones := []struct {
		name string
		peak int
		base float64
	}{
		{"Zona A - Puri Indah CBD", 8, 90},
		{"Zona B - Kembangan Utara", 9, 50},
		{"Zona C - Mall & Retail", 16, 85},
		{"Zona D - Residential", 19, 45},
		{"Zona E - Transport", 7, 80},
	}
	cells := make([]model.HeatmapCell, 0, len(zones)*15)
	for _, z := range zones {
		for hour := 7; hour <= 21; hour++ {
			distance := math.Abs(float64(hour - z.peak))
			index := math.Max(5, math.Round(z.base-distance*8))
			note := ""
			if hour == z.peak {
				note = "Peak"
			}
			cells = append(cells, model.HeatmapCell{
				Zone:              z.name,
				Hour:              hour,
				HourLabel:         fmt.Sprintf("%02d:00", hour),
				DemandIndex:       index,
				RecommendedDriver: math.Round(index / 10),
				Note:              note,
			})
		}
	}
	return cells
}
