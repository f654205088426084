package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Dataset is the whole makkanya_data.json document. JSON keys are the
// collection names used by the source file and must not be renamed.
type Dataset struct {
	Demographics    []Demographic     `json:"Demografi Kembangan"`
	Locations       []Location        `json:"Lokasi Strategis GPS"`
	DriverZones     []DriverZone      `json:"Alokasi Driver Zoning"`
	DailyProjection []DailyProjection `json:"Proyeksi 30 Hari"`
	Products        []Product         `json:"Portfolio Produk"`
	Competitors     []Competitor      `json:"Analisis Kompetitor"`
	Segments        []Segment         `json:"Customer Segmentation"`
	Investments     []Investment      `json:"Investment Breakdown"`
	ShiftOperations []ShiftOperation  `json:"Operasional per Shift"`
	Heatmap         []HeatmapCell     `json:"Heatmap Demand 24 Jam"`
	MonthlyKPI      []MonthlyKPI      `json:"KPI Bulanan 12 Bulan"`
	Risks           []Risk            `json:"Risk Register"`
	BreakEven       []BreakEven       `json:"Break Even Analysis"`
	Sensitivity     []Sensitivity     `json:"Sensitivity Analysis"`
	Staffing        []Staff           `json:"Staffing dan Gaji"`
	MasterSummary   []SummaryMetric   `json:"Master Summary"`
	CustomerDetails []CustomerDetail  `json:"Customer Detailed Real"`
	RiskDetails     []RiskDetail      `json:"Risk Register Detailed"`
	Climate         []Climate         `json:"Climate Data BMKG"`
	TrafficPatterns []TrafficPattern  `json:"Traffic Pattern Real"`
	Regulations     []Regulation      `json:"Regulatory Compliance"`
	ZoneRadius      []ZoneRadius      `json:"Zona Radius Data"`
	ZoneDistances   []ZoneDistance    `json:"Zona Distance Matrix"`
}

type Demographic struct {
	Region           string  `json:"Wilayah" validate:"required"`
	Population2024   float64 `json:"Populasi_2024" validate:"gte=0"`
	DensityPerKm2    float64 `json:"Kepadatan_jiwa_km2" validate:"gte=0"`
	AreaKm2          float64 `json:"Luas_km2" validate:"gte=0"`
	ProductiveAgePct float64 `json:"Usia_Produktif_15_59_persen" validate:"gte=0,lte=100"`
	EconomicClass    string  `json:"Kelas_Ekonomi"`
	Source           string  `json:"Sumber_Data"`
	SourceLink       string  `json:"Sumber_Link"`
}

type Location struct {
	Name             string  `json:"Nama_Lokasi" validate:"required"`
	Category         string  `json:"Kategori" validate:"required"`
	Kelurahan        string  `json:"Kelurahan"`
	Latitude         float64 `json:"Latitude" validate:"latitude"`
	Longitude        float64 `json:"Longitude" validate:"longitude"`
	TrafficLevel     string  `json:"Traffic_Level"`
	TargetPriority   int     `json:"Target_Priority" validate:"gte=0"`
	FootfallPerDay   float64 `json:"Estimasi_Footfall_per_Hari" validate:"gte=0"`
	CoordinateSource string  `json:"Sumber_Koordinat"`
	SourceLink       string  `json:"Sumber_Link"`
}

type DriverZone struct {
	OperationalZone     string  `json:"Zona_Operasional" validate:"required"`
	SpecificLocation    string  `json:"Lokasi_Spesifik"`
	DriverCount         int     `json:"Jumlah_Driver" validate:"gte=0"`
	ShiftMorning        int     `json:"Shift_Pagi_07_12" validate:"gte=0"`
	ShiftAfternoon      int     `json:"Shift_Siang_12_17" validate:"gte=0"`
	ShiftEvening        int     `json:"Shift_Sore_17_21" validate:"gte=0"`
	TargetCupsPerDriver float64 `json:"Target_Cup_per_Driver_per_Hari" validate:"gte=0"`
	AvgPricePerCup      float64 `json:"Harga_Rata_rata_per_Cup" validate:"gte=0"`
	RadiusKm            float64 `json:"Radius_Operasional_km" validate:"gte=0"`
	TrafficProfile      string  `json:"Karakteristik_Traffic"`
	ZoneDriverTotal     int     `json:"Total_Driver_Zona" validate:"gte=0"`
}

type DailyProjection struct {
	Date               string  `json:"Tanggal" validate:"required"`
	Day                string  `json:"Hari"`
	IsWeekend          bool    `json:"Is_Weekend"`
	TargetCups         float64 `json:"Target_Cup_Total" validate:"gte=0"`
	ActualCups         float64 `json:"Actual_Cup_Total" validate:"gte=0"`
	AchievementRatePct float64 `json:"Achievement_Rate_persen" validate:"gte=0"`
	ActiveDrivers      int     `json:"Active_Driver" validate:"gte=0"`
	CupsPerDriverAvg   float64 `json:"Cup_per_Driver_Avg" validate:"gte=0"`
	RevenueRp          float64 `json:"Revenue_Rp" validate:"gte=0"`
	COGSRp             float64 `json:"COGS_Rp" validate:"gte=0"`
	OperationalCostRp  float64 `json:"Operational_Cost_Rp" validate:"gte=0"`
	FixedCostRp        float64 `json:"Fixed_Cost_Rp" validate:"gte=0"`
	NetProfitRp        float64 `json:"Net_Profit_Rp"`
	AccumulatedProfit  float64 `json:"Accumulated_Profit_Rp"`
}

type Product struct {
	SKU              string  `json:"SKU_Code" validate:"required"`
	Name             string  `json:"Nama_Produk" validate:"required"`
	Description      string  `json:"Deskripsi"`
	Category         string  `json:"Kategori"`
	SubCategory      string  `json:"Sub_Kategori"`
	PriceRp          float64 `json:"Harga_Jual_Rp" validate:"gte=0"`
	COGSPerCupRp     float64 `json:"HPP_per_Cup_Rp" validate:"gte=0"`
	MarginPct        float64 `json:"Margin_persen" validate:"lte=100"`
	DailySalesPct    float64 `json:"Estimasi_Daily_Sales_persen" validate:"gte=0,lte=100"`
	TargetPriority   int     `json:"Target_Priority"`
	PrepMinutes      float64 `json:"Waktu_Preparasi_menit" validate:"gte=0"`
	Availability     string  `json:"Ketersediaan"`
	ProfitPerCup     float64 `json:"Keuntungan_per_Cup"`
	MainIngredients  string  `json:"Bahan_Utama"`
	UniqueSellingPro string  `json:"Unique_Selling_Point"`
}

type Competitor struct {
	Brand            string  `json:"Brand" validate:"required"`
	BusinessModel    string  `json:"Model_Bisnis"`
	MilkCoffeePrice  float64 `json:"Harga_Kopi_Susu_Rp" validate:"gte=0"`
	OutletsKembangan int     `json:"Jumlah_Outlet_Kembangan" validate:"gte=0"`
	Presence         string  `json:"Lokasi_Presence"`
	TargetSegment    string  `json:"Target_Segment"`
	Strength         string  `json:"Strength"`
	Weakness         string  `json:"Weakness"`
	ThreatLevel      string  `json:"Threat_Level"`
	MainMenu         string  `json:"Menu_Utama"`
	Advantage        string  `json:"Keunggulan"`
}

type Segment struct {
	Name             string  `json:"Nama_Segment" validate:"required"`
	EstimatedPop     float64 `json:"Estimasi_Populasi" validate:"gte=0"`
	LifetimeValue3M  float64 `json:"Lifetime_Value_3bulan" validate:"gte=0"`
	AvgTransactionRp float64 `json:"Avg_Transaction_Value_Rp" validate:"gte=0"`
	PurchasesPerWeek float64 `json:"Purchase_Frequency_per_Minggu" validate:"gte=0"`
	Characteristics  string  `json:"Karakteristik_Utama"`
	PainPoints       string  `json:"Pain_Points"`
	PreferredChannel string  `json:"Preferred_Channel"`
	PeakDays         string  `json:"Peak_Days"`
}

type Investment struct {
	Category     string  `json:"Kategori"`
	Item         string  `json:"Item" validate:"required"`
	Units        float64 `json:"Jumlah_Unit" validate:"gte=0"`
	UnitPriceRp  float64 `json:"Harga_per_Unit_Rp" validate:"gte=0"`
	TotalCostRp  float64 `json:"Total_Biaya_Rp" validate:"gte=0"`
	CostType     string  `json:"Tipe_Biaya"`
	MainCategory string  `json:"Kategori_Utama"`
}

type ShiftOperation struct {
	Day               string  `json:"Hari"`
	Shift             string  `json:"Shift" validate:"required"`
	ActiveDrivers     int     `json:"Active_Driver" validate:"gte=0"`
	CupsPerDriverAvg  float64 `json:"Cup_per_Driver_Avg" validate:"gte=0"`
	TotalCups         float64 `json:"Total_Cup_Shift" validate:"gte=0"`
	AvgPricePerCup    float64 `json:"Avg_Price_per_Cup" validate:"gte=0"`
	RevenueRp         float64 `json:"Revenue_Shift_Rp" validate:"gte=0"`
	OperationalCostRp float64 `json:"Operational_Cost_Rp" validate:"gte=0"`
	COGSRp            float64 `json:"COGS_Rp" validate:"gte=0"`
}

type HeatmapCell struct {
	Zone              string  `json:"Zona" validate:"required"`
	Hour              int     `json:"Jam" validate:"gte=0,lte=23"`
	HourLabel         string  `json:"Jam_Label"`
	DemandIndex       float64 `json:"Demand_Index" validate:"gte=0"`
	RecommendedDriver float64 `json:"Recommended_Driver" validate:"gte=0"`
	Note              string  `json:"Keterangan"`
}

type MonthlyKPI struct {
	Month             string  `json:"Bulan" validate:"required"`
	MonthIndex        int     `json:"Bulan_Ke" validate:"gte=1"`
	DaysInMonth       int     `json:"Hari_Dalam_Bulan" validate:"gte=0"`
	AvgCupsPerDay     float64 `json:"Avg_Cup_per_Hari" validate:"gte=0"`
	TotalCups         float64 `json:"Total_Cup_Bulan" validate:"gte=0"`
	AvgPricePerCup    float64 `json:"Avg_Harga_per_Cup" validate:"gte=0"`
	RevenueRp         float64 `json:"Revenue_Rp" validate:"gte=0"`
	COGSRp            float64 `json:"COGS_Rp" validate:"gte=0"`
	OperationalCostRp float64 `json:"Operational_Cost_Rp" validate:"gte=0"`
	MarketingCostRp   float64 `json:"Marketing_Cost_Rp" validate:"gte=0"`
	FixedCostRp       float64 `json:"Fixed_Cost_Rp" validate:"gte=0"`
	NetProfitRp       float64 `json:"Net_Profit_Rp"`
	ProfitMarginPct   float64 `json:"Profit_Margin_persen" validate:"lte=100"`
	AccumulatedProfit float64 `json:"Accumulated_Profit_Rp"`
	DriverCount       int     `json:"Driver_Count" validate:"gte=0"`
}

type Risk struct {
	ID          string  `json:"Risk_ID" validate:"required"`
	Category    string  `json:"Kategori_Risiko"`
	Description string  `json:"Deskripsi_Risiko"`
	Probability string  `json:"Probabilitas"`
	Impact      string  `json:"Impact"`
	Score       float64 `json:"Risk_Score" validate:"gte=0"`
	Mitigation  string  `json:"Mitigation_Strategy"`
	Contingency string  `json:"Contingency_Plan"`
	Owner       string  `json:"Owner"`
}

type BreakEven struct {
	Metric string  `json:"Metrik" validate:"required"`
	Value  float64 `json:"Nilai"`
	Unit   string  `json:"Satuan"`
}

type Sensitivity struct {
	Scenario            string  `json:"Scenario" validate:"required"`
	CupsPerDriverPerDay float64 `json:"Cup_per_Driver_per_Day" validate:"gte=0"`
	AvgPricePerCup      float64 `json:"Avg_Price_per_Cup" validate:"gte=0"`
	TotalCupsPerDay     float64 `json:"Total_Cup_per_Day" validate:"gte=0"`
	TotalCupsPerMonth   float64 `json:"Total_Cup_per_Month" validate:"gte=0"`
	RevenuePerMonthRp   float64 `json:"Revenue_per_Month_Rp" validate:"gte=0"`
	COGSRp              float64 `json:"COGS_Rp" validate:"gte=0"`
	OperationalCostRp   float64 `json:"Operational_Cost_Rp" validate:"gte=0"`
	FixedCostRp         float64 `json:"Fixed_Cost_Rp" validate:"gte=0"`
	NetProfitRp         float64 `json:"Net_Profit_Rp"`
	ProfitMarginPct     float64 `json:"Profit_Margin_persen" validate:"lte=100"`
	ROIMonthPct         float64 `json:"ROI_Month_persen"`
}

type Staff struct {
	Position         string  `json:"Posisi" validate:"required"`
	Headcount        int     `json:"Jumlah_Staff" validate:"gte=0"`
	BaseSalary       float64 `json:"Gaji_Pokok_per_Bulan" validate:"gte=0"`
	PerformanceBonus float64 `json:"Bonus_Performance" validate:"gte=0"`
	Benefits         float64 `json:"Benefits" validate:"gte=0"`
	CostPerStaff     float64 `json:"Total_Cost_per_Staff" validate:"gte=0"`
	CostPerPosition  float64 `json:"Total_Cost_per_Jabatan" validate:"gte=0"`
	Shift            string  `json:"Shift"`
}

type SummaryMetric struct {
	Category string    `json:"Kategori"`
	Metric   string    `json:"Metrik" validate:"required"`
	Value    FlexValue `json:"Nilai"`
	Unit     string    `json:"Satuan"`
	Source   string    `json:"Sumber"`
}

type CustomerDetail struct {
	SegmentID             string  `json:"Segment_ID" validate:"required"`
	MainSegment           string  `json:"Nama_Segment_Utama"`
	SubArea               string  `json:"Sub_Area"`
	TotalPopulation       float64 `json:"Populasi_Total" validate:"gte=0"`
	TargetCoffeeDrinkers  float64 `json:"Populasi_Target_Coffee_Drinkers" validate:"gte=0"`
	AvgAge                float64 `json:"Usia_Rata_Rata" validate:"gte=0"`
	AvgIncomeRp           float64 `json:"Income_Level_Rata_Rata_Rp" validate:"gte=0"`
	PeakHours             string  `json:"Peak_Hours"`
	TrafficLevel          string  `json:"Traffic_Level"`
	AvgDailyFootfall      float64 `json:"Avg_Daily_Footfall" validate:"gte=0"`
	DailyCoffeeDemandCups float64 `json:"Estimated_Daily_Coffee_Demand_Cups" validate:"gte=0"`
	Source                string  `json:"Sumber_Data"`
	Latitude              float64 `json:"Koordinat_Latitude"`
	Longitude             float64 `json:"Koordinat_Longitude"`
	SourceLink            string  `json:"Sumber_Link"`

	GenderDistribution map[string]float64 `json:"Gender_Distribution,omitempty" validate:"omitempty,dive,gte=0,lte=100"`
	EducationLevel     map[string]float64 `json:"Education_Level,omitempty" validate:"omitempty,dive,gte=0,lte=100"`
	JobType            map[string]float64 `json:"Job_Type,omitempty" validate:"omitempty,dive,gte=0,lte=100"`
	CoffeePreference   map[string]float64 `json:"Coffee_Preference,omitempty" validate:"omitempty,dive,gte=0,lte=100"`
	SpendingHabit      *string            `json:"Spending_Habit,omitempty"`
	LoyaltyPotential   *string            `json:"Loyalty_Potential,omitempty"`
}

type RiskDetail struct {
	ID            string  `json:"Risk_ID" validate:"required"`
	Category      string  `json:"Kategori_Risiko"`
	Description   string  `json:"Risk_Description"`
	Probability   string  `json:"Probability"`
	Impact        string  `json:"Impact"`
	Score         float64 `json:"Risk_Score" validate:"gte=0"`
	Mitigation    string  `json:"Mitigation_Strategy"`
	Contingency   string  `json:"Contingency_Plan"`
	EarlyWarnings string  `json:"Early_Warning_Indicators"`
	Owner         string  `json:"Owner"`
	Status        string  `json:"Status"`
	SourceLink    string  `json:"Sumber_Link"`
}

type Climate struct {
	Month           string  `json:"Bulan" validate:"required"`
	RainfallMm      float64 `json:"Curah_Hujan_mm" validate:"gte=0"`
	RainyDays       float64 `json:"Hari_Hujan" validate:"gte=0"`
	AvgTempC        float64 `json:"Suhu_Rata_Rata_C"`
	MinTempC        float64 `json:"Suhu_Min_C"`
	MaxTempC        float64 `json:"Suhu_Max_C"`
	HumidityPct     float64 `json:"Kelembaban_persen" validate:"gte=0,lte=100"`
	WindSpeedMs     float64 `json:"Kecepatan_Angin_m_s" validate:"gte=0"`
	Season          string  `json:"Musim"`
	OperationImpact string  `json:"Impact_to_Operations"`
	Source          string  `json:"Sumber"`
	SourceLink      string  `json:"Sumber_Link"`
}

type TrafficPattern struct {
	Zone            string  `json:"Zona" validate:"required"`
	Time            string  `json:"Waktu"`
	TrafficLevel    string  `json:"Traffic_Level"`
	CongestionIndex float64 `json:"Congestion_Index" validate:"gte=0"`
	AvgSpeedKmh     float64 `json:"Avg_Speed_kmh" validate:"gte=0"`
	DelayMinutes    float64 `json:"Estimated_Delay_menit" validate:"gte=0"`
	BestTime        string  `json:"Best_Time_Operations"`
	Note            string  `json:"Keterangan"`
}

type Regulation struct {
	PermitType       string  `json:"Jenis_Izin" validate:"required"`
	KBLICode         string  `json:"Kode_KBLI"`
	Issuer           string  `json:"Instansi_Pemberi"`
	Mandatory        string  `json:"Status_Wajib"`
	EstimatedCostRp  float64 `json:"Estimasi_Biaya_Rp" validate:"gte=0"`
	EstimatedDays    float64 `json:"Estimasi_Waktu_Hari" validate:"gte=0"`
	Requirements     string  `json:"Persyaratan_Utama"`
	RiskIfMissing    string  `json:"Risiko_Jika_Tidak_Punya"`
	ProcessingStatus string  `json:"Status_Pengurusan"`
	SourceLink       string  `json:"Sumber_Link"`
}

type ZoneRadius struct {
	ID                string        `json:"Zona_ID" validate:"required"`
	Name              string        `json:"Nama_Zona"`
	HubLocation       string        `json:"Lokasi_HUB"`
	Latitude          float64       `json:"Latitude"`
	Longitude         float64       `json:"Longitude"`
	RadiusKm          float64       `json:"Radius_KM" validate:"gte=0"`
	RadiusMinutesBike float64       `json:"Radius_Menit_Motor" validate:"gte=0"`
	RadiusMinutesCar  float64       `json:"Radius_Menit_Mobil" validate:"gte=0"`
	DistanceToBKm     float64       `json:"Jarak_ke_Zona_B_KM"`
	DistanceToCKm     float64       `json:"Jarak_ke_Zona_C_KM"`
	DistanceToDKm     float64       `json:"Jarak_ke_Zona_D_KM"`
	DistanceToEKm     float64       `json:"Jarak_ke_Zona_E_KM"`
	TotalPopulation   float64       `json:"Populasi_Total" validate:"gte=0"`
	DailyFootfall     float64       `json:"Footfall_Harian" validate:"gte=0"`
	DemandPower       float64       `json:"Demand_Power" validate:"gte=0"`
	TrafficRisks      []TrafficRisk `json:"Risiko_Lalu_Lintas" validate:"dive"`
}

type TrafficRisk struct {
	Risk        string `json:"Risiko"`
	Level       string `json:"Level"`
	Description string `json:"Deskripsi"`
}

type ZoneDistance struct {
	From          string  `json:"From" validate:"required"`
	To            string  `json:"To" validate:"required"`
	DistanceKm    float64 `json:"Jarak_KM" validate:"gte=0"`
	MinutesBike   float64 `json:"Waktu_Motor_Menit" validate:"gte=0"`
	MinutesCar    float64 `json:"Waktu_Mobil_Menit" validate:"gte=0"`
	RoadCondition string  `json:"Kondisi_Jalan"`
}

// FlexValue holds a Master Summary value, which the source writes either as
// a number or as a display string.
type FlexValue struct {
	Text     string
	Number   float64
	IsNumber bool
}

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = FlexValue{}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = FlexValue{Number: n, IsNumber: true, Text: strconv.FormatFloat(n, 'f', -1, 64)}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Nilai must be a number or a string: %w", err)
	}
	*v = FlexValue{Text: s}
	return nil
}

func (v FlexValue) MarshalJSON() ([]byte, error) {
	if v.IsNumber {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

// Float returns the numeric reading of the value. Strings are parsed when
// they hold a plain number.
func (v FlexValue) Float() (float64, bool) {
	if v.IsNumber {
		return v.Number, true
	}
	f, err := strconv.ParseFloat(v.Text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
