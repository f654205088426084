package constants

const (
	ZONE_ALL          = "all"
	ZONE_CBD          = "Puri Indah CBD"
	ZONE_TRANSPORT    = "Transport Hub"
	ZONE_HEALTHCARE   = "Healthcare"
	ZONE_MARKET       = "Market"
	ZONE_RESIDENTIAL  = "Residential"
	PERIOD_7_DAYS     = "7days"
	PERIOD_30_DAYS    = "30days"
	SHIFT_ALL         = "all"
	SHIFT_PAGI        = "Pagi"
	SHIFT_SIANG       = "Siang"
	SHIFT_SORE        = "Sore"
	ZONE_LABEL_MAXLEN = 64
)

const (
	TOTAL_DRIVER_TARGET   = 50
	MIN_ZONE_DRIVERS      = 5
	POPULATION_METRIC     = "Populasi Kembangan"
	POPULATION_FALLBACK   = 334361
	EXPECTED_DAILY_RECORD = 30
	EXPECTED_MONTH_RECORD = 12
	HUB_MIN_SCORE         = 70
	HIGH_TRAFFIC_SCORE    = 60
	FOOTFALL_SCORE_CAP    = 20000
	WEEK_DAYS_RECENT      = 7
)

const (
	CATEGORY_OFFICE      = "Office Complex"
	CATEGORY_MALL        = "Mall Area"
	CATEGORY_UNIVERSITY  = "University Area"
	CATEGORY_TRANSPORT   = "Transport Hub"
	CATEGORY_HEALTHCARE  = "Healthcare Facility"
	CATEGORY_MARKET      = "Market Area"
	CATEGORY_RECREATION  = "Recreation Area"
	CATEGORY_RESIDENTIAL = "Residential Complex"
	CATEGORY_GOVERNMENT  = "Government Office"
)

const (
	SUMMARY_OVERVIEW    = "overview"
	SUMMARY_PERFORMANCE = "performance"
	SUMMARY_HEATMAP     = "heatmap"
	SUMMARY_PRODUCTS    = "products"
	SUMMARY_CUSTOMERS   = "customers"
	SUMMARY_RISKS       = "risks"
)

const (
	EXPORT_FILE_PREFIX   = "Makkanya_Express_Data_Export_"
	EXPORT_CONTENT_TYPE  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	REDIS_STATUS_CHANNEL = "dataset:status"
	REDIS_KPI_PREFIX     = "kpi:"
)
