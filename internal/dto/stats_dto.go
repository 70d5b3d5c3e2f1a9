package dto

type DashboardStatsResponse struct {
	TotalUsers      int64   `json:"totalUsers"`
	TotalCases      int64   `json:"totalCases"`
	ActiveUsers     int64   `json:"activeUsers"`
	NewCasesToday   int64   `json:"newCasesToday"`
	CasesInProcess  int64   `json:"casesInProcess"`
	CasesResolved   int64   `json:"casesResolved"`
	TotalAmountLost float64 `json:"totalAmountLost"`
}

type TypeStatResponse struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type HistoryPointResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ReportedNumberResponse struct {
	Number        string `json:"number"`
	ReportCount   int    `json:"report_count"`
	FraudType     string `json:"fraud_type,omitempty"`
	OriginCountry string `json:"origin_country,omitempty"`
}
