package models

import "time"

// SystemMetrics is a point-in-time summary of the process instrumentation.
type SystemMetrics struct {
	RequestsTotal            uint64            `json:"requestsTotal"`
	AverageRequestDurationMs float64           `json:"averageRequestDurationMs"`
	DBQueryCount             uint64            `json:"dbQueryCount"`
	AverageDBQueryDurationMs float64           `json:"averageDbQueryDurationMs"`
	Mutations                map[string]uint64 `json:"mutations"`
	Goroutines               int               `json:"goroutines"`
	GeneratedAt              time.Time         `json:"generatedAt"`
}
