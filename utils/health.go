package utils

import (
	"time"
)

// HealthStatus is the snapshot served by the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Uptime    string    `json:"uptime"`
	CheckedAt time.Time `json:"checkedAt"`
}

var startedAt = time.Now()

// GetHealthStatus returns the current process health snapshot.
func GetHealthStatus() HealthStatus {
	return HealthStatus{
		Status:    "ok",
		Uptime:    time.Since(startedAt).Round(time.Second).String(),
		CheckedAt: time.Now(),
	}
}
