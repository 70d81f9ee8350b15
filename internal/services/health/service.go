package health

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service reports process and storage health.
type Service struct {
	DB  Pinger
	Now func() time.Time
}

// NewService constructs a health service. db may be nil when running on
// in-memory repositories.
func NewService(db Pinger) *Service {
	return &Service{DB: db, Now: time.Now}
}

// Report is the health payload.
type Report struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database,omitempty"`
}

// Healthy reports whether every checked dependency answered.
func (r Report) Healthy() bool { return r.Status == "healthy" }

// Status pings the database, if any, and returns a report.
func (s *Service) Status(ctx context.Context) Report {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	report := Report{Status: "healthy", Timestamp: now().UTC().Format(time.RFC3339)}
	if s.DB == nil {
		return report
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		report.Status = "unhealthy"
		report.Database = "down"
		return report
	}
	report.Database = "up"
	return report
}
