package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report represents an archived medical report for data transfer between layers.
type Report struct {
	ID           uuid.UUID  `json:"id"`
	MemberID     uuid.UUID  `json:"member_id"`
	FilePath     string     `json:"file_path"`
	HospitalName *string    `json:"hospital_name,omitempty"`
	ReportDate   *time.Time `json:"report_date,omitempty"`
	ReportType   *string    `json:"report_type,omitempty"`
	Summary      string     `json:"summary"`
	CreatedAt    time.Time  `json:"created_at"`
}
