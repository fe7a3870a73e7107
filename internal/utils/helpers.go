package utils

import (
	"time"

	"github.com/wenjun-lei/family-health-archive/gen/ent"
	healthpb "github.com/wenjun-lei/family-health-archive/gen/proto/health/v1"
	"github.com/wenjun-lei/family-health-archive/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func dateOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02")
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToMember(e *ent.FamilyMember) *entity.Member {
	return &entity.Member{
		ID:        e.ID,
		Name:      e.Name,
		Relation:  e.Relation,
		Gender:    e.Gender,
		BirthDate: e.BirthDate,
		CreatedAt: e.CreatedAt,
	}
}

func ToReport(e *ent.MedicalReport) *entity.Report {
	return &entity.Report{
		ID:           e.ID,
		MemberID:     e.MemberID,
		FilePath:     e.FilePath,
		HospitalName: e.HospitalName,
		ReportDate:   e.ReportDate,
		ReportType:   e.ReportType,
		Summary:      e.Summary,
		CreatedAt:    e.CreatedAt,
	}
}

func ToPBMember(m *entity.Member) *healthpb.FamilyMember {
	return &healthpb.FamilyMember{
		Id:        m.ID.String(),
		Name:      m.Name,
		Relation:  strOrEmpty(m.Relation),
		Gender:    strOrEmpty(m.Gender),
		BirthDate: dateOrEmpty(m.BirthDate),
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBReport(r *entity.Report) *healthpb.MedicalReport {
	return &healthpb.MedicalReport{
		Id:           r.ID.String(),
		MemberId:     r.MemberID.String(),
		FilePath:     r.FilePath,
		HospitalName: strOrEmpty(r.HospitalName),
		ReportDate:   dateOrEmpty(r.ReportDate),
		ReportType:   strOrEmpty(r.ReportType),
		Summary:      r.Summary,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
