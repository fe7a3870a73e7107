package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	healthpb "github.com/wenjun-lei/family-health-archive/gen/proto/health/v1"
	"github.com/wenjun-lei/family-health-archive/internal/repository"
	"github.com/wenjun-lei/family-health-archive/internal/storage"
	"github.com/wenjun-lei/family-health-archive/internal/utils"
)

type MembersServer struct {
	healthpb.UnimplementedMembersServiceServer
	memberRepo repository.MemberRepository
	reportRepo repository.ReportRepository
	store      *storage.Store
	logger     *slog.Logger
}

func NewMembersServer(members repository.MemberRepository, reports repository.ReportRepository, store *storage.Store, logger *slog.Logger) *MembersServer {
	return &MembersServer{
		memberRepo: members,
		reportRepo: reports,
		store:      store,
		logger:     logger,
	}
}

func (s *MembersServer) CreateMember(ctx context.Context, req *healthpb.CreateMemberRequest) (*healthpb.CreateMemberResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	serviceReq := &repository.CreateMemberRequest{Name: name}
	if rel := strings.TrimSpace(req.GetRelation()); rel != "" {
		serviceReq.Relation = &rel
	}
	if g := strings.TrimSpace(req.GetGender()); g != "" {
		serviceReq.Gender = &g
	}
	if bd := strings.TrimSpace(req.GetBirthDate()); bd != "" {
		d, err := utils.ParseYMD(bd)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "birth_date invalid (YYYY-MM-DD): %v", err)
		}
		serviceReq.BirthDate = &d
	}

	m, err := s.memberRepo.Create(ctx, serviceReq)
	if err != nil {
		s.logger.Error("failed to create member", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create member: %v", err)
	}
	return &healthpb.CreateMemberResponse{Member: utils.ToPBMember(m)}, nil
}

func (s *MembersServer) GetMember(ctx context.Context, req *healthpb.GetMemberRequest) (*healthpb.GetMemberResponse, error) {
	id, err := parseMemberID(req.GetMemberId())
	if err != nil {
		return nil, err
	}
	m, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "member not found")
	}
	return &healthpb.GetMemberResponse{Member: utils.ToPBMember(m)}, nil
}

func (s *MembersServer) ListMembers(ctx context.Context, _ *healthpb.ListMembersRequest) (*healthpb.ListMembersResponse, error) {
	mlist, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		s.logger.Error("failed to list members", "error", err)
		return nil, status.Errorf(codes.Internal, "list members: %v", err)
	}
	counts, err := s.reportRepo.CountsByMember(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "count member reports: %v", err)
	}
	out := make([]*healthpb.MemberSummary, 0, len(mlist))
	for _, m := range mlist {
		out = append(out, &healthpb.MemberSummary{
			Member:      utils.ToPBMember(m),
			ReportCount: int32(counts[m.ID]),
		})
	}
	return &healthpb.ListMembersResponse{Members: out}, nil
}

// DeleteMember removes the member, the member's archived reports, and the
// stored files those reports referenced.
func (s *MembersServer) DeleteMember(ctx context.Context, req *healthpb.DeleteMemberRequest) (*healthpb.DeleteMemberResponse, error) {
	id, err := parseMemberID(req.GetMemberId())
	if err != nil {
		return nil, err
	}
	exists, err := s.memberRepo.Exists(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "check member: %v", err)
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "member not found")
	}

	paths, err := s.reportRepo.DeleteByMember(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete member reports", "member_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "delete member reports: %v", err)
	}
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return nil, status.Errorf(codes.Internal, "delete member: %v", err)
	}

	// Rows are gone at this point; a leftover file only wastes disk.
	for _, p := range paths {
		if err := s.store.Remove(p); err != nil {
			s.logger.Warn("failed to remove archived file", "path", p, "error", err)
		}
	}
	s.logger.Info("member deleted", "member_id", id, "reports_deleted", len(paths))
	return &healthpb.DeleteMemberResponse{ReportsDeleted: int32(len(paths))}, nil
}

func (s *MembersServer) ListMemberReports(ctx context.Context, req *healthpb.ListMemberReportsRequest) (*healthpb.ListMemberReportsResponse, error) {
	id, err := parseMemberID(req.GetMemberId())
	if err != nil {
		return nil, err
	}
	exists, err := s.memberRepo.Exists(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "check member: %v", err)
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "member not found")
	}

	recs, err := s.reportRepo.ListByMember(ctx, id)
	if err != nil {
		s.logger.Error("failed to list member reports", "member_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "list member reports: %v", err)
	}
	out := make([]*healthpb.MedicalReport, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReport(r))
	}
	return &healthpb.ListMemberReportsResponse{Reports: out}, nil
}

func parseMemberID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "member_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "member_id must be a UUID")
	}
	return id, nil
}
