package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wenjun-lei/family-health-archive/constants"
	"github.com/wenjun-lei/family-health-archive/internal/entity"
	"github.com/wenjun-lei/family-health-archive/internal/repository"
)

// ResolveStage is stage 3: patient name -> owning family member.
// Names are matched exactly and case-sensitively; a report with no usable
// name lands on the reserved member so it is never dropped.
type ResolveStage struct {
	Members repository.MemberRepository
	Logger  *slog.Logger
}

func NewResolveStage(members repository.MemberRepository, logger *slog.Logger) *ResolveStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResolveStage{Members: members, Logger: logger}
}

func (s *ResolveStage) Run(ctx context.Context, name string) (*entity.Member, bool, error) {
	resolved := strings.TrimSpace(name)
	if resolved == "" {
		resolved = constants.UnknownMemberName
	}

	member, created, err := s.Members.GetOrCreateByName(ctx, resolved)
	if err != nil {
		s.Logger.Error("resolve.member.failed", "name", resolved, "err", err)
		return nil, false, fmt.Errorf("resolve member %q: %w", resolved, err)
	}
	s.Logger.Info("resolve.member.ok", "member_id", member.ID, "name", member.Name, "created", created)
	return member, created, nil
}
