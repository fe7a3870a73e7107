package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wenjun-lei/family-health-archive/gen/ent"
	"github.com/wenjun-lei/family-health-archive/gen/ent/familymember"
	"github.com/wenjun-lei/family-health-archive/internal/entity"
	"github.com/wenjun-lei/family-health-archive/internal/utils"
)

// CreateMemberRequest wraps attributes for an explicitly created member.
type CreateMemberRequest struct {
	Name      string
	Relation  *string
	Gender    *string
	BirthDate *time.Time
}

type MemberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)
	// GetByName is the exact, case-sensitive lookup used for resolution.
	GetByName(ctx context.Context, name string) (*entity.Member, error)
	Create(ctx context.Context, req *CreateMemberRequest) (*entity.Member, error)
	// GetOrCreateByName returns the member with the given display name,
	// creating it when absent. The boolean reports whether a row was
	// created. Safe under concurrent calls for the same new name: the
	// unique name index plus retry-on-conflict guarantees a single row.
	GetOrCreateByName(ctx context.Context, name string) (*entity.Member, bool, error)
	ListMembers(ctx context.Context) ([]*entity.Member, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type memberRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMemberRepository(client *ent.Client, logger *slog.Logger) MemberRepository {
	return &memberRepository{
		client: client,
		logger: logger,
	}
}

func (r *memberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	m, err := r.client.FamilyMember.
		Query().
		Where(familymember.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToMember(m), nil
}

func (r *memberRepository) GetByName(ctx context.Context, name string) (*entity.Member, error) {
	m, err := r.client.FamilyMember.
		Query().
		Where(familymember.Name(name)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToMember(m), nil
}

func (r *memberRepository) Create(ctx context.Context, req *CreateMemberRequest) (*entity.Member, error) {
	m, err := r.client.FamilyMember.Create().
		SetName(req.Name).
		SetNillableRelation(req.Relation).
		SetNillableGender(req.Gender).
		SetNillableBirthDate(req.BirthDate).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create member", "name", req.Name, "error", err)
		return nil, err
	}
	r.logger.Info("member created", "member_id", m.ID, "name", m.Name)
	return utils.ToMember(m), nil
}

func (r *memberRepository) GetOrCreateByName(ctx context.Context, name string) (*entity.Member, bool, error) {
	m, err := r.client.FamilyMember.
		Query().
		Where(familymember.Name(name)).
		Only(ctx)
	if err == nil {
		return utils.ToMember(m), false, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("member lookup failed", "name", name, "error", err)
		return nil, false, err
	}

	created, err := r.client.FamilyMember.Create().
		SetName(name).
		Save(ctx)
	if err == nil {
		r.logger.Info("member created during resolution", "member_id", created.ID, "name", name)
		return utils.ToMember(created), true, nil
	}
	if !ent.IsConstraintError(err) {
		r.logger.Error("failed to create member", "name", name, "error", err)
		return nil, false, err
	}

	// Lost the insert race: another ingestion created the row between our
	// lookup and insert. The unique index guarantees the winner is single.
	winner, err := r.client.FamilyMember.
		Query().
		Where(familymember.Name(name)).
		Only(ctx)
	if err != nil {
		r.logger.Error("member re-query after conflict failed", "name", name, "error", err)
		return nil, false, err
	}
	return utils.ToMember(winner), false, nil
}

func (r *memberRepository) ListMembers(ctx context.Context) ([]*entity.Member, error) {
	mlist, err := r.client.FamilyMember.
		Query().
		Order(ent.Asc(familymember.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list members", "error", err)
		return nil, err
	}
	result := make([]*entity.Member, len(mlist))
	for i, m := range mlist {
		result[i] = utils.ToMember(m)
	}
	return result, nil
}

func (r *memberRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.FamilyMember.Query().Where(familymember.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check member existence", "member_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.FamilyMember.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete member", "member_id", id, "error", err)
		return err
	}
	r.logger.Info("member deleted", "member_id", id)
	return nil
}
