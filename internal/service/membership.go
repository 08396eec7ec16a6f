package service

import (
	"context"
	"fmt"
	"time"

	"rentalhub/internal/model"
	"rentalhub/internal/repository"
	"rentalhub/internal/txn"

	"go.uber.org/zap"
)

// MembershipService owns member records, agreement requests and the role
// transitions between them.
type MembershipService struct {
	users      repository.IUserRepository
	members    repository.IMemberRepository
	agreements repository.IAgreementRepository
	tx         txn.Runner
	log        *zap.Logger
	now        func() time.Time
}

func NewMembershipService(
	users repository.IUserRepository,
	members repository.IMemberRepository,
	agreements repository.IAgreementRepository,
	tx txn.Runner,
	logger *zap.Logger,
) *MembershipService {
	return &MembershipService{
		users:      users,
		members:    members,
		agreements: agreements,
		tx:         tx,
		log:        logger,
		now:        time.Now,
	}
}

// CreateMember stores a member record
func (s *MembershipService) CreateMember(ctx context.Context, req *model.MemberRequest) (model.InsertResult, error) {
	m := req.ToMember()
	m.Email = normalizeEmail(m.Email)
	m.Timestamp = s.now()
	id, err := s.members.Create(ctx, m)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create member: %w", err)
	}
	return model.NewInsertResult(id), nil
}

func (s *MembershipService) ListMembers(ctx context.Context) ([]*model.Member, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if members == nil {
		members = []*model.Member{}
	}
	return members, nil
}

// GetMember returns nil when the email has no member record
func (s *MembershipService) GetMember(ctx context.Context, email string) (*model.Member, error) {
	m, err := s.members.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}

// Revoke demotes the user to "user" and removes their member record and any
// agreement requests, as one unit.
func (s *MembershipService) Revoke(ctx context.Context, email string) (model.MembershipChange, error) {
	email = normalizeEmail(email)
	var change model.MembershipChange

	err := s.tx.Run(ctx, func(ctx context.Context) error {
		change = model.MembershipChange{}
		res, err := s.users.SetRole(ctx, email, model.RoleUser, s.now())
		if err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		change.User = res

		if change.MembersDeleted, err = s.members.DeleteByEmail(ctx, email); err != nil {
			return fmt.Errorf("delete member: %w", err)
		}
		if change.AgreementsDeleted, err = s.agreements.DeleteByEmail(ctx, email); err != nil {
			return fmt.Errorf("delete agreements: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.MembershipChange{}, fmt.Errorf("failed to revoke membership: %w", err)
	}

	s.log.Info("membership revoked",
		zap.String("email", email),
		zap.Int64("members_deleted", change.MembersDeleted),
		zap.Int64("agreements_deleted", change.AgreementsDeleted))
	return change, nil
}

// Decide settles the pending agreement requests for email by deleting them.
// Approval ("member") also promotes the user; rejection ("user") leaves the
// role alone, so an existing member keeps both role and member record.
func (s *MembershipService) Decide(ctx context.Context, email string, req *model.RoleUpdateRequest) (model.MembershipChange, error) {
	email = normalizeEmail(email)
	var change model.MembershipChange

	err := s.tx.Run(ctx, func(ctx context.Context) error {
		change = model.MembershipChange{}
		var err error
		if change.AgreementsDeleted, err = s.agreements.DeleteByEmail(ctx, email); err != nil {
			return fmt.Errorf("delete agreements: %w", err)
		}
		if req.Role != model.RoleMember {
			return nil
		}
		if change.User, err = s.users.SetRole(ctx, email, model.RoleMember, s.now()); err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.MembershipChange{}, fmt.Errorf("failed to settle agreement: %w", err)
	}

	s.log.Info("agreement settled",
		zap.String("email", email),
		zap.Bool("approved", req.Role == model.RoleMember),
		zap.Int64("agreements_deleted", change.AgreementsDeleted))
	return change, nil
}

// CreateAgreement stores a pending agreement request. Repeated requests for
// the same email are allowed.
func (s *MembershipService) CreateAgreement(ctx context.Context, req *model.AgreementRequest) (model.InsertResult, error) {
	a := req.ToAgreement()
	a.Email = normalizeEmail(a.Email)
	a.Timestamp = s.now()
	id, err := s.agreements.Create(ctx, a)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create agreement: %w", err)
	}
	return model.NewInsertResult(id), nil
}

func (s *MembershipService) ListAgreements(ctx context.Context) ([]*model.Agreement, error) {
	list, err := s.agreements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}
	if list == nil {
		list = []*model.Agreement{}
	}
	return list, nil
}

func (s *MembershipService) AgreementsByEmail(ctx context.Context, email string) ([]*model.Agreement, error) {
	list, err := s.agreements.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get agreements: %w", err)
	}
	if list == nil {
		list = []*model.Agreement{}
	}
	return list, nil
}
