package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentalhub/internal/model"
	"rentalhub/internal/repository"
	"rentalhub/internal/sanitize"
	"rentalhub/pkg/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CouponService struct {
	repo repository.ICouponRepository
	now  func() time.Time
}

func NewCouponService(repo repository.ICouponRepository) *CouponService {
	return &CouponService{repo: repo, now: time.Now}
}

// Create stores a coupon; codes are unique
func (s *CouponService) Create(ctx context.Context, req *model.CouponRequest) (model.InsertResult, error) {
	now := s.now()
	c := &model.Coupon{
		Code:        sanitize.Text(req.Code),
		Discount:    req.Discount,
		Description: sanitize.Text(req.Description),
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Available != nil {
		c.Available = *req.Available
	}
	if c.Code == "" {
		return model.InsertResult{}, fmt.Errorf("%w: coupon code is empty", ErrInvalidInput)
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.InsertResult{}, fmt.Errorf("coupon %q: %w", c.Code, ErrConflict)
		}
		return model.InsertResult{}, fmt.Errorf("failed to create coupon: %w", err)
	}
	return model.NewInsertResult(id), nil
}

func (s *CouponService) List(ctx context.Context) ([]*model.Coupon, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	if list == nil {
		list = []*model.Coupon{}
	}
	return list, nil
}

// GetByCode returns nil when no coupon has the code. The code is cleaned
// the same way Create cleans it before stored codes are compared.
func (s *CouponService) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	code = sanitize.Text(code)
	if code == "" {
		return nil, nil
	}
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return c, nil
}

// GetByID returns nil when no coupon has the id
func (s *CouponService) GetByID(ctx context.Context, idHex string) (*model.Coupon, error) {
	id, err := parseID(idHex)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return c, nil
}

func (s *CouponService) Update(ctx context.Context, idHex string, req *model.CouponUpdateRequest) (model.UpdateResult, error) {
	id, err := parseID(idHex)
	if err != nil {
		return model.UpdateResult{}, err
	}
	if req.Code != nil {
		code := sanitize.Text(*req.Code)
		if code == "" {
			return model.UpdateResult{}, fmt.Errorf("%w: coupon code is empty", ErrInvalidInput)
		}
		req.Code = &code
	}
	if req.Description != nil {
		desc := sanitize.Text(*req.Description)
		req.Description = &desc
	}

	res, err := s.repo.Update(ctx, id, req, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.UpdateResult{}, fmt.Errorf("coupon code: %w", ErrConflict)
		}
		return model.UpdateResult{}, fmt.Errorf("failed to update coupon: %w", err)
	}
	return res, nil
}

func parseID(idHex string) (primitive.ObjectID, error) {
	id, err := util.ParseObjectID(idHex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return id, nil
}
