package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"rentalhub/internal/model"
	"rentalhub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInjected is returned by a Store whose Fail field is set
var ErrInjected = errors.New("injected failure")

// Store is an in-memory stand-in for the MongoDB collections. Its Xxx()
// accessors return values satisfying the repository interfaces and share
// one lock, so tests can inspect state across collections.
type Store struct {
	mu sync.Mutex

	Apartments    []*model.Apartment
	Users         []*model.User
	Members       []*model.Member
	Agreements    []*model.Agreement
	Announcements []*model.Announcement
	Coupons       []*model.Coupon
	Payments      []*model.Payment
	PaymentInfos  []*model.PaymentInfo

	// Fail makes every operation return ErrInjected
	Fail bool
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) lock() error {
	s.mu.Lock()
	if s.Fail {
		s.mu.Unlock()
		return ErrInjected
	}
	return nil
}

func assignID(id *primitive.ObjectID) primitive.ObjectID {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
	return *id
}

func (s *Store) ApartmentRepo() repository.IApartmentRepository       { return apartmentRepo{s} }
func (s *Store) UserRepo() repository.IUserRepository                 { return userRepo{s} }
func (s *Store) MemberRepo() repository.IMemberRepository             { return memberRepo{s} }
func (s *Store) AgreementRepo() repository.IAgreementRepository       { return agreementRepo{s} }
func (s *Store) AnnouncementRepo() repository.IAnnouncementRepository { return announcementRepo{s} }
func (s *Store) CouponRepo() repository.ICouponRepository             { return couponRepo{s} }
func (s *Store) PaymentRepo() repository.IPaymentRepository           { return paymentRepo{s} }
func (s *Store) PaymentInfoRepo() repository.IPaymentInfoRepository   { return paymentInfoRepo{s} }

// apartments

type apartmentRepo struct{ s *Store }

func (r apartmentRepo) List(_ context.Context, skip, limit int64) ([]*model.Apartment, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	all := r.s.Apartments
	if skip >= int64(len(all)) {
		return nil, nil
	}
	end := int64(len(all))
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	out := make([]*model.Apartment, 0, end-skip)
	out = append(out, all[skip:end]...)
	return out, nil
}

func (r apartmentRepo) Count(context.Context) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	return int64(len(r.s.Apartments)), nil
}

func (r apartmentRepo) Create(_ context.Context, apt *model.Apartment) (primitive.ObjectID, error) {
	if err := r.s.lock(); err != nil {
		return primitive.NilObjectID, err
	}
	defer r.s.mu.Unlock()
	id := assignID(&apt.ID)
	r.s.Apartments = append(r.s.Apartments, apt)
	return id, nil
}

func (r apartmentRepo) SumRooms(context.Context) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	var n int64
	for _, a := range r.s.Apartments {
		n += int64(a.ApartmentNo)
	}
	return n, nil
}

// users

type userRepo struct{ s *Store }

func (r userRepo) find(email string) *model.User {
	for _, u := range r.s.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	return r.find(email), nil
}

func (r userRepo) Create(_ context.Context, user *model.User) (primitive.ObjectID, error) {
	if err := r.s.lock(); err != nil {
		return primitive.NilObjectID, err
	}
	defer r.s.mu.Unlock()
	if r.find(user.Email) != nil {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	id := assignID(&user.ID)
	r.s.Users = append(r.s.Users, user)
	return id, nil
}

func (r userRepo) SetRole(_ context.Context, email, role string, at time.Time) (model.UpdateResult, error) {
	if err := r.s.lock(); err != nil {
		return model.UpdateResult{}, err
	}
	defer r.s.mu.Unlock()
	res := model.UpdateResult{Acknowledged: true}
	if u := r.find(email); u != nil {
		res.MatchedCount = 1
		if u.Role != role {
			res.ModifiedCount = 1
		}
		u.Role = role
		u.Timestamp = at
	}
	return res, nil
}

func (r userRepo) CountByRole(_ context.Context, role string) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	var n int64
	for _, u := range r.s.Users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// members

type memberRepo struct{ s *Store }

func (r memberRepo) Create(_ context.Context, m *model.Member) (primitive.ObjectID, error) {
	if err := r.s.lock(); err != nil {
		return primitive.NilObjectID, err
	}
	defer r.s.mu.Unlock()
	id := assignID(&m.ID)
	r.s.Members = append(r.s.Members, m)
	return id, nil
}

func (r memberRepo) List(context.Context) ([]*model.Member, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	return append([]*model.Member(nil), r.s.Members...), nil
}

func (r memberRepo) FindByEmail(_ context.Context, email string) (*model.Member, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, m := range r.s.Members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, nil
}

func (r memberRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	var n int64
	r.s.Members, n = removeWhere(r.s.Members, func(m *model.Member) bool { return m.Email == email })
	return n, nil
}

func (r memberRepo) SumRooms(context.Context) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	var n int64
	for _, m := range r.s.Members {
		n += int64(m.ApartmentNo)
	}
	return n, nil
}

// agreements

type agreementRepo struct{ s *Store }

func (r agreementRepo) Create(_ context.Context, a *model.Agreement) (primitive.ObjectID, error) {
	if err := r.s.lock(); err != nil {
		return primitive.NilObjectID, err
	}
	defer r.s.mu.Unlock()
	id := assignID(&a.ID)
	r.s.Agreements = append(r.s.Agreements, a)
	return id, nil
}

func (r agreementRepo) List(context.Context) ([]*model.Agreement, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	return append([]*model.Agreement(nil), r.s.Agreements...), nil
}

func (r agreementRepo) FindByEmail(_ context.Context, email string) ([]*model.Agreement, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	var out []*model.Agreement
	for _, a := range r.s.Agreements {
		if a.Email == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r agreementRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	var n int64
	r.s.Agreements, n = removeWhere(r.s.Agreements, func(a *model.Agreement) bool { return a.Email == email })
	return n, nil
}

// announcements

type announcementRepo struct{ s *Store }

func (r announcementRepo) Create(_ context.Context, a *model.Announcement) (primitive.ObjectID, error) {
	if err := r.s.lock(); err != nil {
		return primitive.NilObjectID, err
	}
	defer r.s.mu.Unlock()
	id := assignID(&a.ID)
	r.s.Announcements = append(r.s.Announcements, a)
	return id, nil
}

func (r announcementRepo) List(context.Context) ([]*model.Announcement, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	return append([]*model.Announcement(nil), r.s.Announcements...), nil
}

// coupons

type couponRepo struct{ s *Store }

func (r couponRepo) byCode(code string) *model.Coupon {
	for _, c := range r.s.Coupons {
		if c.Code == code {
			return c
		}
	}
	return nil
}

func (r couponRepo) Create(_ context.Context, c *model.Coupon) (primitive.ObjectID, error) {
	if err := r.s.lock(); err != nil {
		return primitive.NilObjectID, err
	}
	defer r.s.mu.Unlock()
	if r.byCode(c.Code) != nil {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	id := assignID(&c.ID)
	r.s.Coupons = append(r.s.Coupons, c)
	return id, nil
}

func (r couponRepo) List(context.Context) ([]*model.Coupon, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	return append([]*model.Coupon(nil), r.s.Coupons...), nil
}

func (r couponRepo) FindByCode(_ context.Context, code string) (*model.Coupon, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	return r.byCode(code), nil
}

func (r couponRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Coupon, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, c := range r.s.Coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r couponRepo) Update(_ context.Context, id primitive.ObjectID, upd *model.CouponUpdateRequest, at time.Time) (model.UpdateResult, error) {
	if err := r.s.lock(); err != nil {
		return model.UpdateResult{}, err
	}
	defer r.s.mu.Unlock()
	res := model.UpdateResult{Acknowledged: true}
	var target *model.Coupon
	for _, c := range r.s.Coupons {
		if c.ID == id {
			target = c
			break
		}
	}
	if target == nil {
		return res, nil
	}
	if upd.Code != nil {
		if other := r.byCode(*upd.Code); other != nil && other.ID != id {
			return model.UpdateResult{}, repository.ErrDuplicate
		}
	}
	res.MatchedCount = 1
	if upd.Code != nil {
		target.Code = *upd.Code
	}
	if upd.Discount != nil {
		target.Discount = *upd.Discount
	}
	if upd.Description != nil {
		target.Description = *upd.Description
	}
	if upd.Available != nil {
		target.Available = *upd.Available
	}
	// updatedAt is always set, so a matched coupon always counts as modified
	target.UpdatedAt = at
	res.ModifiedCount = 1
	return res, nil
}

// payments

type paymentRepo struct{ s *Store }

func (r paymentRepo) Create(_ context.Context, p *model.Payment) (primitive.ObjectID, error) {
	if err := r.s.lock(); err != nil {
		return primitive.NilObjectID, err
	}
	defer r.s.mu.Unlock()
	id := assignID(&p.ID)
	r.s.Payments = append(r.s.Payments, p)
	return id, nil
}

func (r paymentRepo) ListByEmail(_ context.Context, email, month string) ([]*model.Payment, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	var out []*model.Payment
	for _, p := range r.s.Payments {
		if p.Email == email && (month == "" || p.Date == month) {
			out = append(out, p)
		}
	}
	return out, nil
}

type paymentInfoRepo struct{ s *Store }

func (r paymentInfoRepo) Create(_ context.Context, p *model.PaymentInfo) (primitive.ObjectID, error) {
	if err := r.s.lock(); err != nil {
		return primitive.NilObjectID, err
	}
	defer r.s.mu.Unlock()
	id := assignID(&p.ID)
	r.s.PaymentInfos = append(r.s.PaymentInfos, p)
	return id, nil
}

func (r paymentInfoRepo) FindByEmail(_ context.Context, email string) ([]*model.PaymentInfo, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	var out []*model.PaymentInfo
	for _, p := range r.s.PaymentInfos {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r paymentInfoRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	var n int64
	r.s.PaymentInfos, n = removeWhere(r.s.PaymentInfos, func(p *model.PaymentInfo) bool { return p.Email == email })
	return n, nil
}

func (r paymentInfoRepo) DeleteAll(context.Context) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	n := int64(len(r.s.PaymentInfos))
	r.s.PaymentInfos = nil
	return n, nil
}

func removeWhere[T any](items []T, match func(T) bool) ([]T, int64) {
	kept := items[:0]
	var removed int64
	for _, it := range items {
		if match(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	return kept, removed
}
