package server

import (
	"rentalhub/internal/config"
	"rentalhub/internal/handler"
	"rentalhub/internal/repository"
	"rentalhub/internal/service"
	"rentalhub/internal/txn"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Repositories holds every collection-backed repository
type Repositories struct {
	Apartments    repository.IApartmentRepository
	Users         repository.IUserRepository
	Members       repository.IMemberRepository
	Agreements    repository.IAgreementRepository
	Announcements repository.IAnnouncementRepository
	Coupons       repository.ICouponRepository
	Payments      repository.IPaymentRepository
	PaymentInfo   repository.IPaymentInfoRepository
}

// Services holds the business layer
type Services struct {
	Tokens        *service.TokenService
	Users         *service.UserService
	Apartments    *service.ApartmentService
	Membership    *service.MembershipService
	Announcements *service.AnnouncementService
	Coupons       *service.CouponService
	Payments      *service.PaymentService
	Stats         *service.StatsService
}

// Handlers holds the HTTP handlers
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Apartment    *handler.ApartmentHandler
	User         *handler.UserHandler
	Membership   *handler.MembershipHandler
	Announcement *handler.AnnouncementHandler
	Coupon       *handler.CouponHandler
	Payment      *handler.PaymentHandler
	Stats        *handler.StatsHandler
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Apartments:    repository.NewApartmentRepository(db),
		Users:         repository.NewUserRepository(db),
		Members:       repository.NewMemberRepository(db),
		Agreements:    repository.NewAgreementRepository(db),
		Announcements: repository.NewAnnouncementRepository(db),
		Coupons:       repository.NewCouponRepository(db),
		Payments:      repository.NewPaymentRepository(db),
		PaymentInfo:   repository.NewPaymentInfoRepository(db),
	}
}

// InitServices wires the services. gateway may be nil, in which case payment
// intents are refused.
func InitServices(cfg *config.Config, repos *Repositories, tx txn.Runner, gateway service.PaymentGateway, logger *zap.Logger) *Services {
	return &Services{
		Tokens:        service.NewTokenService(cfg.Auth.TokenSecret),
		Users:         service.NewUserService(repos.Users),
		Apartments:    service.NewApartmentService(repos.Apartments),
		Membership:    service.NewMembershipService(repos.Users, repos.Members, repos.Agreements, tx, logger),
		Announcements: service.NewAnnouncementService(repos.Announcements),
		Coupons:       service.NewCouponService(repos.Coupons),
		Payments:      service.NewPaymentService(cfg.Payment, repos.Payments, repos.PaymentInfo, gateway, tx, logger),
		Stats:         service.NewStatsService(repos.Apartments, repos.Members, repos.Users, logger),
	}
}

func InitHandlers(s *Services, ping handler.PingFunc, logger *zap.Logger) *Handlers {
	return &Handlers{
		Health:       handler.NewHealthHandler(ping, logger),
		Auth:         handler.NewAuthHandler(s.Tokens, logger),
		Apartment:    handler.NewApartmentHandler(s.Apartments, logger),
		User:         handler.NewUserHandler(s.Users, logger),
		Membership:   handler.NewMembershipHandler(s.Membership, logger),
		Announcement: handler.NewAnnouncementHandler(s.Announcements, logger),
		Coupon:       handler.NewCouponHandler(s.Coupons, logger),
		Payment:      handler.NewPaymentHandler(s.Payments, logger),
		Stats:        handler.NewStatsHandler(s.Stats, logger),
	}
}
