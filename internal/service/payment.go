package service

import (
	"context"
	"fmt"
	"time"

	"rentalhub/internal/config"
	"rentalhub/internal/model"
	"rentalhub/internal/repository"
	"rentalhub/internal/txn"

	"go.uber.org/zap"
)

// PaymentGateway creates payment intents with an external processor
type PaymentGateway interface {
	// CreateIntent returns the client secret of a new intent for amount
	// minor currency units.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// PaymentService handles payment intents, finalized payments and staged
// payment info.
type PaymentService struct {
	payments repository.IPaymentRepository
	infos    repository.IPaymentInfoRepository
	gateway  PaymentGateway
	tx       txn.Runner
	cfg      config.PaymentConfig
	log      *zap.Logger
	now      func() time.Time
}

func NewPaymentService(
	cfg config.PaymentConfig,
	payments repository.IPaymentRepository,
	infos repository.IPaymentInfoRepository,
	gateway PaymentGateway,
	tx txn.Runner,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		payments: payments,
		infos:    infos,
		gateway:  gateway,
		tx:       tx,
		cfg:      cfg,
		log:      logger,
		now:      time.Now,
	}
}

// MinorUnits converts a price to integer cents, truncating fractions
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent requests a new payment intent for price. Every call creates a
// separate intent.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (model.PaymentIntentResponse, error) {
	if s.gateway == nil {
		return model.PaymentIntentResponse{}, ErrGatewayUnavailable
	}
	amount := MinorUnits(price)
	secret, err := s.gateway.CreateIntent(ctx, amount, s.cfg.Currency)
	if err != nil {
		return model.PaymentIntentResponse{}, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return model.PaymentIntentResponse{ClientSecret: secret}, nil
}

// Finalize stores the payment and clears staged payment info. With the
// "all" scope every staged entry is removed, not only the payer's.
func (s *PaymentService) Finalize(ctx context.Context, req *model.PaymentRequest) (model.FinalizeResult, error) {
	p := req.ToPayment()
	p.Email = normalizeEmail(p.Email)
	p.Timestamp = s.now()

	var result model.FinalizeResult
	err := s.tx.Run(ctx, func(ctx context.Context) error {
		id, err := s.payments.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		result.Payment = model.NewInsertResult(id)

		if s.cfg.InfoClearScope == config.ClearScopeUser {
			result.InfoCleared, err = s.infos.DeleteByEmail(ctx, p.Email)
		} else {
			result.InfoCleared, err = s.infos.DeleteAll(ctx)
		}
		if err != nil {
			return fmt.Errorf("clear payment info: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.FinalizeResult{}, fmt.Errorf("failed to finalize payment: %w", err)
	}

	s.log.Info("payment finalized",
		zap.String("email", p.Email),
		zap.String("month", p.Date),
		zap.Float64("amount", p.Amount),
		zap.Int64("info_cleared", result.InfoCleared))
	return result, nil
}

// History lists the payments of email, optionally for one month only
func (s *PaymentService) History(ctx context.Context, email, month string) ([]*model.Payment, error) {
	list, err := s.payments.ListByEmail(ctx, normalizeEmail(email), month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if list == nil {
		list = []*model.Payment{}
	}
	return list, nil
}

// StageInfo stores pending payment details until the payment is finalized
func (s *PaymentService) StageInfo(ctx context.Context, req *model.PaymentInfoRequest) (model.InsertResult, error) {
	info := req.ToPaymentInfo()
	info.Email = normalizeEmail(info.Email)
	info.Timestamp = s.now()
	id, err := s.infos.Create(ctx, info)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to stage payment info: %w", err)
	}
	return model.NewInsertResult(id), nil
}

func (s *PaymentService) InfoByEmail(ctx context.Context, email string) ([]*model.PaymentInfo, error) {
	list, err := s.infos.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get payment info: %w", err)
	}
	if list == nil {
		list = []*model.PaymentInfo{}
	}
	return list, nil
}
