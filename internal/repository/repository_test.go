package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentalhub/internal/model"
	"rentalhub/internal/repository"
	"rentalhub/internal/testutil"

	"go.uber.org/zap"
)

func TestMongoRepositories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	if err := repository.EnsureIndexes(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	// second run must be a no-op
	if err := repository.EnsureIndexes(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureIndexes again: %v", err)
	}

	t.Run("users", func(t *testing.T) {
		users := repository.NewUserRepository(db)
		if u, err := users.FindByEmail(ctx, "ann@x.io"); err != nil || u != nil {
			t.Fatalf("missing user: %v, %v", u, err)
		}
		if _, err := users.Create(ctx, &model.User{Email: "ann@x.io", Role: model.RoleUser}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := users.Create(ctx, &model.User{Email: "ann@x.io"}); !errors.Is(err, repository.ErrDuplicate) {
			t.Fatalf("duplicate email: got %v", err)
		}
		res, err := users.SetRole(ctx, "ann@x.io", model.RoleMember, time.Now())
		if err != nil || res.ModifiedCount != 1 {
			t.Fatalf("SetRole: %+v, %v", res, err)
		}
		if n, err := users.CountByRole(ctx, model.RoleMember); err != nil || n != 1 {
			t.Errorf("CountByRole = %d, %v", n, err)
		}
	})

	t.Run("apartments", func(t *testing.T) {
		apts := repository.NewApartmentRepository(db)
		if n, err := apts.SumRooms(ctx); err != nil || n != 0 {
			t.Fatalf("empty sum = %d, %v", n, err)
		}
		for i := 1; i <= 4; i++ {
			if _, err := apts.Create(ctx, &model.Apartment{ApartmentNo: i, BlockName: "A"}); err != nil {
				t.Fatalf("Create: %v", err)
			}
		}
		page, err := apts.List(ctx, 2, 2)
		if err != nil || len(page) != 2 {
			t.Fatalf("List = %d, %v", len(page), err)
		}
		if n, err := apts.SumRooms(ctx); err != nil || n != 10 {
			t.Errorf("SumRooms = %d, %v", n, err)
		}
	})

	t.Run("coupons", func(t *testing.T) {
		coupons := repository.NewCouponRepository(db)
		id, err := coupons.Create(ctx, &model.Coupon{Code: "SAVE10", Discount: 10})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := coupons.Create(ctx, &model.Coupon{Code: "SAVE10"}); !errors.Is(err, repository.ErrDuplicate) {
			t.Fatalf("duplicate code: got %v", err)
		}
		discount := 25.0
		res, err := coupons.Update(ctx, id, &model.CouponUpdateRequest{Discount: &discount}, time.Now())
		if err != nil || res.MatchedCount != 1 {
			t.Fatalf("Update: %+v, %v", res, err)
		}
		c, err := coupons.FindByID(ctx, id)
		if err != nil || c == nil || c.Discount != 25 || c.Code != "SAVE10" {
			t.Errorf("FindByID = %+v, %v", c, err)
		}
	})

	t.Run("payments", func(t *testing.T) {
		payments := repository.NewPaymentRepository(db)
		infos := repository.NewPaymentInfoRepository(db)
		for _, month := range []string{"January", "February"} {
			if _, err := payments.Create(ctx, &model.Payment{Email: "ann@x.io", Date: month}); err != nil {
				t.Fatalf("Create: %v", err)
			}
		}
		if list, err := payments.ListByEmail(ctx, "ann@x.io", "February"); err != nil || len(list) != 1 {
			t.Errorf("ListByEmail month = %d, %v", len(list), err)
		}
		if list, err := payments.ListByEmail(ctx, "ann@x.io", ""); err != nil || len(list) != 2 {
			t.Errorf("ListByEmail = %d, %v", len(list), err)
		}

		for _, email := range []string{"ann@x.io", "bob@x.io"} {
			if _, err := infos.Create(ctx, &model.PaymentInfo{Email: email}); err != nil {
				t.Fatalf("Create info: %v", err)
			}
		}
		if n, err := infos.DeleteByEmail(ctx, "bob@x.io"); err != nil || n != 1 {
			t.Errorf("DeleteByEmail = %d, %v", n, err)
		}
		if n, err := infos.DeleteAll(ctx); err != nil || n != 1 {
			t.Errorf("DeleteAll = %d, %v", n, err)
		}
	})
}
