package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentalhub/internal/model"
	"rentalhub/internal/testutil"
)

func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCouponService_Create(t *testing.T) {
	store := testutil.NewStore()
	svc := NewCouponService(store.CouponRepo())
	ctx := context.Background()

	res, err := svc.Create(ctx, &model.CouponRequest{Code: "<b>SAVE10</b>", Discount: 10})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.InsertedID == "" {
		t.Error("missing inserted id")
	}
	c := store.Coupons[0]
	if c.Code != "SAVE10" || !c.Available {
		t.Errorf("unexpected coupon %+v", c)
	}

	if _, err := svc.Create(ctx, &model.CouponRequest{Code: "SAVE10"}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate code: got %v, want ErrConflict", err)
	}
	if _, err := svc.Create(ctx, &model.CouponRequest{Code: "<script></script>"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty code: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create(ctx, &model.CouponRequest{Code: "OFF", Available: boolPtr(false)}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if store.Coupons[1].Available {
		t.Error("explicit available=false should be kept")
	}
}

func TestCouponService_Lookups(t *testing.T) {
	store := testutil.NewStore()
	svc := NewCouponService(store.CouponRepo())
	ctx := context.Background()

	res, err := svc.Create(ctx, &model.CouponRequest{Code: "SAVE10", Discount: 10})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if c, err := svc.GetByCode(ctx, "SAVE10"); err != nil || c == nil {
		t.Fatalf("GetByCode = %v, %v", c, err)
	}
	if c, err := svc.GetByCode(ctx, "NOPE"); err != nil || c != nil {
		t.Fatalf("unknown code should be nil, got %v, %v", c, err)
	}
	if c, err := svc.GetByID(ctx, res.InsertedID); err != nil || c == nil || c.Code != "SAVE10" {
		t.Fatalf("GetByID = %v, %v", c, err)
	}
	if _, err := svc.GetByID(ctx, "not-an-id"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("malformed id: got %v, want ErrInvalidID", err)
	}
	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 {
		t.Errorf("List = %d, %v", len(list), err)
	}
}

func TestCouponService_CodeWithPunctuation(t *testing.T) {
	store := testutil.NewStore()
	svc := NewCouponService(store.CouponRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &model.CouponRequest{Code: "R&B'25", Discount: 25, Description: "Rock & roll's back"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored := store.Coupons[0]
	if stored.Code != "R&B'25" || stored.Description != "Rock & roll's back" {
		t.Errorf("stored %q / %q", stored.Code, stored.Description)
	}

	for _, code := range []string{"R&B'25", " R&B'25 ", "<b>R&B'25</b>"} {
		c, err := svc.GetByCode(ctx, code)
		if err != nil || c == nil || c.ID != stored.ID {
			t.Errorf("GetByCode(%q) = %v, %v", code, c, err)
		}
	}
	if _, err := svc.Create(ctx, &model.CouponRequest{Code: "<i>R&B'25</i>"}); !errors.Is(err, ErrConflict) {
		t.Errorf("same code behind markup: got %v, want ErrConflict", err)
	}
	if c, err := svc.GetByCode(ctx, "<script></script>"); err != nil || c != nil {
		t.Errorf("markup-only code should be nil, got %v, %v", c, err)
	}
}

func TestCouponService_Update(t *testing.T) {
	store := testutil.NewStore()
	svc := NewCouponService(store.CouponRepo())
	ctx := context.Background()

	a, _ := svc.Create(ctx, &model.CouponRequest{Code: "A", Discount: 5, Description: "five"})
	if _, err := svc.Create(ctx, &model.CouponRequest{Code: "B"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	res, err := svc.Update(ctx, a.InsertedID, &model.CouponUpdateRequest{Discount: floatPtr(15), Available: boolPtr(false)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Errorf("unexpected result %+v", res)
	}
	c := store.Coupons[0]
	if c.Discount != 15 || c.Available || c.Description != "five" || c.Code != "A" {
		t.Errorf("partial update applied wrongly: %+v", c)
	}

	if _, err := svc.Update(ctx, a.InsertedID, &model.CouponUpdateRequest{Code: strPtr("B")}); !errors.Is(err, ErrConflict) {
		t.Errorf("taken code: got %v, want ErrConflict", err)
	}
	if _, err := svc.Update(ctx, a.InsertedID, &model.CouponUpdateRequest{Code: strPtr("  ")}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank code: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Update(ctx, "zz", &model.CouponUpdateRequest{}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("malformed id: got %v, want ErrInvalidID", err)
	}

	stamped := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamped }
	res, err = svc.Update(ctx, a.InsertedID, &model.CouponUpdateRequest{})
	if err != nil || res.MatchedCount != 1 {
		t.Fatalf("empty update = %+v, %v", res, err)
	}
	if got := store.Coupons[0].UpdatedAt; !got.Equal(stamped) {
		t.Errorf("empty update should still stamp updatedAt, got %v", got)
	}

	missing, err := svc.Update(ctx, "0123456789abcdef01234567", &model.CouponUpdateRequest{Discount: floatPtr(1)})
	if err != nil || missing.MatchedCount != 0 {
		t.Errorf("unknown id should match nothing, got %+v, %v", missing, err)
	}
}
