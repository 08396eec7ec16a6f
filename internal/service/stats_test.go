package service

import (
	"context"
	"testing"

	"rentalhub/internal/model"
	"rentalhub/internal/testutil"

	"go.uber.org/zap"
)

func TestStatsService_AdminStats(t *testing.T) {
	store := testutil.NewStore()
	store.Apartments = append(store.Apartments,
		&model.Apartment{ApartmentNo: 4},
		&model.Apartment{ApartmentNo: 6},
	)
	store.Members = append(store.Members, &model.Member{ApartmentNo: 3})
	store.Users = append(store.Users,
		&model.User{Email: "a@x.io", Role: model.RoleUser},
		&model.User{Email: "b@x.io", Role: model.RoleUser},
		&model.User{Email: "c@x.io", Role: model.RoleMember},
		&model.User{Email: "d@x.io", Role: model.RoleAdmin},
	)
	svc := NewStatsService(store.ApartmentRepo(), store.MemberRepo(), store.UserRepo(), zap.NewNop())

	got, err := svc.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	want := model.AdminStats{
		TotalRooms:          10,
		AgreedRooms:         3,
		AvailableRooms:      7,
		AvailablePercentage: 70,
		AgreedPercentage:    30,
		Users:               2,
		Members:             1,
	}
	if *got != want {
		t.Errorf("AdminStats = %+v, want %+v", *got, want)
	}
}

func TestStatsService_EmptyAndOverbooked(t *testing.T) {
	store := testutil.NewStore()
	svc := NewStatsService(store.ApartmentRepo(), store.MemberRepo(), store.UserRepo(), zap.NewNop())

	got, err := svc.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	if *got != (model.AdminStats{}) {
		t.Errorf("empty database should give all zeros, got %+v", *got)
	}

	store.Apartments = append(store.Apartments, &model.Apartment{ApartmentNo: 2})
	store.Members = append(store.Members, &model.Member{ApartmentNo: 5})
	got, err = svc.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	if got.AvailableRooms != -3 || got.AgreedPercentage != 250 {
		t.Errorf("overbooked stats: %+v", *got)
	}
}

func TestStatsService_Failure(t *testing.T) {
	store := testutil.NewStore()
	store.Fail = true
	svc := NewStatsService(store.ApartmentRepo(), store.MemberRepo(), store.UserRepo(), zap.NewNop())
	if _, err := svc.AdminStats(context.Background()); err == nil {
		t.Error("expected error")
	}
}
