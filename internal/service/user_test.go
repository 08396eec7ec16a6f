package service

import (
	"context"
	"testing"

	"rentalhub/internal/model"
	"rentalhub/internal/testutil"
)

func TestUserService_UpsertIsIdempotent(t *testing.T) {
	store := testutil.NewStore()
	svc := NewUserService(store.UserRepo())
	ctx := context.Background()

	first, created, err := svc.Upsert(ctx, &model.UpsertUserRequest{Name: "Ann", Email: " Ann@X.io "})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !created {
		t.Error("first upsert should create")
	}
	if first.Email != "ann@x.io" || first.Role != model.RoleUser {
		t.Errorf("unexpected user %+v", first)
	}

	second, created, err := svc.Upsert(ctx, &model.UpsertUserRequest{Name: "Other", Email: "ann@x.io"})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created {
		t.Error("second upsert should not create")
	}
	if second.ID != first.ID || second.Name != "Ann" {
		t.Errorf("existing user should be returned unchanged, got %+v", second)
	}
	if len(store.Users) != 1 {
		t.Errorf("users: got %d, want 1", len(store.Users))
	}
}

func TestUserService_UpsertKeepsRole(t *testing.T) {
	store := testutil.NewStore()
	store.Users = append(store.Users, &model.User{Email: "boss@x.io", Role: model.RoleAdmin})
	svc := NewUserService(store.UserRepo())

	u, created, err := svc.Upsert(context.Background(), &model.UpsertUserRequest{Email: "boss@x.io"})
	if err != nil || created {
		t.Fatalf("Upsert: created=%v err=%v", created, err)
	}
	if u.Role != model.RoleAdmin {
		t.Errorf("role: got %q, want admin", u.Role)
	}
}

func TestUserService_IsAdmin(t *testing.T) {
	store := testutil.NewStore()
	store.Users = append(store.Users,
		&model.User{Email: "boss@x.io", Role: model.RoleAdmin},
		&model.User{Email: "ann@x.io", Role: model.RoleMember},
	)
	svc := NewUserService(store.UserRepo())
	ctx := context.Background()

	tests := []struct {
		email string
		want  bool
	}{
		{"boss@x.io", true},
		{"BOSS@x.io", true},
		{"ann@x.io", false},
		{"ghost@x.io", false},
	}
	for _, tt := range tests {
		got, err := svc.IsAdmin(ctx, tt.email)
		if err != nil {
			t.Fatalf("IsAdmin(%q): %v", tt.email, err)
		}
		if got != tt.want {
			t.Errorf("IsAdmin(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}

	store.Fail = true
	if _, err := svc.IsAdmin(ctx, "boss@x.io"); err == nil {
		t.Error("expected lookup failure to surface")
	}
}

func TestUserService_SetRole(t *testing.T) {
	store := testutil.NewStore()
	store.Users = append(store.Users, &model.User{Email: "ann@x.io", Role: model.RoleUser})
	svc := NewUserService(store.UserRepo())
	ctx := context.Background()

	if _, err := svc.SetRole(ctx, "ann@x.io", "owner"); err == nil {
		t.Error("unknown role should be rejected")
	}
	res, err := svc.SetRole(ctx, "ann@x.io", model.RoleAdmin)
	if err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	if res.MatchedCount != 1 || store.Users[0].Role != model.RoleAdmin {
		t.Errorf("role not applied: %+v", res)
	}
}
