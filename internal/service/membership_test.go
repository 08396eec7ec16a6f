package service

import (
	"context"
	"testing"

	"rentalhub/internal/model"
	"rentalhub/internal/testutil"
	"rentalhub/internal/txn"

	"go.uber.org/zap"
)

func newMembershipService(store *testutil.Store) *MembershipService {
	return NewMembershipService(store.UserRepo(), store.MemberRepo(), store.AgreementRepo(), txn.Direct{}, zap.NewNop())
}

func TestMembershipService_Revoke(t *testing.T) {
	store := testutil.NewStore()
	store.Users = append(store.Users,
		&model.User{Email: "ann@x.io", Role: model.RoleMember},
		&model.User{Email: "bob@x.io", Role: model.RoleMember},
	)
	store.Members = append(store.Members,
		&model.Member{Email: "ann@x.io", ApartmentNo: 2},
		&model.Member{Email: "bob@x.io", ApartmentNo: 1},
	)
	store.Agreements = append(store.Agreements,
		&model.Agreement{Email: "ann@x.io"},
		&model.Agreement{Email: "ann@x.io"},
		&model.Agreement{Email: "bob@x.io"},
	)
	svc := newMembershipService(store)

	change, err := svc.Revoke(context.Background(), "Ann@x.io")
	if err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if change.User.ModifiedCount != 1 || change.MembersDeleted != 1 || change.AgreementsDeleted != 2 {
		t.Errorf("unexpected change %+v", change)
	}
	if store.Users[0].Role != model.RoleUser {
		t.Errorf("ann role: got %q", store.Users[0].Role)
	}
	if store.Users[1].Role != model.RoleMember {
		t.Error("bob should be untouched")
	}
	if len(store.Members) != 1 || store.Members[0].Email != "bob@x.io" {
		t.Errorf("members left: %+v", store.Members)
	}
	if len(store.Agreements) != 1 {
		t.Errorf("agreements left: %d", len(store.Agreements))
	}
}

func TestMembershipService_RevokeUnknownEmail(t *testing.T) {
	store := testutil.NewStore()
	svc := newMembershipService(store)

	change, err := svc.Revoke(context.Background(), "ghost@x.io")
	if err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if change.User.MatchedCount != 0 || change.MembersDeleted != 0 || change.AgreementsDeleted != 0 {
		t.Errorf("expected a no-op, got %+v", change)
	}
}

func TestMembershipService_Decide(t *testing.T) {
	tests := []struct {
		name        string
		startRole   string
		member      bool
		decision    string
		wantRole    string
		wantMembers int
		wantUpdated int64
	}{
		{name: "approve applicant", startRole: model.RoleUser, decision: model.RoleMember, wantRole: model.RoleMember, wantUpdated: 1},
		{name: "reject applicant", startRole: model.RoleUser, decision: model.RoleUser, wantRole: model.RoleUser},
		{name: "reject existing member", startRole: model.RoleMember, member: true, decision: model.RoleUser, wantRole: model.RoleMember, wantMembers: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewStore()
			store.Users = append(store.Users, &model.User{Email: "ann@x.io", Role: tt.startRole})
			if tt.member {
				store.Members = append(store.Members, &model.Member{Email: "ann@x.io", ApartmentNo: 3})
			}
			store.Agreements = append(store.Agreements, &model.Agreement{Email: "ann@x.io"})
			svc := newMembershipService(store)

			change, err := svc.Decide(context.Background(), "ann@x.io", &model.RoleUpdateRequest{Role: tt.decision})
			if err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if change.AgreementsDeleted != 1 || len(store.Agreements) != 0 {
				t.Errorf("agreement should be consumed, change %+v", change)
			}
			if store.Users[0].Role != tt.wantRole {
				t.Errorf("role: got %q, want %q", store.Users[0].Role, tt.wantRole)
			}
			if len(store.Members) != tt.wantMembers {
				t.Errorf("members: got %d, want %d", len(store.Members), tt.wantMembers)
			}
			if change.User.ModifiedCount != tt.wantUpdated {
				t.Errorf("user modified: got %d, want %d", change.User.ModifiedCount, tt.wantUpdated)
			}
		})
	}
}

func TestMembershipService_Records(t *testing.T) {
	store := testutil.NewStore()
	svc := newMembershipService(store)
	ctx := context.Background()

	if list, err := svc.ListMembers(ctx); err != nil || list == nil || len(list) != 0 {
		t.Fatalf("empty members should be [], got %v %v", list, err)
	}
	if m, err := svc.GetMember(ctx, "ann@x.io"); err != nil || m != nil {
		t.Fatalf("missing member should be nil, got %v %v", m, err)
	}

	if _, err := svc.CreateMember(ctx, &model.MemberRequest{Email: "ANN@x.io", ApartmentNo: 2}); err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	m, err := svc.GetMember(ctx, "ann@x.io")
	if err != nil || m == nil || m.ApartmentNo != 2 {
		t.Fatalf("GetMember = %+v, %v", m, err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.CreateAgreement(ctx, &model.AgreementRequest{Email: "ann@x.io"}); err != nil {
			t.Fatalf("CreateAgreement: %v", err)
		}
	}
	list, err := svc.AgreementsByEmail(ctx, "ann@x.io")
	if err != nil || len(list) != 2 {
		t.Fatalf("AgreementsByEmail = %d, %v", len(list), err)
	}
	if list[0].Status != model.AgreementPending {
		t.Errorf("status: got %q", list[0].Status)
	}
	none, err := svc.AgreementsByEmail(ctx, "bob@x.io")
	if err != nil || none == nil || len(none) != 0 {
		t.Errorf("no agreements should be [], got %v %v", none, err)
	}
}
