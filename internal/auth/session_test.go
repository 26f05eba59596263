package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/olegiv/academy-go/internal/model"
	"github.com/olegiv/academy-go/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.Memory) {
	t.Helper()
	m := store.New(store.WithLatency(store.Latency{}))
	if err := m.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return NewManager(m.Users), m
}

func TestLoginAndUserFromToken(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	token, u, err := mgr.Login(ctx, 1)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty session token")
	}
	if !u.IsAdmin {
		t.Errorf("fixture user 1 should be an admin")
	}

	got, err := mgr.UserFromToken(ctx, token)
	if err != nil {
		t.Fatalf("UserFromToken: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("session user id = %d, want %d", got.ID, u.ID)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	mgr, _ := newTestManager(t)

	if _, _, err := mgr.Login(context.Background(), 9999); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUserFromTokenAfterLogout(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	token, _, err := mgr.Login(ctx, 2)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	mgr.Logout(token)
	if _, err := mgr.UserFromToken(ctx, token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestSessionSeesAdminRoleChange(t *testing.T) {
	mgr, mem := newTestManager(t)
	ctx := context.Background()

	token, u, err := mgr.Login(ctx, 4) // free user
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Role != "free" {
		t.Fatalf("fixture user 4 role = %q, want free", u.Role)
	}

	role := "member"
	if _, err := mem.Users.Update(ctx, 4, model.UserPatch{Role: &role}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := mgr.UserFromToken(ctx, token)
	if err != nil {
		t.Fatalf("UserFromToken: %v", err)
	}
	if got.Role != role {
		t.Errorf("session role = %q, want %q after admin update", got.Role, role)
	}
}

func TestSessionDroppedWhenUserDeleted(t *testing.T) {
	mgr, mem := newTestManager(t)
	ctx := context.Background()

	token, _, err := mgr.Login(ctx, 5)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := mem.Users.Delete(ctx, 5); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := mgr.UserFromToken(ctx, token); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	// The dead session is gone entirely on the next check.
	if _, err := mgr.UserFromToken(ctx, token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("second check err = %v, want ErrNoSession", err)
	}
}
