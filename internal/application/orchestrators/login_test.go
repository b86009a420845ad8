package orchestrators

import (
	"context"
	"errors"
	"testing"

	"junglepark/internal/domain/user"
)

// TestExecuteLogin_Valid tests a successful credential check.
func TestExecuteLogin_Valid(t *testing.T) {
	deps := LoginDeps{UserStore: seededUserStore()}
	res, err := ExecuteLogin(context.Background(), LoginInput{Username: "olga", Password: "olga-pass"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Username != "olga" || res.Role != user.RoleCashier {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.MustChangePassword {
		t.Error("expected MustChangePassword=false")
	}
}

// TestExecuteLogin_MustChangePassword tests flag propagation.
func TestExecuteLogin_MustChangePassword(t *testing.T) {
	store := &mockUserStore{users: []user.User{{
		ID: "u-1", Username: "fresh", PasswordHash: mustHash("temp-pass"),
		Role: user.RoleBarista, MustChangePassword: true,
	}}}
	res, err := ExecuteLogin(context.Background(), LoginInput{Username: "fresh", Password: "temp-pass"}, LoginDeps{UserStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.MustChangePassword {
		t.Error("expected MustChangePassword to propagate")
	}
}

// TestExecuteLogin_Invalid tests wrong password, unknown user, and blanks.
func TestExecuteLogin_Invalid(t *testing.T) {
	deps := LoginDeps{UserStore: seededUserStore()}
	cases := []LoginInput{
		{Username: "olga", Password: "wrong"},
		{Username: "ghost", Password: "olga-pass"},
		{Username: "", Password: "olga-pass"},
		{Username: "olga", Password: ""},
	}
	for _, input := range cases {
		if _, err := ExecuteLogin(context.Background(), input, deps); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("input %+v: expected ErrInvalidCredentials, got %v", input, err)
		}
	}
}

// TestExecuteChangePassword_Valid tests hash replacement and flag clearing.
func TestExecuteChangePassword_Valid(t *testing.T) {
	store := &mockUserStore{users: []user.User{{
		ID: "u-1", Username: "fresh", PasswordHash: mustHash("temp-pass"),
		Role: user.RoleBarista, MustChangePassword: true,
	}}}
	err := ExecuteChangePassword(context.Background(), ChangePasswordInput{
		Username: "fresh", CurrentPassword: "temp-pass", NewPassword: "new-pass-1", ConfirmPassword: "new-pass-1",
	}, ChangePasswordDeps{UserStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saved := store.users[0]
	if saved.MustChangePassword {
		t.Error("expected MustChangePassword cleared")
	}
	if !user.VerifyPassword(saved.PasswordHash, "new-pass-1") {
		t.Error("expected new password to verify")
	}
	if user.VerifyPassword(saved.PasswordHash, "temp-pass") {
		t.Error("old password must no longer verify")
	}
}

// TestExecuteChangePassword_Rejections tests the three failure branches.
func TestExecuteChangePassword_Rejections(t *testing.T) {
	deps := ChangePasswordDeps{UserStore: seededUserStore()}

	err := ExecuteChangePassword(context.Background(), ChangePasswordInput{
		Username: "olga", CurrentPassword: "wrong", NewPassword: "new-pass-1", ConfirmPassword: "new-pass-1",
	}, deps)
	if !errors.Is(err, ErrCurrentPasswordWrong) {
		t.Errorf("expected ErrCurrentPasswordWrong, got %v", err)
	}

	err = ExecuteChangePassword(context.Background(), ChangePasswordInput{
		Username: "olga", CurrentPassword: "olga-pass", NewPassword: "short", ConfirmPassword: "short",
	}, deps)
	if !errors.Is(err, user.ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}

	err = ExecuteChangePassword(context.Background(), ChangePasswordInput{
		Username: "olga", CurrentPassword: "olga-pass", NewPassword: "new-pass-1", ConfirmPassword: "different",
	}, deps)
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}
