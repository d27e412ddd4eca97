package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := r.FindByEmail(ctx, email)
	return u != nil, nil
}

// fakePasswords hashes by prefixing, which is enough to tell hashes apart.
type fakePasswords struct{}

func (fakePasswords) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswords) VerifyPassword(hashed, password string) error {
	if hashed != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswords) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(_ context.Context, userID uuid.UUID, _ string) (*adapter.AccessToken, error) {
	return &adapter.AccessToken{Token: "token-" + userID.String(), ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (fakeTokens) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used")
}

type fakeResetTokens struct {
	tokens map[string]uuid.UUID
}

func (s *fakeResetTokens) GenerateResetToken(_ context.Context, userID uuid.UUID) (*adapter.PasswordResetToken, error) {
	token := "reset-" + userID.String()
	s.tokens[token] = userID
	return &adapter.PasswordResetToken{Token: token, UserID: userID}, nil
}

func (s *fakeResetTokens) ValidateResetToken(_ context.Context, token string) (*adapter.PasswordResetToken, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return nil, errors.New("invalid or expired reset token")
	}
	return &adapter.PasswordResetToken{Token: token, UserID: userID}, nil
}

func (s *fakeResetTokens) InvalidateResetToken(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

type fakeEmails struct {
	queued []adapter.QueuePasswordResetInput
}

func (e *fakeEmails) QueuePasswordResetEmail(_ context.Context, input adapter.QueuePasswordResetInput) error {
	e.queued = append(e.queued, input)
	return nil
}

type inlineTx struct{}

func (inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	return authErr.Code
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    RegisterUserInput
		wantCode domainerror.AuthErrorCode
	}{
		{
			name:  "normalizes email",
			input: RegisterUserInput{Email: "  Ana@Example.COM ", Name: " Ana ", Password: "longenough"},
		},
		{
			name:     "missing name",
			input:    RegisterUserInput{Email: "ana@example.com", Password: "longenough"},
			wantCode: domainerror.ErrCodeMissingFields,
		},
		{
			name:     "invalid email",
			input:    RegisterUserInput{Email: "ana@", Name: "Ana", Password: "longenough"},
			wantCode: domainerror.ErrCodeInvalidEmail,
		},
		{
			name:     "weak password",
			input:    RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "short"},
			wantCode: domainerror.ErrCodeWeakPassword,
		},
		{
			name:     "email taken in another case",
			input:    RegisterUserInput{Email: "TAKEN@example.com", Name: "Ana", Password: "longenough"},
			wantCode: domainerror.ErrCodeEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			existing := entity.NewUser("taken@example.com", "Taken", "hashed:whatever")
			users.users[existing.ID] = existing
			uc := NewRegisterUserUseCase(users, fakePasswords{}, fakeTokens{})

			out, err := uc.Execute(ctx, tt.input)

			if tt.wantCode != "" {
				if code := authCode(t, err); code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.User.Email != "ana@example.com" || out.User.Name != "Ana" {
				t.Errorf("unexpected user %q/%q", out.User.Email, out.User.Name)
			}
			if out.User.PasswordHash != "hashed:longenough" {
				t.Error("expected the password to be stored hashed")
			}
			if out.AccessToken == nil || out.AccessToken.Token == "" {
				t.Error("expected an access token")
			}
		})
	}
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:longenough")
	users.users[user.ID] = user
	uc := NewLoginUserUseCase(users, fakePasswords{}, fakeTokens{})

	out, err := uc.Execute(ctx, LoginUserInput{Email: "ANA@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.ID != user.ID {
		t.Error("expected the stored user")
	}

	for _, input := range []LoginUserInput{
		{Email: "ana@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "longenough"},
	} {
		_, err := uc.Execute(ctx, input)
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("%s: expected code %s, got %s", input.Email, domainerror.ErrCodeInvalidCredentials, code)
		}
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:oldpassword")
	users.users[user.ID] = user
	resets := &fakeResetTokens{tokens: make(map[string]uuid.UUID)}
	emails := &fakeEmails{}

	forgot := NewForgotPasswordUseCase(users, resets, emails, "https://app.korven.test")
	reset := NewResetPasswordUseCase(users, fakePasswords{}, resets, inlineTx{})

	out, err := forgot.Execute(ctx, ForgotPasswordInput{Email: "nobody@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != forgotPasswordMessage || len(emails.queued) != 0 {
		t.Fatal("expected the generic answer without an email for unknown accounts")
	}

	if _, err := forgot.Execute(ctx, ForgotPasswordInput{Email: "Ana@Example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emails.queued) != 1 {
		t.Fatalf("expected one queued email, got %d", len(emails.queued))
	}
	queued := emails.queued[0]
	if queued.UserEmail != "ana@example.com" {
		t.Errorf("expected email to ana@example.com, got %s", queued.UserEmail)
	}
	token := "reset-" + user.ID.String()
	if !strings.HasPrefix(queued.ResetURL, "https://app.korven.test/reset-password?token=") ||
		!strings.HasSuffix(queued.ResetURL, token) {
		t.Errorf("unexpected reset URL %s", queued.ResetURL)
	}

	_, err = reset.Execute(ctx, ResetPasswordInput{Token: token, NewPassword: "short"})
	if code := authCode(t, err); code != domainerror.ErrCodeWeakPassword {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, code)
	}

	if _, err := reset.Execute(ctx, ResetPasswordInput{Token: token, NewPassword: "newpassword"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.PasswordHash != "hashed:newpassword" {
		t.Error("expected the password hash to change")
	}

	_, err = reset.Execute(ctx, ResetPasswordInput{Token: token, NewPassword: "anotherpassword"})
	if code := authCode(t, err); code != domainerror.ErrCodeInvalidResetToken {
		t.Errorf("expected reused token to fail with %s, got %s", domainerror.ErrCodeInvalidResetToken, code)
	}
}
