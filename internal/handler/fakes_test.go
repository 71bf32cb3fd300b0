package handler

import (
	"context"
	"sync"
	"time"

	"notes-auth/internal/domain"
	oauth2svc "notes-auth/internal/service/oauth2"
	"notes-auth/internal/usecase"
	"notes-auth/pkg/jwtutil"
	"notes-auth/pkg/xerrors"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Email]; ok {
		return nil, xerrors.ErrEmailAlreadyInUse
	}
	cp := *u
	s.users[u.Email] = &cp
	out := cp
	return &out, nil
}

func (s *fakeUserStore) ConsumeOTP(_ context.Context, email, code string, now time.Time) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok || u.OTP == nil || *u.OTP != code || u.OTPExpires == nil || !u.OTPExpires.After(now) {
		return nil, xerrors.ErrInvalidOrExpiredOTP
	}
	u.IsVerified = true
	u.OTP = nil
	u.OTPExpires = nil
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) ReplaceOTP(_ context.Context, email, code string, expires time.Time) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok || u.IsVerified {
		return nil, xerrors.ErrUserNotFoundOrVerified
	}
	u.OTP = &code
	u.OTPExpires = &expires
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) LinkGoogle(_ context.Context, id, googleID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.IsGoogleUser = true
			u.GoogleID = &googleID
			u.IsVerified = true
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

// otp returns the outstanding code for an email, for driving the verify flow
// from tests.
func (s *fakeUserStore) otp(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[email]; ok && u.OTP != nil {
		return *u.OTP
	}
	return ""
}

type noopMailer struct{}

func (noopMailer) SendOTP(userID, to, code string, ttl time.Duration) {}

type fakeVerifier struct {
	user *oauth2svc.GoogleUser
	err  error
}

func (v *fakeVerifier) Exchange(_ context.Context, _ string) (*oauth2svc.GoogleUser, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.user, nil
}

func newTestAuthHandler(store *fakeUserStore) *AuthHandler {
	tokens := jwtutil.NewIssuer([]byte("test-secret"), time.Hour, 24*time.Hour)
	uc := usecase.NewUserUsecase(store, noopMailer{}, &fakeVerifier{}, tokens, 10*time.Minute)
	return NewAuthHandler(uc, 72*time.Hour)
}
