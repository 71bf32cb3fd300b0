package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"notes-auth/internal/domain"
	oauth2svc "notes-auth/internal/service/oauth2"
	"notes-auth/pkg/jwtutil"
	"notes-auth/pkg/xerrors"
)

// fakeUserStore mirrors the repository's single-operation semantics in
// memory: ConsumeOTP matches and clears in one step, ReplaceOTP only touches
// unverified records.
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
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
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
	u.UpdatedAt = time.Now()
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
	u.UpdatedAt = time.Now()
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
			u.UpdatedAt = time.Now()
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

type sentOTP struct {
	UserID string
	To     string
	Code   string
	TTL    time.Duration
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentOTP
}

func (m *fakeMailer) SendOTP(userID, to, code string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentOTP{UserID: userID, To: to, Code: code, TTL: ttl})
}

func (m *fakeMailer) last() (sentOTP, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return sentOTP{}, false
	}
	return m.sent[len(m.sent)-1], true
}

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

var errExchange = errors.New("token exchange refused")

func newTestUsecase(store *fakeUserStore, mailer *fakeMailer, verifier *fakeVerifier) *UserUsecase {
	tokens := jwtutil.NewIssuer([]byte("test-secret"), time.Hour, 24*time.Hour)
	return NewUserUsecase(store, mailer, verifier, tokens, 10*time.Minute)
}
