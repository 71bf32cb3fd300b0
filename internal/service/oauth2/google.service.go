package oauth2svc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/idtoken"
)

// GoogleUser is the verified identity returned by a successful exchange.
type GoogleUser struct {
	Sub           string // Google unique user ID
	Email         string
	Name          string
	EmailVerified bool
}

// Verifier exchanges an authorization code from the Google consent flow for
// verified identity claims.
type Verifier interface {
	Exchange(ctx context.Context, code string) (*GoogleUser, error)
}

const tokenEndpoint = "https://oauth2.googleapis.com/token"

type GoogleService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
}

func NewGoogleService(clientID, clientSecret, redirectURI string) *GoogleService {
	return &GoogleService{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Exchange trades the authorization code for tokens at Google's token
// endpoint, then validates the returned id_token against our client ID.
func (s *GoogleService) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	idToken, err := s.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	payload, err := idtoken.Validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("validate id_token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	sub, _ := payload.Claims["sub"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)

	return &GoogleUser{
		Sub:           sub,
		Email:         email,
		Name:          name,
		EmailVerified: emailVerified,
	}, nil
}

func (s *GoogleService) exchangeCode(ctx context.Context, code string) (string, error) {
	reqBody, err := json.Marshal(map[string]string{
		"code":          code,
		"client_id":     s.clientID,
		"client_secret": s.clientSecret,
		"redirect_uri":  s.redirectURI,
		"grant_type":    "authorization_code",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange failed: status %d", resp.StatusCode)
	}

	var tokenResp struct {
		IDToken     string `json:"id_token"`
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.IDToken == "" {
		return "", fmt.Errorf("token response missing id_token")
	}

	return tokenResp.IDToken, nil
}
