package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"metroll_cms/client"
	"metroll_cms/helper"
	"metroll_cms/model"
)

const loginPath = "/auth/login"

// AuthService exchanges the identity-provider bearer token for an
// application session. The credential-checking serverless functions
// behind the upstream endpoint stay black boxes to us.
type AuthService struct {
	Client     *client.Client
	Sessions   helper.SessionStore
	SessionTTL time.Duration
}

func NewAuthService(c *client.Client, sessions helper.SessionStore, ttl time.Duration) *AuthService {
	return &AuthService{Client: c, Sessions: sessions, SessionTTL: ttl}
}

// Login sends the identity token upstream, receives the account's role,
// and opens a CMS session carrying that token for outbound injection.
func (s *AuthService) Login(ctx context.Context, idToken string) (*model.Session, string, error) {
	// The exchange call itself authenticates with the raw identity token.
	ctx = client.WithSession(ctx, &model.Session{UpstreamToken: idToken})
	result, err := client.Decode[model.LoginResult](s.Client.Perform(ctx, http.MethodPost, loginPath, nil, nil))
	if err != nil {
		return nil, "", err
	}

	sess := &model.Session{
		ID:            uuid.NewString(),
		AccountID:     result.AccountID,
		Email:         result.Email,
		Role:          result.Role,
		UpstreamToken: idToken,
		ExpiresAt:     time.Now().Add(s.SessionTTL),
	}
	if err := s.Sessions.Save(ctx, sess, s.SessionTTL); err != nil {
		return nil, "", err
	}

	token, err := helper.GenerateSessionToken(model.TokenClaim{
		SessionID: sess.ID,
		AccountID: sess.AccountID,
		Email:     sess.Email,
		Role:      sess.Role,
	}, s.SessionTTL)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Destroy(ctx, sessionID)
}
