package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	connect_go "github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"pouringat.com/PouringAt/configs"
)

const RoleAdmin = "admin"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("not allowed")
)

type IdentityKey struct{}

// Identity is the caller as asserted by a verified bearer token.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, IdentityKey{}, identity)
}

func FromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(IdentityKey{}).(*Identity)

	return identity, ok && identity != nil
}

// RequireUser returns the caller's identity, or an Unauthenticated error for anonymous calls.
func RequireUser(ctx context.Context) (*Identity, error) {
	identity, ok := FromContext(ctx)
	if !ok {
		return nil, connect_go.NewError(connect_go.CodeUnauthenticated, ErrUnauthenticated)
	}

	return identity, nil
}

func RequireAdmin(ctx context.Context) (*Identity, error) {
	identity, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if !identity.IsAdmin() {
		return nil, connect_go.NewError(connect_go.CodePermissionDenied, ErrForbidden)
	}

	return identity, nil
}

type Manager struct {
	conf   configs.Auth
	logger *zap.Logger
}

func NewAuthManager(conf configs.Auth, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

// GrpcAuthInterceptor attaches the identity from a bearer token to the context. Calls without an
// Authorization header pass through anonymously; calls with a bad token are rejected.
func (a *Manager) GrpcAuthInterceptor() connect_go.UnaryInterceptorFunc {
	return func(next connect_go.UnaryFunc) connect_go.UnaryFunc {
		return func(ctx context.Context, req connect_go.AnyRequest) (connect_go.AnyResponse, error) {
			accessToken, err := extractTokenFromHeader(req.Header())
			if err != nil {
				return nil, connect_go.NewError(connect_go.CodeUnauthenticated, err)
			}

			if accessToken == nil {
				return next(ctx, req)
			}

			identity, err := a.Verify(*accessToken)
			if err != nil {
				a.logger.Info("rejected token", zap.String("procedure", req.Spec().Procedure), zap.Error(err))

				return nil, connect_go.NewError(connect_go.CodeUnauthenticated, err)
			}

			return next(WithIdentity(ctx, identity), req)
		}
	}
}

// Verify checks the token signature and registered claims and returns the identity it carries.
func (a *Manager) Verify(accessToken string) (*Identity, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %w", err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if a.conf.Audience != "" && !claims.VerifyAudience(a.conf.Audience, true) {
		return nil, errors.New("unexpected audience")
	}

	if a.conf.Issuer != "" && !claims.VerifyIssuer(a.conf.Issuer, true) {
		return nil, errors.New("unexpected issuer")
	}

	userID, found := claims["sub"].(string)
	if !found || userID == "" {
		return nil, errors.New("unable to get user id from token")
	}

	role, _ := claims["role"].(string)

	return &Identity{UserID: userID, Role: role}, nil
}

func extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return nil, nil //nolint:nilnil // anonymous call
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, errors.New("authorization format must be Bearer {token}")
	}

	return &token, nil
}
