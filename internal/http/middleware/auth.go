package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"donorhub.app/api/common/logger"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
)

const userContextKey = "donorhub.user"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

// Claims is the access token issued by the identity provider.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

type AuthConfig struct {
	Secret string
	Issuer string
	Leeway time.Duration
}

// Authenticator verifies bearer tokens and mirrors the caller into the users table.
type Authenticator struct {
	users  service.UserService
	cfg    AuthConfig
	parser *jwt.Parser
}

func NewAuthenticator(users service.UserService, cfg AuthConfig) *Authenticator {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	return &Authenticator{
		users:  users,
		cfg:    cfg,
		parser: jwt.NewParser(opts...),
	}
}

// Authenticate resolves the caller from the bearer token. Anonymous requests pass
// through, a token that is present must be valid.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := a.authenticate(c)
		switch {
		case err == nil, errors.Is(err, errMissingToken):
			c.Next()
		case errors.Is(err, errInvalidToken):
			slog.InfoContext(c.Request.Context(), "authentication failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		default:
			slog.ErrorContext(c.Request.Context(), "failed to resolve caller", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
	}
}

// RequireUser rejects anonymous requests. It must run after Authenticate.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.Next()
	}
}

func (a *Authenticator) authenticate(c *gin.Context) error {
	ctx := c.Request.Context()

	header := c.GetHeader("Authorization")
	if header == "" {
		return errMissingToken
	}
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: malformed authorization header", errInvalidToken)
	}

	identity, err := a.verify(strings.TrimSpace(raw))
	if err != nil {
		return err
	}

	user, err := a.users.Sync(ctx, identity)
	if err != nil {
		return fmt.Errorf("syncing user: %w", err)
	}

	c.Set(userContextKey, user)
	c.Request = c.Request.WithContext(logger.WithLogFields(ctx, logger.LogFields{UserID: &user.ID}))
	return nil
}

func (a *Authenticator) verify(raw string) (service.Identity, error) {
	claims := &Claims{}
	_, err := a.parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.cfg.Secret), nil
	})
	if err != nil {
		return service.Identity{}, fmt.Errorf("%w: %w", errInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return service.Identity{}, fmt.Errorf("%w: subject is not a uuid", errInvalidToken)
	}

	return service.Identity{
		UserID:   userID,
		Username: claims.Username,
		Email:    claims.Email,
		IsStaff:  claims.IsStaff,
	}, nil
}

// CurrentUser returns the authenticated caller, if any.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok && user != nil
}

// Actor returns the caller or an anonymous user that owns nothing and is not staff.
func Actor(c *gin.Context) *model.User {
	if user, ok := CurrentUser(c); ok {
		return user
	}
	return &model.User{}
}

// SetUser stores the caller on the gin context.
func SetUser(c *gin.Context, user *model.User) {
	c.Set(userContextKey, user)
}
