package mdlwr

import (
	"errors"
	"net/http"
	"time"

	"workplanner/internal/handlers/apierr"
	"workplanner/pkg/handlers/apidto"
	"workplanner/pkg/user"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	IdentityKey = "id"
	ScopeClaim  = "scope"
)

var errAuthUnavailable = errors.New("authentication backend unavailable")

var publicAuthMessages = map[string]struct{}{
	jwt.ErrMissingLoginValues.Error(): {},
	jwt.ErrExpiredToken.Error():       {},
	jwt.ErrEmptyAuthHeader.Error():    {},
	jwt.ErrInvalidAuthHeader.Error():  {},
	jwt.ErrMissingExpField.Error():    {},
	jwt.ErrWrongFormatOfExp.Error():   {},
}

type AuthConfig struct {
	Issuer  string
	Timeout time.Duration
	Keys    *KeyPair
}

// GetAuthMiddleware - gin-jwt вместо своей реализации: логин, проверка подписи и exp уже есть,
// остается только отдать ему пользователей и claims
func GetAuthMiddleware(logger *zap.SugaredLogger, users user.UsersRepo, cfg AuthConfig) (*jwt.GinJWTMiddleware, error) {
	if cfg.Keys == nil {
		return nil, errors.New("auth middleware requires an RSA key pair")
	}

	return jwt.New(&jwt.GinJWTMiddleware{
		Realm:            "workplanner",
		SigningAlgorithm: "RS256",
		PrivKeyBytes:     cfg.Keys.PrivatePEM,
		PubKeyBytes:      cfg.Keys.PublicPEM,
		Timeout:          cfg.Timeout,
		MaxRefresh:       cfg.Timeout,
		IdentityKey:      IdentityKey,
		TokenLookup:      "header: Authorization",
		TokenHeadName:    "Bearer",
		TimeFunc:         time.Now,
		Authenticator: func(c *gin.Context) (interface{}, error) {
			var req apidto.LoginRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				logger.Warnw("error parsing login request", "error", err)
				return nil, jwt.ErrMissingLoginValues
			}

			u, err := users.Authenticate(req.Username, req.Password)
			if err != nil {
				if errors.Is(err, user.ErrInvalidCredentials) {
					logger.Warnw("failed login", "username", req.Username)
					return nil, jwt.ErrFailedAuthentication
				}
				logger.Errorw("error authenticating user", "username", req.Username, "error", err)
				return nil, errAuthUnavailable
			}

			logger.Infow("user authenticated", "userID", u.ID, "username", u.Username)
			return u, nil
		},
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			u, ok := data.(*user.User)
			if !ok {
				return jwt.MapClaims{}
			}
			return jwt.MapClaims{
				"iss":       cfg.Issuer,
				"sub":       u.Username,
				IdentityKey: u.ID,
				ScopeClaim:  string(u.Role),
			}
		},
		Authorizator: func(data interface{}, _ *gin.Context) bool {
			return data != nil
		},
		LoginResponse: func(c *gin.Context, code int, token string, _ time.Time) {
			c.JSON(code, apidto.TokenResponse{Token: token})
		},
		RefreshResponse: func(c *gin.Context, code int, token string, _ time.Time) {
			c.JSON(code, apidto.TokenResponse{Token: token})
		},
		Unauthorized: unauthorizedHandler,
	})
}

func unauthorizedHandler(c *gin.Context, code int, message string) {
	switch {
	case code == http.StatusForbidden:
		apierr.AbortWithApiErr(c, http.StatusForbidden, apierr.Forbidden)
		return
	case message == jwt.ErrFailedAuthentication.Error():
		apierr.AbortWithApiErr(c, http.StatusUnauthorized, apierr.InvalidCredentials)
		return
	case message == errAuthUnavailable.Error() || message == jwt.ErrFailedTokenCreation.Error():
		apierr.AbortWithApiErr(c, http.StatusInternalServerError, apierr.InternalServerError)
		return
	}

	// наружу отдаем только тексты gin-jwt, ошибки парсинга токена и прочее заменяются общим сообщением
	resp := apierr.Unauthorized
	if _, ok := publicAuthMessages[message]; ok {
		resp.Message = message
	}
	apierr.AbortWithApiErr(c, http.StatusUnauthorized, resp)
}

// RequireScope ставится после MiddlewareFunc, claims к этому моменту уже в контексте
func RequireScope(scope user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := jwt.ExtractClaims(c)
		if got, _ := claims[ScopeClaim].(string); got != string(scope) {
			apierr.AbortWithApiErr(c, http.StatusForbidden, apierr.Forbidden)
			return
		}

		c.Next()
	}
}
