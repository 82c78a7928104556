package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	memberIDKey   = "memberID"
	memberIDClaim = "memberId"
	bearerPrefix  = "Bearer "
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrNoMemberID   = errors.New("token carries no member id")
)

// MemberAuth verifies the HS256 bearer token and stores its memberId claim on the request.
func MemberAuth(secret string, logger *zap.Logger) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return service.NewServiceError(constants.ErrCodeUnauthorized, ErrMissingToken)
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, bearerPrefix), claims,
			func(token *jwt.Token) (interface{}, error) {
				return key, nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil {
			logger.Warn("Rejected bearer token", zap.String("path", c.Path()), zap.Error(err))
			return service.NewServiceError(constants.ErrCodeUnauthorized, err)
		}

		memberID := claimString(claims[memberIDClaim])
		if memberID == "" {
			return service.NewServiceError(constants.ErrCodeUnauthorized, ErrNoMemberID)
		}

		c.Locals(memberIDKey, memberID)
		return c.Next()
	}
}

// MemberID returns the member id stored by MemberAuth.
func MemberID(c *fiber.Ctx) string {
	memberID, _ := c.Locals(memberIDKey).(string)
	return memberID
}

func claimString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
