package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/marlowhealth/compass_backend/pkg/paseto"
)

// AuthRequired verifies the Bearer PASETO access token minted by the identity
// service and, when the token names an identity session, checks that the
// session has not been revoked. Verified claims land in
// c.Locals(pasetotoken.CtxKeyClaims) for handlers and the RBAC middleware.
//
// The "session:<sid>" redis keys here are identity-service login sessions,
// unrelated to screening sessions.
func AuthRequired(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		raw, ok := bearerToken(c.Get("Authorization"))
		if !ok {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(raw)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// Revocation check. Tokens without a session id (service tokens) are
		// valid until expiry.
		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
