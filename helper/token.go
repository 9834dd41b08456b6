package helper

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"metroll_cms/config"
	"metroll_cms/model"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

// GenerateSessionToken signs the CMS session JWT handed to the admin UI.
func GenerateSessionToken(claim model.TokenClaim, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sessionId": claim.SessionID,
		"accountId": claim.AccountID,
		"email":     claim.Email,
		"role":      string(claim.Role),
		"exp":       time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret())
}

// ParseSessionToken validates the CMS session JWT and returns its claim.
func ParseSessionToken(raw string) (model.TokenClaim, error) {
	var claim model.TokenClaim
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return claim, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return claim, errors.New("invalid claims")
	}
	claim.SessionID, _ = claims["sessionId"].(string)
	claim.AccountID, _ = claims["accountId"].(string)
	claim.Email, _ = claims["email"].(string)
	if role, ok := claims["role"].(string); ok {
		claim.Role = model.Role(role)
	}
	return claim, nil
}

// GetInfoAccountFromToken reads the claim the Protected middleware stashed
// in Locals and reports the caller's role flags.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool) {
	claim, ok := c.Locals("user").(model.TokenClaim)
	if !ok {
		return model.TokenClaim{}, false, false
	}
	return claim, claim.Role == model.RoleAdmin, claim.Role == model.RoleStaff
}

// SessionFromLocals returns the live session the middleware attached.
func SessionFromLocals(c *fiber.Ctx) *model.Session {
	s, _ := c.Locals("session").(*model.Session)
	return s
}
