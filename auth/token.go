package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleAdmin   = "admin"
	RoleDiner   = "diner"
	adminExpiry = 12 * time.Hour
	dinerExpiry = 24 * time.Hour
)

// IssueAdminToken returns a signed HS256 token carrying the admin role.
func IssueAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"role": RoleAdmin,
		"exp":  time.Now().Add(adminExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// IssueSessionToken creates a dining-session token tied to a table. The
// session id doubles as the token subject.
func IssueSessionToken(tableID string) (sessionID, signed string, err error) {
	sessionID = "dine_" + uuid.NewString()
	claims := jwt.MapClaims{
		"sub":      sessionID,
		"role":     RoleDiner,
		"table_id": tableID,
		"exp":      time.Now().Add(dinerExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err = token.SignedString(secret())
	return sessionID, signed, err
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
