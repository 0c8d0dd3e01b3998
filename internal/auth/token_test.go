package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/littleoaks/preschool-api/internal/users"
)

func TestTokenRoundTrip(t *testing.T) {
	id := Identity{Role: users.RoleTeacher, UserID: "u1", Name: "Asha", Active: true}

	token, err := IssueToken("secret", "+917000000001", id)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := VerifyToken("secret", token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Phone != "+917000000001" || claims.Role != users.RoleTeacher || claims.UserID != "u1" || claims.Name != "Asha" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > sessionTTL {
		t.Fatalf("unexpected expiry: %v", claims.ExpiresAt)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := IssueToken("secret", "123", Identity{Role: users.RoleParent})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := VerifyToken("other-secret", token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	if _, err := VerifyToken("secret", "not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenExpiredRejected(t *testing.T) {
	claims := Claims{
		Phone: "123",
		Role:  users.RoleParent,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := VerifyToken("secret", token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenUnsignedRejected(t *testing.T) {
	claims := Claims{
		Phone: "123",
		Role:  users.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := VerifyToken("secret", token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
