package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/kolnlaviste/HireLink/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, exp, err := tm.GenerateToken("user-1", "a@x.com", domain.RoleEmployer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry %v not in the future", exp)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.IdentityID != "user-1" {
		t.Errorf("IdentityID = %q, want %q", claims.IdentityID, "user-1")
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "a@x.com")
	}
	if claims.Role != domain.RoleEmployer {
		t.Errorf("Role = %q, want %q", claims.Role, domain.RoleEmployer)
	}
}

func TestParseTokenIdempotent(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, _, err := tm.GenerateToken("user-1", "a@x.com", domain.RoleJobseeker)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	first, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("first ParseToken: %v", err)
	}
	second, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("second ParseToken: %v", err)
	}
	if first.IdentityID != second.IdentityID || first.Role != second.Role || first.Email != second.Email {
		t.Errorf("repeated verification diverged: %+v vs %+v", first, second)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.GenerateToken("user-1", "a@x.com", domain.RoleJobseeker)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("token signed with a different secret verified")
	}
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	claims := &Claims{
		IdentityID: "user-1",
		Email:      "a@x.com",
		Role:       domain.RoleJobseeker,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.ParseToken(token); err == nil {
		t.Fatal("expired token verified despite correct signature")
	}
}

func TestParseTokenRejectsUnexpectedMethod(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := tm.ParseToken(signed); err == nil {
		t.Fatal("unsigned token accepted")
	}
}

func TestTokenManagerFailsClosedWithoutSecret(t *testing.T) {
	tm := NewTokenManager("", time.Hour)

	if _, _, err := tm.GenerateToken("user-1", "a@x.com", domain.RoleAdmin); err != ErrNoSigningSecret {
		t.Errorf("GenerateToken err = %v, want ErrNoSigningSecret", err)
	}

	valid := NewTokenManager("test-secret", time.Hour)
	token, _, err := valid.GenerateToken("user-1", "a@x.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := tm.ParseToken(token); err != ErrNoSigningSecret {
		t.Errorf("ParseToken err = %v, want ErrNoSigningSecret", err)
	}
}
