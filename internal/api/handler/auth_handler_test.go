package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blogit/blogit-api/internal/api/middleware"
	"github.com/blogit/blogit-api/internal/core/domain"
	"github.com/blogit/blogit-api/internal/core/ports"
)

type stubAccountService struct {
	registerInput ports.RegisterInput
	registerErr   error
	loginToken    string
	loginUser     *domain.User
	loginErr      error
	loggedOut     []string
	passwordErr   error
	profileUser   *domain.User
	profileErr    error
	updatedFields ports.UpdateUserFields
	updateErr     error
}

func (s *stubAccountService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.registerInput = input
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{ID: "user-1", Username: input.Username, Email: input.Email}, nil
}

func (s *stubAccountService) Login(_ context.Context, identifier, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, s.loginUser, nil
}

func (s *stubAccountService) Logout(_ context.Context, session *domain.Session) error {
	s.loggedOut = append(s.loggedOut, session.TokenID)
	return nil
}

func (s *stubAccountService) Profile(_ context.Context, userID string) (*domain.User, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return s.profileUser, nil
}

func (s *stubAccountService) UpdateProfile(_ context.Context, userID string, fields ports.UpdateUserFields) (*domain.User, error) {
	s.updatedFields = fields
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.profileUser, nil
}

func (s *stubAccountService) UpdatePassword(_ context.Context, userID, currentPassword, newPassword string) error {
	return s.passwordErr
}

type stubVerifier struct {
	session *domain.Session
	err     error
}

func (v *stubVerifier) Verify(string) (*domain.Session, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.session, nil
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func testContext(req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	e := echo.New()
	e.Validator = NewValidator()
	return e.NewContext(req, rec)
}

func withSession(c echo.Context, userID string) {
	c.Set(middleware.SessionKey, &domain.Session{
		Identity:  domain.Identity{ID: userID, Username: "alice"},
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func findSessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	accounts := &stubAccountService{}
	h := NewAuthHandler(accounts, &stubVerifier{}, CookieOptions{TTL: time.Hour})

	req, rec := jsonRequest(http.MethodPost, "/api/auth/register",
		`{"firstName":"Alice","lastName":"Smith","username":"alice","email":"alice@x.com","password":"secret123!"}`)
	if err := h.Register(testContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if accounts.registerInput.Username != "alice" || accounts.registerInput.Password != "secret123!" {
		t.Fatalf("input not forwarded: %+v", accounts.registerInput)
	}
	if findSessionCookieOptional(rec) != nil {
		t.Fatalf("register must not grant a session")
	}
}

func findSessionCookieOptional(rec *httptest.ResponseRecorder) *http.Cookie {
	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{}, &stubVerifier{}, CookieOptions{})

	req, rec := jsonRequest(http.MethodPost, "/api/auth/register",
		`{"firstName":"Alice","lastName":"Smith","username":"alice","email":"not-an-email","password":"secret123!"}`)
	if err := h.Register(testContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{registerErr: domain.ErrDuplicateIdentifier}, &stubVerifier{}, CookieOptions{})

	req, rec := jsonRequest(http.MethodPost, "/api/auth/register",
		`{"firstName":"Alice","lastName":"Smith","username":"alice","email":"alice@x.com","password":"secret123!"}`)
	if err := h.Register(testContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	accounts := &stubAccountService{
		loginToken: "signed-token",
		loginUser:  &domain.User{ID: "user-1", Username: "alice"},
	}
	h := NewAuthHandler(accounts, &stubVerifier{}, CookieOptions{TTL: time.Hour, Secure: true})

	req, rec := jsonRequest(http.MethodPost, "/api/auth/login", `{"identifier":"alice","password":"secret123!"}`)
	if err := h.Login(testContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	cookie := findSessionCookie(t, rec)
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.MaxAge != 3600 {
		t.Fatalf("cookie attributes wrong: %+v", cookie)
	}

	var body struct {
		User *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.User == nil || body.User.Username != "alice" {
		t.Fatalf("unexpected body: %s", rec.Body)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{loginErr: domain.ErrInvalidCredentials}, &stubVerifier{}, CookieOptions{})

	req, rec := jsonRequest(http.MethodPost, "/api/auth/login", `{"identifier":"ghost","password":"whatever"}`)
	if err := h.Login(testContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if findSessionCookieOptional(rec) != nil {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestAuthHandler_Logout_RevokesAndClearsCookie(t *testing.T) {
	accounts := &stubAccountService{}
	verifier := &stubVerifier{session: &domain.Session{
		Identity:  domain.Identity{ID: "user-1", Username: "alice"},
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	h := NewAuthHandler(accounts, verifier, CookieOptions{TTL: time.Hour})

	req, rec := jsonRequest(http.MethodPost, "/api/auth/logout", "")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed-token"})
	if err := h.Logout(testContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(accounts.loggedOut) != 1 || accounts.loggedOut[0] != "jti-1" {
		t.Fatalf("expected token jti-1 revoked, got %v", accounts.loggedOut)
	}
	cookie := findSessionCookie(t, rec)
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
}

func TestAuthHandler_Logout_WithoutCookieStillSucceeds(t *testing.T) {
	accounts := &stubAccountService{}
	h := NewAuthHandler(accounts, &stubVerifier{err: domain.ErrUnauthenticated}, CookieOptions{})

	req, rec := jsonRequest(http.MethodPost, "/api/auth/logout", "")
	if err := h.Logout(testContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(accounts.loggedOut) != 0 {
		t.Fatalf("nothing should be revoked without a credential")
	}
}

func TestAuthHandler_Logout_StaleCookieStillSucceeds(t *testing.T) {
	accounts := &stubAccountService{}
	h := NewAuthHandler(accounts, &stubVerifier{err: domain.ErrUnauthenticated}, CookieOptions{})

	req, rec := jsonRequest(http.MethodPost, "/api/auth/logout", "")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "expired-token"})
	if err := h.Logout(testContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for stale credential, got %d", rec.Code)
	}
	cookie := findSessionCookie(t, rec)
	if cookie.MaxAge != -1 {
		t.Fatalf("stale cookie should still be cleared: %+v", cookie)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	accounts := &stubAccountService{profileUser: &domain.User{ID: "user-1", Username: "alice"}}
	h := NewAuthHandler(accounts, &stubVerifier{}, CookieOptions{})

	req, rec := jsonRequest(http.MethodGet, "/api/auth/profile", "")
	c := testContext(req, rec)
	withSession(c, "user-1")
	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Profile_NoSession(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{}, &stubVerifier{}, CookieOptions{})

	req, rec := jsonRequest(http.MethodGet, "/api/auth/profile", "")
	err := h.Profile(testContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_UpdateProfile_ForwardsPartialFields(t *testing.T) {
	accounts := &stubAccountService{profileUser: &domain.User{ID: "user-1", Username: "alice"}}
	h := NewAuthHandler(accounts, &stubVerifier{}, CookieOptions{})

	req, rec := jsonRequest(http.MethodPut, "/api/auth/profile", `{"firstName":"Alicia"}`)
	c := testContext(req, rec)
	withSession(c, "user-1")
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if accounts.updatedFields.FirstName == nil || *accounts.updatedFields.FirstName != "Alicia" {
		t.Fatalf("first name not forwarded: %+v", accounts.updatedFields)
	}
	if accounts.updatedFields.LastName != nil || accounts.updatedFields.Username != nil || accounts.updatedFields.Email != nil {
		t.Fatalf("absent fields must stay nil: %+v", accounts.updatedFields)
	}
}

func TestAuthHandler_UpdatePassword_WrongCurrent(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{passwordErr: domain.ErrInvalidCredentials}, &stubVerifier{}, CookieOptions{})

	req, rec := jsonRequest(http.MethodPut, "/api/auth/password", `{"currentPassword":"wrong","newPassword":"newsecret1!"}`)
	c := testContext(req, rec)
	withSession(c, "user-1")
	if err := h.UpdatePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
