package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playgroundlabs/playground-api/internal/api/middleware"
	"github.com/playgroundlabs/playground-api/internal/core/domain"
	"github.com/playgroundlabs/playground-api/internal/core/ports"
)

// AuthHandler exposes the signup/login/profile/logout surface for both auth
// methods. The session cookie max-age is configured independently of the
// token TTL: deployments ship 3600 s cookies around 8 h tokens, and callers
// depend on that.
type AuthHandler struct {
	service      ports.AuthService
	verifier     ports.IdentityVerifier
	cookieMaxAge int
}

// NewAuthHandler creates an AuthHandler. verifier may be nil, in which case
// Google routes accept only pre-verified identity fields and reject raw
// credentials.
func NewAuthHandler(service ports.AuthService, verifier ports.IdentityVerifier, cookieMaxAge int) *AuthHandler {
	if cookieMaxAge <= 0 {
		cookieMaxAge = 3600
	}
	return &AuthHandler{service: service, verifier: verifier, cookieMaxAge: cookieMaxAge}
}

type signupRequest struct {
	EmailID   string `json:"emailid" validate:"required,email"`
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname"`
	PhoneNo   string `json:"phoneno" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type loginRequest struct {
	EmailID  string `json:"emailid" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// googleAuthRequest carries either a raw identity assertion (credential) to
// be checked by the configured verifier, or the already-extracted claims.
type googleAuthRequest struct {
	Credential string `json:"credential"`
	EmailID    string `json:"emailid" validate:"required_without=Credential,omitempty,email"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type profileResponse struct {
	Profile *domain.Account `json:"profile"`
}

// Signup registers a password-based account. No session is issued; the
// caller must log in explicitly afterwards.
//
// @Summary      Register with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.SignupPassword(c.Request().Context(), ports.PasswordSignupInput{
		EmailID:     req.EmailID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNo,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// Login authenticates a password-based account and sets the session cookie.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.service.LoginPassword(c.Request().Context(), req.EmailID, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, messageResponse{Message: "Login successful"})
}

// GoogleSignup registers a Google-bound account. Like password signup, no
// session is issued.
//
// @Summary      Register via Google identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleAuthRequest  true  "Verified identity claims or raw credential"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/google-signup [post]
func (h *AuthHandler) GoogleSignup(c echo.Context) error {
	identity, err := h.googleIdentity(c)
	if err != nil {
		return err
	}

	_, err = h.service.SignupGoogle(c.Request().Context(), ports.GoogleSignupInput{
		EmailID:   identity.EmailID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Google sign-up successful"})
}

// GoogleLogin authenticates a Google-bound account and sets the session cookie.
//
// @Summary      Login via Google identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleAuthRequest  true  "Verified identity claims or raw credential"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/google-login [post]
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	identity, err := h.googleIdentity(c)
	if err != nil {
		return err
	}

	token, _, err := h.service.LoginGoogle(c.Request().Context(), identity.EmailID)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, messageResponse{Message: "Google login successful"})
}

// Profile returns the account behind the current session, without the
// password hash.
//
// @Summary      Current account profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	emailID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.service.Profile(c.Request().Context(), emailID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{Profile: account})
}

// Logout clears the session cookie. Idempotent: logging out twice is fine.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

// googleIdentity resolves the identity claims for the Google routes: a raw
// credential goes through the verifier; otherwise the pre-verified body
// fields are used as-is (the upstream collaborator already checked the
// assertion).
func (h *AuthHandler) googleIdentity(c echo.Context) (*ports.GoogleIdentity, error) {
	var req googleAuthRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if req.Credential != "" {
		if h.verifier == nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "identity credentials not accepted")
		}
		identity, err := h.verifier.Verify(c.Request().Context(), req.Credential)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid identity assertion")
		}
		return identity, nil
	}

	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &ports.GoogleIdentity{
		EmailID:   req.EmailID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, nil
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
