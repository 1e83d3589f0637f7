package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/matchday/matchday/internal/store"
)

// AuthHandler bundles dependencies for the authentication endpoints.
type AuthHandler struct {
	Store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	if st == nil {
		panic("nil store passed to NewAuthHandler")
	}
	return &AuthHandler{Store: st}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // customer | venue_owner
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the user plus profile and returns the fresh session.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	sess, err := h.Store.SignUp(c.Request().Context(), req.Email, req.Password, req.Role, strings.TrimSpace(req.FullName), strings.TrimSpace(req.Phone))
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, sess)
}

// Login verifies credentials and returns the new session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	sess, err := h.Store.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	return c.JSON(http.StatusOK, sess)
}

// Logout clears the store session. Stateless JWTs stay valid until expiry;
// clients drop their copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Store.SignOut(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// SessionInfo reports whether anybody is signed in at the store level. The
// UI calls it once at startup to restore the previous session. The route is
// unauthenticated, so the access token is never echoed back here; only
// register and login hand tokens out.
func (h *AuthHandler) SessionInfo(c echo.Context) error {
	sess := h.Store.Session(c.Request().Context())
	if sess == nil {
		return c.JSON(http.StatusOK, echo.Map{"session": nil})
	}
	sess.Token = ""
	return c.JSON(http.StatusOK, echo.Map{"session": sess})
}

// Me returns the authenticated user's account and profile.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	u, err := h.Store.UserByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	p, err := h.Store.ProfileByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u, "profile": p})
}

// UpdateProfile merges the provided profile fields for the authenticated
// user.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p, err := h.Store.UpdateProfile(c.Request().Context(), uid, store.ProfileUpdate{
		FullName: body.FullName,
		Phone:    body.Phone,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
	}
	return c.JSON(http.StatusOK, p)
}
