package handlers

import (
	"net/http"
	"time"

	"acmedash/internal/common"
	"acmedash/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthHandlers issues the JWTs that guard the dashboard routes.
type AuthHandlers struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewAuthHandlers(userRepo repositories.UserRepository, jwtSecret string) *AuthHandlers {
	return &AuthHandlers{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return common.SendClientError(c, "Email and password are required")
	}

	user, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return common.SendServerError(c, "Failed to look up user")
	}
	if user == nil {
		return common.SendUnauthorizedError(c, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return common.SendUnauthorizedError(c, "Invalid credentials")
	}

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return common.SendServerError(c, "Failed to sign token")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token": signed,
	})
}
