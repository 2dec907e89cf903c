package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"harmony-store/internal/auth"
	"harmony-store/internal/models"
	"harmony-store/internal/repository"
)

type AuthHandler struct {
	accounts repository.AccountStore
	issuer   *auth.Issuer
}

func NewAuthHandler(accounts repository.AccountStore, issuer *auth.Issuer) *AuthHandler {
	return &AuthHandler{accounts: accounts, issuer: issuer}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Register creates an account and returns a token for it.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password are required."})
		return
	}
	if len(req.Password) < auth.MinPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters."})
		return
	}

	user, err := h.accounts.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during registration."})
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during registration."})
		return
	}

	c.JSON(http.StatusCreated, authResponse{Token: token, User: user.Public()})
}

// Login authenticates an existing account. The error is the same whether
// the email is unknown or the password is wrong.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	user, err := h.accounts.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during login."})
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during login."})
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: user.Public()})
}
