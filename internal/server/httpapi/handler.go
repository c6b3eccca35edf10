package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/avasquez/softjobs/internal/common"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"rol" binding:"required"`
	Language string `json:"lenguaje" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// boundCtx derives a request context bounded by the configured work
// deadline, so a slow store or hash cannot hold the request forever.
func (s *Server) boundCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), s.requestTimeout)
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	ctx, cancel := s.boundCtx(c)
	defer cancel()

	user, err := s.users.Register(ctx, req.Email, req.Password, req.Role, req.Language)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"usuario": user.Public(),
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	ctx, cancel := s.boundCtx(c)
	defer cancel()

	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handleGetCurrentUser(c *gin.Context) {
	email, ok := EmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ctx, cancel := s.boundCtx(c)
	defer cancel()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// writeError maps service errors to the response contract. Anything outside
// the client-error taxonomy is logged with full detail and answered with a
// generic 500 body.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is already registered"})
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
