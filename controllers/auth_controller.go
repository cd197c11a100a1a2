package controllers

import (
	"strings"

	"savoria/pkg/resp"
	"savoria/pkg/token"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController issues the admin console's placeholder session token.
// Any non-empty credential pair is accepted; this is explicitly not a
// security boundary (see pkg/token).
type AuthController struct{}

func NewAuthController() *AuthController { return &AuthController{} }

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Username == "" || req.Password == "" {
		resp.Unauthorized(c, "Invalid credentials")
		return
	}

	resp.OK(c, gin.H{
		"success": true,
		"token":   token.Issue(req.Username),
		"user":    gin.H{"id": 1, "username": req.Username},
	})
}

// GET /auth/verify is the server-side check of a presented token, so the admin
// client does not have to decode expiry itself.
func (a *AuthController) Verify(c *gin.Context) {
	tok := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tok == "" {
		resp.OK(c, gin.H{"valid": false})
		return
	}

	username, ok := token.Validate(tok)
	if !ok {
		resp.OK(c, gin.H{"valid": false})
		return
	}
	resp.OK(c, gin.H{"valid": true, "username": username})
}
