package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/protim1451/task-12-server/internal/core/auth"
	resp "github.com/protim1451/task-12-server/internal/transport/http/response"
)

type AuthHandler struct {
	tok *auth.Tokener
}

func NewAuthHandler(tok *auth.Tokener) *AuthHandler { return &AuthHandler{tok: tok} }

// IssueToken signs a bearer token for the submitted identity. There is no
// credential check here: possession of the email claim is all downstream
// guards consume, and the admin gate re-checks the role from storage.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr("email is required"))
		return
	}
	token, err := h.tok.Issue(in.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.NewErr("failed to issue token"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
