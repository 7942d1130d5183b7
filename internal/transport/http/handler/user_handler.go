package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/protim1451/task-12-server/internal/domain"
	resp "github.com/protim1451/task-12-server/internal/transport/http/response"
)

type UserHandler struct {
	users domain.UserRepository
}

func NewUserHandler(users domain.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create is idempotent on email: a duplicate registration answers with a
// null insertedId instead of an error, so a returning social login is a
// no-op.
func (h *UserHandler) Create(c *gin.Context) {
	var u domain.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if !domain.ValidRole(u.Role) {
		c.JSON(http.StatusBadRequest, resp.NewErr("invalid role"))
		return
	}

	ctx := c.Request.Context()
	existing, err := h.users.FindByEmail(ctx, u.Email)
	if err != nil {
		fail(c, err, "failed to create user")
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, resp.Insert{Message: "user already exists", InsertedID: nil})
		return
	}
	id, err := h.users.Insert(ctx, &u)
	if err != nil {
		fail(c, err, "failed to create user")
		return
	}
	c.JSON(http.StatusOK, resp.Insert{InsertedID: id})
}

// IsAdmin tells the client whether the given email belongs to an admin.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	u, err := h.users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err, "failed to fetch user")
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, resp.NewErr("user not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": u.IsAdmin()})
}

func (h *UserHandler) Promote(c *gin.Context) {
	res, err := h.users.PromoteToAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "failed to update user")
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, resp.NewErr("user not found"))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) Delete(c *gin.Context) {
	res, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "failed to delete user")
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, resp.NewErr("user not found"))
		return
	}
	c.JSON(http.StatusOK, res)
}
