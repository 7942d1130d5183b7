package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/protim1451/task-12-server/internal/domain"
	"github.com/protim1451/task-12-server/internal/transport/http/middleware"
	resp "github.com/protim1451/task-12-server/internal/transport/http/response"
)

type AdoptionHandler struct {
	adoptions domain.AdoptionRepository
	pets      domain.PetRepository
}

func NewAdoptionHandler(adoptions domain.AdoptionRepository, pets domain.PetRepository) *AdoptionHandler {
	return &AdoptionHandler{adoptions: adoptions, pets: pets}
}

func (h *AdoptionHandler) Create(c *gin.Context) {
	var in struct {
		PetID   string `json:"petId" binding:"required"`
		PetName string `json:"petName"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	petID, err := primitive.ObjectIDFromHex(in.PetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr("invalid id"))
		return
	}
	req := domain.AdoptionRequest{
		PetID:       petID,
		PetName:     in.PetName,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Status:      domain.AdoptionPending,
		RequestedAt: time.Now(),
	}
	id, err := h.adoptions.Insert(c.Request.Context(), &req)
	if err != nil {
		fail(c, err, "Failed to submit adoption request")
		return
	}
	c.JSON(http.StatusCreated, resp.Insert{InsertedID: id})
}

// ListForOwner returns the requests targeting the caller's pets: the
// owned-pet set comes first, then the requests whose petId is in it. Two
// queries, no join support needed from storage.
func (h *AdoptionHandler) ListForOwner(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, resp.NewErr("unauthorized access"))
		return
	}
	ctx := c.Request.Context()
	pets, err := h.pets.FindByOwner(ctx, claims.Email)
	if err != nil {
		fail(c, err, "Failed to fetch adoption requests")
		return
	}
	petIDs := make([]primitive.ObjectID, 0, len(pets))
	for _, p := range pets {
		petIDs = append(petIDs, p.ID)
	}
	reqs, err := h.adoptions.ListByPetIDs(ctx, petIDs)
	if err != nil {
		fail(c, err, "Failed to fetch adoption requests")
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// SetStatus lets a pet owner accept or reject a request. The status is a
// closed enum: anything else is rejected at the boundary instead of being
// persisted.
func (h *AdoptionHandler) SetStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	if !domain.ValidDecision(in.Status) {
		c.JSON(http.StatusBadRequest, resp.NewErr("status must be accepted or rejected"))
		return
	}
	res, err := h.adoptions.SetStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		fail(c, err, "Failed to update adoption request")
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, resp.NewErr("Adoption request not found"))
		return
	}
	c.JSON(http.StatusOK, resp.NewMsg("Adoption request updated"))
}
