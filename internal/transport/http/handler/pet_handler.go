package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/protim1451/task-12-server/internal/domain"
	resp "github.com/protim1451/task-12-server/internal/transport/http/response"
)

const defaultPetPageSize = 10

type PetHandler struct {
	pets domain.PetRepository
}

func NewPetHandler(pets domain.PetRepository) *PetHandler {
	return &PetHandler{pets: pets}
}

func (h *PetHandler) Create(c *gin.Context) {
	var p domain.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	if p.AddedAt.IsZero() {
		p.AddedAt = time.Now()
	}
	p.Adopted = false
	id, err := h.pets.Insert(c.Request.Context(), &p)
	if err != nil {
		fail(c, err, "Failed to add pet")
		return
	}
	c.JSON(http.StatusCreated, resp.Insert{InsertedID: id})
}

// List serves the public pet listing: never includes adopted pets,
// optionally narrowed to one owner, newest first.
func (h *PetHandler) List(c *gin.Context) {
	pg := domain.PetPage{
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "limit", defaultPetPageSize),
		Owner:    c.Query("owner"),
	}
	pets, err := h.pets.List(c.Request.Context(), pg)
	if err != nil {
		fail(c, err, "Error fetching pets")
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	p, err := h.pets.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch pet details")
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, resp.NewErr("Pet not found"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update merges only the supplied fields.
func (h *PetHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	delete(fields, "_id")
	res, err := h.pets.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		fail(c, err, "Failed to update pet")
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, resp.NewErr("Pet not found"))
		return
	}
	c.JSON(http.StatusOK, resp.NewMsg("Pet updated successfully"))
}

func (h *PetHandler) Adopt(c *gin.Context) {
	res, err := h.pets.MarkAdopted(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to mark pet as adopted")
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, resp.NewErr("Pet not found"))
		return
	}
	c.JSON(http.StatusOK, resp.NewMsg("Pet marked as adopted"))
}

func (h *PetHandler) Delete(c *gin.Context) {
	res, err := h.pets.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to delete pet")
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, resp.NewErr("Pet not found"))
		return
	}
	c.JSON(http.StatusOK, resp.NewMsg("Pet deleted successfully"))
}
