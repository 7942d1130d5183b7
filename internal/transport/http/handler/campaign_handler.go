package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/protim1451/task-12-server/internal/core/cache"
	"github.com/protim1451/task-12-server/internal/domain"
	resp "github.com/protim1451/task-12-server/internal/transport/http/response"
)

const defaultCampaignPageSize = 9

type CampaignHandler struct {
	campaigns domain.CampaignRepository

	// cache is optional; nil means every recommended query hits storage.
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewCampaignHandler(campaigns domain.CampaignRepository, c *cache.Cache, cacheTTL time.Duration) *CampaignHandler {
	if cacheTTL <= 0 {
		c = nil
	}
	return &CampaignHandler{campaigns: campaigns, cache: c, cacheTTL: cacheTTL}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var dc domain.DonationCampaign
	if err := c.ShouldBindJSON(&dc); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	if dc.CreatedAt.IsZero() {
		dc.CreatedAt = time.Now()
	}
	id, err := h.campaigns.Insert(c.Request.Context(), &dc)
	if err != nil {
		fail(c, err, "Failed to create donation campaign")
		return
	}
	c.JSON(http.StatusCreated, resp.Insert{InsertedID: id})
}

func (h *CampaignHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", defaultCampaignPageSize)
	campaigns, err := h.campaigns.List(c.Request.Context(), page, limit)
	if err != nil {
		fail(c, err, "Failed to fetch donation campaigns")
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) Get(c *gin.Context) {
	dc, err := h.campaigns.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch campaign")
		return
	}
	if dc == nil {
		c.JSON(http.StatusNotFound, resp.NewErr("Campaign not found"))
		return
	}
	c.JSON(http.StatusOK, dc)
}

func (h *CampaignHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	delete(fields, "_id")
	res, err := h.campaigns.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		fail(c, err, "Failed to update campaign")
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, resp.NewErr("Campaign not found"))
		return
	}
	c.JSON(http.StatusOK, resp.NewMsg("Campaign updated successfully"))
}

func (h *CampaignHandler) SetPaused(c *gin.Context) {
	var in struct {
		IsPaused bool `json:"isPaused"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	res, err := h.campaigns.SetPaused(c.Request.Context(), c.Param("id"), in.IsPaused)
	if err != nil {
		fail(c, err, "Failed to update campaign")
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, resp.NewErr("Campaign not found"))
		return
	}
	c.JSON(http.StatusOK, resp.NewMsg("Campaign updated successfully"))
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	res, err := h.campaigns.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to delete campaign")
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, resp.NewErr("Campaign not found"))
		return
	}
	c.JSON(http.StatusOK, resp.NewMsg("Campaign deleted successfully"))
}

// Recommended serves up to three campaigns other than the excluded one.
// The result is unranked and tiny, so it reads through the cache when one
// is wired.
func (h *CampaignHandler) Recommended(c *gin.Context) {
	exclude := c.Query("exclude")
	load := func(ctx context.Context) (*[]domain.DonationCampaign, error) {
		out, err := h.campaigns.Recommended(ctx, exclude)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}

	var campaigns *[]domain.DonationCampaign
	var err error
	if h.cache != nil {
		campaigns, err = cache.GetOrLoadJSON(h.cache, c.Request.Context(),
			"campaigns:recommended:"+exclude, h.cacheTTL, load)
	} else {
		campaigns, err = load(c.Request.Context())
	}
	if err != nil {
		fail(c, err, "Failed to fetch recommended campaigns")
		return
	}
	if campaigns == nil {
		campaigns = &[]domain.DonationCampaign{}
	}
	c.JSON(http.StatusOK, *campaigns)
}
