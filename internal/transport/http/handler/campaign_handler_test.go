package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protim1451/task-12-server/internal/domain"
)

func campaignEngine(repo *fakeCampaignRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCampaignHandler(repo, nil, 0)
	r := gin.New()
	r.GET("/api/donation-campaigns", h.List)
	r.POST("/api/donation-campaigns", h.Create)
	r.GET("/api/donation-campaigns/recommended", h.Recommended)
	r.GET("/api/donation-campaigns/:id", h.Get)
	r.PUT("/api/donation-campaigns/:id", h.Update)
	r.DELETE("/api/donation-campaigns/:id", h.Delete)
	r.PATCH("/api/donation-campaigns/:id/pause", h.SetPaused)
	return r
}

func seedCampaigns(t *testing.T, repo *fakeCampaignRepo, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := repo.Insert(context.Background(), &domain.DonationCampaign{PetName: n, Owner: "o@example.com"})
		require.NoError(t, err)
	}
}

func TestRecommendedExcludesAndCaps(t *testing.T) {
	repo := &fakeCampaignRepo{}
	r := campaignEngine(repo)
	seedCampaigns(t, repo, "A", "B", "C", "D")
	exclude := repo.campaigns[0].ID

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/donation-campaigns/recommended?exclude="+exclude.Hex(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	var out []domain.DonationCampaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 3)
	for _, dc := range out {
		assert.NotEqual(t, exclude, dc.ID)
	}
}

func TestRecommendedFewerThanCap(t *testing.T) {
	repo := &fakeCampaignRepo{}
	r := campaignEngine(repo)
	seedCampaigns(t, repo, "A", "B")
	exclude := repo.campaigns[0].ID

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/donation-campaigns/recommended?exclude="+exclude.Hex(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	var out []domain.DonationCampaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 1)
}

func TestCampaignListPagination(t *testing.T) {
	repo := &fakeCampaignRepo{}
	r := campaignEngine(repo)
	seedCampaigns(t, repo, "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K")

	// default window is 9
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/donation-campaigns", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var out []domain.DonationCampaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 9)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/donation-campaigns?page=2", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 2)
}

func TestPauseToggle(t *testing.T) {
	repo := &fakeCampaignRepo{}
	r := campaignEngine(repo)
	seedCampaigns(t, repo, "A")
	id := repo.campaigns[0].ID.Hex()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/donation-campaigns/"+id+"/pause", strings.NewReader(`{"isPaused":true}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.campaigns[0].IsPaused)

	// paused campaigns stay listed
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/donation-campaigns", nil))
	var out []domain.DonationCampaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 1)
}

func TestCampaignNotFound(t *testing.T) {
	r := campaignEngine(&fakeCampaignRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/donation-campaigns/64f000000000000000000000", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/donation-campaigns/64f000000000000000000000", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
