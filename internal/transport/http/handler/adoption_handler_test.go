package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protim1451/task-12-server/internal/core/auth"
	"github.com/protim1451/task-12-server/internal/domain"
	mdw "github.com/protim1451/task-12-server/internal/transport/http/middleware"
)

func adoptionEngine(adoptions *fakeAdoptionRepo, pets *fakePetRepo, tok *auth.Tokener) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdoptionHandler(adoptions, pets)
	r := gin.New()
	r.POST("/api/adoptions", h.Create)
	r.GET("/api/adoption-requests", mdw.AuthJWT(tok), h.ListForOwner)
	r.PATCH("/api/adoption-requests/:id", mdw.AuthJWT(tok), h.SetStatus)
	return r
}

func testTokener() *auth.Tokener {
	return &auth.Tokener{Secret: []byte("test-secret"), Issuer: "petconnect", TTL: time.Hour}
}

func TestCreateAdoptionDefaultsPending(t *testing.T) {
	adoptions := &fakeAdoptionRepo{}
	pets := &fakePetRepo{}
	r := adoptionEngine(adoptions, pets, testTokener())

	petID, err := pets.Insert(context.Background(), &domain.Pet{Name: "Rex", Owner: "owner@example.com"})
	require.NoError(t, err)

	body := `{"petId":"` + petID.Hex() + `","name":"Carol","email":"carol@example.com","status":"accepted"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/adoptions", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, adoptions.reqs, 1)
	// the submitted status is ignored, a new request is always pending
	assert.Equal(t, domain.AdoptionPending, adoptions.reqs[0].Status)
}

func TestListForOwnerJoinsOwnedPets(t *testing.T) {
	adoptions := &fakeAdoptionRepo{}
	pets := &fakePetRepo{}
	tok := testTokener()
	r := adoptionEngine(adoptions, pets, tok)

	ctx := context.Background()
	mine, err := pets.Insert(ctx, &domain.Pet{Name: "Rex", Owner: "owner@example.com"})
	require.NoError(t, err)
	other, err := pets.Insert(ctx, &domain.Pet{Name: "Tom", Owner: "someone@example.com"})
	require.NoError(t, err)

	_, err = adoptions.Insert(ctx, &domain.AdoptionRequest{PetID: mine, Status: domain.AdoptionPending})
	require.NoError(t, err)
	_, err = adoptions.Insert(ctx, &domain.AdoptionRequest{PetID: other, Status: domain.AdoptionPending})
	require.NoError(t, err)

	s, err := tok.Issue("owner@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/adoption-requests", nil)
	req.Header.Set("Authorization", "Bearer "+s)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out []domain.AdoptionRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, mine, out[0].PetID)
}

func TestListForOwnerRequiresToken(t *testing.T) {
	r := adoptionEngine(&fakeAdoptionRepo{}, &fakePetRepo{}, testTokener())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/adoption-requests", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetStatus(t *testing.T) {
	adoptions := &fakeAdoptionRepo{}
	pets := &fakePetRepo{}
	tok := testTokener()
	r := adoptionEngine(adoptions, pets, tok)

	id, err := adoptions.Insert(context.Background(), &domain.AdoptionRequest{Status: domain.AdoptionPending})
	require.NoError(t, err)

	s, err := tok.Issue("owner@example.com")
	require.NoError(t, err)

	patch := func(reqID, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/adoption-requests/"+reqID, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+s)
		r.ServeHTTP(w, req)
		return w
	}

	// unknown enum value never reaches storage
	w := patch(id.Hex(), `{"status":"maybe"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.AdoptionPending, adoptions.reqs[0].Status)

	w = patch(id.Hex(), `{"status":"accepted"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.AdoptionAccepted, adoptions.reqs[0].Status)

	w = patch("64f000000000000000000000", `{"status":"rejected"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
