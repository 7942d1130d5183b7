package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/protim1451/task-12-server/internal/domain"
	"github.com/protim1451/task-12-server/internal/payment"
	"github.com/protim1451/task-12-server/internal/transport/http/middleware"
	resp "github.com/protim1451/task-12-server/internal/transport/http/response"
)

type PaymentHandler struct {
	payments domain.PaymentRepository
	intents  payment.IntentCreator
	log      *zap.Logger

	// requireAuth mirrors the guarded upstream variant of
	// GET /payments/:email; the open variant sets it false.
	requireAuth bool
}

func NewPaymentHandler(payments domain.PaymentRepository, intents payment.IntentCreator, log *zap.Logger, requireAuth bool) *PaymentHandler {
	return &PaymentHandler{payments: payments, intents: intents, log: log, requireAuth: requireAuth}
}

func (h *PaymentHandler) RequireAuthOnHistory() bool { return h.requireAuth }

// CreateIntent asks the provider for a pending charge and hands the
// client secret back. Older clients send the amount as "price".
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var in struct {
		Amount *float64 `json:"amount"`
		Price  *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	amount := in.Amount
	if amount == nil {
		amount = in.Price
	}
	if amount == nil || *amount <= 0 {
		c.JSON(http.StatusBadRequest, resp.NewErr("amount is required"))
		return
	}
	secret, err := h.intents.CreateIntent(*amount)
	if err != nil {
		h.log.Error("payment intent failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, resp.NewErr("payment provider error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// Record persists a completed payment, then clears the referenced cart
// items. The two steps are not atomic: the insert commits first and a
// cart-clear failure leaves the payment in place. The response carries
// both outcomes.
func (h *PaymentHandler) Record(c *gin.Context) {
	var p domain.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, resp.NewErr(err.Error()))
		return
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}

	ctx := c.Request.Context()
	id, err := h.payments.Insert(ctx, &p)
	if err != nil {
		fail(c, err, "Failed to record payment")
		return
	}

	var cleared domain.DeleteResult
	if len(p.CartIDs) > 0 {
		cleared, err = h.payments.ClearCart(ctx, p.CartIDs)
		if err != nil {
			// Best-effort: the payment stays recorded.
			h.log.Warn("cart clear failed after payment insert",
				zap.String("paymentId", id.Hex()), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"paymentResult": resp.Insert{InsertedID: id},
		"deleteResult":  cleared,
	})
}

// History lists payments for the email in the path. When the route is
// guarded, the caller may only read their own history.
func (h *PaymentHandler) History(c *gin.Context) {
	email := c.Param("email")
	if h.requireAuth {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, resp.NewErr("unauthorized access"))
			return
		}
		if claims.Email != email {
			c.JSON(http.StatusForbidden, resp.NewErr("forbidden access"))
			return
		}
	}
	payments, err := h.payments.ListByEmail(c.Request.Context(), email)
	if err != nil {
		fail(c, err, "Failed to fetch payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// UserDonations is the open donation-history view keyed by query param.
func (h *PaymentHandler) UserDonations(c *gin.Context) {
	payments, err := h.payments.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		fail(c, err, "Failed to fetch donations")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// AllDonations is the unfiltered all-payments view.
func (h *PaymentHandler) AllDonations(c *gin.Context) {
	payments, err := h.payments.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to fetch donations")
		return
	}
	c.JSON(http.StatusOK, payments)
}
