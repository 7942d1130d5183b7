package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/protim1451/task-12-server/internal/core/auth"
	"github.com/protim1451/task-12-server/internal/core/cache"
	"github.com/protim1451/task-12-server/internal/core/config"
	"github.com/protim1451/task-12-server/internal/domain"
	"github.com/protim1451/task-12-server/internal/payment"
	"github.com/protim1451/task-12-server/internal/transport/http/handler"
	mdw "github.com/protim1451/task-12-server/internal/transport/http/middleware"
)

// Deps carries every shared handle into the engine explicitly. Nothing is
// captured from package state: tests substitute any piece.
type Deps struct {
	Log       *zap.Logger
	Tokener   *auth.Tokener
	Users     domain.UserRepository
	Pets      domain.PetRepository
	Adoptions domain.AdoptionRepository
	Campaigns domain.CampaignRepository
	Payments  domain.PaymentRepository
	Intents   payment.IntentCreator
	Cache     *cache.Cache // optional
	CORS      config.CORS
	Features  config.Features
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.New(corsConfig(d.CORS)),
	)

	// liveness + ops
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "server running") })
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authH := handler.NewAuthHandler(d.Tokener)
	userH := handler.NewUserHandler(d.Users)
	petH := handler.NewPetHandler(d.Pets)
	adoptH := handler.NewAdoptionHandler(d.Adoptions, d.Pets)
	campH := handler.NewCampaignHandler(d.Campaigns, d.Cache,
		time.Duration(d.Features.RecommendedCacheTTLSec)*time.Second)
	payH := handler.NewPaymentHandler(d.Payments, d.Intents, d.Log,
		d.Features.RequireAuthOnPaymentHistory)

	requireAuth := mdw.AuthJWT(d.Tokener)
	requireAdmin := mdw.RequireAdmin(d.Users)

	r.POST("/jwt", authH.IssueToken)

	r.GET("/users", userH.List)
	r.POST("/users", userH.Create)
	r.GET("/users/admin/:email", userH.IsAdmin)
	r.PATCH("/users/admin/:id", requireAuth, requireAdmin, userH.Promote)
	r.DELETE("/users/:id", requireAuth, requireAdmin, userH.Delete)

	api := r.Group("/api")
	{
		api.GET("/pets", petH.List)
		api.POST("/pets", petH.Create)
		api.GET("/pets/:id", petH.Get)
		api.PUT("/pets/:id", petH.Update)
		api.DELETE("/pets/:id", petH.Delete)
		api.PATCH("/pets/:id/adopt", petH.Adopt)

		api.POST("/adoptions", adoptH.Create)
		api.GET("/adoption-requests", requireAuth, adoptH.ListForOwner)
		api.PATCH("/adoption-requests/:id", requireAuth, adoptH.SetStatus)

		api.GET("/donation-campaigns", campH.List)
		api.POST("/donation-campaigns", campH.Create)
		api.GET("/donation-campaigns/recommended", campH.Recommended)
		api.GET("/donation-campaigns/:id", campH.Get)
		api.PUT("/donation-campaigns/:id", campH.Update)
		api.DELETE("/donation-campaigns/:id", campH.Delete)
		api.PATCH("/donation-campaigns/:id/pause", campH.SetPaused)

		api.GET("/donations", payH.AllDonations)
	}

	r.POST("/create-payment-intent", payH.CreateIntent)
	r.POST("/payments", payH.Record)
	if d.Features.RequireAuthOnPaymentHistory {
		r.GET("/payments/:email", requireAuth, payH.History)
	} else {
		r.GET("/payments/:email", payH.History)
	}
	r.GET("/user-donations", payH.UserDonations)

	return r
}

func corsConfig(c config.CORS) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	allowAll := len(c.AllowOrigins) == 0
	for _, o := range c.AllowOrigins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = c.AllowOrigins
	}
	return cfg
}
