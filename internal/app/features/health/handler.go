package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apijson"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client and logger.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Log:    logger,
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Serve handles GET /api/health.
//
// On success: 200 and {"status":"healthy","message":"La Harde API is running"}.
// On DB failure: 503 and a short error status, so load balancers stop
// routing traffic to an instance that cannot reach the store.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		apijson.Write(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "error",
			Message: "Base de données indisponible",
		})
		return
	}

	apijson.Write(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Message: "La Harde API is running",
	})
}
