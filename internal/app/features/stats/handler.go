package stats

import (
	"context"
	"net/http"

	statsstore "github.com/dalemusser/clubhub/internal/app/store/stats"
	"github.com/dalemusser/clubhub/internal/app/system/apijson"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Store *statsstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: statsstore.New(db),
		Log:   logger,
	}
}

// Serve handles GET /api/stats. The snapshot is all-or-nothing: a failure
// in any count returns a 500 with no partial figures.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	snapshot, err := h.Store.Fetch(ctx)
	if err != nil {
		h.Log.Error("stats fetch failed", zap.Error(err))
		apijson.Internal(w, "Erreur lors de la récupération des statistiques")
		return
	}

	apijson.Write(w, http.StatusOK, snapshot)
}
