package gallery

import (
	"context"
	"net/http"
	"strings"
	"time"

	gallerystore "github.com/dalemusser/clubhub/internal/app/store/gallery"
	"github.com/dalemusser/clubhub/internal/app/system/apijson"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Store *gallerystore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: gallerystore.New(db),
		Log:   logger,
	}
}

type createRequest struct {
	Titre       string `json:"titre"`
	Description string `json:"description"`
	URLImage    string `json:"url_image"`
	Categorie   string `json:"categorie"`
	DatePrise   string `json:"date_prise"`
}

func (req createRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(req.Titre) == "" {
		fields["titre"] = "champ requis"
	}
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "champ requis"
	}
	if strings.TrimSpace(req.URLImage) == "" {
		fields["url_image"] = "champ requis"
	}
	if strings.TrimSpace(req.Categorie) == "" {
		fields["categorie"] = "champ requis"
	}
	if req.DatePrise != "" {
		if t, err := time.Parse("2006-01-02", req.DatePrise); err != nil || t.Format("2006-01-02") != req.DatePrise {
			fields["date_prise"] = "date invalide (format AAAA-MM-JJ)"
		}
	}
	return fields
}

// ServeList handles GET /api/galerie: all photos, newest capture first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	photos, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("gallery fetch failed", zap.Error(err))
		apijson.Internal(w, "Erreur lors de la récupération de la galerie")
		return
	}

	apijson.Write(w, http.StatusOK, map[string][]models.GalleryPhoto{"photos": photos})
}

// ServeCreate handles POST /api/galerie.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := apijson.Decode(w, r, &req); err != nil {
		apijson.BadRequest(w)
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		apijson.Invalid(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, models.GalleryPhoto{
		Titre:       req.Titre,
		Description: htmlsanitize.Clean(req.Description),
		URLImage:    req.URLImage,
		Categorie:   req.Categorie,
		DatePrise:   req.DatePrise,
	})
	if err != nil {
		h.Log.Error("photo insert failed", zap.Error(err))
		apijson.Internal(w, "Erreur lors de l'ajout de la photo")
		return
	}

	h.Log.Info("new gallery photo", zap.String("titre", created.Titre))
	apijson.Write(w, http.StatusOK, apijson.Confirmation{
		Success: true,
		Message: "Photo ajoutée à la galerie!",
		PhotoID: created.ID,
	})
}
