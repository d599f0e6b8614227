package http

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	analytics "linktrack/internal/analytics/usecase"
	"linktrack/internal/domain"
	"linktrack/internal/metrics"
	"linktrack/internal/usecase"
	"linktrack/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for link management and redirection.
type Handler struct {
	links    *usecase.LinkService
	resolver *usecase.Resolver
	stats    *analytics.StatsService
	logger   *zap.Logger
}

// NewHandler creates a new Handler.
func NewHandler(links *usecase.LinkService, resolver *usecase.Resolver, stats *analytics.StatsService, logger *zap.Logger) *Handler {
	return &Handler{
		links:    links,
		resolver: resolver,
		stats:    stats,
		logger:   logger,
	}
}

// CreateCampaignRequest is the request body for creating campaign links.
type CreateCampaignRequest struct {
	URL string `json:"url"`
}

// LinkResponse is the wire shape of one tracking link.
type LinkResponse struct {
	ID          string     `json:"id"`
	ShortCode   string     `json:"shortCode"`
	TrackingURL string     `json:"trackingUrl"`
	OriginalURL string     `json:"originalUrl"`
	Platform    string     `json:"platform"`
	OwnerID     string     `json:"ownerId"`
	ClickCount  int64      `json:"clickCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastClickAt *time.Time `json:"lastClickAt,omitempty"`
}

// LinkListResponse wraps a list of links.
type LinkListResponse struct {
	Links []LinkResponse `json:"links"`
}

func (h *Handler) toLinkResponse(link *domain.TrackingLink) LinkResponse {
	return LinkResponse{
		ID:          link.ID,
		ShortCode:   link.ShortCode,
		TrackingURL: h.links.TrackingURL(link.ShortCode),
		OriginalURL: link.OriginalURL,
		Platform:    link.Platform.String(),
		OwnerID:     link.OwnerID,
		ClickCount:  link.ClickCount,
		CreatedAt:   link.CreatedAt,
		LastClickAt: link.LastClickAt,
	}
}

// CreateCampaign handles POST /links. One submitted URL fans out into a
// link per campaign platform, created all-or-nothing.
func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"Request body must be valid JSON with a 'url' field",
		))
		return
	}
	if req.URL == "" {
		writeProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidURL,
			"Invalid URL",
			"url is required",
		))
		return
	}

	created, err := h.links.CreateCampaignLinks(r.Context(), OwnerID(r.Context()), req.URL)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedURL) {
			writeProblem(w, problemdetails.New(
				http.StatusBadRequest,
				problemdetails.TypeInvalidURL,
				"Invalid URL",
				err.Error(),
			))
			return
		}

		h.logger.Error("failed to create campaign links", zap.Error(err))
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Failed to create links",
		))
		return
	}

	metrics.Get().LinksCreatedTotal.Add(float64(len(created)))

	writeJSON(w, http.StatusCreated, LinkListResponse{
		Links: lo.Map(created, func(l *domain.TrackingLink, _ int) LinkResponse {
			return h.toLinkResponse(l)
		}),
	})
}

// ListLinks handles GET /links, newest first.
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.ListLinks(r.Context(), OwnerID(r.Context()))
	if err != nil {
		h.logger.Error("failed to list links", zap.Error(err))
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Failed to list links",
		))
		return
	}

	resp := LinkListResponse{Links: make([]LinkResponse, 0, len(links))}
	for _, link := range links {
		resp.Links = append(resp.Links, h.toLinkResponse(link))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetLink handles GET /links/{linkID}.
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	link, ok := h.ownedLink(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.toLinkResponse(link))
}

// DeleteLink handles DELETE /links/{linkID}. Removes the owner-scoped
// record and the global resolution entry together.
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkID")

	err := h.links.DeleteLink(r.Context(), OwnerID(r.Context()), linkID)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			writeProblem(w, problemdetails.New(
				http.StatusNotFound,
				problemdetails.TypeNotFound,
				"Not Found",
				"Link not found: "+linkID,
			))
			return
		}

		h.logger.Error("failed to delete link", zap.String("link_id", linkID), zap.Error(err))
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Failed to delete link",
		))
		return
	}

	metrics.Get().LinksDeletedTotal.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// LinkStats handles GET /links/{linkID}/stats.
func (h *Handler) LinkStats(w http.ResponseWriter, r *http.Request) {
	link, ok := h.ownedLink(w, r)
	if !ok {
		return
	}

	stats, err := h.stats.LinkStats(r.Context(), link.ShortCode)
	if err != nil {
		h.logger.Error("failed to load link stats", zap.String("short_code", link.ShortCode), zap.Error(err))
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Failed to load link stats",
		))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// LinkQR handles GET /links/{linkID}/qr, rendering the tracking URL as a
// PNG QR code.
func (h *Handler) LinkQR(w http.ResponseWriter, r *http.Request) {
	link, ok := h.ownedLink(w, r)
	if !ok {
		return
	}

	png, err := qrcode.Encode(h.links.TrackingURL(link.ShortCode), qrcode.Medium, 256)
	if err != nil {
		h.logger.Error("failed to render qr code", zap.String("short_code", link.ShortCode), zap.Error(err))
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Failed to render QR code",
		))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// Redirect handles GET /r/{shortCode}. Click side effects start before the
// redirect is written but never delay it.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	// Extract click context before the response; the request is not
	// available to the detached side effects.
	clientIP := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		clientIP = host
	}
	meta := usecase.ClickMeta{
		UserAgent: r.Header.Get("User-Agent"),
		IPAddress: clientIP,
		Referer:   r.Header.Get("Referer"),
	}

	target, err := h.resolver.Resolve(r.Context(), shortCode, meta)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) || errors.Is(err, domain.ErrInvalidLink) {
			renderNotFoundPage(w)
			return
		}

		h.logger.Error("failed to resolve short code", zap.String("short_code", shortCode), zap.Error(err))
		renderErrorPage(w)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ownedLink loads the link addressed by {linkID} for the authenticated
// owner, writing the error response on failure.
func (h *Handler) ownedLink(w http.ResponseWriter, r *http.Request) (*domain.TrackingLink, bool) {
	linkID := chi.URLParam(r, "linkID")

	link, err := h.links.GetLink(r.Context(), OwnerID(r.Context()), linkID)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			writeProblem(w, problemdetails.New(
				http.StatusNotFound,
				problemdetails.TypeNotFound,
				"Not Found",
				"Link not found: "+linkID,
			))
			return nil, false
		}

		h.logger.Error("failed to load link", zap.String("link_id", linkID), zap.Error(err))
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Failed to load link",
		))
		return nil, false
	}
	return link, true
}
