package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadharvest/internal/errors"
	"leadharvest/internal/models"
	"leadharvest/internal/services"
	"leadharvest/internal/storage"
	"leadharvest/pkg/logger"
)

type ScrapeHandler struct {
	pool *services.ScrapePool
}

func NewScrapeHandler(pool *services.ScrapePool) *ScrapeHandler {
	return &ScrapeHandler{pool: pool}
}

// Scrape godoc
// @Summary Scrape business leads
// @Description Search the places provider for businesses matching a text query and location, normalized into lead records
// @Tags Scrape
// @Accept json
// @Produce json
// @Param request body models.ScrapeRequest true "Scrape parameters"
// @Success 200 {object} models.ScrapeResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /scrape [post]
func (h *ScrapeHandler) Scrape(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	leads, err := h.pool.Scrape(c.Request.Context(), req.Query, req.Location, req.MaxResults)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.ScrapeResponse{
		Success: true,
		Leads:   leads,
		Stats:   buildStats(leads),
	})
}

// Export godoc
// @Summary Scrape business leads and download them as CSV
// @Tags Scrape
// @Accept json
// @Produce text/csv
// @Param request body models.ScrapeRequest true "Scrape parameters"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /scrape/export [post]
func (h *ScrapeHandler) Export(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	leads, err := h.pool.Scrape(c.Request.Context(), req.Query, req.Location, req.MaxResults)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)
	c.Status(http.StatusOK)
	if err := storage.WriteTo(c.Writer, leads); err != nil {
		// Headers are already sent; all we can do is log.
		logger.GlobalLogger.Errorf("Failed to stream CSV export: query=%q, error=%v", req.Query, err)
	}
}

func (h *ScrapeHandler) bindRequest(c *gin.Context) (*models.ScrapeRequest, bool) {
	var req models.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"message": errors.MsgInvalidQuery,
				"code":    errors.ErrCodeInvalidQuery,
			},
		})
		return nil, false
	}
	return &req, true
}

func buildStats(leads []models.Lead) models.ScrapeStats {
	stats := models.ScrapeStats{Total: len(leads)}
	for _, lead := range leads {
		if lead.Phone != nil {
			stats.WithPhone++
		}
		if lead.Website != nil {
			stats.WithWebsite++
		}
	}
	return stats
}
