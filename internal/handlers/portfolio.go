package handlers

import (
	"errors"
	"net/http"

	"lifeboard/internal/models"
	"lifeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for adding a holding. No owner field by design.
type addHoldingRequest struct {
	Symbol string  `json:"symbol" binding:"required"`
	Shares float64 `json:"shares" binding:"required"`
	Price  float64 `json:"price"`
}

// @Summary      List holdings
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, holdings"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/portfolio [get]
// @Security     BearerAuth
func (h *Handler) listHoldings(c *gin.Context) {
	holdings, err := h.services.Portfolio.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeServiceError(c, "portfolio_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(holdings),
		"holdings": holdings,
	})
}

// @Summary      Add holding
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        body  body  addHoldingRequest  true  "Holding payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/portfolio [post]
// @Security     BearerAuth
func (h *Handler) addHolding(c *gin.Context) {
	var req addHoldingRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	holding, err := h.services.Portfolio.Add(c.Request.Context(), currentUserID(c), req.Symbol, req.Shares, req.Price)
	if err != nil {
		h.writeServiceError(c, "holding_add_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// @Summary      Delete holding
// @Tags         portfolio
// @Produce      json
// @Param        id  path  int  true  "Holding ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/portfolio/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteHolding(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Portfolio.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.writeServiceError(c, "holding_delete_failed", err, "holdingId", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}

// @Summary      Search stock
// @Description  Looks up a ticker at the external provider. Provider failures yield an empty result list, never an error page.
// @Tags         portfolio
// @Produce      json
// @Param        query  query  string  true  "Ticker symbol"
// @Success      200  {object}  map[string]interface{}  "results"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/portfolio/search-stock [get]
// @Security     BearerAuth
func (h *Handler) searchStock(c *gin.Context) {
	query := c.Query("query")
	results, err := h.services.Portfolio.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrQuoteLookup) {
			if h.log != nil {
				h.log.Infow("stock_search_lookup_failed", "query", query, "err", err)
			}
			c.JSON(http.StatusOK, gin.H{"results": []models.Quote{}})
			return
		}
		h.writeServiceError(c, "stock_search_failed", err, "query", query)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
