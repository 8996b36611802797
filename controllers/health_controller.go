package controllers

import (
	"net/http"
	"strconv"

	"healthscan/models"
	"healthscan/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Health *services.HealthService
}

func NewHealthController(h *services.HealthService) *HealthController {
	return &HealthController{Health: h}
}

type recordInput struct {
	UserKey string `json:"user_key" binding:"required"`
	models.BodyMetrics
}

// POST /health/report
func (hc *HealthController) Report(c *gin.Context) {
	var input models.BodyMetrics
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := hc.Health.Report(input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// POST /health/logs
func (hc *HealthController) Record(c *gin.Context) {
	var input recordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := hc.Health.Record(c.Request.Context(), input.UserKey, input.BodyMetrics)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GET /health/logs?user=ana&limit=20
func (hc *HealthController) History(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logs, err := hc.Health.History(c.Request.Context(), c.Query("user"), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

const defaultHistoryLimit = 50

func queryLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultHistoryLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errInvalidLimit
	}
	return n, nil
}
