package controllers

import (
	"errors"
	"net/http"

	"healthscan/services"

	"github.com/gin-gonic/gin"
)

var errInvalidLimit = errors.New("limit must be a positive integer")

type ScanController struct {
	Scans *services.ScanService
}

func NewScanController(s *services.ScanService) *ScanController {
	return &ScanController{Scans: s}
}

// POST /scan  { "image_base64": "data:image/jpeg;base64,…" }
func (sc *ScanController) Scan(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	out, err := sc.Scans.Scan(c.Request.Context(), req.ImageBase64)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /scan/camera. Capture happens in the browser; there is nothing to do
// server-side yet.
func (sc *ScanController) Camera(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": services.CameraUnavailableMessage})
}

// GET /scan/history?limit=20
func (sc *ScanController) History(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recs, err := sc.Scans.History(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scans": recs})
}
