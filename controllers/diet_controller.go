package controllers

import (
	"net/http"

	"healthscan/services"

	"github.com/gin-gonic/gin"
)

type DietController struct {
	Diets *services.DietService
}

func NewDietController(d *services.DietService) *DietController {
	return &DietController{Diets: d}
}

// GET /diet/options
func (dc *DietController) Options(c *gin.Context) {
	c.JSON(http.StatusOK, dc.Diets.Options())
}

// POST /diet/plans
func (dc *DietController) Generate(c *gin.Context) {
	var req services.DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := dc.Diets.Generate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
