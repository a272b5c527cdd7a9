package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetDashboard(c *gin.Context) {
	shopConfigured, err := s.shopSvc.Exists(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	itemCount, err := s.catalogSvc.Count(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	billCount, err := s.billingSvc.Count(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"shop_configured": shopConfigured,
		"item_count":      itemCount,
		"bill_count":      billCount,
	}})
}
