package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	shopdomain "github.com/smallbiznis/shopbill/internal/shop/domain"
)

type setupShopRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	TaxNumber     string `json:"tax_number"`
}

func (s *Server) GetShop(c *gin.Context) {
	resp, err := s.shopSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SetupShop(c *gin.Context) {
	var req setupShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.shopSvc.Replace(c.Request.Context(), shopdomain.ReplaceShopRequest{
		Name:          strings.TrimSpace(req.Name),
		Address:       strings.TrimSpace(req.Address),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Email:         strings.TrimSpace(req.Email),
		TaxNumber:     strings.TrimSpace(req.TaxNumber),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
