package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/smallbiznis/shopbill/internal/billing/domain"
)

type calculateBillRequest struct {
	Items         []billingdomain.Selection `json:"items"`
	TaxRate       *float64                  `json:"tax_rate"`
	DiscountType  string                    `json:"discount_type"`
	DiscountValue float64                   `json:"discount_value"`
}

type saveBillRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	CustomerContact string `json:"customer_contact"`

	Subtotal      float64 `json:"subtotal"`
	TaxRate       float64 `json:"tax_rate"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`

	Items    []billingdomain.SaveBillItem `json:"items"`
	Metadata map[string]interface{}       `json:"metadata"`
}

func (s *Server) ListBills(c *gin.Context) {
	resp, err := s.billingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetBillForm serves the data the bill creation screen needs: the
// current catalog to pick items from.
func (s *Server) GetBillForm(c *gin.Context) {
	items, err := s.catalogSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"items": items}})
}

func (s *Server) GetBillByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.billingSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteBill(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.billingSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) CalculateBill(c *gin.Context) {
	var req calculateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	breakdown, err := s.billingSvc.Calculate(c.Request.Context(), billingdomain.CalculateBillRequest{
		Items:         req.Items,
		TaxRate:       req.TaxRate,
		DiscountType:  strings.TrimSpace(req.DiscountType),
		DiscountValue: req.DiscountValue,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

func (s *Server) SaveBill(c *gin.Context) {
	var req saveBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	bill, err := s.billingSvc.Save(c.Request.Context(), billingdomain.SaveBillRequest{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		CustomerContact: strings.TrimSpace(req.CustomerContact),
		Subtotal:        req.Subtotal,
		TaxRate:         req.TaxRate,
		TaxAmount:       req.TaxAmount,
		TotalAmount:     req.TotalAmount,
		DiscountType:    strings.TrimSpace(req.DiscountType),
		DiscountValue:   req.DiscountValue,
		Items:           req.Items,
		Metadata:        req.Metadata,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"bill_id":     bill.ID,
		"bill_number": bill.BillNumber,
	})
}

func (s *Server) DownloadBill(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.billingSvc.Document(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}
