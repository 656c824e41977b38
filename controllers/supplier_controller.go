package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/services"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/utils"

	"github.com/gin-gonic/gin"
)

type SupplierController struct {
	Suppliers *services.SupplierService
}

func NewSupplierController(suppliers *services.SupplierService) *SupplierController {
	return &SupplierController{Suppliers: suppliers}
}

type SupplierInput struct {
	TaxID                  string `json:"tax_id" binding:"required"`
	Name                   string `json:"name" binding:"required"`
	Active                 *bool  `json:"active"`
	CertificationExpiresAt string `json:"certification_expires_at"`
}

func (in *SupplierInput) toModel() (*models.Supplier, error) {
	sp := &models.Supplier{
		TaxID:  utils.NormalizeCode(in.TaxID),
		Name:   utils.NormalizeText(in.Name),
		Active: true,
	}
	if in.Active != nil {
		sp.Active = *in.Active
	}
	var err error
	if sp.CertificationExpiresAt, err = parseDate(in.CertificationExpiresAt); err != nil {
		return nil, errors.New("certification_expires_at must be YYYY-MM-DD")
	}
	return sp, nil
}

// GET /suppliers
func (sc *SupplierController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	suppliers, total, err := sc.Suppliers.List(page, limit, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers, "total": total, "page": page, "limit": limit})
}

// GET /suppliers/:id
func (sc *SupplierController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier id"})
		return
	}
	sp, err := sc.Suppliers.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sp)
}

// POST /suppliers
func (sc *SupplierController) Create(c *gin.Context) {
	var input SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sp, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sc.Suppliers.Create(sp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sp)
}

// PUT /suppliers/:id
func (sc *SupplierController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier id"})
		return
	}
	var input SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sp, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sp.ID = uint(id)
	if err := sc.Suppliers.Update(sp); err != nil {
		if errors.Is(err, services.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sp)
}

// DELETE /suppliers/:id
func (sc *SupplierController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier id"})
		return
	}
	if err := sc.Suppliers.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
