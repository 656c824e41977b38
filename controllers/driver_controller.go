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

type DriverController struct {
	Drivers *services.DriverService
}

func NewDriverController(drivers *services.DriverService) *DriverController {
	return &DriverController{Drivers: drivers}
}

type DriverInput struct {
	EmployeeCode          string `json:"employee_code" binding:"required"`
	FullName              string `json:"full_name" binding:"required"`
	Active                *bool  `json:"active"`
	LicenseExpiresAt      string `json:"license_expires_at"`
	HazmatPermitExpiresAt string `json:"hazmat_permit_expires_at"`
}

func (in *DriverInput) toModel() (*models.Driver, error) {
	d := &models.Driver{
		EmployeeCode: utils.NormalizeCode(in.EmployeeCode),
		FullName:     utils.NormalizeText(in.FullName),
		Active:       true,
	}
	if in.Active != nil {
		d.Active = *in.Active
	}
	var err error
	if d.LicenseExpiresAt, err = parseDate(in.LicenseExpiresAt); err != nil {
		return nil, errors.New("license_expires_at must be YYYY-MM-DD")
	}
	if d.HazmatPermitExpiresAt, err = parseDate(in.HazmatPermitExpiresAt); err != nil {
		return nil, errors.New("hazmat_permit_expires_at must be YYYY-MM-DD")
	}
	return d, nil
}

// GET /drivers
func (dc *DriverController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	drivers, total, err := dc.Drivers.List(page, limit, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"drivers": drivers, "total": total, "page": page, "limit": limit})
}

// GET /drivers/:id
func (dc *DriverController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid driver id"})
		return
	}
	d, err := dc.Drivers.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /drivers
func (dc *DriverController) Create(c *gin.Context) {
	var input DriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dc.Drivers.Create(d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// PUT /drivers/:id
func (dc *DriverController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid driver id"})
		return
	}
	var input DriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.ID = uint(id)
	if err := dc.Drivers.Update(d); err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// DELETE /drivers/:id
func (dc *DriverController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid driver id"})
		return
	}
	if err := dc.Drivers.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
