package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/services"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/utils"

	"github.com/gin-gonic/gin"
)

type VehicleController struct {
	Vehicles *services.VehicleService
	Importer *services.ImportService
}

func NewVehicleController(vehicles *services.VehicleService, importer *services.ImportService) *VehicleController {
	return &VehicleController{Vehicles: vehicles, Importer: importer}
}

type VehicleInput struct {
	Plate               string `json:"plate" binding:"required"`
	Make                string `json:"make"`
	Model               string `json:"model"`
	Year                int    `json:"year"`
	Active              *bool  `json:"active"`
	InsuranceExpiresAt  string `json:"insurance_expires_at"`  // YYYY-MM-DD
	InspectionExpiresAt string `json:"inspection_expires_at"` // YYYY-MM-DD
}

func (in *VehicleInput) toModel() (*models.Vehicle, error) {
	v := &models.Vehicle{
		Plate:  utils.NormalizeCode(in.Plate),
		Make:   utils.NormalizeText(in.Make),
		Model:  utils.NormalizeText(in.Model),
		Year:   in.Year,
		Active: true,
	}
	if in.Active != nil {
		v.Active = *in.Active
	}
	var err error
	if v.InsuranceExpiresAt, err = parseDate(in.InsuranceExpiresAt); err != nil {
		return nil, errors.New("insurance_expires_at must be YYYY-MM-DD")
	}
	if v.InspectionExpiresAt, err = parseDate(in.InspectionExpiresAt); err != nil {
		return nil, errors.New("inspection_expires_at must be YYYY-MM-DD")
	}
	return v, nil
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GET /vehicles
func (vc *VehicleController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	vehicles, total, err := vc.Vehicles.List(page, limit, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles, "total": total, "page": page, "limit": limit})
}

// GET /vehicles/:id
func (vc *VehicleController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}
	v, err := vc.Vehicles.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /vehicles
func (vc *VehicleController) Create(c *gin.Context) {
	var input VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := vc.Vehicles.Create(v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /vehicles/:id
func (vc *VehicleController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}
	var input VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v.ID = uint(id)
	if err := vc.Vehicles.Update(v); err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /vehicles/:id
func (vc *VehicleController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}
	if err := vc.Vehicles.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /vehicles/import — multipart upload of an .xlsx workbook.
func (vc *VehicleController) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}
	defer file.Close()

	res, err := vc.Importer.ImportVehicles(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
