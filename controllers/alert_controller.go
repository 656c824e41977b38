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

type AlertController struct {
	Alerts    *services.AlertService
	Generator *services.AlertGenerator
}

func NewAlertController(alerts *services.AlertService, gen *services.AlertGenerator) *AlertController {
	return &AlertController{Alerts: alerts, Generator: gen}
}

// GET /alerts?kind&category&priority&status&search&page&limit
func (ac *AlertController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := services.AlertFilter{
		Kind:     c.Query("kind"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	alerts, total, err := ac.Alerts.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// GET /alerts/stats
func (ac *AlertController) Stats(c *gin.Context) {
	stats, err := ac.Alerts.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /alerts/upcoming?days=N
func (ac *AlertController) Upcoming(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative integer"})
		return
	}

	alerts, err := ac.Alerts.Upcoming(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "days": days})
}

type CreateAlertInput struct {
	Kind         string `json:"kind" binding:"required"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	SubjectKind  string `json:"subject_kind" binding:"required"`
	SubjectID    string `json:"subject_id" binding:"required"`
	SubjectLabel string `json:"subject_label"`
	DueAt        string `json:"due_at"` // YYYY-MM-DD, optional
	Notes        string `json:"notes"`
}

// POST /alerts — manual creation, same uniqueness invariant as the sweep.
func (ac *AlertController) Create(c *gin.Context) {
	var input CreateAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert := &models.Alert{
		Kind:         utils.NormalizeText(input.Kind),
		Category:     utils.NormalizeText(input.Category),
		Priority:     input.Priority,
		Title:        utils.NormalizeText(input.Title),
		Description:  utils.NormalizeText(input.Description),
		SubjectKind:  utils.NormalizeText(input.SubjectKind),
		SubjectID:    utils.NormalizeText(input.SubjectID),
		SubjectLabel: utils.NormalizeText(input.SubjectLabel),
		Notes:        utils.NormalizeText(input.Notes),
	}
	if input.DueAt != "" {
		due, err := time.Parse("2006-01-02", input.DueAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "due_at must be YYYY-MM-DD"})
			return
		}
		alert.DueAt = &due
	}

	if err := ac.Alerts.Create(alert); err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		case errors.Is(err, services.ErrDuplicateOpenAlert):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, alert)
}

type ResolveInput struct {
	ResolvedBy string `json:"resolved_by"`
	Notes      string `json:"notes"`
}

// PUT /alerts/:id/resolve
func (ac *AlertController) Resolve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	var input ResolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := ac.Alerts.Resolve(uint(id), utils.NormalizeText(input.ResolvedBy), utils.NormalizeText(input.Notes))
	if err != nil {
		if errors.Is(err, services.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alert)
}

type PostponeInput struct {
	NewDueAt    string `json:"new_due_at" binding:"required"`
	PostponedBy string `json:"postponed_by"`
	Notes       string `json:"notes"`
}

// PUT /alerts/:id/postpone
func (ac *AlertController) Postpone(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	var input PostponeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newDue, err := time.Parse("2006-01-02", input.NewDueAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_due_at must be YYYY-MM-DD"})
		return
	}

	alert, err := ac.Alerts.Postpone(uint(id), newDue, utils.NormalizeText(input.PostponedBy), utils.NormalizeText(input.Notes))
	if err != nil {
		if errors.Is(err, services.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alert)
}

// POST /alerts/generate — runs one sweep synchronously. Optional
// reference_date (YYYY-MM-DD) defaults to today.
func (ac *AlertController) Generate(c *gin.Context) {
	ref := time.Now()
	if raw := c.Query("reference_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reference_date must be YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	created, err := ac.Generator.RunSweep(ref)
	if err != nil && created == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}
