package controllers

import (
	"errors"
	"net/http"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/services"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/utils"

	"github.com/gin-gonic/gin"
)

type DocumentController struct {
	Documents *services.DocumentService
}

func NewDocumentController(documents *services.DocumentService) *DocumentController {
	return &DocumentController{Documents: documents}
}

type UploadDocumentInput struct {
	SubjectKind  string `json:"subject_kind" binding:"required"`
	SubjectID    string `json:"subject_id" binding:"required"`
	Kind         string `json:"kind"`
	OriginalName string `json:"original_name"`
	Data         string `json:"data" binding:"required"` // data URL, base64
}

// POST /documents
func (dc *DocumentController) Upload(c *gin.Context) {
	var input UploadDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uploadedBy, _ := c.Get("email")
	by, _ := uploadedBy.(string)

	doc, err := dc.Documents.Upload(
		utils.NormalizeText(input.SubjectKind),
		utils.NormalizeText(input.SubjectID),
		utils.NormalizeText(input.Kind),
		utils.NormalizeText(input.OriginalName),
		input.Data,
		by,
	)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GET /documents?subject_kind&subject_id
func (dc *DocumentController) ListBySubject(c *gin.Context) {
	subjectKind := c.Query("subject_kind")
	subjectID := c.Query("subject_id")
	if subjectKind == "" || subjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject_kind and subject_id are required"})
		return
	}

	docs, err := dc.Documents.ListBySubject(subjectKind, subjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}
