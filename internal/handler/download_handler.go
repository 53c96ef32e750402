package handler

import (
	"net/http"

	"rescribe/pkg/docconv"

	"github.com/gin-gonic/gin"
)

type DownloadHandler struct{}

func NewDownloadHandler() *DownloadHandler {
	return &DownloadHandler{}
}

type downloadRequest struct {
	Content  string `json:"content"`
	Text     string `json:"text"` // older clients posted the body under "text"
	Filename string `json:"filename"`
}

// Download renders posted text as txt, pdf or docx and streams it back as an
// attachment.
func (h *DownloadHandler) Download(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content == "" {
		req.Content = req.Text
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	name := req.Filename
	if name == "" {
		name = "humanized"
	}

	switch c.Param("format") {
	case "txt":
		c.Header("Content-Disposition", `attachment; filename="`+name+`.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(req.Content))
	case "pdf":
		data, err := docconv.GeneratePDF(req.Content)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf generation failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	case "docx":
		data, err := docconv.GenerateDOCX(req.Content)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "docx generation failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.docx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be txt, pdf or docx"})
	}
}
