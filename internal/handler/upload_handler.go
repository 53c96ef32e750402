package handler

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"rescribe/internal/middleware"
	"rescribe/internal/models"
	"rescribe/internal/repository"
	"rescribe/internal/service"
	"rescribe/pkg/docconv"
	"rescribe/pkg/storage"
	"rescribe/pkg/textchunk"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 20 << 20 // 20 MiB

type UploadHandler struct {
	docs  *repository.DocumentRepository
	svc   *service.RewriteService
	store storage.ObjectStore // nil when no object storage is configured
}

func NewUploadHandler(docs *repository.DocumentRepository, svc *service.RewriteService, store storage.ObjectStore) *UploadHandler {
	return &UploadHandler{docs: docs, svc: svc, store: store}
}

func readUpload(c *gin.Context) (string, []byte, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return "", nil, false
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return "", nil, false
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return "", nil, false
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil || int64(len(data)) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return "", nil, false
	}
	return file.Filename, data, true
}

// Upload extracts text from a txt/pdf/docx file, persists it as a Document
// and runs the same detection and chunk planning the analyze endpoint does,
// so the client can offer per-chunk rewriting straight from the upload.
// When object storage is configured the original bytes are archived as well;
// archive failure does not fail the upload.
func (h *UploadHandler) Upload(c *gin.Context) {
	filename, data, ok := readUpload(c)
	if !ok {
		return
	}
	text, err := docconv.ExtractText(filename, data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	doc := &models.Document{
		ID:        uuid.NewString(),
		Filename:  filepath.Base(filename),
		Content:   text,
		WordCount: textchunk.WordCount(text),
	}
	if id := middleware.GetUserID(c); id != 0 {
		doc.UserID = &id
	}
	if h.store != nil {
		key := storage.DocumentKey(doc.ID, doc.Filename)
		if err := h.store.Put(c.Request.Context(), key, bytes.NewReader(data), int64(len(data)), contentTypeFor(filename)); err != nil {
			log.Printf("[upload] archive failed for %s: %v", doc.ID, err)
		} else {
			doc.StorageKey = key
		}
	}
	if err := h.docs.Create(doc); err != nil {
		log.Printf("[upload] persist failed: %v", err)
		if doc.StorageKey != "" {
			if derr := h.store.Delete(c.Request.Context(), doc.StorageKey); derr != nil {
				log.Printf("[upload] orphan cleanup failed for %s: %v", doc.StorageKey, derr)
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	chunks := []textchunk.Chunk{}
	var aiScore *int
	needsChunking := false
	if text != "" {
		analysis, aerr := h.svc.Analyze(c.Request.Context(), middleware.KeyScope(c), text)
		if aerr != nil {
			log.Printf("[upload] analyze failed for %s: %v", doc.ID, aerr)
		} else {
			aiScore = analysis.AIScore
			needsChunking = analysis.NeedsChunking
			if analysis.Chunks != nil {
				chunks = analysis.Chunks
			}
			if aiScore != nil {
				doc.AIScore = aiScore
				if uerr := h.docs.UpdateAIScore(doc.ID, *aiScore); uerr != nil {
					log.Printf("[upload] score persist failed for %s: %v", doc.ID, uerr)
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"document": gin.H{
			"id":        doc.ID,
			"filename":  doc.Filename,
			"content":   doc.Content,
			"wordCount": doc.WordCount,
			"aiScore":   doc.AIScore,
		},
		"chunks":        chunks,
		"aiScore":       aiScore,
		"needsChunking": needsChunking,
	})
}

// ExtractPDF returns the text of a PDF without persisting anything.
func (h *UploadHandler) ExtractPDF(c *gin.Context) {
	filename, data, ok := readUpload(c)
	if !ok {
		return
	}
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a .pdf file is required"})
		return
	}
	text, err := docconv.ExtractPDF(data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text, "wordCount": textchunk.WordCount(text)})
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain; charset=utf-8"
	}
}
