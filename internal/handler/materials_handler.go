package handler

import (
	"log"
	"net/http"
	"time"

	"rescribe/internal/middleware"
	"rescribe/internal/models"
	"rescribe/internal/repository"
	"rescribe/pkg/storage"

	"github.com/gin-gonic/gin"
)

const downloadLinkTTL = 15 * time.Minute

type MaterialsHandler struct {
	docs  *repository.DocumentRepository
	jobs  *repository.JobRepository
	store storage.ObjectStore // nil when no object storage is configured
}

func NewMaterialsHandler(docs *repository.DocumentRepository, jobs *repository.JobRepository, store storage.ObjectStore) *MaterialsHandler {
	return &MaterialsHandler{docs: docs, jobs: jobs, store: store}
}

type materialDocument struct {
	models.Document
	DownloadURL string `json:"download_url,omitempty"`
}

// Materials returns the signed-in user's uploaded documents and rewrite
// history, newest first. Documents whose original file was archived carry a
// short-lived download link.
func (h *MaterialsHandler) Materials(c *gin.Context) {
	userID := middleware.GetUserID(c)
	docs, err := h.docs.ListByUser(userID, 100)
	if err != nil {
		log.Printf("[materials] list documents failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load materials"})
		return
	}
	jobs, err := h.jobs.ListByUser(userID, 100)
	if err != nil {
		log.Printf("[materials] list jobs failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load materials"})
		return
	}

	out := make([]materialDocument, 0, len(docs))
	for _, d := range docs {
		md := materialDocument{Document: d}
		if h.store != nil && d.StorageKey != "" {
			url, perr := h.store.PresignGet(c.Request.Context(), d.StorageKey, downloadLinkTTL)
			if perr != nil {
				log.Printf("[materials] presign failed for %s: %v", d.ID, perr)
			} else {
				md.DownloadURL = url
			}
		}
		out = append(out, md)
	}
	c.JSON(http.StatusOK, gin.H{"documents": out, "rewriteJobs": jobs})
}
