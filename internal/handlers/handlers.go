package handlers

import (
	"log"
	"net/http"

	"afspraaksms/internal/services"
	"afspraaksms/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler holds the worker that runs reminder passes.
type Handler struct {
	worker *services.Worker
}

func NewHandler(worker *services.Worker) *Handler {
	return &Handler{worker: worker}
}

// Home handles requests to the root path "/"
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Afspraak SMS reminder service")
}

// Health is a simple health check endpoint
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// SendReminders kicks off one reminder pass in the background and
// returns immediately. The caller only ever learns that the pass
// started; outcomes go to the logs and the alert channel.
func (h *Handler) SendReminders(c *gin.Context) {
	go h.worker.RunOnce()
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Reminders processing started in background"})
}

// RingRingWebhook receives delivery-status callbacks from the SMS
// provider. The payload is not validated or consumed; the provider
// just needs an acknowledgement.
func (h *Handler) RingRingWebhook(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("Unparseable webhook payload from %s: %v", utils.GetRealClientIP(c), err)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
