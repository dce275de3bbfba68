package handler

import (
	"fmt"
	"net/http"

	"github.com/diskmensagem/backend/internal/application/agenda"
	"github.com/diskmensagem/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgendaHandler handles the driver's daily delivery agenda
type AgendaHandler struct {
	BaseHandler
	agendaService *agenda.AgendaService
}

// NewAgendaHandler creates a new agenda handler
func NewAgendaHandler(agendaService *agenda.AgendaService, logger *zap.Logger) *AgendaHandler {
	return &AgendaHandler{
		BaseHandler:   NewBaseHandler(logger),
		agendaService: agendaService,
	}
}

// Register registers admin agenda routes
func (h *AgendaHandler) Register(admin *gin.RouterGroup) {
	admin.GET("/agenda", h.Get)
	admin.GET("/agenda.pdf", h.GetPDF)
}

// Get returns the agenda for a date as JSON
func (h *AgendaHandler) Get(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		h.BadRequest(c, dto.ErrCodeValidation, "Query parameter date is required")
		return
	}

	result, err := h.agendaService.Build(c.Request.Context(), date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetPDF renders the agenda for a date as a printable PDF
func (h *AgendaHandler) GetPDF(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		h.BadRequest(c, dto.ErrCodeValidation, "Query parameter date is required")
		return
	}

	pdfData, err := h.agendaService.RenderPDF(c.Request.Context(), date)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"agenda-%s.pdf\"", date))
	c.Data(http.StatusOK, "application/pdf", pdfData)
}
