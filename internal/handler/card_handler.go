package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CardHandler struct {
	cardRepo      repository.CardRepositoryInterface
	dashboardRepo repository.DashboardRepositoryInterface
}

func NewCardHandler(cardRepo repository.CardRepositoryInterface, dashboardRepo repository.DashboardRepositoryInterface) *CardHandler {
	return &CardHandler{
		cardRepo:      cardRepo,
		dashboardRepo: dashboardRepo,
	}
}

type CreateCardRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=none low medium high"`
	Deadline    *time.Time `json:"deadline"`
}

type UpdateCardRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=none low medium high"`
	Deadline    *time.Time `json:"deadline"`
	ColumnID    *string    `json:"columnId"`
}

type CardResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	ColumnID    string     `json:"columnId"`
}

func newCardResponse(card *model.Card) CardResponse {
	return CardResponse{
		ID:          card.ID.String(),
		Title:       card.Title,
		Description: card.Description,
		Priority:    card.Priority,
		Deadline:    card.Deadline,
		ColumnID:    card.ColumnID.String(),
	}
}

// Create adds a card to the end of a column's card list. The column must be
// one of the resolved dashboard's columns.
func (h *CardHandler) Create(c *gin.Context) {
	dashboard, ok := resolveDashboard(c, h.dashboardRepo)
	if !ok {
		return
	}

	columnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	if !dashboard.Columns.Contains(columnID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityNone
	}

	card := &model.Card{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Deadline:    req.Deadline,
	}

	if err := h.cardRepo.AddToColumn(c.Request.Context(), columnID, card); err != nil {
		if errors.Is(err, repository.ErrColumnNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}
		log.Printf("add card: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusOK, newCardResponse(card))
}

// Update applies field updates to a card and, when columnId changes, moves
// its reference between the two columns' card lists. Both columns must
// belong to the resolved dashboard.
func (h *CardHandler) Update(c *gin.Context) {
	dashboard, ok := resolveDashboard(c, h.dashboardRepo)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	card, err := h.cardRepo.GetByID(c.Request.Context(), cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		log.Printf("get card: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		return
	}

	if !dashboard.Columns.Contains(card.ColumnID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found in this dashboard"})
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	update := repository.CardUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Deadline:    req.Deadline,
	}

	if req.ColumnID != nil {
		newColumnID, err := uuid.Parse(*req.ColumnID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
			return
		}
		if !dashboard.Columns.Contains(newColumnID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "New column not found in this dashboard"})
			return
		}
		update.ColumnID = &newColumnID
	}

	if err := h.cardRepo.Move(c.Request.Context(), card, update); err != nil {
		if errors.Is(err, repository.ErrColumnNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}
		log.Printf("update card: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	c.JSON(http.StatusOK, newCardResponse(card))
}

// Delete removes the card and its reference in the owning column's list.
func (h *CardHandler) Delete(c *gin.Context) {
	dashboard, ok := resolveDashboard(c, h.dashboardRepo)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	card, err := h.cardRepo.GetByID(c.Request.Context(), cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		log.Printf("get card: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		return
	}

	if !dashboard.Columns.Contains(card.ColumnID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found in this dashboard"})
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), card); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		log.Printf("delete card: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}
