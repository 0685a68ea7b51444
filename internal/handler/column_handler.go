package handler

import (
	"errors"
	"log"
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ColumnHandler struct {
	columnRepo    repository.ColumnRepositoryInterface
	dashboardRepo repository.DashboardRepositoryInterface
}

func NewColumnHandler(columnRepo repository.ColumnRepositoryInterface, dashboardRepo repository.DashboardRepositoryInterface) *ColumnHandler {
	return &ColumnHandler{
		columnRepo:    columnRepo,
		dashboardRepo: dashboardRepo,
	}
}

type CreateColumnRequest struct {
	Name string `json:"name"`
}

type UpdateColumnRequest struct {
	Name     string `json:"name"`
	Position *int   `json:"position"`
}

type ColumnResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Cards []string `json:"cards"`
}

func newColumnResponse(column *model.Column) ColumnResponse {
	cards := make([]string, len(column.Cards))
	for i, id := range column.Cards {
		cards[i] = id.String()
	}
	return ColumnResponse{
		ID:    column.ID.String(),
		Name:  column.Name,
		Cards: cards,
	}
}

// Create appends a new column to the end of the board's column list.
func (h *ColumnHandler) Create(c *gin.Context) {
	dashboard, ok := resolveDashboard(c, h.dashboardRepo)
	if !ok {
		return
	}

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	name := req.Name
	if name == "" {
		name = model.DefaultColumnName
	}

	column := &model.Column{
		Name:  name,
		Cards: model.IDList{},
	}

	if err := h.columnRepo.AddToDashboard(c.Request.Context(), dashboard.ID, column); err != nil {
		if errors.Is(err, repository.ErrDashboardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
			return
		}
		log.Printf("add column: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create column"})
		return
	}

	c.JSON(http.StatusOK, newColumnResponse(column))
}

// Update renames the column, repositions it in the board's column list, or
// both. The response is the reordered reference list when a position was
// supplied, otherwise the renamed column.
func (h *ColumnHandler) Update(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found in this dashboard"})
		return
	}

	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Name == "" && req.Position == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	var column *model.Column
	if req.Name != "" {
		column, err = h.columnRepo.GetByID(c.Request.Context(), columnID)
		if err != nil {
			log.Printf("get column: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
			return
		}
		if column == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}

		column.Name = req.Name
		if err := h.columnRepo.Update(c.Request.Context(), column); err != nil {
			log.Printf("rename column: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update column"})
			return
		}
	}

	if req.Position != nil {
		columns, err := h.columnRepo.Reposition(c.Request.Context(), dashboard.ID, columnID, *req.Position)
		if err != nil {
			if errors.Is(err, repository.ErrDashboardNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
				return
			}
			log.Printf("reposition column: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reposition column"})
			return
		}

		response := make([]string, len(columns))
		for i, id := range columns {
			response[i] = id.String()
		}
		c.JSON(http.StatusOK, response)
		return
	}

	c.JSON(http.StatusOK, newColumnResponse(column))
}

// Delete removes the column from the board and every card it contains.
func (h *ColumnHandler) Delete(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found in this dashboard"})
		return
	}

	if err := h.columnRepo.DeleteCascade(c.Request.Context(), dashboard.ID, columnID); err != nil {
		if errors.Is(err, repository.ErrColumnNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}
		if errors.Is(err, repository.ErrDashboardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
			return
		}
		log.Printf("delete column: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete column"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column deleted successfully"})
}
