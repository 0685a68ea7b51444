package handler

import (
	"log"
	"net/http"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type DashboardHandler struct {
	dashboardRepo repository.DashboardRepositoryInterface
	columnRepo    repository.ColumnRepositoryInterface
	cardRepo      repository.CardRepositoryInterface
}

func NewDashboardHandler(dashboardRepo repository.DashboardRepositoryInterface, columnRepo repository.ColumnRepositoryInterface, cardRepo repository.CardRepositoryInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardRepo: dashboardRepo,
		columnRepo:    columnRepo,
		cardRepo:      cardRepo,
	}
}

type CreateDashboardRequest struct {
	Name            string `json:"name" binding:"required"`
	Icon            string `json:"icon"`
	BackgroundImage string `json:"backgroundImage"`
}

type UpdateDashboardRequest struct {
	Name            string `json:"name"`
	Icon            string `json:"icon"`
	BackgroundImage string `json:"backgroundImage"`
}

type DashboardResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Icon            string   `json:"icon,omitempty"`
	BackgroundImage string   `json:"backgroundImage,omitempty"`
	OwnerID         string   `json:"owner_id"`
	Columns         []string `json:"columns"`
	CreatedAt       string   `json:"created_at"`
}

type ColumnDetailResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Cards []CardResponse `json:"cards"`
}

type DashboardDetailResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Slug            string                 `json:"slug"`
	Icon            string                 `json:"icon,omitempty"`
	BackgroundImage string                 `json:"backgroundImage,omitempty"`
	OwnerID         string                 `json:"owner_id"`
	Columns         []ColumnDetailResponse `json:"columns"`
	CreatedAt       string                 `json:"created_at"`
}

func newDashboardResponse(dashboard *model.Dashboard) DashboardResponse {
	columns := make([]string, len(dashboard.Columns))
	for i, id := range dashboard.Columns {
		columns[i] = id.String()
	}
	return DashboardResponse{
		ID:              dashboard.ID.String(),
		Name:            dashboard.Name,
		Slug:            dashboard.Slug,
		Icon:            dashboard.Icon,
		BackgroundImage: dashboard.BackgroundImage,
		OwnerID:         dashboard.OwnerID.String(),
		Columns:         columns,
		CreatedAt:       dashboard.CreatedAt.Format(http.TimeFormat),
	}
}

// resolveDashboard loads the dashboard named by the :slug parameter, scoped
// to the authenticated user. Every column and card mutation goes through
// this first. A board owned by someone else reads as not found, so nothing
// leaks about other users' boards. The error response is written here;
// callers only check the bool.
func resolveDashboard(c *gin.Context, repo repository.DashboardRepositoryInterface) (*model.Dashboard, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}

	ownerID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return nil, false
	}

	dashboard, err := repo.GetBySlug(c.Request.Context(), ownerID, c.Param("slug"))
	if err != nil {
		log.Printf("resolve dashboard %q: %v", c.Param("slug"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		return nil, false
	}

	if dashboard == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
		return nil, false
	}

	return dashboard, true
}

// Create creates a new dashboard for the authenticated user
func (h *DashboardHandler) Create(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	ownerID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req CreateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	dashboard := &model.Dashboard{
		OwnerID:         ownerID,
		Name:            req.Name,
		Slug:            slug.Make(req.Name),
		Icon:            req.Icon,
		BackgroundImage: req.BackgroundImage,
		Columns:         model.IDList{},
	}

	if err := h.dashboardRepo.Create(c.Request.Context(), dashboard); err != nil {
		log.Printf("create dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dashboard"})
		return
	}

	c.JSON(http.StatusOK, newDashboardResponse(dashboard))
}

func (h *DashboardHandler) GetAll(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	ownerID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	dashboards, err := h.dashboardRepo.GetOwned(c.Request.Context(), ownerID)
	if err != nil {
		log.Printf("list dashboards: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboards"})
		return
	}

	response := make([]DashboardResponse, len(dashboards))
	for i := range dashboards {
		response[i] = newDashboardResponse(&dashboards[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetBySlug returns the dashboard with its columns and cards expanded, in
// display order.
func (h *DashboardHandler) GetBySlug(c *gin.Context) {
	dashboard, ok := resolveDashboard(c, h.dashboardRepo)
	if !ok {
		return
	}

	columns, err := h.columnRepo.GetByIDs(c.Request.Context(), dashboard.Columns)
	if err != nil {
		log.Printf("expand dashboard columns: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	expanded := make([]ColumnDetailResponse, len(columns))
	for i, column := range columns {
		cards, err := h.cardRepo.GetByIDs(c.Request.Context(), column.Cards)
		if err != nil {
			log.Printf("expand column cards: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
			return
		}

		cardResponses := make([]CardResponse, len(cards))
		for j := range cards {
			cardResponses[j] = newCardResponse(&cards[j])
		}
		expanded[i] = ColumnDetailResponse{
			ID:    column.ID.String(),
			Name:  column.Name,
			Cards: cardResponses,
		}
	}

	c.JSON(http.StatusOK, DashboardDetailResponse{
		ID:              dashboard.ID.String(),
		Name:            dashboard.Name,
		Slug:            dashboard.Slug,
		Icon:            dashboard.Icon,
		BackgroundImage: dashboard.BackgroundImage,
		OwnerID:         dashboard.OwnerID.String(),
		Columns:         expanded,
		CreatedAt:       dashboard.CreatedAt.Format(http.TimeFormat),
	})
}

func (h *DashboardHandler) Update(c *gin.Context) {
	dashboard, ok := resolveDashboard(c, h.dashboardRepo)
	if !ok {
		return
	}

	var req UpdateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// The slug stays stable across renames: it is the board's identity in
	// every URL a client already holds.
	if req.Name != "" {
		dashboard.Name = req.Name
	}
	if req.Icon != "" {
		dashboard.Icon = req.Icon
	}
	if req.BackgroundImage != "" {
		dashboard.BackgroundImage = req.BackgroundImage
	}

	if err := h.dashboardRepo.Update(c.Request.Context(), dashboard); err != nil {
		log.Printf("update dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dashboard"})
		return
	}

	c.JSON(http.StatusOK, newDashboardResponse(dashboard))
}

func (h *DashboardHandler) Delete(c *gin.Context) {
	dashboard, ok := resolveDashboard(c, h.dashboardRepo)
	if !ok {
		return
	}

	if err := h.dashboardRepo.DeleteCascade(c.Request.Context(), dashboard); err != nil {
		log.Printf("delete dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dashboard deleted successfully"})
}
