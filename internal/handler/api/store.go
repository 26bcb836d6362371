package api

import (
	"errors"
	"net/http"

	reqdto "storeslot/internal/handler/dto/request"
	resdto "storeslot/internal/handler/dto/response"
	"storeslot/internal/handler/middleware"
	"storeslot/internal/usecase/commands"
	"storeslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StoreHandler struct {
	storeCommands commands.StoreCommands
	storeQueries  queries.StoreQueries
}

func NewStoreHandler(storeCommands commands.StoreCommands, storeQueries queries.StoreQueries) *StoreHandler {
	return &StoreHandler{
		storeCommands: storeCommands,
		storeQueries:  storeQueries,
	}
}

// @Summary List stores
// @Description List all registered stores
// @Tags stores
// @Produce json
// @Success 200 {array} resdto.StoreResponse
// @Router /stores [get]
func (h *StoreHandler) ListStores(c *gin.Context) {
	views, err := h.storeQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStoreViews(views))
}

// @Summary Get store
// @Description Get store by ID
// @Tags stores
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} resdto.StoreResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores/{id} [get]
func (h *StoreHandler) GetStore(c *gin.Context) {
	storeID, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.storeQueries.GetByID(c.Request.Context(), storeID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStoreNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Store not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStoreView(view))
}

// @Summary List owned stores
// @Description List stores owned by the current partner
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.StoreResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /stores/owned [get]
func (h *StoreHandler) ListOwnedStores(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.storeQueries.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStoreViews(views))
}

// @Summary Register store
// @Description Register a new store owned by the current partner
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateStoreRequest true "Store request"
// @Success 201 {object} resdto.StoreResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /stores [post]
func (h *StoreHandler) CreateStore(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.storeCommands.CreateStore(c.Request.Context(), req, ownerID)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromStoreView(view))
}

// @Summary Update store
// @Description Update a store owned by the current partner
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Param request body reqdto.UpdateStoreRequest true "Store request"
// @Success 200 {object} resdto.StoreResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /stores/{id} [patch]
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	storeID, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.storeCommands.UpdateStore(c.Request.Context(), storeID, req, actorID)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStoreView(view))
}

// @Summary Delete store
// @Description Delete a store owned by the current partner
// @Tags stores
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores/{id} [delete]
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	storeID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.storeCommands.DeleteStore(c.Request.Context(), storeID, actorID); err != nil {
		h.respondStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *StoreHandler) respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrStoreNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Store not found",
		})
	case errors.Is(err, commands.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, commands.ErrPartnerRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Partner role required",
		})
	case errors.Is(err, commands.ErrDuplicateStoreName):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Store name already registered",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid store data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// pathID parses the :id path segment; on failure it writes the 400
// itself and reports false.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
