package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/clientbase/internal/server/http/dto"
)

const defaultPageSize = 10

// CustomerHandler processes customer CRUD, search and import requests.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler creates CustomerHandler instance.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Create handles POST /api/customers/create.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}

	sync, _ := strconv.ParseBool(c.Query("sync"))
	customer, err := h.facade.CreateCustomer(c.Request.Context(), req.Fields(), sync)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// List handles GET /api/customers/getAllCustomers.
func (h *CustomerHandler) List(c *gin.Context) {
	pageNo, err := strconv.Atoi(c.DefaultQuery("pageNo", "0"))
	if err != nil || pageNo < 0 {
		pageNo = 0
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize <= 0 {
		pageSize = defaultPageSize
	}
	sortBy := c.Query("sortBy")

	page, err := h.facade.Customers(c.Request.Context(), pageNo, pageSize, sortBy)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := int((page.Total + int64(pageSize) - 1) / int64(pageSize))
	c.JSON(http.StatusOK, dto.PageResponse{
		Content:       dto.NewCustomerResponses(page.Customers),
		PageNo:        pageNo,
		PageSize:      pageSize,
		TotalElements: page.Total,
		TotalPages:    totalPages,
	})
}

// Update handles PUT /api/customers/update/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid customer id")
		return
	}

	var req dto.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}

	customer, err := h.facade.UpdateCustomer(c.Request.Context(), id, req.Fields())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Search handles GET /api/customers/search.
func (h *CustomerHandler) Search(c *gin.Context) {
	matches, err := h.facade.SearchCustomers(c.Request.Context(), c.Query("searchBy"), c.Query("searchQuery"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCustomerResponses(matches))
}

// Get handles GET /api/customers/getCustomer/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid customer id")
		return
	}

	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/delete/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid customer id")
		return
	}

	if err := h.facade.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "DELETED", "Successfully deleted")
}

// Sync handles GET /api/customers/sync.
func (h *CustomerHandler) Sync(c *gin.Context) {
	records, err := h.facade.ImportCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, records)
}
