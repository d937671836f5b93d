package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okutan/lexbook/internal/app/models/dto"
	"github.com/okutan/lexbook/internal/app/services"
	"github.com/okutan/lexbook/internal/middleware"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// WordBookController handles word book endpoints, including acquisition
type WordBookController struct {
	wordBookService    *services.WordBookService
	acquisitionService *services.AcquisitionService
	logger             zerolog.Logger
}

// NewWordBookController creates a new WordBookController
func NewWordBookController(
	wordBookService *services.WordBookService,
	acquisitionService *services.AcquisitionService,
	logger zerolog.Logger,
) *WordBookController {
	return &WordBookController{
		wordBookService:    wordBookService,
		acquisitionService: acquisitionService,
		logger:             logger,
	}
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List all word books
// @Description Returns every word book, newest first
// @Tags wordbooks
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.WordBook}
// @Router /wordbooks [get]
func (c *WordBookController) List(ctx *gin.Context) {
	books, err := c.wordBookService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(books), books))
}

// Get godoc
// @Summary Get a word book
// @Tags wordbooks
// @Produce json
// @Param id path int true "Word book ID"
// @Success 200 {object} dto.APIResponse{data=models.WordBook}
// @Failure 404 {object} dto.ErrorResponse
// @Router /wordbooks/{id} [get]
func (c *WordBookController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	book, err := c.wordBookService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(book))
}

// Create godoc
// @Summary Create a word book
// @Tags wordbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWordBookRequest true "Word book details"
// @Success 201 {object} dto.APIResponse{data=models.WordBook}
// @Failure 403 {object} dto.ErrorResponse
// @Router /wordbooks [post]
func (c *WordBookController) Create(ctx *gin.Context) {
	var req dto.CreateWordBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	book, err := c.wordBookService.Create(ctx.Request.Context(), middleware.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(book))
}

// Update godoc
// @Summary Update a word book
// @Tags wordbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word book ID"
// @Param request body dto.UpdateWordBookRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.WordBook}
// @Failure 404 {object} dto.ErrorResponse
// @Router /wordbooks/{id} [put]
func (c *WordBookController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateWordBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	book, err := c.wordBookService.Update(ctx.Request.Context(), middleware.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(book))
}

// Delete godoc
// @Summary Delete a word book and all of its words
// @Tags wordbooks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word book ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /wordbooks/{id} [delete]
func (c *WordBookController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.wordBookService.Delete(ctx.Request.Context(), middleware.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewSuccessResponse(nil)
	resp.Message = "Word book deleted"
	ctx.JSON(http.StatusOK, resp)
}

// Crawl godoc
// @Summary Build a word book from a web page
// @Description Fetches the page with a headless browser, extracts word entries
// @Description using the configured selectors and stores them as a new word book.
// @Tags wordbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CrawlWordBookRequest true "Page URL and optional selectors"
// @Success 201 {object} dto.APIResponse{data=models.WordBook}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /wordbooks/crawl [post]
func (c *WordBookController) Crawl(ctx *gin.Context) {
	var req dto.CrawlWordBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	book, err := c.acquisitionService.Acquire(ctx.Request.Context(), middleware.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(book))
}
