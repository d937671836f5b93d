package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okutan/lexbook/internal/app/models/dto"
	"github.com/okutan/lexbook/internal/app/services"
	"github.com/okutan/lexbook/internal/middleware"
	"github.com/rs/zerolog"
)

// WordController handles word entry endpoints
type WordController struct {
	wordService *services.WordService
	logger      zerolog.Logger
}

// NewWordController creates a new WordController
func NewWordController(wordService *services.WordService, logger zerolog.Logger) *WordController {
	return &WordController{
		wordService: wordService,
		logger:      logger,
	}
}

// ListByWordBook godoc
// @Summary List the words of a word book
// @Description Returns the book's words in insertion order
// @Tags words
// @Produce json
// @Param id path int true "Word book ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Word}
// @Failure 404 {object} dto.ErrorResponse
// @Router /wordbooks/{id}/words [get]
func (c *WordController) ListByWordBook(ctx *gin.Context) {
	wordBookID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	words, err := c.wordService.ListByWordBook(ctx.Request.Context(), wordBookID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(words), words))
}

// Create godoc
// @Summary Add a word to a word book
// @Tags words
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word book ID"
// @Param request body dto.CreateWordRequest true "Word details"
// @Success 201 {object} dto.APIResponse{data=models.Word}
// @Failure 404 {object} dto.ErrorResponse
// @Router /wordbooks/{id}/words [post]
func (c *WordController) Create(ctx *gin.Context) {
	wordBookID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateWordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	word, err := c.wordService.Create(ctx.Request.Context(), middleware.ActorFromContext(ctx), wordBookID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(word))
}

// Import godoc
// @Summary Import a batch of words into a word book
// @Tags words
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word book ID"
// @Param request body dto.ImportWordsRequest true "Words to import"
// @Success 201 {object} dto.APIResponse{data=[]models.Word}
// @Failure 404 {object} dto.ErrorResponse
// @Router /wordbooks/{id}/words/import [post]
func (c *WordController) Import(ctx *gin.Context) {
	wordBookID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ImportWordsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	words, err := c.wordService.Import(ctx.Request.Context(), middleware.ActorFromContext(ctx), wordBookID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewListResponse(len(words), words))
}

// Get godoc
// @Summary Get a word
// @Tags words
// @Produce json
// @Param id path int true "Word ID"
// @Success 200 {object} dto.APIResponse{data=models.Word}
// @Failure 404 {object} dto.ErrorResponse
// @Router /words/{id} [get]
func (c *WordController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	word, err := c.wordService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(word))
}

// Update godoc
// @Summary Update a word
// @Tags words
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word ID"
// @Param request body dto.UpdateWordRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Word}
// @Failure 404 {object} dto.ErrorResponse
// @Router /words/{id} [put]
func (c *WordController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateWordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	word, err := c.wordService.Update(ctx.Request.Context(), middleware.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(word))
}

// Delete godoc
// @Summary Delete a word
// @Tags words
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /words/{id} [delete]
func (c *WordController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.wordService.Delete(ctx.Request.Context(), middleware.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewSuccessResponse(nil)
	resp.Message = "Word deleted"
	ctx.JSON(http.StatusOK, resp)
}
