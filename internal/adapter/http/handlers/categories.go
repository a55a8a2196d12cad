package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pine007/pi-todo/internal/adapter/http/dto"
	"github.com/pine007/pi-todo/internal/adapter/http/mapper"
	"github.com/pine007/pi-todo/internal/adapter/http/middleware"
	"github.com/pine007/pi-todo/internal/adapter/http/validation"
	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
	"github.com/pine007/pi-todo/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgUnauthenticated, lang))
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgCategoryNameRequired, lang))
		return
	}

	name, err := validation.BuildCategoryName(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgCategoryNameRequired, lang))
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), identity.UserID, name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCategory) {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgDuplicateCategory, lang))
			return
		}

		zap.L().Error("failed to create category", zap.Uint64("user_id", identity.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailCreateCategory, lang))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgUnauthenticated, lang))
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), identity.UserID)
	if err != nil {
		zap.L().Error("failed to list categories", zap.Uint64("user_id", identity.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailListCategories, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgUnauthenticated, lang))
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || categoryID == 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidID, lang))
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), identity.UserID, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgCategoryNotFound, lang))
			return
		}

		zap.L().Error("failed to fetch category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailFetchCategory, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgUnauthenticated, lang))
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || categoryID == 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidID, lang))
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgCategoryNameRequired, lang))
		return
	}

	name, err := validation.BuildCategoryName(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgCategoryNameRequired, lang))
		return
	}

	category, err := h.categoryService.Rename(c.Request.Context(), identity.UserID, categoryID, name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgCategoryNotFound, lang))
			return
		}
		if errors.Is(err, domain.ErrDuplicateCategory) {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgDuplicateCategory, lang))
			return
		}

		zap.L().Error("failed to update category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailUpdateCategory, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(apierrors.MsgUnauthenticated, lang))
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || categoryID == 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidID, lang))
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), identity.UserID, categoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgCategoryNotFound, lang))
			return
		}

		zap.L().Error("failed to delete category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailDeleteCategory, lang))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}
