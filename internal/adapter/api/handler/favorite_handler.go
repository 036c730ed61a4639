package handler

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/usecase"
	"huduma/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

type addFavoriteRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	favorite, err := h.favoriteUseCase.Add(c.Request().Context(), uid, req.ProviderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.favoriteUseCase.Remove(c.Request().Context(), uid, c.Param("providerId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"removed": true,
	})
}

func (h *FavoriteHandler) ListMyFavorites(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.ListForCustomer(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}
