package handler

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/domain/repository"
	"huduma/internal/usecase"
	"huduma/pkg/response"
	"huduma/pkg/utils"
)

type ProviderHandler struct {
	providerUseCase *usecase.ProviderUseCase
}

func NewProviderHandler(providerUseCase *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{
		providerUseCase: providerUseCase,
	}
}

func (h *ProviderHandler) CreateProfile(c echo.Context) error {
	var req usecase.CreateProviderInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	provider, err := h.providerUseCase.CreateProfile(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, provider)
}

func (h *ProviderHandler) ListProviders(c echo.Context) error {
	filter := repository.ProviderFilter{
		CategoryID: c.QueryParam("category_id"),
		Location:   c.QueryParam("location"),
	}

	pagination := utils.GetPaginationParams(c)

	providers, total, err := h.providerUseCase.List(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, providers, total, pagination.Page, pagination.PageSize)
}

func (h *ProviderHandler) GetProvider(c echo.Context) error {
	provider, err := h.providerUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}

func (h *ProviderHandler) GetMyProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	provider, err := h.providerUseCase.GetByUserID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}

func (h *ProviderHandler) UpdateMyProfile(c echo.Context) error {
	var req usecase.UpdateProviderInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	provider, err := h.providerUseCase.UpdateProfile(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}
