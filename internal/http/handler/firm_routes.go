package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JLemieux66/PE/internal/contract"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

type FirmService interface {
	ListFirms() ([]*contract.FirmResponse, apierror.ErrorResponse)
	GetFirmCompanies(name string, limit, offset int) ([]*contract.CompanyResponse, apierror.ErrorResponse)
}

type DefaultFirmRoute struct {
	FirmService FirmService
}

func NewFirmDefault(firmService FirmService) *DefaultFirmRoute {
	return &DefaultFirmRoute{FirmService: firmService}
}

func (h *DefaultFirmRoute) GetFirms(c echo.Context) error {
	firms, apierr := h.FirmService.ListFirms()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"firms": firms,
		"count": len(firms),
	}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultFirmRoute) GetFirmCompanies(c echo.Context) error {
	limit, offset, apierr := pageFromQuery(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	companies, apierr := h.FirmService.GetFirmCompanies(c.Param("name"), limit, offset)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"pe_firm":   c.Param("name"),
		"companies": companies,
		"count":     len(companies),
	}
	return c.JSON(http.StatusOK, &resp)
}
