package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JLemieux66/PE/internal/contract"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

type MetaService interface {
	GetSectors() (*contract.SectorsResponse, apierror.ErrorResponse)
	GetStatuses() (*contract.StatusesResponse, apierror.ErrorResponse)
	GetIndustries() (*contract.IndustriesResponse, apierror.ErrorResponse)
	GetStats() (*contract.StatsResponse, apierror.ErrorResponse)
}

type DefaultMetaRoute struct {
	MetaService MetaService
}

func NewMetaDefault(metaService MetaService) *DefaultMetaRoute {
	return &DefaultMetaRoute{MetaService: metaService}
}

func (h *DefaultMetaRoute) GetSectors(c echo.Context) error {
	sectors, apierr := h.MetaService.GetSectors()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, sectors)
}

func (h *DefaultMetaRoute) GetStatuses(c echo.Context) error {
	statuses, apierr := h.MetaService.GetStatuses()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, statuses)
}

func (h *DefaultMetaRoute) GetIndustries(c echo.Context) error {
	industries, apierr := h.MetaService.GetIndustries()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, industries)
}

func (h *DefaultMetaRoute) GetStats(c echo.Context) error {
	stats, apierr := h.MetaService.GetStats()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, stats)
}
