package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/JLemieux66/PE/internal/contract"
	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/domain/sqlite/repository"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

type CompanyService interface {
	ListCompanies(filter repository.CompanyFilter) ([]*contract.CompanyResponse, apierror.ErrorResponse)
	GetCompanyByID(id int) (*contract.CompanyResponse, apierror.ErrorResponse)
	ListInvestments(filter repository.InvestmentFilter) ([]*contract.InvestmentResponse, apierror.ErrorResponse)
	ExportCSV(filter repository.CompanyFilter, w io.Writer) apierror.ErrorResponse
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyDefault(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (h *DefaultCompanyRoute) GetCompanies(c echo.Context) error {
	filter, apierr := companyFilterFromQuery(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	companies, apierr := h.CompanyService.ListCompanies(*filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"companies": companies,
		"count":     len(companies),
	}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	company, apierr := h.CompanyService.GetCompanyByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *DefaultCompanyRoute) ExportCompanies(c echo.Context) error {
	filter, apierr := companyFilterFromQuery(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	// Render into a buffer first so a query failure returns a plain JSON
	// error, without CSV headers already committed to the response.
	var buf bytes.Buffer
	if apierr := h.CompanyService.ExportCSV(*filter, &buf); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="companies.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *DefaultCompanyRoute) GetInvestments(c echo.Context) error {
	limit, offset, apierr := pageFromQuery(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	filter := repository.InvestmentFilter{
		FirmName: c.QueryParam("pe_firm"),
		Status:   entity.Status(c.QueryParam("status")),
		ExitType: c.QueryParam("exit_type"),
		Industry: c.QueryParam("industry"),
		Search:   c.QueryParam("search"),
		Limit:    limit,
		Offset:   offset,
	}

	investments, apierr := h.CompanyService.ListInvestments(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"investments": investments,
		"count":       len(investments),
	}
	return c.JSON(http.StatusOK, &resp)
}

func companyFilterFromQuery(c echo.Context) (*repository.CompanyFilter, apierror.ErrorResponse) {
	limit, offset, apierr := pageFromQuery(c)
	if apierr != nil {
		return nil, apierr
	}

	filter := &repository.CompanyFilter{
		FirmName: c.QueryParam("pe_firm"),
		Status:   entity.Status(c.QueryParam("status")),
		Sector:   c.QueryParam("sector"),
		Industry: c.QueryParam("industry"),
		Search:   c.QueryParam("search"),
		Limit:    limit,
		Offset:   offset,
	}

	if raw := c.QueryParam("is_public"); raw != "" {
		isPublic, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apierror.NewInvalidParamTypeError("is_public", "bool")
		}
		filter.IsPublic = &isPublic
	}
	return filter, nil
}

// pageFromQuery only rejects non-numeric values. Out-of-range limits are
// clamped by the service, never rejected.
func pageFromQuery(c echo.Context) (int, int, apierror.ErrorResponse) {
	limit, offset := 0, 0

	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, apierror.NewInvalidParamTypeError("limit", "int")
		}
		limit = n
	}

	if raw := c.QueryParam("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, apierror.NewInvalidParamTypeError("offset", "int")
		}
		offset = n
	}
	return limit, offset, nil
}
