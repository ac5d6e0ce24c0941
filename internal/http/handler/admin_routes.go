package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/JLemieux66/PE/internal/contract"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

type AdminService interface {
	Login(req *contract.AdminLoginRequest) (*contract.AdminLoginResponse, apierror.ErrorResponse)
	UpdateCompany(id int, req *contract.UpdateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
	DeleteCompany(id int) apierror.ErrorResponse
}

type DefaultAdminRoute struct {
	AdminService AdminService
}

func NewAdminDefault(adminService AdminService) *DefaultAdminRoute {
	return &DefaultAdminRoute{AdminService: adminService}
}

func (h *DefaultAdminRoute) Login(c echo.Context) error {
	var req contract.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	token, apierr := h.AdminService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, token)
}

func (h *DefaultAdminRoute) UpdateCompany(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, apierr := h.AdminService.UpdateCompany(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *DefaultAdminRoute) DeleteCompany(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := h.AdminService.DeleteCompany(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
