package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"github.com/JLemieux66/PE/internal/config"
	"github.com/JLemieux66/PE/internal/contract"
	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/utils"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

// AdminCompanyRepository is the write-side repository surface.
type AdminCompanyRepository interface {
	FindByID(id int) (*entity.Company, error)
	UpdateFields(id int, fields map[string]any) error
	Delete(company *entity.Company) error
}

type DefaultAdminService struct {
	CompanyRepo AdminCompanyRepository
	Validate    *validator.Validate
}

func NewAdminService(companyRepo AdminCompanyRepository, validate *validator.Validate) *DefaultAdminService {
	return &DefaultAdminService{
		CompanyRepo: companyRepo,
		Validate:    validate,
	}
}

// Login exchanges the configured admin credentials for a session token.
func (s *DefaultAdminService) Login(req *contract.AdminLoginRequest) (*contract.AdminLoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.Email != config.AdminEmail || !utils.VerifyPassword(req.Password, config.AdminPasswordHash) {
		return nil, apierror.UnauthorizedError
	}

	token, expiresAt, err := utils.CreateAdminToken(req.Email)
	if err != nil {
		log.Errorf("failed to issue admin token: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.AdminLoginResponse{
		AccessToken: token,
		ExpiresAt:   utils.FormatEpoch(expiresAt.UnixMilli()),
	}, nil
}

// UpdateCompany applies a partial update. Only fields present in the request
// change; the rest of the row is left untouched. Concurrent updates are
// last-write-wins.
func (s *DefaultAdminService) UpdateCompany(id int, req *contract.UpdateCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := s.CompanyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.CompanyNotFound
	}

	fields := updateFields(req)
	if len(fields) == 0 {
		return nil, apierror.EmptyUpdateError
	}
	fields["updated_at"] = utils.NowUTC()

	if err := s.CompanyRepo.UpdateFields(id, fields); err != nil {
		log.Errorf("failed to update company %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	updated, err := s.CompanyRepo.FindByID(id)
	if err != nil || updated == nil {
		log.Errorf("failed to reload company %d after update: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponse(updated, true, ""), nil
}

func (s *DefaultAdminService) DeleteCompany(id int) apierror.ErrorResponse {
	company, err := s.CompanyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", id, err)
		return apierror.InternalServerError
	}

	if company == nil {
		return apierror.CompanyNotFound
	}

	if err := s.CompanyRepo.Delete(company); err != nil {
		log.Errorf("failed to delete company %d: %v", id, err)
		return apierror.InternalServerError
	}

	log.Infof("admin deleted company %d (%s)", id, company.Name)
	return nil
}

// updateFields flattens the non-nil request fields into GORM column updates.
func updateFields(req *contract.UpdateCompanyRequest) map[string]any {
	fields := map[string]any{}

	setString := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	setInt := func(column string, value *int64) {
		if value != nil {
			fields[column] = *value
		}
	}
	setBool := func(column string, value *bool) {
		if value != nil {
			fields[column] = *value
		}
	}

	setString("name", req.Name)
	setString("description", req.Description)
	setString("website", req.Website)
	setString("linked_in_url", req.LinkedInURL)
	setString("sector", req.Sector)
	setString("headquarters", req.Headquarters)
	setString("revenue_range", req.RevenueRange)
	setString("employee_count", req.EmployeeCount)
	setString("swarm_industry", req.SwarmIndustry)
	setString("industry_category", req.IndustryCategory)
	setString("size_class", req.SizeClass)
	setString("last_round_type", req.LastRoundType)
	setString("ipo_date", req.IPODate)
	setString("ipo_year", req.IPOYear)
	setString("stock_exchange", req.StockExchange)
	setString("ownership_status", req.OwnershipStatus)
	setString("customer_types", req.CustomerTypes)
	setString("summary", req.Summary)

	setInt("total_funding_usd", req.TotalFundingUSD)
	setInt("last_round_amount_usd", req.LastRoundAmountUSD)
	setInt("market_cap", req.MarketCap)

	setBool("is_public", req.IsPublic)
	setBool("is_acquired", req.IsAcquired)
	setBool("is_exited", req.IsExited)

	if req.PredictedRevenue != nil {
		fields["predicted_revenue"] = *req.PredictedRevenue
	}

	// Updating the headquarters re-derives the parsed location columns.
	if req.Headquarters != nil {
		city, region, country := utils.ParseLocation(*req.Headquarters)
		fields["city"] = city
		fields["state_region"] = region
		fields["country"] = country
	}

	return fields
}
