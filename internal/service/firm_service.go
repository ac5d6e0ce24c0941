package service

import (
	"github.com/labstack/gommon/log"

	"github.com/JLemieux66/PE/internal/contract"
	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/domain/sqlite/repository"
	"github.com/JLemieux66/PE/internal/utils"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

type FirmRepository interface {
	FindAll() ([]*entity.Firm, error)
	FindByName(name string) (*entity.Firm, error)
	CountAll() (int64, error)
}

type FirmInvestmentCounter interface {
	CountByFirm(firmID int) (int64, error)
	CountByFirmAndStatus(firmID int, status entity.Status) (int64, error)
}

type DefaultFirmService struct {
	FirmRepo    FirmRepository
	Counter     FirmInvestmentCounter
	CompanyRepo CompanyRepository
}

func NewFirmService(firmRepo FirmRepository, counter FirmInvestmentCounter, companyRepo CompanyRepository) *DefaultFirmService {
	return &DefaultFirmService{
		FirmRepo:    firmRepo,
		Counter:     counter,
		CompanyRepo: companyRepo,
	}
}

func (s *DefaultFirmService) ListFirms() ([]*contract.FirmResponse, apierror.ErrorResponse) {
	firms, err := s.FirmRepo.FindAll()
	if err != nil {
		log.Errorf("failed to list firms: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.FirmResponse, len(firms))
	for i, firm := range firms {
		total, err := s.Counter.CountByFirm(firm.ID)
		if err != nil {
			log.Errorf("failed to count investments for firm %d: %v", firm.ID, err)
			return nil, apierror.InternalServerError
		}
		active, err := s.Counter.CountByFirmAndStatus(firm.ID, entity.StatusActive)
		if err != nil {
			log.Errorf("failed to count active investments for firm %d: %v", firm.ID, err)
			return nil, apierror.InternalServerError
		}
		exited, err := s.Counter.CountByFirmAndStatus(firm.ID, entity.StatusExit)
		if err != nil {
			log.Errorf("failed to count exited investments for firm %d: %v", firm.ID, err)
			return nil, apierror.InternalServerError
		}

		resp[i] = &contract.FirmResponse{
			ID:               firm.ID,
			Name:             firm.Name,
			TotalInvestments: total,
			ActiveCount:      active,
			ExitCount:        exited,
		}
		if firm.LastScraped > 0 {
			resp[i].LastScraped = utils.FormatEpoch(firm.LastScraped)
		}
	}
	return resp, nil
}

// GetFirmCompanies lists the portfolio of a firm looked up by name
// (substring match, as the dashboard links by display name).
func (s *DefaultFirmService) GetFirmCompanies(name string, limit, offset int) ([]*contract.CompanyResponse, apierror.ErrorResponse) {
	firm, err := s.FirmRepo.FindByName(name)
	if err != nil {
		log.Errorf("failed to find firm %q: %v", name, err)
		return nil, apierror.InternalServerError
	}

	if firm == nil {
		return nil, apierror.FirmNotFound
	}

	limit, offset = clampPage(limit, offset)
	companies, err := s.CompanyRepo.List(repository.CompanyFilter{
		FirmName: firm.Name,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		log.Errorf("failed to list companies for firm %q: %v", firm.Name, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanyResponse, len(companies))
	for i, company := range companies {
		resp[i] = toCompanyResponse(company, false, "")
	}
	return resp, nil
}
