package service

import (
	"github.com/labstack/gommon/log"

	"github.com/JLemieux66/PE/internal/contract"
	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

// MetaService backs the small lookup endpoints the dashboard populates its
// filter dropdowns from, plus the aggregate stats card.
type MetaService struct {
	CompanyRepo    CompanyRepository
	InvestmentRepo InvestmentRepository
	FirmRepo       FirmRepository
}

func NewMetaService(companyRepo CompanyRepository, investmentRepo InvestmentRepository, firmRepo FirmRepository) *MetaService {
	return &MetaService{
		CompanyRepo:    companyRepo,
		InvestmentRepo: investmentRepo,
		FirmRepo:       firmRepo,
	}
}

func (s *MetaService) GetSectors() (*contract.SectorsResponse, apierror.ErrorResponse) {
	sectors, err := s.CompanyRepo.DistinctSectors()
	if err != nil {
		log.Errorf("failed to fetch sectors: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.SectorsResponse{Sectors: sectors}, nil
}

func (s *MetaService) GetStatuses() (*contract.StatusesResponse, apierror.ErrorResponse) {
	statuses, err := s.InvestmentRepo.DistinctStatuses()
	if err != nil {
		log.Errorf("failed to fetch statuses: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.StatusesResponse{Statuses: statuses}, nil
}

func (s *MetaService) GetIndustries() (*contract.IndustriesResponse, apierror.ErrorResponse) {
	industries, err := s.CompanyRepo.DistinctIndustries()
	if err != nil {
		log.Errorf("failed to fetch industries: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.IndustriesResponse{Industries: industries}, nil
}

func (s *MetaService) GetStats() (*contract.StatsResponse, apierror.ErrorResponse) {
	totalCompanies, err := s.CompanyRepo.CountAll()
	if err != nil {
		return nil, s.statsError(err)
	}
	totalInvestments, err := s.InvestmentRepo.CountAll()
	if err != nil {
		return nil, s.statsError(err)
	}
	totalFirms, err := s.FirmRepo.CountAll()
	if err != nil {
		return nil, s.statsError(err)
	}
	active, err := s.InvestmentRepo.CountByStatus(entity.StatusActive)
	if err != nil {
		return nil, s.statsError(err)
	}
	exited, err := s.InvestmentRepo.CountByStatus(entity.StatusExit)
	if err != nil {
		return nil, s.statsError(err)
	}
	coInvested, err := s.CompanyRepo.CountCoInvested()
	if err != nil {
		return nil, s.statsError(err)
	}
	enriched, err := s.CompanyRepo.CountEnriched()
	if err != nil {
		return nil, s.statsError(err)
	}

	rate := 0.0
	if totalCompanies > 0 {
		// One decimal place, matching the dashboard display
		rate = float64(int64(float64(enriched)/float64(totalCompanies)*1000+0.5)) / 10
	}

	return &contract.StatsResponse{
		TotalCompanies:    totalCompanies,
		TotalInvestments:  totalInvestments,
		TotalPEFirms:      totalFirms,
		ActiveInvestments: active,
		ExitedInvestments: exited,
		CoInvestments:     coInvested,
		EnrichmentRate:    rate,
	}, nil
}

func (s *MetaService) statsError(err error) apierror.ErrorResponse {
	log.Errorf("failed to compute stats: %v", err)
	return apierror.InternalServerError
}
