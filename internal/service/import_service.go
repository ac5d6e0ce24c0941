package service

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/labstack/gommon/log"

	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/utils"
)

// PortfolioExport is the JSON shape the scrapers produce, one file per firm.
type PortfolioExport struct {
	PEFirm                string          `json:"pe_firm"`
	TotalCompanies        int             `json:"total_companies"`
	ExtractionTimeMinutes int             `json:"extraction_time_minutes"`
	Companies             []CompanyExport `json:"companies"`
}

type CompanyExport struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Website        string `json:"website"`
	LinkedInURL    string `json:"linkedin_url"`
	Sector         string `json:"sector"`
	Headquarters   string `json:"headquarters"`
	Status         string `json:"status"`
	InvestmentYear string `json:"investment_year"`
	ExitInfo       string `json:"exit_info"`
	SourceURL      string `json:"source_url"`
	SectorPage     string `json:"sector_page"`
}

// ImportReport summarizes one import run.
type ImportReport struct {
	Firm             string
	CompaniesCreated int
	CompaniesUpdated int
	InvestmentsSaved int
	Skipped          int
}

type ImportCompanyRepository interface {
	FindByName(name string) (*entity.Company, error)
	Save(company *entity.Company) error
}

type ImportFirmRepository interface {
	FindByExactName(name string) (*entity.Firm, error)
	Save(firm *entity.Firm) error
}

type ImportInvestmentRepository interface {
	FindByCompanyAndFirm(companyID, firmID int) (*entity.Investment, error)
	Save(investment *entity.Investment) error
}

// ImportService loads scraper JSON exports into the store, deduplicating
// companies by name so co-investments collapse onto one company row.
type ImportService struct {
	CompanyRepo    ImportCompanyRepository
	FirmRepo       ImportFirmRepository
	InvestmentRepo ImportInvestmentRepository
}

func NewImportService(
	companyRepo ImportCompanyRepository,
	firmRepo ImportFirmRepository,
	investmentRepo ImportInvestmentRepository,
) *ImportService {
	return &ImportService{
		CompanyRepo:    companyRepo,
		FirmRepo:       firmRepo,
		InvestmentRepo: investmentRepo,
	}
}

func (s *ImportService) ImportJSON(r io.Reader) (*ImportReport, error) {
	var export PortfolioExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}

	if export.PEFirm == "" {
		return nil, fmt.Errorf("export has no pe_firm name")
	}

	firm, err := s.upsertFirm(&export)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{Firm: firm.Name}
	for _, raw := range export.Companies {
		if raw.Name == "" {
			report.Skipped++
			continue
		}

		if err := s.importCompany(firm, &raw, report); err != nil {
			// One bad record never aborts the run.
			log.Errorf("import: %s: %v", raw.Name, err)
			report.Skipped++
		}
	}
	return report, nil
}

func (s *ImportService) upsertFirm(export *PortfolioExport) (*entity.Firm, error) {
	active, exited := 0, 0
	for _, c := range export.Companies {
		status, _ := entity.NormalizeStatus(c.Status)
		switch status {
		case entity.StatusActive:
			active++
		case entity.StatusExit:
			exited++
		}
	}

	firm, err := s.FirmRepo.FindByExactName(export.PEFirm)
	if err != nil {
		return nil, err
	}
	if firm == nil {
		firm = &entity.Firm{Name: export.PEFirm}
	}

	firm.TotalCompanies = export.TotalCompanies
	if firm.TotalCompanies == 0 {
		firm.TotalCompanies = len(export.Companies)
	}
	firm.ActivePortfolioCount = active
	firm.ExitedPortfolioCount = exited
	firm.ExtractionTimeMinutes = export.ExtractionTimeMinutes
	firm.LastScraped = utils.NowUTC()

	if err := s.FirmRepo.Save(firm); err != nil {
		return nil, err
	}
	return firm, nil
}

func (s *ImportService) importCompany(firm *entity.Firm, raw *CompanyExport, report *ImportReport) error {
	now := utils.NowUTC()

	company, err := s.CompanyRepo.FindByName(raw.Name)
	if err != nil {
		return err
	}

	created := company == nil
	if created {
		company = &entity.Company{
			Name:      raw.Name,
			CreatedAt: now,
		}
	}

	// Scraped attributes only fill gaps on an existing row; a second firm's
	// stub never clobbers enriched data.
	if company.Description == "" {
		company.Description = raw.Description
	}
	if company.Website == "" {
		company.Website = raw.Website
	}
	if company.LinkedInURL == "" {
		company.LinkedInURL = raw.LinkedInURL
	}
	if company.Sector == "" {
		company.Sector = raw.Sector
	}
	if company.Headquarters == "" && raw.Headquarters != "" {
		company.Headquarters = raw.Headquarters
		company.City, company.StateRegion, company.Country = utils.ParseLocation(raw.Headquarters)
	}

	status, acquirer := entity.NormalizeStatus(raw.Status)
	if acquirer != "" {
		company.IsAcquired = true
	}

	company.UpdatedAt = now
	if err := s.CompanyRepo.Save(company); err != nil {
		return err
	}

	if created {
		report.CompaniesCreated++
	} else {
		report.CompaniesUpdated++
	}

	investment, err := s.InvestmentRepo.FindByCompanyAndFirm(company.ID, firm.ID)
	if err != nil {
		return err
	}
	if investment == nil {
		investment = &entity.Investment{
			CompanyID: company.ID,
			FirmID:    firm.ID,
			CreatedAt: now,
		}
	}

	investment.RawStatus = raw.Status
	investment.Status = status
	investment.InvestmentYear = raw.InvestmentYear
	investment.ExitInfo = raw.ExitInfo
	investment.SourceURL = raw.SourceURL
	investment.SectorPage = raw.SectorPage
	investment.LastScraped = now
	investment.UpdatedAt = now

	if err := s.InvestmentRepo.Save(investment); err != nil {
		return err
	}

	report.InvestmentsSaved++
	return nil
}
