package service

import (
	"strings"
	"testing"

	"github.com/JLemieux66/PE/internal/domain/entity"
)

type fakeImportCompanyRepo struct {
	byName map[string]*entity.Company
	nextID int
}

func (f *fakeImportCompanyRepo) FindByName(name string) (*entity.Company, error) {
	return f.byName[name], nil
}

func (f *fakeImportCompanyRepo) Save(company *entity.Company) error {
	if company.ID == 0 {
		f.nextID++
		company.ID = f.nextID
	}
	f.byName[company.Name] = company
	return nil
}

type fakeImportFirmRepo struct {
	byName map[string]*entity.Firm
	nextID int
}

func (f *fakeImportFirmRepo) FindByExactName(name string) (*entity.Firm, error) {
	return f.byName[name], nil
}

func (f *fakeImportFirmRepo) Save(firm *entity.Firm) error {
	if firm.ID == 0 {
		f.nextID++
		firm.ID = f.nextID
	}
	f.byName[firm.Name] = firm
	return nil
}

type fakeImportInvestmentRepo struct {
	rows map[[2]int]*entity.Investment
}

func (f *fakeImportInvestmentRepo) FindByCompanyAndFirm(companyID, firmID int) (*entity.Investment, error) {
	return f.rows[[2]int{companyID, firmID}], nil
}

func (f *fakeImportInvestmentRepo) Save(investment *entity.Investment) error {
	f.rows[[2]int{investment.CompanyID, investment.FirmID}] = investment
	return nil
}

func newImportFakes() (*fakeImportCompanyRepo, *fakeImportFirmRepo, *fakeImportInvestmentRepo) {
	return &fakeImportCompanyRepo{byName: map[string]*entity.Company{}},
		&fakeImportFirmRepo{byName: map[string]*entity.Firm{}},
		&fakeImportInvestmentRepo{rows: map[[2]int]*entity.Investment{}}
}

const sampleExport = `{
	"pe_firm": "Visto Capital",
	"total_companies": 2,
	"extraction_time_minutes": 4,
	"companies": [
		{
			"name": "Acme Analytics",
			"sector": "Software",
			"status": "Current",
			"investment_year": "2021",
			"headquarters": "Austin, TX",
			"website": "https://acme.example.com"
		},
		{
			"name": "Beta Logistics",
			"sector": "Transportation",
			"status": "acquired by Thoma Bravo",
			"exit_info": "Acquired 2023"
		}
	]
}`

func TestImportJSON(t *testing.T) {
	companies, firms, investments := newImportFakes()
	svc := NewImportService(companies, firms, investments)

	report, err := svc.ImportJSON(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.CompaniesCreated != 2 || report.InvestmentsSaved != 2 || report.Skipped != 0 {
		t.Fatalf("report = %+v", report)
	}

	firm := firms.byName["Visto Capital"]
	if firm == nil {
		t.Fatal("firm not saved")
	}
	if firm.ActivePortfolioCount != 1 || firm.ExitedPortfolioCount != 1 {
		t.Errorf("counters = active %d, exited %d", firm.ActivePortfolioCount, firm.ExitedPortfolioCount)
	}
	if firm.LastScraped == 0 {
		t.Error("last_scraped not set")
	}

	acme := companies.byName["Acme Analytics"]
	if acme == nil {
		t.Fatal("company not saved")
	}
	if acme.Country != "United States" || acme.StateRegion != "TX" {
		t.Errorf("location = %q / %q", acme.StateRegion, acme.Country)
	}

	inv := investments.rows[[2]int{acme.ID, firm.ID}]
	if inv == nil {
		t.Fatal("investment not saved")
	}
	if inv.Status != entity.StatusActive || inv.RawStatus != "Current" {
		t.Errorf("status = %q raw = %q", inv.Status, inv.RawStatus)
	}

	beta := companies.byName["Beta Logistics"]
	if beta == nil || !beta.IsAcquired {
		t.Errorf("acquired flag not derived: %+v", beta)
	}
	if betaInv := investments.rows[[2]int{beta.ID, firm.ID}]; betaInv.Status != entity.StatusExit {
		t.Errorf("beta status = %q, want Exit", betaInv.Status)
	}
}

func TestImportJSONDeduplicatesCompanies(t *testing.T) {
	companies, firms, investments := newImportFakes()
	svc := NewImportService(companies, firms, investments)

	if _, err := svc.ImportJSON(strings.NewReader(sampleExport)); err != nil {
		t.Fatalf("first import: %v", err)
	}

	second := `{
		"pe_firm": "Northlane Partners",
		"companies": [
			{"name": "Acme Analytics", "status": "Active", "description": "should not clobber"}
		]
	}`
	report, err := svc.ImportJSON(strings.NewReader(second))
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if report.CompaniesCreated != 0 || report.CompaniesUpdated != 1 {
		t.Fatalf("report = %+v", report)
	}
	if len(companies.byName) != 2 {
		t.Errorf("company count = %d, want 2 (deduplicated)", len(companies.byName))
	}

	// Two firms now hold the same company through two investment rows.
	acme := companies.byName["Acme Analytics"]
	if len(investments.rows) != 3 {
		t.Errorf("investment count = %d, want 3", len(investments.rows))
	}
	if acme.Website != "https://acme.example.com" {
		t.Errorf("existing field clobbered: %q", acme.Website)
	}
}

func TestImportJSONRejectsMissingFirm(t *testing.T) {
	companies, firms, investments := newImportFakes()
	svc := NewImportService(companies, firms, investments)

	if _, err := svc.ImportJSON(strings.NewReader(`{"companies": []}`)); err == nil {
		t.Fatal("expected an error for a nameless export")
	}
}
