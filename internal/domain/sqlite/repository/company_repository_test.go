package repository_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/domain/sqlite/repository"
	"github.com/JLemieux66/PE/internal/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	// One connection so every query sees the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.Firm{},
		&entity.Company{},
		&entity.Investment{},
		&entity.CompanyTag{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedPortfolio stores two firms and three companies. Alpha is co-invested
// with mixed statuses: exited under Visto, still active under Northlane.
func seedPortfolio(t *testing.T, db *gorm.DB) {
	t.Helper()

	visto := &entity.Firm{Name: "Visto Capital"}
	northlane := &entity.Firm{Name: "Northlane Partners"}
	for _, firm := range []*entity.Firm{visto, northlane} {
		if err := db.Create(firm).Error; err != nil {
			t.Fatalf("seed firm: %v", err)
		}
	}

	alpha := &entity.Company{Name: "Alpha Analytics", Sector: "Software", CreatedAt: 1, UpdatedAt: 1}
	beta := &entity.Company{Name: "Beta Logistics", Sector: "Transportation", CreatedAt: 1, UpdatedAt: 1}
	gamma := &entity.Company{Name: "Gamma Health", Sector: "Healthcare", CreatedAt: 1, UpdatedAt: 1}
	for _, company := range []*entity.Company{alpha, beta, gamma} {
		if err := db.Create(company).Error; err != nil {
			t.Fatalf("seed company: %v", err)
		}
	}

	investments := []*entity.Investment{
		{CompanyID: alpha.ID, FirmID: visto.ID, Status: entity.StatusExit, ExitType: "Acquisition", CreatedAt: 1, UpdatedAt: 1},
		{CompanyID: alpha.ID, FirmID: northlane.ID, Status: entity.StatusActive, CreatedAt: 1, UpdatedAt: 1},
		{CompanyID: beta.ID, FirmID: visto.ID, Status: entity.StatusActive, CreatedAt: 1, UpdatedAt: 1},
		{CompanyID: gamma.ID, FirmID: northlane.ID, Status: entity.StatusExit, CreatedAt: 1, UpdatedAt: 1},
	}
	for _, inv := range investments {
		if err := db.Create(inv).Error; err != nil {
			t.Fatalf("seed investment: %v", err)
		}
	}
}

func companyNames(companies []*entity.Company) []string {
	names := make([]string, len(companies))
	for i, c := range companies {
		names[i] = c.Name
	}
	return names
}

func TestListStatusFilter(t *testing.T) {
	db := newTestDB(t)
	seedPortfolio(t, db)
	repo := repository.NewCompanyRepository(db)

	companies, err := repo.List(repository.CompanyFilter{Status: entity.StatusActive, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	names := companyNames(companies)
	if len(names) != 2 || names[0] != "Alpha Analytics" || names[1] != "Beta Logistics" {
		t.Fatalf("active companies = %v", names)
	}

	for _, company := range companies {
		hasActive := false
		for _, inv := range company.Investments {
			if inv.Status == entity.StatusActive {
				hasActive = true
			}
		}
		if !hasActive {
			t.Errorf("%s returned without an active investment", company.Name)
		}
	}
}

func TestListDeduplicatesCoInvested(t *testing.T) {
	db := newTestDB(t)
	seedPortfolio(t, db)
	repo := repository.NewCompanyRepository(db)

	companies, err := repo.List(repository.CompanyFilter{Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(companies) != 3 {
		t.Fatalf("companies = %v, want one row per company", companyNames(companies))
	}

	// The co-invested row still carries both investments.
	if len(companies[0].Investments) != 2 {
		t.Errorf("alpha investments = %d, want 2", len(companies[0].Investments))
	}
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	seedPortfolio(t, db)
	repo := repository.NewCompanyRepository(db)

	page := func(limit, offset int) []string {
		companies, err := repo.List(repository.CompanyFilter{Limit: limit, Offset: offset})
		if err != nil {
			t.Fatalf("list limit=%d offset=%d: %v", limit, offset, err)
		}
		return companyNames(companies)
	}

	first := page(2, 0)
	second := page(2, 2)
	if len(first) != 2 || first[0] != "Alpha Analytics" || first[1] != "Beta Logistics" {
		t.Errorf("first page = %v", first)
	}
	if len(second) != 1 || second[0] != "Gamma Health" {
		t.Errorf("second page = %v", second)
	}

	// Offset beyond the result count yields an empty page, not an error.
	if rest := page(2, 10); len(rest) != 0 {
		t.Errorf("page beyond results = %v, want empty", rest)
	}
}

func TestCountCoInvested(t *testing.T) {
	db := newTestDB(t)
	seedPortfolio(t, db)
	repo := repository.NewCompanyRepository(db)

	count, err := repo.CountCoInvested()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("co-invested = %d, want 1", count)
	}
}

// A status-filtered listing over the real join must also display the
// matching status for a co-invested company with mixed lifecycles.
func TestListCompaniesStatusFilterOverStore(t *testing.T) {
	db := newTestDB(t)
	seedPortfolio(t, db)

	svc := service.NewCompanyService(
		repository.NewCompanyRepository(db),
		repository.NewInvestmentRepository(db),
	)

	resp, apierr := svc.ListCompanies(repository.CompanyFilter{Status: "Active", Limit: 10})
	if apierr != nil {
		t.Fatalf("list: %v", apierr)
	}
	if len(resp) != 2 {
		t.Fatalf("got %d companies, want 2", len(resp))
	}

	for _, company := range resp {
		if company.Status != string(entity.StatusActive) {
			t.Errorf("%s: status = %q, want Active", company.Name, company.Status)
		}
	}
}
