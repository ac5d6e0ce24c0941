package service

import (
	"strings"
	"testing"

	"github.com/JLemieux66/PE/internal/contract"
	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/domain/sqlite/repository"
	"github.com/JLemieux66/PE/internal/utils/apierror"
)

type fakeCompanyRepo struct {
	companies  []*entity.Company
	byID       map[int]*entity.Company
	lastFilter repository.CompanyFilter
}

func (f *fakeCompanyRepo) List(filter repository.CompanyFilter) ([]*entity.Company, error) {
	f.lastFilter = filter
	return f.companies, nil
}

func (f *fakeCompanyRepo) FindByID(id int) (*entity.Company, error) {
	return f.byID[id], nil
}

func (f *fakeCompanyRepo) DistinctSectors() ([]string, error) { return nil, nil }
func (f *fakeCompanyRepo) DistinctIndustries() ([]string, error) { return nil, nil }
func (f *fakeCompanyRepo) CountAll() (int64, error) { return int64(len(f.companies)), nil }
func (f *fakeCompanyRepo) CountEnriched() (int64, error) { return 0, nil }
func (f *fakeCompanyRepo) CountCoInvested() (int64, error) { return 0, nil }

type fakeInvestmentRepo struct {
	investments []*entity.Investment
	lastFilter  repository.InvestmentFilter
}

func (f *fakeInvestmentRepo) List(filter repository.InvestmentFilter) ([]*entity.Investment, error) {
	f.lastFilter = filter
	return f.investments, nil
}

func (f *fakeInvestmentRepo) CountAll() (int64, error) { return int64(len(f.investments)), nil }
func (f *fakeInvestmentRepo) CountByStatus(status entity.Status) (int64, error) { return 0, nil }
func (f *fakeInvestmentRepo) DistinctStatuses() ([]string, error) { return nil, nil }

func sampleCompany() *entity.Company {
	return &entity.Company{
		ID:            7,
		Name:          "Acme Analytics",
		Sector:        "Software",
		RevenueRange:  "r_00010000",
		EmployeeCount: "c_00251_00500",
		City:          "Austin",
		StateRegion:   "Texas",
		Country:       "United States",
		Investments: []*entity.Investment{
			{
				CompanyID:      7,
				FirmID:         1,
				Status:         entity.StatusActive,
				InvestmentYear: "2021",
				Firm:           &entity.Firm{ID: 1, Name: "Visto Capital"},
			},
			{
				CompanyID: 7,
				FirmID:    2,
				Status:    entity.StatusActive,
				Firm:      &entity.Firm{ID: 2, Name: "Northlane Partners"},
			},
		},
	}
}

func TestListCompaniesClampsPagination(t *testing.T) {
	cases := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, contract.DefaultPageSize, 0},
		{"negative", -5, -10, contract.DefaultPageSize, 0},
		{"over max", 5000, 20, contract.MaxPageSize, 20},
		{"in range", 50, 100, 50, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCompanyRepo{}
			svc := NewCompanyService(repo, &fakeInvestmentRepo{})

			if _, apierr := svc.ListCompanies(repository.CompanyFilter{Limit: tc.limit, Offset: tc.offset}); apierr != nil {
				t.Fatalf("unexpected error: %v", apierr)
			}

			if repo.lastFilter.Limit != tc.wantLimit {
				t.Errorf("limit = %d, want %d", repo.lastFilter.Limit, tc.wantLimit)
			}
			if repo.lastFilter.Offset != tc.wantOffset {
				t.Errorf("offset = %d, want %d", repo.lastFilter.Offset, tc.wantOffset)
			}
		})
	}
}

func TestListCompaniesCanonicalizesStatus(t *testing.T) {
	repo := &fakeCompanyRepo{}
	svc := NewCompanyService(repo, &fakeInvestmentRepo{})

	if _, apierr := svc.ListCompanies(repository.CompanyFilter{Status: "active"}); apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if repo.lastFilter.Status != entity.StatusActive {
		t.Errorf("status = %q, want %q", repo.lastFilter.Status, entity.StatusActive)
	}

	if _, apierr := svc.ListCompanies(repository.CompanyFilter{Status: "defunct"}); apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if repo.lastFilter.Status != "defunct" {
		t.Errorf("unrecognized status should pass through, got %q", repo.lastFilter.Status)
	}
}

func TestListCompaniesStatusFilterPicksMatchingInvestment(t *testing.T) {
	// Co-invested company: exited under the first firm, still active under
	// the second. A status-filtered listing must display the matching state.
	company := sampleCompany()
	company.Investments[0].Status = entity.StatusExit
	company.Investments[0].ExitType = "Acquisition"
	company.Investments[1].Status = entity.StatusActive
	company.Investments[1].InvestmentYear = "2022"

	repo := &fakeCompanyRepo{companies: []*entity.Company{company}}
	svc := NewCompanyService(repo, &fakeInvestmentRepo{})

	resp, apierr := svc.ListCompanies(repository.CompanyFilter{Status: "Active"})
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if resp[0].Status != string(entity.StatusActive) {
		t.Fatalf("status = %q, want Active", resp[0].Status)
	}
	if resp[0].ExitType != "" || resp[0].InvestmentYear != "2022" {
		t.Errorf("flat fields from wrong investment: %+v", resp[0])
	}

	// Without the filter, the first investment still wins.
	resp, apierr = svc.ListCompanies(repository.CompanyFilter{})
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if resp[0].Status != string(entity.StatusExit) {
		t.Errorf("unfiltered status = %q, want Exit", resp[0].Status)
	}
}

func TestListCompaniesDecodesFields(t *testing.T) {
	repo := &fakeCompanyRepo{companies: []*entity.Company{sampleCompany()}}
	svc := NewCompanyService(repo, &fakeInvestmentRepo{})

	resp, apierr := svc.ListCompanies(repository.CompanyFilter{})
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if len(resp) != 1 {
		t.Fatalf("got %d companies, want 1", len(resp))
	}

	got := resp[0]
	if got.RevenueRange != "$10M - $50M" {
		t.Errorf("revenue = %q, want decoded label", got.RevenueRange)
	}
	if got.EmployeeCount != "251-500" {
		t.Errorf("employees = %q, want decoded label", got.EmployeeCount)
	}
	if got.Status != string(entity.StatusActive) {
		t.Errorf("status = %q, want Active", got.Status)
	}
	if got.Headquarters != "Austin, Texas, United States" {
		t.Errorf("headquarters = %q", got.Headquarters)
	}
	if len(got.PEFirms) != 2 || got.PEFirms[0] != "Visto Capital" || got.PEFirms[1] != "Northlane Partners" {
		t.Errorf("pe_firms = %v", got.PEFirms)
	}
}

func TestListCompaniesDecodesUnknownCodesToSentinel(t *testing.T) {
	company := sampleCompany()
	company.RevenueRange = ""
	company.EmployeeCount = "garbage"

	repo := &fakeCompanyRepo{companies: []*entity.Company{company}}
	svc := NewCompanyService(repo, &fakeInvestmentRepo{})

	resp, apierr := svc.ListCompanies(repository.CompanyFilter{})
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if resp[0].RevenueRange != "N/A" || resp[0].EmployeeCount != "N/A" {
		t.Errorf("got revenue=%q employees=%q, want N/A sentinels",
			resp[0].RevenueRange, resp[0].EmployeeCount)
	}
}

func TestGetCompanyByIDNotFound(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyRepo{byID: map[int]*entity.Company{}}, &fakeInvestmentRepo{})

	_, apierr := svc.GetCompanyByID(99)
	if apierr != apierror.CompanyNotFound {
		t.Fatalf("got %v, want CompanyNotFound", apierr)
	}
}

func TestExportCSV(t *testing.T) {
	repo := &fakeCompanyRepo{companies: []*entity.Company{sampleCompany()}}
	svc := NewCompanyService(repo, &fakeInvestmentRepo{})

	var buf strings.Builder
	if apierr := svc.ExportCSV(repository.CompanyFilter{}, &buf); apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header plus one row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,name,pe_firms,") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Visto Capital; Northlane Partners") {
		t.Errorf("row missing joined firms: %q", lines[1])
	}
	if !strings.Contains(lines[1], "$10M - $50M") {
		t.Errorf("row missing decoded revenue: %q", lines[1])
	}

	// An export with no explicit limit still asks for the widest page.
	if repo.lastFilter.Limit != contract.MaxPageSize {
		t.Errorf("export limit = %d, want %d", repo.lastFilter.Limit, contract.MaxPageSize)
	}
}
