package service

import (
	"testing"

	"github.com/JLemieux66/PE/internal/domain/entity"
	"github.com/JLemieux66/PE/internal/domain/sqlite/repository"
)

type fakeStatsCompanyRepo struct {
	total      int64
	enriched   int64
	coInvested int64
	sectors    []string
	industries []string
}

func (f *fakeStatsCompanyRepo) List(repository.CompanyFilter) ([]*entity.Company, error) {
	return nil, nil
}
func (f *fakeStatsCompanyRepo) FindByID(int) (*entity.Company, error) { return nil, nil }
func (f *fakeStatsCompanyRepo) DistinctSectors() ([]string, error) { return f.sectors, nil }
func (f *fakeStatsCompanyRepo) DistinctIndustries() ([]string, error) { return f.industries, nil }
func (f *fakeStatsCompanyRepo) CountAll() (int64, error) { return f.total, nil }
func (f *fakeStatsCompanyRepo) CountEnriched() (int64, error) { return f.enriched, nil }
func (f *fakeStatsCompanyRepo) CountCoInvested() (int64, error) { return f.coInvested, nil }

type fakeStatsInvestmentRepo struct {
	total    int64
	byStatus map[entity.Status]int64
	statuses []string
}

func (f *fakeStatsInvestmentRepo) List(repository.InvestmentFilter) ([]*entity.Investment, error) {
	return nil, nil
}
func (f *fakeStatsInvestmentRepo) CountAll() (int64, error) { return f.total, nil }
func (f *fakeStatsInvestmentRepo) CountByStatus(status entity.Status) (int64, error) {
	return f.byStatus[status], nil
}
func (f *fakeStatsInvestmentRepo) DistinctStatuses() ([]string, error) { return f.statuses, nil }

type fakeStatsFirmRepo struct {
	total int64
}

func (f *fakeStatsFirmRepo) FindAll() ([]*entity.Firm, error) { return nil, nil }
func (f *fakeStatsFirmRepo) FindByName(string) (*entity.Firm, error) { return nil, nil }
func (f *fakeStatsFirmRepo) CountAll() (int64, error) { return f.total, nil }

func TestGetStats(t *testing.T) {
	svc := NewMetaService(
		&fakeStatsCompanyRepo{total: 300, enriched: 100, coInvested: 12},
		&fakeStatsInvestmentRepo{
			total: 320,
			byStatus: map[entity.Status]int64{
				entity.StatusActive: 200,
				entity.StatusExit:   110,
			},
		},
		&fakeStatsFirmRepo{total: 9},
	)

	stats, apierr := svc.GetStats()
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}

	if stats.TotalCompanies != 300 || stats.TotalInvestments != 320 || stats.TotalPEFirms != 9 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.ActiveInvestments != 200 || stats.ExitedInvestments != 110 {
		t.Errorf("status counts = %+v", stats)
	}
	if stats.CoInvestments != 12 {
		t.Errorf("co_investments = %d", stats.CoInvestments)
	}
	// 100/300 rounded to one decimal place
	if stats.EnrichmentRate != 33.3 {
		t.Errorf("enrichment_rate = %v, want 33.3", stats.EnrichmentRate)
	}
}

func TestGetStatsEmptyDatabase(t *testing.T) {
	svc := NewMetaService(
		&fakeStatsCompanyRepo{},
		&fakeStatsInvestmentRepo{byStatus: map[entity.Status]int64{}},
		&fakeStatsFirmRepo{},
	)

	stats, apierr := svc.GetStats()
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if stats.EnrichmentRate != 0 {
		t.Errorf("rate on empty database = %v, want 0", stats.EnrichmentRate)
	}
}

func TestGetSectors(t *testing.T) {
	svc := NewMetaService(
		&fakeStatsCompanyRepo{sectors: []string{"Healthcare", "Software"}},
		&fakeStatsInvestmentRepo{},
		&fakeStatsFirmRepo{},
	)

	resp, apierr := svc.GetSectors()
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if len(resp.Sectors) != 2 || resp.Sectors[0] != "Healthcare" {
		t.Errorf("sectors = %v", resp.Sectors)
	}
}
