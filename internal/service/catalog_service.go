package service

import (
	"context"
	"errors"
	"fmt"

	"importduty/internal/model"
	"importduty/internal/repository"
	"importduty/internal/tariff"
	"importduty/pkg/pagination"

	"github.com/samber/lo"
)

var ErrHSCodeNotFound = errors.New("hs code not found")

// --- DTOs ---

type HSCodeResponse struct {
	Code           string   `json:"code"`
	Description    string   `json:"description"`
	DutyPercent    *float64 `json:"duty_percent"`
	ExcisePercent  float64  `json:"excise_percent"`
	ExciseByEngine bool     `json:"excise_by_engine"`
	ManualDuty     bool     `json:"manual_duty"` // caller must supply manual_duty_percent
}

type HSCodeListResponse struct {
	Items      []HSCodeResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// --- Interface ---

type CatalogService interface {
	Catalog() *tariff.Catalog
	ListHSCodes(ctx context.Context, page pagination.Params) HSCodeListResponse
	GetHSCode(ctx context.Context, code string) (HSCodeResponse, error)
}

type catalogService struct {
	catalog *tariff.Catalog
}

func NewCatalogService(catalog *tariff.Catalog) CatalogService {
	return &catalogService{catalog: catalog}
}

// --- Implementation ---

func (s *catalogService) Catalog() *tariff.Catalog {
	return s.catalog
}

func (s *catalogService) ListHSCodes(ctx context.Context, page pagination.Params) HSCodeListResponse {
	entries := s.catalog.Entries()
	items := []HSCodeResponse{}
	// lo.Subset counts negative offsets from the end
	if page.Offset >= 0 && page.Offset < len(entries) && page.Limit > 0 {
		items = lo.Map(lo.Subset(entries, page.Offset, uint(page.Limit)), func(e tariff.HSEntry, _ int) HSCodeResponse {
			return toHSCodeResponse(e)
		})
	}

	return HSCodeListResponse{
		Items:      items,
		Total:      len(entries),
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(len(entries)),
	}
}

func (s *catalogService) GetHSCode(ctx context.Context, code string) (HSCodeResponse, error) {
	entry, ok := s.catalog.Find(code)
	if !ok {
		return HSCodeResponse{}, fmt.Errorf("%w: %q", ErrHSCodeNotFound, code)
	}
	return toHSCodeResponse(entry), nil
}

// LoadCatalog seeds the built-in classifications that are missing from the
// database and returns the stored catalog. Rows already present are kept as
// stored, so operators can adjust descriptions and rates in the table.
func LoadCatalog(ctx context.Context, repo repository.HSCodeRepository, tm repository.TransactionManager) (*tariff.Catalog, error) {
	defaults := tariff.DefaultHSEntries()
	rows := make([]model.HSCode, 0, len(defaults))
	for i, e := range defaults {
		rows = append(rows, model.NewHSCode(e, (i+1)*10))
	}

	var stored []model.HSCode
	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := repo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("failed to count hs codes: %w", err)
		}
		if existing == 0 {
			log.Info("hs code table is empty, seeding built-in catalog")
		}

		inserted, err := repo.CreateMissing(txCtx, rows)
		if err != nil {
			return fmt.Errorf("failed to seed hs codes: %w", err)
		}
		if inserted > 0 {
			log.WithField("inserted", inserted).Info("seeded hs codes")
		}

		stored, err = repo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list hs codes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tariff.NewCatalog(lo.Map(stored, func(row model.HSCode, _ int) tariff.HSEntry {
		return row.ToEntry()
	})), nil
}

func toHSCodeResponse(e tariff.HSEntry) HSCodeResponse {
	return HSCodeResponse{
		Code:           e.Code,
		Description:    e.Description,
		DutyPercent:    e.DutyPercent,
		ExcisePercent:  e.ExcisePercent,
		ExciseByEngine: e.ExciseByEngine,
		ManualDuty:     !e.HasDuty(),
	}
}
