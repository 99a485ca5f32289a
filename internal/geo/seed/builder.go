package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/placewise/geodir/internal/geo/path"
	"github.com/placewise/geodir/pkg/norm"
	"github.com/placewise/geodir/pkg/pointer"
)

// Builder constructs the Nepal hierarchy from a flat feed.
type Builder struct {
	store  Store
	logger *slog.Logger

	// onRow, when set, is called once per processed feed row. The seed
	// command hooks a progress bar here.
	onRow func()
}

// NewBuilder constructs a hierarchy Builder.
func NewBuilder(store Store, logger *slog.Logger) *Builder {
	return &Builder{
		store:  store,
		logger: logger,
	}
}

// OnRow registers a per-row progress callback.
func (builder *Builder) OnRow(fn func()) {
	builder.onRow = fn
}

// Run ensures the country row and writes the division tree top-down.
//
// Feed rows referencing a province outside the static table are skipped and
// counted, not fatal: the feed occasionally carries placeholder codes. Any
// store failure aborts the run immediately.
func (builder *Builder) Run(ctx context.Context, rows []Row) (Stats, error) {
	var stats Stats

	countryID, err := builder.store.EnsureCountry(ctx, nepal)
	if err != nil {
		return stats, fmt.Errorf("ensure country: %w", err)
	}

	iso := strings.ToLower(nepal.ISOCode)
	provinceIDs := make(map[string]int64)
	districtIDs := make(map[string]int64)

	for _, row := range rows {
		if builder.onRow != nil {
			builder.onRow()
		}

		prov, known := provinces[row.ProvinceCode]
		if !known {
			builder.logger.WarnContext(ctx, "unknown_province_skipped",
				slog.String("province_code", row.ProvinceCode),
				slog.String("row", row.LocalLevelFullCode),
			)
			stats.Skipped++
			continue
		}

		if _, seen := provinceIDs[row.ProvinceCode]; !seen {
			provincePath, err := path.Build([]string{iso}, prov.Name)
			if err != nil {
				return stats, fmt.Errorf("province %q: %w", prov.Name, err)
			}

			id, err := builder.store.UpsertDivision(ctx, Division{
				CountryID: countryID,
				Name:      prov.Name,
				Code:      pointer.To(prov.Code),
				Type:      "province",
				Level:     1,
				Path:      provincePath,
			})
			if err != nil {
				return stats, fmt.Errorf("upsert province %q: %w", prov.Name, err)
			}
			provinceIDs[row.ProvinceCode] = id
			stats.Provinces++
		}

		districtKey := row.ProvinceCode + "-" + row.DistrictCode
		districtName := norm.Name(row.DistrictName)
		if _, seen := districtIDs[districtKey]; !seen {
			districtPath, err := path.Build([]string{iso, prov.Name}, districtName)
			if err != nil {
				return stats, fmt.Errorf("district %q: %w", row.DistrictName, err)
			}

			id, err := builder.store.UpsertDivision(ctx, Division{
				CountryID: countryID,
				ParentID:  pointer.To(provinceIDs[row.ProvinceCode]),
				Name:      districtName,
				Type:      "district",
				Level:     2,
				Path:      districtPath,
			})
			if err != nil {
				return stats, fmt.Errorf("upsert district %q: %w", districtName, err)
			}
			districtIDs[districtKey] = id
			stats.Districts++
		}

		// Rows without a ward count describe the district only.
		if row.Wards == nil {
			continue
		}

		cityName := norm.Name(row.Name)
		cityPath, err := path.Build([]string{iso, prov.Name, districtName}, cityName)
		if err != nil {
			return stats, fmt.Errorf("city %q: %w", row.Name, err)
		}

		var nameLocal *string
		if row.NameNative != "" {
			nameLocal = pointer.To(row.NameNative)
		}

		_, err = builder.store.UpsertDivision(ctx, Division{
			CountryID: countryID,
			ParentID:  pointer.To(districtIDs[districtKey]),
			Name:      cityName,
			NameLocal: nameLocal,
			Type:      "city",
			Level:     3,
			Path:      cityPath,
			Rest: map[string]any{
				"wards":   *row.Wards,
				"admType": row.Type,
			},
		})
		if err != nil {
			return stats, fmt.Errorf("upsert city %q: %w", cityName, err)
		}
		stats.Cities++
	}

	return stats, nil
}
