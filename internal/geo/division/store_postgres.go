/*
Package division provides the PostgreSQL implementation for hierarchy data access.

Query construction notes:
  - Dynamic WHERE clauses are built positionally with a running argument
    counter, never by string-interpolating values.
  - Column lists come from the schema package (and, for projections, the
    fields guard), so no caller-supplied identifier ever reaches SQL.
  - COUNT(*) OVER() retrieves the total result count without a second query.
  - LIKE patterns escape the wildcard characters of the user-supplied prefix.
*/
package division

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placewise/geodir/internal/geo/fields"
	"github.com/placewise/geodir/internal/platform/database/schema"
	"github.com/placewise/geodir/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed division store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListByCountry(ctx context.Context, countryID int64, filter Filter, limit, offset int) ([]*Division, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = FALSE AND %s = $%d
	`,
		strings.Join(schema.AdminDivision.PublicColumns(), ", "),
		schema.AdminDivision.Table,
		schema.AdminDivision.IsDeleted,
		schema.AdminDivision.CountryID, argID,
	))
	args = append(args, countryID)
	argID++

	if filter.Level != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.AdminDivision.Level, argID))
		args = append(args, *filter.Level)
		argID++
	}

	if filter.Parent.Set {
		if filter.Parent.ID == nil {
			queryBuilder.WriteString(fmt.Sprintf(" AND %s IS NULL", schema.AdminDivision.ParentID))
		} else {
			queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.AdminDivision.ParentID, argID))
			args = append(args, *filter.Parent.ID)
			argID++
		}
	}

	if filter.PathPrefix != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s LIKE $%d", schema.AdminDivision.Path, argID))
		args = append(args, escapeLike(filter.PathPrefix)+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", schema.AdminDivision.Name))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Division")
	}
	defer rows.Close()

	var divisions []*Division
	total := 0
	for rows.Next() {
		d := &Division{}
		if err := rows.Scan(
			&d.ID, &d.CountryID, &d.ParentID, &d.Name, &d.NameLocal,
			&d.Code, &d.Type, &d.Level, &d.Path, &d.Timezone, &d.Rest,
			&d.IsActive, &total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "Division")
		}
		divisions = append(divisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Division")
	}

	return divisions, total, nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, countryID, divisionID int64) (*Division, error) {
	// Both predicates in one WHERE clause: id alone must never resolve a
	// division across country boundaries.
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2 AND %s = FALSE;
	`,
		strings.Join(schema.AdminDivision.PublicColumns(), ", "),
		schema.AdminDivision.Table,
		schema.AdminDivision.ID,
		schema.AdminDivision.CountryID,
		schema.AdminDivision.IsDeleted,
	)

	d := &Division{}
	err := repository.db.QueryRow(ctx, query, divisionID, countryID).Scan(
		&d.ID, &d.CountryID, &d.ParentID, &d.Name, &d.NameLocal,
		&d.Code, &d.Type, &d.Level, &d.Path, &d.Timezone, &d.Rest,
		&d.IsActive,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Division")
	}

	return d, nil
}

func (repository *PostgresRepository) ListProjected(ctx context.Context, projQuery ProjectedQuery) ([]fields.Row, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = FALSE AND %s = $%d AND %s = $%d
	`,
		strings.Join(fields.Columns(projQuery.Fields), ", "),
		schema.AdminDivision.Table,
		schema.AdminDivision.IsDeleted,
		schema.AdminDivision.CountryID, argID,
		schema.AdminDivision.Level, argID+1,
	))
	args = append(args, projQuery.CountryID, projQuery.Level)
	argID += 2

	if projQuery.ParentID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.AdminDivision.ParentID, argID))
		args = append(args, *projQuery.ParentID)
		argID++
	}

	if projQuery.NamePrefix != "" {
		// ILIKE keeps the prefix match case-insensitive even though seeded
		// names are already lower-cased.
		queryBuilder.WriteString(fmt.Sprintf(" AND %s ILIKE $%d", schema.AdminDivision.Name, argID))
		args = append(args, escapeLike(projQuery.NamePrefix)+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", schema.AdminDivision.Name))

	if projQuery.Limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argID))
		args = append(args, projQuery.Limit)
	}

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Division")
	}

	projected, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, dberr.Wrap(err, "Division")
	}

	return projected, nil
}

// likeEscaper neutralizes LIKE/ILIKE wildcards in user-supplied prefixes.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
