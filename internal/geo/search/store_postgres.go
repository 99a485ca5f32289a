package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placewise/geodir/internal/geo/division"
	"github.com/placewise/geodir/internal/geo/fields"
	"github.com/placewise/geodir/internal/platform/database/schema"
	"github.com/placewise/geodir/internal/platform/dberr"
)

// Procedure names for the ranked search. Both live in the migration set and
// return rows shaped like admin_divisions plus the rest attributes.
const (
	fuzzyProc       = "search_admin_divisions"
	fuzzyParentProc = "search_admin_divisions_with_parentid"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed search store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Global(ctx context.Context, text string, countryID *int64, limit int) ([]*division.Division, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = FALSE AND (%s ILIKE $%d OR %s ILIKE $%d)
	`,
		strings.Join(schema.AdminDivision.PublicColumns(), ", "),
		schema.AdminDivision.Table,
		schema.AdminDivision.IsDeleted,
		schema.AdminDivision.Name, argID,
		schema.AdminDivision.Path, argID,
	))
	args = append(args, "%"+escapeLike(text)+"%")
	argID++

	if countryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.AdminDivision.CountryID, argID))
		args = append(args, *countryID)
		argID++
	}

	// Path order groups results by their position in the hierarchy, so
	// sibling matches appear together.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d", schema.AdminDivision.Path, argID))
	args = append(args, limit)

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Division")
	}
	defer rows.Close()

	var divisions []*division.Division
	for rows.Next() {
		d := &division.Division{}
		if err := rows.Scan(
			&d.ID, &d.CountryID, &d.ParentID, &d.Name, &d.NameLocal,
			&d.Code, &d.Type, &d.Level, &d.Path, &d.Timezone, &d.Rest,
			&d.IsActive,
		); err != nil {
			return nil, dberr.Wrap(err, "Division")
		}
		divisions = append(divisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Division")
	}

	return divisions, nil
}

func (repository *PostgresRepository) Fuzzy(ctx context.Context, fuzzyQuery FuzzyQuery) ([]fields.Row, error) {
	var query string
	var args []any

	if fuzzyQuery.ParentID != nil {
		query = fmt.Sprintf(`SELECT * FROM %s($1, $2, $3, $4, $5);`, fuzzyParentProc)
		args = []any{fuzzyQuery.Text, fuzzyQuery.Level, fuzzyQuery.CountryID, fuzzyQuery.Limit, *fuzzyQuery.ParentID}
	} else {
		query = fmt.Sprintf(`SELECT * FROM %s($1, $2, $3, $4);`, fuzzyProc)
		args = []any{fuzzyQuery.Text, fuzzyQuery.Level, fuzzyQuery.CountryID, fuzzyQuery.Limit}
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Division")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, dberr.Wrap(err, "Division")
	}

	return results, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
