package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placewise/geodir/internal/platform/database/schema"
	"github.com/placewise/geodir/internal/platform/dberr"
)

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a PostgreSQL backed seed store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) EnsureCountry(ctx context.Context, country Country) (int64, error) {
	lookup := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1 AND %s = FALSE;
	`,
		schema.Country.ID,
		schema.Country.Table,
		schema.Country.ISOCode,
		schema.Country.IsDeleted,
	)

	var id int64
	err := store.db.QueryRow(ctx, lookup, country.ISOCode).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, dberr.Wrap(err, "Country")
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, FALSE, FALSE)
		RETURNING %s;
	`,
		schema.Country.Table,
		schema.Country.Name, schema.Country.NameLocal, schema.Country.ISOCode,
		schema.Country.Icon, schema.Country.Structure, schema.Country.Continent,
		schema.Country.Timezone,
		schema.Country.IsActive, schema.Country.IsDeleted, schema.Country.IsArchived,
		schema.Country.ID,
	)

	err = store.db.QueryRow(ctx, insert,
		country.Name, country.NameLocal, country.ISOCode,
		country.Icon, country.Structure, country.Continent,
		country.Timezone,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "Country")
	}

	return id, nil
}

func (store *PostgresStore) UpsertDivision(ctx context.Context, d Division) (int64, error) {
	// The conflict target matches the expression index that keeps
	// (country_id, parent, level, name) unique; parent_id is coalesced so
	// NULL parents (level-1 rows) still collide with each other.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, FALSE, FALSE)
		ON CONFLICT (%s, (COALESCE(%s, 0)), %s, %s)
		DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
		RETURNING %s;
	`,
		schema.AdminDivision.Table,
		schema.AdminDivision.CountryID, schema.AdminDivision.ParentID,
		schema.AdminDivision.Name, schema.AdminDivision.NameLocal,
		schema.AdminDivision.Code, schema.AdminDivision.Type,
		schema.AdminDivision.Level, schema.AdminDivision.Path,
		schema.AdminDivision.Rest,
		schema.AdminDivision.IsActive, schema.AdminDivision.IsDeleted, schema.AdminDivision.IsArchived,
		schema.AdminDivision.CountryID, schema.AdminDivision.ParentID,
		schema.AdminDivision.Level, schema.AdminDivision.Name,
		schema.AdminDivision.NameLocal, schema.AdminDivision.NameLocal,
		schema.AdminDivision.Code, schema.AdminDivision.Code,
		schema.AdminDivision.Type, schema.AdminDivision.Type,
		schema.AdminDivision.Path, schema.AdminDivision.Path,
		schema.AdminDivision.Rest, schema.AdminDivision.Rest,
		schema.AdminDivision.ID,
	)

	var id int64
	err := store.db.QueryRow(ctx, query,
		d.CountryID, d.ParentID, d.Name, d.NameLocal, d.Code,
		d.Type, d.Level, d.Path, d.Rest,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "Division")
	}

	return id, nil
}
