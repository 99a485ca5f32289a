package country

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placewise/geodir/internal/platform/database/schema"
	"github.com/placewise/geodir/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed country store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Country, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = FALSE
		ORDER BY %s ASC;
	`,
		strings.Join(schema.Country.PublicColumns(), ", "),
		schema.Country.Table,
		schema.Country.IsDeleted,
		schema.Country.Name,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Country")
	}
	defer rows.Close()

	var countries []*Country
	for rows.Next() {
		c := &Country{}
		if err := rows.Scan(
			&c.ID, &c.Name, &c.NameLocal, &c.ISOCode, &c.Icon,
			&c.Structure, &c.Continent, &c.Timezone, &c.IsActive,
		); err != nil {
			return nil, dberr.Wrap(err, "Country")
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Country")
	}

	return countries, nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id int64) (*Country, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE;
	`,
		strings.Join(schema.Country.PublicColumns(), ", "),
		schema.Country.Table,
		schema.Country.ID,
		schema.Country.IsDeleted,
	)

	c := &Country{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.NameLocal, &c.ISOCode, &c.Icon,
		&c.Structure, &c.Continent, &c.Timezone, &c.IsActive,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Country")
	}

	return c, nil
}
