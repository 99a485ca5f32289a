// Copyright (c) 2026 Geodir Authors. All rights reserved.

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://geo:pw@localhost:5432/geodir", "pgx5://geo:pw@localhost:5432/geodir"},
		{"postgresql_scheme", "postgresql://geo:pw@localhost:5432/geodir", "pgx5://geo:pw@localhost:5432/geodir"},
		{"already_pgx5", "pgx5://geo:pw@localhost:5432/geodir", "pgx5://geo:pw@localhost:5432/geodir"},
		{"unrecognized_passthrough", "host=localhost dbname=geodir", "host=localhost dbname=geodir"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, convertToPgx5DSN(tc.dsn))
		})
	}
}
