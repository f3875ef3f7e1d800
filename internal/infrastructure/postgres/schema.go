package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL crea el esquema de forma idempotente. Sin versionado de
// migraciones: las constraints únicas y de CHECK son la autoridad de
// unicidad e invariantes, los pre-checks de los use cases solo atajan.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      VARCHAR(150) NOT NULL UNIQUE,
	email         VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	role          VARCHAR(50)  NOT NULL CHECK (role IN ('employer', 'employee', 'point_of_contact')),
	company       VARCHAR(255),
	created_at    TIMESTAMPTZ NOT NULL,
	CONSTRAINT check_company_for_roles CHECK (
		(role IN ('employer', 'point_of_contact') AND company IS NOT NULL)
		OR (role = 'employee' AND company IS NULL)
	)
);

CREATE TABLE IF NOT EXISTS companies (
	id          UUID PRIMARY KEY,
	name        VARCHAR(255) NOT NULL UNIQUE,
	industry    VARCHAR(255),
	about       TEXT,
	website     VARCHAR(255),
	email       VARCHAR(255) NOT NULL UNIQUE,
	phone       VARCHAR(20),
	location    VARCHAR(255),
	established INTEGER,
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS pocs (
	id         UUID PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	email      VARCHAR(255) NOT NULL UNIQUE,
	phone      VARCHAR(20),
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS employers (
	id         UUID PRIMARY KEY,
	name       VARCHAR(255) NOT NULL UNIQUE,
	email      VARCHAR(255) NOT NULL UNIQUE,
	phone      VARCHAR(20),
	industry   VARCHAR(255),
	company_id UUID NOT NULL REFERENCES companies(id),
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS employer_poc_association (
	employer_id UUID NOT NULL REFERENCES employers(id) ON DELETE CASCADE,
	poc_id      UUID NOT NULL REFERENCES pocs(id) ON DELETE CASCADE,
	PRIMARY KEY (employer_id, poc_id)
);

CREATE TABLE IF NOT EXISTS job_postings (
	id          UUID PRIMARY KEY,
	title       VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	company     VARCHAR(255),
	location    VARCHAR(255),
	posted_at   TIMESTAMPTZ NOT NULL,
	employer_id UUID NOT NULL REFERENCES users(id),
	CONSTRAINT uq_job_per_employer UNIQUE (employer_id, title)
);
`

// CreateSchema aplica el DDL al arranque. Idempotente: seguro en cada inicio.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
