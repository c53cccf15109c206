package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id         uuid PRIMARY KEY,
	name       text NOT NULL,
	location   text NOT NULL DEFAULT '',
	category   text NOT NULL DEFAULT '',
	event_date text NOT NULL DEFAULT '',
	event_time text NOT NULL DEFAULT '',
	lat        double precision NOT NULL CHECK (lat BETWEEN -90 AND 90),
	lng        double precision NOT NULL CHECK (lng BETWEEN -180 AND 180),
	radius_m   double precision NOT NULL CHECK (radius_m > 0),
	status     text NOT NULL CHECK (status IN ('live', 'upcoming', 'ended')),
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS events_status_idx ON events (status);

CREATE TABLE IF NOT EXISTS check_ins (
	id            uuid PRIMARY KEY,
	user_id       uuid NOT NULL,
	event_id      uuid NOT NULL REFERENCES events (id),
	lat           double precision NOT NULL,
	lng           double precision NOT NULL,
	distance_m    double precision NOT NULL,
	checked_in_at timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS check_ins_checked_in_at_idx ON check_ins (checked_in_at);
CREATE INDEX IF NOT EXISTS check_ins_user_idx ON check_ins (user_id);

CREATE TABLE IF NOT EXISTS vibe_checks (
	id           uuid PRIMARY KEY,
	user_id      uuid NOT NULL,
	event_id     uuid NOT NULL REFERENCES events (id),
	location     text NOT NULL DEFAULT '',
	rating       smallint NOT NULL CHECK (rating BETWEEN 1 AND 5),
	comment      text NOT NULL DEFAULT '',
	photo_url    text NOT NULL DEFAULT '',
	xp           integer NOT NULL,
	submitted_at timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS vibe_checks_event_idx ON vibe_checks (event_id);
CREATE INDEX IF NOT EXISTS vibe_checks_user_idx ON vibe_checks (user_id);
`

// EnsureSchema creates the tables if they are missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
