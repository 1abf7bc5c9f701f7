// repository/group_repository.go
package repository

import (
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/hisaab-app/hisaab-backend/models"
)

// snapshotKey is the single key the whole group list is stored under,
// mirroring the one local-storage entry the original client used.
const snapshotKey = "groups"

// PostgresGroupStore implements GroupStore on a single-row jsonb snapshot.
type PostgresGroupStore struct {
	DB *sql.DB
}

// NewPostgresGroupStore creates a new PostgresGroupStore
func NewPostgresGroupStore() *PostgresGroupStore {
	return &PostgresGroupStore{
		DB: GetDB(),
	}
}

// Load reads and decodes the snapshot row. A missing row or failed query
// yields an empty group list.
func (r *PostgresGroupStore) Load() []models.Group {
	var data []byte
	err := r.DB.QueryRow(
		"SELECT data FROM group_snapshots WHERE key = $1",
		snapshotKey,
	).Scan(&data)

	if err == sql.ErrNoRows {
		return []models.Group{}
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to load group snapshot, starting from empty state")
		return []models.Group{}
	}

	return DecodeGroups(data)
}

// Save upserts the snapshot row with the serialized group list.
func (r *PostgresGroupStore) Save(groups []models.Group) error {
	data, err := EncodeGroups(groups)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(
		`INSERT INTO group_snapshots (key, data) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data`,
		snapshotKey, data,
	)
	return err
}
