// internal/catalog/store.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/models"
)

// Store loads catalog rows from Postgres. The career_catalog table is
// curated by the content team; when it is unreachable or empty the embedded
// static catalog is served instead, so resolution never depends on the
// database being up.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "catalog-store"}),
	}
}

const loadQuery = `
	SELECT label, description, careers, courses, skills
	FROM career_catalog`

// Load reads all catalog rows. Rows with malformed JSON columns are skipped
// with a warning rather than failing the whole load.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	rows, err := s.db.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(err)
	}
	defer rows.Close()

	entries := make(map[string]models.CareerDetail)
	for rows.Next() {
		var (
			label, description       string
			careers, courses, skills []byte
		)
		if err := rows.Scan(&label, &description, &careers, &courses, &skills); err != nil {
			return nil, errors.NewCatalogLoadFailedError(err)
		}

		detail := models.CareerDetail{Description: description}
		if err := json.Unmarshal(careers, &detail.Careers); err != nil {
			s.logger.Warn("skipping catalog row with bad careers column", map[string]interface{}{
				"label": label,
				"error": err.Error(),
			})
			continue
		}
		if err := json.Unmarshal(courses, &detail.Courses); err != nil {
			detail.Courses = []string{}
		}
		if err := json.Unmarshal(skills, &detail.Skills); err != nil {
			detail.Skills = []string{}
		}

		entries[label] = detail
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewCatalogLoadFailedError(err)
	}

	if len(entries) == 0 {
		return nil, errors.NewCatalogLoadFailedError(fmt.Errorf("career_catalog table is empty"))
	}

	return New(entries), nil
}

// LoadOrStatic returns the database catalog when available, otherwise the
// embedded one.
func (s *Store) LoadOrStatic(ctx context.Context) *Catalog {
	c, err := s.Load(ctx)
	if err != nil {
		s.logger.Warn("falling back to embedded career catalog", map[string]interface{}{
			"error": err.Error(),
		})
		return NewStatic()
	}
	s.logger.Info("career catalog loaded from database", map[string]interface{}{
		"entries": c.Len(),
	})
	return c
}
