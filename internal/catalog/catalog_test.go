// internal/catalog/catalog_test.go
package catalog

import (
	"context"
	"testing"

	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KnownLabel(t *testing.T) {
	c := NewStatic()

	detail := c.Resolve("Engineering & Technology")

	assert.NotEmpty(t, detail.Description)
	assert.NotEmpty(t, detail.Careers)
	assert.NotEmpty(t, detail.Courses)
	assert.NotEmpty(t, detail.Skills)
	assert.True(t, c.Has("Engineering & Technology"))
}

func TestResolve_UnknownLabelReturnsDefault(t *testing.T) {
	c := NewStatic()

	tests := []string{
		"",
		"Astrology",
		"engineering & technology", // lookup is exact-match, case included
		"Sports",
	}

	for _, label := range tests {
		t.Run("label "+label, func(t *testing.T) {
			detail := c.Resolve(label)
			assert.Equal(t, c.Default(), detail)
			assert.False(t, c.Has(label))
			assert.NotEmpty(t, detail.Careers, "default record must be well-formed")
		})
	}
}

func TestResolve_AllStaticLabelsWellFormed(t *testing.T) {
	c := NewStatic()

	for label := range staticEntries {
		detail := c.Resolve(label)
		assert.NotEmpty(t, detail.Description, label)
		assert.NotEmpty(t, detail.Careers, label)
		for _, career := range detail.Careers {
			assert.NotEmpty(t, career.Title, label)
			assert.NotEmpty(t, career.SalaryRange, label)
		}
	}
}

func TestNew_DefaultLabelOverridesBuiltin(t *testing.T) {
	custom := models.CareerDetail{Description: "custom default"}
	c := New(map[string]models.CareerDetail{
		DefaultLabel: custom,
		"Aviation":   {Description: "fly things"},
	})

	assert.Equal(t, custom, c.Resolve("missing"))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "fly things", c.Resolve("Aviation").Description)
}

func TestStore_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"label", "description", "careers", "courses", "skills"}).
		AddRow("Aviation", "fly things",
			`[{"title":"Pilot","salaryRange":"₹12-45 LPA","growthTier":"high"}]`,
			`["B.Sc Aviation"]`,
			`["Spatial Awareness"]`).
		AddRow("Broken", "bad careers json", `{not json`, `[]`, `[]`)

	mock.ExpectQuery("SELECT label, description, careers, courses, skills").WillReturnRows(rows)

	store := NewStore(db, logger.NewTestLogger(t))
	c, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, c.Len(), "malformed row is skipped, not fatal")
	assert.Equal(t, "Pilot", c.Resolve("Aviation").Careers[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadOrStatic_FallsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT label, description").WillReturnError(assert.AnError)

	store := NewStore(db, logger.NewTestLogger(t))
	c := store.LoadOrStatic(context.Background())

	assert.True(t, c.Has("Engineering & Technology"), "embedded catalog served")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadOrStatic_EmptyTableFallsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT label, description").
		WillReturnRows(sqlmock.NewRows([]string{"label", "description", "careers", "courses", "skills"}))

	store := NewStore(db, logger.NewTestLogger(t))
	c := store.LoadOrStatic(context.Background())

	assert.True(t, c.Has("Commerce & Finance"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
