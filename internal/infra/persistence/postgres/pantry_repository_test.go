package postgres

import (
	"context"
	"testing"

	"larder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a gorm handle that builds SQL without touching a server,
// with a callback capturing every generated statement.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{DriverName: "pgx"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var captured []string
	err = db.Callback().Create().After("gorm:create").Register("capture_sql", func(tx *gorm.DB) {
		captured = append(captured, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return db, &captured
}

func TestPantryRepository_Upsert_AccumulatesAndReplacesOverrides(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewPantryRepository(db)

	calories := 120.0
	vegan := true
	item := &entity.PantryItem{
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Quantity:  2,
		Unit:      "servings",
		Nutrition: entity.Nutrition{Calories: &calories},
		Flags:     entity.DietaryFlagOverrides{IsVegan: &vegan},
	}

	err := repo.Upsert(context.Background(), item)

	require.NoError(t, err)
	require.Len(t, *captured, 1)
	sql := (*captured)[0]

	// One statement covers both the first insert and the conflict path.
	assert.Contains(t, sql, `INSERT INTO "user_pantry_items"`)
	assert.Contains(t, sql, `ON CONFLICT ("user_id","product_id") DO UPDATE SET`)

	// Quantity accumulates instead of being replaced.
	assert.Contains(t, sql, `"quantity"=user_pantry_items.quantity + excluded.quantity`)
	assert.NotContains(t, sql, `"quantity"="excluded"."quantity"`)

	// The override sub-record is rewritten wholesale from the incoming row,
	// NULLs included, so omitted fields fall back to the catalog on read.
	for _, column := range pantryOverrideColumns {
		assert.Contains(t, sql, `"`+column+`"="excluded"."`+column+`"`)
	}
}

func TestPantryRepository_Upsert_QuantityExcludedFromOverrideColumns(t *testing.T) {
	// The accumulate expression owns the quantity column; listing it among
	// the replaced override columns would silently undo the accumulation.
	for _, column := range pantryOverrideColumns {
		assert.NotEqual(t, "quantity", column)
	}
}
