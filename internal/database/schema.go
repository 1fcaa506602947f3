package database

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/iliyamo/blog-platform/internal/model"
)

// schemaModels lists every table in dependency order. Articles reference
// users through author_id, so users come first.
var schemaModels = []interface{}{
	(*model.User)(nil),
	(*model.Article)(nil),
}

// CreateSchema creates all application tables if they do not exist yet. In
// production the MySQL schema is managed externally; this is used by the
// sqlite driver, the seed command and the tests.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	for _, m := range schemaModels {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ResetSchema drops and recreates all application tables. Test helper.
func ResetSchema(ctx context.Context, db *bun.DB) error {
	for i := len(schemaModels) - 1; i >= 0; i-- {
		if _, err := db.NewDropTable().Model(schemaModels[i]).IfExists().Exec(ctx); err != nil {
			return err
		}
	}
	return CreateSchema(ctx, db)
}
