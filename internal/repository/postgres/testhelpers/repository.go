package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/tour-microservice/internal/domain/repository"
	"github.com/tour-microservice/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewBookmarkRepositoryForTest creates a bookmark repository with test database and logger
func NewBookmarkRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.BookmarkRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewBookmarkRepository(pgDB, logger)
}
