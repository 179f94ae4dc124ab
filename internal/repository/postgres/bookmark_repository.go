package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/tour-microservice/internal/domain"
	"github.com/tour-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type bookmarkRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewBookmarkRepository создает новый экземпляр bookmark repository
func NewBookmarkRepository(db *DB, logger *zap.Logger) repository.BookmarkRepository {
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertUser создаёт или обновляет профиль пользователя
func (r *bookmarkRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Email); err != nil {
		r.logger.Error("Failed to upsert user", zap.String("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}

// IsBookmarked проверяет наличие закладки
func (r *bookmarkRepository) IsBookmarked(ctx context.Context, userID, contentID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND content_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, contentID); err != nil {
		r.logger.Error("Failed to check bookmark",
			zap.String("user_id", userID),
			zap.String("content_id", contentID),
			zap.Error(err))
		return false, fmt.Errorf("check bookmark: %w", err)
	}

	return exists, nil
}

// AddBookmark добавляет закладку. Повторная вставка - не ошибка:
// ON CONFLICT DO NOTHING делает операцию идемпотентной.
func (r *bookmarkRepository) AddBookmark(ctx context.Context, userID, contentID string) error {
	query := `
		INSERT INTO bookmarks (user_id, content_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, content_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, userID, contentID); err != nil {
		r.logger.Error("Failed to add bookmark",
			zap.String("user_id", userID),
			zap.String("content_id", contentID),
			zap.Error(err))
		return fmt.Errorf("add bookmark: %w", err)
	}

	return nil
}

// RemoveBookmark удаляет закладку
func (r *bookmarkRepository) RemoveBookmark(ctx context.Context, userID, contentID string) error {
	query := `DELETE FROM bookmarks WHERE user_id = $1 AND content_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, contentID); err != nil {
		r.logger.Error("Failed to remove bookmark",
			zap.String("user_id", userID),
			zap.String("content_id", contentID),
			zap.Error(err))
		return fmt.Errorf("remove bookmark: %w", err)
	}

	return nil
}

// ListBookmarks возвращает закладки пользователя, новые первыми
func (r *bookmarkRepository) ListBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	query := `
		SELECT id, user_id, content_id, created_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC`

	bookmarks := make([]domain.Bookmark, 0)
	if err := r.db.SelectContext(ctx, &bookmarks, query, userID); err != nil {
		r.logger.Error("Failed to list bookmarks", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	return bookmarks, nil
}

// BookmarkedSet возвращает подмножество contentIDs, находящееся в закладках.
// Один запрос на всю страницу листинга вместо N по одному.
func (r *bookmarkRepository) BookmarkedSet(ctx context.Context, userID string, contentIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	query := `SELECT content_id FROM bookmarks WHERE user_id = $1 AND content_id = ANY($2)`

	var found []string
	if err := r.db.SelectContext(ctx, &found, query, userID, pq.Array(contentIDs)); err != nil {
		r.logger.Error("Failed to load bookmarked set", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("bookmarked set: %w", err)
	}

	for _, id := range found {
		result[id] = true
	}

	return result, nil
}
