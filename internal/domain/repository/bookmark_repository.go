package repository

import (
	"context"

	"github.com/tour-microservice/internal/domain"
)

// BookmarkRepository - хранилище закладок.
// Идентичность пользователя приходит извне (hosted-провайдер аутентификации),
// здесь она - непрозрачная строка.
type BookmarkRepository interface {
	// UpsertUser создаёт или обновляет профиль пользователя.
	UpsertUser(ctx context.Context, user *domain.User) error

	// IsBookmarked проверяет наличие закладки.
	IsBookmarked(ctx context.Context, userID, contentID string) (bool, error)

	// AddBookmark добавляет закладку; повторная вставка - не ошибка.
	AddBookmark(ctx context.Context, userID, contentID string) error

	// RemoveBookmark удаляет закладку.
	RemoveBookmark(ctx context.Context, userID, contentID string) error

	// ListBookmarks возвращает закладки пользователя, новые первыми.
	ListBookmarks(ctx context.Context, userID string) ([]domain.Bookmark, error)

	// BookmarkedSet возвращает подмножество contentIDs, находящееся в закладках.
	BookmarkedSet(ctx context.Context, userID string, contentIDs []string) (map[string]bool, error)
}
