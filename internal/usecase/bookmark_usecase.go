package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tour-microservice/internal/domain"
	"github.com/tour-microservice/internal/domain/repository"
	"github.com/tour-microservice/internal/pkg/errors"
	"github.com/tour-microservice/internal/usecase/dto"
)

// BookmarkUseCase обрабатывает бизнес-логику закладок
type BookmarkUseCase struct {
	bookmarkRepo repository.BookmarkRepository
	logger       *zap.Logger
}

// NewBookmarkUseCase создает новый экземпляр BookmarkUseCase
func NewBookmarkUseCase(
	bookmarkRepo repository.BookmarkRepository,
	logger *zap.Logger,
) *BookmarkUseCase {
	return &BookmarkUseCase{
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

// AddBookmark добавляет закладку. Профиль пользователя создается лениво:
// внешний провайдер аутентификации не синхронизируется с нашей БД.
// Повторное добавление той же закладки - не ошибка.
func (uc *BookmarkUseCase) AddBookmark(ctx context.Context, userID, contentID string) error {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return errors.ErrMissingParameter.WithDetails(map[string]interface{}{
			"parameter": "content_id",
		})
	}

	if err := uc.bookmarkRepo.UpsertUser(ctx, &domain.User{ID: userID}); err != nil {
		return errors.ErrDatabaseError
	}

	if err := uc.bookmarkRepo.AddBookmark(ctx, userID, contentID); err != nil {
		return errors.ErrDatabaseError
	}

	uc.logger.Info("Bookmark added",
		zap.String("user_id", userID),
		zap.String("content_id", contentID))
	return nil
}

// RemoveBookmark удаляет закладку; удаление несуществующей - не ошибка
func (uc *BookmarkUseCase) RemoveBookmark(ctx context.Context, userID, contentID string) error {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return errors.ErrMissingParameter.WithDetails(map[string]interface{}{
			"parameter": "content_id",
		})
	}

	if err := uc.bookmarkRepo.RemoveBookmark(ctx, userID, contentID); err != nil {
		return errors.ErrDatabaseError
	}

	uc.logger.Info("Bookmark removed",
		zap.String("user_id", userID),
		zap.String("content_id", contentID))
	return nil
}

// ListBookmarks возвращает закладки пользователя, новые первыми
func (uc *BookmarkUseCase) ListBookmarks(ctx context.Context, userID string) (*dto.BookmarksResponse, error) {
	bookmarks, err := uc.bookmarkRepo.ListBookmarks(ctx, userID)
	if err != nil {
		return nil, errors.ErrDatabaseError
	}

	return &dto.BookmarksResponse{
		Bookmarks: bookmarks,
		Total:     len(bookmarks),
	}, nil
}

// IsBookmarked возвращает статус закладки для одного объекта
func (uc *BookmarkUseCase) IsBookmarked(ctx context.Context, userID, contentID string) (*dto.BookmarkStatusResponse, error) {
	bookmarked, err := uc.bookmarkRepo.IsBookmarked(ctx, userID, contentID)
	if err != nil {
		return nil, errors.ErrDatabaseError
	}

	return &dto.BookmarkStatusResponse{
		ContentID:  contentID,
		Bookmarked: bookmarked,
	}, nil
}
