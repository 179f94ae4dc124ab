package dto

// BookmarkRequest - запрос на добавление закладки
type BookmarkRequest struct {
	ContentID string `json:"content_id" validate:"required,numeric"`
}
