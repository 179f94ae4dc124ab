package domain

import "time"

// User - минимальный профиль пользователя из внешнего провайдера аутентификации
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Bookmark - закладка пользователя на объект
type Bookmark struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ContentID string    `json:"content_id" db:"content_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
