package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tour-microservice/internal/pkg/errors"
	"github.com/tour-microservice/internal/pkg/utils"
)

// UserIDKey - ключ идентификатора пользователя в Locals
const UserIDKey = "userID"

// UserIDHeader - заголовок с идентификатором пользователя.
// Аутентификацию выполняет внешний шлюз; сюда приходит уже проверенный ID.
const UserIDHeader = "X-User-ID"

// Identity - middleware, извлекающий идентификатор пользователя из заголовка.
// Отсутствие заголовка не ошибка: публичные эндпоинты работают анонимно.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID := strings.TrimSpace(c.Get(UserIDHeader)); userID != "" {
			c.Locals(UserIDKey, userID)
		}
		return c.Next()
	}
}

// RequireIdentity - middleware для эндпоинтов, требующих пользователя
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(UserIDKey).(string); !ok {
			return utils.SendError(c, errors.ErrAuthRequired)
		}
		return c.Next()
	}
}

// UserID возвращает идентификатор пользователя из контекста запроса
// или пустую строку для анонимного запроса.
func UserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals(UserIDKey).(string); ok {
		return userID
	}
	return ""
}
