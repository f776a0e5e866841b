package domain

import "errors"

// Доменные ошибки ядра. Обработчики HTTP ветвятся по ним через errors.Is,
// всё остальное схлопывается в общий ответ 500 без деталей.
var (
	// ErrValidation — отсутствует или некорректно обязательное поле запроса.
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken — пользователь с таким нормализованным email уже есть.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials — неизвестный email либо неверный пароль.
	// Одна и та же ошибка в обоих случаях, чтобы не раскрывать, что именно не совпало.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — подпись не сходится или токен не разбирается.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истек.
	ErrTokenExpired = errors.New("token expired")

	// ErrUserNotFound — пользователь не найден в хранилище.
	ErrUserNotFound = errors.New("user not found")

	// ErrJobNotFound — вакансия с таким id не существует.
	ErrJobNotFound = errors.New("job not found")

	// ErrForbidden — вакансия принадлежит другому пользователю.
	ErrForbidden = errors.New("forbidden")
)
