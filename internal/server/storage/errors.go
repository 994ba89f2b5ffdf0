package storage

import "errors"

// Общие ошибки хранилища
var (
	// ErrUserNotFound - пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists - пользователь с таким username уже существует
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound - refresh token не найден
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrChangeNotFound - запись изменения не найдена
	ErrChangeNotFound = errors.New("change record not found")
)
