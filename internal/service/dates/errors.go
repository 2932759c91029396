package dates

import "errors"

var (
	// ErrInvalidInput некорректный диапазон или дата
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRangeNotFound нет диапазона с указанным индексом
	ErrRangeNotFound = errors.New("date range not found")

	// ErrNoPendingRemoval подтверждение удаления без предварительного запроса
	ErrNoPendingRemoval = errors.New("no pending removal")

	// ErrInternal ошибка хранилища
	ErrInternal = errors.New("dates service: internal error")
)
