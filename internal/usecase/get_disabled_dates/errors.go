package get_disabled_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (shopID, месяц, дата)
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
