package delivery_gate

import "errors"

var (
	// ErrInvalidInput возвращается при пустом токене или некорректной дате
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateDisabled возвращается, когда выбранная дата недоступна для доставки
	ErrDateDisabled = errors.New("delivery date is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
