package install_shop

import "errors"

var (
	// ErrInvalidInput возвращается при пустом shopID
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается, если не удалось зарегистрировать ни одного определения
	ErrInternal = errors.New("usecase: internal error")
)
