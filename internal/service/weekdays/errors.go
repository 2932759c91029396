package weekdays

import "errors"

var (
	// ErrInvalidInput возвращается при неизвестном дне недели или пустом shopID
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("weekdays service: internal error")
)
