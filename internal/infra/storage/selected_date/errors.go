package selected_date

import "errors"

var (
	// ErrNotFound возвращается, когда покупатель еще не выбрал дату
	ErrNotFound = errors.New("selected_date.repository: selection not found")

	// ErrStorage возвращается при ошибках Redis
	ErrStorage = errors.New("selected_date.repository: storage error")
)
