package metafields

import "errors"

var (
	// ErrMetafieldNotFound возвращается, когда значение для ключа еще не сохранялось
	ErrMetafieldNotFound = errors.New("metafields.repository: metafield not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("metafields.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("metafields.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("metafields.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("metafields.repository: failed to scan row")
)
