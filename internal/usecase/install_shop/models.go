package install_shop

// Response итог регистрации определений метаполей
type Response struct {
	ShopID  string
	Created int      // Новые определения
	Existed int      // Уже были зарегистрированы ранее
	Failed  []string // namespace.key определений, которые не удалось зарегистрировать
}
