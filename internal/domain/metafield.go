package domain

// Metafield owner types
const (
	OwnerShop  = "SHOP"
	OwnerOrder = "ORDER"
)

// MetafieldDefinition describes one stored field registered for a shop on install
type MetafieldDefinition struct {
	Namespace   string
	Key         string
	Name        string
	Description string
	Type        string
	OwnerType   string
}

// DefaultMetafieldDefinitions the fields the service reads and writes
var DefaultMetafieldDefinitions = []MetafieldDefinition{
	{
		Namespace:   DeliveryDateNamespace,
		Key:         DeliveryDateKey,
		Name:        "Delivery Date",
		Description: "Customer selected delivery date from checkout",
		Type:        "date",
		OwnerType:   OwnerOrder,
	},
	{
		Namespace:   KeyBlockedDays,
		Key:         KeyBlockedDays,
		Name:        "Blocked Days",
		Description: "Days of the week that are blocked for delivery",
		Type:        "json",
		OwnerType:   OwnerShop,
	},
	{
		Namespace:   KeyDates,
		Key:         KeyDates,
		Name:        "Blocked Date Ranges",
		Description: "Date ranges that are blocked for delivery",
		Type:        "json",
		OwnerType:   OwnerShop,
	},
}
