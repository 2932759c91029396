package domain

// Metafield keys of the shop availability configuration
// Each key is an independent blob: there is no transaction spanning both
const (
	KeyBlockedDays = "blockedDays"
	KeyDates       = "dates"
)

// Order metafield holding the buyer's selected delivery date
const (
	DeliveryDateNamespace = "custom"
	DeliveryDateKey       = "delivery_date"
)

// Gate messages surfaced to the buyer when checkout progress is blocked
const (
	MsgDeliveryDateNotSet       = "Delivery date not set"
	MsgDeliveryDateUnverifiable = "Delivery date could not be verified"
)

// MonthFormat format of the month query parameter (YYYY-MM)
const MonthFormat = "2006-01"
