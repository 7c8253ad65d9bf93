package dto

import "time"

type BuyNowInput struct {
	ProductID int64
	Quantity  int
	ClientID  string
}

type BuyNowOutput struct {
	URL     string
	Message string
}

const EventTypeHandoff = "BuyNowHandoff"

type HandoffEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Payload   HandoffPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type HandoffPayload struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	OnSale      bool    `json:"on_sale"`
	ClientID    string  `json:"client_id,omitempty"`
}
