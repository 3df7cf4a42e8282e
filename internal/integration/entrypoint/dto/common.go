// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/shopspring/decimal"

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// money rounds a decimal to two places for serialization. Rounding happens
// only here, never inside aggregation.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
