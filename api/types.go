// Package api - API types for window pricing
// The API is stateless, idempotent and deterministic: the same body always
// prices the same way.
package api

import (
	"windowprice/core/output"
	"windowprice/core/window"
)

// PriceRequest is the body of POST /price. Dimensions and lite counts may
// be numbers or strings; empty or unparsable values are unset.
type PriceRequest = window.PriceRequest

// PriceResponse is returned by POST /price
type PriceResponse struct {
	RequestID string           `json:"request_id"`
	InputHash string           `json:"input_hash"`
	Price     output.PriceView `json:"price"`
}

// QuoteWindow is one window on a quote request
type QuoteWindow struct {
	Label    string `json:"label"`
	Quantity int64  `json:"quantity"`
	window.PriceRequest
}

// QuoteRequest is the body of POST /quote
type QuoteRequest struct {
	Name    string        `json:"name"`
	Windows []QuoteWindow `json:"windows"`
}

// QuoteResponse is returned by POST /quote
type QuoteResponse struct {
	RequestID string           `json:"request_id"`
	InputHash string           `json:"input_hash"`
	Quote     output.QuoteView `json:"quote"`
}

// ErrorBody is the error envelope
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
