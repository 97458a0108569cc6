package errs

import "errors"

// Closed error taxonomy shared by the usecase layer, the remote clients
// and the HTTP handlers.
var (
	// Catalog / stock lookup errors
	ErrProductNotFound = errors.New("product not found")
	ErrStockNotFound   = errors.New("stock record not found")

	// Reservation errors. ErrInsufficientStock doubles as the error for a
	// negative absolute quantity update, matching the legacy inventory service.
	ErrInsufficientStock = errors.New("insufficient inventory")
	ErrInvalidQuantity   = errors.New("quantity must be positive")

	// Transport and persistence errors
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	ErrStoreUnavailable  = errors.New("store unavailable")

	// Malformed upstream request
	ErrBadRequest = errors.New("bad request")
)
