package errs

import "errors"

// Sentinel errors shared across the usecase layers.
// Usecases attach them with Mark so handlers can branch on errors.Is.
var (
	// Catalog errors
	ErrEntryNotFound   = errors.New("catalog entry not found")
	ErrPreviewNotFound = errors.New("preview source not found")
	ErrInvalidEntry    = errors.New("invalid catalog entry")

	// Checkout errors
	ErrConfigurationMissing          = errors.New("provider configuration missing")
	ErrUpstreamSessionCreationFailed = errors.New("upstream session creation failed")
	ErrUnsupportedProvider           = errors.New("unsupported payment provider")
	ErrWalletNotConfigured           = errors.New("wallet not configured")
	ErrInvalidCheckoutRequest        = errors.New("invalid checkout request")

	// Purchase errors
	ErrInvalidReturnState = errors.New("invalid return state")
	ErrPersistFailed      = errors.New("purchase persist failed")
	ErrNotificationFailed = errors.New("sale notification failed")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
