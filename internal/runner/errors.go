package runner

import (
	"errors"
	"fmt"
)

// ErrInvalidPurchase is returned by PurchaseSkin for an empty skin id or a negative cost.
var ErrInvalidPurchase = errors.New("runner: invalid purchase")

// ConfigError is returned by Start when the configuration is malformed.
// It wraps the validation errors, so errors.As can reach a *config.FieldError.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("runner: invalid configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// InsufficientFundsError is returned by PurchaseSkin when the profile
// cannot afford the skin. Nothing is changed when it is returned.
type InsufficientFundsError struct {
	SkinID string
	Cost   int
	Have   int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("runner: not enough coins for %s: need %d, have %d", e.SkinID, e.Cost, e.Have)
}
