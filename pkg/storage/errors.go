package storage

import "errors"

// ErrInsufficientFunds is returned when a sender's balance cannot cover the
// requested gift amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAccountNotFound is returned when a referenced account does not exist.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountExists is returned when creating an account that already exists.
var ErrAccountExists = errors.New("account already exists")

// ErrGiftNotFound is returned when a referenced gift record does not exist.
var ErrGiftNotFound = errors.New("gift not found")

// ErrInvalidAmount is returned when a gift amount is zero or negative.
var ErrInvalidAmount = errors.New("gift amount must be positive")

// ErrSelfGift is returned when sender and receiver are the same account.
var ErrSelfGift = errors.New("sender and receiver must differ")

// ErrTransferConflict is returned when a transfer kept losing optimistic
// write conflicts and ran out of retry attempts. The caller must treat the
// outcome as unknown-but-not-applied and may retry the whole transfer.
var ErrTransferConflict = errors.New("transfer aborted after repeated write conflicts")
