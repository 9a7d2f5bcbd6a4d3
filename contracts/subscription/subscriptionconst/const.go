// Package subscriptionconst contains constants shared by the Subscription
// contract and its off-chain clients.
package subscriptionconst

// Fee parameters of a successful renewal: fee = amount * FeeNumerator / 10^FeeDecimals.
const (
	FeeNumerator = 100
	FeeDecimals  = 4
	// FeeDenominator is 10^FeeDecimals.
	FeeDenominator = 10_000
)

// Derivation labels.
const (
	CounterLabel      = "subscription_counter"
	SubscriptionLabel = "subscription_metadata"
	CredentialLabel   = "subscription_mint"
	VaultLabel        = "associated_account"
)

// SeedLength is the length of integer derivation seeds, they are encoded as
// little-endian values in [0, 2^63).
const SeedLength = 8

// RecordVersion is the only accepted subscription record layout version.
const RecordVersion = 1

// Outcomes of the renew method.
const (
	OutcomeRenewed     = 1
	OutcomeDeactivated = 2
)

// Fault messages. Authorization errors.
const (
	ErrMissingSignature = "missing signature"
	ErrNotWritable      = "context is not writable"
	ErrUnauthorized     = "caller is not the subscription owner"
)

// Address and derivation errors.
const (
	ErrInvalidAddress        = "invalid address"
	ErrInvalidProgramAddress = "address does not match derivation"
	ErrInvalidAccountOwner   = "invalid account owner"
	ErrInvalidCurrency       = "invalid currency contract"
	ErrUnexpectedPayment     = "payment from unexpected contract"
)

// Business rule errors.
const (
	ErrInvalidAmount               = "invalid amount"
	ErrInvalidDuration             = "invalid duration"
	ErrAlreadyInitialized          = "already initialized"
	ErrNotInitialized              = "not initialized"
	ErrTooEarly                    = "too early"
	ErrAlreadyExpired              = "already expired"
	ErrInvalidReceiver             = "invalid receiver"
	ErrGenerationMismatch          = "generation mismatch"
	ErrInsufficientWithdrawBalance = "insufficient withdraw balance"
	ErrCredentialFrozen            = "credential supply is frozen"
	ErrTransferFailed              = "currency transfer failed"
)

// ErrCorruptRecord is thrown when a stored record can't be parsed.
const ErrCorruptRecord = "corrupt subscription record"
