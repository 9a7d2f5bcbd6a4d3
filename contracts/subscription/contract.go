package subscription

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/subscription-contract/common"
	"github.com/nspcc-dev/subscription-contract/contracts/subscription/derive"
	"github.com/nspcc-dev/subscription-contract/contracts/subscription/subscriptionconst"
)

type (
	// Subscription is a billing plan instance.
	Subscription struct {
		Active bool
		// Credential is an identifier of the current ownership token, nil
		// before the first renewal.
		Credential      interop.Hash160
		Vault           interop.Hash160
		Currency        interop.Hash160
		Payee           interop.Hash160
		Amount          int
		Duration        int
		NextRenewalTime int
		RenewalCount    int
		// Payer is the account that initialized the subscription, it owns
		// it until the first credential is minted.
		Payer interop.Hash160
		// Index is the plan counter value the address is derived from.
		Index int
	}

	// Vault is an escrow balance held by the contract for a subscription.
	Vault struct {
		Holder   interop.Hash160
		Currency interop.Hash160
		Balance  int
	}

	// Plan is a distinct (payee, amount, duration) triple.
	Plan struct {
		Payee    interop.Hash160
		Amount   int
		Duration int
	}

	// Credential is a state of the ownership token.
	Credential struct {
		Owner        interop.Hash160
		Subscription interop.Hash160
		Generation   int
	}
)

// Prefixes used for contract data storage.
const (
	// prefixTotalSupply contains total supply of credentials in circulation.
	prefixTotalSupply byte = 0x00
	// prefixBalance contains map from the owner to their credential balance.
	prefixBalance byte = 0x01
	// prefixAccountToken contains map from (owner + token ID) to token ID.
	prefixAccountToken byte = 0x02
	// prefixCredential contains map from token ID to Credential.
	prefixCredential byte = 0x03
	// prefixFrozen contains set of token IDs that were ever minted.
	prefixFrozen byte = 0x04
	// prefixCounter contains map from counter address to the plan counter.
	prefixCounter byte = 0x10
	// prefixPlan contains map from counter address to Plan.
	prefixPlan byte = 0x11
	// prefixIndex contains set of (counter address + subscription address).
	prefixIndex byte = 0x12
	// prefixSubscription contains map from subscription address to the
	// versioned Subscription record.
	prefixSubscription byte = 0x20
	// prefixVault contains map from vault address to Vault.
	prefixVault byte = 0x21
)

const (
	symbol       = "SUBS"
	nep17        = "NEP-17"
	corruptedMsg = subscriptionconst.ErrCorruptRecord + ": unknown version"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	ctx := storage.GetContext()
	storage.Put(ctx, []byte{prefixTotalSupply}, 0)

	runtime.Log("subscription contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the committee.
func Update(nef []byte, manifest string, data any) {
	common.CheckCommittee()
	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nef, manifest, common.AppendVersion(data))
	runtime.Log("subscription contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Initialize creates a new subscription of payer to the (payee, amount,
// duration) plan funded in the currency NEP-17 token and returns its
// address. Subscription is inactive until the first renewal.
func Initialize(payer, payee interop.Hash160, amount, duration int, currency interop.Hash160) interop.Hash160 {
	checkHash160(payer)
	checkHash160(payee)
	checkHash160(currency)
	checkSigner(payer)
	checkWritable()
	if amount <= 0 {
		panic(subscriptionconst.ErrInvalidAmount)
	}
	if duration < 0 {
		panic(subscriptionconst.ErrInvalidDuration)
	}
	checkCurrency(currency)

	ctx := storage.GetContext()

	counter := derive.Counter(payee, amount, duration).Address()
	count, isNew := counterState(ctx, counter)

	addr := derive.Subscription(payee, amount, duration, count).Address()
	if storage.Get(ctx, subscriptionKey(addr)) != nil {
		panic(subscriptionconst.ErrAlreadyInitialized)
	}
	vault := derive.Vault(addr, currency).Address()

	if isNew {
		common.SetSerialized(ctx, append([]byte{prefixPlan}, counter...), Plan{
			Payee:    payee,
			Amount:   amount,
			Duration: duration,
		})
	}
	storage.Put(ctx, append([]byte{prefixCounter}, counter...), count+1)

	putSubscription(ctx, addr, Subscription{
		Active:          false,
		Credential:      nil,
		Vault:           vault,
		Currency:        currency,
		Payee:           payee,
		Amount:          amount,
		Duration:        duration,
		NextRenewalTime: 0,
		RenewalCount:    0,
		Payer:           payer,
		Index:           count,
	})
	putVault(ctx, vault, Vault{
		Holder:   addr,
		Currency: currency,
		Balance:  0,
	})
	storage.Put(ctx, indexKey(counter, addr), addr)

	runtime.Notify("Initialized", addr, payer, payee, amount, duration, currency)
	return addr
}

// OnNEP17Payment deposits funds to the vault of the subscription passed in
// data. Only the subscription currency is accepted. GAS minted to the
// contract for NEO held in vaults is accepted without deposit.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if from == nil && data == nil && runtime.GetCallingScriptHash().Equals(gas.Hash) {
		return
	}
	checkWritable()
	if amount <= 0 {
		panic(subscriptionconst.ErrInvalidAmount)
	}
	addr := data.(interop.Hash160)
	checkHash160(addr)

	ctx := storage.GetContext()
	sub := loadSubscription(ctx, addr)
	checkCallingCurrency(sub.Currency)

	v, _ := loadVault(ctx, addr, sub)
	v.Balance += amount
	putVault(ctx, sub.Vault, v)

	runtime.Notify("Deposited", addr, from, amount)
}

// Renew advances the subscription to the next billing period. With enough
// funds in the vault the payee gets the amount minus the caller fee and a
// new credential is minted to receiver, otherwise an active subscription is
// deactivated. generation must be equal to the current renewal count, it is
// checked after the renewal time.
// It returns subscriptionconst.OutcomeRenewed or
// subscriptionconst.OutcomeDeactivated.
func Renew(caller, subscription, receiver interop.Hash160, generation int) int {
	checkHash160(caller)
	checkHash160(subscription)
	checkHash160(receiver)
	checkSigner(caller)
	checkWritable()

	ctx := storage.GetContext()
	sub := loadSubscription(ctx, subscription)

	now := runtime.GetTime() / 1000
	if now < sub.NextRenewalTime {
		panic(subscriptionconst.ErrTooEarly)
	}
	if generation != sub.RenewalCount {
		panic(subscriptionconst.ErrGenerationMismatch)
	}

	v, auth := loadVault(ctx, subscription, sub)
	if v.Balance < sub.Amount {
		if !sub.Active {
			panic(subscriptionconst.ErrAlreadyExpired)
		}
		sub.Active = false
		putSubscription(ctx, subscription, sub)

		runtime.Log("subscription deactivated")
		runtime.Notify("Deactivated", subscription, caller)
		return subscriptionconst.OutcomeDeactivated
	}

	checkOwner(ctx, sub, receiver, subscriptionconst.ErrInvalidReceiver)

	fee := Fee(sub.Amount)
	payout := sub.Amount - fee
	credential := derive.Credential(subscription, sub.RenewalCount).Address()

	sub.Active = true
	sub.Credential = credential
	sub.NextRenewalTime = now + sub.Duration
	sub.RenewalCount = sub.RenewalCount + 1
	putSubscription(ctx, subscription, sub)

	v.Balance -= sub.Amount
	putVault(ctx, sub.Vault, v)

	transferOut(auth, sub.Vault, sub.Currency, sub.Payee, payout)
	transferOut(auth, sub.Vault, sub.Currency, caller, fee)
	mintCredential(ctx, credential, subscription, generation, receiver)

	runtime.Notify("Renewed", subscription, caller, receiver, payout, fee, credential)
	return subscriptionconst.OutcomeRenewed
}

// Withdraw transfers amount from the subscription vault to the owner. The
// owner is the holder of the current credential or the payer if there is
// no credential yet.
func Withdraw(owner, subscription interop.Hash160, amount int) {
	checkHash160(owner)
	checkHash160(subscription)
	checkSigner(owner)
	checkWritable()
	if amount <= 0 {
		panic(subscriptionconst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	sub := loadSubscription(ctx, subscription)
	checkOwner(ctx, sub, owner, subscriptionconst.ErrUnauthorized)

	v, auth := loadVault(ctx, subscription, sub)
	if v.Balance < amount {
		panic(subscriptionconst.ErrInsufficientWithdrawBalance)
	}
	v.Balance -= amount
	putVault(ctx, sub.Vault, v)

	transferOut(auth, sub.Vault, sub.Currency, owner, amount)

	runtime.Notify("Withdrawn", subscription, owner, amount)
}

// Close refunds the whole vault balance to the owner, burns the current
// credential and removes the subscription. Plan counter is kept, so the
// subscription address is never reused.
func Close(owner, subscription interop.Hash160) {
	checkHash160(owner)
	checkHash160(subscription)
	checkSigner(owner)
	checkWritable()

	ctx := storage.GetContext()
	sub := loadSubscription(ctx, subscription)
	checkOwner(ctx, sub, owner, subscriptionconst.ErrUnauthorized)

	v, auth := loadVault(ctx, subscription, sub)
	refund := v.Balance

	counter := derive.Counter(sub.Payee, sub.Amount, sub.Duration).Address()
	storage.Delete(ctx, subscriptionKey(subscription))
	storage.Delete(ctx, append([]byte{prefixVault}, sub.Vault...))
	storage.Delete(ctx, indexKey(counter, subscription))

	if sub.Credential != nil {
		burnCredential(ctx, sub.Credential)
	}
	transferOut(auth, sub.Vault, sub.Currency, owner, refund)

	runtime.Log("subscription closed")
	runtime.Notify("Closed", subscription, owner, refund)
}

// GetSubscription returns the subscription record.
func GetSubscription(subscription interop.Hash160) Subscription {
	ctx := storage.GetReadOnlyContext()
	return loadSubscription(ctx, subscription)
}

// VaultBalance returns funds escrowed for the subscription.
func VaultBalance(subscription interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	sub := loadSubscription(ctx, subscription)
	v, _ := loadVault(ctx, subscription, sub)
	return v.Balance
}

// CounterOf returns the number of subscriptions ever created for the plan.
func CounterOf(payee interop.Hash160, amount, duration int) int {
	ctx := storage.GetReadOnlyContext()
	count, _ := counterState(ctx, derive.Counter(payee, amount, duration).Address())
	return count
}

// CounterAddress returns the plan counter address.
func CounterAddress(payee interop.Hash160, amount, duration int) interop.Hash160 {
	return derive.Counter(payee, amount, duration).Address()
}

// SubscriptionAddress returns address of the count-th subscription of the plan.
func SubscriptionAddress(payee interop.Hash160, amount, duration, count int) interop.Hash160 {
	return derive.Subscription(payee, amount, duration, count).Address()
}

// VaultAddress returns address of the subscription vault.
func VaultAddress(subscription, currency interop.Hash160) interop.Hash160 {
	return derive.Vault(subscription, currency).Address()
}

// CredentialAddress returns identifier of the credential minted on the
// renewal with the given generation.
func CredentialAddress(subscription interop.Hash160, generation int) interop.Hash160 {
	return derive.Credential(subscription, generation).Address()
}

// Fee returns the part of amount paid to the renewal caller.
func Fee(amount int) int {
	return amount * subscriptionconst.FeeNumerator / subscriptionconst.FeeDenominator
}

// ListPlans returns iterator over all known plans.
func ListPlans() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{prefixPlan}, storage.ValuesOnly|storage.DeserializeValues)
}

// ListSubscriptions returns iterator over addresses of open subscriptions
// of the plan.
func ListSubscriptions(payee interop.Hash160, amount, duration int) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	counter := derive.Counter(payee, amount, duration).Address()
	return storage.Find(ctx, append([]byte{prefixIndex}, counter...), storage.ValuesOnly)
}

func counterState(ctx storage.Context, counter interop.Hash160) (int, bool) {
	val := storage.Get(ctx, append([]byte{prefixCounter}, counter...))
	if val == nil {
		return 0, true
	}
	return val.(int), false
}

func subscriptionKey(addr interop.Hash160) []byte {
	return append([]byte{prefixSubscription}, addr...)
}

func indexKey(counter, addr interop.Hash160) []byte {
	return append(append([]byte{prefixIndex}, counter...), addr...)
}

func putSubscription(ctx storage.Context, addr interop.Hash160, sub Subscription) {
	common.SetVersioned(ctx, subscriptionKey(addr), subscriptionconst.RecordVersion, sub)
}

// loadSubscription reads the subscription record and checks that it can be
// re-derived from its own fields.
func loadSubscription(ctx storage.Context, addr interop.Hash160) Subscription {
	val := common.GetVersioned(ctx, subscriptionKey(addr), subscriptionconst.RecordVersion, corruptedMsg)
	if val == nil {
		panic(subscriptionconst.ErrNotInitialized)
	}
	sub := val.(Subscription)

	checkDerivation(addr, derive.Subscription(sub.Payee, sub.Amount, sub.Duration, sub.Index))
	checkDerivation(sub.Vault, derive.Vault(addr, sub.Currency))
	if sub.Credential != nil {
		checkDerivation(sub.Credential, derive.Credential(addr, sub.RenewalCount-1))
	}
	return sub
}

func putVault(ctx storage.Context, addr interop.Hash160, v Vault) {
	common.SetSerialized(ctx, append([]byte{prefixVault}, addr...), v)
}

// loadVault returns the subscription vault and an authority over it.
func loadVault(ctx storage.Context, addr interop.Hash160, sub Subscription) (Vault, derive.Authority) {
	auth := derive.Vault(addr, sub.Currency)
	checkDerivation(sub.Vault, auth)

	val := common.GetSerialized(ctx, append([]byte{prefixVault}, sub.Vault...))
	if val == nil {
		panic(subscriptionconst.ErrNotInitialized)
	}
	v := val.(Vault)
	if !v.Holder.Equals(addr) || !v.Currency.Equals(sub.Currency) {
		panic(subscriptionconst.ErrInvalidAccountOwner)
	}
	return v, auth
}

// transferOut moves funds out of the vault. Vault record must be debited
// by the caller beforehand.
func transferOut(auth derive.Authority, vault, currency, to interop.Hash160, amount int) {
	checkDerivation(vault, auth)
	common.TransferFromSelf(currency, to, amount, subscriptionconst.ErrTransferFailed)
}
