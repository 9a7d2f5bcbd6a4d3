// Package subscription contains RPC wrappers for Subscription contract.
package subscription

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep11"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Subscription is a contract-specific subscription.Subscription type used by its methods.
type Subscription struct {
	Active bool
	// Credential is nil before the first renewal.
	Credential      *util.Uint160
	Vault           util.Uint160
	Currency        util.Uint160
	Payee           util.Uint160
	Amount          *big.Int
	Duration        *big.Int
	NextRenewalTime *big.Int
	RenewalCount    *big.Int
	Payer           util.Uint160
	Index           *big.Int
}

// Plan is a contract-specific subscription.Plan type used by its methods.
type Plan struct {
	Payee    util.Uint160
	Amount   *big.Int
	Duration *big.Int
}

// InitializedEvent represents "Initialized" event emitted by the contract.
type InitializedEvent struct {
	Subscription util.Uint160
	Payer        util.Uint160
	Payee        util.Uint160
	Amount       *big.Int
	Duration     *big.Int
	Currency     util.Uint160
}

// DepositedEvent represents "Deposited" event emitted by the contract.
type DepositedEvent struct {
	Subscription util.Uint160
	From         util.Uint160
	Amount       *big.Int
}

// RenewedEvent represents "Renewed" event emitted by the contract.
type RenewedEvent struct {
	Subscription util.Uint160
	Caller       util.Uint160
	Receiver     util.Uint160
	Payout       *big.Int
	Fee          *big.Int
	Credential   util.Uint160
}

// DeactivatedEvent represents "Deactivated" event emitted by the contract.
type DeactivatedEvent struct {
	Subscription util.Uint160
	Caller       util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep11.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep11.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep11.NonDivisibleReader
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep11.BaseWriter
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep11.NewNonDivisibleReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep11ndt = nep11.NewNonDivisible(actor, hash)
	return &Contract{ContractReader{nep11ndt.NonDivisibleReader, actor, hash}, nep11ndt.BaseWriter, actor, hash}
}

// CounterOf invokes `counterOf` method of contract.
func (c *ContractReader) CounterOf(payee util.Uint160, amount *big.Int, duration *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "counterOf", payee, amount, duration))
}

// CounterAddress invokes `counterAddress` method of contract.
func (c *ContractReader) CounterAddress(payee util.Uint160, amount *big.Int, duration *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "counterAddress", payee, amount, duration))
}

// CredentialAddress invokes `credentialAddress` method of contract.
func (c *ContractReader) CredentialAddress(subscription util.Uint160, generation *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "credentialAddress", subscription, generation))
}

// Fee invokes `fee` method of contract.
func (c *ContractReader) Fee(amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fee", amount))
}

// GetSubscription invokes `getSubscription` method of contract.
func (c *ContractReader) GetSubscription(subscription util.Uint160) (*Subscription, error) {
	return itemToSubscription(unwrap.Item(c.invoker.Call(c.hash, "getSubscription", subscription)))
}

// ListPlans invokes `listPlans` method of contract.
func (c *ContractReader) ListPlans() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listPlans"))
}

// ListPlansExpanded is similar to ListPlans (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListPlansExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listPlans", _numOfIteratorItems))
}

// ListSubscriptions invokes `listSubscriptions` method of contract.
func (c *ContractReader) ListSubscriptions(payee util.Uint160, amount *big.Int, duration *big.Int) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listSubscriptions", payee, amount, duration))
}

// ListSubscriptionsExpanded is similar to ListSubscriptions (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListSubscriptionsExpanded(payee util.Uint160, amount *big.Int, duration *big.Int, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listSubscriptions", _numOfIteratorItems, payee, amount, duration))
}

// SubscriptionAddress invokes `subscriptionAddress` method of contract.
func (c *ContractReader) SubscriptionAddress(payee util.Uint160, amount *big.Int, duration *big.Int, count *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "subscriptionAddress", payee, amount, duration, count))
}

// VaultAddress invokes `vaultAddress` method of contract.
func (c *ContractReader) VaultAddress(subscription util.Uint160, currency util.Uint160) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "vaultAddress", subscription, currency))
}

// VaultBalance invokes `vaultBalance` method of contract.
func (c *ContractReader) VaultBalance(subscription util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "vaultBalance", subscription))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Close creates a transaction invoking `close` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Close(owner util.Uint160, subscription util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "close", owner, subscription)
}

// CloseTransaction creates a transaction invoking `close` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CloseTransaction(owner util.Uint160, subscription util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "close", owner, subscription)
}

// CloseUnsigned creates a transaction invoking `close` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CloseUnsigned(owner util.Uint160, subscription util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "close", nil, owner, subscription)
}

// Initialize creates a transaction invoking `initialize` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Initialize(payer util.Uint160, payee util.Uint160, amount *big.Int, duration *big.Int, currency util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initialize", payer, payee, amount, duration, currency)
}

// InitializeTransaction creates a transaction invoking `initialize` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeTransaction(payer util.Uint160, payee util.Uint160, amount *big.Int, duration *big.Int, currency util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initialize", payer, payee, amount, duration, currency)
}

// InitializeUnsigned creates a transaction invoking `initialize` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeUnsigned(payer util.Uint160, payee util.Uint160, amount *big.Int, duration *big.Int, currency util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initialize", nil, payer, payee, amount, duration, currency)
}

// Renew creates a transaction invoking `renew` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Renew(caller util.Uint160, subscription util.Uint160, receiver util.Uint160, generation *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "renew", caller, subscription, receiver, generation)
}

// RenewTransaction creates a transaction invoking `renew` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RenewTransaction(caller util.Uint160, subscription util.Uint160, receiver util.Uint160, generation *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "renew", caller, subscription, receiver, generation)
}

// RenewUnsigned creates a transaction invoking `renew` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RenewUnsigned(caller util.Uint160, subscription util.Uint160, receiver util.Uint160, generation *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "renew", nil, caller, subscription, receiver, generation)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nef []byte, manifest string, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nef, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nef []byte, manifest string, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nef, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nef []byte, manifest string, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nef, manifest, data)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(owner util.Uint160, subscription util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", owner, subscription, amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(owner util.Uint160, subscription util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", owner, subscription, amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(owner util.Uint160, subscription util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, owner, subscription, amount)
}

// itemToSubscription converts stack item into *Subscription.
func itemToSubscription(item stackitem.Item, err error) (*Subscription, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Subscription)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Subscription from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Subscription) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 11 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	if _, null := arr[index].(stackitem.Null); !null {
		var u util.Uint160
		u, err = itemToUint160(arr[index])
		if err != nil {
			return fmt.Errorf("field Credential: %w", err)
		}
		res.Credential = &u
	}

	index++
	res.Vault, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Vault: %w", err)
	}

	index++
	res.Currency, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Currency: %w", err)
	}

	index++
	res.Payee, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Payee: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Duration, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Duration: %w", err)
	}

	index++
	res.NextRenewalTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NextRenewalTime: %w", err)
	}

	index++
	res.RenewalCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RenewalCount: %w", err)
	}

	index++
	res.Payer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Payer: %w", err)
	}

	index++
	res.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	return nil
}

// FromStackItem retrieves fields of Plan from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Plan) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Payee, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Payee: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Duration, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Duration: %w", err)
	}

	return nil
}

// PlansFromItems converts items of ListPlans iterator into plans.
func PlansFromItems(items []stackitem.Item) ([]*Plan, error) {
	res := make([]*Plan, len(items))
	for i := range items {
		res[i] = new(Plan)
		if err := res[i].FromStackItem(items[i]); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// AddressesFromItems converts items of ListSubscriptions iterator into
// subscription addresses.
func AddressesFromItems(items []stackitem.Item) ([]util.Uint160, error) {
	res := make([]util.Uint160, len(items))
	for i := range items {
		var err error
		res[i], err = itemToUint160(items[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// InitializedEventsFromApplicationLog retrieves a set of all emitted events
// with "Initialized" name from the provided [result.ApplicationLog].
func InitializedEventsFromApplicationLog(log *result.ApplicationLog) ([]*InitializedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*InitializedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Initialized" {
				continue
			}
			event := new(InitializedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize InitializedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to InitializedEvent or
// returns an error if it's not possible to do to so.
func (e *InitializedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Subscription, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Subscription: %w", err)
	}

	index++
	e.Payer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Payer: %w", err)
	}

	index++
	e.Payee, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Payee: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Duration, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Duration: %w", err)
	}

	index++
	e.Currency, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Currency: %w", err)
	}

	return nil
}

// DepositedEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposited" name from the provided [result.ApplicationLog].
func DepositedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposited" {
				continue
			}
			event := new(DepositedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositedEvent or
// returns an error if it's not possible to do to so.
func (e *DepositedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Subscription, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Subscription: %w", err)
	}

	index++
	e.From, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RenewedEventsFromApplicationLog retrieves a set of all emitted events
// with "Renewed" name from the provided [result.ApplicationLog].
func RenewedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RenewedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RenewedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Renewed" {
				continue
			}
			event := new(RenewedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RenewedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RenewedEvent or
// returns an error if it's not possible to do to so.
func (e *RenewedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Subscription, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Subscription: %w", err)
	}

	index++
	e.Caller, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	index++
	e.Receiver, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Receiver: %w", err)
	}

	index++
	e.Payout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Payout: %w", err)
	}

	index++
	e.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	index++
	e.Credential, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Credential: %w", err)
	}

	return nil
}

// DeactivatedEventsFromApplicationLog retrieves a set of all emitted events
// with "Deactivated" name from the provided [result.ApplicationLog].
func DeactivatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DeactivatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DeactivatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deactivated" {
				continue
			}
			event := new(DeactivatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DeactivatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DeactivatedEvent or
// returns an error if it's not possible to do to so.
func (e *DeactivatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Subscription, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Subscription: %w", err)
	}

	index++
	e.Caller, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	return nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}
