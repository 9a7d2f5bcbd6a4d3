/*
Package renewer implements a keeper renewing due subscriptions of the
Subscription contract.

Renewal is permissionless and the caller earns the renewal fee, so anyone
may run a keeper. Every tick the keeper walks the plan registry, selects
subscriptions whose renewal time has come and sends renew transactions for
them. Registries are read through session iterators page by page, so plans
and subscriptions are never truncated. Failed renewals are not retried until
the next tick.
*/
package renewer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/subscription-contract/rpc/subscription"
	"go.uber.org/zap"
)

// Reader is the part of the Subscription contract read by the keeper.
// [subscription.ContractReader] implements it.
type Reader interface {
	ListPlans() (uuid.UUID, result.Iterator, error)
	ListSubscriptions(payee util.Uint160, amount *big.Int, duration *big.Int) (uuid.UUID, result.Iterator, error)
	GetSubscription(subscription util.Uint160) (*subscription.Subscription, error)
	VaultBalance(subscription util.Uint160) (*big.Int, error)
	OwnerOf(token []byte) (util.Uint160, error)
}

// Iterators traverses iterators returned by the Reader.
// [github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker.Invoker] implements it.
type Iterators interface {
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
	TerminateSession(sessionID uuid.UUID) error
}

// Writer sends renew transactions. [subscription.Contract] implements it.
type Writer interface {
	Renew(caller util.Uint160, subscription util.Uint160, receiver util.Uint160, generation *big.Int) (util.Uint256, uint32, error)
}

// Action is a decision made for a single subscription.
type Action int

const (
	// Skip means nothing to do now.
	Skip Action = iota
	// Renew means the subscription is funded and can be renewed.
	Renew
	// Deactivate means the subscription is active but underfunded.
	Deactivate
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case Renew:
		return "renew"
	case Deactivate:
		return "deactivate"
	default:
		return "skip"
	}
}

// Decide returns an action for the subscription with the given vault
// balance at the given time.
func Decide(sub *subscription.Subscription, balance *big.Int, now time.Time) Action {
	if big.NewInt(now.Unix()).Cmp(sub.NextRenewalTime) < 0 {
		return Skip
	}
	if balance.Cmp(sub.Amount) < 0 {
		if sub.Active {
			return Deactivate
		}
		return Skip
	}
	return Renew
}

// Prm groups parameters of the Renewer.
type Prm struct {
	Logger *zap.Logger

	Reader    Reader
	Iterators Iterators
	Writer    Writer

	// Caller is the account signing renew transactions and receiving fees.
	Caller util.Uint160

	// BatchSize is the number of items fetched from a registry iterator
	// per request.
	BatchSize int

	// Metrics are optional.
	Metrics *Metrics

	// Clock is optional, time.Now is used by default.
	Clock func() time.Time
}

// Renewer renews due subscriptions.
type Renewer struct {
	log     *zap.Logger
	reader  Reader
	iters   Iterators
	writer  Writer
	caller  util.Uint160
	batch   int
	metrics *Metrics
	clock   func() time.Time
}

// DefaultBatchSize is used when Prm.BatchSize is not set. It matches the
// default iterator page limit of neo-go RPC servers.
const DefaultBatchSize = 100

// New creates Renewer from the given parameters.
func New(prm Prm) (*Renewer, error) {
	switch {
	case prm.Logger == nil:
		return nil, errors.New("missing logger")
	case prm.Reader == nil:
		return nil, errors.New("missing contract reader")
	case prm.Iterators == nil:
		return nil, errors.New("missing iterator traverser")
	case prm.Writer == nil:
		return nil, errors.New("missing contract writer")
	}

	r := &Renewer{
		log:     prm.Logger,
		reader:  prm.Reader,
		iters:   prm.Iterators,
		writer:  prm.Writer,
		caller:  prm.Caller,
		batch:   prm.BatchSize,
		metrics: prm.Metrics,
		clock:   prm.Clock,
	}
	if r.batch <= 0 {
		r.batch = DefaultBatchSize
	}
	if r.clock == nil {
		r.clock = time.Now
	}
	return r, nil
}

// Run calls Tick every interval until the context is done.
func (r *Renewer) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		n, err := r.Tick()
		if err != nil {
			r.log.Error("renewal round failed", zap.Error(err))
		} else {
			r.log.Debug("renewal round finished", zap.Int("sent", n))
		}

		select {
		case <-ctx.Done():
			r.log.Info("renewer stopped", zap.Error(ctx.Err()))
			return
		case <-t.C:
		}
	}
}

// Tick walks all plans once and sends renew transactions for due
// subscriptions. It returns the number of transactions sent. Errors of
// particular subscriptions are logged and do not abort the round.
func (r *Renewer) Tick() (int, error) {
	items, err := r.collect(r.reader.ListPlans())
	if err != nil {
		return 0, fmt.Errorf("list plans: %w", err)
	}
	plans, err := subscription.PlansFromItems(items)
	if err != nil {
		return 0, fmt.Errorf("decode plans: %w", err)
	}

	var sent int
	for _, p := range plans {
		l := r.log.With(zap.Stringer("payee", p.Payee),
			zap.Stringer("amount", p.Amount), zap.Stringer("duration", p.Duration))

		items, err := r.collect(r.reader.ListSubscriptions(p.Payee, p.Amount, p.Duration))
		if err != nil {
			l.Warn("failed to list subscriptions of the plan", zap.Error(err))
			r.metrics.incErrors()
			continue
		}
		addrs, err := subscription.AddressesFromItems(items)
		if err != nil {
			l.Warn("failed to decode subscriptions of the plan", zap.Error(err))
			r.metrics.incErrors()
			continue
		}

		for _, addr := range addrs {
			ok, err := r.process(addr)
			if err != nil {
				l.Warn("failed to renew subscription", zap.Stringer("subscription", addr), zap.Error(err))
				r.metrics.incErrors()
				continue
			}
			if ok {
				sent++
			}
		}
	}
	return sent, nil
}

// collect reads all the iterator items in batches and terminates the session.
func (r *Renewer) collect(sess uuid.UUID, iter result.Iterator, err error) ([]stackitem.Item, error) {
	if err != nil {
		return nil, err
	}
	if sess != uuid.Nil {
		defer func() {
			if err := r.iters.TerminateSession(sess); err != nil {
				r.log.Debug("failed to terminate iterator session", zap.Stringer("session", sess), zap.Error(err))
			}
		}()
	}

	var res []stackitem.Item
	items, err := r.iters.TraverseIterator(sess, &iter, r.batch)
	for ; err == nil && len(items) > 0; items, err = r.iters.TraverseIterator(sess, &iter, r.batch) {
		res = append(res, items...)
	}
	if err != nil {
		return nil, fmt.Errorf("traverse iterator: %w", err)
	}
	return res, nil
}

func (r *Renewer) process(addr util.Uint160) (bool, error) {
	sub, err := r.reader.GetSubscription(addr)
	if err != nil {
		return false, fmt.Errorf("get subscription: %w", err)
	}
	balance, err := r.reader.VaultBalance(addr)
	if err != nil {
		return false, fmt.Errorf("get vault balance: %w", err)
	}

	action := Decide(sub, balance, r.clock())
	if action == Skip {
		return false, nil
	}

	receiver, err := r.receiver(sub)
	if err != nil {
		return false, err
	}

	txHash, vub, err := r.writer.Renew(r.caller, addr, receiver, sub.RenewalCount)
	if err != nil {
		return false, fmt.Errorf("send renew transaction: %w", err)
	}

	r.metrics.incSent(action)
	r.log.Info("renew transaction sent",
		zap.Stringer("subscription", addr),
		zap.Stringer("action", action),
		zap.Stringer("tx", txHash),
		zap.Uint32("vub", vub))
	return true, nil
}

// receiver returns the owner of the current credential or the payer if no
// credential has been minted yet.
func (r *Renewer) receiver(sub *subscription.Subscription) (util.Uint160, error) {
	if sub.Credential == nil {
		return sub.Payer, nil
	}
	owner, err := r.reader.OwnerOf(sub.Credential.BytesBE())
	if err != nil {
		return util.Uint160{}, fmt.Errorf("get credential owner: %w", err)
	}
	return owner, nil
}
