package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/subscription-contract/rpc/subscription"
	"github.com/stretchr/testify/require"
)

const (
	subscriptionPath = "../contracts/subscription"
	credholderPath   = "../internal/testcontracts/credholder"
)

type subscriptionEnv struct {
	c      *neotest.ContractInvoker
	holder util.Uint160
	gas    util.Uint160
	neo    util.Uint160
}

func newSubscriptionEnv(t *testing.T) *subscriptionEnv {
	e := newExecutor(t)

	ctr := neotest.CompileFile(t, e.CommitteeHash, subscriptionPath, path.Join(subscriptionPath, "config.yml"))
	e.DeployContract(t, ctr, nil)

	holder := neotest.CompileFile(t, e.CommitteeHash, credholderPath, path.Join(credholderPath, "config.yml"))
	e.DeployContract(t, holder, nil)

	return &subscriptionEnv{
		c:      e.CommitteeInvoker(ctr.Hash),
		holder: holder.Hash,
		gas:    e.NativeHash(t, nativenames.Gas),
		neo:    e.NativeHash(t, nativenames.Neo),
	}
}

// initialize creates a subscription signed by payer and checks its address.
func (s *subscriptionEnv) initialize(t *testing.T, payer neotest.Signer, payee util.Uint160, amount, duration int64, currency util.Uint160) util.Uint160 {
	count := s.counterOf(t, payee, amount, duration)
	addr, err := subscription.SubscriptionAddress(s.c.Hash, payee, amount, duration, count)
	require.NoError(t, err)

	s.c.WithSigners(payer).Invoke(t, stackitem.Make(addr), "initialize",
		payer.ScriptHash(), payee, amount, duration, currency)
	return addr
}

func (s *subscriptionEnv) deposit(t *testing.T, from neotest.Signer, addr util.Uint160, amount int64) {
	s.c.NewInvoker(s.gas, from).Invoke(t, true, "transfer",
		from.ScriptHash(), s.c.Hash, amount, addr)
}

func (s *subscriptionEnv) counterOf(t *testing.T, payee util.Uint160, amount, duration int64) int64 {
	stack, err := s.c.TestInvoke(t, "counterOf", payee, amount, duration)
	require.NoError(t, err)
	return stack.Pop().BigInt().Int64()
}

func (s *subscriptionEnv) get(t *testing.T, addr util.Uint160) *subscription.Subscription {
	stack, err := s.c.TestInvoke(t, "getSubscription", addr)
	require.NoError(t, err)

	var res subscription.Subscription
	require.NoError(t, res.FromStackItem(stack.Pop().Item()))
	return &res
}

func (s *subscriptionEnv) vaultBalance(t *testing.T, addr util.Uint160) int64 {
	stack, err := s.c.TestInvoke(t, "vaultBalance", addr)
	require.NoError(t, err)
	return stack.Pop().BigInt().Int64()
}

func (s *subscriptionEnv) iterate(t *testing.T, method string, args ...any) []stackitem.Item {
	stack, err := s.c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return iteratorToArray(stack.Pop().Value().(*storage.Iterator))
}

// skipTime adds an empty block with the timestamp shifted by ms.
func (s *subscriptionEnv) skipTime(t *testing.T, ms uint64) {
	top := s.c.TopBlock(t)
	b := s.c.NewUnsignedBlock(t)
	b.Timestamp = top.Timestamp + ms
	require.NoError(t, s.c.Chain.AddBlock(s.c.SignBlock(b)))
}

func applicationLog(aer *state.AppExecResult) *result.ApplicationLog {
	return &result.ApplicationLog{
		Container:  aer.Container,
		Executions: []state.Execution{aer.Execution},
	}
}

func TestSubscriptionGeneric(t *testing.T) {
	s := newSubscriptionEnv(t)

	s.c.Invoke(t, "SUBS", "symbol")
	s.c.Invoke(t, 0, "decimals")
	s.c.Invoke(t, 0, "totalSupply")
	s.c.Invoke(t, 1, "fee", 100)
	s.c.Invoke(t, 0, "fee", 99)

	acc := s.c.NewAccount(t)
	s.c.WithSigners(acc).InvokeFail(t, "not witnessed by committee", "update", nil, nil, nil)
}

func TestSubscriptionDerivation(t *testing.T) {
	s := newSubscriptionEnv(t)
	payee := util.Uint160{1, 2, 3}

	counter, err := subscription.CounterAddress(s.c.Hash, payee, 100, 10)
	require.NoError(t, err)
	s.c.Invoke(t, stackitem.Make(counter), "counterAddress", payee, 100, 10)

	sub, err := subscription.SubscriptionAddress(s.c.Hash, payee, 100, 10, 7)
	require.NoError(t, err)
	s.c.Invoke(t, stackitem.Make(sub), "subscriptionAddress", payee, 100, 10, 7)

	vault := subscription.VaultAddress(s.c.Hash, sub, s.gas)
	s.c.Invoke(t, stackitem.Make(vault), "vaultAddress", sub, s.gas)

	cred, err := subscription.CredentialAddress(s.c.Hash, sub, 3)
	require.NoError(t, err)
	s.c.Invoke(t, stackitem.Make(cred), "credentialAddress", sub, 3)

	s.c.InvokeFail(t, "derivation seed out of range", "subscriptionAddress", payee, 100, 10, -1)
}

func TestSubscriptionInitialize(t *testing.T) {
	s := newSubscriptionEnv(t)

	payer := s.c.NewAccount(t)
	payee := s.c.NewAccount(t).ScriptHash()
	cPayer := s.c.WithSigners(payer)

	t.Run("validation", func(t *testing.T) {
		cPayer.InvokeFail(t, "invalid amount", "initialize",
			payer.ScriptHash(), payee, 0, 10, s.gas)
		cPayer.InvokeFail(t, "invalid duration", "initialize",
			payer.ScriptHash(), payee, 100, -1, s.gas)
		cPayer.InvokeFail(t, "invalid address", "initialize",
			payer.ScriptHash(), []byte{1, 2, 3}, 100, 10, s.gas)
		cPayer.InvokeFail(t, "invalid currency contract", "initialize",
			payer.ScriptHash(), payee, 100, 10, s.holder)
		cPayer.InvokeFail(t, "invalid currency contract", "initialize",
			payer.ScriptHash(), payee, 100, 10, util.Uint160{9, 9, 9})

		other := s.c.NewAccount(t)
		s.c.WithSigners(other).InvokeFail(t, "missing signature", "initialize",
			payer.ScriptHash(), payee, 100, 10, s.gas)
	})

	require.Zero(t, s.counterOf(t, payee, 100, 10))

	first := s.initialize(t, payer, payee, 100, 10, s.gas)
	second := s.initialize(t, payer, payee, 100, 10, s.gas)
	require.NotEqual(t, first, second)
	require.EqualValues(t, 2, s.counterOf(t, payee, 100, 10))

	other := s.initialize(t, payer, payee, 200, 10, s.neo)
	require.EqualValues(t, 1, s.counterOf(t, payee, 200, 10))

	sub := s.get(t, first)
	require.False(t, sub.Active)
	require.Nil(t, sub.Credential)
	require.Equal(t, subscription.VaultAddress(s.c.Hash, first, s.gas), sub.Vault)
	require.Equal(t, s.gas, sub.Currency)
	require.Equal(t, payee, sub.Payee)
	require.EqualValues(t, 100, sub.Amount.Int64())
	require.EqualValues(t, 10, sub.Duration.Int64())
	require.Zero(t, sub.NextRenewalTime.Sign())
	require.Zero(t, sub.RenewalCount.Sign())
	require.Equal(t, payer.ScriptHash(), sub.Payer)
	require.Zero(t, sub.Index.Sign())
	require.EqualValues(t, 1, s.get(t, second).Index.Int64())
	require.Zero(t, s.vaultBalance(t, first))

	plans, err := subscription.PlansFromItems(s.iterate(t, "listPlans"))
	require.NoError(t, err)
	require.Len(t, plans, 2)
	for _, p := range plans {
		require.Equal(t, payee, p.Payee)
		require.EqualValues(t, 10, p.Duration.Int64())
	}

	addrs, err := subscription.AddressesFromItems(s.iterate(t, "listSubscriptions", payee, 100, 10))
	require.NoError(t, err)
	require.ElementsMatch(t, []util.Uint160{first, second}, addrs)

	addrs, err = subscription.AddressesFromItems(s.iterate(t, "listSubscriptions", payee, 200, 10))
	require.NoError(t, err)
	require.Equal(t, []util.Uint160{other}, addrs)

	s.c.InvokeFail(t, "not initialized", "getSubscription", util.Uint160{1})
}

func TestSubscriptionDeposit(t *testing.T) {
	s := newSubscriptionEnv(t)

	payer := s.c.NewAccount(t)
	payee := s.c.NewAccount(t).ScriptHash()
	addr := s.initialize(t, payer, payee, 100, 10, s.gas)

	gas := s.c.NewInvoker(s.gas, payer)
	h := gas.Invoke(t, true, "transfer", payer.ScriptHash(), s.c.Hash, 150, addr)
	require.EqualValues(t, 150, s.vaultBalance(t, addr))

	ds, err := subscription.DepositedEventsFromApplicationLog(applicationLog(s.c.CheckHalt(t, h, stackitem.Make(true))))
	require.NoError(t, err)
	require.Len(t, ds, 1)
	require.Equal(t, addr, ds[0].Subscription)
	require.Equal(t, payer.ScriptHash(), ds[0].From)
	require.EqualValues(t, 150, ds[0].Amount.Int64())

	t.Run("anyone can fund", func(t *testing.T) {
		s.deposit(t, s.c.NewAccount(t), addr, 50)
		require.EqualValues(t, 200, s.vaultBalance(t, addr))
	})

	t.Run("unknown subscription", func(t *testing.T) {
		gas.InvokeFail(t, "not initialized", "transfer",
			payer.ScriptHash(), s.c.Hash, 10, util.Uint160{1, 2, 3})
	})

	t.Run("wrong currency", func(t *testing.T) {
		neoSub := s.initialize(t, payer, payee, 1, 10, s.neo)
		gas.InvokeFail(t, "payment from unexpected contract", "transfer",
			payer.ScriptHash(), s.c.Hash, 10, neoSub)
	})

	t.Run("direct call", func(t *testing.T) {
		s.c.WithSigners(payer).InvokeFail(t, "payment from unexpected contract", "onNEP17Payment",
			payer.ScriptHash(), 10, addr)
	})
}

func TestSubscriptionRenew(t *testing.T) {
	s := newSubscriptionEnv(t)

	payer := s.c.NewAccount(t)
	payeeAcc := s.c.NewAccount(t)
	payee := payeeAcc.ScriptHash()
	keeper := s.c.NewAccount(t)
	cKeeper := s.c.WithSigners(keeper)

	addr := s.initialize(t, payer, payee, 100, 10, s.gas)

	t.Run("not funded", func(t *testing.T) {
		cKeeper.InvokeFail(t, "already expired", "renew",
			keeper.ScriptHash(), addr, payer.ScriptHash(), 0)
	})

	s.deposit(t, payer, addr, 150)

	cKeeper.InvokeFail(t, "generation mismatch", "renew",
		keeper.ScriptHash(), addr, payer.ScriptHash(), 1)
	cKeeper.InvokeFail(t, "invalid receiver", "renew",
		keeper.ScriptHash(), addr, keeper.ScriptHash(), 0)
	s.c.WithSigners(payer).InvokeFail(t, "missing signature", "renew",
		keeper.ScriptHash(), addr, payer.ScriptHash(), 0)

	payeeBalance := s.c.Chain.GetUtilityTokenBalance(payee)
	keeperBalance := s.c.Chain.GetUtilityTokenBalance(keeper.ScriptHash())
	cred, err := subscription.CredentialAddress(s.c.Hash, addr, 0)
	require.NoError(t, err)

	h := cKeeper.Invoke(t, 1, "renew", keeper.ScriptHash(), addr, payer.ScriptHash(), 0)
	renewTime := s.c.TopBlock(t).Timestamp / 1000

	tx, _, err := s.c.Chain.GetTransaction(h)
	require.NoError(t, err)
	expected := new(big.Int).Sub(keeperBalance, big.NewInt(tx.SystemFee+tx.NetworkFee))
	expected.Add(expected, big.NewInt(1))
	require.Zero(t, expected.Cmp(s.c.Chain.GetUtilityTokenBalance(keeper.ScriptHash())),
		"keeper balance %s, expected %s", s.c.Chain.GetUtilityTokenBalance(keeper.ScriptHash()), expected)

	rs, err := subscription.RenewedEventsFromApplicationLog(applicationLog(s.c.CheckHalt(t, h, stackitem.Make(1))))
	require.NoError(t, err)
	require.Len(t, rs, 1)
	require.Equal(t, addr, rs[0].Subscription)
	require.Equal(t, keeper.ScriptHash(), rs[0].Caller)
	require.Equal(t, payer.ScriptHash(), rs[0].Receiver)
	require.EqualValues(t, 99, rs[0].Payout.Int64())
	require.EqualValues(t, 1, rs[0].Fee.Int64())
	require.Equal(t, cred, rs[0].Credential)

	require.Zero(t, new(big.Int).Add(payeeBalance, big.NewInt(99)).Cmp(s.c.Chain.GetUtilityTokenBalance(payee)))
	require.EqualValues(t, 50, s.vaultBalance(t, addr))

	sub := s.get(t, addr)
	require.True(t, sub.Active)
	require.NotNil(t, sub.Credential)
	require.Equal(t, cred, *sub.Credential)
	require.EqualValues(t, 1, sub.RenewalCount.Int64())
	require.EqualValues(t, renewTime+10, sub.NextRenewalTime.Int64())

	s.c.Invoke(t, stackitem.Make(payer.ScriptHash()), "ownerOf", cred.BytesBE())
	s.c.Invoke(t, 1, "balanceOf", payer.ScriptHash())
	s.c.Invoke(t, 1, "totalSupply")

	cKeeper.InvokeFail(t, "too early", "renew",
		keeper.ScriptHash(), addr, payer.ScriptHash(), 1)
	// A replayed renewal with the spent generation is still reported as early.
	cKeeper.InvokeFail(t, "too early", "renew",
		keeper.ScriptHash(), addr, payer.ScriptHash(), 0)

	s.skipTime(t, 11_000)

	h = cKeeper.Invoke(t, 2, "renew", keeper.ScriptHash(), addr, payer.ScriptHash(), 1)
	ds, err := subscription.DeactivatedEventsFromApplicationLog(applicationLog(s.c.CheckHalt(t, h, stackitem.Make(2))))
	require.NoError(t, err)
	require.Len(t, ds, 1)
	require.Equal(t, keeper.ScriptHash(), ds[0].Caller)

	sub = s.get(t, addr)
	require.False(t, sub.Active)
	require.EqualValues(t, 1, sub.RenewalCount.Int64())
	require.EqualValues(t, 50, s.vaultBalance(t, addr))

	cKeeper.InvokeFail(t, "already expired", "renew",
		keeper.ScriptHash(), addr, payer.ScriptHash(), 1)

	s.deposit(t, payer, addr, 50)
	cKeeper.Invoke(t, 1, "renew", keeper.ScriptHash(), addr, payer.ScriptHash(), 1)
	require.Zero(t, s.vaultBalance(t, addr))

	next, err := subscription.CredentialAddress(s.c.Hash, addr, 1)
	require.NoError(t, err)
	require.Equal(t, next, *s.get(t, addr).Credential)
	s.c.Invoke(t, 2, "totalSupply")
	s.c.Invoke(t, 2, "balanceOf", payer.ScriptHash())
}

func TestSubscriptionRenewZeroFee(t *testing.T) {
	s := newSubscriptionEnv(t)

	payer := s.c.NewAccount(t)
	payee := s.c.NewAccount(t).ScriptHash()
	keeper := s.c.NewAccount(t)

	addr := s.initialize(t, payer, payee, 50, 0, s.gas)
	s.deposit(t, payer, addr, 100)

	payeeBalance := s.c.Chain.GetUtilityTokenBalance(payee)
	h := s.c.WithSigners(keeper).Invoke(t, 1, "renew", keeper.ScriptHash(), addr, payer.ScriptHash(), 0)

	rs, err := subscription.RenewedEventsFromApplicationLog(applicationLog(s.c.CheckHalt(t, h, stackitem.Make(1))))
	require.NoError(t, err)
	require.EqualValues(t, 50, rs[0].Payout.Int64())
	require.Zero(t, rs[0].Fee.Sign())
	require.Zero(t, new(big.Int).Add(payeeBalance, big.NewInt(50)).Cmp(s.c.Chain.GetUtilityTokenBalance(payee)))

	// Zero duration plans are due in the next block.
	s.c.WithSigners(keeper).Invoke(t, 1, "renew", keeper.ScriptHash(), addr, payer.ScriptHash(), 1)
	require.Zero(t, s.vaultBalance(t, addr))
}

func TestSubscriptionCredentialTransfer(t *testing.T) {
	s := newSubscriptionEnv(t)

	payer := s.c.NewAccount(t)
	payee := s.c.NewAccount(t).ScriptHash()
	keeper := s.c.NewAccount(t)
	cPayer := s.c.WithSigners(payer)

	addr := s.initialize(t, payer, payee, 100, 0, s.gas)
	s.deposit(t, payer, addr, 300)
	s.c.WithSigners(keeper).Invoke(t, 1, "renew", keeper.ScriptHash(), addr, payer.ScriptHash(), 0)

	cred, err := subscription.CredentialAddress(s.c.Hash, addr, 0)
	require.NoError(t, err)

	buyer := s.c.NewAccount(t)
	s.c.WithSigners(buyer).Invoke(t, false, "transfer", buyer.ScriptHash(), cred.BytesBE(), nil)
	cPayer.Invoke(t, true, "transfer", buyer.ScriptHash(), cred.BytesBE(), nil)
	s.c.Invoke(t, stackitem.Make(buyer.ScriptHash()), "ownerOf", cred.BytesBE())

	t.Run("previous owner lost control", func(t *testing.T) {
		cPayer.InvokeFail(t, "caller is not the subscription owner", "withdraw",
			payer.ScriptHash(), addr, 10)
		cPayer.InvokeFail(t, "caller is not the subscription owner", "close",
			payer.ScriptHash(), addr)
		s.c.WithSigners(keeper).InvokeFail(t, "invalid receiver", "renew",
			keeper.ScriptHash(), addr, payer.ScriptHash(), 1)
	})

	s.c.WithSigners(buyer).Invoke(t, true, "transfer", s.holder, cred.BytesBE(), []byte("hello"))
	s.c.Invoke(t, stackitem.Make(s.holder), "ownerOf", cred.BytesBE())

	holder := s.c.CommitteeInvoker(s.holder)
	holder.Invoke(t, 1, "count")

	s.c.WithSigners(keeper).Invoke(t, 1, "renew", keeper.ScriptHash(), addr, s.holder, 1)
	holder.Invoke(t, 2, "count")

	next, err := subscription.CredentialAddress(s.c.Hash, addr, 1)
	require.NoError(t, err)
	holder.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(s.c.Hash),
		stackitem.Null{},
		stackitem.Make(next.BytesBE()),
	}), "last")
}

func TestSubscriptionWithdraw(t *testing.T) {
	s := newSubscriptionEnv(t)

	payer := s.c.NewAccount(t)
	payee := s.c.NewAccount(t).ScriptHash()
	cPayer := s.c.WithSigners(payer)

	addr := s.initialize(t, payer, payee, 100, 10, s.gas)
	s.deposit(t, payer, addr, 150)

	stranger := s.c.NewAccount(t)
	s.c.WithSigners(stranger).InvokeFail(t, "caller is not the subscription owner", "withdraw",
		stranger.ScriptHash(), addr, 10)
	s.c.WithSigners(stranger).InvokeFail(t, "missing signature", "withdraw",
		payer.ScriptHash(), addr, 10)
	cPayer.InvokeFail(t, "invalid amount", "withdraw", payer.ScriptHash(), addr, 0)
	cPayer.InvokeFail(t, "insufficient withdraw balance", "withdraw", payer.ScriptHash(), addr, 151)

	cPayer.Invoke(t, stackitem.Null{}, "withdraw", payer.ScriptHash(), addr, 40)
	require.EqualValues(t, 110, s.vaultBalance(t, addr))

	cPayer.Invoke(t, stackitem.Null{}, "withdraw", payer.ScriptHash(), addr, 110)
	require.Zero(t, s.vaultBalance(t, addr))

	keeper := s.c.NewAccount(t)
	s.c.WithSigners(keeper).InvokeFail(t, "already expired", "renew",
		keeper.ScriptHash(), addr, payer.ScriptHash(), 0)
}

func TestSubscriptionNEOVault(t *testing.T) {
	s := newSubscriptionEnv(t)

	payee := s.c.NewAccount(t).ScriptHash()
	keeper := s.c.NewAccount(t)
	neo := s.c.CommitteeInvoker(s.neo)

	addr := s.initialize(t, s.c.Committee, payee, 1, 0, s.neo)
	neo.Invoke(t, true, "transfer", s.c.CommitteeHash, s.c.Hash, 1000, addr)
	require.EqualValues(t, 1000, s.vaultBalance(t, addr))

	for i := 0; i < 5; i++ {
		s.c.AddNewBlock(t)
	}

	// Moving NEO out of the contract mints GAS to it.
	gasBefore := s.c.Chain.GetUtilityTokenBalance(s.c.Hash)
	s.c.Invoke(t, stackitem.Null{}, "withdraw", s.c.CommitteeHash, addr, 10)
	require.EqualValues(t, 990, s.vaultBalance(t, addr))
	require.Equal(t, 1, s.c.Chain.GetUtilityTokenBalance(s.c.Hash).Cmp(gasBefore))

	s.c.AddNewBlock(t)
	neo.Invoke(t, true, "transfer", s.c.CommitteeHash, s.c.Hash, 5, addr)
	require.EqualValues(t, 995, s.vaultBalance(t, addr))

	s.c.WithSigners(keeper).Invoke(t, 1, "renew", keeper.ScriptHash(), addr, s.c.CommitteeHash, 0)
	require.EqualValues(t, 994, s.vaultBalance(t, addr))
	s.c.NewInvoker(s.neo, keeper).Invoke(t, 1, "balanceOf", payee)
}

func TestSubscriptionClose(t *testing.T) {
	s := newSubscriptionEnv(t)

	payer := s.c.NewAccount(t)
	payee := s.c.NewAccount(t).ScriptHash()
	keeper := s.c.NewAccount(t)
	cPayer := s.c.WithSigners(payer)

	addr := s.initialize(t, payer, payee, 100, 10, s.gas)
	s.deposit(t, payer, addr, 130)
	s.c.WithSigners(keeper).Invoke(t, 1, "renew", keeper.ScriptHash(), addr, payer.ScriptHash(), 0)

	cred, err := subscription.CredentialAddress(s.c.Hash, addr, 0)
	require.NoError(t, err)

	s.c.WithSigners(keeper).InvokeFail(t, "caller is not the subscription owner", "close",
		keeper.ScriptHash(), addr)

	h := cPayer.Invoke(t, stackitem.Null{}, "close", payer.ScriptHash(), addr)
	aer := s.c.CheckHalt(t, h, stackitem.Null{})

	var closed *state.NotificationEvent
	for i := range aer.Events {
		if aer.Events[i].Name == "Closed" {
			closed = &aer.Events[i]
		}
	}
	require.NotNil(t, closed)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(addr),
		stackitem.Make(payer.ScriptHash()),
		stackitem.Make(30),
	}), closed.Item)

	s.c.InvokeFail(t, "not initialized", "getSubscription", addr)
	s.c.InvokeFail(t, "not initialized", "vaultBalance", addr)
	s.c.InvokeFail(t, "token not found", "ownerOf", cred.BytesBE())
	s.c.Invoke(t, 0, "totalSupply")
	s.c.Invoke(t, 0, "balanceOf", payer.ScriptHash())
	cPayer.InvokeFail(t, "not initialized", "close", payer.ScriptHash(), addr)

	require.EqualValues(t, 1, s.counterOf(t, payee, 100, 10))
	require.Empty(t, s.iterate(t, "listSubscriptions", payee, 100, 10))

	next := s.initialize(t, payer, payee, 100, 10, s.gas)
	require.NotEqual(t, addr, next)
}
