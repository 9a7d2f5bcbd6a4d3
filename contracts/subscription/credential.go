package subscription

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
	"github.com/nspcc-dev/subscription-contract/common"
	"github.com/nspcc-dev/subscription-contract/contracts/subscription/subscriptionconst"
)

// Symbol returns NEP-11 token symbol of subscription credentials.
func Symbol() string {
	return symbol
}

// Decimals returns zero, credentials are non-divisible.
func Decimals() int {
	return 0
}

// TotalSupply returns the number of credentials in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return getTotalSupply(ctx)
}

// OwnerOf returns the owner of the specified credential.
func OwnerOf(tokenID []byte) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getCredential(ctx, tokenID).Owner
}

// Properties returns the subscription and the generation of the credential.
func Properties(tokenID []byte) map[string]any {
	ctx := storage.GetReadOnlyContext()
	cr := getCredential(ctx, tokenID)
	return map[string]any{
		"name":         symbol + " #" + std.Itoa(cr.Generation, 10),
		"subscription": cr.Subscription,
		"generation":   cr.Generation,
	}
}

// BalanceOf returns the number of credentials owned by the specified owner.
func BalanceOf(owner interop.Hash160) int {
	checkHash160(owner)
	ctx := storage.GetReadOnlyContext()
	return balanceOf(ctx, owner)
}

// Tokens returns iterator over identifiers of all credentials.
func Tokens() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{prefixCredential}, storage.KeysOnly|storage.RemovePrefix)
}

// TokensOf returns iterator over credentials owned by the specified owner.
func TokensOf(owner interop.Hash160) iterator.Iterator {
	checkHash160(owner)
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{prefixAccountToken}, owner...), storage.ValuesOnly)
}

// Transfer transfers the credential to a new owner. Ownership of the current
// credential is ownership of the subscription.
func Transfer(to interop.Hash160, tokenID []byte, data any) bool {
	checkHash160(to)
	ctx := storage.GetContext()
	cr := getCredential(ctx, tokenID)
	from := cr.Owner
	if !runtime.CheckWitness(from) {
		return false
	}
	if !util.Equals(from, to) {
		cr.Owner = to
		common.SetSerialized(ctx, credentialKey(tokenID), cr)

		updateBalance(ctx, tokenID, from, -1)
		updateBalance(ctx, tokenID, to, +1)
	}
	postTransfer(from, to, tokenID, data)
	return true
}

// mintCredential issues the single unit of the credential and freezes its
// supply. id is passed as is to keep token ID a ByteString.
func mintCredential(ctx storage.Context, id, subscription interop.Hash160, generation int, owner interop.Hash160) {
	frozenKey := append([]byte{prefixFrozen}, id...)
	if storage.Get(ctx, frozenKey) != nil {
		panic(subscriptionconst.ErrCredentialFrozen)
	}
	storage.Put(ctx, frozenKey, generation)

	common.SetSerialized(ctx, credentialKey(id), Credential{
		Owner:        owner,
		Subscription: subscription,
		Generation:   generation,
	})
	updateBalance(ctx, id, owner, +1)
	updateTotalSupply(ctx, +1)

	var from interop.Hash160
	postTransfer(from, owner, id, nil)
}

// burnCredential destroys the credential. Its supply stays frozen.
func burnCredential(ctx storage.Context, id interop.Hash160) {
	cr := getCredential(ctx, id)
	storage.Delete(ctx, credentialKey(id))
	updateBalance(ctx, id, cr.Owner, -1)
	updateTotalSupply(ctx, -1)

	var to interop.Hash160
	postTransfer(cr.Owner, to, id, nil)
}

func credentialKey(tokenID []byte) []byte {
	return append([]byte{prefixCredential}, tokenID...)
}

func getCredential(ctx storage.Context, tokenID []byte) Credential {
	val := common.GetSerialized(ctx, credentialKey(tokenID))
	if val == nil {
		panic("token not found")
	}
	return val.(Credential)
}

func balanceOf(ctx storage.Context, owner interop.Hash160) int {
	balance := storage.Get(ctx, append([]byte{prefixBalance}, owner...))
	if balance == nil {
		return 0
	}
	return balance.(int)
}

func updateBalance(ctx storage.Context, tokenID []byte, acc interop.Hash160, diff int) {
	balanceKey := append([]byte{prefixBalance}, acc...)
	balance := balanceOf(ctx, acc) + diff
	if balance == 0 {
		storage.Delete(ctx, balanceKey)
	} else {
		storage.Put(ctx, balanceKey, balance)
	}

	accountTokenKey := append(append([]byte{prefixAccountToken}, acc...), tokenID...)
	if diff < 0 {
		storage.Delete(ctx, accountTokenKey)
	} else {
		storage.Put(ctx, accountTokenKey, tokenID)
	}
}

// postTransfer sends Transfer notification to the network and calls onNEP11Payment
// method.
func postTransfer(from, to interop.Hash160, tokenID []byte, data any) {
	runtime.Notify("Transfer", from, to, 1, tokenID)
	if to != nil && management.GetContract(to) != nil {
		contract.Call(to, "onNEP11Payment", contract.All, from, 1, tokenID, data)
	}
}

func getTotalSupply(ctx storage.Context) int {
	val := storage.Get(ctx, []byte{prefixTotalSupply})
	return val.(int)
}

func updateTotalSupply(ctx storage.Context, diff int) {
	storage.Put(ctx, []byte{prefixTotalSupply}, getTotalSupply(ctx)+diff)
}
