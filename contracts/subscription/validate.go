package subscription

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/subscription-contract/common"
	"github.com/nspcc-dev/subscription-contract/contracts/subscription/derive"
	"github.com/nspcc-dev/subscription-contract/contracts/subscription/subscriptionconst"
)

func checkHash160(acc interop.Hash160) {
	if acc == nil || len(acc) != interop.Hash160Len {
		panic(subscriptionconst.ErrInvalidAddress)
	}
}

func checkSigner(acc interop.Hash160) {
	common.CheckWitnessWithPanic(acc, subscriptionconst.ErrMissingSignature)
}

func checkWritable() {
	if contract.GetCallFlags()&contract.WriteStates == 0 {
		panic(subscriptionconst.ErrNotWritable)
	}
}

// checkDerivation panics if addr is not the one auth controls.
func checkDerivation(addr interop.Hash160, auth derive.Authority) {
	if !auth.Controls(addr) {
		panic(subscriptionconst.ErrInvalidProgramAddress)
	}
}

// checkCurrency panics if currency is not a deployed NEP-17 token.
func checkCurrency(currency interop.Hash160) {
	cs := management.GetContract(currency)
	if cs == nil {
		panic(subscriptionconst.ErrInvalidCurrency)
	}
	for _, s := range cs.Manifest.SupportedStandards {
		if s == nep17 {
			return
		}
	}
	panic(subscriptionconst.ErrInvalidCurrency)
}

// checkCallingCurrency panics if NEP-17 callback is invoked by any contract
// other than currency.
func checkCallingCurrency(currency interop.Hash160) {
	if !runtime.GetCallingScriptHash().Equals(currency) {
		panic(subscriptionconst.ErrUnexpectedPayment)
	}
}

// checkOwner panics with msg if acc does not own the subscription. Owner is
// the holder of the current credential or the payer before the first
// renewal.
func checkOwner(ctx storage.Context, sub Subscription, acc interop.Hash160, msg string) {
	if sub.Credential == nil {
		if !sub.Payer.Equals(acc) {
			panic(msg)
		}
		return
	}
	owner := getCredential(ctx, sub.Credential).Owner
	if !owner.Equals(acc) || balanceOf(ctx, acc) <= 0 {
		panic(msg)
	}
}
