package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// TransferFromSelf transfers amount of NEP-17 token from the executing
// contract to the receiver. Zero amount is skipped. It panics with failMsg
// if the token contract rejects the transfer.
func TransferFromSelf(token, to interop.Hash160, amount int, failMsg string) {
	if amount == 0 {
		return
	}
	ok := contract.Call(token, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), to, amount, nil).(bool)
	if !ok {
		panic(failMsg)
	}
}
