// Package credholder is a test contract holding subscription credentials.
package credholder

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	lastKey  = "last"
	countKey = "count"
)

// Receipt describes the last received credential.
type Receipt struct {
	Issuer     interop.Hash160
	From       interop.Hash160
	Credential []byte
}

// OnNEP11Payment accepts exactly one non-divisible token.
func OnNEP11Payment(from interop.Hash160, amount int, tokenID []byte, data any) {
	if amount != 1 {
		panic("wrong amount")
	}
	ctx := storage.GetContext()
	storage.Put(ctx, lastKey, std.Serialize(Receipt{
		Issuer:     runtime.GetCallingScriptHash(),
		From:       from,
		Credential: tokenID,
	}))

	var count int
	if val := storage.Get(ctx, countKey); val != nil {
		count = val.(int)
	}
	storage.Put(ctx, countKey, count+1)
}

// Last returns the last received credential.
func Last() Receipt {
	val := storage.Get(storage.GetReadOnlyContext(), lastKey)
	if val == nil {
		return Receipt{}
	}
	return std.Deserialize(val.([]byte)).(Receipt)
}

// Count returns the number of received credentials.
func Count() int {
	val := storage.Get(storage.GetReadOnlyContext(), countKey)
	if val == nil {
		return 0
	}
	return val.(int)
}
