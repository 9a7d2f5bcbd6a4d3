// Package versioned is a test contract storing records with a layout
// version byte the same way the Subscription contract does.
package versioned

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/subscription-contract/common"
	"github.com/nspcc-dev/subscription-contract/contracts/subscription/subscriptionconst"
)

// Put stores value with the current record version.
func Put(key []byte, value any) {
	common.SetVersioned(storage.GetContext(), key, subscriptionconst.RecordVersion, value)
}

// PutRaw stores raw bytes as is.
func PutRaw(key, raw []byte) {
	storage.Put(storage.GetContext(), key, raw)
}

// Get returns the record stored by key or nil.
func Get(key []byte) any {
	return common.GetVersioned(storage.GetReadOnlyContext(), key,
		subscriptionconst.RecordVersion, subscriptionconst.ErrCorruptRecord)
}
