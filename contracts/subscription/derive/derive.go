/*
Package derive computes addresses controlled by the Subscription contract.

Every address is RIPEMD160(SHA256(contract ‖ label ‖ seeds)), where contract
is the hash of the executing contract and integer seeds are 8-byte
little-endian values in [0, 2^63). No private key exists for such addresses,
the only proof of control is an Authority value which can be obtained from
this package exclusively.
*/
package derive

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/subscription-contract/contracts/subscription/subscriptionconst"
)

// ErrInvalidSeed is thrown when an integer seed can't be encoded.
const ErrInvalidSeed = "derivation seed out of range"

// Authority is a capability over a derived address.
type Authority struct {
	address interop.Hash160
}

// Address returns derived address.
func (a Authority) Address() interop.Hash160 {
	return a.address
}

// Controls checks whether addr is the derived address.
func (a Authority) Controls(addr interop.Hash160) bool {
	return addr != nil && a.address.Equals(addr)
}

// Counter derives address of the per-plan subscription counter.
func Counter(payee interop.Hash160, amount, duration int) Authority {
	seed := append([]byte(subscriptionconst.CounterLabel), payee...)
	seed = append(seed, LE64(amount)...)
	seed = append(seed, LE64(duration)...)
	return derive(seed)
}

// Subscription derives address of the count-th subscription of the plan.
func Subscription(payee interop.Hash160, amount, duration, count int) Authority {
	seed := append([]byte(subscriptionconst.SubscriptionLabel), payee...)
	seed = append(seed, LE64(amount)...)
	seed = append(seed, LE64(duration)...)
	seed = append(seed, LE64(count)...)
	return derive(seed)
}

// Vault derives address of the subscription escrow denominated in currency.
func Vault(subscription, currency interop.Hash160) Authority {
	seed := append([]byte(subscriptionconst.VaultLabel), subscription...)
	seed = append(seed, currency...)
	return derive(seed)
}

// Credential derives identifier of the ownership token minted on the
// renewal with the given generation number.
func Credential(subscription interop.Hash160, generation int) Authority {
	seed := append([]byte(subscriptionconst.CredentialLabel), subscription...)
	seed = append(seed, LE64(generation)...)
	return derive(seed)
}

// LE64 encodes n as 8-byte little-endian value.
func LE64(n int) []byte {
	if n < 0 {
		panic(ErrInvalidSeed)
	}
	b := convert.ToBytes(n)
	if len(b) > subscriptionconst.SeedLength {
		panic(ErrInvalidSeed)
	}
	for len(b) < subscriptionconst.SeedLength {
		b = append(b, []byte{0}...)
	}
	return b
}

func derive(seed []byte) Authority {
	data := append([]byte(runtime.GetExecutingScriptHash()), seed...)
	return Authority{address: crypto.Ripemd160(crypto.Sha256(data))}
}
