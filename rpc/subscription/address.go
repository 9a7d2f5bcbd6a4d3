package subscription

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/subscription-contract/contracts/subscription/subscriptionconst"
)

// ErrInvalidSeed is returned for negative integer derivation seeds.
var ErrInvalidSeed = errors.New("derivation seed out of range")

// CounterAddress computes the plan counter address the same way the
// contract deployed at contract does.
func CounterAddress(contract, payee util.Uint160, amount, duration int64) (util.Uint160, error) {
	seeds, err := le64(amount, duration)
	if err != nil {
		return util.Uint160{}, err
	}
	return derive(contract, subscriptionconst.CounterLabel, payee.BytesBE(), seeds), nil
}

// SubscriptionAddress computes address of the count-th subscription of the
// (payee, amount, duration) plan.
func SubscriptionAddress(contract, payee util.Uint160, amount, duration, count int64) (util.Uint160, error) {
	seeds, err := le64(amount, duration, count)
	if err != nil {
		return util.Uint160{}, err
	}
	return derive(contract, subscriptionconst.SubscriptionLabel, payee.BytesBE(), seeds), nil
}

// VaultAddress computes address of the subscription vault.
func VaultAddress(contract, subscription, currency util.Uint160) util.Uint160 {
	return derive(contract, subscriptionconst.VaultLabel, subscription.BytesBE(), currency.BytesBE())
}

// CredentialAddress computes identifier of the credential minted on the
// renewal with the given generation.
func CredentialAddress(contract, subscription util.Uint160, generation int64) (util.Uint160, error) {
	seeds, err := le64(generation)
	if err != nil {
		return util.Uint160{}, err
	}
	return derive(contract, subscriptionconst.CredentialLabel, subscription.BytesBE(), seeds), nil
}

// Fee returns the renewal fee paid to the caller for the given amount.
func Fee(amount *big.Int) *big.Int {
	fee := new(big.Int).Mul(amount, big.NewInt(subscriptionconst.FeeNumerator))
	return fee.Quo(fee, big.NewInt(subscriptionconst.FeeDenominator))
}

func le64(vals ...int64) ([]byte, error) {
	res := make([]byte, 0, len(vals)*subscriptionconst.SeedLength)
	for _, v := range vals {
		if v < 0 {
			return nil, ErrInvalidSeed
		}
		res = binary.LittleEndian.AppendUint64(res, uint64(v))
	}
	return res, nil
}

func derive(contract util.Uint160, label string, seeds ...[]byte) util.Uint160 {
	data := append(contract.BytesBE(), label...)
	for _, s := range seeds {
		data = append(data, s...)
	}
	return hash.Hash160(data)
}
