package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrCommitteeWitnessFailed appears when the method must be
// called by the committee but was not.
const ErrCommitteeWitnessFailed = "not witnessed by committee"

// CheckWitnessWithPanic checks witness of the passed caller and panics with
// the given message on fail.
func CheckWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}

// CommitteeAddress returns multi address of the current committee, the
// threshold is `M = N/2+1`.
func CommitteeAddress() interop.Hash160 {
	committee := neo.GetCommittee()
	if committee == nil {
		panic("failed to get committee")
	}
	return contract.CreateMultisigAccount(len(committee)/2+1, committee)
}

// CheckCommittee panics if the script container is not signed by the committee.
func CheckCommittee() {
	CheckWitnessWithPanic(CommitteeAddress(), ErrCommitteeWitnessFailed)
}
