/*
Package subscription implements Subscription contract, a recurring payment
protocol.

A payer initializes a subscription to a plan, which is a (payee, amount,
duration) triple, and deposits funds of the chosen NEP-17 currency to the
subscription vault. Once the renewal time comes anyone may renew the
subscription. If the vault holds at least amount, the payee gets amount
minus 1% fee, the fee goes to the caller and a new ownership credential is
minted to the current owner. Otherwise an active subscription is
deactivated without any transfers.

Subscription, its vault and its credentials have deterministic addresses
derived from the contract hash and the subscription parameters (see derive
package), so clients can compute them without contract invocation.

Credentials are NEP-11 non-divisible tokens issued by this contract. The
holder of the current credential owns the subscription: receives the next
credential, may withdraw funds from the vault or close the subscription.
Before the first renewal the subscription is owned by the payer.

# Contract notifications

Transfer notification. This is a NEP-11 standard notification produced on
credential mint, burn and transfer.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tokenId
	    type: ByteArray

Initialized notification. This notification is produced when a new
subscription is created.

	Initialized:
	  - name: subscription
	    type: Hash160
	  - name: payer
	    type: Hash160
	  - name: payee
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: duration
	    type: Integer
	  - name: currency
	    type: Hash160

Deposited notification. This notification is produced when funds are
transferred to the subscription vault.

	Deposited:
	  - name: subscription
	    type: Hash160
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

Renewed notification. This notification is produced on successful renewal.

	Renewed:
	  - name: subscription
	    type: Hash160
	  - name: caller
	    type: Hash160
	  - name: receiver
	    type: Hash160
	  - name: payout
	    type: Integer
	  - name: fee
	    type: Integer
	  - name: credential
	    type: Hash160

Deactivated notification. This notification is produced when renewal finds
insufficient vault funds.

	Deactivated:
	  - name: subscription
	    type: Hash160
	  - name: caller
	    type: Hash160

Withdrawn notification.

	Withdrawn:
	  - name: subscription
	    type: Hash160
	  - name: owner
	    type: Hash160
	  - name: amount
	    type: Integer

Closed notification.

	Closed:
	  - name: subscription
	    type: Hash160
	  - name: owner
	    type: Hash160
	  - name: refund
	    type: Integer
*/
package subscription
