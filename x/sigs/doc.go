/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Every verified signature contributes its public key condition to the
context, which is how the proposal handlers learn who the caller is.
*/
package sigs
