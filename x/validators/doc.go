/*
Package validators maintains the electorate of the engine: the ordered set of
validator identities together with the quorum, the number of distinct
approvals a proposal needs before it can be executed.

The electorate is created once from genesis. After that it can only be
changed by the engine itself, when an approved proposal that targets the
engine address is executed. The executor is the only holder of an Authority
and mints a short lived Capability for the duration of such a call. Every
mutator of the Controller requires that capability, so a transaction sent
directly to the ChangeQuorumMsg, AddValidatorMsg or RemoveValidatorMsg
handlers fails with errors.ErrUnauthorized.

The invariant 0 < quorum <= len(members) is validated on every save.
*/
package validators
