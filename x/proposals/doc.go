/*
Package proposals implements the lifecycle of calls that need the approval
of a quorum of validators before they run.

A validator proposes a call, a target address with an opaque payload. The
proposal is stored under an identifier derived from proposer, target and
payload, so the same proposer cannot queue an identical call twice.
Validators approve and revoke proposals. Once the number of distinct
approvals reaches the quorum, read at execution time, anyone can execute
the proposal, which runs it exactly once.

A proposal that targets the engine address carries a governance
instruction. It is executed by the validators extension with a capability
that exists only during that execution. Any other target is called through
a Dispatcher. Execution is atomic: if the call fails nothing it changed is
persisted and the proposal stays pending.
*/
package proposals
