/*

Package quorum defines interfaces used throughout the engine, such as: storage,
transactions, handlers, identities and context helpers.

The engine authorizes actions by quorum. A fixed set of validators proposes
actions, approves them and, once enough distinct validators approved, any
caller may execute the action exactly once. The validator set and the quorum
threshold are changed through the same pipeline, by proposals targeting the
engine itself. Look into x/validators and x/proposals for the rules, and into
app for the serialized, atomic entry points.

*/
package quorum
