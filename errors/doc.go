/*
Package errors implements the error kinds used across the engine.

Every failure returned by a handler should wrap one of the root errors
declared with Register. Root errors carry a code that is exposed to ABCI
clients, so that callers can tell failures apart. Extensions declare their own
root errors in their errors.go file, for example x/validators and x/proposals.

Create errors with ErrXyz.New("...") or errors.Wrap(err, "...") at the point of
failure so that a stack trace is attached. Only the innermost wrap records the
stack.

Formatting verbs:
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created

Validation of messages and models that can fail in many places at once should
collect the errors with Append. Field names the attribute an error belongs to.
*/
package errors
