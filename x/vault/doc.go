/*
Package vault keeps value balances of the engine and of the targets it
calls. Value enters the engine through DepositMsg and leaves it only when an
approved proposal is executed with a value forwarding policy.
*/
package vault
