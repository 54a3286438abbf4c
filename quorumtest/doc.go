/*
Package quorumtest provides mocks and helpers used when testing the engine
and its extensions.
*/
package quorumtest
