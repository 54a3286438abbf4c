/*
Package server implements the commands shared by engine daemons: init and
start to run a node, validate to check genesis files, and getblock and
retry to replay a stored block against the application state.
*/
package server
