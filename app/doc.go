/*
Package app contains the host side of the engine.

BaseApp and StoreApp adapt a decorated handler to the ABCI interface,
so the engine can run behind a tendermint node. Engine exposes the same
handlers as a serialized in-process API, where every call is applied
atomically or not at all.
*/
package app
