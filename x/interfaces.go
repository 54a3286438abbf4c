/*
Package x contains the helpers shared by the engine extensions: the
authentication abstraction and validation interfaces.
*/
package x

// Validater is any struct that can be validated.
// Not the same as a Validator, which votes on the blocks.
type Validater interface {
	Validate() error
}
