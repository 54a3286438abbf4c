// Package utils provides the transaction decorators shared by every
// application stack: panic recovery, logging and savepoints.
package utils
