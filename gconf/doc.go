/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each package keeps a single configuration object, stored under the "_c:<pkg>"
key. The initial value is loaded from the "conf" section of the genesis file
with InitConfig.
*/
package gconf
