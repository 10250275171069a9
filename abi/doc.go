// Package abi provides the interchange primitives used at every
// plugin/host boundary crossing.
//
// Native Go strings, slices and (value, ok) pairs carry no layout
// guarantee across independently built host and plugin artifacts. The
// types in this package pin the representation to a plain pointer plus
// length (or value plus flag) so both sides can agree on the shape
// without sharing a toolchain build.
package abi
