// Package match finds the structural patterns the rewrite engine
// cannot see at the token level: kernel launch expressions, dynamic
// shared-memory declarations, and device-side function calls. One
// Match carries exactly one variant; the engine resolves them in a
// fixed priority order.
package match

import (
	"hipify/internal/source"
)

// Kind tags the variant a Match carries.
type Kind uint8

const (
	// KindLaunch is a <<<...>>> kernel launch expression.
	KindLaunch Kind = iota
	// KindSharedArray is an extern incomplete-array declaration in
	// shared memory.
	KindSharedArray
	// KindDeviceCall is a call to a device or kernel function.
	KindDeviceCall
)

// Match is a tagged variant: exactly one payload is non-nil,
// corresponding to Kind.
type Match struct {
	Kind       Kind
	Launch     *Launch
	Shared     *SharedArray
	DeviceCall *DeviceCall
}

// ConfigArg is one of the up-to-four launch configuration arguments.
// A defaulted argument was omitted in the source and supplied by the
// compiler; the rewrite spells it as the literal 0.
type ConfigArg struct {
	Range     Range
	Defaulted bool
}

// Launch describes one kernel launch expression.
type Launch struct {
	// Expr covers the whole launch, from the callee's first byte
	// through the closing parenthesis of the argument list.
	Expr Range
	// Head covers the part the rewrite replaces: from the callee's
	// first byte through the opening parenthesis of the argument list.
	// The arguments themselves stay in place, so token-level rewrites
	// inside them still apply.
	Head Range
	// Callee covers the callee expression.
	Callee Range
	// CalleeIsTemplate marks an explicit template instantiation; the
	// rewritten callee is parenthesized so the comma in the template
	// argument list cannot split macro arguments.
	CalleeIsTemplate bool
	// Config holds grid, block, shared-memory size and stream, in that
	// order. The last two may be defaulted.
	Config [4]ConfigArg
	// Args covers the ordinary call arguments, first to last.
	Args Range
	// HasArgs reports whether the launch has any ordinary arguments.
	HasArgs bool
}

// SharedArray describes an extern, incomplete-array declaration living
// in shared memory: extern __shared__ T name[];
type SharedArray struct {
	// Prefix is the type-and-storage prefix to replace: from the first
	// byte of the declaration through the closing ']'.
	Prefix source.Span
	// TypeName is the element type's resolved spelling; empty when the
	// type could not be named, in which case the rewrite declines.
	TypeName string
	// VarName is the declared variable name.
	VarName string
}

// DeviceCall describes a call whose callee is a device or kernel
// function (and not also a host function).
type DeviceCall struct {
	// Name is the callee's declared name.
	Name string
	// NameSpan covers the callee name at the call site.
	NameSpan source.Span
}
