// Package deferred wraps an ordinary Go function so that its invocation is
// suspended until every argument operation is ready, producing a new
// operation.Operation that carries either the function's return value or
// the first propagated failure.
//
// Defer1 through Defer4 cover one through four arguments; there is no
// Defer0, and arities above four are expressed by chaining — the result of
// one deferral, wrapped with From, becomes an argument to another.
package deferred
