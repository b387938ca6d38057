// Package turing implements a linear-bounded Turing machine that runs the
// same rule set two ways: a forward parser that classifies an input tape as
// accepted or rejected, and a reverse generator that walks the predecessor
// relation backwards from the accept state to enumerate tapes the machine
// would accept.
//
// The machine is generic over three comparable types: the caller's state
// value S, the input-alphabet symbol I, and the output-alphabet symbol O.
// Reads may observe either kind of symbol; writes may only ever produce O.
package turing
