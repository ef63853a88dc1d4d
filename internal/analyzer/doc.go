// Package analyzer validates a VAR declaration statement and builds its
// symbol table.
//
// Analyze is a single-pass automaton over the token stream: grammar checks,
// semantic checks (identifier length, reserved words, duplicates, array
// bounds) and table construction happen together, and the first violation
// ends the run. Nothing is shared between calls.
package analyzer
