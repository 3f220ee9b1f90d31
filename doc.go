// Package lvlroot finds zeros of real-valued functions of one variable —
// from a single seed point, with no derivatives and no pre-validated
// interval required.
//
// 🚀 What is lvlroot?
//
//	A small, focused numeric library that brings together:
//		• Bracket search: expand outward from a seed until a sign change appears
//		• Brent's method: inverse-quadratic / secant steps with a bisection safety net
//		• Expression functions: compile "exp(x) - 10" into a solvable f(x)
//
// ✨ Why choose lvlroot?
//
//   - Seed, not interval – callers supply one starting point; bracketing is automatic
//   - Guaranteed termination – every interpolation step is bounded by bisection
//   - Typed failures – bracket exhaustion, bad evaluations and iteration budgets
//     are distinct, inspectable errors, never one generic "did not converge"
//   - Observable – an OnIteration hook exposes every intermediate bracket
//
// Under the hood, everything is organized under two subpackages:
//
//	brent/ — bracket search, the Brent solver loop, and the FindRoot entry point
//	expr/  — govaluate-backed compilation of textual expressions in x
//
// Quick sketch:
//
//	seed ──▶ FindBracket ──▶ [a,b] with f(a)·f(b) ≤ 0 ──▶ Solve ──▶ root
//
// Dive into the per-package doc.go files for contracts, complexity notes and
// the full error taxonomy.
//
//	go get github.com/katalvlaran/lvlroot/brent
package lvlroot
