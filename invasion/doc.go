// Package invasion implements the growth engine of invasion percolation.
//
// Overview:
//
//   - A cluster is seeded at the centre of an odd-sized grid.
//   - Each step invades the frontier cell of minimum resistance (ties broken
//     uniformly at random) and exposes its not-yet-invaded neighbours.
//   - The run terminates on the step whose newly invaded cell lies on the grid
//     boundary; the fraction of invaded cells is the run's density.
//
// The Engine is a three-state machine:
//
//	Seeding ──Seed()──▶ Growing ──Step()…──▶ Terminated
//	   └──────(1×1 grid: centre is on the boundary)──────▲
//
// API:
//
//	res, err := invasion.Run(size, spread, rng.FromSeed(42))
//
//	  - size:   odd positive side length (ErrInvalidParameter otherwise).
//	  - spread: resistances are drawn uniformly from [1, spread].
//	  - src:    injected uniform source, used for the fill and the tie-break.
//
// Options:
//
//   - WithOnInvade(fn):   hook called after every invasion, seed included.
//   - WithRecordOrder():  keep the invasion order in Result.Order.
//   - WithValueFunc(fn):  fill the grid from fn instead of src (Run only).
//   - WithContext(ctx):   checked between steps; a step is never interrupted.
//
// Errors:
//
//   - ErrInvalidParameter: malformed size/spread, reported before any work.
//   - ErrGridNotFresh:     New given a grid with invaded cells.
//   - ErrTerminated:       Step called after the run ended.
//   - Wrapped grid.ErrAlreadyInvaded, frontier.ErrInvariantViolation and
//     frontier.ErrEmpty: engine defects. They are fatal; the Engine stops in
//     the Terminated state and never retries.
//
// Concurrency:
//
//   - One Engine per run; it is not safe for concurrent use. Independent runs
//     may execute in parallel with private grids and sources (see package sweep).
package invasion
