// Package sweep runs many independent invasion percolation trials and
// summarizes their densities.
//
// Each trial owns its grid, frontier and engine, and draws from a random
// stream derived from (Config.Seed, trial index). Trials therefore produce the
// same results whatever the worker count or scheduling order.
//
// Concurrency is bounded with errgroup.Group.SetLimit; the first failing trial
// cancels the remaining ones through the group context.
package sweep
