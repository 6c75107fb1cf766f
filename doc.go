// Package percolate estimates the site percolation threshold of an n×n
// grid by Monte Carlo simulation.
//
// 🚀 What is percolate?
//
//	A small, zero-cgo toolkit that brings together:
//		• unionfind   — weighted quick-union with path halving over [0, n)
//		• percolation — the open/blocked grid with virtual top/bottom sites
//		• gridgraph   — BFS cluster analysis and 0-1 BFS "cheapest opening"
//		• stats       — repeated trials, mean, stddev and 95% interval
//
// Quick ASCII example ('#' blocked, '.' open, '~' full):
//
//	~##
//	~~#
//	#~#
//
// percolates: an open path joins the top row to the bottom row.
//
// Command line:
//
//	go run ./cmd/percolation 200 100 --seed 42 --workers 8
package percolate
