package core

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CountLiveNeighbors returns how many of the 8 Moore-neighborhood cells
// around (row, col) are alive. Under Wrap, coordinates are taken modulo
// the grid dimensions; under Bounded, out-of-range neighbors are skipped.
func CountLiveNeighbors(g *Grid, row, col int, topo Topology) int {
	rows, cols := g.rows, g.cols
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if topo == Wrap {
				nr = (nr + rows) % rows
				nc = (nc + cols) % cols
			} else if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			count += int(g.cells[nr*cols+nc])
		}
	}
	return count
}

// Step produces the next generation as a brand-new grid. Every cell is
// evaluated against the same input snapshot; the input grid is never
// written, so no cell can observe another cell's next state mid-step.
func Step(g *Grid, rules RuleSet, topo Topology) *Grid {
	next := g.Clear()
	stepRows(g, next, rules, topo, 0, g.rows)
	return next
}

// StepParallel computes the same next generation as Step, splitting the
// rows into bands across the available CPUs. Workers share the read-only
// input snapshot and write disjoint row ranges of the output, so the
// synchronous-update property is preserved.
func StepParallel(g *Grid, rules RuleSet, topo Topology) *Grid {
	next := g.Clear()
	var eg errgroup.Group
	workers := runtime.NumCPU()
	band := (g.rows + workers - 1) / workers
	for start := 0; start < g.rows; start += band {
		end := min(start+band, g.rows)
		eg.Go(func() error {
			stepRows(g, next, rules, topo, start, end)
			return nil
		})
	}
	// Workers never return errors; Wait is only the join point.
	_ = eg.Wait()
	return next
}

func stepRows(src, dst *Grid, rules RuleSet, topo Topology, fromRow, toRow int) {
	for r := fromRow; r < toRow; r++ {
		for c := 0; c < src.cols; c++ {
			n := CountLiveNeighbors(src, r, c, topo)
			idx := r*src.cols + c
			alive := src.cells[idx] == 1
			if (alive && rules.Survives(n)) || (!alive && rules.Born(n)) {
				dst.cells[idx] = 1
			}
		}
	}
}
