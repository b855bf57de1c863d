package impl

import (
	"context"

	"bikeroute/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// improvementEpsilonMeters keeps zero-length swaps between duplicate stops
// from counting as improvements.
const improvementEpsilonMeters = 1e-6

// tour holds the distance matrix for one optimization. Node 0 is the start,
// nodes 1..n are the stops in input order and, for a fixed end, node n+1 is
// the end.
type tour struct {
	dist      [][]float64
	stopCount int
	closing   int // node the tour ends on after the last stop, -1 for an open path
}

func newTour(start entity.Waypoint, stops []entity.Waypoint, end *entity.Waypoint, roundTrip bool) *tour {
	points := make([]orb.Point, 0, len(stops)+2)
	points = append(points, start.Point())
	for _, s := range stops {
		points = append(points, s.Point())
	}

	closing := -1
	switch {
	case roundTrip:
		closing = 0
	case end != nil:
		points = append(points, end.Point())
		closing = len(points) - 1
	}

	dist := make([][]float64, len(points))
	for i := range points {
		dist[i] = make([]float64, len(points))
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := geo.DistanceHaversine(points[i], points[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return &tour{dist: dist, stopCount: len(stops), closing: closing}
}

// identity is the stop order as given.
func (t *tour) identity() []int {
	order := make([]int, t.stopCount)
	for i := range order {
		order[i] = i + 1
	}

	return order
}

// length is the travel distance in meters of start -> order -> closing node.
func (t *tour) length(order []int) float64 {
	total := 0.0
	prev := 0
	for _, node := range order {
		total += t.dist[prev][node]
		prev = node
	}
	if t.closing >= 0 {
		total += t.dist[prev][t.closing]
	}

	return total
}

// cumulative returns the distance travelled on arrival at each stop of order.
func (t *tour) cumulative(order []int) []float64 {
	out := make([]float64, len(order))
	total := 0.0
	prev := 0
	for i, node := range order {
		total += t.dist[prev][node]
		out[i] = total
		prev = node
	}

	return out
}

// nearestNeighbor builds a greedy order from the start. Ties go to the stop
// that appears first in the input.
func (t *tour) nearestNeighbor() []int {
	order := make([]int, 0, t.stopCount)
	visited := make([]bool, t.stopCount+1)
	current := 0

	for len(order) < t.stopCount {
		best := -1
		for node := 1; node <= t.stopCount; node++ {
			if visited[node] {
				continue
			}
			if best == -1 || t.dist[current][node] < t.dist[current][best] {
				best = node
			}
		}

		visited[best] = true
		order = append(order, best)
		current = best
	}

	return order
}

// twoOpt reverses stop segments while that shortens the tour. The start and
// the closing node never move. It stops after maxPasses full passes or when
// ctx is done, returning the best order found so far.
func (t *tour) twoOpt(ctx context.Context, order []int, maxPasses int) ([]int, int) {
	// path = start, stops..., closing node when present
	path := make([]int, 0, len(order)+2)
	path = append(path, 0)
	path = append(path, order...)
	if t.closing >= 0 {
		path = append(path, t.closing)
	}
	last := len(order) // index of the last stop in path

	passes := 0
	for passes < maxPasses {
		if ctx.Err() != nil {
			break
		}
		passes++

		improved := false
		for i := 1; i < last; i++ {
			for k := i + 1; k <= last; k++ {
				if t.reversalGain(path, i, k) > improvementEpsilonMeters {
					reverse(path, i, k)
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	out := make([]int, len(order))
	copy(out, path[1:last+1])

	return out, passes
}

// reversalGain is how many meters reversing path[i..k] saves.
func (t *tour) reversalGain(path []int, i, k int) float64 {
	a, b, c := path[i-1], path[i], path[k]

	before := t.dist[a][b]
	after := t.dist[a][c]
	if k+1 < len(path) {
		d := path[k+1]
		before += t.dist[c][d]
		after += t.dist[b][d]
	}

	return before - after
}

func reverse(path []int, i, k int) {
	for i < k {
		path[i], path[k] = path[k], path[i]
		i++
		k--
	}
}
