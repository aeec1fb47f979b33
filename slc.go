package slc

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// ErrNonFinite is returned by Cluster when the input holds NaN or ±Inf.
var ErrNonFinite = errors.New("slc: points must be finite")

// Config controls how the merge tree is built.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// CenterRule chooses the center of a merge node. "midpoint" averages the
	// two children's centers; "weighted" averages every leaf under the node.
	// The rule changes which pairs are closest after the first merges, so the
	// two rules can produce different trees. Default: "midpoint".
	CenterRule CenterRule

	// Logger receives a debug summary of each run. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns a Config with the midpoint center rule and no logger.
func DefaultConfig() Config {
	return Config{
		CenterRule: CenterMidpoint,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.CenterRule == "" {
		cfg.CenterRule = CenterMidpoint
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if _, err := ParseCenterRule(string(cfg.CenterRule)); err != nil {
		return err
	}
	return nil
}

// checkFinite returns ErrNonFinite wrapped with the first offending index.
func checkFinite(points []float64) error {
	for i, v := range points {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: point %d is %v", ErrNonFinite, i, v)
		}
	}
	return nil
}

// Cluster builds the single-linkage merge tree of points.
// The result holds 2n-1 nodes: the n leaves first, in input order, then one
// node per merge in the order the merges happened. Empty input yields an empty
// dendrogram. Returns an error if the config is invalid or any point is not
// finite.
func Cluster(points []float64, cfg Config) (*Dendrogram, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := checkFinite(points); err != nil {
		return nil, err
	}
	return build(points, cfg), nil
}

// Build is Cluster with the default config and no input validation. It never
// fails; for input containing NaN or ±Inf the tree shape is unspecified.
func Build(points []float64) *Dendrogram {
	return build(points, DefaultConfig())
}

func build(points []float64, cfg Config) *Dendrogram {
	pts := make([]float64, len(points))
	copy(pts, points)

	order, rank := Rank(pts)
	e := newEngine(pts, order, rank, cfg)
	e.run()

	return &Dendrogram{
		Points: pts,
		Nodes:  e.arena.nodes,
		Order:  order,
		Stats:  e.stats,
	}
}
