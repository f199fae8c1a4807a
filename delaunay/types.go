package delaunay

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/trisphere/sphere"
)

// ErrNotOnSphere rejects a point whose distance to the sphere center differs
// from the radius by more than the configured tolerance. The triangulation
// is not mutated.
var ErrNotOnSphere = errors.New("delaunay: point is not on the sphere")

// LocateType classifies the outcome of point location.
type LocateType int

const (
	// LocateNotOnSphere: the query violates the on-sphere precondition.
	LocateNotOnSphere LocateType = iota
	// LocateVertex: the query coincides with an existing vertex.
	LocateVertex
	// LocateEdge: the query lies on an edge of the located face.
	LocateEdge
	// LocateFace: the query lies strictly inside the located face.
	LocateFace
	// LocateTooClose: the query is within the separation tolerance of an
	// existing vertex without being bit-identical to it.
	LocateTooClose
	// LocateOutsideConvexHull: dimension 1, the query falls on the
	// wrap-around arc of the cocircular cycle.
	LocateOutsideConvexHull
	// LocateOutsideAffineHull: the query extends the affine hull of the
	// current configuration (always the case below dimension 1).
	LocateOutsideAffineHull
)

func (lt LocateType) String() string {
	switch lt {
	case LocateNotOnSphere:
		return "NotOnSphere"
	case LocateVertex:
		return "Vertex"
	case LocateEdge:
		return "Edge"
	case LocateFace:
		return "Face"
	case LocateTooClose:
		return "TooClose"
	case LocateOutsideConvexHull:
		return "OutsideConvexHull"
	case LocateOutsideAffineHull:
		return "OutsideAffineHull"
	}

	return "Unknown"
}

const (
	// defaultOnSphereEps is the relative tolerance of the on-sphere check:
	// |dist² - radius²| ≤ eps·radius².
	defaultOnSphereEps = 1e-10

	// defaultSeparation is the relative separation under which a query is
	// classified TooClose to an existing vertex, as a fraction of the
	// radius.
	defaultSeparation = 0x1p-23
)

// Options configures a Triangulation. Construct with DefaultOptions and the
// With... functional options.
type Options struct {
	// Sphere fixes the center and radius all predicates are relative to.
	Sphere sphere.Sphere

	// OnSphereEps is the relative tolerance of the on-sphere precondition.
	OnSphereEps float64

	// Separation is the distance, as a fraction of the radius, under which
	// an inserted point is treated as coinciding with an existing vertex.
	Separation float64

	// Logger receives diagnostics from the validity oracle. Defaults to a
	// no-op logger.
	Logger *zap.Logger

	// Seed drives the random shuffle of bulk insertion.
	Seed uint64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options used when none are given: the unit
// sphere, default tolerances, a no-op logger.
func DefaultOptions() Options {
	return Options{
		Sphere:      sphere.UnitSphere(),
		OnSphereEps: defaultOnSphereEps,
		Separation:  defaultSeparation,
		Logger:      zap.NewNop(),
		Seed:        1,
	}
}

// WithSphere sets the sphere the triangulation lives on.
func WithSphere(s sphere.Sphere) Option {
	return func(o *Options) { o.Sphere = s }
}

// WithOnSphereEps sets the relative tolerance of the on-sphere check.
func WithOnSphereEps(eps float64) Option {
	return func(o *Options) { o.OnSphereEps = eps }
}

// WithSeparation sets the relative vertex-separation tolerance.
func WithSeparation(sep float64) Option {
	return func(o *Options) { o.Separation = sep }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSeed sets the shuffle seed of bulk insertion.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}
