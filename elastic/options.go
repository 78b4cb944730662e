// Package elastic: the Options bundle and the name-based factory.
//
// Direct construction (NewDTW, NewMSM, …) stays the primary API; the
// factory exists for config-driven callers that carry a measure name as
// data and want one knob struct covering the whole family.
package elastic

// Options collects every tunable of the measure family. Each measure
// reads only the fields it defines; the rest are ignored.
type Options struct {
	// Window is the shared Sakoe–Chiba band (-1 disables it).
	Window int

	// G is the ERP gap anchor value.
	G float64

	// Epsilon is the LCSS matching threshold.
	Epsilon float64

	// Penalty is the MSM split/merge cost c and the TWE edit penalty λ.
	Penalty float64

	// Stiffness is the TWE temporal rigidity ν.
	Stiffness float64

	// Steepness is the WDTW/WDDTW logistic weight slope g.
	Steepness float64
}

// DefaultOptions returns the customary defaults of the measure family:
// unconstrained band, zero ERP gap, unit thresholds and penalties, mild
// TWE stiffness and WDTW steepness.
func DefaultOptions() Options {
	return Options{
		Window:    -1,
		G:         0,
		Epsilon:   1,
		Penalty:   1,
		Stiffness: 0.001,
		Steepness: 0.05,
	}
}

// New resolves a canonical measure name ("dtw", "msm", …) against o.
// Every built-in is path-capable, so the factory returns a PathMetric.
//
// Errors: ErrUnknownMeasure. Parameter values are validated lazily on
// the first Distance/Alignment call, like the direct constructors.
func New(name string, o Options) (PathMetric, error) {
	switch name {
	case "euclidean":
		return NewEuclidean(), nil
	case "dtw":
		return NewDTW(o.Window), nil
	case "ddtw":
		return NewDDTW(o.Window), nil
	case "wdtw":
		return NewWDTW(o.Window, o.Steepness), nil
	case "wddtw":
		return NewWDDTW(o.Window, o.Steepness), nil
	case "lcss":
		return NewLCSS(o.Window, o.Epsilon), nil
	case "erp":
		return NewERP(o.Window, o.G), nil
	case "msm":
		return NewMSM(o.Window, o.Penalty), nil
	case "twe":
		return NewTWE(o.Window, o.Stiffness, o.Penalty), nil
	default:
		return nil, ErrUnknownMeasure
	}
}
