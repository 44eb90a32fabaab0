package pmatch

import (
	"github.com/npillmayer/pmatch/variant"
	"github.com/npillmayer/schuko"
)

// Configuration keys read by WithConfig.
const (
	KeyFastPath  = "pmatch.fastpath"  // enable table dispatch; default true
	KeyPrefilter = "pmatch.prefilter" // enable skipping of cases tied to other alternatives; default true
)

type props struct {
	fastpath  bool
	prefilter bool
	schema    any // *variant.Schema[S]
}

func defaultProps() props {
	return props{fastpath: true, prefilter: true}
}

// Option is a type to help configuring match expressions at creation time.
type Option struct {
	config func(props) props
}

// Sequential is an option to always try cases one after the other.
func Sequential() Option {
	return Option{config: func(p props) props {
		p.fastpath, p.prefilter = false, false
		return p
	}}
}

// Over is an option to describe subjects of an interface type S as a tagged
// union, e.g.
//
//	pmatch.Cases[Shape, float64](pmatch.Over(variant.Of[Shape](Circle{}, Square{})))
//
// Subjects of types implementing variant.Alternatives do not need this option.
func Over[S any](schema *variant.Schema[S]) Option {
	return Option{config: func(p props) props {
		p.schema = schema
		return p
	}}
}

// WithConfig is an option to read the strategy settings from a configuration.
// Keys not set in conf leave the defaults unchanged.
func WithConfig(conf schuko.Configuration) Option {
	return Option{config: func(p props) props {
		if conf == nil {
			return p
		}
		if conf.IsSet(KeyFastPath) {
			p.fastpath = conf.GetBool(KeyFastPath)
		}
		if conf.IsSet(KeyPrefilter) {
			p.prefilter = conf.GetBool(KeyPrefilter)
		}
		tracer().Debugf("match configuration: fastpath=%v, prefilter=%v", p.fastpath, p.prefilter)
		return p
	}}
}
