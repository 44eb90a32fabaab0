package pmatch

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/pmatch/variant"
)

// Strategy is the way a match expression is evaluated.
type Strategy uint8

const (
	StrategySequential   Strategy = iota // try cases in order
	StrategyVariantTable                 // dispatch on the tag of a tagged union
	StrategyPrefilter                    // try cases in order, skipping cases tied to other alternatives
	StrategyLiteralTable                 // look up the subject among literals
)

func (s Strategy) String() string {
	switch s {
	case StrategySequential:
		return "sequential"
	case StrategyVariantTable:
		return "variant-table"
	case StrategyPrefilter:
		return "variant-prefilter"
	case StrategyLiteralTable:
		return "literal-table"
	}
	return fmt.Sprintf("strategy(%d)", s)
}

// plan chooses the evaluation strategy for e and prepares its tables.
// Alternatives which cannot be resolved to exactly one tag are reported,
// whether or not a fast path is enabled.
func (e *Expr[S, R]) plan(p props) error {
	sch, err := schemaFor[S](p)
	if err != nil {
		return err
	}
	if sch != nil {
		e.schema = sch
		ties, simple, err := resolveTies(e.cases, sch)
		if err != nil {
			return err
		}
		switch {
		case simple && p.fastpath:
			e.tagTable(ties)
			return nil
		case p.prefilter && anyTied(ties):
			e.ties = ties
			e.strategy = StrategyPrefilter
			return nil
		}
	}
	if p.fastpath && literalsOnly(e.cases) {
		e.literalTable()
	}
	return nil
}

func schemaFor[S any](p props) (*variant.Schema[S], error) {
	if p.schema != nil {
		sch, ok := p.schema.(*variant.Schema[S])
		if !ok {
			return nil, errors.Wrapf(variant.ErrSchema, "schema %v for subjects of type %v",
				p.schema, reflect.TypeFor[S]())
		}
		if err := sch.Err(); err != nil {
			return nil, err
		}
		return sch, nil
	}
	sch, _ := variant.Resolve[S]()
	return sch, nil
}

// resolveTies finds the alternative each case is tied to. simple is true if
// every case is a wildcard or a test for an alternative whose handler takes no
// bound values.
func resolveTies[S, R any](cases []Case[S, R], sch *variant.Schema[S]) ([]int, bool, error) {
	ties := make([]int, len(cases))
	simple := true
	var errs []error
	for i, c := range cases {
		ties[i] = -1
		if c.isWildcard() {
			continue
		}
		tie, ok := pattern.TieOf(c.pat)
		if !ok {
			simple = false
			continue
		}
		inx := tie.Index
		if tie.Type != nil {
			if loose(sch, tie.Type) { // type test may hold for more than one alternative
				simple = false
				continue
			}
			var err error
			if inx, err = sch.Index(tie.Type); err != nil {
				errs = append(errs, errors.Wrapf(err, "case #%d %s", i, c))
				continue
			}
		} else if err := sch.CheckIndex(inx); err != nil {
			errs = append(errs, errors.Wrapf(err, "case #%d %s", i, c))
			continue
		}
		ties[i] = inx
		if !tie.Simple || c.form == formArgs {
			simple = false
		}
	}
	return ties, simple, combineErrors(errs)
}

// loose is true if a test for type t does not denote a single alternative:
// t is an interface type, or t implements an interface payload type.
func loose[S any](sch *variant.Schema[S], t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return true
	}
	for i := 0; i < sch.Len(); i++ {
		if a := sch.Alternative(i); a.Kind() == reflect.Interface && t.Implements(a) {
			return true
		}
	}
	return false
}

func anyTied(ties []int) bool {
	for _, t := range ties {
		if t >= 0 {
			return true
		}
	}
	return false
}

func (e *Expr[S, R]) tagTable(ties []int) {
	e.byTag = make([]int, e.schema.Len())
	for i := range e.byTag {
		e.byTag[i] = -1
	}
	e.noTag = -1
	for i, c := range e.cases {
		if c.isWildcard() {
			for t := range e.byTag {
				if e.byTag[t] < 0 {
					e.byTag[t] = i
				}
			}
			e.noTag = i
			break
		}
		if e.byTag[ties[i]] < 0 {
			e.byTag[ties[i]] = i
		}
	}
	e.strategy = StrategyVariantTable
}

// literalsOnly is true if every case is a keyed literal or a wildcard, and
// subjects may safely be used as map keys.
func literalsOnly[S, R any](cases []Case[S, R]) bool {
	st := reflect.TypeFor[S]()
	if st.Kind() == reflect.Interface || !st.Comparable() {
		return false
	}
	keyed := false
	for _, c := range cases {
		if c.isWildcard() {
			continue
		}
		if _, ok := c.pat.(pattern.Keyed); !ok || c.pat.Kind() != pattern.KindLiteral {
			return false
		}
		keyed = true
	}
	return keyed
}

func (e *Expr[S, R]) literalTable() {
	e.literals = make(map[any]int, len(e.cases))
	e.orElse = -1
	for i, c := range e.cases {
		if c.isWildcard() {
			e.orElse = i
			break
		}
		k := c.pat.(pattern.Keyed).Key()
		if _, dup := e.literals[k]; !dup {
			e.literals[k] = i
		}
	}
	e.strategy = StrategyLiteralTable
}
