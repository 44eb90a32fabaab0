package pmatch

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/pmatch/pattern"
	tp "github.com/xlab/treeprint"
)

// Describe returns a printable tree of the cases of e, for debugging.
func (e *Expr[S, R]) Describe() string {
	header := fmt.Sprintf("match %v → %v (%s)\n", reflect.TypeFor[S](), reflect.TypeFor[R](), e.strategy)
	printer := tp.New()
	for i, c := range e.cases {
		branch := printer.AddBranch(fmt.Sprintf("#%d %s", i, pattern.String(c.pat)))
		branch.AddNode("kind: " + c.pat.Kind().String())
		if binds := c.pat.Binds(); len(binds) > 0 {
			branch.AddNode(fmt.Sprintf("binds: %v", binds))
		}
		if e.ties != nil && e.ties[i] >= 0 {
			branch.AddNode("alternative: " + e.schema.Name(e.ties[i]))
		}
		branch.AddNode("handler: " + c.handler)
	}
	if e.fallback != nil {
		printer.AddNode("otherwise: " + e.fallback.handler)
	}
	return header + printer.String()
}
