package check

import (
	"fmt"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/diag"
)

// report records a semantic error against n in the log.
func (c *checker) report(n ast.Node, cat diag.Category, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.trace.Debug("error", "code", cat.Code(), "category", cat.String(), "line", n.Span().Start.Line, "msg", msg)
	c.log.Add(n, cat, msg)
}

// warn appends a warning whose code comes from the "warning" catalog domain.
func (c *checker) warn(n ast.Node, key, format string, args ...any) {
	if !c.opts.Warnings {
		return
	}
	ce := diag.MustLookup("warning", key, "W0000", key)
	c.warnings = append(c.warnings, Warning{
		Span: n.Span(),
		Code: ce.ID,
		Msg:  fmt.Sprintf(format, args...),
	})
}
