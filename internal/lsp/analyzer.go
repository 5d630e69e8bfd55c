package lsp

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/config"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// knownBlocks are the top-level blocks of a palette file.
var knownBlocks = map[string]bool{"meta": true, "palette": true, "export": true}

// AnalysisResult holds all information produced by analyzing a palette file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a resolved palette color at a specific source position.
type ColorLocation struct {
	Name    string // "palette.coral"
	Range   protocol.Range
	Color   color.Color
	Literal bool // true for a quoted color string, false for references and function calls
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses palette file content from memory and produces diagnostics
// and color locations. It collects ALL errors rather than short-circuiting
// on the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var paletteBody, exportBody *hclsyntax.Body
	for _, block := range body.Blocks {
		switch {
		case block.Type == "palette":
			paletteBody = block.Body
		case block.Type == "export":
			exportBody = block.Body
		case !knownBlocks[block.Type]:
			result.addWarning(block.DefRange(), fmt.Sprintf("unknown block %q (valid: meta, palette, export)", block.Type))
		}
	}

	if paletteBody == nil {
		result.addError(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "missing required palette block")
		return result
	}

	result.analyzePalette(paletteBody)
	if exportBody != nil {
		result.analyzeExport(exportBody)
	}

	return result
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(serverName),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(serverName),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(serverName),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// analyzePalette evaluates palette attributes in source order so later
// entries can reference earlier ones. An entry that fails to resolve is
// reported and left undefined; references to it are reported in turn.
func (r *AnalysisResult) analyzePalette(body *hclsyntax.Body) {
	for _, block := range body.Blocks {
		r.addError(block.DefRange(), fmt.Sprintf("palette.%s: nested blocks are not supported", block.Type))
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	defined := make(map[string]color.Color, len(attrs))
	for _, attr := range attrs {
		name := "palette." + attr.Name

		val, diags := attr.Expr.Value(config.EvalContext(defined))
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", name, diags.Error()))
			continue
		}

		c, err := config.ResolveColor(val)
		if err != nil {
			r.addError(attr.Expr.Range(), fmt.Sprintf("%s: %s", name, err))
			continue
		}

		defined[attr.Name] = c
		r.Colors = append(r.Colors, ColorLocation{
			Name:    name,
			Range:   hclRangeToLSP(attr.Expr.Range()),
			Color:   c,
			Literal: isLiteralString(attr.Expr),
		})
	}
}

// analyzeExport validates the export formats list. Other export attributes
// are plain strings and need no checking beyond HCL syntax.
func (r *AnalysisResult) analyzeExport(body *hclsyntax.Body) {
	attr, ok := body.Attributes["formats"]
	if !ok {
		return
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		r.addError(attr.SrcRange, fmt.Sprintf("evaluating export.formats: %s", diags.Error()))
		return
	}
	if !val.Type().IsTupleType() && !val.Type().IsListType() {
		r.addError(attr.Expr.Range(), "export.formats: expected a list of format names")
		return
	}

	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.Type() != cty.String || v.IsNull() {
			r.addError(attr.Expr.Range(), "export.formats: format names must be strings")
			continue
		}
		if _, err := color.ParseFormat(v.AsString()); err != nil {
			r.addError(attr.Expr.Range(), "export.formats: "+err.Error())
		}
	}
}

// isLiteralString returns true if the expression is a quoted string with no
// interpolation, the only kind of value a color picker can rewrite in place.
func isLiteralString(expr hclsyntax.Expression) bool {
	tmpl, ok := expr.(*hclsyntax.TemplateExpr)
	return ok && tmpl.IsStringLiteral()
}
