package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/lacuna-lang/lacuna/pkg/report"
	"github.com/lacuna-lang/lacuna/pkg/statics"
	"github.com/lacuna-lang/lacuna/pkg/syntax"
)

// brokenLet is `let x : Bool = 1 in y`: the definition clashes with the
// annotation and the body is unbound.
func brokenLet() syntax.Exp {
	return syntax.Let{
		NodeIDs: syntax.IDsOf(1),
		Pat: syntax.AnnPat{
			NodeIDs: syntax.IDsOf(2),
			Pat:     syntax.VarPat{NodeIDs: syntax.IDsOf(3), Name: "x"},
			Ann:     syntax.NamedType{NodeIDs: syntax.IDsOf(4), Name: "Bool"},
		},
		Def:  syntax.Int{NodeIDs: syntax.IDsOf(5), Value: 1},
		Body: syntax.Var{NodeIDs: syntax.IDsOf(6), Name: "y"},
	}
}

func TestDiagnostics(t *testing.T) {
	r := report.New(statics.Check(brokenLet()))
	diags := r.Diagnostics()
	require.Len(t, diags, 2)

	require.Equal(t, syntax.ID(5), diags[0].ID)
	require.Equal(t, "int", diags[0].Form)
	require.Equal(t, "type Int is inconsistent with expected type Bool", diags[0].Message)
	require.Equal(t, "?", diags[0].Fixed)

	require.Equal(t, syntax.ID(6), diags[1].ID)
	require.Equal(t, "var", diags[1].Form)
	require.Equal(t, "unbound variable", diags[1].Message)
	require.Equal(t, "?", diags[1].Fixed)
}

func TestDiagnosticsCollapseSharedIDs(t *testing.T) {
	// one unparseable fragment spanning two ids reports once
	root := syntax.Tuple{
		NodeIDs: syntax.IDsOf(1),
		Items: []syntax.Exp{
			syntax.Invalid{NodeIDs: syntax.IDsOf(5, 6), Text: "#"},
			syntax.Int{NodeIDs: syntax.IDsOf(9), Value: 2},
		},
	}
	r := report.New(statics.Check(root))
	diags := r.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, syntax.ID(5), diags[0].ID)
	require.Equal(t, "invalid", diags[0].Form)
	require.Equal(t, `cannot parse "#"`, diags[0].Message)
}

func TestTextListsProblems(t *testing.T) {
	r := report.New(statics.Check(brokenLet()))
	golden.Assert(t, r.Text(report.Options{}), "problem_listing.golden")
}

func TestTextCleanRun(t *testing.T) {
	root := syntax.BinOp{
		NodeIDs: syntax.IDsOf(1),
		Op:      syntax.OpIntPlus,
		Left:    syntax.Int{NodeIDs: syntax.IDsOf(2), Value: 1},
		Right:   syntax.Int{NodeIDs: syntax.IDsOf(3), Value: 2},
	}
	r := report.New(statics.Check(root))
	require.Equal(t, "ok 3 nodes checked\n", r.Text(report.Options{}))
}

func TestTextWithColorKeepsContent(t *testing.T) {
	r := report.New(statics.Check(brokenLet()))
	colored := r.Text(report.Options{Color: true})
	require.Contains(t, colored, "unbound variable")
	require.Contains(t, colored, "type Int is inconsistent with expected type Bool")
}

func TestRender(t *testing.T) {
	r := report.New(statics.Check(brokenLet()))
	var buf strings.Builder
	require.NoError(t, r.Render(&buf, report.Options{}))
	require.Equal(t, r.Text(report.Options{}), buf.String())
}

func TestEntries(t *testing.T) {
	r := report.New(statics.Check(brokenLet()))
	entries := r.Entries()
	require.Len(t, entries, 6)

	// ascending by id, one per id
	for i, e := range entries {
		require.Equal(t, syntax.ID(i+1), e.ID)
	}

	require.Equal(t, report.Entry{ID: 1, Form: "let", Type: "?", Mode: "syn"}, entries[0])
	// the failed definition contributes only an unknown, so the second
	// pattern pass analyzes against `?` while the annotation keeps typing it
	require.Equal(t, report.Entry{ID: 2, Form: "ann_pat", Type: "Bool", Mode: "ana ?"}, entries[1])
	require.Equal(t, report.Entry{ID: 4, Form: "named_type", Type: "Bool"}, entries[3])
	require.Equal(t, report.Entry{
		ID:    5,
		Form:  "int",
		Type:  "?",
		Mode:  "ana Bool",
		Error: "type Int is inconsistent with expected type Bool",
	}, entries[4])
}

func TestWriteJSON(t *testing.T) {
	r := report.New(statics.Check(brokenLet()))
	var buf strings.Builder
	require.NoError(t, r.WriteJSON(&buf))
	golden.Assert(t, buf.String(), "full_dump.json.golden")
}
