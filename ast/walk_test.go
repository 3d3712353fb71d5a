package ast

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type walkOverrideFunc = func(Node) (bool, WalkStatus, error)

func TestWalk(t *testing.T) {
	collectTypesWalker := func(root Node, overrideFunc walkOverrideFunc) (string, error) {
		sb := &strings.Builder{}
		sb.Grow(128)
		err := Walk(root, func(n Node, isEntering bool) (WalkStatus, error) {
			if ok, walkStatus, err := overrideFunc(n); ok {
				return walkStatus, err
			}
			if isEntering {
				_, _ = fmt.Fprintf(sb, "<%T>", n)
				if pt, ok := n.(*PlainText); ok {
					_, _ = fmt.Fprintf(sb, "%s", pt.Value)
				}
			} else {
				_, _ = fmt.Fprintf(sb, "</%T>", n)
			}
			return WalkContinue, nil
		})
		return sb.String(), err
	}

	tests := []struct {
		name     string
		node     Node
		override walkOverrideFunc
		want     string
	}{
		{"visits all in depth first order",
			&BoldText{
				Value: &PlainText{Value: "first"},
			},
			func(_ Node) (bool, WalkStatus, error) { return false, WalkContinue, nil },
			strings.Join(
				[]string{
					"<*ast.BoldText>",
					"<*ast.PlainText>first</*ast.PlainText>",
					"</*ast.BoldText>",
				},
				""),
		},
		{"stops early on override",
			&Paragraph{
				Elements: []Line{
					&TextLine{SubText: []Inline{&PlainText{Value: "first"}}},
					&TextLine{SubText: []Inline{&PlainText{Value: "second"}}},
				},
			},
			func(n Node) (bool, WalkStatus, error) {
				if pt, ok := n.(*PlainText); ok && pt.Value == "second" {
					return true, WalkStop, nil
				}
				return false, WalkContinue, nil
			},
			strings.Join(
				[]string{
					"<*ast.Paragraph>",
					"<*ast.TextLine>",
					"<*ast.PlainText>first</*ast.PlainText>",
					"</*ast.TextLine>",
					"<*ast.TextLine>",
				},
				""),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectTypesWalker(tt.node, tt.override)
			if err != nil {
				t.Errorf("Walk() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Walk() mismatch (-want +got)\n%s", diff)
			}
		})
	}
}
