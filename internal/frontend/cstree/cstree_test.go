package cstree

import (
	"context"
	"testing"
)

func TestParseClassDeclaration(t *testing.T) {
	src := []byte("namespace Acme { public class Widget { } }")

	tree, err := Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tree.HasError() {
		t.Fatalf("Parse() produced a tree with errors")
	}

	root := tree.Root()
	if root.IsZero() {
		t.Fatal("Root() returned a zero node")
	}
	if root.Kind() != "compilation_unit" {
		t.Errorf("Root().Kind() = %q, want compilation_unit", root.Kind())
	}
}

func TestParseMalformedInput(t *testing.T) {
	src := []byte("namespace { { { (")

	tree, err := Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !tree.HasError() {
		t.Error("HasError() = false for malformed input, want true")
	}
}

func TestNodeZeroValue(t *testing.T) {
	var n Node
	if !n.IsZero() {
		t.Error("zero Node.IsZero() = false")
	}
	if n.Kind() != "" || n.Text() != "" {
		t.Error("zero Node should report empty Kind/Text")
	}
	start, end := n.ByteRange()
	if start != 0 || end != 0 {
		t.Errorf("zero Node.ByteRange() = (%d, %d), want (0, 0)", start, end)
	}
}
