// SPDX-License-Identifier: MIT
package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/parser"
)

// TestParseTree_ScenarioOne matches specification scenario 1.
func TestParseTree_ScenarioOne(t *testing.T) {
	dict := core.NewLabelDict()
	tr := core.NewTree(dict)
	require.NoError(t, parser.ParseTree("{1{2{3}{4}}{5{6}}{7{8}{9}}}", tr))

	assert.Equal(t, 9, tr.Size())
	root, err := tr.Root()
	require.NoError(t, err)
	lbl, err := tr.Label(root)
	require.NoError(t, err)
	s, ok := dict.Lookup(lbl)
	require.True(t, ok)
	assert.Equal(t, "1", s)

	children, err := tr.Children(root)
	require.NoError(t, err)
	assert.Len(t, children, 3)
}

func TestParseTree_EscapedBraces(t *testing.T) {
	dict := core.NewLabelDict()
	tr := core.NewTree(dict)
	require.NoError(t, parser.ParseTree(`{a\{b\}c}`, tr))

	root, err := tr.Root()
	require.NoError(t, err)
	lbl, _ := tr.Label(root)
	s, _ := dict.Lookup(lbl)
	assert.Equal(t, `a{b}c`, s)
}

func TestParseTree_FewerThanTwoBrackets(t *testing.T) {
	tr := core.NewTree(core.NewLabelDict())
	err := parser.ParseTree("{a", tr)
	assert.ErrorIs(t, err, parser.ErrTooFewBrackets)

	err = parser.ParseTree("a", tr)
	assert.ErrorIs(t, err, parser.ErrTooFewBrackets)
}

func TestParseTree_UnmatchedOpen(t *testing.T) {
	tr := core.NewTree(core.NewLabelDict())
	err := parser.ParseTree("{a{b}", tr)
	assert.ErrorIs(t, err, parser.ErrUnmatchedOpen)
}

func TestParseTree_UnexpectedClose(t *testing.T) {
	tr := core.NewTree(core.NewLabelDict())
	err := parser.ParseTree("{a}}", tr)
	assert.ErrorIs(t, err, parser.ErrUnexpectedClose)
}

func TestParseTree_NonASCII(t *testing.T) {
	tr := core.NewTree(core.NewLabelDict())
	err := parser.ParseTree("{café}", tr)
	assert.ErrorIs(t, err, parser.ErrNonASCII)
}

func TestLoadReader_SharesLabelDict(t *testing.T) {
	r := strings.NewReader("{a{b}}\n{a{c}}\n")
	ds, err := parser.LoadReader(r)
	require.NoError(t, err)
	require.Len(t, ds.Trees, 2)

	root0, _ := ds.Trees[0].Root()
	root1, _ := ds.Trees[1].Root()
	lbl0, _ := ds.Trees[0].Label(root0)
	lbl1, _ := ds.Trees[1].Label(root1)
	assert.Equal(t, lbl0, lbl1, "both roots carry label \"a\" and must share one LabelID")
}

func TestLoadReader_AbortsOnFirstMalformedLine(t *testing.T) {
	r := strings.NewReader("{a{b}}\n{a{b}\n{c}\n")
	_, err := parser.LoadReader(r)
	assert.ErrorIs(t, err, parser.ErrUnmatchedOpen)
}

func TestLoadReader_SkipsBlankLinesByDefault(t *testing.T) {
	r := strings.NewReader("{a}\n\n{b}\n")
	ds, err := parser.LoadReader(r)
	require.NoError(t, err)
	assert.Len(t, ds.Trees, 2)
}
