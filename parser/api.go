// SPDX-License-Identifier: MIT
//
// api.go — public entry points for the parser package.
//
// Design contract:
//   - One per-line parser: ParseTree. One dataset orchestrator: LoadDataset.
//   - Functional options (LoaderOption) resolve into an immutable loaderConfig.
//   - Parse errors are sentinels; a dataset load aborts on the first one.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tedsearch/core"
)

// Dataset is every tree loaded from one bracket-notation file, sharing a
// single LabelDict so label ids are comparable across trees.
type Dataset struct {
	Dict  *core.LabelDict
	Trees []*core.Tree
}

// LoadDataset opens path and parses one tree per line via LoadReader.
// Returns a wrapped I/O error if the file cannot be opened or read.
func LoadDataset(path string, opts ...LoaderOption) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: open dataset: %w", err)
	}
	defer f.Close()

	return LoadReader(f, opts...)
}

// LoadReader parses one tree per line from r. A malformed line aborts the
// entire load; per-line parse errors are not tolerated (specification
// propagation policy). Blank lines are skipped unless WithBlankLines(false)
// was supplied.
//
// Complexity: O(total input size).
func LoadReader(r io.Reader, opts ...LoaderOption) (*Dataset, error) {
	cfg := newLoaderConfig(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), cfg.maxLineLength)

	ds := &Dataset{Dict: cfg.dict}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if line == "" {
			if cfg.skipBlankLines {
				continue
			}
			return nil, parserErrorf(lineNo, ErrTooFewBrackets)
		}

		if err := validateLineLength(lineNo, len(line), cfg.maxLineLength); err != nil {
			return nil, err
		}

		tr := core.NewTree(ds.Dict)
		if err := ParseTree(line, tr); err != nil {
			return nil, parserErrorf(lineNo, err)
		}
		ds.Trees = append(ds.Trees, tr)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: read dataset: %w", err)
	}

	return ds, nil
}

// ParseTree parses one bracket-notation line into tr, which must already
// be an empty *core.Tree over the dictionary the caller wants labels
// interned into.
//
// Grammar: TREE := "{" LABEL CHILD* "}"; LABEL runs from the opening "{"
// to the next unescaped "{" or "}"; "\{"/"\}" are literal escapes.
//
// Complexity: O(len(line)) time, O(depth) auxiliary stack space.
func ParseTree(line string, tr *core.Tree) error {
	if !isASCII(line) {
		return ErrNonASCII
	}
	if countStructuralBrackets(line) < MinStructuralBrackets {
		return ErrTooFewBrackets
	}

	stack := make([]int32, 0, 8)
	n := len(line)
	i := 0
	for i < n {
		switch line[i] {
		case '{':
			i++
			label, next, err := scanLabel(line, i)
			if err != nil {
				return err
			}
			i = next

			parent := core.NoNode
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			labelID := tr.Dict().Intern(label)
			nodeID, err := tr.AddNode(parent, labelID)
			if err != nil {
				return err
			}
			stack = append(stack, nodeID)
		case '}':
			if len(stack) == 0 {
				return ErrUnexpectedClose
			}
			stack = stack[:len(stack)-1]
			i++
		default:
			// A character outside any "{...}" context: the grammar has no
			// production for bare text at this position.
			return ErrUnmatchedOpen
		}
	}

	if len(stack) != 0 {
		return ErrUnmatchedOpen
	}

	return nil
}

// scanLabel reads the LABEL text starting at line[from], stopping at the
// next unescaped "{" or "}". It returns the decoded label (with escapes
// resolved to their literal character) and the index of the terminating
// bracket.
func scanLabel(line string, from int) (string, int, error) {
	n := len(line)
	var buf []byte
	i := from
	for i < n {
		c := line[i]
		if c == '\\' && i+1 < n && (line[i+1] == '{' || line[i+1] == '}') {
			buf = append(buf, line[i+1])
			i += 2
			continue
		}
		if c == '{' || c == '}' {
			return string(buf), i, nil
		}
		buf = append(buf, c)
		i++
	}

	return "", i, ErrUnmatchedOpen
}
