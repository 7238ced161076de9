// Package parser reads the bracket-notation tree format and builds
// core.Tree values over a shared core.LabelDict.
//
// Grammar: TREE := "{" LABEL CHILD* "}"; CHILD := TREE. LABEL is the
// literal byte span between an opening "{" and the next unescaped "{"
// or "}". "\{" and "\}" are escapes: counted toward the label text but
// never treated as structure. Input must be ASCII. One tree per line.
//
// Parse errors are fatal and non-recoverable per line: fewer than two
// structural brackets, an opening "{" left without a matching "}",
// a closing "}" against an empty node stack, or non-ASCII input. A
// dataset load fails entirely on the first malformed line; parsing
// never silently drops a tree.
//
// The package exposes a small functional-options configuration layer
// (LoaderOption) over loaderConfig, following the same style used
// throughout tedsearch: resolve defaults, apply options in order, fail
// fast (panic) on option constructors given meaningless input.
package parser
