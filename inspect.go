package formbind

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var inspectConfig = spew.ConfigState{Indent: " ", MaxDepth: 2, SortKeys: true}

// Inspect renders the composed mapper tree for debugging: one line per node
// with its kind and target, one line per mapping with its strategies.
func Inspect(m *Mapper) string {
	var b strings.Builder
	inspectNode(&b, m, 0)
	return b.String()
}

func inspectNode(b *strings.Builder, m *Mapper, depth int) {
	ind := strings.Repeat("  ", depth)
	kind := "mapper"
	switch {
	case m.IsExtension():
		kind = "extension"
	case m.owned:
		kind = "trait"
	case m.host != nil:
		kind = "mounted"
	}
	obj := any(m.target)
	if w, ok := m.target.(interface{ Unwrap() any }); ok {
		obj = w.Unwrap()
	}
	fmt.Fprintf(b, "%s%s (%s) target=%s\n", ind, m.Name(), kind, inspectConfig.Sprintf("%v", obj))
	for _, mp := range m.mappings {
		fmt.Fprintf(b, "%s  %s -> %s [%s/%s]\n", ind, mp.FullName(), mp.TargetAttribute(), readerName(mp.reader), writerName(mp.writer))
	}
	for _, c := range m.mountings {
		inspectNode(b, c, depth+1)
	}
}

func readerName(r Reader) string {
	switch rr := r.(type) {
	case nil:
		return "-"
	case BasicReader:
		return "read"
	case MethodReader:
		return "read:" + rr.Accessor
	case ProcReader:
		return "read:proc"
	case FormattedReader:
		return "read:format(" + rr.Format + ")"
	}
	return "read:?"
}

func writerName(w Writer) string {
	switch ww := w.(type) {
	case nil:
		return "-"
	case BasicWriter:
		return "write"
	case MethodWriter:
		return "write:" + ww.Accessor
	case ProcWriter:
		return "write:proc"
	}
	return "write:?"
}
