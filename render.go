package blocklist

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/blocklist/chain"
	"golang.org/x/term"
)

// Internal returns a string rendering of the list which exposes the block
// boundaries, e.g. "[(1, 2, -, -), (3, 4, 5, -)]" for a block size of 4.
// Free slots render as '-'. The format serves debugging and tests only and
// is not guaranteed to stay stable.
func (l *List[T]) Internal() string {
	return l.internalString(-1)
}

// InternalWithCursor renders like Internal and additionally marks the
// position of cursor it with a '|' bar.
func (l *List[T]) InternalWithCursor(it *chain.Cursor[T]) string {
	if it == nil {
		return l.Internal()
	}
	return l.internalString(it.NextIndex())
}

func (l *List[T]) internalString(cursorAt int) string {
	size := l.Len()
	var sb strings.Builder
	sb.WriteByte('[')
	emitted := 0
	firstNode := true
	for view := range l.ensure().Nodes() {
		if !firstNode {
			sb.WriteString(", ")
		}
		firstNode = false
		sb.WriteByte('(')
		for i := 0; i < view.Capacity; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			if i >= len(view.Items) {
				sb.WriteByte('-')
				continue
			}
			if cursorAt == emitted {
				sb.WriteString("| ")
				cursorAt = -1
			}
			fmt.Fprint(&sb, view.Items[i])
			emitted++
			if cursorAt == size && emitted == size {
				sb.WriteString(" |")
				cursorAt = -1
			}
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Fprint writes the block-boundary rendering to w, followed by a newline.
// When w is an interactive terminal, block boundaries and free slots are
// colorized to make the block structure stand out.
func (l *List[T]) Fprint(w io.Writer) error {
	if !writerIsTerminal(w) {
		_, err := io.WriteString(w, l.Internal()+"\n")
		return err
	}
	boundary := color.New(color.FgCyan, color.Bold)
	free := color.New(color.Faint)
	boundary.Fprint(w, "[")
	firstNode := true
	for view := range l.ensure().Nodes() {
		if !firstNode {
			io.WriteString(w, ", ")
		}
		firstNode = false
		boundary.Fprint(w, "(")
		for i := 0; i < view.Capacity; i++ {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			if i < len(view.Items) {
				fmt.Fprint(w, view.Items[i])
			} else {
				free.Fprint(w, "-")
			}
		}
		boundary.Fprint(w, ")")
	}
	boundary.Fprint(w, "]")
	_, err := io.WriteString(w, "\n")
	return err
}

// writerIsTerminal reports whether w is an interactive terminal.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Dot outputs the internal chain structure of a list in Graphviz DOT
// format (for debugging purposes). Blocks appear as record nodes, the
// sentinels as circles, with doubly linked edges in between.
func (l *List[T]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\t\"head\" [shape=circle,fixedsize=true,width=.6];\n")
	io.WriteString(w, "\t\"tail\" [shape=circle,fixedsize=true,width=.6];\n")
	prev := "head"
	id := 0
	for view := range l.ensure().Nodes() {
		id++
		name := strconv.Itoa(id)
		fmt.Fprintf(w, "\t\"%s\" [shape=record,label=\"%s\"];\n", name, dotRecordLabel(view))
		fmt.Fprintf(w, "\t\"%s\" -> \"%s\" [dir=both];\n", prev, name)
		prev = name
	}
	fmt.Fprintf(w, "\t\"%s\" -> \"tail\" [dir=both];\n", prev)
	io.WriteString(w, "}\n")
	tracer().Debugf("blocklist: exported %d blocks to DOT", id)
}

// dotRecordLabel renders one block as a DOT record, one field per slot.
func dotRecordLabel[T any](view chain.NodeView[T]) string {
	fields := make([]string, view.Capacity)
	for i := range fields {
		if i < len(view.Items) {
			fields[i] = dotEscaper.Replace(fmt.Sprint(view.Items[i]))
		} else {
			fields[i] = "-"
		}
	}
	return strings.Join(fields, "|")
}

var dotEscaper = strings.NewReplacer(
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`<`, `\<`,
	`>`, `\>`,
	`"`, `\"`,
)
