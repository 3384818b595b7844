// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package treetest executes forest mutation scripts. It is shared by the
// datadriven tests and the strut command-line tool.
//
// A script is a sequence of lines, one operation per line:
//
//	new <name> [style properties]
//	new-measure <name> <width> <height> [style properties]
//	new-children <name> [<child> <child> ...] [style properties]
//	add-child <parent> <child>
//	remove-child <parent> <child>
//	remove-child-at <parent> <index>
//	swap-remove <name>
//	mark-dirty <name>
//	set-style <name> <style properties>
//	layout-done <name> <width> <height>
//	clear
//	dump | names | style <name> | metrics | len
//
// Nodes are referred to by symbolic names. The runner maintains the
// name-to-identity mapping itself, applying the same relocation that
// Forest.SwapRemove applies to identities — it is a working example of the
// identity remapping every caller of SwapRemove has to perform.
package treetest

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
	"github.com/strutkit/strut"
	"github.com/strutkit/strut/internal/strparse"
)

// Runner executes forest mutation scripts against a single Forest.
type Runner struct {
	forest *strut.Forest
	// names[id] is the symbolic name of node id; maintained in lockstep with
	// the forest's identities, including swap-remove relocation.
	names  []string
	byName swiss.Map[string, strut.NodeID]
}

// NewRunner returns a Runner with an empty forest.
func NewRunner() *Runner {
	r := &Runner{forest: strut.NewForest(16)}
	r.byName.Init(16)
	return r
}

// Forest returns the forest the runner mutates.
func (r *Runner) Forest() *strut.Forest {
	return r.forest
}

// Names returns the symbolic name of every live node, indexed by identity.
// The returned slice is owned by the runner.
func (r *Runner) Names() []string {
	return r.names
}

// RunScript executes every non-empty line of the script and returns the
// concatenated outputs. Operations that fail a precondition report the
// failure in the output and terminate the script.
func (r *Runner) RunScript(script string) string {
	var buf strings.Builder
	for _, line := range crstrings.Lines(script) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out, err := r.Exec(line)
		if err != nil {
			if errors.HasAssertionFailure(err) {
				fmt.Fprintf(&buf, "precondition violation: %v\n", err)
			} else {
				fmt.Fprintf(&buf, "error: %v\n", err)
			}
			break
		}
		buf.WriteString(out)
	}
	return buf.String()
}

// Exec executes a single operation line and returns its output, if any.
// Precondition violations raised by the forest are recovered and returned as
// errors carrying an assertion failure.
func (r *Runner) Exec(line string) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var ok bool
			if err, ok = rec.(error); !ok {
				err = errors.Newf("%v", rec)
			}
			out = ""
		}
	}()

	p := strparse.MakeParser("[]", line)
	switch cmd := p.Next(); cmd {
	case "new":
		name := r.freshName(&p)
		style := r.style(p.Remaining())
		r.record(name, r.forest.NewLeaf(style))
		return "", nil

	case "new-measure":
		name := r.freshName(&p)
		w, h := p.Float32(), p.Float32()
		style := r.style(p.Remaining())
		measure := strut.FixedMeasure(strut.Size[float32]{Width: w, Height: h})
		r.record(name, r.forest.NewLeafWithMeasure(style, measure))
		return "", nil

	case "new-children":
		name := r.freshName(&p)
		p.Expect("[")
		var children []strut.NodeID
		for p.Peek() != "]" {
			children = append(children, r.node(p.Next()))
		}
		p.Expect("]")
		style := r.style(p.Remaining())
		r.record(name, r.forest.NewWithChildren(style, children))
		return "", nil

	case "add-child":
		parent, child := r.node(p.Next()), r.node(p.Next())
		r.forest.AddChild(parent, child)
		return "", nil

	case "remove-child":
		parent, child := r.node(p.Next()), r.node(p.Next())
		removed := r.forest.RemoveChild(parent, child)
		return fmt.Sprintf("removed %s\n", r.names[removed]), nil

	case "remove-child-at":
		parent := r.node(p.Next())
		removed := r.forest.RemoveChildAt(parent, p.Int())
		return fmt.Sprintf("removed %s\n", r.names[removed]), nil

	case "swap-remove":
		return r.swapRemove(r.node(p.Next())), nil

	case "mark-dirty":
		r.forest.MarkDirty(r.node(p.Next()))
		return "", nil

	case "set-style":
		id := r.node(p.Next())
		r.forest.SetStyle(id, r.style(p.Remaining()))
		return "", nil

	case "layout-done":
		id := r.node(p.Next())
		w, h := p.Float32(), p.Float32()
		r.layoutDone(id, w, h)
		return "", nil

	case "clear":
		r.forest.Clear()
		r.names = r.names[:0]
		r.byName.Init(16)
		return "", nil

	case "dump":
		return r.forest.DebugString(), nil

	case "names":
		if len(r.names) == 0 {
			return "none\n", nil
		}
		parts := make([]string, len(r.names))
		for id, name := range r.names {
			parts[id] = fmt.Sprintf("%s=%d", name, id)
		}
		return strings.Join(parts, " ") + "\n", nil

	case "style":
		id := r.node(p.Next())
		return r.forest.Node(id).Style.String() + "\n", nil

	case "metrics":
		return r.forest.Metrics().String() + "\n", nil

	case "len":
		return fmt.Sprintf("%d\n", r.forest.Len()), nil

	default:
		return "", errors.Newf("unknown op %q", cmd)
	}
}

// swapRemove removes the node and applies the identity relocation to the
// name table.
func (r *Runner) swapRemove(id strut.NodeID) string {
	moved, ok := r.forest.SwapRemove(id)

	last := strut.NodeID(len(r.names) - 1)
	r.byName.Delete(r.names[id])
	r.names[id] = r.names[last]
	r.names = r.names[:last]
	if ok {
		// moved == last: the node previously named last is now named id.
		r.byName.Put(r.names[id], id)
		return fmt.Sprintf("relocated %d -> %d\n", moved, id)
	}
	return "none relocated\n"
}

// layoutDone simulates the write-back an external layout algorithm performs
// after recomputing the node: it stores the layout result, populates both
// cache slots and clears the dirty flag.
func (r *Runner) layoutDone(id strut.NodeID, w, h float32) {
	size := strut.Size[float32]{Width: w, Height: h}
	n := r.forest.Node(id)
	n.Layout = strut.Layout{Size: size}
	n.Dirty = false
	n.MainSizeCache = &strut.Cache{
		NodeSize:      strut.DefinedSize(w, h),
		PerformLayout: true,
		Result:        size,
	}
	n.OtherCache = &strut.Cache{
		NodeSize: strut.DefinedSize(w, h),
		Result:   size,
	}
}

func (r *Runner) style(props string) strut.Style {
	style, err := strut.ParseStyle(props)
	if err != nil {
		panic(err)
	}
	return style
}

func (r *Runner) freshName(p *strparse.Parser) string {
	name := p.Next()
	if name == "" {
		p.Errf("missing node name")
	}
	if _, ok := r.byName.Get(name); ok {
		p.Errf("node %q already exists", name)
	}
	return name
}

func (r *Runner) record(name string, id strut.NodeID) {
	if int(id) != len(r.names) {
		panic(errors.AssertionFailedf("identity %d does not extend name table of %d", id, len(r.names)))
	}
	r.names = append(r.names, name)
	r.byName.Put(name, id)
}

func (r *Runner) node(name string) strut.NodeID {
	if name == "" {
		panic(errors.Newf("missing node name"))
	}
	id, ok := r.byName.Get(name)
	if !ok {
		panic(errors.Newf("unknown node %q", name))
	}
	return id
}
