// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands provides reversible scene mutations. Every edit of
// the scene graph is described by a [Command] that carries enough prior
// state to invert itself, so any user action becomes one undoable step.
// Multi-step actions compose into a [Group], which applies its members in
// order and reverts them in reverse order as a single unit.
//
// Commands are constructed only from values already proven safe by the
// caller (for example handles that passed a cycle check), so Execute
// cannot fail; the layer does not re-validate its inputs.
package commands

import (
	"strings"

	"cogentcore.org/worldview/scene"
	"cogentcore.org/worldview/selection"
)

// Context is the editing state a command applies to: the live scene
// graph and the active selection. The command layer is the sole mutator
// of both.
type Context struct {
	// Graph is the live scene graph.
	Graph *scene.Graph

	// Selection is the active editor selection.
	Selection *selection.Selection
}

// Command is one reversible scene mutation. Execute applies it and
// Revert restores the state from before the matching Execute. A command
// alternates strictly between Execute and Revert calls.
type Command interface {
	// Name is a short human-readable description, shown in undo menus.
	Name() string

	// Execute applies the mutation to the context.
	Execute(ctx *Context)

	// Revert undoes the matching Execute.
	Revert(ctx *Context)
}

// LinkNodes relinks a child node under a new parent, remembering the old
// parent for reversal.
type LinkNodes struct {
	child  scene.Handle
	parent scene.Handle
}

// NewLinkNodes returns a command that links child under parent.
// The caller must have verified that parent is not a descendant of child.
func NewLinkNodes(child, parent scene.Handle) *LinkNodes {
	return &LinkNodes{child: child, parent: parent}
}

// Name implements [Command].
func (c *LinkNodes) Name() string { return "Link Nodes" }

// link attaches the child to the stored parent and stores the previous
// parent in its place, so the same operation both executes and reverts.
func (c *LinkNodes) link(ctx *Context) {
	old := scene.Handle{}
	if n, ok := ctx.Graph.TryGet(c.child); ok {
		old = n.Parent()
	}
	ctx.Graph.LinkNodes(c.child, c.parent)
	c.parent = old
}

// Execute implements [Command].
func (c *LinkNodes) Execute(ctx *Context) { c.link(ctx) }

// Revert implements [Command].
func (c *LinkNodes) Revert(ctx *Context) { c.link(ctx) }

// AddModel adds an instantiated asset sub-graph to the scene. It owns
// the detached sub-graph while the command is in the undone state and
// hands it back to the graph on Execute.
type AddModel struct {
	sub  *scene.SubGraph
	root scene.Handle
}

// NewAddModel returns a command that adds the given detached sub-graph.
func NewAddModel(sub *scene.SubGraph) *AddModel {
	return &AddModel{sub: sub, root: sub.Root}
}

// Name implements [Command].
func (c *AddModel) Name() string { return "Add Model" }

// Execute implements [Command].
func (c *AddModel) Execute(ctx *Context) {
	ctx.Graph.PutSubGraphBack(c.sub)
	c.sub = nil
}

// Revert implements [Command].
func (c *AddModel) Revert(ctx *Context) {
	c.sub = ctx.Graph.TakeReserveSubGraph(c.root)
}

// ChangeSelection replaces the active selection, recording both the new
// and the old value so the change can be reverted.
type ChangeSelection struct {
	next selection.Selection
	prev selection.Selection
}

// NewChangeSelection returns a command that makes next the active
// selection; prev must be the selection active at construction time.
func NewChangeSelection(next, prev selection.Selection) *ChangeSelection {
	return &ChangeSelection{next: next, prev: prev}
}

// Name implements [Command].
func (c *ChangeSelection) Name() string { return "Change Selection" }

// Execute implements [Command].
func (c *ChangeSelection) Execute(ctx *Context) {
	*ctx.Selection = c.next.Clone()
}

// Revert implements [Command].
func (c *ChangeSelection) Revert(ctx *Context) {
	*ctx.Selection = c.prev.Clone()
}

// Group is an ordered sequence of commands treated as one undo unit:
// Execute applies members first to last, Revert unwinds them last to
// first. Partial application is never observable from outside the
// command layer.
type Group struct {
	commands []Command
}

// NewGroup returns a group over the given commands.
func NewGroup(cmds ...Command) *Group {
	return &Group{commands: cmds}
}

// Len returns the number of commands in the group.
func (g *Group) Len() int { return len(g.commands) }

// Name implements [Command] by joining the member names.
func (g *Group) Name() string {
	names := make([]string, len(g.commands))
	for i, c := range g.commands {
		names[i] = c.Name()
	}
	return strings.Join(names, " + ")
}

// Execute implements [Command].
func (g *Group) Execute(ctx *Context) {
	for _, c := range g.commands {
		c.Execute(ctx)
	}
}

// Revert implements [Command].
func (g *Group) Revert(ctx *Context) {
	for i := len(g.commands) - 1; i >= 0; i-- {
		g.commands[i].Revert(ctx)
	}
}
