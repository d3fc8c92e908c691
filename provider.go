// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package worldview

import (
	"context"
	"image"
	"log/slog"

	"cogentcore.org/worldview/commands"
	"cogentcore.org/worldview/icons"
	"cogentcore.org/worldview/pool"
	"cogentcore.org/worldview/resource"
	"cogentcore.org/worldview/scene"
	"cogentcore.org/worldview/selection"
	"cogentcore.org/worldview/settings"
)

// SceneProvider implements [DataProvider] over a live editing session.
// All fields must be set before use. The provider reads the graph
// directly but mutates only by submitting commands to Sender; draining
// the sender against the session's command stack is the owner's job.
type SceneProvider struct {
	// Graph is the live scene graph.
	Graph *scene.Graph

	// Active is the active editor selection.
	Active *selection.Selection

	// Sender receives the commands built from mutation requests.
	Sender *commands.Sender

	// Resources resolves asset paths to instantiable models.
	Resources *resource.Manager

	// Settings are the editing session settings.
	Settings *settings.Settings

	// ScenePath is the file path of the scene being edited, if any.
	ScenePath string
}

// Root implements [DataProvider].
func (p *SceneProvider) Root() pool.ErasedHandle {
	return p.Graph.Root().Erase()
}

// Path implements [DataProvider].
func (p *SceneProvider) Path() string {
	return p.ScenePath
}

// ChildrenOf implements [DataProvider].
func (p *SceneProvider) ChildrenOf(node pool.ErasedHandle) []pool.ErasedHandle {
	n, ok := p.Graph.TryGet(pool.Typed[scene.Node](node))
	if !ok {
		return nil
	}
	children := make([]pool.ErasedHandle, len(n.Children()))
	for i, c := range n.Children() {
		children[i] = c.Erase()
	}
	return children
}

// ChildCountOf implements [DataProvider].
func (p *SceneProvider) ChildCountOf(node pool.ErasedHandle) int {
	n, ok := p.Graph.TryGet(pool.Typed[scene.Node](node))
	if !ok {
		return 0
	}
	return len(n.Children())
}

// HasChild implements [DataProvider].
func (p *SceneProvider) HasChild(node, child pool.ErasedHandle) bool {
	n, ok := p.Graph.TryGet(pool.Typed[scene.Node](node))
	if !ok {
		return false
	}
	for _, c := range n.Children() {
		if c.Erase() == child {
			return true
		}
	}
	return false
}

// ParentOf implements [DataProvider].
func (p *SceneProvider) ParentOf(node pool.ErasedHandle) pool.ErasedHandle {
	n, ok := p.Graph.TryGet(pool.Typed[scene.Node](node))
	if !ok {
		return pool.ErasedHandle{}
	}
	return n.Parent().Erase()
}

// NameOf implements [DataProvider].
func (p *SceneProvider) NameOf(node pool.ErasedHandle) (string, bool) {
	n, ok := p.Graph.TryGet(pool.Typed[scene.Node](node))
	if !ok {
		return "", false
	}
	return n.Name, true
}

// IsValidHandle implements [DataProvider].
func (p *SceneProvider) IsValidHandle(node pool.ErasedHandle) bool {
	return p.Graph.IsValidHandle(pool.Typed[scene.Node](node))
}

// IconFor implements [DataProvider], classifying the node by its
// capabilities with [IconDataFor].
func (p *SceneProvider) IconFor(node pool.ErasedHandle) (image.Image, bool) {
	n, ok := p.Graph.TryGet(pool.Typed[scene.Node](node))
	if !ok {
		return nil, false
	}
	return icons.Load(IconDataFor(n))
}

// IsInstance implements [DataProvider].
func (p *SceneProvider) IsInstance(node pool.ErasedHandle) bool {
	n, ok := p.Graph.TryGet(pool.Typed[scene.Node](node))
	if !ok {
		return false
	}
	return n.IsInstance()
}

// Selection implements [DataProvider].
func (p *SceneProvider) Selection() []pool.ErasedHandle {
	gs, ok := p.Active.GraphSelection()
	if !ok {
		return nil
	}
	nodes := make([]pool.ErasedHandle, len(gs.Nodes))
	copy(nodes, gs.Nodes)
	return nodes
}

// RequestReparent asks to move the active selection under newParent.
// It only proceeds if child is part of the active selection. Every
// selected node is checked for cycle safety by walking parent links
// upward from newParent: a selected node found on that path would become
// its own ancestor, so it is dropped from the batch rather than failing
// the whole request. The surviving relinks are submitted as one
// undoable group; an empty batch submits nothing.
func (p *SceneProvider) RequestReparent(child, newParent pool.ErasedHandle) {
	gs, ok := p.Active.GraphSelection()
	if !ok || !gs.Contains(child) {
		return
	}
	parent := pool.Typed[scene.Node](newParent)
	var batch []commands.Command
	for _, sel := range gs.Nodes {
		node := pool.Typed[scene.Node](sel)
		attach := true
		for at := parent; at.IsSome(); {
			if at == node {
				attach = false
				break
			}
			n, ok := p.Graph.TryGet(at)
			if !ok {
				break
			}
			at = n.Parent()
		}
		if attach {
			batch = append(batch, commands.NewLinkNodes(node, parent))
		}
	}
	if len(batch) == 0 {
		return
	}
	p.Sender.Submit(commands.NewGroup(batch...))
}

// RequestAssetDrop asks to instantiate the asset at the given path under
// the target node. The path is normalized against the configured asset
// root and resolved as a model resource; resolution is awaited here, so
// nothing is observable until it finishes. On success the instantiated
// sub-graph, its relink under target, and the selection change to the
// new instance are submitted as one atomic, reversible group. The
// configured instantiation scale is multiplied into the instance root's
// authored scale. Any resolution failure is a silent no-op.
func (p *SceneProvider) RequestAssetDrop(ctx context.Context, path string, target pool.ErasedHandle) {
	rel, err := resource.NormalizePath(p.Settings.AssetRoot, path)
	if err != nil {
		slog.Debug("worldview: asset drop ignored", "path", path, "err", err)
		return
	}
	pending := p.Resources.TryRequest(rel)
	if pending == nil {
		return
	}
	model, err := pending.Await(ctx)
	if err != nil {
		slog.Debug("worldview: asset drop failed", "path", rel, "err", err)
		return
	}

	instance := model.Instantiate(p.Graph)
	if n, ok := p.Graph.TryGet(instance); ok {
		n.Transform.Scale = n.Transform.Scale.Mul(p.Settings.InstantiationScale)
	}
	sub := p.Graph.TakeReserveSubGraph(instance)

	p.Sender.Submit(commands.NewGroup(
		commands.NewAddModel(sub),
		commands.NewLinkNodes(instance, pool.Typed[scene.Node](target)),
		commands.NewChangeSelection(
			selection.NewGraph(selection.SingleOrEmpty(instance.Erase())),
			p.Active.Clone(),
		),
	))
}

// OnSelectionChanged implements [DataProvider]: it folds insert-or-
// exclude over the given handles starting from an empty selection and
// submits a selection change command only if the result differs
// structurally from the active selection.
func (p *SceneProvider) OnSelectionChanged(nodes []pool.ErasedHandle) {
	var next selection.Selection
	for _, n := range nodes {
		next = next.Toggle(n)
	}
	if next.Equal(*p.Active) {
		return
	}
	p.Sender.Submit(commands.NewChangeSelection(next, p.Active.Clone()))
}

// Validate implements [DataProvider]: every live node is visited exactly
// once, in arena order, and validated against the graph. Validation has
// no side effects.
func (p *SceneProvider) Validate() []Result {
	results := make([]Result, 0, p.Graph.Len())
	for h, n := range p.Graph.All() {
		results = append(results, Result{Node: h.Erase(), Err: n.Validate(p.Graph)})
	}
	return results
}
