// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resource

import (
	"fmt"
	"log/slog"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"cogentcore.org/worldview/scene"
)

// Model is a reusable asset: a template node tree parsed from a model
// document. Instantiating it creates a live, editable copy of the
// template inside a scene graph.
type Model struct {
	// Path is the normalized resource path the model was loaded from.
	Path string

	// Name is the asset's declared name.
	Name string

	root *templateNode
}

// templateNode is one node of the parsed template tree. The scene node
// here is a prototype that is never linked into any graph; instances
// deep-copy its data fields.
type templateNode struct {
	proto    scene.Node
	children []*templateNode
}

// Instantiate deep-copies the model's template tree into the graph and
// returns the handle of the new sub-tree's root, which is linked under
// the graph's content root and marked as an instance of this model via
// its resource link.
func (m *Model) Instantiate(g *scene.Graph) scene.Handle {
	root := m.instantiate(g, m.root)
	if n, ok := g.TryGet(root); ok {
		n.Resource = m.Path
	}
	return root
}

// instantiate copies one template node and its children into the graph.
func (m *Model) instantiate(g *scene.Graph, t *templateNode) scene.Handle {
	n := &scene.Node{}
	if err := copier.CopyWithOption(n, &t.proto, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("resource: copying template node", "model", m.Path, "err", err)
	}
	h := g.AddNode(n)
	for _, c := range t.children {
		g.LinkNodes(m.instantiate(g, c), h)
	}
	return h
}

// Model document format:
//
//	name: barrel
//	root:
//	  name: barrel
//	  kind: rigid-body
//	  scale: [1, 1, 1]
//	  children:
//	    - name: shape
//	      kind: collider

type modelDoc struct {
	Name string  `yaml:"name"`
	Root nodeDoc `yaml:"root"`
}

type nodeDoc struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Position []float32 `yaml:"position"`
	Rotation []float32 `yaml:"rotation"`
	Scale    []float32 `yaml:"scale"`
	Source   string    `yaml:"source"`
	Children []nodeDoc `yaml:"children"`
}

// parseModel parses a model document into a [Model].
func parseModel(path string, data []byte) (*Model, error) {
	var doc modelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadFormat, path, err)
	}
	root, err := templateFromDoc(path, &doc.Root)
	if err != nil {
		return nil, err
	}
	return &Model{Path: path, Name: doc.Name, root: root}, nil
}

// templateFromDoc converts one document node and its children.
func templateFromDoc(path string, d *nodeDoc) (*templateNode, error) {
	kind, err := scene.KindFromString(d.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadFormat, path, err)
	}
	t := &templateNode{proto: scene.Node{
		Name:   d.Name,
		Kind:   kind,
		Source: d.Source,
		Transform: scene.Transform{
			Position: vec3FromDoc(d.Position, scene.Vector3{}),
			Rotation: vec3FromDoc(d.Rotation, scene.Vector3{}),
			Scale:    vec3FromDoc(d.Scale, scene.One()),
		},
	}}
	for i := range d.Children {
		c, err := templateFromDoc(path, &d.Children[i])
		if err != nil {
			return nil, err
		}
		t.children = append(t.children, c)
	}
	return t, nil
}

// vec3FromDoc converts a document vector, using def when it is absent.
func vec3FromDoc(v []float32, def scene.Vector3) scene.Vector3 {
	if len(v) != 3 {
		return def
	}
	return scene.Vec3(v[0], v[1], v[2])
}
