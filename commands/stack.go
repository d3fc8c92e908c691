// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

// Stack is the undo/redo history: an ordered list of executed commands
// with an index separating the undoable past from the redoable future.
// Executing a new command truncates the redo tail.
type Stack struct {
	commands []Command
	top      int // number of commands in the executed (undoable) state
}

// Do executes the command against the context and records it as the
// newest undoable step, discarding any redoable commands.
func (s *Stack) Do(ctx *Context, c Command) {
	c.Execute(ctx)
	s.commands = append(s.commands[:s.top], c)
	s.top = len(s.commands)
}

// CanUndo reports whether there is a command to undo.
func (s *Stack) CanUndo() bool { return s.top > 0 }

// CanRedo reports whether there is a command to redo.
func (s *Stack) CanRedo() bool { return s.top < len(s.commands) }

// Undo reverts the newest executed command, returning its name and true,
// or "" and false if there is nothing to undo.
func (s *Stack) Undo(ctx *Context) (string, bool) {
	if !s.CanUndo() {
		return "", false
	}
	s.top--
	c := s.commands[s.top]
	c.Revert(ctx)
	return c.Name(), true
}

// Redo re-executes the most recently undone command, returning its name
// and true, or "" and false if there is nothing to redo.
func (s *Stack) Redo(ctx *Context) (string, bool) {
	if !s.CanRedo() {
		return "", false
	}
	c := s.commands[s.top]
	c.Execute(ctx)
	s.top++
	return c.Name(), true
}
