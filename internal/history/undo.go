// Package history tracks paint actions for undo/redo and session replay.
package history

import "layerpaint/internal/core"

// DefaultUndoCapacity bounds each of the undo and redo stacks.
const DefaultUndoCapacity = 100

// Action is a reversible grid mutation.
type Action interface {
	Apply(g *core.Grid)
	Revert(g *core.Grid)
}

// UndoTracker keeps the undo and redo stacks. An action lives on at most one
// of them at a time.
type UndoTracker struct {
	undo *stack[Action]
	redo *stack[Action]
}

// NewUndoTracker returns a tracker whose stacks each hold capacity actions;
// non-positive values select DefaultUndoCapacity.
func NewUndoTracker(capacity int) *UndoTracker {
	if capacity <= 0 {
		capacity = DefaultUndoCapacity
	}
	return &UndoTracker{undo: newStack[Action](capacity), redo: newStack[Action](capacity)}
}

// AddAction records an action that has already been applied. When the undo
// stack is full the action is dropped and false is returned. A recorded
// action discards the redo history.
func (u *UndoTracker) AddAction(a Action) bool {
	if a == nil || !u.undo.push(a) {
		return false
	}
	u.redo.reset()
	return true
}

// Undo reverts the most recent action on g and returns it. It returns false
// when there is nothing to undo.
func (u *UndoTracker) Undo(g *core.Grid) (Action, bool) {
	a, ok := u.undo.pop()
	if !ok {
		return nil, false
	}
	a.Revert(g)
	u.redo.push(a)
	return a, true
}

// Redo re-applies the most recently undone action on g and returns it. It
// returns false when there is nothing to redo.
func (u *UndoTracker) Redo(g *core.Grid) (Action, bool) {
	a, ok := u.redo.pop()
	if !ok {
		return nil, false
	}
	a.Apply(g)
	u.undo.push(a)
	return a, true
}

// UndoLen reports how many actions can be undone.
func (u *UndoTracker) UndoLen() int { return u.undo.size() }

// RedoLen reports how many actions can be redone.
func (u *UndoTracker) RedoLen() int { return u.redo.size() }
