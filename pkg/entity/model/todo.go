package model

import "fmt"

// Todo is the model entity for the todo table.
type Todo struct {
	ID        *int64 `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// SaveTodoInput represents the body of a create or update request.
// A nil Text is written as NULL and rejected by the table constraint.
type SaveTodoInput struct {
	ID        *int64  `json:"id"`
	Text      *string `json:"text"`
	Completed bool    `json:"completed"`
}

// NewTodo returns an unsaved todo.
func NewTodo(text string, completed bool) Todo {
	return Todo{Text: text, Completed: completed}
}

// Equal reports whether all fields of t and o match.
func (t Todo) Equal(o Todo) bool {
	if (t.ID == nil) != (o.ID == nil) {
		return false
	}
	if t.ID != nil && *t.ID != *o.ID {
		return false
	}
	return t.Text == o.Text && t.Completed == o.Completed
}

// Input converts t into a save input.
func (t Todo) Input() SaveTodoInput {
	text := t.Text
	return SaveTodoInput{ID: t.ID, Text: &text, Completed: t.Completed}
}

func (t Todo) String() string {
	id := "null"
	if t.ID != nil {
		id = fmt.Sprint(*t.ID)
	}
	return fmt.Sprintf("Todo{id=%s, text=%q, completed=%t}", id, t.Text, t.Completed)
}
