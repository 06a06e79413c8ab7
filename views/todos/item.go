package todos

import (
	"htmxtodo/gen/htmxtodo/public/model"
)

type ItemProps struct {
	model.Todo
}

func (i ItemProps) DeleteUrl() string {
	return "/todo/" + i.Todo.ID.String()
}

func (i ItemProps) Id() string {
	return "todo-" + i.Todo.ID.String()
}

// NewItemProps wraps each todo for rendering.
func NewItemProps(todos []model.Todo) []ItemProps {
	items := make([]ItemProps, len(todos))
	for i, todo := range todos {
		items[i] = ItemProps{Todo: todo}
	}
	return items
}
