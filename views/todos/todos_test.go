package todos

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"htmxtodo/gen/htmxtodo/public/model"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestItem(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	out := render(t, Item(ItemProps{Todo: model.Todo{ID: id, Title: "Buy milk"}}))

	assert.Contains(t, out, `id="todo-0f8fad5b-d9cb-469f-a165-70867728950e"`)
	assert.Contains(t, out, `hx-delete="/todo/0f8fad5b-d9cb-469f-a165-70867728950e"`)
	assert.Contains(t, out, `hx-swap="outerHTML"`)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Delete</button>")
}

func TestItemEscapesTitle(t *testing.T) {
	out := render(t, Item(ItemProps{Todo: model.Todo{ID: uuid.New(), Title: `<script>alert("x")</script>`}}))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestAddTodo(t *testing.T) {
	out := render(t, AddTodo())

	assert.Contains(t, out, `hx-post="/todo"`)
	assert.Contains(t, out, `hx-target="#todo"`)
	assert.Contains(t, out, `hx-swap="beforebegin"`)
	assert.Contains(t, out, `_="on htmx:afterRequest reset() me"`)
	assert.Contains(t, out, `name="title"`)
}

func TestIndexPlacesAnchorAfterItems(t *testing.T) {
	items := NewItemProps([]model.Todo{
		{ID: uuid.New(), Title: "first"},
		{ID: uuid.New(), Title: "second"},
	})

	out := render(t, Index(items))

	form := strings.Index(out, "<form")
	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	anchor := strings.Index(out, `<div id="todo">`)
	assert.True(t, form < first && first < second && second < anchor, out)
}

func TestItemPropsUrls(t *testing.T) {
	id := uuid.New()
	props := ItemProps{Todo: model.Todo{ID: id}}

	assert.Equal(t, "/todo/"+id.String(), props.DeleteUrl())
	assert.Equal(t, "todo-"+id.String(), props.Id())
}
