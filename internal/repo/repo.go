package repo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"htmxtodo/gen/htmxtodo/public/model"

	. "github.com/go-jet/jet/v2/postgres"
	. "htmxtodo/gen/htmxtodo/public/table"
)

type Repository interface {
	FilterTodos(ctx context.Context) ([]model.Todo, error)
	CreateTodo(ctx context.Context, todo model.Todo) (model.Todo, error)
	DeleteTodoById(ctx context.Context, id uuid.UUID) error
}

func New(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

type repository struct {
	db *sql.DB
}

func (r *repository) FilterTodos(ctx context.Context) ([]model.Todo, error) {
	var results []model.Todo
	if err := filterTodosStmt().QueryContext(ctx, r.db, &results); err != nil {
		return nil, err
	}

	if results == nil {
		results = make([]model.Todo, 0)
	}

	return results, nil
}

// CreateTodo inserts todo with the id chosen by the caller.
func (r *repository) CreateTodo(ctx context.Context, todo model.Todo) (model.Todo, error) {
	var result model.Todo
	if err := createTodoStmt(todo).QueryContext(ctx, r.db, &result); err != nil {
		return result, err
	}

	return result, nil
}

// DeleteTodoById removes the row with id. Deleting a missing row is not an error.
func (r *repository) DeleteTodoById(ctx context.Context, id uuid.UUID) error {
	_, err := deleteTodoStmt(id).ExecContext(ctx, r.db)
	return err
}

func filterTodosStmt() SelectStatement {
	return SELECT(Todo.ID, Todo.Title).
		FROM(Todo)
}

func createTodoStmt(todo model.Todo) InsertStatement {
	return Todo.INSERT(Todo.ID, Todo.Title).
		VALUES(UUID(todo.ID), String(todo.Title)).
		RETURNING(Todo.AllColumns)
}

func deleteTodoStmt(id uuid.UUID) DeleteStatement {
	return Todo.DELETE().
		WHERE(Todo.ID.EQ(UUID(id)))
}
