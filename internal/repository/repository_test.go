package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todolist-api/internal/models"
	"github.com/yukikurage/todolist-api/internal/testutil"
	"gorm.io/gorm"
)

const (
	alice = "alice-sub"
	bob   = "bob-sub"
)

func seedTag(t *testing.T, repo TagRepository, owner, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, CognitoSub: owner}
	require.NoError(t, repo.Create(context.Background(), tag))
	return tag
}

func seedTodo(t *testing.T, repo TodoRepository, owner, description string) *models.Todo {
	t.Helper()
	todo := &models.Todo{Description: description, CognitoSub: owner}
	require.NoError(t, repo.Create(context.Background(), todo))
	return todo
}

func countJoinRows(t *testing.T, db *gorm.DB, column string, id uint64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.TodoTag{}).Where(column+" = ?", id).Count(&n).Error)
	return n
}

func TestTodoRepository_ListIsScopedToOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	todos := NewTodoRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	a1 := seedTodo(t, todos, alice, "alice one")
	seedTodo(t, todos, bob, "bob one")
	a2 := seedTodo(t, todos, alice, "alice two")
	work := seedTag(t, tags, alice, "work")
	require.NoError(t, todos.ReplaceTags(ctx, a2, []models.Tag{*work}))

	list, err := todos.List(ctx, alice)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a1.ID, list[0].ID)
	assert.Empty(t, list[0].Tags)
	assert.Equal(t, a2.ID, list[1].ID)
	require.Len(t, list[1].Tags, 1)
	assert.Equal(t, "work", list[1].Tags[0].Name)

	empty, err := todos.List(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTodoRepository_FindByID_ForeignOwnerIsNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	todos := NewTodoRepository(db)
	ctx := context.Background()

	todo := seedTodo(t, todos, alice, "mine")

	found, err := todos.FindByID(ctx, alice, todo.ID, "Tags")
	require.NoError(t, err)
	assert.Equal(t, "mine", found.Description)
	assert.False(t, found.IsDone)
	assert.False(t, found.CreatedAt.IsZero())

	_, err = todos.FindByID(ctx, bob, todo.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = todos.FindByID(ctx, alice, todo.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTodoRepository_UpdateWritesMutableColumns(t *testing.T) {
	db := testutil.NewTestDB(t)
	todos := NewTodoRepository(db)
	ctx := context.Background()

	todo := seedTodo(t, todos, alice, "draft")
	due := time.Date(2030, 1, 2, 15, 0, 0, 0, time.UTC)

	todo.Description = "final"
	todo.IsDone = true
	todo.DueDate = &due
	require.NoError(t, todos.Update(ctx, todo))

	reloaded, err := todos.FindByID(ctx, alice, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", reloaded.Description)
	assert.True(t, reloaded.IsDone)
	require.NotNil(t, reloaded.DueDate)
	assert.True(t, due.Equal(*reloaded.DueDate))
}

func TestTodoRepository_UpdateIgnoresForeignOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	todos := NewTodoRepository(db)
	ctx := context.Background()

	todo := seedTodo(t, todos, alice, "alice's")

	forged := *todo
	forged.CognitoSub = bob
	forged.Description = "hijacked"
	require.NoError(t, todos.Update(ctx, &forged))

	reloaded, err := todos.FindByID(ctx, alice, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice's", reloaded.Description)
}

func TestTodoRepository_ReplaceTagsClearsThenAdds(t *testing.T) {
	db := testutil.NewTestDB(t)
	todos := NewTodoRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	todo := seedTodo(t, todos, alice, "tagged")
	t1 := seedTag(t, tags, alice, "one")
	t2 := seedTag(t, tags, alice, "two")
	t3 := seedTag(t, tags, alice, "three")

	require.NoError(t, todos.ReplaceTags(ctx, todo, []models.Tag{*t1, *t2}))
	assert.Equal(t, int64(2), countJoinRows(t, db, "todo_id", todo.ID))

	require.NoError(t, todos.ReplaceTags(ctx, todo, []models.Tag{*t3}))
	reloaded, err := todos.FindByID(ctx, alice, todo.ID, "Tags")
	require.NoError(t, err)
	require.Len(t, reloaded.Tags, 1)
	assert.Equal(t, t3.ID, reloaded.Tags[0].ID)

	require.NoError(t, todos.ReplaceTags(ctx, todo, nil))
	assert.Equal(t, int64(0), countJoinRows(t, db, "todo_id", todo.ID))
	assert.Empty(t, todo.Tags)
}

func TestTodoRepository_DeleteRemovesAssociation(t *testing.T) {
	db := testutil.NewTestDB(t)
	todos := NewTodoRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	todo := seedTodo(t, todos, alice, "doomed")
	tag := seedTag(t, tags, alice, "keep")
	require.NoError(t, todos.ReplaceTags(ctx, todo, []models.Tag{*tag}))

	require.NoError(t, todos.Delete(ctx, alice, todo.ID))

	assert.Equal(t, int64(0), countJoinRows(t, db, "todo_id", todo.ID))
	_, err := tags.FindByID(ctx, alice, tag.ID)
	assert.NoError(t, err, "deleting a todo must not delete its tags")

	err = todos.Delete(ctx, alice, todo.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTodoRepository_DeleteForeignOwnerIsNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	todos := NewTodoRepository(db)
	ctx := context.Background()

	todo := seedTodo(t, todos, alice, "alice's")

	err := todos.Delete(ctx, bob, todo.ID)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = todos.FindByID(ctx, alice, todo.ID)
	assert.NoError(t, err)
}

func TestTagRepository_CRUDIsScopedToOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	tags := NewTagRepository(db)
	ctx := context.Background()

	mine := seedTag(t, tags, alice, "home")
	seedTag(t, tags, bob, "bob-home")

	list, err := tags.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "home", list[0].Name)

	_, err = tags.FindByID(ctx, bob, mine.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	mine.Name = "house"
	require.NoError(t, tags.Update(ctx, mine))
	reloaded, err := tags.FindByID(ctx, alice, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, "house", reloaded.Name)

	assert.ErrorIs(t, tags.Delete(ctx, bob, mine.ID), gorm.ErrRecordNotFound)
	require.NoError(t, tags.Delete(ctx, alice, mine.ID))
	assert.ErrorIs(t, tags.Delete(ctx, alice, mine.ID), gorm.ErrRecordNotFound)
}

func TestTagRepository_DeleteRemovesAssociation(t *testing.T) {
	db := testutil.NewTestDB(t)
	todos := NewTodoRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	todo := seedTodo(t, todos, alice, "has tag")
	tag := seedTag(t, tags, alice, "gone")
	require.NoError(t, todos.ReplaceTags(ctx, todo, []models.Tag{*tag}))

	require.NoError(t, tags.Delete(ctx, alice, tag.ID))

	assert.Equal(t, int64(0), countJoinRows(t, db, "tag_id", tag.ID))
	reloaded, err := todos.FindByID(ctx, alice, todo.ID, "Tags")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Tags)
}

func TestTagRepository_FindOwnedByIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	tags := NewTagRepository(db)
	ctx := context.Background()

	a := seedTag(t, tags, alice, "a")
	b := seedTag(t, tags, alice, "b")
	foreign := seedTag(t, tags, bob, "foreign")

	found, err := tags.FindOwnedByIDs(ctx, alice, []uint64{b.ID, foreign.ID, 9999, a.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, a.ID, found[0].ID)
	assert.Equal(t, b.ID, found[1].ID)

	none, err := tags.FindOwnedByIDs(ctx, alice, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTagRepository_ListQueryFiltersByOwner(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewTagRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `tags` WHERE cognito_sub = \\? ORDER BY tag_id").
		WithArgs(alice).
		WillReturnRows(sqlmock.NewRows([]string{"tag_id", "tag_name", "cognito_sub"}).
			AddRow(1, "work", alice))

	tags, err := repo.List(context.Background(), alice)

	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "work", tags[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_FindOwnedByIDsQueryFiltersByOwner(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewTagRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `tags` WHERE tag_id IN \\(\\?,\\?\\) AND cognito_sub = \\? ORDER BY tag_id").
		WithArgs(3, 4, alice).
		WillReturnRows(sqlmock.NewRows([]string{"tag_id", "tag_name", "cognito_sub"}).
			AddRow(3, "mine", alice))

	tags, err := repo.FindOwnedByIDs(context.Background(), alice, []uint64{3, 4})

	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_ListQueryFiltersByOwner(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `todos` WHERE cognito_sub = \\? ORDER BY todo_id").
		WithArgs(bob).
		WillReturnRows(sqlmock.NewRows([]string{"todo_id", "description", "is_done", "cognito_sub"}))

	todos, err := repo.List(context.Background(), bob)

	require.NoError(t, err)
	assert.Empty(t, todos)
	assert.NoError(t, mock.ExpectationsWereMet())
}
