package repository

import (
	"context"
	"regexp"
	"testing"

	"scribe/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPostRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	t.Run("Success With Owner Preload", func(t *testing.T) {
		postRows := sqlmock.NewRows([]string{"id", "user_id", "title", "content"}).
			AddRow(5, 1, "Hello", "World")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."id" = $1 ORDER BY "posts"."id" LIMIT $2`)).
			WithArgs(5, 1).
			WillReturnRows(postRows)

		userRows := sqlmock.NewRows([]string{"id", "nickname"}).AddRow(1, "alice")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
			WithArgs(1).
			WillReturnRows(userRows)

		post, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		if assert.NotNil(t, post) {
			assert.Equal(t, "Hello", post.Title)
			assert.Equal(t, "alice", post.User.Nickname)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."id" = $1`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		post, err := repo.GetByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, post)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	postRows := sqlmock.NewRows([]string{"id", "user_id", "title"}).
		AddRow(2, 1, "Newer").
		AddRow(1, 1, "Older")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" ORDER BY created_at desc`)).
		WillReturnRows(postRows)

	userRows := sqlmock.NewRows([]string{"id", "nickname"}).AddRow(1, "alice")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(1).
		WillReturnRows(userRows)

	posts, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "Newer", posts[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts" WHERE "posts"."id" = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(ctx, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{ID: 7, UserID: 1, Title: "T", Content: "edited"}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(ctx, post)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
