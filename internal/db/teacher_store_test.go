package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeacherStore_CreateAndGetByName(t *testing.T) {
	store := testStore(t)
	teachers := NewTeacherStore(store)
	ctx := context.Background()

	teacher := &Teacher{Name: "Ms. Johnson", Subject: "Mathematics"}
	require.NoError(t, teachers.Create(ctx, teacher))
	assert.Greater(t, teacher.ID, int64(0))

	got, err := teachers.GetByName(ctx, "Ms. Johnson")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, teacher.ID, got.ID)
	assert.Equal(t, "Mathematics", got.Subject)

	missing, err := teachers.GetByName(ctx, "Ghost Teacher")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTeacherStore_ListAndCount(t *testing.T) {
	store := testStore(t)
	teachers := NewTeacherStore(store)
	ctx := context.Background()

	require.NoError(t, teachers.Create(ctx, &Teacher{Name: "Ms. Johnson", Subject: "Mathematics"}))
	require.NoError(t, teachers.Create(ctx, &Teacher{Name: "Mr. Smith", Subject: "History"}))

	all, err := teachers.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ms. Johnson", all[0].Name)
	assert.Equal(t, "Mr. Smith", all[1].Name)

	n, err := teachers.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestTeacherStore_Students(t *testing.T) {
	store := testStore(t)
	teachers := NewTeacherStore(store)
	students := NewStudentStore(store)
	ctx := context.Background()

	johnson := &Teacher{Name: "Ms. Johnson", Subject: "Mathematics"}
	smith := &Teacher{Name: "Mr. Smith", Subject: "History"}
	require.NoError(t, teachers.Create(ctx, johnson))
	require.NoError(t, teachers.Create(ctx, smith))

	for _, s := range []*Student{
		{Name: "Alice", Grade: sql.NullInt64{Int64: 95, Valid: true}, TeacherID: sql.NullInt64{Int64: johnson.ID, Valid: true}},
		{Name: "Bob", Grade: sql.NullInt64{Int64: 87, Valid: true}, TeacherID: sql.NullInt64{Int64: johnson.ID, Valid: true}},
		{Name: "Diana", Grade: sql.NullInt64{Int64: 82, Valid: true}, TeacherID: sql.NullInt64{Int64: smith.ID, Valid: true}},
	} {
		require.NoError(t, students.Create(ctx, s))
	}

	johnsons, err := teachers.Students(ctx, johnson.ID)
	require.NoError(t, err)
	require.Len(t, johnsons, 2)
	assert.Equal(t, "Alice", johnsons[0].Name)
	assert.Equal(t, "Bob", johnsons[1].Name)

	smiths, err := teachers.Students(ctx, smith.ID)
	require.NoError(t, err)
	require.Len(t, smiths, 1)
	assert.Equal(t, "Diana", smiths[0].Name)
}
