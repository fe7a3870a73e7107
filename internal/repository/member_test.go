package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjun-lei/family-health-archive/constants"
	"github.com/wenjun-lei/family-health-archive/gen/ent"
)

func TestMemberCreateAndGet(t *testing.T) {
	client := newTestClient(t)
	repo := NewMemberRepository(client, testLogger())
	ctx := context.Background()

	relation := "mother"
	birth, err := time.Parse("2006-01-02", "1962-04-15")
	require.NoError(t, err)

	created, err := repo.Create(ctx, &CreateMemberRequest{
		Name:      "王芳",
		Relation:  &relation,
		BirthDate: &birth,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "王芳", created.Name)
	require.NotNil(t, created.Relation)
	assert.Equal(t, "mother", *created.Relation)
	assert.Nil(t, created.Gender)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	byName, err := repo.GetByName(ctx, "王芳")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
}

func TestMemberGetByNameIsCaseSensitive(t *testing.T) {
	client := newTestClient(t)
	repo := NewMemberRepository(client, testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, &CreateMemberRequest{Name: "Grandma Li"})
	require.NoError(t, err)

	_, err = repo.GetByName(ctx, "grandma li")
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}

func TestMemberDuplicateNameRejected(t *testing.T) {
	client := newTestClient(t)
	repo := NewMemberRepository(client, testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, &CreateMemberRequest{Name: "李四"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &CreateMemberRequest{Name: "李四"})
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestGetOrCreateByName(t *testing.T) {
	client := newTestClient(t)
	repo := NewMemberRepository(client, testLogger())
	ctx := context.Background()

	first, created, err := repo.GetOrCreateByName(ctx, "张伟")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.GetOrCreateByName(ctx, "张伟")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	unknown, created, err := repo.GetOrCreateByName(ctx, constants.UnknownMemberName)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, unknown.ID)
}

func TestGetOrCreateByNameConcurrent(t *testing.T) {
	client := newTestClient(t)
	repo := NewMemberRepository(client, testLogger())
	ctx := context.Background()

	const workers = 8

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, workers)
	createdFlags := make([]bool, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, created, err := repo.GetOrCreateByName(ctx, "李四")
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = m.ID
			createdFlags[i] = created
		}(i)
	}
	wg.Wait()

	createdCount := 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
		if createdFlags[i] {
			createdCount++
		}
	}
	assert.Equal(t, 1, createdCount)

	members, err := repo.ListMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestMemberExistsAndDelete(t *testing.T) {
	client := newTestClient(t)
	repo := NewMemberRepository(client, testLogger())
	ctx := context.Background()

	m, err := repo.Create(ctx, &CreateMemberRequest{Name: "赵六"})
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, m.ID))

	exists, err = repo.Exists(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
