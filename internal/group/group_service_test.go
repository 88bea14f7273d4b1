package group_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-farmbook/internal/group"
	grouperrors "go-farmbook/internal/group/errors"
	kafkaMock "go-farmbook/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn  func(ctx context.Context, g *group.Group) error
	findAllFn func(ctx context.Context, farmID string) ([]group.Group, error)
	findFn    func(ctx context.Context, farmID, id string) (*group.Group, error)
	updateFn  func(ctx context.Context, g *group.Group) error
	deleteFn  func(ctx context.Context, farmID, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) group.Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, g *group.Group) error {
	return f.createFn(ctx, g)
}
func (f *fakeRepo) FindAllByFarm(ctx context.Context, farmID string) ([]group.Group, error) {
	return f.findAllFn(ctx, farmID)
}
func (f *fakeRepo) FindByIDAndFarm(ctx context.Context, farmID, id string) (*group.Group, error) {
	return f.findFn(ctx, farmID, id)
}
func (f *fakeRepo) Update(ctx context.Context, g *group.Group) error {
	return f.updateFn(ctx, g)
}
func (f *fakeRepo) Delete(ctx context.Context, farmID, id string) error {
	return f.deleteFn(ctx, farmID, id)
}

func setup(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeRepo, *kafkaMock.MockOutboxRepository, group.Service) {
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeRepo{}
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	return db, mock, repo, outbox, group.NewService(db, repo, outbox)
}

func expectOutbox(outbox *kafkaMock.MockOutboxRepository) {
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
}

func TestGroupService_Create(t *testing.T) {
	t.Run("members are deduplicated and blanks dropped", func(t *testing.T) {
		_, mock, repo, outbox, svc := setup(t)

		repo.createFn = func(ctx context.Context, g *group.Group) error { return nil }
		mock.ExpectBegin()
		expectOutbox(outbox)
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), "farm-1", group.CreateGroupRequest{
			Name:      "North crew",
			Wage:      300,
			Employees: []string{"e1", " ", "e2", "e1", "ghost"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"e1", "e2", "ghost"}, resp.Employees)
		assert.Equal(t, 300.0, resp.Wage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative wage", func(t *testing.T) {
		_, mock, _, _, svc := setup(t)

		_, err := svc.Create(context.Background(), "farm-1", group.CreateGroupRequest{Name: "x", Wage: -1})

		assert.ErrorIs(t, err, grouperrors.ErrNegativeWage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("persist error rolls back", func(t *testing.T) {
		_, mock, repo, _, svc := setup(t)

		repo.createFn = func(ctx context.Context, g *group.Group) error { return errors.New("boom") }
		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(context.Background(), "farm-1", group.CreateGroupRequest{Name: "x"})

		assert.EqualError(t, err, "boom")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupService_GetAll_EmptyMembersRenderAsList(t *testing.T) {
	_, _, repo, _, svc := setup(t)
	repo.findAllFn = func(ctx context.Context, farmID string) ([]group.Group, error) {
		return []group.Group{{ID: uuid.New(), Name: "Empty"}}, nil
	}

	resp, err := svc.GetAll(context.Background(), "farm-1")

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.NotNil(t, resp[0].Employees)
	assert.Empty(t, resp[0].Employees)
}

func TestGroupService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		_, mock, repo, outbox, svc := setup(t)

		repo.findFn = func(ctx context.Context, farmID, got string) (*group.Group, error) {
			return &group.Group{ID: id, Name: "Old", Wage: 100, Employees: []string{"e1"}}, nil
		}
		var saved group.Group
		repo.updateFn = func(ctx context.Context, g *group.Group) error {
			saved = *g
			return nil
		}
		mock.ExpectBegin()
		expectOutbox(outbox)
		mock.ExpectCommit()

		_, err := svc.Update(context.Background(), "farm-1", id.String(), group.UpdateGroupRequest{
			Name: "New", Wage: 320, Employees: []string{"e2"},
		})

		require.NoError(t, err)
		assert.Equal(t, "New", saved.Name)
		assert.Equal(t, 320.0, saved.Wage)
		assert.Equal(t, []string{"e2"}, saved.Employees)
	})

	t.Run("not found", func(t *testing.T) {
		_, mock, repo, _, svc := setup(t)

		repo.findFn = func(ctx context.Context, farmID, got string) (*group.Group, error) {
			return nil, gorm.ErrRecordNotFound
		}
		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Update(context.Background(), "farm-1", id.String(), group.UpdateGroupRequest{Name: "x"})

		assert.ErrorIs(t, err, grouperrors.ErrGroupNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, _, _, _, svc := setup(t)

		_, err := svc.Update(context.Background(), "farm-1", "123", group.UpdateGroupRequest{Name: "x"})

		assert.ErrorIs(t, err, grouperrors.ErrInvalidGroupID)
	})
}

func TestGroupService_Delete(t *testing.T) {
	_, mock, repo, outbox, svc := setup(t)
	id := uuid.NewString()

	repo.deleteFn = func(ctx context.Context, farmID, got string) error {
		assert.Equal(t, "farm-1", farmID)
		assert.Equal(t, id, got)
		return nil
	}
	mock.ExpectBegin()
	expectOutbox(outbox)
	mock.ExpectCommit()

	assert.NoError(t, svc.Delete(context.Background(), "farm-1", id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
