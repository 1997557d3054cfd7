package state

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalogcore/internal/model"
	"catalogcore/internal/state/mocks"
)

func seedNotifications(t *testing.T, repo *mocks.MockNotificationRepository, items []model.Notification) *NotificationStore {
	t.Helper()

	// Each store gets its own copy so parallel subtests never share a
	// backing array.
	seed := append([]model.Notification(nil), items...)
	repo.On("GetAll", mock.Anything).Return(seed, nil).Once()

	s := NewNotificationStore(repo)
	require.NoError(t, s.FetchAll(context.Background()))
	return s
}

func TestNotificationStoreFetchAll(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockNotificationRepository
	}

	items := []model.Notification{
		{ID: "n-1", Title: gofakeit.Sentence(3), Content: gofakeit.Sentence(8), IsRead: false},
		{ID: "n-2", Title: gofakeit.Sentence(3), Content: gofakeit.Sentence(8), IsRead: true},
		{ID: "n-3", Title: gofakeit.Sentence(3), Content: gofakeit.Sentence(8), IsRead: false},
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, s *NotificationStore, err error, d deps)
	}

	tests := []testCase{
		{
			name: "success: mirror replaced and unread recomputed",
			setup: func(d deps) {
				d.repository.
					On("GetAll", mock.Anything).
					Return(items, nil).
					Once()
			},
			assert: func(t *testing.T, s *NotificationStore, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, items, s.Notifications())
				assert.EqualValues(t, 2, s.UnreadCount())
			},
		},
		{
			name: "repository error: counter stays at zero",
			setup: func(d deps) {
				d.repository.
					On("GetAll", mock.Anything).
					Return(([]model.Notification)(nil), errors.New("read failed")).
					Once()
			},
			assert: func(t *testing.T, s *NotificationStore, err error, d deps) {
				require.Error(t, err)
				assert.Empty(t, s.Notifications())
				assert.Zero(t, s.UnreadCount())
				assert.Equal(t, "read failed", s.Err())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockNotificationRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			s := NewNotificationStore(d.repository)

			err := s.FetchAll(context.Background())
			tt.assert(t, s, err, d)
		})
	}
}

func TestNotificationStoreCreatePrepends(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockNotificationRepository(t)
	existing := []model.Notification{
		{ID: "n-old", Title: "older", Content: "body", IsRead: true},
	}
	s := seedNotifications(t, repo, existing)

	params := model.CreateNotificationParams{
		Title:   gofakeit.Sentence(3),
		Content: gofakeit.Sentence(8),
	}
	created := &model.Notification{ID: "n-new", Title: params.Title, Content: params.Content}

	repo.On("Create", mock.Anything, params).Return(created, nil).Once()

	res, err := s.Create(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, res)

	// Newest-first: the fresh notification lands at the head.
	got := s.Notifications()
	require.Len(t, got, 2)
	assert.Equal(t, "n-new", got[0].ID)
	assert.Equal(t, "n-old", got[1].ID)
	assert.EqualValues(t, 1, s.UnreadCount())
}

func TestNotificationStoreCreateValidation(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockNotificationRepository(t)
	s := NewNotificationStore(repo)

	res, err := s.Create(context.Background(), model.CreateNotificationParams{Title: "  ", Content: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Nil(t, res)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Zero(t, s.UnreadCount())
}

func TestNotificationStoreMarkAsRead(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockNotificationRepository
	}

	items := []model.Notification{
		{ID: "n-1", Title: "a", Content: "x", IsRead: false},
		{ID: "n-2", Title: "b", Content: "y", IsRead: true},
	}

	type testCase struct {
		name   string
		id     string
		setup  func(d deps)
		assert func(t *testing.T, s *NotificationStore, err error, d deps)
	}

	tests := []testCase{
		{
			name: "unread notification: flag flipped, counter decremented",
			id:   "n-1",
			setup: func(d deps) {
				d.repository.On("MarkAsRead", mock.Anything, "n-1").Return(nil).Once()
			},
			assert: func(t *testing.T, s *NotificationStore, err error, d deps) {
				require.NoError(t, err)

				got := s.Notifications()
				assert.True(t, got[0].IsRead)
				assert.Zero(t, s.UnreadCount())
			},
		},
		{
			name: "already read: idempotent, counter untouched",
			id:   "n-2",
			setup: func(d deps) {
				d.repository.On("MarkAsRead", mock.Anything, "n-2").Return(nil).Once()
			},
			assert: func(t *testing.T, s *NotificationStore, err error, d deps) {
				require.NoError(t, err)
				assert.EqualValues(t, 1, s.UnreadCount())
			},
		},
		{
			name: "repository error: nothing flipped",
			id:   "n-1",
			setup: func(d deps) {
				d.repository.
					On("MarkAsRead", mock.Anything, "n-1").
					Return(errors.New("write failed")).
					Once()
			},
			assert: func(t *testing.T, s *NotificationStore, err error, d deps) {
				require.Error(t, err)

				got := s.Notifications()
				assert.False(t, got[0].IsRead)
				assert.EqualValues(t, 1, s.UnreadCount())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockNotificationRepository(t)}
			s := seedNotifications(t, d.repository, items)
			if tt.setup != nil {
				tt.setup(d)
			}

			err := s.MarkAsRead(context.Background(), tt.id)
			tt.assert(t, s, err, d)
		})
	}
}

func TestNotificationStoreMarkAllAsRead(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockNotificationRepository(t)
	items := []model.Notification{
		{ID: "n-1", Title: "a", Content: "x", IsRead: false},
		{ID: "n-2", Title: "b", Content: "y", IsRead: false},
		{ID: "n-3", Title: "c", Content: "z", IsRead: false},
	}
	s := seedNotifications(t, repo, items)
	require.EqualValues(t, 3, s.UnreadCount())

	repo.On("MarkAllAsRead", mock.Anything).Return(nil).Once()

	require.NoError(t, s.MarkAllAsRead(context.Background()))

	for _, n := range s.Notifications() {
		assert.True(t, n.IsRead)
	}
	assert.Zero(t, s.UnreadCount())
}

func TestNotificationStoreDelete(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockNotificationRepository
	}

	items := []model.Notification{
		{ID: "n-1", Title: "a", Content: "x", IsRead: false},
		{ID: "n-2", Title: "b", Content: "y", IsRead: true},
	}

	type testCase struct {
		name   string
		id     string
		assert func(t *testing.T, s *NotificationStore, err error)
	}

	tests := []testCase{
		{
			name: "deleting an unread notification decrements the counter",
			id:   "n-1",
			assert: func(t *testing.T, s *NotificationStore, err error) {
				require.NoError(t, err)
				assert.Len(t, s.Notifications(), 1)
				assert.Zero(t, s.UnreadCount())
			},
		},
		{
			name: "deleting a read notification leaves the counter alone",
			id:   "n-2",
			assert: func(t *testing.T, s *NotificationStore, err error) {
				require.NoError(t, err)
				assert.Len(t, s.Notifications(), 1)
				assert.EqualValues(t, 1, s.UnreadCount())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockNotificationRepository(t)}
			s := seedNotifications(t, d.repository, items)

			d.repository.On("Delete", mock.Anything, tt.id).Return(nil).Once()

			err := s.Delete(context.Background(), tt.id)
			tt.assert(t, s, err)
		})
	}
}

func TestNotificationStoreUpdateRecomputesUnread(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockNotificationRepository(t)
	items := []model.Notification{
		{ID: "n-1", Title: "a", Content: "x", IsRead: true},
		{ID: "n-2", Title: "b", Content: "y", IsRead: false},
	}
	s := seedNotifications(t, repo, items)
	require.EqualValues(t, 1, s.UnreadCount())

	// An update may flip is_read in either direction; the counter is
	// recomputed from the mirror rather than adjusted incrementally.
	unread := false
	patch := model.NotificationPatch{IsRead: &unread}
	repo.On("Update", mock.Anything, "n-1", patch).Return(nil).Once()

	require.NoError(t, s.Update(context.Background(), "n-1", patch))

	got := s.Notifications()
	assert.False(t, got[0].IsRead)
	assert.EqualValues(t, 2, s.UnreadCount())
}
