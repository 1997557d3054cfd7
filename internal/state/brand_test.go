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

func TestBrandStoreFetchAll(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockBrandRepository
	}

	brands := []model.Brand{
		{ID: gofakeit.UUID(), Name: gofakeit.Company(), Description: gofakeit.Sentence(5), LogoURL: gofakeit.URL()},
		{ID: gofakeit.UUID(), Name: gofakeit.Company(), Description: gofakeit.Sentence(5), LogoURL: gofakeit.URL()},
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, s *BrandStore, err error, d deps)
	}

	tests := []testCase{
		{
			name: "success: mirror replaced with fetched brands",
			setup: func(d deps) {
				d.repository.
					On("GetAll", mock.Anything).
					Return(brands, nil).
					Once()
			},
			assert: func(t *testing.T, s *BrandStore, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, brands, s.Brands())
				assert.False(t, s.Loading())
				assert.Empty(t, s.Err())
			},
		},
		{
			name: "repository error: mirror untouched, error message recorded",
			setup: func(d deps) {
				d.repository.
					On("GetAll", mock.Anything).
					Return(([]model.Brand)(nil), errors.New("network unreachable")).
					Once()
			},
			assert: func(t *testing.T, s *BrandStore, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "network unreachable")
				assert.Empty(t, s.Brands())
				assert.False(t, s.Loading())
				assert.Equal(t, "network unreachable", s.Err())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockBrandRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			s := NewBrandStore(d.repository)

			err := s.FetchAll(context.Background())
			tt.assert(t, s, err, d)
		})
	}
}

func TestBrandStoreCreate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockBrandRepository
	}

	params := model.CreateBrandParams{
		Name:        gofakeit.Company(),
		Description: gofakeit.Sentence(5),
		LogoURL:     gofakeit.URL(),
	}
	created := &model.Brand{
		ID:          gofakeit.UUID(),
		Name:        params.Name,
		Description: params.Description,
		LogoURL:     params.LogoURL,
	}

	type testCase struct {
		name   string
		params model.CreateBrandParams
		setup  func(d deps)
		assert func(t *testing.T, s *BrandStore, res *model.Brand, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: invalid params never reach the repository",
			params: model.CreateBrandParams{Name: "", Description: "", LogoURL: "not a url"},
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, s *BrandStore, res *model.Brand, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				// Validation failure bypasses the store entirely.
				assert.False(t, s.Loading())
				assert.Empty(t, s.Err())
				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "repository error: message recorded, nothing appended",
			params: params,
			setup: func(d deps) {
				d.repository.
					On("Create", mock.Anything, params).
					Return((*model.Brand)(nil), errors.New("write denied")).
					Once()
			},
			assert: func(t *testing.T, s *BrandStore, res *model.Brand, err error, d deps) {
				require.Error(t, err)
				assert.Nil(t, res)
				assert.Empty(t, s.Brands())
				assert.Equal(t, "write denied", s.Err())
			},
		},
		{
			name:   "success: created brand appended to the mirror",
			params: params,
			setup: func(d deps) {
				d.repository.
					On("Create", mock.Anything, params).
					Return(created, nil).
					Once()
			},
			assert: func(t *testing.T, s *BrandStore, res *model.Brand, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, created, res)
				assert.Equal(t, []model.Brand{*created}, s.Brands())
				assert.False(t, s.Loading())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockBrandRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			s := NewBrandStore(d.repository)

			res, err := s.Create(context.Background(), tt.params)
			tt.assert(t, s, res, err, d)
		})
	}
}

func TestBrandStoreUpdate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockBrandRepository
	}

	b1 := model.Brand{ID: "brand-1", Name: "Acme", Description: "tools", LogoURL: "https://cdn.example.com/acme.png"}
	b2 := model.Brand{ID: "brand-2", Name: "Globex", Description: "chemicals", LogoURL: "https://cdn.example.com/globex.png"}

	newName := "Acme Corp"
	patch := model.BrandPatch{Name: &newName}

	seed := func(t *testing.T, d deps, items []model.Brand) *BrandStore {
		t.Helper()
		d.repository.On("GetAll", mock.Anything).Return(items, nil).Once()
		s := NewBrandStore(d.repository)
		require.NoError(t, s.FetchAll(context.Background()))
		return s
	}

	type testCase struct {
		name   string
		id     string
		setup  func(d deps)
		assert func(t *testing.T, s *BrandStore, err error, d deps)
	}

	tests := []testCase{
		{
			name: "success: patch merged into the mirrored brand",
			id:   "brand-1",
			setup: func(d deps) {
				d.repository.
					On("Update", mock.Anything, "brand-1", patch).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, s *BrandStore, err error, d deps) {
				require.NoError(t, err)

				got := s.Brands()
				require.Len(t, got, 2)
				assert.Equal(t, "Acme Corp", got[0].Name)
				assert.Equal(t, "tools", got[0].Description)
				assert.Equal(t, b2.Name, got[1].Name)
			},
		},
		{
			name: "unmirrored id: remote write succeeds, mirror left alone",
			id:   "brand-missing",
			setup: func(d deps) {
				d.repository.
					On("Update", mock.Anything, "brand-missing", patch).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, s *BrandStore, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, []model.Brand{b1, b2}, s.Brands())
			},
		},
		{
			name: "repository error: mirror keeps the stale brand",
			id:   "brand-1",
			setup: func(d deps) {
				d.repository.
					On("Update", mock.Anything, "brand-1", patch).
					Return(model.ErrNotFound).
					Once()
			},
			assert: func(t *testing.T, s *BrandStore, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrNotFound)

				got := s.Brands()
				require.Len(t, got, 2)
				assert.Equal(t, "Acme", got[0].Name)
				assert.NotEmpty(t, s.Err())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockBrandRepository(t)}
			s := seed(t, d, []model.Brand{b1, b2})
			if tt.setup != nil {
				tt.setup(d)
			}

			err := s.Update(context.Background(), tt.id, patch)
			tt.assert(t, s, err, d)
		})
	}
}

func TestBrandStoreDelete(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockBrandRepository
	}

	b1 := model.Brand{ID: "brand-1", Name: "Acme"}
	b2 := model.Brand{ID: "brand-2", Name: "Globex"}

	type testCase struct {
		name   string
		id     string
		setup  func(d deps)
		assert func(t *testing.T, s *BrandStore, err error, d deps)
	}

	tests := []testCase{
		{
			name: "success: brand removed from the mirror",
			id:   "brand-1",
			setup: func(d deps) {
				d.repository.On("Delete", mock.Anything, "brand-1").Return(nil).Once()
			},
			assert: func(t *testing.T, s *BrandStore, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, []model.Brand{b2}, s.Brands())
			},
		},
		{
			name: "absent id: delete is a no-op on the mirror",
			id:   "brand-missing",
			setup: func(d deps) {
				d.repository.On("Delete", mock.Anything, "brand-missing").Return(nil).Once()
			},
			assert: func(t *testing.T, s *BrandStore, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, []model.Brand{b1, b2}, s.Brands())
			},
		},
		{
			name: "repository error: mirror untouched",
			id:   "brand-1",
			setup: func(d deps) {
				d.repository.
					On("Delete", mock.Anything, "brand-1").
					Return(errors.New("permission denied")).
					Once()
			},
			assert: func(t *testing.T, s *BrandStore, err error, d deps) {
				require.Error(t, err)
				assert.Equal(t, []model.Brand{b1, b2}, s.Brands())
				assert.Equal(t, "permission denied", s.Err())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockBrandRepository(t)}
			d.repository.On("GetAll", mock.Anything).Return([]model.Brand{b1, b2}, nil).Once()

			s := NewBrandStore(d.repository)
			require.NoError(t, s.FetchAll(context.Background()))

			if tt.setup != nil {
				tt.setup(d)
			}

			err := s.Delete(context.Background(), tt.id)
			tt.assert(t, s, err, d)
		})
	}
}

func TestBrandStoreCancelledContextDropsResolution(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockBrandRepository(t)
	repo.On("GetAll", mock.Anything).
		Return([]model.Brand{{ID: "brand-1", Name: "Acme"}}, nil).
		Once()

	s := NewBrandStore(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The repository call itself may still succeed; only the mirror update is
	// dropped once the initiating context is gone.
	require.NoError(t, s.FetchAll(ctx))

	assert.Empty(t, s.Brands())
	assert.True(t, s.Loading(), "pending phase stays set when the resolution is dropped")
}

func TestBrandStoreConcurrentUpdates(t *testing.T) {
	t.Parallel()

	nameA := "Acme Corp"
	nameB := "Acme Inc"

	repo := mocks.NewMockBrandRepository(t)
	repo.On("GetAll", mock.Anything).
		Return([]model.Brand{{ID: "brand-1", Name: "Acme"}}, nil).
		Once()
	repo.On("Update", mock.Anything, "brand-1", mock.Anything).Return(nil).Twice()

	s := NewBrandStore(repo)
	require.NoError(t, s.FetchAll(context.Background()))

	done := make(chan struct{}, 2)
	run := func(p model.BrandPatch) {
		_ = s.Update(context.Background(), "brand-1", p)
		done <- struct{}{}
	}
	go run(model.BrandPatch{Name: &nameA})
	go run(model.BrandPatch{Name: &nameB})
	<-done
	<-done

	// Neither outcome is serialized away: the last resolution to land wins.
	got := s.Brands()
	require.Len(t, got, 1)
	assert.Contains(t, []string{nameA, nameB}, got[0].Name)
	assert.False(t, s.Loading())
}
