// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-service-template/internal/mock"
	"github.com/MKhiriev/go-service-template/internal/store"
	"github.com/MKhiriev/go-service-template/internal/validators"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Mock: inner ExampleService
// ─────────────────────────────────────────────

type mockInnerService struct {
	createFn func(ctx context.Context, req models.ExampleCreateRequest) (models.Example, error)
	getFn    func(ctx context.Context, id int64) (models.Example, error)
	listFn   func(ctx context.Context, page int, baseURL string) (models.ExampleListResponse, error)
	updateFn func(ctx context.Context, id int64, req models.ExampleUpdateRequest) (models.Example, error)
	deleteFn func(ctx context.Context, id int64) error
	searchFn func(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error)
}

func (m *mockInnerService) Create(ctx context.Context, req models.ExampleCreateRequest) (models.Example, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Example{}, nil
}

func (m *mockInnerService) Get(ctx context.Context, id int64) (models.Example, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Example{}, nil
}

func (m *mockInnerService) List(ctx context.Context, page int, baseURL string) (models.ExampleListResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page, baseURL)
	}
	return models.ExampleListResponse{}, nil
}

func (m *mockInnerService) Update(ctx context.Context, id int64, req models.ExampleUpdateRequest) (models.Example, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return models.Example{}, nil
}

func (m *mockInnerService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockInnerService) Search(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// ExampleValidationService
// ─────────────────────────────────────────────

func TestValidationService_Create(t *testing.T) {
	called := false
	inner := &mockInnerService{createFn: func(_ context.Context, req models.ExampleCreateRequest) (models.Example, error) {
		called = true
		return req.ToExample(), nil
	}}
	svc := NewExampleValidationService().Wrap(inner)

	_, err := svc.Create(context.Background(), models.ExampleCreateRequest{})
	var vErrs validators.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "missing", vErrs[0].Type)
	assert.False(t, called, "inner service must not run on invalid input")

	_, err = svc.Create(context.Background(), models.ExampleCreateRequest{Name: strPtr(strings.Repeat("x", 256))})
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "string_too_long", vErrs[0].Type)

	got, err := svc.Create(context.Background(), models.ExampleCreateRequest{Name: strPtr("ok")})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", got.Name)
}

func TestValidationService_Update_LooksUpBeforeValidating(t *testing.T) {
	tests := []struct {
		name        string
		getErr      error
		req         models.ExampleUpdateRequest
		wantErr     error
		wantInvalid bool
		wantUpdate  bool
	}{
		{name: "missing item with invalid body", getErr: store.ErrExampleNotFound, req: models.ExampleUpdateRequest{Name: strPtr("")}, wantErr: store.ErrExampleNotFound},
		{name: "missing item with valid body", getErr: store.ErrExampleNotFound, req: models.ExampleUpdateRequest{IsActive: boolPtr(false)}, wantErr: store.ErrExampleNotFound},
		{name: "existing item with invalid body", req: models.ExampleUpdateRequest{Name: strPtr("")}, wantInvalid: true},
		{name: "existing item with valid body", req: models.ExampleUpdateRequest{Name: strPtr("Renamed")}, wantUpdate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			inner := &mockInnerService{
				getFn: func(_ context.Context, id int64) (models.Example, error) {
					return models.Example{ID: id}, tt.getErr
				},
				updateFn: func(_ context.Context, id int64, _ models.ExampleUpdateRequest) (models.Example, error) {
					updated = true
					return models.Example{ID: id, Name: "Renamed"}, nil
				},
			}
			svc := NewExampleValidationService().Wrap(inner)

			_, err := svc.Update(context.Background(), 999, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantInvalid:
				var vErrs validators.ValidationErrors
				assert.ErrorAs(t, err, &vErrs)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantUpdate, updated)
		})
	}
}

func TestValidationService_List_Page(t *testing.T) {
	var gotPage int
	inner := &mockInnerService{listFn: func(_ context.Context, page int, _ string) (models.ExampleListResponse, error) {
		gotPage = page
		return models.ExampleListResponse{}, nil
	}}
	svc := NewExampleValidationService().Wrap(inner)

	_, err := svc.List(context.Background(), 0, listURL)
	var vErrs validators.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, []string{"query", "page"}, vErrs[0].Loc)

	_, err = svc.List(context.Background(), 2, listURL)
	require.NoError(t, err)
	assert.Equal(t, 2, gotPage)
}

func TestValidationService_PassThrough(t *testing.T) {
	inner := &mockInnerService{
		getFn:    func(context.Context, int64) (models.Example, error) { return sampleExample(1), nil },
		deleteFn: func(context.Context, int64) error { return store.ErrExampleNotFound },
		searchFn: func(context.Context, models.ExampleFilter) ([]models.Example, error) { return examples(3), nil },
	}
	svc := NewExampleValidationService().Wrap(inner)

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), store.ErrExampleNotFound)

	found, err := svc.Search(context.Background(), models.ExampleFilter{})
	require.NoError(t, err)
	assert.Len(t, found, 3)
}

// ─────────────────────────────────────────────
// ExampleCachingService
// ─────────────────────────────────────────────

func TestCachingService_Get_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)
	inner := &mockInnerService{getFn: func(context.Context, int64) (models.Example, error) {
		t.Fatal("inner must not be called on cache hit")
		return models.Example{}, nil
	}}
	svc := NewExampleCachingService(cache).Wrap(inner)

	cache.EXPECT().Get(gomock.Any(), int64(1)).Return(sampleExample(1), nil)

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestCachingService_Get_MissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)
	inner := &mockInnerService{getFn: func(_ context.Context, id int64) (models.Example, error) {
		return sampleExample(id), nil
	}}
	svc := NewExampleCachingService(cache).Wrap(inner)

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), int64(2)).Return(models.Example{}, store.ErrCacheMiss),
		cache.EXPECT().Set(gomock.Any(), sampleExample(2)).Return(nil),
	)

	got, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

func TestCachingService_Get_CacheErrorsAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)
	inner := &mockInnerService{getFn: func(_ context.Context, id int64) (models.Example, error) {
		return sampleExample(id), nil
	}}
	svc := NewExampleCachingService(cache).Wrap(inner)

	cache.EXPECT().Get(gomock.Any(), int64(3)).Return(models.Example{}, store.ErrCache)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(store.ErrCache)

	got, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestCachingService_Get_NotFoundIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)
	inner := &mockInnerService{getFn: func(context.Context, int64) (models.Example, error) {
		return models.Example{}, store.ErrExampleNotFound
	}}
	svc := NewExampleCachingService(cache).Wrap(inner)

	cache.EXPECT().Get(gomock.Any(), int64(4)).Return(models.Example{}, store.ErrCacheMiss)

	_, err := svc.Get(context.Background(), 4)
	assert.ErrorIs(t, err, store.ErrExampleNotFound)
}

func TestCachingService_Get_ConcurrentMissesShareOneLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)

	var loads atomic.Int32
	release := make(chan struct{})
	inner := &mockInnerService{getFn: func(_ context.Context, id int64) (models.Example, error) {
		loads.Add(1)
		<-release
		return sampleExample(id), nil
	}}
	svc := NewExampleCachingService(cache).Wrap(inner)

	const callers = 8
	var misses sync.WaitGroup
	misses.Add(callers)
	cache.EXPECT().Get(gomock.Any(), int64(5)).
		DoAndReturn(func(context.Context, int64) (models.Example, error) {
			misses.Done()
			return models.Example{}, store.ErrCacheMiss
		}).Times(callers)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).MinTimes(1).MaxTimes(callers)

	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.Get(context.Background(), 5)
			assert.NoError(t, err)
			assert.Equal(t, int64(5), got.ID)
		}()
	}

	misses.Wait()
	// give the goroutines a moment to join the in-flight call
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Less(t, loads.Load(), int32(callers))
}

func TestCachingService_Get_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)

	var loads atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	inner := &mockInnerService{getFn: func(ctx context.Context, id int64) (models.Example, error) {
		loads.Add(1)
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return models.Example{}, err
		}
		return sampleExample(id), nil
	}}
	svc := NewExampleCachingService(cache).Wrap(inner)

	missed := make(chan struct{}, 2)
	cache.EXPECT().Get(gomock.Any(), int64(6)).
		DoAndReturn(func(context.Context, int64) (models.Example, error) {
			missed <- struct{}{}
			return models.Example{}, store.ErrCacheMiss
		}).Times(2)
	cache.EXPECT().Set(gomock.Any(), sampleExample(6)).Return(nil)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	defer cancelFirst()
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = svc.Get(firstCtx, 6)
	}()
	<-started

	var (
		got    models.Example
		gotErr error
	)
	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		got, gotErr = svc.Get(context.Background(), 6)
	}()
	<-missed
	<-missed
	// give the second caller a moment to join the in-flight call
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	close(release)
	<-firstDone
	<-secondDone

	require.NoError(t, gotErr)
	assert.Equal(t, int64(6), got.ID)
	assert.Equal(t, int32(1), loads.Load())
}

func TestCachingService_UpdateInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)
	inner := &mockInnerService{updateFn: func(_ context.Context, id int64, _ models.ExampleUpdateRequest) (models.Example, error) {
		return sampleExample(id), nil
	}}
	svc := NewExampleCachingService(cache).Wrap(inner)

	cache.EXPECT().Delete(gomock.Any(), int64(6)).Return(nil)

	_, err := svc.Update(context.Background(), 6, models.ExampleUpdateRequest{})
	require.NoError(t, err)
}

func TestCachingService_UpdateFailureKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)
	inner := &mockInnerService{updateFn: func(context.Context, int64, models.ExampleUpdateRequest) (models.Example, error) {
		return models.Example{}, errors.New("db down")
	}}
	svc := NewExampleCachingService(cache).Wrap(inner)

	_, err := svc.Update(context.Background(), 6, models.ExampleUpdateRequest{})
	assert.Error(t, err)
}

func TestCachingService_DeleteInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)
	inner := &mockInnerService{deleteFn: func(_ context.Context, id int64) error {
		if id == 8 {
			return store.ErrExampleNotFound
		}
		return nil
	}}
	svc := NewExampleCachingService(cache).Wrap(inner)

	cache.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
	cache.EXPECT().Delete(gomock.Any(), int64(8)).Return(store.ErrCache)

	assert.NoError(t, svc.Delete(context.Background(), 7))
	assert.ErrorIs(t, svc.Delete(context.Background(), 8), store.ErrExampleNotFound)
}

func TestCachingService_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockExampleCache(ctrl)
	inner := &mockInnerService{
		createFn: func(_ context.Context, req models.ExampleCreateRequest) (models.Example, error) { return req.ToExample(), nil },
		listFn: func(context.Context, int, string) (models.ExampleListResponse, error) {
			return models.ExampleListResponse{Count: 7}, nil
		},
	}
	svc := NewExampleCachingService(cache).Wrap(inner)

	created, err := svc.Create(context.Background(), models.ExampleCreateRequest{Name: strPtr("n")})
	require.NoError(t, err)
	assert.Equal(t, "n", created.Name)

	list, err := svc.List(context.Background(), 1, listURL)
	require.NoError(t, err)
	assert.Equal(t, 7, list.Count)
}
