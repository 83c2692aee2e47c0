package store

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/dmitrijs2005/filedesk/internal/client/client"
	"github.com/dmitrijs2005/filedesk/internal/client/models"
	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu sync.Mutex

	listFn   func(ctx context.Context) ([]models.FileRecord, error)
	deleteFn func(ctx context.Context, id string) error

	listCalls    int
	deleteCalls  int
	lastDeleteID string
}

func (f *fakeClient) UploadFile(context.Context, string, io.Reader) (models.FileRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) UploadLabelFile(context.Context, string, io.Reader) (models.FileRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	f.mu.Lock()
	f.listCalls++
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return []models.FileRecord{}, nil
	}
	return fn(ctx)
}

func (f *fakeClient) DeleteFile(ctx context.Context, id string) error {
	f.mu.Lock()
	f.deleteCalls++
	f.lastDeleteID = id
	fn := f.deleteFn
	f.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(ctx, id)
}

func (f *fakeClient) Ping(context.Context) error { return nil }

func rec(id string) models.FileRecord {
	return models.FileRecord{"id": id, "name": "file-" + id}
}

func TestNew_InitialState(t *testing.T) {
	s := New(&fakeClient{}, logging.Nop())

	st := s.Snapshot()
	assert.Equal(t, []models.FileRecord{}, st.Files)
	assert.NotNil(t, s.Files())
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
}

func TestFetchFiles_Success(t *testing.T) {
	want := []models.FileRecord{rec("3"), rec("1"), rec("2")}

	var s *FileStore
	var loadingDuring bool
	fc := &fakeClient{listFn: func(context.Context) ([]models.FileRecord, error) {
		loadingDuring = s.Loading()
		return want, nil
	}}
	s = New(fc, logging.Nop())

	s.FetchFiles(context.Background())

	assert.True(t, loadingDuring)
	assert.False(t, s.Loading())
	assert.Empty(t, s.Err())
	assert.Equal(t, want, s.Files())
	assert.Equal(t, 1, fc.listCalls)
}

func TestFetchFiles_ReplacesWholesale(t *testing.T) {
	lists := [][]models.FileRecord{{rec("1"), rec("2")}, {rec("9")}}
	fc := &fakeClient{}
	fc.listFn = func(context.Context) ([]models.FileRecord, error) {
		return lists[fc.listCalls-1], nil
	}
	s := New(fc, logging.Nop())

	s.FetchFiles(context.Background())
	first := s.Files()
	s.FetchFiles(context.Background())

	assert.Equal(t, []models.FileRecord{rec("9")}, s.Files())
	assert.Equal(t, []models.FileRecord{rec("1"), rec("2")}, first)
}

func TestFetchFiles_FailureKeepsList(t *testing.T) {
	fc := &fakeClient{}
	s := New(fc, logging.Nop())

	fc.listFn = func(context.Context) ([]models.FileRecord, error) {
		return []models.FileRecord{rec("1")}, nil
	}
	s.FetchFiles(context.Background())

	fc.listFn = func(context.Context) ([]models.FileRecord, error) {
		return nil, &client.Error{Message: client.MsgFetchFailed, Cause: errors.New("500")}
	}
	s.FetchFiles(context.Background())

	assert.Equal(t, client.MsgFetchFailed, s.Err())
	assert.False(t, s.Loading())
	assert.Equal(t, []models.FileRecord{rec("1")}, s.Files())
}

func TestFetchFiles_EmptyMessageFallsBack(t *testing.T) {
	fc := &fakeClient{listFn: func(context.Context) ([]models.FileRecord, error) {
		return nil, &client.Error{}
	}}
	s := New(fc, logging.Nop())

	s.FetchFiles(context.Background())
	assert.Equal(t, client.MsgFetchFailed, s.Err())
}

func TestActions_ClearErrorBeforeCall(t *testing.T) {
	var s *FileStore
	var errDuring []string

	fc := &fakeClient{}
	fc.listFn = func(context.Context) ([]models.FileRecord, error) {
		errDuring = append(errDuring, s.Err())
		return nil, errors.New("list broke")
	}
	fc.deleteFn = func(context.Context, string) error {
		errDuring = append(errDuring, s.Err())
		return errors.New("delete broke")
	}
	s = New(fc, logging.Nop())

	s.FetchFiles(context.Background())
	require.Equal(t, "list broke", s.Err())

	s.DeleteFile(context.Background(), "1")
	require.Equal(t, "delete broke", s.Err())

	s.FetchFiles(context.Background())

	assert.Equal(t, []string{"", "", ""}, errDuring)
}

func TestDeleteFile_SuccessRefetchesOnce(t *testing.T) {
	var s *FileStore
	var loadingDuringDelete bool

	fc := &fakeClient{
		deleteFn: func(context.Context, string) error {
			loadingDuringDelete = s.Loading()
			return nil
		},
		listFn: func(context.Context) ([]models.FileRecord, error) {
			return []models.FileRecord{rec("2")}, nil
		},
	}
	s = New(fc, logging.Nop())

	s.DeleteFile(context.Background(), "1")

	assert.True(t, loadingDuringDelete)
	assert.Equal(t, 1, fc.deleteCalls)
	assert.Equal(t, "1", fc.lastDeleteID)
	assert.Equal(t, 1, fc.listCalls)
	assert.Equal(t, []models.FileRecord{rec("2")}, s.Files())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Err())
}

func TestDeleteFile_FailureDoesNotRefetch(t *testing.T) {
	fc := &fakeClient{
		listFn: func(context.Context) ([]models.FileRecord, error) {
			return []models.FileRecord{rec("1")}, nil
		},
		deleteFn: func(context.Context, string) error {
			return &client.Error{Message: client.MsgDeleteFailed, Cause: &client.ServerFailure{Status: 404}}
		},
	}
	s := New(fc, logging.Nop())
	s.FetchFiles(context.Background())
	require.Equal(t, 1, fc.listCalls)

	s.DeleteFile(context.Background(), "missing")

	assert.Equal(t, 1, fc.listCalls)
	assert.Equal(t, client.MsgDeleteFailed, s.Err())
	assert.Equal(t, []models.FileRecord{rec("1")}, s.Files())
	assert.False(t, s.Loading())
}

func TestDeleteFile_RefetchFailure(t *testing.T) {
	fc := &fakeClient{listFn: func(context.Context) ([]models.FileRecord, error) {
		return nil, &client.Error{Message: client.MsgFetchFailed}
	}}
	s := New(fc, logging.Nop())

	s.DeleteFile(context.Background(), "1")

	assert.Equal(t, 1, fc.deleteCalls)
	assert.Equal(t, 1, fc.listCalls)
	assert.Equal(t, client.MsgFetchFailed, s.Err())
	assert.False(t, s.Loading())
}

func TestFiles_ReturnsCopy(t *testing.T) {
	fc := &fakeClient{listFn: func(context.Context) ([]models.FileRecord, error) {
		return []models.FileRecord{rec("1")}, nil
	}}
	s := New(fc, logging.Nop())
	s.FetchFiles(context.Background())

	got := s.Files()
	got[0] = rec("x")

	assert.Equal(t, []models.FileRecord{rec("1")}, s.Files())
}

func TestSubscribe(t *testing.T) {
	fc := &fakeClient{listFn: func(context.Context) ([]models.FileRecord, error) {
		return []models.FileRecord{rec("1")}, nil
	}}
	s := New(fc, logging.Nop())

	var seen []State
	unsubscribe := s.Subscribe(func(st State) { seen = append(seen, st) })

	s.FetchFiles(context.Background())

	// clear error, loading on, files, loading off
	require.Len(t, seen, 4)
	assert.True(t, seen[1].Loading)
	assert.Equal(t, []models.FileRecord{rec("1")}, seen[2].Files)
	assert.True(t, seen[2].Loading)
	assert.False(t, seen[3].Loading)

	unsubscribe()
	unsubscribe()
	s.FetchFiles(context.Background())
	assert.Len(t, seen, 4)
}

func TestConcurrentActions(t *testing.T) {
	fc := &fakeClient{listFn: func(context.Context) ([]models.FileRecord, error) {
		return []models.FileRecord{rec("1")}, nil
	}}
	s := New(fc, logging.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); s.FetchFiles(context.Background()) }()
		go func() { defer wg.Done(); s.DeleteFile(context.Background(), "1") }()
	}
	wg.Wait()

	assert.False(t, s.Loading())
	assert.Equal(t, 16, fc.listCalls)
	assert.Equal(t, 8, fc.deleteCalls)
	assert.Equal(t, []models.FileRecord{rec("1")}, s.Files())
}
