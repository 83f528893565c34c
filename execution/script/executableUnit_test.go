package script

import (
	"errors"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/loxsh/execution/script/loader"
)

type mockReadCloser struct {
	mock.Mock
}

func (m *mockReadCloser) Read(p []byte) (n int, err error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *mockReadCloser) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestNewExecutableUnit(t *testing.T) {
	t.Parallel()
	logHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})

	t.Run("FromString", func(t *testing.T) {
		lod, err := loader.NewFromString("1 + 2")
		require.NoError(t, err)

		exe, err := NewExecutableUnit(logHandler, lod)
		require.NoError(t, err)
		require.Equal(t, "1 + 2", exe.GetSource())
		require.Len(t, exe.GetID(), checksumLength)
		require.Equal(t, lod, exe.GetLoader())
		require.Contains(t, exe.GetSourceURL().String(), "string://inline/")
		require.WithinDuration(t, time.Now(), exe.GetCreatedAt(), time.Second)
		require.NotNil(t, exe.Logger())
	})

	t.Run("same source same ID", func(t *testing.T) {
		a, err := NewExecutableUnit(logHandler, loader.NewMockLoaderWithSource("nil", "string://inline/a"))
		require.NoError(t, err)
		b, err := NewExecutableUnit(logHandler, loader.NewMockLoaderWithSource("nil", "string://inline/b"))
		require.NoError(t, err)
		require.Equal(t, a.GetID(), b.GetID())
	})

	t.Run("FromDisk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sum.lox")
		require.NoError(t, os.WriteFile(path, []byte("1 +\n2\n"), 0o600))

		lod, err := loader.NewFromDisk(path)
		require.NoError(t, err)

		exe, err := NewExecutableUnit(logHandler, lod)
		require.NoError(t, err)
		require.Equal(t, "1 +\n2\n", exe.GetSource())
		require.Contains(t, exe.String(), "ExecutableUnit{ID: "+exe.GetID())
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.lox")
		lod, err := loader.NewFromDisk(path)
		require.NoError(t, err)

		exe, err := NewExecutableUnit(logHandler, lod)
		require.Nil(t, exe)

		var ioErr *loader.IoError
		require.ErrorAs(t, err, &ioErr)
		require.Equal(t, path, ioErr.Path)
	})

	t.Run("invalid UTF-8", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bin.lox")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o600))
		lod, err := loader.NewFromDisk(path)
		require.NoError(t, err)

		exe, err := NewExecutableUnit(logHandler, lod)
		require.Nil(t, exe)
		require.ErrorIs(t, err, loader.ErrInvalidEncoding)

		var ioErr *loader.IoError
		require.ErrorAs(t, err, &ioErr)
		require.Equal(t, path, ioErr.Path)
	})

	t.Run("invalid UTF-8 in inline source", func(t *testing.T) {
		lod, err := loader.NewFromString("1 + \xff")
		require.NoError(t, err)

		exe, err := NewExecutableUnit(logHandler, lod)
		require.Nil(t, exe)
		require.ErrorIs(t, err, loader.ErrInvalidEncoding)

		var ioErr *loader.IoError
		require.ErrorAs(t, err, &ioErr)
		require.Equal(t, loader.InlineSourceName, ioErr.Path)
		require.Equal(t, "cannot read <input>: source is not valid UTF-8", err.Error())
	})

	t.Run("nil loader", func(t *testing.T) {
		exe, err := NewExecutableUnit(logHandler, nil)
		require.Nil(t, exe)
		require.ErrorIs(t, err, ErrLoaderNil)
	})

	t.Run("GetReader error", func(t *testing.T) {
		u, _ := url.Parse("string://inline/broken")
		mockLoader := new(loader.MockLoader)
		mockLoader.On("GetReader").Return(nil, errors.New("get reader error")).Once()
		mockLoader.On("GetSourceURL").Return(u).Once()

		exe, err := NewExecutableUnit(logHandler, mockLoader)
		require.Nil(t, exe)
		require.ErrorContains(t, err, "get reader error")

		var ioErr *loader.IoError
		require.ErrorAs(t, err, &ioErr)
		require.Equal(t, "string://inline/broken", ioErr.Path)
		mockLoader.AssertExpectations(t)
	})

	t.Run("Read error closes reader", func(t *testing.T) {
		u, _ := url.Parse("reader://stdin/x")
		reader := new(mockReadCloser)
		reader.On("Read", mock.Anything).Return(0, errors.New("read failed")).Once()
		reader.On("Close").Return(nil).Once()

		mockLoader := new(loader.MockLoader)
		mockLoader.On("GetReader").Return(reader, nil).Once()
		mockLoader.On("GetSourceURL").Return(u).Once()

		exe, err := NewExecutableUnit(logHandler, mockLoader)
		require.Nil(t, exe)
		require.ErrorContains(t, err, "read failed")

		reader.AssertExpectations(t)
		mockLoader.AssertExpectations(t)
	})

	t.Run("io.EOF is not an error", func(t *testing.T) {
		reader := new(mockReadCloser)
		reader.On("Read", mock.Anything).Return(0, io.EOF).Once()
		reader.On("Close").Return(nil).Once()

		mockLoader := new(loader.MockLoader)
		mockLoader.On("GetReader").Return(reader, nil).Once()

		exe, err := NewExecutableUnit(logHandler, mockLoader)
		require.NoError(t, err)
		require.Empty(t, exe.GetSource())
		reader.AssertExpectations(t)
	})
}
