package loader

import (
	"io"
	"net/url"
	"strings"

	"github.com/stretchr/testify/mock"
)

// MockLoader implements the loader.Loader interface for testing
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) GetSourceURL() *url.URL {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*url.URL)
}

func (m *MockLoader) GetReader() (io.ReadCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// NewMockLoaderWithSource returns a MockLoader serving source under the given URL.
func NewMockLoaderWithSource(source, rawURL string) *MockLoader {
	m := new(MockLoader)
	u, _ := url.Parse(rawURL)
	m.On("GetReader").Return(io.NopCloser(strings.NewReader(source)), nil)
	m.On("GetSourceURL").Return(u).Maybe()
	return m
}
