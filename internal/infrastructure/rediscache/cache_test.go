package rediscache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/errors"
	redisMock "github.com/Joseph25Rejo/quarks-inngest/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testBundle() ohlc.Bundle {
	return ohlc.Bundle{
		"1m": {{Datetime: "2024-03-15T10:00:00Z", Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10}},
		"1d": {},
	}
}

func TestCache_Get(t *testing.T) {
	payload, err := json.Marshal(testBundle())
	require.NoError(t, err)

	testCases := []struct {
		name     string
		mockFn   func(client *redisMock.MockClient)
		assertFn func(t *testing.T, bundle ohlc.Bundle, found bool, err error)
	}{
		{
			name: "hit",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Get(gomock.Any(), "quarks:historical:INFY.NS").Return(string(payload), nil)
			},
			assertFn: func(t *testing.T, bundle ohlc.Bundle, found bool, err error) {
				assert.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, testBundle(), bundle)
			},
		},
		{
			name: "miss",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Get(gomock.Any(), "quarks:historical:INFY.NS").Return("", nil)
			},
			assertFn: func(t *testing.T, bundle ohlc.Bundle, found bool, err error) {
				assert.NoError(t, err)
				assert.False(t, found)
			},
		},
		{
			name: "backend error",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Get(gomock.Any(), "quarks:historical:INFY.NS").
					Return("", errors.NewErrorDetails("boom", string(errors.RedisGetError), "get"))
			},
			assertFn: func(t *testing.T, bundle ohlc.Bundle, found bool, err error) {
				assert.Error(t, err)
				assert.False(t, found)
			},
		},
		{
			name: "corrupt payload",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Get(gomock.Any(), "quarks:historical:INFY.NS").Return("{not json", nil)
			},
			assertFn: func(t *testing.T, bundle ohlc.Bundle, found bool, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.CacheBackendError, errors.CodeOf(err))
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := redisMock.NewMockClient(ctrl)
			testCase.mockFn(client)

			cache := New(client, "quarks:", time.Hour)
			bundle, found, err := cache.Get(context.Background(), "INFY.NS")
			testCase.assertFn(t, bundle, found, err)
		})
	}
}

func TestCache_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := redisMock.NewMockClient(ctrl)
	client.EXPECT().
		Set(gomock.Any(), "quarks:historical:INFY.NS", gomock.Any(), time.Hour).
		DoAndReturn(func(_ context.Context, _ string, value any, _ time.Duration) error {
			var stored ohlc.Bundle
			require.NoError(t, json.Unmarshal([]byte(value.(string)), &stored))
			assert.Equal(t, testBundle(), stored)
			return nil
		})

	cache := New(client, "quarks:", time.Hour)
	assert.NoError(t, cache.Set(context.Background(), "INFY.NS", testBundle()))
}

func TestCache_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := redisMock.NewMockClient(ctrl)
	client.EXPECT().Del(gomock.Any(), "quarks:historical:INFY.NS").Return(int64(1), nil)

	cache := New(client, "quarks:", time.Hour)
	assert.NoError(t, cache.Invalidate(context.Background(), "INFY.NS"))
}
