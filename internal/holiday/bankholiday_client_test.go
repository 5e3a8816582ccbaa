package holiday

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(upstream *httptest.Server) (*bankHolidayClient, redismock.ClientMock) {
	rdb, mock := redismock.NewClientMock()
	return &bankHolidayClient{
		httpClient: upstream.Client(),
		cache:      rdb,
		baseURL:    upstream.URL,
		logger:     zap.NewNop(),
	}, mock
}

func TestBankHolidayClient_ForCountry(t *testing.T) {
	ctx := context.Background()

	holidays := []PublicHoliday{
		{Date: "2026-01-01", LocalName: "Neujahrstag", Name: "New Year's Day", CountryCode: "CH"},
		{Date: "2026-08-01", LocalName: "Bundesfeier", Name: "National Day", CountryCode: "CH"},
	}
	payload, err := json.Marshal(holidays)
	assert.NoError(t, err)

	t.Run("fetches and caches on miss", func(t *testing.T) {
		var requests int
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			assert.Equal(t, "/2026/CH", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(payload)
		}))
		defer upstream.Close()

		client, mock := newTestClient(upstream)
		mock.ExpectGet("bank_holidays:CH:2026").RedisNil()
		mock.ExpectSet("bank_holidays:CH:2026", payload, 24*time.Hour).SetVal("OK")

		got, err := client.ForCountry(ctx, "CH", 2026)

		assert.NoError(t, err)
		assert.Equal(t, holidays, got)
		assert.Equal(t, 1, requests)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("serves from cache without touching upstream", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("upstream must not be reached")
		}))
		defer upstream.Close()

		client, mock := newTestClient(upstream)
		mock.ExpectGet("bank_holidays:CH:2026").SetVal(string(payload))

		got, err := client.ForCountry(ctx, "CH", 2026)

		assert.NoError(t, err)
		assert.Equal(t, holidays, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-200 upstream yields an empty list", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer upstream.Close()

		client, mock := newTestClient(upstream)
		mock.ExpectGet("bank_holidays:XX:2026").RedisNil()
		mock.ExpectSet("bank_holidays:XX:2026", []byte("[]"), 24*time.Hour).SetVal("OK")

		got, err := client.ForCountry(ctx, "XX", 2026)

		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
