package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	bankHolidayBaseURL  = "https://date.nager.at/api/v3/publicholidays"
	bankHolidayCacheTTL = 24 * time.Hour
)

// PublicHoliday is one bank holiday as served by the date.nager.at
// public-holidays API.
type PublicHoliday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

//go:generate mockgen -source=bankholiday_client.go -destination=mock/bankholiday_client_mock.go -package=mock
type BankHolidayClient interface {
	ForCountry(ctx context.Context, countryCode string, year int) ([]PublicHoliday, error)
}

// bankHolidayClient serves lookups from redis, collapses concurrent
// misses per country+year, and treats upstream failures as "no
// holidays" since the data is informational.
type bankHolidayClient struct {
	httpClient *http.Client
	cache      *redis.Client
	group      singleflight.Group
	baseURL    string
	logger     *zap.Logger
}

func NewBankHolidayClient(httpClient *http.Client, cache *redis.Client, logger ...*zap.Logger) BankHolidayClient {
	l := zap.L().Named("holiday.bankholiday")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.bankholiday")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &bankHolidayClient{
		httpClient: httpClient,
		cache:      cache,
		baseURL:    bankHolidayBaseURL,
		logger:     l,
	}
}

func (c *bankHolidayClient) ForCountry(ctx context.Context, countryCode string, year int) ([]PublicHoliday, error) {
	key := fmt.Sprintf("bank_holidays:%s:%d", countryCode, year)

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, key).Bytes()
		if err == nil {
			var holidays []PublicHoliday
			if err := json.Unmarshal(cached, &holidays); err == nil {
				return holidays, nil
			}
		} else if err != redis.Nil {
			c.logger.Warn("bank holiday cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		holidays, err := c.fetch(ctx, countryCode, year)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			payload, err := json.Marshal(holidays)
			if err == nil {
				if err := c.cache.Set(ctx, key, payload, bankHolidayCacheTTL).Err(); err != nil {
					c.logger.Warn("bank holiday cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return holidays, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]PublicHoliday), nil
}

func (c *bankHolidayClient) fetch(ctx context.Context, countryCode string, year int) ([]PublicHoliday, error) {
	url := fmt.Sprintf("%s/%d/%s", c.baseURL, year, countryCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("bank holiday upstream returned non-200",
			zap.String("country", countryCode),
			zap.Int("year", year),
			zap.Int("status", resp.StatusCode),
		)
		return []PublicHoliday{}, nil
	}

	var holidays []PublicHoliday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}
