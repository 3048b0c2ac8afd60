package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/OpenTransitTools/picoyplaca/foundation/httpclient"
)

// APIKeyEnv is the environment variable holding the remote holiday service key
const APIKeyEnv = "HOLIDAYS_API_KEY"

// DefaultRemoteURL is the abstractapi public holidays endpoint
const DefaultRemoteURL = "https://holidays.abstractapi.com/v1/"

// remoteCountry is the ISO 3166-1 code sent to the remote service
const remoteCountry = "EC"

// maundyThursday is reported by the remote service but is not a public holiday in Ecuador
const maundyThursday = "Maundy Thursday"

// ErrMissingAPIKey is returned when the remote lookup has no API key, or the service rejects it
var ErrMissingAPIKey = errors.New("missing API key, store your key in the environment variable " + APIKeyEnv)

// APIKeyFromEnv returns the remote holiday service key from APIKeyEnv
func APIKeyFromEnv() string {
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}

// remoteHoliday is a single entry of the remote service response
type remoteHoliday struct {
	Name      string `json:"name"`
	NameLocal string `json:"name_local"`
	Country   string `json:"country"`
	Date      string `json:"date"`
	Type      string `json:"type"`
}

// RemoteLookup asks the abstractapi holidays service whether a date is a holiday in Ecuador.
// Every call is a single request, failures are returned to the caller without retrying.
type RemoteLookup struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// MakeRemoteLookup builds RemoteLookup. An empty baseURL uses DefaultRemoteURL, a nil client
// uses httpclient.MakeClient with its default timeout.
func MakeRemoteLookup(apiKey string, client *http.Client, baseURL string) *RemoteLookup {
	if len(baseURL) == 0 {
		baseURL = DefaultRemoteURL
	}
	if client == nil {
		client = httpclient.MakeClient(0)
	}
	return &RemoteLookup{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

// IsHoliday implements Lookup by querying the remote service for date
func (r *RemoteLookup) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	if len(r.apiKey) == 0 {
		return false, ErrMissingAPIKey
	}
	resp, err := httpclient.Get(ctx, r.client, r.requestURL(date))
	if err != nil {
		return false, fmt.Errorf("requesting holidays for %s: %w", date.Format(DateLayout), err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return false, ErrMissingAPIKey
	}
	if !resp.IsSuccess() {
		return false, fmt.Errorf("holiday service responded with status %d for %s",
			resp.StatusCode, date.Format(DateLayout))
	}
	return parseRemoteHolidays(resp.Body)
}

// requestURL builds the query for date
func (r *RemoteLookup) requestURL(date time.Time) string {
	q := make(url.Values)
	q.Set("api_key", r.apiKey)
	q.Set("country", remoteCountry)
	q.Set("year", date.Format("2006"))
	q.Set("month", date.Format("01"))
	q.Set("day", date.Format("02"))
	return r.baseURL + "?" + q.Encode()
}

// parseRemoteHolidays returns true if body lists at least one holiday other than Maundy Thursday.
// An empty array means no holiday.
func parseRemoteHolidays(body []byte) (bool, error) {
	var holidays []remoteHoliday
	if err := json.Unmarshal(body, &holidays); err != nil {
		return false, fmt.Errorf("parsing holiday service response: %w", err)
	}
	for _, h := range holidays {
		if strings.TrimSpace(h.Name) == maundyThursday {
			continue
		}
		return true, nil
	}
	return false, nil
}
