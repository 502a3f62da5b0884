package timesync

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"matrixclock/hal"
)

type recordStatus struct{ seen []hal.Status }

func (r *recordStatus) SetStatus(s hal.Status) { r.seen = append(r.seen, s) }

func TestParse(t *testing.T) {
	got, err := Parse("2020-04-23 15:27:34.123 114 4 -0500 CDT\n")
	require.NoError(t, err)

	h, m, s := got.Clock()
	require.Equal(t, []int{15, 27, 34}, []int{h, m, s})
	name, off := got.Zone()
	require.Equal(t, "CDT", name)
	require.Equal(t, -5*60*60, off)
	require.Equal(t, 123*time.Millisecond, time.Duration(got.Nanosecond()))
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{"", "not a time", "2020-04-23 15:27 114 4 -0500", "2020-04-23 15:27:34.123 x 4 -0500 CDT"} {
		_, err := Parse(s)
		require.Error(t, err, "Parse(%q)", s)
	}
}

func TestSync(t *testing.T) {
	var (
		path  string
		query map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		q := r.URL.Query()
		query = map[string]string{"key": q.Get("x-aio-key"), "tz": q.Get("tz"), "fmt": q.Get("fmt")}
		fmt.Fprint(w, "2024-01-02 03:04:05.000 2 2 +0100 CET")
	}))
	defer srv.Close()

	clock := hal.NewClock(func() time.Time { return time.Unix(0, 0) })
	st := &recordStatus{}
	c := New(Config{BaseURL: srv.URL, Username: "alice", Key: "secret", Timezone: "Europe/Paris"}, clock, st)

	require.NoError(t, c.Sync(context.Background()))
	require.Equal(t, "/api/v2/alice/integrations/time/strftime", path)
	require.Equal(t, map[string]string{"key": "secret", "tz": "Europe/Paris", "fmt": strftime}, query)
	require.Equal(t, []hal.Status{hal.StatusConnecting, hal.StatusOK}, st.seen)

	h, m, s := clock.Now().Clock()
	require.Equal(t, []int{3, 4, 5}, []int{h, m, s})
}

func TestSyncFailureLeavesClock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	clock := hal.NewClock(func() time.Time { return base })
	st := &recordStatus{}
	c := New(Config{BaseURL: srv.URL, Username: "alice", Key: "secret"}, clock, st)

	err := c.Sync(context.Background())
	require.Error(t, err)
	require.True(t, base.Equal(clock.Now()), "clock moved to %v", clock.Now())
	require.Equal(t, []hal.Status{hal.StatusConnecting, hal.StatusError}, st.seen)
}

func TestSyncBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>maintenance</html>")
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Username: "alice", Key: "secret"}, hal.NewClock(nil), nil)
	require.Error(t, c.Sync(context.Background()))
}

func TestSyncNotConfigured(t *testing.T) {
	st := &recordStatus{}
	c := New(Config{}, hal.NewClock(nil), st)
	err := c.Sync(context.Background())
	require.True(t, errors.Is(err, ErrNotConfigured))
	require.Equal(t, []hal.Status{hal.StatusError}, st.seen)
}

func TestSyncTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-done:
		}
	}))
	defer srv.Close()
	defer close(done)

	c := New(Config{BaseURL: srv.URL, Username: "alice", Key: "secret", Timeout: 50 * time.Millisecond}, hal.NewClock(nil), nil)
	start := time.Now()
	require.Error(t, c.Sync(context.Background()))
	require.Less(t, time.Since(start), 5*time.Second)
}
