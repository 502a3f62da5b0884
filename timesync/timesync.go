// Package timesync sets the local clock from the Adafruit IO time service.
package timesync

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"

	"matrixclock/hal"
)

// DefaultBaseURL is the Adafruit IO host.
const DefaultBaseURL = "https://io.adafruit.com"

// strftime asks for the reply Parse understands:
// "2020-04-23 15:27:34.123 114 4 -0500 CDT".
const strftime = "%Y-%m-%d %H:%M:%S.%L %j %u %z %Z"

var ErrNotConfigured = errors.New("timesync: username and key are required")

// Config describes the time service account.
type Config struct {
	BaseURL  string
	Username string
	Key      string
	// Timezone is an IANA name. Empty lets the service guess from the
	// caller's address.
	Timezone string
	Timeout  time.Duration
}

// Client fetches the local time and applies it to a hal.Clock.
type Client struct {
	cfg    Config
	clock  hal.Clock
	status hal.StatusLight
	http   *http.Client
}

// New returns a Client. status may be nil.
func New(cfg Config, clock hal.Clock, status hal.StatusLight) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{cfg: cfg, clock: clock, status: status, http: http.DefaultClient}
}

// WithHTTPClient replaces the HTTP client used for requests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

func (c *Client) setStatus(s hal.Status) {
	if c.status != nil {
		c.status.SetStatus(s)
	}
}

// Sync fetches the time and sets the clock. Any failure leaves the clock
// untouched.
func (c *Client) Sync(ctx context.Context) error {
	t, err := c.Fetch(ctx)
	if err != nil {
		c.setStatus(hal.StatusError)
		return err
	}
	c.clock.Set(t)
	c.setStatus(hal.StatusOK)
	return nil
}

// Fetch asks the service for the current local time.
func (c *Client) Fetch(ctx context.Context) (time.Time, error) {
	if c.cfg.Username == "" || c.cfg.Key == "" {
		return time.Time{}, ErrNotConfigured
	}
	c.setStatus(hal.StatusConnecting)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	rb := requests.
		URL(strings.TrimSuffix(c.cfg.BaseURL, "/")).
		Pathf("/api/v2/%s/integrations/time/strftime", c.cfg.Username).
		Client(c.http).
		Param("x-aio-key", c.cfg.Key).
		Param("fmt", strftime)
	if c.cfg.Timezone != "" {
		rb = rb.Param("tz", c.cfg.Timezone)
	}

	var body string
	if err := rb.ToString(&body).Fetch(ctx); err != nil {
		return time.Time{}, fmt.Errorf("timesync: fetch: %w", err)
	}
	t, err := Parse(body)
	if err != nil {
		return time.Time{}, fmt.Errorf("timesync: %w", err)
	}
	return t, nil
}

// Parse reads a reply in the strftime layout above. Day-of-year and
// weekday fields are checked for presence only.
func Parse(s string) (time.Time, error) {
	f := strings.Fields(s)
	if len(f) < 5 {
		return time.Time{}, fmt.Errorf("malformed reply %q", s)
	}
	t, err := time.Parse("2006-01-02 15:04:05.000 -0700", f[0]+" "+f[1]+" "+f[4])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed reply %q: %w", s, err)
	}
	if len(f) >= 6 {
		_, off := t.Zone()
		t = t.In(time.FixedZone(f[5], off))
	}
	if _, err := strconv.Atoi(f[2]); err != nil {
		return time.Time{}, fmt.Errorf("malformed day of year %q", f[2])
	}
	return t, nil
}
