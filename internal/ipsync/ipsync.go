// Package ipsync publishes the host's outbound IP address to a remote
// endpoint so the machine can be found after a DHCP lease change.
package ipsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
)

// Config holds ipsync settings.
type Config struct {
	// Endpoint receives a JSON POST with the host name and IP.
	Endpoint string
	// Attempts bounds delivery attempts (default: 5).
	Attempts uint
	// Logger receives progress updates. Defaults to slog.Default().
	Logger *slog.Logger
}

// Report is the payload delivered to the endpoint.
type Report struct {
	Host      string    `json:"host"`
	IP        string    `json:"ip"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OutboundIP returns the local address the host would use to reach the
// public internet. No packets are sent; UDP dial only resolves routing.
func OutboundIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", fmt.Errorf("failed to determine outbound IP: %w", err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", errors.New("unexpected local address type")
	}
	return addr.IP.String(), nil
}

// Publish resolves the host's outbound IP and delivers it to the
// configured endpoint, retrying transient failures with a fixed delay.
func Publish(ctx context.Context, cfg Config) (*Report, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	if cfg.Endpoint == "" {
		return nil, errors.New("no ipsync endpoint configured")
	}
	attempts := cfg.Attempts
	if attempts == 0 {
		attempts = 5
	}

	ip, err := OutboundIP()
	if err != nil {
		return nil, err
	}
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get hostname: %w", err)
	}

	report := &Report{Host: hostname, IP: ip, UpdatedAt: time.Now().UTC()}
	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	log.Info("publishing IP address", "host", hostname, "ip", ip, "endpoint", cfg.Endpoint)

	client := &http.Client{Timeout: 10 * time.Second}
	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(body))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 400 {
				return fmt.Errorf("endpoint returned %d", resp.StatusCode)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(1*time.Second),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("ipsync delivery failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to publish IP after %d attempt(s): %w", attempts, err)
	}

	log.Info("IP address published", "ip", ip)
	return report, nil
}
