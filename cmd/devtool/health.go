package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const slowResponseThreshold = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server [base-url]"
}

func (c *HealthCheckCommand) Run(ctx context.Context, args []string) error {
	baseURL := apiURL(args)
	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: 10 * time.Second}
	for _, path := range []string{"/healthz", "/readyz", "/version"} {
		start := time.Now()
		body, err := get(ctx, client, baseURL+path)
		duration := time.Since(start)
		if err != nil {
			PrintError("%s: %v", path, err)
			return err
		}
		if duration > slowResponseThreshold {
			PrintWarning("%s slow response (%v): %s", path, duration, body)
		} else {
			PrintSuccess("%s (%v): %s", path, duration, body)
		}
	}
	return nil
}

// apiURL picks the base URL from the first argument, API_URL or localhost
func apiURL(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return strings.TrimRight(args[0], "/")
	}
	if v := os.Getenv("API_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://localhost:8080"
}

func get(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", err
	}
	body := strings.TrimSpace(string(data))
	if resp.StatusCode != http.StatusOK {
		return body, fmt.Errorf("unexpected status %s: %s", resp.Status, body)
	}
	return body, nil
}
