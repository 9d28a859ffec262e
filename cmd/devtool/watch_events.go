package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type WatchEventsCommand struct{}

func (c *WatchEventsCommand) Name() string {
	return "watch-events"
}

func (c *WatchEventsCommand) Description() string {
	return "Stream game events from a running server [base-url] [max-events]"
}

func (c *WatchEventsCommand) Run(ctx context.Context, args []string) error {
	baseURL := apiURL(args)
	limit := 0
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid max-events %q", args[1])
		}
		limit = n
	}

	PrintHeader("Watching game events")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/v1/game/events", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	seen, err := printEvents(bufio.NewScanner(resp.Body), limit)
	if ctx.Err() != nil {
		PrintInfo("Stopped after %d events", seen)
		return nil
	}
	return err
}

// printEvents echoes "event:" / "data:" pairs until the stream ends or limit
// events were shown. A limit of zero means no limit.
func printEvents(scanner *bufio.Scanner, limit int) (int, error) {
	seen := 0
	eventType := ""
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			PrintInfo("%s %s", eventType, strings.TrimPrefix(line, "data: "))
		case line == "" && eventType != "":
			seen++
			eventType = ""
			if limit > 0 && seen >= limit {
				return seen, nil
			}
		}
	}
	return seen, scanner.Err()
}
