package main

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := newRegistry()

	names := make([]string, 0)
	for _, cmd := range r.List() {
		names = append(names, cmd.Name())
		assert.NotEmpty(t, cmd.Description())
	}
	assert.Equal(t, []string{"health-check", "migrate", "reset-db", "wait-for-db", "watch-events"}, names)

	_, ok := r.Get("deploy")
	assert.False(t, ok)
}

func TestMaintenanceConnString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		db      string
		server  string
		wantErr bool
	}{
		{
			name:   "standard",
			in:     "postgres://u:p@localhost:5432/farmstead?sslmode=disable",
			db:     "farmstead",
			server: "postgres://u:p@localhost:5432/postgres?sslmode=disable",
		},
		{name: "no database", in: "postgres://u:p@localhost:5432", wantErr: true},
		{name: "maintenance database", in: "postgres://u:p@localhost/postgres", wantErr: true},
		{name: "unparseable", in: "postgres://%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, server, err := maintenanceConnString(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.db, db)
			assert.Equal(t, tt.server, server)
		})
	}
}

func TestResetDB_RequiresConfirmation(t *testing.T) {
	err := (&ResetDBCommand{}).Run(context.Background(), nil)
	assert.ErrorContains(t, err, "confirmation")
}

func TestMigrate_RequiresSubcommand(t *testing.T) {
	err := (&MigrateCommand{}).Run(context.Background(), nil)
	assert.ErrorContains(t, err, "subcommand required")
}

func TestApiURL(t *testing.T) {
	t.Setenv("API_URL", "http://api.example:9000/")
	assert.Equal(t, "http://override", apiURL([]string{"http://override/"}))
	assert.Equal(t, "http://api.example:9000", apiURL(nil))

	t.Setenv("API_URL", "")
	assert.Equal(t, "http://localhost:8080", apiURL(nil))
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/readyz" {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	err := (&HealthCheckCommand{}).Run(context.Background(), []string{srv.URL})
	assert.ErrorContains(t, err, "503")
}

func TestPrintEvents(t *testing.T) {
	stream := "id: 1\nevent: snapshot.updated\ndata: {\"version\":2}\n\n" +
		"id: 2\nevent: turn.advanced\ndata: {\"turn\":2}\n\n" +
		"id: 3\nevent: snapshot.updated\ndata: {\"version\":3}\n\n"

	seen, err := printEvents(bufio.NewScanner(strings.NewReader(stream)), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, seen)

	seen, err = printEvents(bufio.NewScanner(strings.NewReader(stream)), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, seen)
}

func TestStatusOutput(t *testing.T) {
	var buf strings.Builder
	prev := output
	output = &buf
	t.Cleanup(func() { output = prev })

	PrintHeader("Migrations")
	PrintSuccess("applied %d", 3)
	PrintError("failed: %s", "timeout")

	got := buf.String()
	assert.Contains(t, got, "=== Migrations ===")
	assert.Contains(t, got, colorGreen+"✓ applied 3"+colorReset+"\n")
	assert.Contains(t, got, colorRed+"✗ failed: timeout"+colorReset+"\n")
}
