package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminpanel "github.com/innovexadevelopment/admin-panel-sub000"
	"github.com/innovexadevelopment/admin-panel-sub000/config"
	"github.com/innovexadevelopment/admin-panel-sub000/datastore"
	"github.com/innovexadevelopment/admin-panel-sub000/datastore/mock"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

func mockBackends(m *mock.Backend) func(config.Config) *adminpanel.Backends {
	return func(config.Config) *adminpanel.Backends {
		b := adminpanel.NewBackends()
		_ = b.Register(config.BackendDynamoDB, func(context.Context) (datastore.Backend, func(context.Context) error, error) {
			return m, nil, nil
		})
		return b
	}
}

func cliEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvBackend, config.BackendDynamoDB)
	t.Setenv(config.EnvMaxPageSize, "10")
	t.Setenv(config.EnvMaxPages, "100")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvAWSAccessKey, "")
	t.Setenv(config.EnvAWSSecretKey, "")
	t.Setenv(config.EnvTablesFile, "")
}

func events(n int) []storagemodels.Row {
	rows := make([]storagemodels.Row, n)
	for i := range rows {
		rows[i] = storagemodels.Row{"id": i, "position": i}
	}
	return rows
}

func TestRunList(t *testing.T) {
	cliEnv(t)
	m := mock.New(10).WithTable("ngo_events", events(25)).WithPageLocalOrder()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(),
		[]string{"-site", "ngo", "-entity", "event", "-order", "position", "-desc", "-env", t.TempDir() + "/none.env"},
		&stdout, &stderr, mockBackends(m))
	require.Equal(t, 0, code, stderr.String())

	var out struct {
		TotalCount *int64           `json:"total_count"`
		Rows       []map[string]any `json:"rows"`
		Truncated  bool             `json:"truncated"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.NotNil(t, out.TotalCount)
	assert.EqualValues(t, 25, *out.TotalCount)
	assert.Len(t, out.Rows, 25)
	assert.False(t, out.Truncated)
	assert.EqualValues(t, 24, out.Rows[0]["position"])
	assert.EqualValues(t, 0, out.Rows[24]["position"])
}

func TestRunErrors(t *testing.T) {
	cliEnv(t)
	m := mock.New(10)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown site", []string{"-site", "shop", "-entity", "event"}, "unknown site"},
		{"missing entity", []string{"-site", "ngo"}, "-entity is required"},
		{"unmapped entity", []string{"-site", "company", "-entity", "program"}, "no table mapped"},
		{"missing table", []string{"-site", "ngo", "-entity", "event"}, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append(tt.args, "-env", t.TempDir()+"/none.env")
			code := run(context.Background(), args, &stdout, &stderr, mockBackends(m))
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout.String())
			assert.True(t, strings.Contains(stderr.String(), tt.want), "stderr: %s", stderr.String())
		})
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-v"}, &stdout, &stderr, mockBackends(mock.New(0)))
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "adminpanel version "+adminpanel.Version)
}
