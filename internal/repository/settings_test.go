package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// seedRowDriver serves a single admin_settings row the way the migration
// seeds it: notification_phone and the twilio columns all NULL.
type seedRowDriver struct {
	row []driver.Value
}

func (d *seedRowDriver) Open(string) (driver.Conn, error) {
	return &seedRowConn{row: d.row}, nil
}

type seedRowConn struct {
	row []driver.Value
}

func (c *seedRowConn) Prepare(string) (driver.Stmt, error) {
	return &seedRowStmt{row: c.row}, nil
}
func (c *seedRowConn) Close() error              { return nil }
func (c *seedRowConn) Begin() (driver.Tx, error) { return nil, driver.ErrSkip }

type seedRowStmt struct {
	row []driver.Value
}

func (s *seedRowStmt) Close() error  { return nil }
func (s *seedRowStmt) NumInput() int { return -1 }
func (s *seedRowStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.ResultNoRows, nil
}
func (s *seedRowStmt) Query([]driver.Value) (driver.Rows, error) {
	return &seedRowRows{row: s.row}, nil
}

type seedRowRows struct {
	row  []driver.Value
	done bool
}

func (r *seedRowRows) Columns() []string {
	return []string{
		"id", "notification_enabled", "notification_phone",
		"twilio_account_sid", "twilio_auth_token", "twilio_from_phone", "updated_at",
	}
}
func (r *seedRowRows) Close() error { return nil }
func (r *seedRowRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	r.done = true
	copy(dest, r.row)
	return nil
}

func TestSettingsRepository_Get_FreshSeedRow(t *testing.T) {
	sql.Register("settings-seed-row", &seedRowDriver{
		row: []driver.Value{
			"6f1b5c1e-0000-0000-0000-000000000001",
			false,
			nil, // notification_phone
			nil, // twilio_account_sid
			nil, // twilio_auth_token
			nil, // twilio_from_phone
			time.Now().UTC(),
		},
	})

	db, err := sql.Open("settings-seed-row", "")
	require.NoError(t, err)
	defer db.Close()

	repo := NewSettingsRepo(&dbpg.DB{Master: db})

	got, err := repo.Get(context.Background())
	require.NoError(t, err)

	assert.False(t, got.NotificationEnabled)
	assert.Nil(t, got.NotificationPhone)
	assert.Empty(t, got.TwilioAccountSID)
	assert.Empty(t, got.TwilioAuthToken)
	assert.Empty(t, got.TwilioFromPhone)
}
