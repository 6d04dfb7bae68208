package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubuntucrafts/catalog/internal/test"
	catalog "github.com/ubuntucrafts/catalog/pkg"
)

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       func(sqlmock.Sqlmock)
		code        int
		body        string
	}{
		{
			"database is accessible and returns ping reply",
			func(mock sqlmock.Sqlmock) {
				mock.ExpectPing()
			},
			200,
			`{"status":"OK"}`,
		},
		{
			"database is not accessible",
			func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(errors.New("test"))
			},
			503,
			`failed to connect to database`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var body bytes.Buffer

			db, mock, _ := sqlmock.New(sqlmock.MonitorPingsOption(true))
			defer func() { _ = db.Close() }()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", &bytes.Buffer{})

			logger := test.DummyLogger(io.Discard).Sugar()

			tc.given(mock)

			cfg := &catalog.Config{DB: db, Logger: logger}
			Healthcheck(cfg).ServeHTTP(w, r)

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			_, _ = io.Copy(&body, actual.Body)

			err := mock.ExpectationsWereMet()

			require.NoError(t, err)
			assert.Equal(t, tc.code, actual.StatusCode)
			assert.Contains(t, body.String(), tc.body)
		})
	}
}
