package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Lelo88/items-api-golang/internal/config"
	"github.com/Lelo88/items-api-golang/internal/httpx"
	"github.com/stretchr/testify/require"
)

func restoreSeams(t *testing.T) {
	t.Helper()

	originalLoad := loadConfigFn
	originalNewPool := newPoolFn
	originalListen := listenAndServeFn
	originalLogf := logfFn
	originalFatal := fatalf
	t.Cleanup(func() {
		loadConfigFn = originalLoad
		newPoolFn = originalNewPool
		listenAndServeFn = originalListen
		logfFn = originalLogf
		fatalf = originalFatal
	})
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:          "0",
		StorageDriver: config.DriverJSON,
		DataDir:       t.TempDir(),
		JWTSecret:     "super-secret-test-key",
		JWTTTL:        time.Hour,
		AdminUsername: "admin",
		AdminPassword: "adminpass",
	}
}

func TestRun_ConfigError(t *testing.T) {
	restoreSeams(t)

	expectedErr := errors.New("config failed")
	loadConfigFn = func() (config.Config, error) {
		return config.Config{}, expectedErr
	}
	listenAndServeFn = func(addr string, handler http.Handler) error {
		t.Fatal("listen should not be reached")
		return nil
	}

	require.ErrorIs(t, run(), expectedErr)
}

func TestRun_PoolError(t *testing.T) {
	restoreSeams(t)

	cfg := testConfig(t)
	cfg.StorageDriver = config.DriverPostgres
	cfg.DatabaseURL = "postgres://example"
	loadConfigFn = func() (config.Config, error) { return cfg, nil }

	expectedErr := errors.New("pool failed")
	newPoolFn = func(ctx context.Context, databaseURL string) (appPool, error) {
		require.Equal(t, "postgres://example", databaseURL)
		return nil, expectedErr
	}
	listenAndServeFn = func(addr string, handler http.Handler) error {
		t.Fatal("listen should not be reached")
		return nil
	}

	require.ErrorIs(t, run(), expectedErr)
}

// TestRun_EndToEnd levanta la app completa con storage JSON en un tempdir
// y ejercita el flujo real: login -> CRUD -> compare, todo vía el router.
func TestRun_EndToEnd(t *testing.T) {
	restoreSeams(t)

	loadConfigFn = func() (config.Config, error) { return testConfig(t), nil }
	logfFn = func(format string, args ...any) {}

	errStopped := errors.New("stopped")
	var app http.Handler
	listenAndServeFn = func(addr string, handler http.Handler) error {
		require.Equal(t, ":0", addr)
		app = handler
		return errStopped
	}

	require.ErrorIs(t, run(), errStopped)
	require.NotNil(t, app)

	do := func(method, target, token, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		return rec
	}

	dataOf := func(rec *httptest.ResponseRecorder) map[string]any {
		t.Helper()
		var response httpx.Response
		decoder := json.NewDecoder(bytes.NewReader(rec.Body.Bytes()))
		decoder.UseNumber()
		require.NoError(t, decoder.Decode(&response))
		data, ok := response.Data.(map[string]any)
		require.True(t, ok, "expected data object, body=%s", rec.Body.String())
		return data
	}

	t.Run("health and docs are public", func(t *testing.T) {
		require.Equal(t, http.StatusOK, do(http.MethodGet, "/health", "", "").Code)
		require.Equal(t, http.StatusOK, do(http.MethodGet, "/ready", "", "").Code)
		require.Equal(t, http.StatusOK, do(http.MethodGet, "/docs", "", "").Code)
		require.Equal(t, http.StatusOK, do(http.MethodGet, "/docs/openapi.yaml", "", "").Code)
	})

	t.Run("items require a token", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/items/x", "", "").Code)
		require.Equal(t, http.StatusUnauthorized, do(http.MethodPost, "/items", "", `{"name":"x"}`).Code)
		require.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/items/x", "garbage-token", "").Code)
	})

	t.Run("login rejects bad credentials", func(t *testing.T) {
		rec := do(http.MethodPost, "/auth/login", "", `{"username":"admin","password":"nope"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	// Login real para el resto del flujo.
	loginRec := do(http.MethodPost, "/auth/login", "", `{"username":"admin","password":"adminpass"}`)
	require.Equal(t, http.StatusOK, loginRec.Code)
	token, ok := dataOf(loginRec)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	t.Run("full item lifecycle", func(t *testing.T) {
		created := do(http.MethodPost, "/items", token, `{"name":"Laptop","price":"100.00","rating":4.2}`)
		require.Equal(t, http.StatusCreated, created.Code)
		idA, ok := dataOf(created)["id"].(string)
		require.True(t, ok)
		require.NotEmpty(t, idA, "created item must carry a storage-assigned id")

		createdB := do(http.MethodPost, "/items", token, `{"name":"Desktop","price":"150.00","rating":4.8}`)
		require.Equal(t, http.StatusCreated, createdB.Code)
		idB := dataOf(createdB)["id"].(string)

		got := do(http.MethodGet, "/items/"+idA, token, "")
		require.Equal(t, http.StatusOK, got.Code)
		require.Equal(t, "Laptop", dataOf(got)["name"])

		compare := do(http.MethodGet, "/items/compare?id1="+idA+"&id2="+idB, token, "")
		require.Equal(t, http.StatusOK, compare.Code)
		result := dataOf(compare)
		require.Equal(t, idA, result["bestPriceItemId"])
		require.Equal(t, idB, result["bestRatedItemId"])
		differences, ok := result["differences"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "50.00", differences["priceDifference"])
		require.Equal(t, "0.6", differences["ratingDifference"])

		updated := do(http.MethodPut, "/items", token,
			`{"id":"`+idA+`","name":"Laptop Pro","price":"120.00","rating":4.4}`)
		require.Equal(t, http.StatusOK, updated.Code)
		require.Equal(t, "Laptop Pro", dataOf(updated)["name"])

		require.Equal(t, http.StatusNoContent, do(http.MethodDelete, "/items/"+idA, token, "").Code)
		require.Equal(t, http.StatusNotFound, do(http.MethodGet, "/items/"+idA, token, "").Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		require.Equal(t, http.StatusNotFound, do(http.MethodGet, "/nope", "", "").Code)
	})
}

func TestMain_FatalOnError(t *testing.T) {
	restoreSeams(t)

	expectedErr := errors.New("boom")
	loadConfigFn = func() (config.Config, error) {
		return config.Config{}, expectedErr
	}

	fatalCalled := false
	fatalf = func(format string, args ...any) {
		fatalCalled = true
		require.NotEmpty(t, args)
	}

	main()

	require.True(t, fatalCalled, "main must report the error via fatalf")
}
