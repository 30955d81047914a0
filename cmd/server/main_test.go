package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/service"
	"github.com/mmynk/billsplit/internal/storage/memory"
	"github.com/mmynk/billsplit/pkg/api"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.New(memory.Options{TTL: time.Hour})
	m := metrics.New()
	m.TrackSessions(store.Len)

	server := httptest.NewServer(newHandler(service.NewBillService(store, m), m, "https://example.com"))
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestHandler_Healthz(t *testing.T) {
	server := setupServer(t)

	status, body := get(t, server.URL+"/healthz")
	if status != http.StatusOK || body != "ok" {
		t.Errorf("healthz = %d %q, want 200 ok", status, body)
	}
}

func TestHandler_RPCAndMetrics(t *testing.T) {
	server := setupServer(t)
	client := api.NewBillServiceClient(http.DefaultClient, server.URL)

	resp, err := client.CreateSession(context.Background(), connect.NewRequest(&api.CreateSessionRequest{}))
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Errorf("missing CORS header on RPC response: %v", resp.Header())
	}

	status, body := get(t, server.URL+"/metrics")
	if status != http.StatusOK {
		t.Fatalf("metrics status = %d", status)
	}
	for _, want := range []string{
		"billsplit_sessions_active 1",
		`billsplit_rpc_requests_total{code="ok",procedure="/billsplit.v1.BillService/CreateSession"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestHandler_Preflight(t *testing.T) {
	server := setupServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+api.BillServiceAddPersonProcedure, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Errorf("Access-Control-Allow-Methods = %q", got)
	}
}
