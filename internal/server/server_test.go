package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contractlens/internal/audit"
	"github.com/ppiankov/contractlens/internal/pipeline"
)

const contractText = "1. PAYMENT\n" +
	"The Client shall pay the fee within 30 days of each invoice.\n" +
	"2. TERMINATION\n" +
	"Either party may terminate this Agreement with thirty days written notice.\n"

func newServer(t *testing.T, withAudit bool) (*Server, *audit.Store) {
	t.Helper()
	p := pipeline.New(pipeline.Options{}, nil)
	if !withAudit {
		return New(p, nil, 1<<20, slog.Default()), nil
	}
	store, err := audit.Open(filepath.Join(t.TempDir(), "audit.db"), "", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	p.WithRecorder(store)
	return New(p, store, 1<<20, nil), store
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var body map[string]any
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestHealth(t *testing.T) {
	s, _ := newServer(t, false)
	w, body := do(t, s, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "", body["provider"])
}

func TestAnalyze_JSON(t *testing.T) {
	s, _ := newServer(t, false)
	payload, _ := json.Marshal(analyzeRequest{Text: contractText, Name: "msa.txt", ContractType: "lease"})
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w, body := do(t, s, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.HasPrefix(body["report_id"].(string), "CR-"))

	info := body["contract_info"].(map[string]any)
	assert.Equal(t, "msa.txt", info["file_name"])
	assert.Equal(t, "lease_agreement", info["contract_type"])
	assert.Equal(t, "en", info["language"])
}

func TestAnalyze_RawText(t *testing.T) {
	s, _ := newServer(t, false)
	req := httptest.NewRequest(http.MethodPost, "/analyze?contract_type=service", strings.NewReader(contractText))
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	w, body := do(t, s, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "service_contract", body["contract_info"].(map[string]any)["contract_type"])
}

func multipartRequest(t *testing.T, filename, content, contractType string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if contractType != "" {
		require.NoError(t, mw.WriteField("contract_type", contractType))
	}
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAnalyze_Upload(t *testing.T) {
	s, _ := newServer(t, false)

	w, body := do(t, s, multipartRequest(t, "contract.txt", contractText, "nda"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	info := body["contract_info"].(map[string]any)
	assert.Equal(t, "contract.txt", info["file_name"])
	assert.Equal(t, "nda", info["contract_type"])
	assert.NotEmpty(t, info["sha256"])
}

func TestAnalyze_Errors(t *testing.T) {
	s, _ := newServer(t, false)

	w, body := do(t, s, multipartRequest(t, "contract.exe", contractText, ""))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.NotEmpty(t, body["error"])

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"text": "  "}`))
	req.Header.Set("Content-Type", "application/json")
	w, _ = do(t, s, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"text": "x`))
	req.Header.Set("Content-Type", "application/json")
	w, _ = do(t, s, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/analyze?contract_type=franchise", strings.NewReader(contractText))
	w, body = do(t, s, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "unknown contract type")

	w, _ = do(t, s, httptest.NewRequest(http.MethodGet, "/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestAnalyze_BodyLimit(t *testing.T) {
	s := New(pipeline.New(pipeline.Options{}, nil), nil, 1, nil)
	big := strings.Repeat("The Client shall pay. ", 5000)

	w, _ := do(t, s, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(big)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestExplain(t *testing.T) {
	s, _ := newServer(t, false)
	req := httptest.NewRequest(http.MethodPost, "/explain",
		strings.NewReader(`{"text": "The Contractor shall indemnify and hold harmless the Company."}`))

	w, body := do(t, s, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "indemnity", body["clause_type"])
	assert.Equal(t, "template", body["source"])

	w, _ = do(t, s, httptest.NewRequest(http.MethodPost, "/explain", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAudit(t *testing.T) {
	s, _ := newServer(t, true)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(contractText))
	w, report := do(t, s, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit?limit=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var entries []audit.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, report["report_id"], entries[0].ReportID)

	w, body := do(t, s, httptest.NewRequest(http.MethodGet, "/audit/"+entries[0].ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entries[0].ID, body["entry_id"])

	w, _ = do(t, s, httptest.NewRequest(http.MethodGet, "/audit/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, s, httptest.NewRequest(http.MethodGet, "/audit?limit=zero", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAudit_Disabled(t *testing.T) {
	s, _ := newServer(t, false)
	w, _ := do(t, s, httptest.NewRequest(http.MethodGet, "/audit", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRecoverer(t *testing.T) {
	h := recoverer(slog.Default())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
