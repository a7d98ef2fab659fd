//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noteResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type notesListResponse struct {
	Notes []noteResponse `json:"notes"`
	Total int            `json:"total"`
}

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, form url.Values) (int, []byte) {
	t := s.T()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestNotesHTTP() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, _ := s.doRequest(ctx, "DELETE", "/notes", nil)
	require.Equal(t, http.StatusOK, status)

	status, respBytes := s.doRequest(ctx, "GET", "/notes", nil)
	require.Equal(t, http.StatusOK, status)
	var listResp notesListResponse
	require.NoError(t, json.Unmarshal(respBytes, &listResp))
	assert.Empty(t, listResp.Notes)
	assert.Equal(t, 0, listResp.Total)

	status, respBytes = s.doRequest(ctx, "POST", "/notes", url.Values{"title": {"Groceries"}, "body": {"milk, eggs"}})
	require.Equal(t, http.StatusCreated, status)
	var added noteResponse
	require.NoError(t, json.Unmarshal(respBytes, &added))
	require.NotEmpty(t, added.ID)

	status, _ = s.doRequest(ctx, "PUT", "/notes/"+added.ID, url.Values{"title": {"Groceries"}, "body": {"milk, eggs, bread"}})
	require.Equal(t, http.StatusOK, status)

	status, respBytes = s.doRequest(ctx, "GET", "/notes/"+added.ID, nil)
	require.Equal(t, http.StatusOK, status)
	var got noteResponse
	require.NoError(t, json.Unmarshal(respBytes, &got))
	assert.Equal(t, "milk, eggs, bread", got.Body)

	status, respBytes = s.doRequest(ctx, "DELETE", "/notes/"+added.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, fmt.Sprintf("deleted:%s", added.ID), string(respBytes))

	status, _ = s.doRequest(ctx, "GET", "/notes/"+added.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.doRequest(ctx, "GET", "/notes/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// pgxpool backend cannot mint ids up front
	status, _ = s.doRequest(ctx, "GET", "/notes/new-id", nil)
	assert.Equal(t, http.StatusNotImplemented, status)
}

func (s *IntegrationTestSuite) TestMetricsEndpoint() {
	t := s.T()

	resp, err := s.httpClient.Get(fmt.Sprintf("http://%s:9001/metrics", serverHost))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(respBytes), "notesbox_main_life_signal")
	assert.Contains(t, string(respBytes), "pgxpool_")
}
