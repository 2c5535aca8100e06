//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("OASIS_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:18080"
}

type intentResp struct {
	OK    bool   `json:"ok"`
	State string `json:"state"`
	Error string `json:"error"`
	View  struct {
		Menu *struct {
			HasPainHistory bool `json:"hasPainHistory"`
		} `json:"menu"`
		PainResults *struct {
			Total        int `json:"total"`
			HistoryCount int `json:"historyCount"`
			Comparisons  []struct {
				PartID string `json:"partId"`
				Delta  int    `json:"delta"`
			} `json:"comparisons"`
		} `json:"painResults"`
	} `json:"view"`
}

func TestPainJourneyIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()
	email := fmt.Sprintf("integration_%d@example.com", time.Now().UnixNano())

	token := newSession(t, client, base)
	send := func(body map[string]any) intentResp {
		var out intentResp
		doPost(t, client, base+"/api/session/intents", token, body, &out)
		if !out.OK {
			t.Fatalf("%v: %s", body["kind"], out.Error)
		}
		return out
	}
	send(map[string]any{"kind": "start"})
	send(map[string]any{"kind": "register", "profile": map[string]string{
		"name": "Integration", "email": email, "birthDate": "1985-02-03", "gender": "masculino",
	}})
	send(map[string]any{"kind": "start-pain-map"})
	send(map[string]any{"kind": "set-pain-level", "part_id": "pelvis", "level": 6})
	send(map[string]any{"kind": "set-pain-notes", "part_id": "pelvis", "notes": "after running"})
	out := send(map[string]any{"kind": "save-pain-map"})
	if out.State != "pain-results" || out.View.PainResults == nil || out.View.PainResults.Total != 6 {
		t.Fatalf("first save: %+v", out)
	}

	// second session: search by email, map again, compare with the first map
	token = newSession(t, client, base)
	send(map[string]any{"kind": "start"})
	out = send(map[string]any{"kind": "search", "email": strings.ToUpper(email)})
	if out.View.Menu == nil || !out.View.Menu.HasPainHistory {
		t.Fatalf("search: %+v", out)
	}
	send(map[string]any{"kind": "start-pain-map"})
	send(map[string]any{"kind": "set-pain-level", "part_id": "pelvis", "level": 2})
	out = send(map[string]any{"kind": "save-pain-map"})
	pr := out.View.PainResults
	if pr == nil || pr.HistoryCount != 2 || len(pr.Comparisons) != 1 || pr.Comparisons[0].Delta != -4 {
		t.Fatalf("second save: %+v", pr)
	}

	req, err := http.NewRequest(http.MethodGet, base+"/api/session/export?kind=pain", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	defer resp.Body.Close()
	csvData, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read export data: %v", err)
	}
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(csvData), "after running") {
		t.Fatalf("export status %d csv=%s", resp.StatusCode, string(csvData))
	}
}

func newSession(t *testing.T, client *http.Client, base string) string {
	t.Helper()
	var out struct {
		Token string `json:"token"`
	}
	doPost(t, client, base+"/api/sessions", "", nil, &out)
	if out.Token == "" {
		t.Fatalf("expected session token")
	}
	return out.Token
}

func doPost(t *testing.T, client *http.Client, url, token string, body any, out any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http post %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}
