package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salesops/internal/domain"
	"salesops/internal/kpi"
)

func TestLeadsUpsertRequiresName(t *testing.T) {
	app, _, _, leads, _, _ := newTestApp()

	body := `{"profile":"harley","status":"realizou","name":"   "}`
	rr := httptest.NewRecorder()
	app.LeadsUpsert(rr, httptest.NewRequest("POST", "/v1/leads", strings.NewReader(body)))

	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["field"] != "name" {
		t.Fatalf("field = %q, want name", resp["field"])
	}
	// Nothing was persisted.
	if len(leads.items) != 0 {
		t.Fatalf("lead persisted despite validation failure")
	}
}

func TestLeadsUpsertRejectsLegacyStatus(t *testing.T) {
	app, _, _, _, _, _ := newTestApp()

	body := `{"profile":"harley","status":"marcou","name":"Ana"}`
	rr := httptest.NewRecorder()
	app.LeadsUpsert(rr, httptest.NewRequest("POST", "/v1/leads", strings.NewReader(body)))

	if rr.Code != 400 {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestLeadsUpsertVendaDefaultsDealFields(t *testing.T) {
	app, _, _, leads, _, _ := newTestApp()

	body := `{"profile":"giovanni","status":"venda","name":"Bruno"}`
	rr := httptest.NewRecorder()
	app.LeadsUpsert(rr, httptest.NewRequest("POST", "/v1/leads", strings.NewReader(body)))

	if rr.Code != 200 {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	if len(leads.items) != 1 {
		t.Fatalf("stored %d leads, want 1", len(leads.items))
	}
	for _, lead := range leads.items {
		if lead.DealValue == nil || *lead.DealValue != 0 {
			t.Fatalf("deal value = %v, want 0", lead.DealValue)
		}
		wantDay := time.Now().Format(kpi.ISODate)
		if lead.DealDate == nil || *lead.DealDate != wantDay {
			t.Fatalf("deal date = %v, want today", lead.DealDate)
		}
	}
}

func TestLeadsUpsertStripsDealFieldsForNonVenda(t *testing.T) {
	app, _, _, leads, _, _ := newTestApp()

	// The client sends deal fields with a non-venda status; both are forced
	// null.
	body := `{"profile":"harley","status":"no_show","name":"Carla","deal_value":500,"deal_date":"2024-02-10"}`
	rr := httptest.NewRecorder()
	app.LeadsUpsert(rr, httptest.NewRequest("POST", "/v1/leads", strings.NewReader(body)))

	if rr.Code != 200 {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	for _, lead := range leads.items {
		if lead.DealValue != nil || lead.DealDate != nil {
			t.Fatalf("deal fields kept on non-venda lead: %+v", lead)
		}
	}
}

func TestLeadsDeleteUnknownIDReturns404(t *testing.T) {
	app, _, _, _, _, _ := newTestApp()

	rr := httptest.NewRecorder()
	app.LeadsDelete(rr, deleteRequest("/v1/leads/nope", "nope"))
	if rr.Code != 404 {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if resp["error"] != "not_found" {
		t.Fatalf("error = %q, want not_found", resp["error"])
	}
}

func TestLeadsDeleteRemovesStoredLead(t *testing.T) {
	app, _, _, leads, _, _ := newTestApp()

	rr := httptest.NewRecorder()
	app.LeadsUpsert(rr, httptest.NewRequest("POST", "/v1/leads", strings.NewReader(
		`{"profile":"harley","status":"realizou","name":"Eva","lead_date":"2024-02-05"}`)))
	if rr.Code != 200 {
		t.Fatalf("seed: %d %s", rr.Code, rr.Body.String())
	}
	var created domain.MeetingLead
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rr = httptest.NewRecorder()
	app.LeadsDelete(rr, deleteRequest("/v1/leads/"+created.ID, created.ID))
	if rr.Code != 204 {
		t.Fatalf("delete status = %d, want 204", rr.Code)
	}
	if len(leads.items) != 0 {
		t.Fatal("lead still stored after delete")
	}
}

func TestLeadsListReportsWidenedWindow(t *testing.T) {
	app, _, _, _, _, _ := newTestApp()

	// A lead dated after the requested end is fetched through the widened
	// window; the response names the window actually served so the extra
	// rows are explainable.
	rr := httptest.NewRecorder()
	app.LeadsUpsert(rr, httptest.NewRequest("POST", "/v1/leads", strings.NewReader(
		`{"profile":"harley","status":"realizou","name":"Fabio","lead_date":"2024-02-10"}`)))
	if rr.Code != 200 {
		t.Fatalf("seed: %d %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	app.LeadsList(rr, httptest.NewRequest("GET", "/v1/leads?profile=harley&start=2024-01-01&end=2024-01-31", nil))
	if rr.Code != 200 {
		t.Fatalf("list status = %d", rr.Code)
	}
	var resp struct {
		Window kpi.Range            `json:"window"`
		Items  []domain.MeetingLead `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Window.Start != "2024-01-01" || resp.Window.End != time.Now().Format(kpi.ISODate) {
		t.Fatalf("window = %+v, want upper bound widened to today", resp.Window)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("items = %d, want the out-of-range lead included", len(resp.Items))
	}
}

func TestLeadsUpsertRoundTripAndIdempotence(t *testing.T) {
	app, _, _, leads, _, _ := newTestApp()

	body := `{"profile":"harley","status":"venda","name":"Diego","lead_date":"2024-02-05","deal_value":"2500","deal_date":"2024-02-10","avg_revenue":1200}`
	rr := httptest.NewRecorder()
	app.LeadsUpsert(rr, httptest.NewRequest("POST", "/v1/leads", strings.NewReader(body)))
	if rr.Code != 200 {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}

	var created domain.MeetingLead
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" {
		t.Fatal("no id generated")
	}
	if created.DealValue == nil || *created.DealValue != 2500 {
		t.Fatalf("deal value = %v, want 2500 (string coerced)", created.DealValue)
	}

	// Upserting the full record again with its id yields one stored record,
	// not two.
	again, _ := json.Marshal(created)
	rr = httptest.NewRecorder()
	app.LeadsUpsert(rr, httptest.NewRequest("POST", "/v1/leads", strings.NewReader(string(again))))
	if rr.Code != 200 {
		t.Fatalf("second upsert status = %d", rr.Code)
	}
	if len(leads.items) != 1 {
		t.Fatalf("stored %d leads after duplicate upsert, want 1", len(leads.items))
	}

	// Listing the range returns the record with all submitted fields.
	rr = httptest.NewRecorder()
	app.LeadsList(rr, httptest.NewRequest("GET", "/v1/leads?profile=harley&start=2024-02-01&end=2024-02-29", nil))
	if rr.Code != 200 {
		t.Fatalf("list status = %d", rr.Code)
	}
	var listed struct {
		Items []domain.MeetingLead `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Items) != 1 {
		t.Fatalf("listed %d items, want 1", len(listed.Items))
	}
	got := listed.Items[0]
	if got.ID != created.ID || got.Name != "Diego" || got.LeadDate != "2024-02-05" || got.AvgRevenue != 1200 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}
