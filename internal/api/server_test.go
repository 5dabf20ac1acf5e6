package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pvoronin/newsgauge/internal/analyze"
	"github.com/pvoronin/newsgauge/internal/annotate"
	"github.com/pvoronin/newsgauge/internal/lexicon"
	"github.com/pvoronin/newsgauge/internal/model"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	provider, err := annotate.NewProvider(model.AnnotateConfig{Engine: "rules"}, lexicon.NewStopwords())
	if err != nil {
		t.Fatal(err)
	}
	analyzer := analyze.New(provider, nil, model.DefaultConfig().Analysis, nil)
	return NewServer(analyzer, model.ServerConfig{Addr: ":0", RatePerSecond: 100, RateBurst: 200})
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := testServer(t).Router()

	rec := doRequest(t, router, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestAnalyze_MissingText(t *testing.T) {
	router := testServer(t).Router()

	for _, payload := range []string{`{}`, `{"title":"Headline Only"}`, `{"text":"  "}`} {
		rec := doRequest(t, router, http.MethodPost, "/analyze", payload)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("payload %s: status = %d", payload, rec.Code)
			continue
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["detail"] != missingTextDetail {
			t.Errorf("payload %s: detail = %q", payload, body["detail"])
		}
	}
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	router := testServer(t).Router()

	rec := doRequest(t, router, http.MethodPost, "/analyze", `{"text":`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	// A syntax error must not masquerade as the missing-text message.
	if body["detail"] == missingTextDetail || !strings.HasPrefix(body["detail"], "Invalid request body") {
		t.Errorf("detail = %q", body["detail"])
	}
}

func TestAnalyze_FullReport(t *testing.T) {
	router := testServer(t).Router()

	rec := doRequest(t, router, http.MethodPost, "/analyze",
		`{"text":"Officials said the ceasefire in Paris could hold.","source":"bbc.co.uk"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var report struct {
		Sentiment      model.Sentiment      `json:"sentiment"`
		Entities       []model.Entity       `json:"entities"`
		Classification model.Classification `json:"classification"`
		GeographicInfo model.GeoSummary     `json:"geographic_info"`
		Summary        string               `json:"summary"`
		BiasAnalysis   model.BiasAnalysis   `json:"bias_analysis"`
		TopWords       model.WordStats      `json:"topWords"`
		TopPhrases     model.PhraseStats    `json:"topPhrases"`
		Credibility    model.Credibility    `json:"credibility"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if report.Classification.Error != "Classifier model not loaded" {
		t.Errorf("classification = %+v", report.Classification)
	}
	if len(report.GeographicInfo.MentionedLocations) != 1 {
		t.Errorf("mentioned = %v", report.GeographicInfo.MentionedLocations)
	}
	if report.Summary == "" {
		t.Error("expected summary")
	}
	if report.Credibility.Factors["source_reputation"] != 0.85 {
		t.Errorf("factors = %v", report.Credibility.Factors)
	}
}

func TestSentiment_Wrapped(t *testing.T) {
	router := testServer(t).Router()

	rec := doRequest(t, router, http.MethodPost, "/sentiment",
		`{"content":"The peace agreement is a hopeful sign of progress."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Sentiment model.Sentiment `json:"sentiment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Sentiment.Compound <= 0 {
		t.Errorf("compound = %v", body.Sentiment.Compound)
	}
}

func TestEntities_Wrapped(t *testing.T) {
	router := testServer(t).Router()

	rec := doRequest(t, router, http.MethodPost, "/entities",
		`{"text":"Shelling was reported near Kyiv overnight."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Entities []model.Entity `json:"entities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Entities) != 1 || body.Entities[0].Text != "Kyiv" || body.Entities[0].Type != "GPE" {
		t.Errorf("entities = %v", body.Entities)
	}
}

func TestClassify_NoModel(t *testing.T) {
	router := testServer(t).Router()

	rec := doRequest(t, router, http.MethodPost, "/classify", `{"text":"Troops advanced overnight."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Classification model.Classification `json:"classification"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Classification.Error != "Classifier model not loaded" {
		t.Errorf("classification = %+v", body.Classification)
	}
}

func TestSummarize_Wrapped(t *testing.T) {
	router := testServer(t).Router()

	rec := doRequest(t, router, http.MethodPost, "/summarize",
		`{"text":"First sentence here. Second sentence there."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Summary != "First sentence here." {
		t.Errorf("summary = %q", body.Summary)
	}
}

func TestBias_Wrapped(t *testing.T) {
	router := testServer(t).Router()

	rec := doRequest(t, router, http.MethodPost, "/bias",
		`{"text":"They might never agree on anything.","siteName":"cnn.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		BiasAnalysis model.BiasAnalysis `json:"bias_analysis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.BiasAnalysis.SourceBias.Confidence != 0.7 {
		t.Errorf("source bias = %+v", body.BiasAnalysis.SourceBias)
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	provider, err := annotate.NewProvider(model.AnnotateConfig{Engine: "rules"}, lexicon.NewStopwords())
	if err != nil {
		t.Fatal(err)
	}
	analyzer := analyze.New(provider, nil, model.DefaultConfig().Analysis, nil)
	router := NewServer(analyzer, model.ServerConfig{RatePerSecond: 1, RateBurst: 1}).Router()

	if rec := doRequest(t, router, http.MethodGet, "/", ""); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/", ""); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d", rec.Code)
	}
}
