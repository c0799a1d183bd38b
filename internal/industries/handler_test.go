package industries

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo))
	r := chi.NewRouter()
	r.Route("/industries", handler.MountRoutes)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateIndustry(t *testing.T) {
	router := newTestRouter(newMemoryIndustryRepo())

	rr := doRequest(t, router, http.MethodPost, "/industries", `{"code":"tech","industry":"Technology"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.JSONEq(t, `{"industry":{"code":"tech","industry":"Technology"}}`, rr.Body.String())
}

func TestCreateIndustryConflict(t *testing.T) {
	repo := newMemoryIndustryRepo()
	repo.industries["tech"] = Industry{Code: "tech", Industry: "Technology"}
	router := newTestRouter(repo)

	rr := doRequest(t, router, http.MethodPost, "/industries", `{"code":"tech","industry":"Technology"}`)
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestCreateIndustryMissingFields(t *testing.T) {
	router := newTestRouter(newMemoryIndustryRepo())

	rr := doRequest(t, router, http.MethodPost, "/industries", `{"code":"tech"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListIndustries(t *testing.T) {
	repo := newMemoryIndustryRepo()
	repo.industries["tech"] = Industry{Code: "tech", Industry: "Technology"}
	repo.industries["retail"] = Industry{Code: "retail", Industry: "Retail"}
	repo.companies["apple"] = struct{}{}
	repo.pairs[pair{compCode: "apple", industryCode: "tech"}] = struct{}{}
	router := newTestRouter(repo)

	rr := doRequest(t, router, http.MethodGet, "/industries", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Industries []WithCompanies `json:"industries"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Industries, 2)
	require.Equal(t, []string{}, body.Industries[0].Companies)
	require.Equal(t, []string{"apple"}, body.Industries[1].Companies)
}

func TestAssociate(t *testing.T) {
	repo := newMemoryIndustryRepo()
	repo.industries["tech"] = Industry{Code: "tech", Industry: "Technology"}
	repo.companies["apple"] = struct{}{}
	router := newTestRouter(repo)

	rr := doRequest(t, router, http.MethodPost, "/industries/tech", `{"comp_code":"apple"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"associated"}`, rr.Body.String())
}

func TestAssociateUnknownCodes(t *testing.T) {
	router := newTestRouter(newMemoryIndustryRepo())

	rr := doRequest(t, router, http.MethodPost, "/industries/tech", `{"comp_code":"apple"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestAssociateDuplicatePair(t *testing.T) {
	repo := newMemoryIndustryRepo()
	repo.industries["tech"] = Industry{Code: "tech", Industry: "Technology"}
	repo.companies["apple"] = struct{}{}
	repo.pairs[pair{compCode: "apple", industryCode: "tech"}] = struct{}{}
	router := newTestRouter(repo)

	rr := doRequest(t, router, http.MethodPost, "/industries/tech", `{"comp_code":"apple"}`)
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestAssociateMissingBody(t *testing.T) {
	repo := newMemoryIndustryRepo()
	repo.industries["tech"] = Industry{Code: "tech", Industry: "Technology"}
	router := newTestRouter(repo)

	rr := doRequest(t, router, http.MethodPost, "/industries/tech", `{}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
