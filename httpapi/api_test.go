package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/purposeinplay/go-invoicewords/http/render"
	"github.com/purposeinplay/go-invoicewords/httpapi"
	"github.com/purposeinplay/go-invoicewords/invoice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandler() http.Handler {
	log := zap.NewNop()

	return httpapi.New(log, invoice.NewMentioner(invoice.WithLogger(log))).
		Handler([]string{"https://app.example.com"})
}

func TestWords(t *testing.T) {
	t.Parallel()

	handler := newHandler()

	tests := map[string]struct {
		amount string

		expectedStatus int
		expectedBody   string
	}{
		"InvoiceTotal": {
			amount:         "75000",
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"amount": "75000",
				"words": "soixante-quinze-mille",
				"mention": "Arrêtée à la somme de SOIXANTE-QUINZE-MILLE Francs CFA."
			}`,
		},
		"FractionIsFloored": {
			amount:         "2023.95",
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"amount": "2023",
				"words": "deux-mille-vingt-trois",
				"mention": "Arrêtée à la somme de DEUX-MILLE-VINGT-TROIS Francs CFA."
			}`,
		},
		"Zero": {
			amount:         "0",
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"amount": "0",
				"words": "zéro",
				"mention": "Arrêtée à la somme de ZÉRO Francs CFA."
			}`,
		},
		"Missing": {
			expectedStatus: http.StatusBadRequest,
		},
		"NotANumber": {
			amount:         "douze",
			expectedStatus: http.StatusBadRequest,
		},
		"Negative": {
			amount:         "-1",
			expectedStatus: http.StatusBadRequest,
		},
		"OutOfRange": {
			amount:         "1000000000000",
			expectedStatus: http.StatusUnprocessableEntity,
		},
		"LargeExponent": {
			amount:         "1e5000000",
			expectedStatus: http.StatusUnprocessableEntity,
		},
		"LargeNegativeExponent": {
			amount:         "1e-5000000",
			expectedStatus: http.StatusUnprocessableEntity,
		},
		"TooLong": {
			amount:         strings.Repeat("9", 100),
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for name, test := range tests {
		test := test

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			target := "/v1/words"
			if test.amount != "" {
				target += "?amount=" + url.QueryEscape(test.amount)
			}

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

			require.Equal(t, test.expectedStatus, rr.Code, rr.Body.String())

			if test.expectedBody != "" {
				assert.JSONEq(t, test.expectedBody, rr.Body.String())

				return
			}

			var body struct {
				Code    int    `json:"code"`
				Message string `json:"msg"`
			}

			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, test.expectedStatus, body.Code)
			assert.NotEmpty(t, body.Message)
			assert.Less(t, rr.Body.Len(), 512)
		})
	}
}

func TestInvoiceMention(t *testing.T) {
	t.Parallel()

	handler := newHandler()

	post := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()

		req := httptest.NewRequest(
			http.MethodPost,
			"/v1/invoices/mention",
			strings.NewReader(body),
		)
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		return rr
	}

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		rr := post(t, `{
			"reference": "8f14e45f-ceea-467f-a0d7-3c1b9e2d7a10",
			"customer": "Boutique Diallo",
			"currency": "XOF",
			"lines": [
				{"description": "Sac de riz 50kg", "quantity": 3, "unit_price": "20000"},
				{"description": "Livraison", "quantity": "1", "unit_price": 15000.5}
			]
		}`)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		assert.JSONEq(t, `{
			"reference": "8f14e45f-ceea-467f-a0d7-3c1b9e2d7a10",
			"total": "75000.5",
			"amount": "75000",
			"words": "soixante-quinze-mille",
			"mention": "Arrêtée à la somme de SOIXANTE-QUINZE-MILLE Francs CFA."
		}`, rr.Body.String())
	})

	t.Run("GeneratesReference", func(t *testing.T) {
		t.Parallel()

		rr := post(t, `{"lines": [{"description": "Service", "quantity": 1, "unit_price": 21}]}`)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp httpapi.InvoiceMentionResponse

		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		ref, err := uuid.Parse(resp.Reference)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, ref)
		assert.Equal(t, "vingt-et-un", resp.Words)
	})

	t.Run("NoLines", func(t *testing.T) {
		t.Parallel()

		rr := post(t, `{"customer": "Boutique Diallo"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("UnknownField", func(t *testing.T) {
		t.Parallel()

		rr := post(t, `{"lines": [], "discount": 10}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		t.Parallel()

		rr := post(t, `{"lines": [
			{"description": "Immeuble", "quantity": 2, "unit_price": "600000000000"}
		]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("LargeExponent", func(t *testing.T) {
		t.Parallel()

		rr := post(t, `{"lines": [
			{"description": "Immeuble", "quantity": 1, "unit_price": 1e5000000},
			{"description": "Frais", "quantity": 1, "unit_price": "0.01"}
		]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Less(t, rr.Body.Len(), 512)
	})

	t.Run("NonCFACurrency", func(t *testing.T) {
		t.Parallel()

		rr := post(t, `{"currency": "EUR", "lines": [
			{"description": "a", "quantity": "1", "unit_price": "12.50"}
		]}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.NotContains(t, rr.Body.String(), "Francs CFA")
	})

	t.Run("BodyTooLarge", func(t *testing.T) {
		t.Parallel()

		rr := post(t, `{"customer": "`+strings.Repeat("a", int(render.MaxBodyBytes))+`"}`)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()

	newHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestCORS(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodOptions, "/v1/words", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rr := httptest.NewRecorder()

	newHandler().ServeHTTP(rr, req)

	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}
