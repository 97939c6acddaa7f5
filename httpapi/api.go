// Package httpapi exposes the amount in letters over HTTP.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/purposeinplay/go-invoicewords/amount"
	"github.com/purposeinplay/go-invoicewords/http/httperr"
	"github.com/purposeinplay/go-invoicewords/http/render"
	"github.com/purposeinplay/go-invoicewords/http/router"
	"github.com/purposeinplay/go-invoicewords/invoice"
	"github.com/purposeinplay/go-invoicewords/numwords"
	"go.uber.org/zap"
)

// API serves the /v1 endpoints.
type API struct {
	mentioner *invoice.Mentioner
	log       *zap.Logger
	reporter  httperr.Reporter
}

// Option configures an API.
type Option func(a *API)

// WithReporter sends the server errors to rep.
func WithReporter(rep httperr.Reporter) Option {
	return func(a *API) {
		a.reporter = rep
	}
}

// New creates an API writing mentions with mentioner.
func New(log *zap.Logger, mentioner *invoice.Mentioner, opts ...Option) *API {
	a := &API{
		mentioner: mentioner,
		log:       log,
	}

	for _, o := range opts {
		o(a)
	}

	return a
}

// Handler returns the HTTP handler of the API. The CORS middleware
// allows requests from allowedOrigins.
func (a *API) Handler(allowedOrigins []string) http.Handler {
	corsOptions := router.DefaultCorsOptions
	corsOptions.AllowedOrigins = allowedOrigins

	opts := []router.Option{
		router.WithRequestID(),
		router.WithRealIP(),
		router.WithLogger(a.log),
	}

	if a.reporter != nil {
		opts = append(opts, router.WithErrorReporter(a.reporter))
	}

	opts = append(opts,
		router.WithRecoverer(),
		router.WithCors(corsOptions),
		router.WithHealthcheck("/health", nil),
	)

	r := router.New(opts...)

	r.Route("/v1", func(r *router.Router) {
		r.Get("/words", a.words)
		r.Post("/invoices/mention", a.invoiceMention)
	})

	return r
}

// WordsResponse is the amount in letters of a single amount.
type WordsResponse struct {
	Amount  *amount.ValueSubunit `json:"amount"`
	Words   string               `json:"words"`
	Mention string               `json:"mention"`
}

func (a *API) words(w http.ResponseWriter, r *http.Request) error {
	raw := r.URL.Query().Get("amount")
	if raw == "" {
		return httperr.BadRequestError("missing amount query parameter")
	}

	total, err := amount.NewFromUnitString(raw, amount.CFADecimals, amount.CurrencyXOF)
	if err != nil {
		if errors.Is(err, amount.ErrTooLarge) {
			return spellError(err)
		}

		return httperr.BadRequestError("amount is not a number").
			WithInternalError(err)
	}

	resp, err := a.spell(total)
	if err != nil {
		return err
	}

	return render.SendJSON(w, http.StatusOK, resp)
}

// InvoiceMentionResponse is the total of an invoice in letters.
type InvoiceMentionResponse struct {
	Reference string `json:"reference"`
	Total     string `json:"total"`
	WordsResponse
}

func (a *API) invoiceMention(w http.ResponseWriter, r *http.Request) error {
	var inv invoice.Invoice

	if err := render.DecodeJSON(w, r, &inv); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return httperr.RequestEntityTooLargeError(
				"invoice body is larger than %d bytes",
				maxBytesErr.Limit,
			).WithInternalError(err)
		}

		return httperr.BadRequestError("invalid invoice body").WithInternalError(err)
	}

	total, err := inv.Amount()
	if err != nil {
		return spellError(err)
	}

	if inv.Reference == uuid.Nil {
		inv.Reference = uuid.New()
	}

	resp, err := a.spell(total)
	if err != nil {
		return err
	}

	return render.SendJSON(w, http.StatusOK, InvoiceMentionResponse{
		Reference:     inv.Reference.String(),
		Total:         inv.Total().String(),
		WordsResponse: resp,
	})
}

func (a *API) spell(total *amount.Amount) (WordsResponse, error) {
	words, err := total.InWords()
	if err != nil {
		return WordsResponse{}, spellError(err)
	}

	mention, err := a.mentioner.Mention(total)
	if err != nil {
		return WordsResponse{}, spellError(err)
	}

	return WordsResponse{
		Amount:  new(amount.ValueSubunit).SetBigInt(total.WholeUnits()),
		Words:   words,
		Mention: mention,
	}, nil
}

func spellError(err error) error {
	switch {
	case errors.Is(err, numwords.ErrOutOfRange), errors.Is(err, amount.ErrTooLarge):
		return httperr.UnprocessableEntityError(
			"amount is greater than %d",
			numwords.MaxValue,
		).WithInternalError(err)

	case errors.Is(err, numwords.ErrInvalidInput),
		errors.Is(err, invoice.ErrInvalidInvoice),
		errors.Is(err, invoice.ErrUnsupportedCurrency):
		return httperr.BadRequestError("%s", err).WithInternalError(err)

	default:
		return err
	}
}
