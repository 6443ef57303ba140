package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tableflip.dev/ledger/pkg/log"
)

// Client talks to the ledger API over HTTP. One Client serves all three
// service interfaces.
type Client struct {
	base   string
	http   *http.Client
	logger *log.Logger
}

// NewClient builds a Client for the given base URL. A nil logger defaults to
// the discard logger.
func NewClient(base string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Discard()
	}
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: logger.WithComponent(log.ComponentAPI),
	}
}

// NewServices wires a Client into the Services bundle.
func NewServices(base string, logger *log.Logger) Services {
	c := NewClient(base, logger)
	return Services{Tx: txClient{c}, Plan: planClient{c}, Cats: catClient{c}}
}

// envelope is the response wrapper every endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			log.FieldMethod, method, log.FieldPath, path, log.FieldRequestID, reqID, log.FieldError, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		log.FieldMethod, method, log.FieldPath, path, log.FieldRequestID, reqID,
		log.FieldStatusCode, resp.StatusCode, log.FieldDuration, time.Since(start).Milliseconds())

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api: %s %s: status %d", method, path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	if !env.Success && env.Message != "" {
		return fmt.Errorf("api: %s", env.Message)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("api: decode payload: %w", err)
		}
	}
	return nil
}

type txClient struct{ c *Client }

func (t txClient) Page(ctx context.Context, page, size int, q TxQuery) (TxPage, error) {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("size", strconv.Itoa(size))
	setIf(v, "type", q.Type)
	setDec(v, "min", q.Min)
	setDec(v, "max", q.Max)
	setIf(v, "from", q.From)
	setIf(v, "to", q.To)
	setIf(v, "note", q.Note)
	setIf(v, "category", q.Category)

	var out TxPage
	if err := t.c.do(ctx, http.MethodGet, "/transactions", v, nil, &out); err != nil {
		return TxPage{}, err
	}
	return out, nil
}

func (t txClient) Get(ctx context.Context, id int64) (TxRecord, error) {
	var out TxRecord
	if err := t.c.do(ctx, http.MethodGet, "/transactions/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return TxRecord{}, err
	}
	return out, nil
}

func (t txClient) Create(ctx context.Context, w TxWrite) error {
	return t.c.do(ctx, http.MethodPost, "/transactions", nil, w, nil)
}

func (t txClient) Update(ctx context.Context, id int64, w TxWrite) error {
	return t.c.do(ctx, http.MethodPatch, "/transactions/"+strconv.FormatInt(id, 10), nil, w, nil)
}

func (t txClient) Delete(ctx context.Context, id int64) error {
	return t.c.do(ctx, http.MethodDelete, "/transactions/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

type planClient struct{ c *Client }

func plannedValues(q PlannedQuery) url.Values {
	v := url.Values{}
	setIf(v, "title", q.Title)
	setIf(v, "from", q.From)
	setIf(v, "to", q.To)
	setIf(v, "type", q.Type)
	setDec(v, "min", q.Min)
	setDec(v, "max", q.Max)
	setIf(v, "category", q.Category)
	return v
}

func (p planClient) Page(ctx context.Context, page, size int, q PlannedQuery) (PlannedPage, error) {
	v := plannedValues(q)
	v.Set("page", strconv.Itoa(page))
	v.Set("size", strconv.Itoa(size))

	var out PlannedPage
	if err := p.c.do(ctx, http.MethodGet, "/planned", v, nil, &out); err != nil {
		return PlannedPage{}, err
	}
	return out, nil
}

func (p planClient) List(ctx context.Context, q PlannedQuery) ([]PlannedRecord, error) {
	var out []PlannedRecord
	if err := p.c.do(ctx, http.MethodGet, "/planned/all", plannedValues(q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p planClient) Create(ctx context.Context, w PlannedWrite) error {
	return p.c.do(ctx, http.MethodPost, "/planned", nil, w, nil)
}

func (p planClient) Update(ctx context.Context, id int64, w PlannedWrite) error {
	return p.c.do(ctx, http.MethodPatch, "/planned/"+strconv.FormatInt(id, 10), nil, w, nil)
}

func (p planClient) Delete(ctx context.Context, id int64) error {
	return p.c.do(ctx, http.MethodDelete, "/planned/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

type catClient struct{ c *Client }

func (cc catClient) List(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := cc.c.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func setIf(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setDec(v url.Values, key string, d *decimal.Decimal) {
	if d != nil {
		v.Set(key, d.String())
	}
}
