// Package client is a typed storefront client for the pharmacy API. Forms are checked
// with the same rules the server enforces before anything is sent.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pharmacy-api/models"
	"pharmacy-api/search"
	"pharmacy-api/validation"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
)

// APIError is a non-2xx answer from the server
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Field, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	Timeout time.Duration
	Session *Session
	Cart    *Cart
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: 10 * time.Second,
		Session: &Session{},
		Cart:    &Cart{},
	}
}

type request struct {
	method string
	path   string
	query  gout.H
	body   interface{}
	auth   bool
}

// do sends req and decodes a 2xx body into out
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	url := c.BaseURL + req.path
	var flow = gout.GET(url)
	switch req.method {
	case http.MethodPost:
		flow = gout.POST(url)
	case http.MethodPut:
		flow = gout.PUT(url)
	case http.MethodDelete:
		flow = gout.DELETE(url)
	}

	var (
		body []byte
		code int
	)
	flow = flow.WithContext(ctx).SetTimeout(c.Timeout)
	if len(req.query) > 0 {
		flow = flow.SetQuery(req.query)
	}
	if req.auth {
		flow = flow.SetHeader(gout.H{"Authorization": "Bearer " + c.Session.Token()})
	}
	if req.body != nil {
		flow = flow.SetJSON(req.body)
	}
	if err := flow.BindBody(&body).Code(&code).Do(); err != nil {
		return errors.Wrapf(err, "%s %s", req.method, req.path)
	}

	if code < 200 || code > 299 {
		var env models.ErrorEnvelope
		if json.Unmarshal(body, &env) != nil || env.Message == "" {
			env.Message = http.StatusText(code)
		}
		return &APIError{Status: code, Message: env.Message, Field: env.Field}
	}
	if out == nil {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(body, out), "decode %s %s", req.method, req.path)
}

// check runs the shared form rules locally
func check(form interface{}) error {
	return validation.Struct(form)
}

func (c *Client) Signup(ctx context.Context, form models.SignupForm) (uint, error) {
	if err := check(form); err != nil {
		return 0, err
	}
	var resp models.AuthResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/auth/signup", body: form}, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// Login stores the returned token in the session and reports the page to continue on
func (c *Client) Login(ctx context.Context, form models.LoginForm) (string, error) {
	if err := check(form); err != nil {
		return "", err
	}
	var resp models.AuthResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/auth/login", body: form}, &resp); err != nil {
		return "", err
	}
	c.Session.SetAuth(resp.Token, resp.Role)

	in := c.Session.PopIntent()
	if in.Item != nil {
		c.Cart.AddItem(*in.Item)
	}
	return Route(in, resp.Role), nil
}

func (c *Client) Me(ctx context.Context) (models.User, error) {
	var env models.Envelope[models.User]
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/auth/me", auth: true}, &env)
	return env.Data, err
}

// Doctors runs the server side doctor query
func (c *Client) Doctors(ctx context.Context, q models.DoctorQuery) ([]models.Doctor, error) {
	var env models.ListEnvelope[models.Doctor]
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/doctors", query: doctorQuery(q)}, &env)
	return env.Data, err
}

// FindDoctors fetches every doctor once and narrows the list locally with f
func (c *Client) FindDoctors(ctx context.Context, f search.Filters) ([]models.Doctor, error) {
	all, err := c.Doctors(ctx, models.DoctorQuery{})
	if err != nil {
		return nil, err
	}
	return search.Apply(all, f), nil
}

func (c *Client) Doctor(ctx context.Context, id uint) (models.Doctor, error) {
	var env models.Envelope[models.Doctor]
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/doctors/" + strconv.FormatUint(uint64(id), 10)}, &env)
	return env.Data, err
}

func (c *Client) Medicines(ctx context.Context, q models.MedicineQuery) ([]models.Medicine, error) {
	query := gout.H{}
	if q.Name != "" {
		query["q"] = q.Name
	}
	if q.Category != "" {
		query["category"] = q.Category
	}
	if q.Status != "" {
		query["status"] = q.Status
	}
	var env models.ListEnvelope[models.Medicine]
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/medicines", query: query}, &env)
	return env.Data, err
}

// Shop lists the available medicines filtered the way the shop page does
func (c *Client) Shop(ctx context.Context, f search.MedicineFilters) ([]models.Medicine, error) {
	all, err := c.Medicines(ctx, models.MedicineQuery{Status: models.MedicineAvailable})
	if err != nil {
		return nil, err
	}
	return search.ApplyMedicines(all, f), nil
}

func (c *Client) Contact(ctx context.Context, form models.ContactForm) error {
	form.Normalize()
	if err := check(form); err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPost, path: "/api/contact", body: form}, nil)
}

func (c *Client) Book(ctx context.Context, form models.BookingForm) (models.Booking, error) {
	form.Normalize()
	if err := check(form); err != nil {
		return models.Booking{}, err
	}
	var env models.Envelope[models.Booking]
	err := c.do(ctx, request{method: http.MethodPost, path: "/api/bookings", body: form}, &env)
	return env.Data, err
}

// CreateDoctor requires an admin session
func (c *Client) CreateDoctor(ctx context.Context, form models.DoctorForm) (models.Doctor, error) {
	form.Normalize()
	if err := check(form); err != nil {
		return models.Doctor{}, err
	}
	var env models.Envelope[models.Doctor]
	err := c.do(ctx, request{method: http.MethodPost, path: "/api/doctors", body: form, auth: true}, &env)
	return env.Data, err
}

func (c *Client) DeleteDoctor(ctx context.Context, id uint) error {
	path := "/api/doctors/" + strconv.FormatUint(uint64(id), 10)
	return c.do(ctx, request{method: http.MethodDelete, path: path, auth: true}, nil)
}

func (c *Client) CreateMedicine(ctx context.Context, form models.MedicineForm) (models.Medicine, error) {
	form.Normalize()
	if err := check(form); err != nil {
		return models.Medicine{}, err
	}
	var env models.Envelope[models.Medicine]
	err := c.do(ctx, request{method: http.MethodPost, path: "/api/medicines", body: form, auth: true}, &env)
	return env.Data, err
}

// Checkout empties the cart and returns what was in it
func (c *Client) Checkout() ([]CartItem, Totals) {
	items, totals := c.Cart.Items(), c.Cart.Totals()
	c.Cart.Clear()
	return items, totals
}

func doctorQuery(q models.DoctorQuery) gout.H {
	h := gout.H{}
	set := func(k, v string) {
		if v != "" {
			h[k] = v
		}
	}
	set("q", q.Name)
	set("specialization", q.Specialization)
	set("modeOfConsult", q.ModeOfConsult)
	set("language", q.Language)
	if q.ExperienceMin != nil {
		h["experienceMin"] = strconv.Itoa(*q.ExperienceMin)
	}
	if q.ExperienceMax != nil {
		h["experienceMax"] = strconv.Itoa(*q.ExperienceMax)
	}
	if q.FeeMin != nil {
		h["feeMin"] = strconv.FormatFloat(*q.FeeMin, 'f', -1, 64)
	}
	if q.FeeMax != nil {
		h["feeMax"] = strconv.FormatFloat(*q.FeeMax, 'f', -1, 64)
	}
	return h
}
