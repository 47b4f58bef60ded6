package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/waqarulwahab/autoport/internal/client/models"
	"github.com/waqarulwahab/autoport/internal/client/query"
	"github.com/waqarulwahab/autoport/internal/common"
)

// missingCredentialsMsg is the exact message the backend emits when a
// request arrives without a valid token. Matching it (alongside HTTP 401)
// is what triggers local session invalidation.
const missingCredentialsMsg = "Authentication credentials were not provided"

// RESTClient is the resty-backed implementation of Client.
type RESTClient struct {
	http  *resty.Client
	creds CredentialStore
}

// NewRESTClient builds a client for the backend at baseURL. The credential
// store is consulted before every request and cleared when the backend
// rejects the credential; no other local state is touched.
func NewRESTClient(baseURL string, timeout time.Duration, creds CredentialStore) *RESTClient {
	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &RESTClient{http: httpClient, creds: creds}
}

// envelope is the part of every backend response shared by success and
// failure payloads.
type envelope struct {
	Success bool          `json:"success"`
	Error   *apiErrorBody `json:"error,omitempty"`
}

type apiErrorBody struct {
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func (e *envelope) env() *envelope { return e }

type responder interface{ env() *envelope }

func (c *RESTClient) newRequest(ctx context.Context) *resty.Request {
	// The backend always answers with the JSON envelope; decode it even
	// when a proxy or misconfigured view mislabels the Content-Type.
	r := c.http.R().
		SetContext(ctx).
		ForceContentType("application/json").
		SetHeader("X-Request-Id", uuid.NewString())

	if token := c.creds.Token(ctx); token != "" {
		r.SetHeader("Authorization", "Token "+token)
	}
	return r
}

// do issues one request and decodes the response into result. Transport
// failures map to common.ErrUnavailable; HTTP errors and success=false
// payloads map to RequestError. Exactly one attempt, no retries.
func (c *RESTClient) do(ctx context.Context, method, path string, body any, result responder) error {
	errEnv := new(envelope)

	r := c.newRequest(ctx).
		SetResult(result).
		SetError(errEnv)
	if body != nil {
		r.SetBody(body)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		return unavailable(err)
	}

	if resp.IsError() {
		return c.rejection(ctx, resp.StatusCode(), errEnv.Error)
	}
	if !result.env().Success {
		return c.rejection(ctx, resp.StatusCode(), result.env().Error)
	}
	return nil
}

// rejection converts a backend error payload into a RequestError. A
// credential rejection additionally clears the local session cache, the
// adapter's only side effect beyond the network call itself.
func (c *RESTClient) rejection(ctx context.Context, status int, body *apiErrorBody) error {
	reqErr := &RequestError{Status: status}
	if body != nil {
		reqErr.Message = body.Message
		reqErr.Details = body.Details
	}

	if status == http.StatusUnauthorized || strings.Contains(reqErr.Message, missingCredentialsMsg) {
		reqErr.Err = common.ErrUnauthorized
		_ = c.creds.Clear(ctx)
	}
	return reqErr
}

// --- Auth ---

type authResult struct {
	envelope
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func sessionFromAuth(res *authResult) *models.Session {
	return &models.Session{
		Token:     res.Token,
		Email:     res.User.Email,
		FirstName: res.User.FirstName,
		LastName:  res.User.LastName,
		Role:      res.User.Role,
		Company:   res.User.Company,
	}
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	res := new(authResult)
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, resty.MethodPost, "/auth/login/", payload, res); err != nil {
		return nil, err
	}
	return sessionFromAuth(res), nil
}

func (c *RESTClient) Register(ctx context.Context, req RegisterRequest) (*models.Session, error) {
	res := new(authResult)
	if err := c.do(ctx, resty.MethodPost, "/auth/register/", req, res); err != nil {
		return nil, err
	}
	return sessionFromAuth(res), nil
}

func (c *RESTClient) Logout(ctx context.Context) error {
	res := new(struct{ envelope })
	return c.do(ctx, resty.MethodPost, "/auth/logout/", nil, res)
}

// --- Inventory ---

type carsResult struct {
	envelope
	Cars []models.Car `json:"cars"`
}

type carResult struct {
	envelope
	Car models.Car `json:"car"`
}

func (c *RESTClient) ListCars(ctx context.Context) ([]models.Car, error) {
	res := new(carsResult)
	if err := c.do(ctx, resty.MethodGet, "/cars/", nil, res); err != nil {
		return nil, err
	}
	return res.Cars, nil
}

func (c *RESTClient) GetCar(ctx context.Context, id int64) (*models.Car, error) {
	res := new(carResult)
	if err := c.do(ctx, resty.MethodGet, fmt.Sprintf("/cars/%d/", id), nil, res); err != nil {
		return nil, err
	}
	return &res.Car, nil
}

func (c *RESTClient) CreateCar(ctx context.Context, car *models.Car) (*models.Car, error) {
	res := new(carResult)
	if err := c.do(ctx, resty.MethodPost, "/cars/create/", car, res); err != nil {
		return nil, err
	}
	return &res.Car, nil
}

func (c *RESTClient) UpdateCar(ctx context.Context, car *models.Car) (*models.Car, error) {
	res := new(carResult)
	if err := c.do(ctx, resty.MethodPut, fmt.Sprintf("/cars/%d/update/", car.ID), car, res); err != nil {
		return nil, err
	}
	return &res.Car, nil
}

func (c *RESTClient) DeleteCar(ctx context.Context, id int64) error {
	res := new(struct{ envelope })
	return c.do(ctx, resty.MethodDelete, fmt.Sprintf("/cars/%d/delete/", id), nil, res)
}

type activitiesResult struct {
	envelope
	Activities []models.Activity `json:"activities"`
}

func (c *RESTClient) RecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	res := new(activitiesResult)
	path := fmt.Sprintf("/cars/activities/?limit=%d", limit)
	if err := c.do(ctx, resty.MethodGet, path, nil, res); err != nil {
		return nil, err
	}
	return res.Activities, nil
}

// --- Exports ---

type exportsResult struct {
	envelope
	Exports []models.Export `json:"exports"`
}

type exportResult struct {
	envelope
	Export models.Export `json:"export"`
}

func (c *RESTClient) ListExports(ctx context.Context) ([]models.Export, error) {
	res := new(exportsResult)
	if err := c.do(ctx, resty.MethodGet, "/exports/", nil, res); err != nil {
		return nil, err
	}
	return res.Exports, nil
}

func (c *RESTClient) CreateExport(ctx context.Context, exp *models.Export) (*models.Export, error) {
	res := new(exportResult)
	if err := c.do(ctx, resty.MethodPost, "/exports/create/", exp, res); err != nil {
		return nil, err
	}
	return &res.Export, nil
}

func (c *RESTClient) UpdateExportStatus(ctx context.Context, id int64, status string) error {
	res := new(struct{ envelope })
	payload := map[string]string{"status": status}
	return c.do(ctx, resty.MethodPut, fmt.Sprintf("/exports/%d/status/", id), payload, res)
}

func (c *RESTClient) DeleteExport(ctx context.Context, id int64) error {
	res := new(struct{ envelope })
	return c.do(ctx, resty.MethodDelete, fmt.Sprintf("/exports/%d/delete/", id), nil, res)
}

// --- Dashboard ---

type statsResult struct {
	envelope
	Data query.Stats `json:"data"`
}

func (c *RESTClient) DashboardStats(ctx context.Context) (*query.Stats, error) {
	res := new(statsResult)
	if err := c.do(ctx, resty.MethodGet, "/dashboard/stats/", nil, res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *RESTClient) Search(ctx context.Context, q string) ([]models.Car, error) {
	res := new(carsResult)
	errEnv := new(envelope)

	resp, err := c.newRequest(ctx).
		SetQueryParam("q", q).
		SetResult(res).
		SetError(errEnv).
		Get("/dashboard/search/")
	if err != nil {
		return nil, unavailable(err)
	}
	if resp.IsError() {
		return nil, c.rejection(ctx, resp.StatusCode(), errEnv.Error)
	}
	if !res.Success {
		return nil, c.rejection(ctx, resp.StatusCode(), res.Error)
	}
	return res.Cars, nil
}

// --- Profile and settings ---

type userResult struct {
	envelope
	User models.User `json:"user"`
}

func (c *RESTClient) Profile(ctx context.Context) (*models.User, error) {
	res := new(userResult)
	if err := c.do(ctx, resty.MethodGet, "/users/profile/", nil, res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *RESTClient) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	res := new(userResult)
	if err := c.do(ctx, resty.MethodPut, "/users/profile/update/", user, res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *RESTClient) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	res := new(struct{ envelope })
	payload := map[string]string{
		"current_password": current,
		"new_password":     newPassword,
		"confirm_password": confirm,
	}
	return c.do(ctx, resty.MethodPost, "/account-settings/password/change/", payload, res)
}

type emailPrefsResult struct {
	envelope
	EmailPreferences models.EmailPreferences `json:"email_preferences"`
}

func (c *RESTClient) EmailPreferences(ctx context.Context) (*models.EmailPreferences, error) {
	res := new(emailPrefsResult)
	if err := c.do(ctx, resty.MethodGet, "/account-settings/email-preferences/", nil, res); err != nil {
		return nil, err
	}
	return &res.EmailPreferences, nil
}

func (c *RESTClient) UpdateEmailPreferences(ctx context.Context, p *models.EmailPreferences) error {
	res := new(struct{ envelope })
	return c.do(ctx, resty.MethodPut, "/account-settings/email-preferences/", p, res)
}

type systemPrefsResult struct {
	envelope
	SystemPreferences models.SystemPreferences `json:"system_preferences"`
}

func (c *RESTClient) SystemPreferences(ctx context.Context) (*models.SystemPreferences, error) {
	res := new(systemPrefsResult)
	if err := c.do(ctx, resty.MethodGet, "/account-settings/system-preferences/", nil, res); err != nil {
		return nil, err
	}
	return &res.SystemPreferences, nil
}

func (c *RESTClient) UpdateSystemPreferences(ctx context.Context, p *models.SystemPreferences) error {
	res := new(struct{ envelope })
	return c.do(ctx, resty.MethodPut, "/account-settings/system-preferences/", p, res)
}

// --- Upload ---

type uploadResult struct {
	envelope
	File struct {
		FileURL string `json:"file_url"`
	} `json:"file"`
}

// UploadImage posts the image as multipart form data and returns the URL
// the backend stored it under.
func (c *RESTClient) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	res := new(uploadResult)
	errEnv := new(envelope)

	resp, err := c.newRequest(ctx).
		SetFileReader("file", filename, r).
		SetResult(res).
		SetError(errEnv).
		Post("/upload/image/")
	if err != nil {
		return "", unavailable(err)
	}
	if resp.IsError() {
		return "", c.rejection(ctx, resp.StatusCode(), errEnv.Error)
	}
	if !res.Success {
		return "", c.rejection(ctx, resp.StatusCode(), res.Error)
	}
	return res.File.FileURL, nil
}
