// Package apiclient is the request client the wizard and the admin
// table consume. It attaches the auth credential when one is present
// and surfaces structured failures on non-2xx responses or network
// unreachability.
package apiclient

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/innovatec/registration-api/internal/domain"
	"github.com/innovatec/registration-api/internal/wizard"
)

// TokenProvider yields the current auth token, or "" when there is
// none. Called per request so a fresh login is picked up immediately.
type TokenProvider func() string

// APIError is the structured failure of a remote call. StatusCode is
// zero when the server could not be reached at all.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("api unreachable: %s", e.Message)
	}

	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Message string `json:"error"`
}

type Client struct {
	http *resty.Client
}

func New(baseURL string, token TokenProvider) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token == nil {
			return nil
		}
		if t := token(); t != "" {
			req.SetHeader("Authorization", "Bearer "+t)
		}

		return nil
	})

	return &Client{
		http: httpClient,
	}
}

// SubmitParticipant posts a finished registration. Implements
// wizard.Submitter.
func (c *Client) SubmitParticipant(ctx context.Context, sub wizard.Submission) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sub).
		SetError(&errorBody{}).
		Post("/participants")

	return asAPIError(resp, err)
}

// ChangePaymentStatus patches the payment status of a participant.
// Implements listing.StatusChanger.
func (c *Client) ChangePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"paymentStatus": string(status)}).
		SetError(&errorBody{}).
		Patch(fmt.Sprintf("/participants/updatePaymentStatus/%d", id))

	return asAPIError(resp, err)
}

func asAPIError(resp *resty.Response, err error) error {
	if err != nil {
		return &APIError{Message: err.Error()}
	}

	if resp.IsError() {
		message := resp.Status()
		if body, ok := resp.Error().(*errorBody); ok && body.Message != "" {
			message = body.Message
		}

		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    message,
		}
	}

	return nil
}
