package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hotel-admin/errors"
	"hotel-admin/models"
	"hotel-admin/services/logger"
)

// Client talks to the reservation REST backend. It is the only place
// that knows the backend's URL dialect: collection reads/creates use a
// trailing slash, member updates/deletes do not, and the composite room
// key travels as two path segments with the address escaped.
type Client struct {
	base string
	http *http.Client
	log  logger.Logger
}

func New(baseURL string, timeout time.Duration, log logger.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q", baseURL)
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Client{
		base: strings.TrimRight(u.String(), "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}, nil
}

// CollectionPath is the list/create path for a kind.
func CollectionPath(kind models.Kind) string {
	return "/" + string(kind) + "/"
}

// MemberPath is the update/delete path for one record.
func MemberPath(kind models.Kind, key models.Key) string {
	if kind == models.KindRoom {
		return fmt.Sprintf("/rooms/%s/%s", url.PathEscape(key.ID), url.PathEscape(key.HotelAddress))
	}
	return fmt.Sprintf("/%s/%s", kind, url.PathEscape(key.ID))
}

// ConvertPath is the booking→renting conversion endpoint.
func ConvertPath(bookingID int) string {
	return fmt.Sprintf("/bookings/%d/convert-to-renting/", bookingID)
}

const (
	SearchPath      = "/rooms/search/"
	HotelChainsPath = "/hotel-chains/"
	RoomsPerArea    = "/views/available-rooms-per-area/"
	RoomCapacity    = "/views/hotel-room-capacity/"
)

func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "could not encode request body", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeNetwork, "could not build backend request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("backend %s %s: %v", method, path, err)
		return errors.NewAppError(errors.ErrCodeNetwork, "backend unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(method, path, resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("backend %s %s: bad response body: %v", method, path, err)
		return errors.NewAppError(errors.ErrCodeBackend, "backend sent an unreadable response", err)
	}
	return nil
}

// statusError reduces a non-2xx response to an AppError, preferring the
// backend's structured detail field over a generic message.
func (c *Client) statusError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	msg := fmt.Sprintf("backend returned status %d", resp.StatusCode)
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		msg = payload.Detail
	}

	code := errors.ErrCodeBackend
	if resp.StatusCode == http.StatusNotFound {
		code = errors.ErrCodeNotFound
	}
	c.log.Error("backend %s %s: %d %s", method, path, resp.StatusCode, msg)
	return errors.NewAppError(code, msg, nil)
}
