package rental

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPInventoryClient talks to the inventory service over REST/JSON. Every
// call carries a short timeout; a timeout or non-success response is an
// ErrInventoryUnavailable, distinct from business rejections.
type HTTPInventoryClient struct {
	baseURL       string
	internalToken string
	http          *http.Client
}

func NewHTTPInventoryClient(baseURL, internalToken string, timeout time.Duration) *HTTPInventoryClient {
	return &HTTPInventoryClient{
		baseURL:       baseURL,
		internalToken: internalToken,
		http:          &http.Client{Timeout: timeout},
	}
}

func (c *HTTPInventoryClient) GetEquipment(ctx context.Context, id int64, token string) (*EquipmentInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/equipment/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInventoryUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrEquipmentNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrInventoryUnavailable, resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Equipment EquipmentInfo `json:"equipment"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInventoryUnavailable, err)
	}

	return &body.Data.Equipment, nil
}

func (c *HTTPInventoryClient) SetStatus(ctx context.Context, id int64, status string, token string) error {
	return c.postStatus(ctx, c.baseURL+"/equipment/update", id, status, "Bearer "+token)
}

func (c *HTTPInventoryClient) SetStatusInternal(ctx context.Context, id int64, status string) error {
	return c.postStatus(ctx, c.baseURL+"/internal/equipment/status", id, status, "Bearer "+c.internalToken)
}

func (c *HTTPInventoryClient) postStatus(ctx context.Context, url string, id int64, status, authorization string) error {
	payload, err := json.Marshal(map[string]any{
		"id":     id,
		"status": status,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInventoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrInventoryUnavailable, resp.StatusCode)
	}
	return nil
}
