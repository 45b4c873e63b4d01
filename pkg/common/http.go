package common

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// PostJSON sends `body` encoded as JSON to the URL and decodes the JSON response into `out`.
// Statuses outside of 2xx are reported as errors; the response body is not read in that case.
func PostJSON(ctx context.Context, client *http.Client, url string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.Errorf("unexpected status %d from %s", res.StatusCode, url)
	}
	return errors.Wrap(json.NewDecoder(res.Body).Decode(out), "failed to decode response")
}
