package delegates

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// engager posts raw engage and group updates that the mixpanel client cannot express.
type engager struct {
	client *http.Client
}

func (e *engager) post(ctx context.Context, base, endpoint string, payload map[string]interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode payload")
	}

	form := url.Values{}
	form.Set("data", base64.StdEncoding.EncodeToString(data))

	req, err := http.NewRequestWithContext(ctx, "POST", strings.TrimSuffix(base, "/")+"/"+endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send "+endpoint)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(body)) != "1" {
		return errors.Errorf("mixpanel rejected %s: %d %s", endpoint, resp.StatusCode, body)
	}

	return nil
}

func (e *engager) unset(ctx context.Context, base, token, distinctID, name string) error {
	return e.post(ctx, base, "engage", map[string]interface{}{
		"$token":       token,
		"$distinct_id": distinctID,
		"$unset":       []string{name},
	})
}

func (e *engager) group(ctx context.Context, base, token, groupKey string, groupID interface{}, op string, value interface{}) error {
	return e.post(ctx, base, "groups", map[string]interface{}{
		"$token":     token,
		"$group_key": groupKey,
		"$group_id":  groupID,
		op:           value,
	})
}
