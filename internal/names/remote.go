package names

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vk/loopgridgo/internal/ctxlog"
)

// httpClient is shared across fetches to reuse TCP connections.
var httpClient = &http.Client{}

// objectInfo mirrors the slice of the host's /object_info/KSampler response
// we care about. Each required input is an array whose first element is the
// enum of valid values, e.g. "sampler_name": [["euler", "heun", ...]].
type objectInfo map[string]struct {
	Input struct {
		Required map[string][]json.RawMessage `json:"required"`
	} `json:"input"`
}

// Fetch queries a running host's object-info endpoint for the live sampler
// and scheduler name lists. The returned catalog reflects whatever the host
// has registered at the time of the call, including custom samplers the
// built-in lists don't know about.
func Fetch(ctx context.Context, baseURL string) (*Static, error) {
	logger := ctxlog.FromContext(ctx).With("base_url", baseURL)

	url := strings.TrimRight(baseURL, "/") + "/object_info/KSampler"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create object_info request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("object_info request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("object_info request returned status %d", resp.StatusCode)
	}

	var info objectInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode object_info response: %w", err)
	}

	node, ok := info["KSampler"]
	if !ok {
		return nil, fmt.Errorf("object_info response does not describe a KSampler node")
	}

	samplers, err := enumValues(node.Input.Required, "sampler_name")
	if err != nil {
		return nil, err
	}
	schedulers, err := enumValues(node.Input.Required, "scheduler")
	if err != nil {
		return nil, err
	}

	logger.Info("Fetched name lists from host registry.",
		"samplers", len(samplers), "schedulers", len(schedulers))
	return NewStatic(samplers, schedulers), nil
}

// enumValues extracts the enum list from a required-input entry.
func enumValues(required map[string][]json.RawMessage, key string) ([]string, error) {
	raw, ok := required[key]
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("object_info response has no %q input", key)
	}

	var values []string
	if err := json.Unmarshal(raw[0], &values); err != nil {
		return nil, fmt.Errorf("failed to decode %q enum: %w", key, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("host registry reports no valid %q values", key)
	}
	return values, nil
}
