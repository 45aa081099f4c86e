package scaffold

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/c3nk/cli-standard-kit/jsonstream"
)

// Replaced in tests.
var pypiURLPrefix = "https://pypi.org/pypi"

// PyPIPackageLatestVersion returns the latest released version of a package
// on PyPI.
func PyPIPackageLatestVersion(ctx context.Context, name string) (version string, err error) {
	url := fmt.Sprintf("%s/%s/json", pypiURLPrefix, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to prepare GET request to endpoint %q: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to GET from endpoint %q: %w", url, err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if rc := resp.StatusCode; rc != 200 {
		return "", fmt.Errorf("failed to GET from endpoint %q, status code %d", url, rc)
	}

	digger, err := jsonstream.NewDigger(resp.Body, ".info.version")
	if err != nil {
		return "", fmt.Errorf("error from jsonstream.NewDigger: %w", err)
	}

	v, err := digger.Dig(ctx)
	if err != nil {
		return "", fmt.Errorf(`failed to get the value at the ".info.version" path from the response body: %w`, err)
	}

	version, ok := v.(string)
	if !ok {
		return "", fmt.Errorf(`the value at the ".info.version" path is not string`)
	}

	return version, nil
}
