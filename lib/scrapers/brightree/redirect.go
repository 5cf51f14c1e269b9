package brightree

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

type requestOptions struct {
	headers map[string]string
	// pre-encoded form body; callers encode it themselves so the same
	// payload replays byte-identical across redirect hops
	body string
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	}
	return false
}

func (c *Client) do(ctx context.Context, client *resty.Client, method, target string, opts requestOptions) (*resty.Response, error) {
	req := client.R().SetContext(ctx)
	if opts.headers != nil {
		req.SetHeaders(opts.headers)
	}
	if opts.body != "" {
		req.SetBody(opts.body)
	}
	return req.Execute(method, target)
}

// one logical request. the automatic redirect path is preferred, but
// net/http downgrades a redirected POST to GET and gives up on long
// chains, so a 3xx that survives automatic following (or a transport
// error) falls back to walking the chain by hand.
func (c *Client) request(ctx context.Context, method, target string, opts requestOptions) (string, error) {
	res, err := c.do(ctx, c.http, method, target, opts)
	if err != nil {
		slog.WarnContext(
			ctx, "automatic redirect handling failed, walking manually",
			"method", method,
			"url", target,
			"err", err,
		)
		return c.followManually(ctx, method, target, opts)
	}
	if isRedirect(res.StatusCode()) {
		slog.DebugContext(
			ctx, "transport returned an unfollowed redirect, walking manually",
			"status", res.StatusCode(),
			"url", target,
		)
		return c.followManually(ctx, method, target, opts)
	}
	return interpretResponse(res)
}

func (c *Client) followManually(ctx context.Context, method, target string, opts requestOptions) (string, error) {
	currentURL := target
	currentMethod := method

	for hop := 0; hop < c.maxRedirects; hop++ {
		res, err := c.do(ctx, c.raw, currentMethod, currentURL, opts)
		if err != nil {
			return "", err
		}
		if !isRedirect(res.StatusCode()) {
			return interpretResponse(res)
		}

		location := res.Header().Get("Location")
		if location == "" {
			return "", &APIError{
				StatusCode: res.StatusCode(),
				Message: fmt.Sprintf(
					"received redirect status %d but no Location header",
					res.StatusCode(),
				),
			}
		}
		next, err := url.Parse(location)
		if err != nil {
			return "", &APIError{Message: fmt.Sprintf("malformed Location header %q", location)}
		}
		if !next.IsAbs() {
			prev, err := url.Parse(currentURL)
			if err != nil {
				return "", err
			}
			next = prev.ResolveReference(next)
		}

		slog.DebugContext(
			ctx, "following manual redirect",
			"hop", hop+1,
			"max", c.maxRedirects,
			"url", next.String(),
		)
		currentURL = next.String()
		// 303 always demotes the follow-up to GET, whatever the
		// original method was
		if res.StatusCode() == http.StatusSeeOther {
			currentMethod = http.MethodGet
		}
	}

	return "", &APIError{Message: fmt.Sprintf("too many redirects (max: %d)", c.maxRedirects)}
}
