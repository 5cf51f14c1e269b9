// Package brightree automates the Brightree ASP.NET WebForms portal the
// way a browser session would: fetch a page, echo its postback tokens
// back with the full control tree, and follow the redirect the server
// answers with.
package brightree

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"brightree-backend/lib/restyutil"

	browser "github.com/EDDYCJY/fake-useragent"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/brightree")

var restyInstrumentOutput restyutil.InstrumentOutput

// requires the output to be set before clients are constructed
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyInstrumentOutput = output
}

const defaultBaseURL = "https://brightree.net"
const defaultMaxRedirects = 5

type Client struct {
	baseURL *url.URL
	// follows redirect chains on its own
	http *resty.Client
	// hands 3xx responses back untouched, for the manual walk
	raw          *resty.Client
	maxRedirects int
}

type ClientOptions struct {
	// defaults to the production portal origin
	BaseURL string
	// opaque cookie string acquired upstream, echoed on every request.
	// expiry surfaces as an AuthError and requires re-initialization
	// with fresh tokens.
	SessionTokens string
	// defaults to a random desktop browser user agent
	UserAgent string
	// optional custom transport, e.g. a recording or proxying
	// round tripper supplied by the caller
	Transport http.RoundTripper
	// manual redirect walk hop cap, defaults to 5
	MaxRedirects int
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	baseURL, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	if opts.UserAgent == "" {
		opts.UserAgent = browser.Random()
	}
	if opts.MaxRedirects == 0 {
		opts.MaxRedirects = defaultMaxRedirects
	}

	newHttp := func() *resty.Client {
		client := resty.New()
		client.SetBaseURL(opts.BaseURL)
		client.SetHeader("User-Agent", opts.UserAgent)
		client.SetHeader("Cookie", opts.SessionTokens)
		client.SetHeader("Accept", "*/*")
		// Accept-Encoding is deliberately left to the transport: setting
		// it by hand disables net/http's transparent gzip decoding.
		client.SetTimeout(time.Second * 30)
		if opts.Transport != nil {
			client.GetClient().Transport = opts.Transport
		}
		restyutil.InstrumentClient(client, "scrapers/brightree/http", restyInstrumentOutput)
		return client
	}

	auto := newHttp()
	raw := newHttp()
	raw.GetClient().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Client{
		baseURL:      baseURL,
		http:         auto,
		raw:          raw,
		maxRedirects: opts.MaxRedirects,
	}, nil
}

func (c *Client) base() string {
	return strings.TrimSuffix(c.baseURL.String(), "/")
}
