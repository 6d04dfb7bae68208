// Package probe performs a single fetch against the catalog products
// endpoint and surfaces the outcome on a user-facing notification channel
// and the diagnostic log.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ubuntucrafts/catalog/pkg/version"
)

// DefaultEndpoint is the dev-stage products endpoint the probe targets when
// no configuration overrides it.
const DefaultEndpoint = "https://catalog.ubuntucrafts.com/dev/products"

const (
	connectTimeout = 5 * time.Second
	requestTimeout = 30 * time.Second
)

// Notifier is the user-facing notification channel. Both success and error
// outcomes are surfaced through it, at most once per probe run.
type Notifier interface {
	Notify(message string)
}

// WriterNotifier notifies by writing one line to Out.
type WriterNotifier struct {
	Out io.Writer
}

func (n *WriterNotifier) Notify(message string) {
	_, _ = fmt.Fprintln(n.Out, message)
}

type Probe struct {
	Endpoint string
	Notifier Notifier
	Logger   *zap.SugaredLogger

	client *http.Client
}

type Option func(*Probe)

func WithHTTPClient(client *http.Client) Option {
	return func(p *Probe) {
		p.client = client
	}
}

func New(endpoint string, notifier Notifier, logger *zap.SugaredLogger, options ...Option) *Probe {
	p := &Probe{
		Endpoint: endpoint,
		Notifier: notifier,
		Logger:   logger,
	}

	p.client = &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
		},
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Run fetches the products endpoint once. Network failures, non-2xx
// statuses and undecodable bodies collapse into a single error category:
// the description is notified with an error prefix and logged, and the
// error is returned. A successful run notifies the serialized JSON body.
func (p *Probe) Run(ctx context.Context) error {
	body, err := p.fetch(ctx)
	if err != nil {
		p.Logger.Errorf("Error fetching products: %s", err)
		p.Notifier.Notify(fmt.Sprintf("Error: %s", err))
		return err
	}

	p.Logger.Infof("Products received: %s", body)
	p.Notifier.Notify(body)

	return nil
}

func (p *Probe) fetch(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.Endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("unable to create products request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("catalog-probe/%s", version.Version()))

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("unable to fetch products: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("unable to read products response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unable to fetch products: %s", resp.Status)
	}

	// The response schema is unconstrained: decode into an opaque value and
	// serialize it back for display.
	var value any
	if err := json.Unmarshal(content, &value); err != nil {
		return "", fmt.Errorf("unable to decode products response: %w", err)
	}

	serialized, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("unable to serialize products response: %w", err)
	}

	return string(serialized), nil
}
