package http

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/hackplatform/client-go/pkg/log"
)

type (
	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		RESTClient *resty.Client
		opts       []ClientOption
	}

	// TokenSource returns the current bearer token for a client,
	// reporting false when the scope holds no credential.
	TokenSource func() (string, bool)

	// ResponseHook observes every response, success or failure,
	// after it is received.
	ResponseHook func(resp *resty.Response)
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		RESTClient: resty.New(),
		opts:       opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithBaseURL(url string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetBaseURL(url)
	}
}

func WithRequestHeader(name, value string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetHeader(name, value)
	}
}

// WithBearerTokenSource attaches an Authorization header to every outgoing
// request when the source holds a token. The request is otherwise untouched.
func WithBearerTokenSource(source TokenSource) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			token, ok := source()
			if !ok {
				return nil
			}

			req.SetHeader("Authorization", "Bearer "+token)
			return nil
		})
	}
}

func WithResponseHook(hook ResponseHook) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			hook(resp)
			return nil
		})
	}
}

func WithRequestLogging(destinationName string, logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			requestLogger := logger.With(log.Fields{
				destinationNameLogField: destinationName,
				"method":                resp.Request.Method,
				"url":                   resp.Request.URL,
				"code":                  resp.StatusCode(),
				"durationMs":            resp.Time().Milliseconds(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				requestLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				requestLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					destinationNameLogField: destinationName,
					"method":                req.Method,
					"url":                   req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}
