package rest

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/kbukum/restfulcore/httpclient"
	"github.com/kbukum/restfulcore/logger"
	"github.com/kbukum/restfulcore/observability"
)

// snippetLimit caps how much of a failed response body goes into a note.
const snippetLimit = 256

// NoContentNote is recorded when a call succeeds with 202 or 204.
const NoContentNote = "succeeded, but no content was returned."

// MultipartForm is implemented by bodies that can be sent as
// multipart/form-data.
type MultipartForm interface {
	MultipartBody() (*httpclient.MultipartBody, error)
}

// reply is a classified response.
type reply struct {
	status int
	class  httpclient.StatusClass
	body   []byte
}

// dispatch sends one request and classifies the response. Failure statuses
// come back as a reply together with an ErrCodeStatus error.
func (c *Connection) dispatch(ctx context.Context, t *trail, method, target string, body any, ct ContentType) (*reply, error) {
	log := c.log.WithContext(ctx)

	if err := checkURL(target); err != nil {
		t.note(fmt.Sprintf("could not build request: %v", err))
		log.Warn("request not sent", logger.Fields(logger.FieldMethod, method, logger.FieldURL, target, logger.FieldError, err.Error()))
		return nil, err
	}

	payload, headers, err := encodeRequestBody(body, ct)
	if err != nil {
		t.note(fmt.Sprintf("could not encode request body: %v", err))
		log.Warn("request not sent", logger.Fields(logger.FieldMethod, method, logger.FieldURL, target, logger.FieldError, err.Error()))
		return nil, err
	}

	ctx, call := observability.StartCall(ctx, c.tracer, c.metrics, c.name, method, target)
	log = c.log.WithContext(ctx)

	resp, err := c.adapter.Do(ctx, httpclient.Request{
		Method:  method,
		Path:    target,
		Headers: headers,
		Body:    payload,
	})
	if err != nil {
		t.note(fmt.Sprintf("request failed: %v", err))
		call.End(ctx, 0, KindFailure.String(), errorCode(err), err)
		log.Warn("request failed", logger.MergeWithError(
			logger.Fields(logger.FieldMethod, method, logger.FieldURL, target), err))
		return nil, err
	}

	rep := &reply{status: resp.StatusCode, class: resp.Class(), body: resp.Body}
	fields := logger.MergeWithDuration(logger.Fields(
		logger.FieldMethod, method,
		logger.FieldURL, target,
		logger.FieldStatusCode, rep.status,
	), call.Duration())

	switch rep.class {
	case httpclient.ClassBody:
		call.End(ctx, rep.status, KindValue.String(), "", nil)
		log.Debug("request succeeded", fields)
		return rep, nil
	case httpclient.ClassNoContent:
		t.note(NoContentNote)
		call.End(ctx, rep.status, KindEmpty.String(), "", nil)
		log.Debug("request succeeded without content", fields)
		return rep, nil
	default:
		statusErr := httpclient.NewStatusError(rep.status, rep.body)
		t.note(fmt.Sprintf("request failed with status code %d: %s", rep.status, resp.Snippet(snippetLimit)))
		call.End(ctx, rep.status, KindFailure.String(), errorCode(statusErr), statusErr)
		log.Warn("request failed", fields)
		return rep, statusErr
	}
}

// checkURL rejects targets that cannot be sent: empty, unparseable or
// missing a scheme or host.
func checkURL(target string) error {
	if target == "" {
		return httpclient.NewRequestError("url is empty", nil)
	}
	u, err := url.Parse(target)
	if err != nil {
		return httpclient.NewRequestError(fmt.Sprintf("parse url %q", target), err)
	}
	if u.Scheme == "" || u.Host == "" {
		return httpclient.NewRequestError(fmt.Sprintf("url %q is not absolute", target), nil)
	}
	return nil
}

// encodeRequestBody turns body into a transport payload for the chosen
// content type. A nil body sends nothing.
func encodeRequestBody(body any, ct ContentType) (any, map[string]string, error) {
	if body == nil {
		return nil, nil, nil
	}

	if ct == ContentMultipart {
		form, ok := body.(MultipartForm)
		if !ok {
			return nil, nil, httpclient.NewEncodeError(fmt.Errorf("%T cannot be sent as multipart/form-data", body))
		}
		mp, err := form.MultipartBody()
		if err != nil {
			return nil, nil, httpclient.NewEncodeError(err)
		}
		return mp, nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, nil, httpclient.NewEncodeError(err)
	}
	return data, map[string]string{"Content-Type": "application/json"}, nil
}

func errorCode(err error) string {
	var e *httpclient.Error
	if errors.As(err, &e) {
		return e.Code.String()
	}
	return "unknown"
}
