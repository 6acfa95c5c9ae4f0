// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
)

var random *rand.Rand

func init() {
	random = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// requestIDKey is attached to every request against BigQuery
const requestIDKey string = "requestId"

// requestIDReplacer replaces the value of requestId in a URL with a newly
// generated uuid upon every retry. When the url does not carry requestId,
// the original url is returned untouched.
type requestIDReplacer struct {
	urlPtr *url.URL
}

func (replacer *requestIDReplacer) replace() *url.URL {
	vs, err := url.ParseQuery(replacer.urlPtr.RawQuery)
	if err != nil {
		return replacer.urlPtr
	}
	if len(vs.Get(requestIDKey)) == 0 {
		return replacer.urlPtr
	}
	vs.Del(requestIDKey)
	vs.Add(requestIDKey, uuid.New().String())
	replacer.urlPtr.RawQuery = vs.Encode()
	return replacer.urlPtr
}

type waitAlgo struct {
	mutex *sync.Mutex   // required for random.Int63n
	base  time.Duration // base wait time
	cap   time.Duration // maximum wait time
}

func randDuration(n time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(random.Int63n(int64(n)))
}

// decorrelated jitter backoff
func (w *waitAlgo) decorr(attempt int, sleep time.Duration) time.Duration {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	t := 3*sleep - w.base
	switch {
	case t > 0:
		return durationMin(w.cap, randDuration(t)+w.base)
	case t < 0:
		return durationMin(w.cap, randDuration(-t)+3*sleep)
	}
	return w.base
}

var defaultWaitAlgo = &waitAlgo{
	mutex: &sync.Mutex{},
	base:  1 * time.Second,
	cap:   60 * time.Second,
}

type requestFunc func(method, urlStr string, body io.Reader) (*http.Request, error)

type clientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

type retryHTTP struct {
	ctx      context.Context
	client   clientInterface
	req      requestFunc
	method   string
	fullURL  *url.URL
	headers  map[string]string
	body     []byte
	timeout  time.Duration
	raise4XX bool
}

func newRetryHTTP(ctx context.Context,
	client clientInterface,
	req requestFunc,
	fullURL *url.URL,
	headers map[string]string,
	timeout time.Duration) *retryHTTP {
	instance := retryHTTP{}
	instance.ctx = ctx
	instance.client = client
	instance.req = req
	instance.method = "GET"
	instance.fullURL = fullURL
	instance.headers = headers
	instance.body = nil
	instance.timeout = timeout
	instance.raise4XX = false
	return &instance
}

func (r *retryHTTP) doRaise4XX(raise4XX bool) *retryHTTP {
	r.raise4XX = raise4XX
	return r
}

func (r *retryHTTP) doPost() *retryHTTP {
	r.method = "POST"
	return r
}

func (r *retryHTTP) doDelete() *retryHTTP {
	r.method = "DELETE"
	return r
}

func (r *retryHTTP) setBody(body []byte) *retryHTTP {
	r.body = body
	return r
}

func (r *retryHTTP) execute() (res *http.Response, err error) {
	totalTimeout := r.timeout
	logger.WithContext(r.ctx).Debugf("retryHTTP.totalTimeout: %v", totalTimeout)
	retryCounter := 0
	sleepTime := time.Duration(0)

	var rIDReplacer *requestIDReplacer

	for {
		req, err := r.req(r.method, r.fullURL.String(), bytes.NewReader(r.body))
		if err != nil {
			return nil, err
		}
		req = req.WithContext(r.ctx)
		for k, v := range r.headers {
			req.Header.Set(k, v)
		}
		res, err = r.client.Do(req)
		if err == nil && res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
			// exit if success
			break
		}
		if r.raise4XX && res != nil && res.StatusCode >= 400 && res.StatusCode < 500 {
			// 4XX is not sporadic; the caller turns the response into an error
			break
		}

		// context cancel or timeout
		if err != nil {
			var urlError *url.Error
			if errors.As(err, &urlError) &&
				(errors.Is(urlError.Err, context.DeadlineExceeded) ||
					errors.Is(urlError.Err, context.Canceled)) {
				return res, urlError.Err
			}
		}

		if err != nil {
			logger.WithContext(r.ctx).Warnf(
				"failed http connection. no response is returned. err: %v. retrying...", err)
		} else {
			logger.WithContext(r.ctx).Warnf(
				"failed http connection. HTTP Status: %v. retrying...", res.StatusCode)
		}
		if res != nil {
			res.Body.Close()
		}
		// uses decorrelated jitter backoff
		sleepTime = defaultWaitAlgo.decorr(retryCounter, sleepTime)

		if totalTimeout > 0 {
			totalTimeout -= sleepTime
			if totalTimeout <= 0 {
				if err != nil {
					return nil, fmt.Errorf("timeout after retries. err: %w", err)
				}
				return nil, fmt.Errorf("timeout after retries. HTTP Status: %v", res.StatusCode)
			}
		}
		retryCounter++
		if rIDReplacer == nil {
			rIDReplacer = &requestIDReplacer{r.fullURL}
		}
		r.fullURL = rIDReplacer.replace()
		logger.WithContext(r.ctx).Debugf("sleeping %v. to timeout: %v. retrying", sleepTime, totalTimeout)

		await := time.NewTimer(sleepTime)
		select {
		case <-await.C:
			// retry the request
		case <-r.ctx.Done():
			await.Stop()
			return res, r.ctx.Err()
		}
	}
	return res, err
}

func durationMin(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
