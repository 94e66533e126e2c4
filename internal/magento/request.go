package magento

import "strings"

// mine replaces the id segment of customer-scoped resources. Magento
// resolves the resource from the bearer token instead.
const mine = "mine"

// Request describes one outgoing call relative to the REST base URL.
// Every With method returns a modified copy; the receiver is never changed.
type Request struct {
	baseEndpoint string
	endpoint     string
	queryString  string
	headers      map[string]string
	customer     bool
}

// Descriptor is a fully resolved HTTP request.
type Descriptor struct {
	Method  string
	URI     string
	Headers map[string]string
	Body    interface{}
	JSON    bool
}

func defaultHeaders() map[string]string {
	return map[string]string{
		"accept":        "application/json",
		"content-type":  "application/json; charset=utf-8",
		"pragma":        "no-cache",
		"cache-control": "no-cache",
	}
}

func (r Request) clone() Request {
	headers := make(map[string]string, len(r.headers))
	for k, v := range r.headers {
		headers[k] = v
	}
	r.headers = headers
	return r
}

// ByID scopes the request to a resource id, or to "mine" when the client
// carries a customer token.
func (r Request) ByID(id string) Request {
	r = r.clone()
	if r.customer {
		r.endpoint = mine
	} else {
		r.endpoint = id
	}
	return r
}

// WithEndpoint appends a path segment to the current endpoint.
func (r Request) WithEndpoint(endpoint string) Request {
	r = r.clone()
	if r.endpoint != "" {
		r.endpoint = r.endpoint + "/" + endpoint
	} else {
		r.endpoint = endpoint
	}
	return r
}

// WithResetEndpoint replaces the current endpoint.
func (r Request) WithResetEndpoint(endpoint string) Request {
	r = r.clone()
	r.endpoint = endpoint
	return r
}

// WithQueryString appends raw query parameters, joined with '&'.
func (r Request) WithQueryString(query string) Request {
	r = r.clone()
	if r.queryString != "" {
		r.queryString = r.queryString + "&" + query
	} else {
		r.queryString = query
	}
	return r
}

// WithHeaders merges headers into the request. Later values win.
func (r Request) WithHeaders(headers map[string]string) Request {
	r = r.clone()
	for k, v := range headers {
		r.headers[strings.ToLower(k)] = v
	}
	return r
}

// WithAuthorizationHeader sets a bearer authorization header. An empty
// token leaves the request unchanged.
func (r Request) WithAuthorizationHeader(token string) Request {
	if token == "" {
		return r
	}
	return r.WithHeaders(map[string]string{"authorization": "Bearer " + token})
}

// Path returns the endpoint path relative to the REST base URL.
func (r Request) Path() string {
	parts := make([]string, 0, 2)
	if r.baseEndpoint != "" {
		parts = append(parts, r.baseEndpoint)
	}
	if r.endpoint != "" {
		parts = append(parts, r.endpoint)
	}
	return strings.Join(parts, "/")
}

// Header returns a header value set on the request.
func (r Request) Header(name string) string {
	return r.headers[strings.ToLower(name)]
}

func (r Request) uri(restBase string) string {
	uri := restBase
	if p := r.Path(); p != "" {
		uri = uri + "/" + p
	}
	if r.queryString != "" {
		uri = uri + "?" + r.queryString
	}
	return uri
}
