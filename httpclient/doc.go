// Package httpclient is the transport underneath restfulcore.
//
// An Adapter sends one request and returns the complete response. It never
// interprets the status code: ClassifyStatus does that as a pure function so
// callers decide what a 202 or a 404 means to them. Only failures to build or
// deliver a request come back as errors, typed by ErrorCode.
//
// # Basic Usage
//
//	adapter, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com/",
//	    Timeout: 10 * time.Second,
//	})
//
//	resp, err := adapter.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "players/1/",
//	})
//	switch httpclient.ClassifyStatus(resp.StatusCode) {
//	case httpclient.ClassBody:
//	    // decode resp.Body
//	}
//
// # Multipart
//
// A *MultipartBody passed as Request.Body is encoded as multipart/form-data
// with a random UUID boundary:
//
//	form := httpclient.NewMultipartBody().
//	    Add("playerName", "Mickey Mouse").
//	    AddFile("avatar", "mickey.png", "image/png", png)
package httpclient
