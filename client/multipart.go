package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
)

// PerformMultipart submits a multipart form (the discount-package
// assignment path). The generic wrapper only speaks JSON, so the body is
// assembled here, but failures still go through the same normalization
// chain as every other call.
func (c *Client) PerformMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writer.WriteField(name, fields[name]); err != nil {
			return nil, &Error{Kind: KindUnknown, Message: err.Error()}
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return nil, &Error{Kind: KindUnknown, Message: err.Error()}
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, &Error{Kind: KindUnknown, Message: err.Error()}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &Error{Kind: KindUnknown, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path, nil), &buf)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: err.Error()}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.attachBearer(ctx, req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	return c.finish(ctx, resp.StatusCode, raw)
}
