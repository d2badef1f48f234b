package api

import "context"

// SendEmail submits a raw-content message to the transactional email
// endpoint.
func (c *Client) SendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	var result SendEmailResponse
	if err := c.post(ctx, "/smtp/email", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendTemplateEmail submits a template-driven message to the
// transactional email endpoint.
func (c *Client) SendTemplateEmail(ctx context.Context, req *SendTemplateEmailRequest) (*SendEmailResponse, error) {
	var result SendEmailResponse
	if err := c.post(ctx, "/smtp/email", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
