package client

import (
	"context"
	"fmt"
	"net/url"
)

// PathService finds shortest paths.
type PathService struct {
	c *Client
}

// Between returns the shortest path between two person ids.
func (s *PathService) Between(ctx context.Context, fromID, toID string) (*PathResult, error) {
	path := fmt.Sprintf("/api/v1/path/%s/%s", url.PathEscape(fromID), url.PathEscape(toID))
	var resp PathResult
	if err := s.c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BetweenNames resolves both names on the server and returns the shortest path.
// An ambiguous name yields an error for which IsAmbiguous is true.
func (s *PathService) BetweenNames(ctx context.Context, fromName, toName string) (*PathResult, error) {
	params := url.Values{}
	params.Set("from", fromName)
	params.Set("to", toName)
	var resp PathResult
	if err := s.c.get(ctx, "/api/v1/path", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
