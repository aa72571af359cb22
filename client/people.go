package client

import (
	"context"
	"net/url"
)

// PeopleService looks up people.
type PeopleService struct {
	c *Client
}

// Search returns everyone whose name matches case-insensitively.
func (s *PeopleService) Search(ctx context.Context, name string) ([]PersonSummary, error) {
	params := url.Values{}
	params.Set("name", name)
	var resp struct {
		People []PersonSummary `json:"people"`
	}
	if err := s.c.get(ctx, "/api/v1/people", params, &resp); err != nil {
		return nil, err
	}
	return resp.People, nil
}

// Get returns a person by id.
func (s *PeopleService) Get(ctx context.Context, id string) (*Person, error) {
	var resp Person
	if err := s.c.get(ctx, "/api/v1/people/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Neighbors returns the co-stars of a person.
func (s *PeopleService) Neighbors(ctx context.Context, id string) (*NeighborResult, error) {
	var resp NeighborResult
	if err := s.c.get(ctx, "/api/v1/people/"+url.PathEscape(id)+"/neighbors", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MovieService looks up movies.
type MovieService struct {
	c *Client
}

// Get returns a movie by id.
func (s *MovieService) Get(ctx context.Context, id string) (*Movie, error) {
	var resp Movie
	if err := s.c.get(ctx, "/api/v1/movies/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
