package models

// PathStep is one hop of a shortest path: the movie that links the previous
// person to PersonID.
type PathStep struct {
	MovieID  string `json:"movie_id"`
	PersonID string `json:"person_id"`
}

// Connection is a hydrated PathStep naming both people and the shared movie.
type Connection struct {
	From  PersonSummary `json:"from"`
	To    PersonSummary `json:"to"`
	Movie MovieSummary  `json:"movie"`
}

// PathResult is the reportable outcome of a successful search.
type PathResult struct {
	Source      PersonSummary `json:"source"`
	Target      PersonSummary `json:"target"`
	Degrees     int           `json:"degrees"`
	Steps       []PathStep    `json:"steps"`
	Connections []Connection  `json:"connections"`
	Expanded    int           `json:"expanded"`
	Discovered  int           `json:"discovered"`
}

// Neighbor is a co-star reachable through one shared movie.
type Neighbor struct {
	Movie  MovieSummary  `json:"movie"`
	Person PersonSummary `json:"person"`
}

// NeighborResult lists the co-stars of a person.
type NeighborResult struct {
	Person    PersonSummary `json:"person"`
	Neighbors []Neighbor    `json:"neighbors"`
}
