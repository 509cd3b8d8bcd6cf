package api

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status      string            `json:"status"`
	Uptime      string            `json:"uptime"`
	Evaluations uint64            `json:"evaluations"`
	Suggestions uint64            `json:"suggestions"`
	Failures    uint64            `json:"failures"`
	Strengths   map[string]uint64 `json:"strengths"`
}
