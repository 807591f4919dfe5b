package health

// Output represents the output for health check endpoints
type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
	Store  string `json:"store,omitempty" example:"postgres" doc:"Configured record store"`
}
