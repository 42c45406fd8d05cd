package invalidation

import "encoding/json"

// Request is the invocation payload sent by the orchestrator.
type Request struct {
	DistributionID string   `json:"distribution_id"`
	Paths          []string `json:"paths"`
}

// Response is the envelope returned to the orchestrator. Body is a
// JSON-encoded object.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type successBody struct {
	Message        string   `json:"message"`
	DistributionID string   `json:"distribution_id"`
	InvalidationID string   `json:"invalidation_id"`
	Paths          []string `json:"paths"`
	Success        bool     `json:"success"`
}

// errorBody carries the success flag only on the platform-error and
// unexpected-error branches; the other error responses omit it.
type errorBody struct {
	Error   string `json:"error"`
	Success *bool  `json:"success,omitempty"`
}

func successResponse(distributionId, invalidationId string, paths []string) *Response {
	body, _ := json.Marshal(successBody{
		Message:        "CloudFront invalidation created successfully",
		DistributionID: distributionId,
		InvalidationID: invalidationId,
		Paths:          paths,
		Success:        true,
	})
	return &Response{StatusCode: 200, Body: string(body)}
}

func errorResponse(statusCode int, message string) *Response {
	body, _ := json.Marshal(errorBody{Error: message})
	return &Response{StatusCode: statusCode, Body: string(body)}
}

func failureResponse(statusCode int, message string) *Response {
	success := false
	body, _ := json.Marshal(errorBody{Error: message, Success: &success})
	return &Response{StatusCode: statusCode, Body: string(body)}
}
