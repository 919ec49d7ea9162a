package models

// DataResponse is the envelope every successful API response is wrapped in:
//
//	{"data": <payload>}
type DataResponse[T any] struct {
	Data T `json:"data"`
}
