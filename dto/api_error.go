package dto

// APIErrorResponse keeps the {"detail": "..."} shape the dashboards already parse.
type APIErrorResponse struct {
	Detail string `json:"detail"`
}
