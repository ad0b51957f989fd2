package request_models

type AddCreditsRequest struct {
	Credits int64 `json:"credits" binding:"required,gt=0"`
}
