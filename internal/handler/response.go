package handler

import "github.com/shinyyama/omnicopy-backend/internal/model"

type errorPayload struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Fields  []model.FieldError `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

func newValidationResponse(verr *model.ValidationError) ErrorResponse {
	resp := NewErrorResponse("validation_error", "Le formulaire contient des erreurs.")
	resp.Error.Fields = verr.Fields
	return resp
}
