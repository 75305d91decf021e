// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Miky-dev/GestIA/internal/logging"
	apptypes "github.com/Miky-dev/GestIA/internal/types"
)

const maxBodyBytes = 1 << 20

// Response is the envelope of every successful JSON reply.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
	Meta    *Meta  `json:"_meta,omitempty"`
}

type Meta struct {
	Page  int64 `json:"page"`
	Size  int64 `json:"size"`
	Total int   `json:"total"`
}

// ErrorResponse is the envelope of every failed JSON reply.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Code    string            `json:"code,omitempty"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Machine readable codes attached to error replies.
const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeEmailNotVerified   = "EMAIL_NOT_VERIFIED"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeRateLimited        = "RATE_LIMITED"
	CodeAccountDisabled    = "ACCOUNT_DISABLED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeExpiredToken       = "EXPIRED_TOKEN"
	CodeAlreadyVerified    = "ALREADY_VERIFIED"
	CodeUnavailable        = "UNAVAILABLE"
	CodeInternal           = "INTERNAL"
)

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// mappings is ordered: the first matching sentinel wins.
var mappings = []mapping{
	{apptypes.ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized, "authentication required"},
	{apptypes.ErrEmailNotVerified, http.StatusForbidden, CodeEmailNotVerified, "email address not verified"},
	{apptypes.ErrNotFound, http.StatusNotFound, CodeNotFound, "resource not found"},
	{apptypes.ErrConflict, http.StatusConflict, CodeConflict, "resource already exists"},
	{apptypes.ErrInvalidInput, http.StatusUnprocessableEntity, CodeInvalidInput, "invalid input"},
	{apptypes.ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited, "too many attempts, try again later"},
	{apptypes.ErrAccountDisabled, http.StatusForbidden, CodeAccountDisabled, "account disabled"},
	{apptypes.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials, "invalid email or password"},
	{apptypes.ErrInvalidToken, http.StatusBadRequest, CodeInvalidToken, "invalid token"},
	{apptypes.ErrExpiredToken, http.StatusBadRequest, CodeExpiredToken, "token expired"},
	{apptypes.ErrAlreadyVerified, http.StatusBadRequest, CodeAlreadyVerified, "email already verified"},
	{apptypes.ErrTransientFailure, http.StatusServiceUnavailable, CodeUnavailable, "service temporarily unavailable"},
}

// ErrorResponseFromError maps a domain error onto its reply. Unknown errors
// become a 500 whose message says nothing about the cause.
func ErrorResponseFromError(err error) *ErrorResponse {
	for _, m := range mappings {
		if !errors.Is(err, m.target) {
			continue
		}

		resp := &ErrorResponse{Status: m.status, Code: m.code, Message: m.message}

		var verr *apptypes.ValidationError
		if errors.As(err, &verr) {
			resp.Errors = verr.Fields
		}

		var cerr *apptypes.ConflictError
		if errors.As(err, &cerr) {
			if cerr.Code != "" {
				resp.Code = cerr.Code
			}
			if cerr.Message != "" {
				resp.Message = cerr.Message
			}
		}

		return resp
	}

	return &ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "internal server error",
	}
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteData replies with payload wrapped in a Response envelope.
func WriteData(w http.ResponseWriter, status int, payload any, message string) {
	WriteJSON(w, status, Response{Data: payload, Message: message, Status: status})
}

// WriteError replies with the mapped error. Server side failures are logged.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	resp := ErrorResponseFromError(err)

	if resp.Status >= http.StatusInternalServerError {
		logger.Errorf("request failed: %v", err)
	}

	var rerr *apptypes.RateLimitError
	if errors.As(err, &rerr) {
		w.Header().Set("Retry-After", strconv.Itoa(rerr.RetryAfterSeconds()))
	}

	WriteJSON(w, resp.Status, resp)
}

// Decode reads a JSON body into dst. Fields unknown to dst are ignored so a
// client can never smuggle attributes such as a tenant into a payload type
// that lacks them.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apptypes.NewValidationError("body", "must be a valid JSON object")
	}

	return nil
}
