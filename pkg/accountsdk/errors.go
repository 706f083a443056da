package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openclave/accountd/pkg/httpx"
)

// APIError is an error the server writes and the client reconstructs. The
// message is shown to end users, so the canonical strings below are part of
// the API contract and must not be reworded casually.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes the error as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: e.Message})
}

var (
	// ErrUnauthorized: no valid session behind the request.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthorized!",
	}

	// ErrOAuthAccount: OAuth-linked accounts manage credentials at their
	// identity provider, not here.
	ErrOAuthAccount = &APIError{
		StatusCode: http.StatusForbidden,
		Message:    "OAuth accounts cannot update data!",
	}

	// ErrIncorrectPassword: the current-password check failed.
	ErrIncorrectPassword = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Incorrect password!",
	}

	// ErrUserNotFound: the session references an account that no longer
	// exists.
	ErrUserNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "User not found!",
	}

	// ErrServerError is the catch-all; details stay in the server logs.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Something went wrong!",
	}

	// ErrInvalidRequest: the body failed to parse.
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request body!",
	}
)

// MsgUserUpdated is the success message of the settings update endpoint.
const MsgUserUpdated = "User Updated!"
