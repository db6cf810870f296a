package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gigboard/gigboard/api"
	"github.com/gigboard/gigboard/pkg/repository/mock"
	"github.com/golang-jwt/jwt/v5"
)

func TestSupportSubmit(t *testing.T) {
	secret := "testsecret"
	token := signToken(t, secret, jwt.MapClaims{"user_id": 3, "email": "ana@x.com", "account_type": "Worker", "exp": time.Now().Add(time.Hour).Unix()})
	expired := signToken(t, secret, jwt.MapClaims{"user_id": 3, "email": "ana@x.com", "account_type": "Worker", "exp": time.Now().Add(-time.Hour).Unix()})

	tests := []struct {
		name       string
		token      string
		body       any
		wantStatus int
		wantUserID *int64
	}{
		{
			name:       "InvalidRequest",
			body:       "not a json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingCategory",
			body:       map[string]string{"email": "a@x.com", "content": "help"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingContent",
			body:       map[string]string{"category": "billing", "email": "a@x.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Anonymous",
			body:       map[string]string{"category": "billing", "email": "a@x.com", "content": "help"},
			wantStatus: http.StatusCreated,
			wantUserID: nil,
		},
		{
			name:       "WithToken_AttachesUser",
			token:      token,
			body:       map[string]string{"category": "billing", "email": "ana@x.com", "content": "help"},
			wantStatus: http.StatusCreated,
			wantUserID: func() *int64 { id := int64(3); return &id }(),
		},
		{
			name:       "ExpiredToken_StillAnonymous",
			token:      expired,
			body:       map[string]string{"category": "billing", "email": "ana@x.com", "content": "help"},
			wantStatus: http.StatusCreated,
			wantUserID: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			h := api.NewSupportHandler(mocks.Support, secret)

			b, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/support", bytes.NewReader(b))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			h.Submit(w, req)

			res := w.Result()
			defer res.Body.Close()
			data, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d got %d body=%s", tt.wantStatus, res.StatusCode, string(data))
			}
			if tt.wantStatus != http.StatusCreated {
				return
			}

			var resp struct {
				Reference string `json:"reference"`
			}
			if err := json.Unmarshal(data, &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Reference == "" {
				t.Fatalf("expected ticket reference")
			}
			stored := mocks.Support.Stored
			if stored == nil {
				t.Fatalf("expected ticket stored")
			}
			if tt.wantUserID == nil && stored.UserID != nil {
				t.Fatalf("expected anonymous ticket, got user %d", *stored.UserID)
			}
			if tt.wantUserID != nil {
				if stored.UserID == nil || *stored.UserID != *tt.wantUserID {
					t.Fatalf("expected user %d attached, got %v", *tt.wantUserID, stored.UserID)
				}
			}
		})
	}
}
