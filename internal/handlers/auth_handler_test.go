package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutamk/dsr-final/dto"
)

// The field checks run before any store access, so a nil database is fine
// for requests that never get past them.
func postCreateAccount(t *testing.T, body string) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Post("/create-account", CreateAccountHandler(nil, "test-secret"))

	req := httptest.NewRequest("POST", "/create-account", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestCreateAccountRejectsUnknownRole(t *testing.T) {
	status, out := postCreateAccount(t, `{
		"fullName": "Ananya Kulkarni",
		"email": "ananya.k@vit.edu.in",
		"password": "pw_123456!",
		"role": "Superman",
		"departments": [{"name": "CS"}]
	}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.True(t, out.Error)
	assert.Equal(t, "Invalid role", out.Message)
}

func TestCreateAccountFieldOrder(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"empty body", `{}`, "Full Name is required"},
		{"no email", `{"fullName":"A"}`, "Email is required"},
		{"no password", `{"fullName":"A","email":"a@b.c"}`, "Password is required"},
		{"no role", `{"fullName":"A","email":"a@b.c","password":"p"}`, "Role is required"},
		{"bad role before departments", `{"fullName":"A","email":"a@b.c","password":"p","role":"Hacker"}`, "Invalid role"},
		{"no departments", `{"fullName":"A","email":"a@b.c","password":"p","role":"HOD"}`, "Department is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, out := postCreateAccount(t, tc.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, tc.message, out.Message)
		})
	}
}
