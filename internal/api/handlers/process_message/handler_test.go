package process_message

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	"github.com/m04kA/SMC-WeekendService/internal/service/wizard"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeWizard struct {
	resp       *wizard.Response
	err        error
	gotUserID  string
	gotCommand string
	gotArgs    []string
}

func (f *fakeWizard) Handle(ctx context.Context, userID, command string, args []string) (*wizard.Response, error) {
	f.gotUserID = userID
	f.gotCommand = command
	f.gotArgs = args
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messenger/message", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_CommandWithArgs(t *testing.T) {
	fake := &fakeWizard{resp: &wizard.Response{Type: wizard.ResponseRoles, State: domain.StateSelectingRole}}
	h := NewHandler(fake, nopLogger{})

	rec := doRequest(t, h, `{"userId":"user-1","message":"select_location moscow"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", fake.gotUserID)
	assert.Equal(t, wizard.CmdSelectLocation, fake.gotCommand)
	assert.Equal(t, []string{"moscow"}, fake.gotArgs)

	var resp wizard.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, wizard.ResponseRoles, resp.Type)
}

func TestHandle_FreeTextPassedWhole(t *testing.T) {
	fake := &fakeWizard{resp: &wizard.Response{Type: wizard.ResponsePromptEmployeeID}}
	h := NewHandler(fake, nopLogger{})

	rec := doRequest(t, h, `{"userId":"user-1","message":"Иванов Иван Иванович"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wizard.CmdText, fake.gotCommand)
	assert.Equal(t, []string{"Иванов Иван Иванович"}, fake.gotArgs)
}

func TestHandle_MissingUserID(t *testing.T) {
	h := NewHandler(&fakeWizard{}, nopLogger{})

	rec := doRequest(t, h, `{"message":"help"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeWizard{}, nopLogger{})

	rec := doRequest(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseMessage(t *testing.T) {
	testCases := []struct {
		name        string
		message     string
		wantCommand string
		wantArgs    []string
	}{
		{"bare command", "order_weekend", wizard.CmdOrderWeekend, []string{}},
		{"command with arg", "cancel_order abc-123", wizard.CmdCancelOrder, []string{"abc-123"}},
		{"command with two args", "weekend_free_dates moscow bp", wizard.CmdFreeDates, []string{"moscow", "bp"}},
		{"free text", "Иванов Иван", wizard.CmdText, []string{"Иванов Иван"}},
		{"empty message", "", wizard.CmdText, []string{""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			command, args := parseMessage(tc.message)
			assert.Equal(t, tc.wantCommand, command)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}
