package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivargas/eventmesh/internal/handler"
	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/peer"
	"github.com/ivargas/eventmesh/internal/router"
	"github.com/ivargas/eventmesh/internal/store"
)

func newNotificationsService(t *testing.T, v *fakeVerifier) (*store.Store[*model.Notification], func(method, path, body string) *httptest.ResponseRecorder) {
	t.Helper()
	st := tempStore[*model.Notification](t, "notifications.json")
	e := newServer()
	router.RegisterNotifications(e, &handler.NotificationHandler{
		Store:    st,
		Peers:    v,
		UsersURL: "http://users",
	})
	return st, func(method, path, body string) *httptest.ResponseRecorder {
		return do(e, method, path, body)
	}
}

func TestNotificationsCreate(t *testing.T) {
	v := &fakeVerifier{}
	_, call := newNotificationsService(t, v)

	rec := call(http.MethodPost, "/notifications", `{"users":[{"id":1},{"id":2}],"type":"email","content":"hi","status":"pending"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	require.Len(t, created.Users, 2)

	// Each referenced user checked, in list order.
	assert.Equal(t, []string{"users/1", "users/2"}, v.calls)
}

func TestNotificationsCreateUnknownUserRejected(t *testing.T) {
	v := &fakeVerifier{exists: func(resource string, id int) peer.Status {
		if id == 99 {
			return peer.NotFound
		}
		return peer.Exists
	}}
	st, call := newNotificationsService(t, v)

	rec := call(http.MethodPost, "/notifications", `{"users":[{"id":1},{"id":99},{"id":2}],"type":"sms","content":"x","status":"pending"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User with id 99 not found"}`, rec.Body.String())

	// Short-circuits at the first miss; id 2 was never checked.
	assert.Equal(t, []string{"users/1", "users/99"}, v.calls)

	// Nothing partially persisted.
	_, err := os.Stat(st.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestNotificationsCreateEmptyUsersList(t *testing.T) {
	v := &fakeVerifier{}
	_, call := newNotificationsService(t, v)

	rec := call(http.MethodPost, "/notifications", `{"users":[],"type":"email","content":"broadcast to nobody","status":"sent"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, v.calls)
}

func TestNotificationsCreateMissingUsersField(t *testing.T) {
	_, call := newNotificationsService(t, &fakeVerifier{})

	rec := call(http.MethodPost, "/notifications", `{"type":"email","content":"x","status":"pending"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	assert.Contains(t, errs, "users")
}

func TestNotificationsUpdateUnreachableUsersService(t *testing.T) {
	v := &fakeVerifier{}
	_, call := newNotificationsService(t, v)
	call(http.MethodPost, "/notifications", `{"users":[{"id":1}],"type":"email","content":"x","status":"pending"}`)

	v.exists = func(string, int) peer.Status { return peer.Unreachable }
	rec := call(http.MethodPut, "/notifications/1", `{"users":[{"id":1}],"type":"email","content":"y","status":"sent"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Unable to verify user 1"}`, rec.Body.String())
}

func TestNotificationsGetAndDelete(t *testing.T) {
	_, call := newNotificationsService(t, &fakeVerifier{})
	call(http.MethodPost, "/notifications", `{"users":[{"id":1}],"type":"email","content":"x","status":"pending"}`)

	rec := call(http.MethodGet, "/notifications/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(http.MethodGet, "/notifications/2", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Notification not found"}`, rec.Body.String())

	rec = call(http.MethodDelete, "/notifications/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = call(http.MethodDelete, "/notifications/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
