package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivolkoff/shopsync/models"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	s := NewServer(nil)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts
}

func dto(id, name string) models.ShoppingItemDTO {
	return models.ShoppingItemDTO{
		ID:         id,
		Name:       name,
		Quantity:   1,
		CreatedAt:  "2026-08-20T10:00:00Z",
		ModifiedAt: "2026-08-20T10:00:00Z",
	}
}

func TestListItems_EmptyAndSeeded(t *testing.T) {
	s, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/items")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got []models.ShoppingItemDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Empty(t, got)

	s.Seed(dto("b", "Bread"), dto("a", "Apples"))

	resp, err = http.Get(ts.URL + "/items")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestCreateItem(t *testing.T) {
	s, ts := newTestServer(t)

	body, _ := json.Marshal(dto("id-1", "Milk"))
	resp, err := http.Post(ts.URL+"/items", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Milk", s.Items()[0].Name)
}

func TestCreateItem_RejectsMissingID(t *testing.T) {
	_, ts := newTestServer(t)

	body, _ := json.Marshal(dto("", "Milk"))
	resp, err := http.Post(ts.URL+"/items", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateItem(t *testing.T) {
	s, ts := newTestServer(t)
	s.Seed(dto("id-1", "Milk"))

	updated := dto("id-1", "Oat milk")
	body, _ := json.Marshal(updated)

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/items/id-1", bytes.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Oat milk", s.Items()[0].Name)
}

func TestUpdateItem_UnknownID(t *testing.T) {
	_, ts := newTestServer(t)

	body, _ := json.Marshal(dto("ghost", "Nothing"))
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/items/ghost", bytes.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteItem_Idempotent(t *testing.T) {
	s, ts := newTestServer(t)
	s.Seed(dto("id-1", "Milk"))

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/items/id-1", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, s.Items())

	// deleting again still succeeds
	resp, err = http.DefaultClient.Do(req.Clone(req.Context()))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
