package shopify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() CustomerPayload {
	return CustomerPayload{
		Customer: Customer{
			Email:            "a@b.com",
			State:            "enabled",
			VerifiedEmail:    true,
			AcceptsMarketing: true,
			Tags:             []string{"moderate"},
		},
	}
}

func TestCreateCustomer_Success(t *testing.T) {
	var gotPath, gotToken, gotContentType string
	var gotBody CustomerPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("X-Shopify-Shop-Api-Call-Limit", "1/40")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"customer":{"id":1073339461,"email":"a@b.com","state":"enabled"}}`))
	}))
	defer server.Close()

	client := &clientImpl{accessToken: "shpat_test", baseURL: server.URL + "/admin/api/" + APIVersion}

	result, err := client.CreateCustomer(testPayload())

	require.NoError(t, err)
	assert.Equal(t, "/admin/api/"+APIVersion+"/customers.json", gotPath)
	assert.Equal(t, "shpat_test", gotToken)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "a@b.com", gotBody.Customer.Email)

	assert.True(t, result.Success())
	assert.Equal(t, http.StatusCreated, result.StatusCode)
	assert.Equal(t, float64(1073339461), result.Customer["id"])
	assert.Equal(t, "a@b.com", result.Customer["email"])
	assert.Nil(t, result.Errors)
}

func TestCreateCustomer_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"email":["has already been taken"]}}`))
	}))
	defer server.Close()

	client := &clientImpl{accessToken: "shpat_test", baseURL: server.URL + "/admin/api/" + APIVersion}

	result, err := client.CreateCustomer(testPayload())

	require.NoError(t, err, "upstream errors come back as a result, not an error")
	assert.False(t, result.Success())
	assert.Equal(t, http.StatusUnprocessableEntity, result.StatusCode)
	assert.Equal(t, map[string]interface{}{
		"errors": map[string]interface{}{
			"email": []interface{}{"has already been taken"},
		},
	}, result.Errors)
	assert.Nil(t, result.Customer)
}

func TestCreateCustomer_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`Invalid API key or access token`))
	}))
	defer server.Close()

	client := &clientImpl{accessToken: "bad", baseURL: server.URL + "/admin/api/" + APIVersion}

	result, err := client.CreateCustomer(testPayload())

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
	assert.Equal(t, "Invalid API key or access token", result.Errors)
}

func TestCreateCustomer_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := &clientImpl{accessToken: "shpat_test", baseURL: server.URL + "/admin/api/" + APIVersion}

	result, err := client.CreateCustomer(testPayload())

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestCreateCustomer_MalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := &clientImpl{accessToken: "shpat_test", baseURL: server.URL + "/admin/api/" + APIVersion}

	result, err := client.CreateCustomer(testPayload())

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestNewClient_BaseURL(t *testing.T) {
	client := NewClient("shpat_test", "example.myshopify.com")

	impl, ok := client.(*clientImpl)
	require.True(t, ok)
	assert.Equal(t, "https://example.myshopify.com/admin/api/"+APIVersion, impl.baseURL)
}
